package model

// ManifestPlaceholder is a named substitution injected into AndroidManifest.xml at build time
type ManifestPlaceholder struct {
	Name  string
	Value string
}
