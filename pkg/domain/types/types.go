package types

// Version is overwritten at link time
var Version = "dev"

// BuildType is the Android build variant requested from the toolchain
type BuildType string

const (
	BuildTypeDebug   BuildType = "debug"
	BuildTypeRelease BuildType = "release"
)

// RequiresSigning reports whether the build type must carry release signing credentials
func (t BuildType) RequiresSigning() bool {
	return t == BuildTypeRelease
}

const (
	// AdmobAppIDProperty is looked up in the build-tool property provider
	AdmobAppIDProperty = "ADMOB_APP_ID"
	// DefaultAdmobAppID is substituted when AdmobAppIDProperty is not set
	DefaultAdmobAppID = "default_admob_app_id"

	// KeyPropertiesFile lives at the root of the Android project
	KeyPropertiesFile = "key.properties"
	// GradlePropertiesFile lives at the root of the Android project
	GradlePropertiesFile = "gradle.properties"

	// ReleaseSigningConfig is the name of the only signing configuration
	ReleaseSigningConfig = "release"
	// DebugSigningConfig is provided by the Android toolchain itself
	DebugSigningConfig = "debug"
)
