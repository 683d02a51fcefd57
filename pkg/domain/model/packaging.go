package model

// RedactedValue replaces secrets in redacted output
const RedactedValue = "[REDACTED]"

// PackagingConfig is handed to the native packaging toolchain
type PackagingConfig struct {
	Plugins        []string        `json:"plugins" toml:"plugins"`
	Namespace      string          `json:"namespace" toml:"namespace"`
	CompileSdk     int             `json:"compileSdk" toml:"compileSdk"`
	NdkVersion     string          `json:"ndkVersion" toml:"ndkVersion"`
	CompileOptions CompileOptions  `json:"compileOptions" toml:"compileOptions"`
	KotlinOptions  KotlinOptions   `json:"kotlinOptions" toml:"kotlinOptions"`
	DefaultConfig  DefaultConfig   `json:"defaultConfig" toml:"defaultConfig"`
	SigningConfigs []SigningConfig `json:"signingConfigs,omitempty" toml:"signingConfigs,omitempty"`
	BuildTypes     []BuildType     `json:"buildTypes" toml:"buildTypes"`
	Flutter        FlutterConfig   `json:"flutter" toml:"flutter"`
}

type CompileOptions struct {
	SourceCompatibility string `json:"sourceCompatibility" toml:"sourceCompatibility"`
	TargetCompatibility string `json:"targetCompatibility" toml:"targetCompatibility"`
}

type KotlinOptions struct {
	JvmTarget string `json:"jvmTarget" toml:"jvmTarget"`
}

type DefaultConfig struct {
	ApplicationIdentity
	ManifestPlaceholders map[string]string `json:"manifestPlaceholders" toml:"manifestPlaceholders"`
}

// SigningConfig is a named set of signing credentials. StoreFile is resolved
// against the app module directory.
type SigningConfig struct {
	Name string `json:"name" toml:"name"`
	SigningCredentials
}

type BuildType struct {
	Name          string `json:"name" toml:"name"`
	SigningConfig string `json:"signingConfig" toml:"signingConfig"`
}

type FlutterConfig struct {
	Source string `json:"source" toml:"source"`
}

// Redacted returns a copy with every signing password replaced
func (c *PackagingConfig) Redacted() *PackagingConfig {
	out := *c
	out.SigningConfigs = make([]SigningConfig, len(c.SigningConfigs))
	for i, sc := range c.SigningConfigs {
		if sc.KeyPassword != "" {
			sc.KeyPassword = RedactedValue
		}
		if sc.StorePassword != "" {
			sc.StorePassword = RedactedValue
		}
		out.SigningConfigs[i] = sc
	}
	return &out
}
