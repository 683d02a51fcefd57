package model

import "github.com/m-mizutani/goerr/v2"

// AppVersion is what the versioning provider reports for the current build
type AppVersion struct {
	Code int    // versionCode
	Name string // versionName
}

// ApplicationIdentity is read-only to the loader
type ApplicationIdentity struct {
	ApplicationID string `json:"applicationId" toml:"applicationId"`
	MinSdk        int    `json:"minSdk" toml:"minSdk"`
	TargetSdk     int    `json:"targetSdk" toml:"targetSdk"`
	VersionCode   int    `json:"versionCode" toml:"versionCode"`
	VersionName   string `json:"versionName" toml:"versionName"`
}

// BuildSettings holds the fixed values of the app module. Every field may be
// overridden from a TOML settings file.
type BuildSettings struct {
	Plugins       []string `toml:"plugins"`
	Namespace     string   `toml:"namespace"`
	ApplicationID string   `toml:"application_id"`
	CompileSdk    int      `toml:"compile_sdk"`
	MinSdk        int      `toml:"min_sdk"`
	TargetSdk     int      `toml:"target_sdk"`
	NdkVersion    string   `toml:"ndk_version"`
	JavaVersion   string   `toml:"java_version"`
	FlutterSource string   `toml:"flutter_source"`
}

// DefaultBuildSettings returns the values the app module ships with
func DefaultBuildSettings() BuildSettings {
	return BuildSettings{
		// order matters: the Flutter plugin must come after the Android and Kotlin ones
		Plugins: []string{
			"com.android.application",
			"com.google.gms.google-services",
			"com.google.firebase.crashlytics",
			"kotlin-android",
			"dev.flutter.flutter-gradle-plugin",
		},
		Namespace:     "com.manoooz.syria_jobs",
		ApplicationID: "com.manoooz.syria_jobs",
		CompileSdk:    34,
		MinSdk:        23,
		TargetSdk:     34,
		NdkVersion:    "27.0.12077973",
		JavaVersion:   "11",
		FlutterSource: "../..",
	}
}

// Validate checks the settings for values the toolchain would reject
func (s *BuildSettings) Validate() error {
	switch {
	case s.ApplicationID == "":
		return goerr.New("application_id is required")
	case s.Namespace == "":
		return goerr.New("namespace is required")
	case s.MinSdk <= 0:
		return goerr.New("min_sdk must be positive", goerr.V("min_sdk", s.MinSdk))
	case s.TargetSdk < s.MinSdk:
		return goerr.New("target_sdk must not be lower than min_sdk",
			goerr.V("min_sdk", s.MinSdk), goerr.V("target_sdk", s.TargetSdk))
	case s.CompileSdk < s.TargetSdk:
		return goerr.New("compile_sdk must not be lower than target_sdk",
			goerr.V("compile_sdk", s.CompileSdk), goerr.V("target_sdk", s.TargetSdk))
	case s.JavaVersion == "":
		return goerr.New("java_version is required")
	}
	return nil
}
