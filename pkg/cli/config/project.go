package config

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/manoooz/apkconf/pkg/domain/types"
)

// Project locates the Android project inputs of one build invocation
type Project struct {
	AndroidDir       string
	AppModule        string
	KeyProperties    string
	GradleProperties string
	Pubspec          string
	BuildType        string
	BuildName        string
	BuildNumber      string
	Properties       []string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "android-dir",
			Aliases:     []string{"d"},
			Usage:       "Android project root (the directory holding key.properties)",
			Value:       ".",
			Destination: &c.AndroidDir,
			Sources:     cli.EnvVars("APKCONF_ANDROID_DIR"),
		},
		&cli.StringFlag{
			Name:        "app-module",
			Usage:       "App module directory relative to the Android project root",
			Value:       "app",
			Destination: &c.AppModule,
			Sources:     cli.EnvVars("APKCONF_APP_MODULE"),
		},
		&cli.StringFlag{
			Name:        "key-properties",
			Usage:       "Path to key.properties (default: <android-dir>/key.properties)",
			Destination: &c.KeyProperties,
			Sources:     cli.EnvVars("APKCONF_KEY_PROPERTIES"),
		},
		&cli.StringFlag{
			Name:        "gradle-properties",
			Usage:       "Path to gradle.properties (default: <android-dir>/gradle.properties)",
			Destination: &c.GradleProperties,
			Sources:     cli.EnvVars("APKCONF_GRADLE_PROPERTIES"),
		},
		&cli.StringFlag{
			Name:        "pubspec",
			Usage:       "Path to pubspec.yaml (default: <android-dir>/../pubspec.yaml)",
			Destination: &c.Pubspec,
			Sources:     cli.EnvVars("APKCONF_PUBSPEC"),
		},
		&cli.StringFlag{
			Name:        "build-type",
			Aliases:     []string{"t"},
			Usage:       "Build type (debug, release)",
			Value:       string(types.BuildTypeRelease),
			Destination: &c.BuildType,
			Sources:     cli.EnvVars("APKCONF_BUILD_TYPE"),
		},
		&cli.StringFlag{
			Name:        "build-name",
			Usage:       "Override versionName",
			Destination: &c.BuildName,
			Sources:     cli.EnvVars("APKCONF_BUILD_NAME"),
		},
		&cli.StringFlag{
			Name:        "build-number",
			Usage:       "Override versionCode",
			Destination: &c.BuildNumber,
			Sources:     cli.EnvVars("APKCONF_BUILD_NUMBER"),
		},
		&cli.StringSliceFlag{
			Name:        "project-prop",
			Aliases:     []string{"P"},
			Usage:       "Project property as name=value, same as gradle -P",
			Destination: &c.Properties,
		},
	}
}

// ParseBuildType validates the requested build type
func (c *Project) ParseBuildType() (types.BuildType, error) {
	bt := types.BuildType(strings.ToLower(c.BuildType))
	switch bt {
	case types.BuildTypeDebug, types.BuildTypeRelease:
		return bt, nil
	default:
		return "", goerr.New("unknown build type", goerr.V("build_type", c.BuildType))
	}
}

// KeyPropertiesPath returns the key.properties location
func (c *Project) KeyPropertiesPath() string {
	if c.KeyProperties != "" {
		return c.KeyProperties
	}
	return filepath.Join(c.AndroidDir, types.KeyPropertiesFile)
}

// GradlePropertiesPath returns the gradle.properties location
func (c *Project) GradlePropertiesPath() string {
	if c.GradleProperties != "" {
		return c.GradleProperties
	}
	return filepath.Join(c.AndroidDir, types.GradlePropertiesFile)
}

// PubspecPath returns the pubspec.yaml location of the enclosing Flutter project
func (c *Project) PubspecPath() string {
	if c.Pubspec != "" {
		return c.Pubspec
	}
	return filepath.Join(c.AndroidDir, "..", "pubspec.yaml")
}

// ModuleDir returns the app module directory, against which storeFile is resolved
func (c *Project) ModuleDir() string {
	return filepath.Join(c.AndroidDir, c.AppModule)
}
