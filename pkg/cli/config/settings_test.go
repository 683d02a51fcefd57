package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/manoooz/apkconf/pkg/cli/config"
	"github.com/manoooz/apkconf/pkg/domain/model"
)

func TestSettings_Load(t *testing.T) {
	write := func(t *testing.T, content string) string {
		path := filepath.Join(t.TempDir(), "apkconf.toml")
		gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("no file returns defaults", func(t *testing.T) {
		settings, err := (&config.Settings{}).Load()
		gt.NoError(t, err)
		gt.V(t, settings).Equal(model.DefaultBuildSettings())
		gt.V(t, settings.MinSdk).Equal(23)
		gt.V(t, settings.TargetSdk).Equal(34)
		gt.V(t, settings.NdkVersion).Equal("27.0.12077973")
		gt.V(t, settings.JavaVersion).Equal("11")
	})

	t.Run("file overrides selected values", func(t *testing.T) {
		path := write(t, "application_id = \"com.example.staging\"\nmin_sdk = 24\n")
		settings, err := (&config.Settings{Path: path}).Load()
		gt.NoError(t, err)
		gt.V(t, settings.ApplicationID).Equal("com.example.staging")
		gt.V(t, settings.MinSdk).Equal(24)
		gt.V(t, settings.Namespace).Equal("com.manoooz.syria_jobs")
		gt.V(t, settings.TargetSdk).Equal(34)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		path := write(t, "min_skd = 24\n")
		_, err := (&config.Settings{Path: path}).Load()
		gt.Error(t, err)
	})

	t.Run("inconsistent sdk levels are rejected", func(t *testing.T) {
		path := write(t, "min_sdk = 35\n")
		_, err := (&config.Settings{Path: path}).Load()
		gt.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := (&config.Settings{Path: filepath.Join(t.TempDir(), "none.toml")}).Load()
		gt.Error(t, err)
	})
}

func TestProject_Paths(t *testing.T) {
	p := &config.Project{AndroidDir: "android", AppModule: "app"}
	gt.V(t, p.KeyPropertiesPath()).Equal(filepath.Join("android", "key.properties"))
	gt.V(t, p.GradlePropertiesPath()).Equal(filepath.Join("android", "gradle.properties"))
	gt.V(t, p.PubspecPath()).Equal("pubspec.yaml")
	gt.V(t, p.ModuleDir()).Equal(filepath.Join("android", "app"))

	p.KeyProperties = "/secrets/key.properties"
	gt.V(t, p.KeyPropertiesPath()).Equal("/secrets/key.properties")
}

func TestProject_ParseBuildType(t *testing.T) {
	for _, s := range []string{"release", "Release", "debug"} {
		_, err := (&config.Project{BuildType: s}).ParseBuildType()
		gt.NoError(t, err)
	}
	_, err := (&config.Project{BuildType: "profile"}).ParseBuildType()
	gt.Error(t, err)
}
