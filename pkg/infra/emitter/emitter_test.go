package emitter_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pelletier/go-toml/v2"

	"github.com/manoooz/apkconf/pkg/domain/model"
	"github.com/manoooz/apkconf/pkg/infra/emitter"
)

func newConfig() *model.PackagingConfig {
	return &model.PackagingConfig{
		Plugins:    []string{"com.android.application", "dev.flutter.flutter-gradle-plugin"},
		Namespace:  "com.manoooz.syria_jobs",
		CompileSdk: 34,
		NdkVersion: "27.0.12077973",
		DefaultConfig: model.DefaultConfig{
			ApplicationIdentity: model.ApplicationIdentity{
				ApplicationID: "com.manoooz.syria_jobs",
				MinSdk:        23,
				TargetSdk:     34,
				VersionCode:   5,
				VersionName:   "1.0.4",
			},
			ManifestPlaceholders: map[string]string{"ADMOB_APP_ID": "ca-app-pub-123"},
		},
		SigningConfigs: []model.SigningConfig{
			{
				Name: "release",
				SigningCredentials: model.SigningCredentials{
					KeyAlias:      "upload",
					KeyPassword:   "kp",
					StoreFile:     "/keys/upload.jks",
					StorePassword: "sp",
				},
			},
		},
		BuildTypes: []model.BuildType{{Name: "release", SigningConfig: "release"}},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := emitter.ParseFormat("JSON")
	gt.NoError(t, err)
	gt.V(t, f).Equal(emitter.FormatJSON)

	_, err = emitter.ParseFormat("yaml")
	gt.Error(t, err)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, emitter.Write(&buf, newConfig(), emitter.FormatJSON))

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	defaultConfig := decoded["defaultConfig"].(map[string]any)
	gt.V(t, defaultConfig["applicationId"]).Equal("com.manoooz.syria_jobs")
	gt.V(t, defaultConfig["minSdk"]).Equal(float64(23))
	placeholders := defaultConfig["manifestPlaceholders"].(map[string]any)
	gt.V(t, placeholders["ADMOB_APP_ID"]).Equal("ca-app-pub-123")
}

func TestWrite_TOML(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, emitter.Write(&buf, newConfig(), emitter.FormatTOML))

	var decoded model.PackagingConfig
	gt.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	gt.V(t, decoded.NdkVersion).Equal("27.0.12077973")
	gt.V(t, decoded.DefaultConfig.ManifestPlaceholders["ADMOB_APP_ID"]).Equal("ca-app-pub-123")
	gt.V(t, decoded.SigningConfigs[0].StoreFile).Equal("/keys/upload.jks")
}

func TestWrite_Redacted(t *testing.T) {
	cfg := newConfig()

	var buf bytes.Buffer
	gt.NoError(t, emitter.Write(&buf, cfg.Redacted(), emitter.FormatJSON))
	gt.S(t, buf.String()).Contains(model.RedactedValue)
	gt.S(t, buf.String()).NotContains(`"kp"`)
	gt.S(t, buf.String()).NotContains(`"sp"`)

	// the original is left untouched
	gt.V(t, cfg.SigningConfigs[0].KeyPassword).Equal("kp")
}
