package usecase

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/manoooz/apkconf/pkg/domain/interfaces"
	"github.com/manoooz/apkconf/pkg/domain/model"
	"github.com/manoooz/apkconf/pkg/domain/types"
	"github.com/manoooz/apkconf/pkg/infra/properties"
)

// MissingFieldError is returned when a release build lacks a signing field
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "signing field " + e.Field + " is missing or blank"
}

// LoadSigningCredentials reads key.properties at path. A missing file yields
// empty credentials; a malformed one fails with *properties.ParseError.
func LoadSigningCredentials(ctx context.Context, path string) (*model.SigningCredentials, error) {
	logger := ctxlog.From(ctx)

	props, err := properties.LoadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load signing credentials")
	}

	creds := &model.SigningCredentials{
		KeyAlias:      props[model.KeyAlias],
		KeyPassword:   props[model.KeyPassword],
		StoreFile:     props[model.StoreFile],
		StorePassword: props[model.StorePassword],
	}

	if creds.IsEmpty() {
		logger.Debug("No signing credentials found", slog.String("path", path))
	}

	// The alias is logged unguarded; passwords only reach the log through redaction.
	logger.Info("Key alias", slog.String("key_alias", creds.KeyAlias))
	logger.Debug("Loaded signing credentials",
		slog.String("path", path),
		slog.Any("credentials", creds),
	)

	return creds, nil
}

// ResolvePlaceholder returns the property value for name if it is set,
// otherwise fallback.
func ResolvePlaceholder(props properties.Properties, name, fallback string) model.ManifestPlaceholder {
	if v, ok := props.Get(name); ok {
		return model.ManifestPlaceholder{Name: name, Value: v}
	}
	return model.ManifestPlaceholder{Name: name, Value: fallback}
}

// ValidateSigning checks that every release signing field is non-empty
func ValidateSigning(creds *model.SigningCredentials) error {
	for _, f := range creds.Fields() {
		if f.Value == "" {
			return goerr.Wrap(&MissingFieldError{Field: f.Name}, "invalid release signing configuration")
		}
	}
	return nil
}

// ResolveStoreFile resolves a keystore path the way Gradle's file() does in the app module
func ResolveStoreFile(moduleDir, storeFile string) string {
	if storeFile == "" || filepath.IsAbs(storeFile) {
		return storeFile
	}
	return filepath.Join(moduleDir, storeFile)
}

// AssembleInput describes one build invocation
type AssembleInput struct {
	BuildType         types.BuildType
	KeyPropertiesPath string
	ModuleDir         string
	Properties        properties.Properties
}

// Descriptor assembles the packaging configuration for the native toolchain
type Descriptor struct {
	settings model.BuildSettings
	versions interfaces.VersionProvider
}

// NewDescriptor creates a Descriptor for the given module settings
func NewDescriptor(settings model.BuildSettings, versions interfaces.VersionProvider) *Descriptor {
	return &Descriptor{
		settings: settings,
		versions: versions,
	}
}

// Assemble performs the single read-resolve-populate pass
func (d *Descriptor) Assemble(ctx context.Context, input *AssembleInput) (*model.PackagingConfig, error) {
	logger := ctxlog.From(ctx)

	if err := d.settings.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid build settings")
	}

	creds, err := LoadSigningCredentials(ctx, input.KeyPropertiesPath)
	if err != nil {
		return nil, err
	}

	admob := ResolvePlaceholder(input.Properties, types.AdmobAppIDProperty, types.DefaultAdmobAppID)

	version, err := d.versions.Version(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve application version")
	}

	cfg := &model.PackagingConfig{
		Plugins:    append([]string(nil), d.settings.Plugins...),
		Namespace:  d.settings.Namespace,
		CompileSdk: d.settings.CompileSdk,
		NdkVersion: d.settings.NdkVersion,
		CompileOptions: model.CompileOptions{
			SourceCompatibility: d.settings.JavaVersion,
			TargetCompatibility: d.settings.JavaVersion,
		},
		KotlinOptions: model.KotlinOptions{
			JvmTarget: d.settings.JavaVersion,
		},
		DefaultConfig: model.DefaultConfig{
			ApplicationIdentity: model.ApplicationIdentity{
				ApplicationID: d.settings.ApplicationID,
				MinSdk:        d.settings.MinSdk,
				TargetSdk:     d.settings.TargetSdk,
				VersionCode:   version.Code,
				VersionName:   version.Name,
			},
			ManifestPlaceholders: map[string]string{
				admob.Name: admob.Value,
			},
		},
		Flutter: model.FlutterConfig{
			Source: d.settings.FlutterSource,
		},
	}

	switch input.BuildType {
	case types.BuildTypeRelease, types.BuildTypeDebug:
	default:
		return nil, goerr.New("unsupported build type", goerr.V("build_type", input.BuildType))
	}

	if input.BuildType.RequiresSigning() {
		if err := ValidateSigning(creds); err != nil {
			return nil, goerr.Wrap(err, "failed to assemble signing configuration",
				goerr.V("path", input.KeyPropertiesPath))
		}

		signing := *creds
		signing.StoreFile = ResolveStoreFile(input.ModuleDir, creds.StoreFile)
		cfg.SigningConfigs = []model.SigningConfig{
			{Name: types.ReleaseSigningConfig, SigningCredentials: signing},
		}
		cfg.BuildTypes = []model.BuildType{
			{Name: string(input.BuildType), SigningConfig: types.ReleaseSigningConfig},
		}
	} else {
		cfg.BuildTypes = []model.BuildType{
			{Name: string(input.BuildType), SigningConfig: types.DebugSigningConfig},
		}
	}

	logger.Info("Assembled packaging configuration",
		slog.String("build_type", string(input.BuildType)),
		slog.String("application_id", cfg.DefaultConfig.ApplicationID),
		slog.String("version_name", cfg.DefaultConfig.VersionName),
		slog.Int("version_code", cfg.DefaultConfig.VersionCode),
	)

	return cfg, nil
}
