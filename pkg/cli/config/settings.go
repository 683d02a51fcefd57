package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/manoooz/apkconf/pkg/domain/model"
)

// Settings points at an optional TOML file overriding the module's fixed values
type Settings struct {
	Path string
}

// Flags returns CLI flags for settings configuration
func (c *Settings) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file overriding application id, SDK levels and toolchain versions",
			Destination: &c.Path,
			Sources:     cli.EnvVars("APKCONF_CONFIG"),
		},
	}
}

// Load returns the default build settings with the file's values applied
func (c *Settings) Load() (model.BuildSettings, error) {
	settings := model.DefaultBuildSettings()
	if c.Path == "" {
		return settings, nil
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return settings, goerr.Wrap(err, "failed to open settings file", goerr.V("path", c.Path))
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		return settings, goerr.Wrap(err, "failed to decode settings file", goerr.V("path", c.Path))
	}

	if err := settings.Validate(); err != nil {
		return settings, goerr.Wrap(err, "invalid settings file", goerr.V("path", c.Path))
	}

	return settings, nil
}
