package config

import "github.com/urfave/cli/v3"

// Output holds configuration for the emitted packaging descriptor
type Output struct {
	Format string
	Path   string
	Redact bool
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format (toml, json)",
			Value:       "toml",
			Destination: &c.Format,
			Sources:     cli.EnvVars("APKCONF_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Write to file instead of stdout",
			Destination: &c.Path,
			Sources:     cli.EnvVars("APKCONF_OUTPUT"),
		},
		&cli.BoolFlag{
			Name:        "redact",
			Usage:       "Replace signing passwords in the output",
			Destination: &c.Redact,
			Sources:     cli.EnvVars("APKCONF_REDACT"),
		},
	}
}
