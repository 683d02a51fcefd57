package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/manoooz/apkconf/pkg/cli/config"
	"github.com/manoooz/apkconf/pkg/infra/emitter"
	"github.com/manoooz/apkconf/pkg/infra/gradleprops"
	"github.com/manoooz/apkconf/pkg/infra/properties"
	"github.com/manoooz/apkconf/pkg/infra/pubspec"
	"github.com/manoooz/apkconf/pkg/usecase"
)

func cmdResolve() *cli.Command {
	var (
		projectCfg  config.Project
		settingsCfg config.Settings
		outputCfg   config.Output
	)

	flags := append(projectCfg.Flags(), settingsCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Assemble the packaging configuration for the native toolchain",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			buildType, err := projectCfg.ParseBuildType()
			if err != nil {
				return err
			}
			format, err := emitter.ParseFormat(outputCfg.Format)
			if err != nil {
				return err
			}
			settings, err := settingsCfg.Load()
			if err != nil {
				return err
			}
			props, err := loadProjectProperties(&projectCfg)
			if err != nil {
				return err
			}

			logger.Debug("Resolving packaging configuration",
				slog.String("android_dir", projectCfg.AndroidDir),
				slog.String("build_type", string(buildType)),
				slog.Int("project_properties", len(props)),
			)

			versions := pubspec.New(projectCfg.PubspecPath(),
				pubspec.WithBuildName(projectCfg.BuildName),
				pubspec.WithBuildNumber(projectCfg.BuildNumber),
			)

			cfg, err := usecase.NewDescriptor(settings, versions).Assemble(ctx, &usecase.AssembleInput{
				BuildType:         buildType,
				KeyPropertiesPath: projectCfg.KeyPropertiesPath(),
				ModuleDir:         projectCfg.ModuleDir(),
				Properties:        props,
			})
			if err != nil {
				return err
			}

			if outputCfg.Redact {
				cfg = cfg.Redacted()
			}

			var w io.Writer = c.Root().Writer
			if outputCfg.Path != "" {
				f, err := os.OpenFile(outputCfg.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", outputCfg.Path))
				}
				defer f.Close()
				w = f
			}

			if err := emitter.Write(w, cfg, format); err != nil {
				return err
			}

			if outputCfg.Path != "" {
				logger.Info("Wrote packaging configuration", slog.String("path", outputCfg.Path))
			}
			return nil
		},
	}
}

func loadProjectProperties(projectCfg *config.Project) (properties.Properties, error) {
	return gradleprops.Load(
		gradleprops.WithFile(projectCfg.GradlePropertiesPath()),
		gradleprops.WithEnviron(os.Environ()),
		gradleprops.WithOverrides(projectCfg.Properties),
	)
}
