package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/manoooz/apkconf/pkg/cli/config"
	"github.com/manoooz/apkconf/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	loggerCfg := config.Logger{Writer: stderr}
	var logger *slog.Logger

	app := &cli.Command{
		Name:      "apkconf",
		Usage:     "Resolve Android release signing and packaging configuration",
		Version:   types.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdResolve(),
			cmdCheck(),
			cmdPlaceholder(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
