package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/manoooz/apkconf/pkg/cli/config"
	"github.com/manoooz/apkconf/pkg/usecase"
)

func cmdCheck() *cli.Command {
	var projectCfg config.Project

	return &cli.Command{
		Name:  "check",
		Usage: "Verify that release signing credentials are complete",
		Flags: projectCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			path := projectCfg.KeyPropertiesPath()
			creds, err := usecase.LoadSigningCredentials(ctx, path)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			ok := color.New(color.FgGreen).SprintFunc()
			ng := color.New(color.FgRed, color.Bold).SprintFunc()

			fmt.Fprintf(w, "%s\n", path)
			for _, f := range creds.Fields() {
				status := ok("ok")
				if f.Value == "" {
					status = ng("missing")
				}
				fmt.Fprintf(w, "  %-14s %s\n", f.Name, status)
			}

			if err := usecase.ValidateSigning(creds); err != nil {
				return err
			}

			storeFile := usecase.ResolveStoreFile(projectCfg.ModuleDir(), creds.StoreFile)
			if _, err := os.Stat(storeFile); err != nil {
				fmt.Fprintf(w, "  %-14s %s\n", "keystore", ng("not found"))
				if errors.Is(err, fs.ErrNotExist) {
					return goerr.New("keystore file not found", goerr.V("path", storeFile))
				}
				return goerr.Wrap(err, "failed to stat keystore file", goerr.V("path", storeFile))
			}
			fmt.Fprintf(w, "  %-14s %s\n", "keystore", ok("ok"))

			return nil
		},
	}
}
