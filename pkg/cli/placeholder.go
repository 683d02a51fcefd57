package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/manoooz/apkconf/pkg/cli/config"
	"github.com/manoooz/apkconf/pkg/domain/types"
	"github.com/manoooz/apkconf/pkg/usecase"
)

func cmdPlaceholder() *cli.Command {
	var projectCfg config.Project

	return &cli.Command{
		Name:      "placeholder",
		Usage:     "Print the resolved value of a manifest placeholder",
		ArgsUsage: "[NAME [FALLBACK]]",
		Flags:     projectCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			name, fallback := types.AdmobAppIDProperty, types.DefaultAdmobAppID
			switch c.Args().Len() {
			case 0:
			case 1:
				name, fallback = c.Args().Get(0), ""
			case 2:
				name, fallback = c.Args().Get(0), c.Args().Get(1)
			default:
				return goerr.New("too many arguments", goerr.V("args", c.Args().Slice()))
			}

			props, err := loadProjectProperties(&projectCfg)
			if err != nil {
				return err
			}

			ph := usecase.ResolvePlaceholder(props, name, fallback)
			fmt.Fprintln(c.Root().Writer, ph.Value)
			return nil
		},
	}
}
