// Package templates 提供列出模板的命令。
package templates

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-poster/internal/command"
	"github.com/lwmacct/251014-go-pkg-poster/internal/poster"
)

// Command 模板列表命令
var Command = &cli.Command{
	Name:   "templates",
	Usage:  "列出模板目录中的模板",
	Flags:  command.CommonFlags(),
	Action: action,
}

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Load(cmd)
	if err != nil {
		return err
	}

	names, err := poster.NewStore(cfg.Template.Dir).List()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.Root().Writer, name); err != nil {
			return err
		}
	}

	return nil
}
