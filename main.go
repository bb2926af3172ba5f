package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-poster/internal/command/render"
	"github.com/lwmacct/251014-go-pkg-poster/internal/command/server"
	"github.com/lwmacct/251014-go-pkg-poster/internal/command/templates"
	"github.com/lwmacct/251014-go-pkg-poster/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "海报模板渲染工具",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			version.Command,
			render.Command,
			templates.Command,
			server.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
