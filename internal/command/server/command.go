// Package server 提供海报渲染 HTTP 服务命令。
package server

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-poster/internal/command"
	"github.com/lwmacct/251014-go-pkg-poster/internal/version"
)

// Command 服务器命令
var Command = &cli.Command{
	Name:     "server",
	Usage:    "启动海报渲染 HTTP 服务",
	Action:   action,
	Commands: []*cli.Command{version.Command},
	Flags: append(command.CommonFlags(),
		&cli.StringFlag{
			Name:    "server-addr",
			Aliases: []string{"a"},
			Value:   command.Defaults.Server.Addr,
			Usage:   "服务器监听地址",
		},
		&cli.DurationFlag{
			Name:  "server-timeout",
			Value: command.Defaults.Server.Timeout,
			Usage: "HTTP 读写超时",
		},
		&cli.DurationFlag{
			Name:  "server-idletime",
			Value: command.Defaults.Server.Idletime,
			Usage: "HTTP 空闲超时",
		},
		&cli.Int64Flag{
			Name:  "server-max-body",
			Value: command.Defaults.Server.MaxBody,
			Usage: "请求体大小上限（字节）",
		},
	),
}
