// Package version 提供版本信息与 version 子命令。
package version

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称，同时用于配置文件搜索路径。
const AppRawName = "poster"

// 构建时通过 -ldflags "-X" 注入。
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

// GetVersion 返回版本号；未注入时读取模块构建信息。
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "dev"
}

// Command 版本命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s (commit %s, built %s, %s)\n",
			AppRawName, GetVersion(), orUnknown(Commit), orUnknown(BuildTime), runtime.Version())
		return err
	},
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}
