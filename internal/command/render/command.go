// Package render 提供离线渲染海报的命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-poster/internal/command"
)

// Command 渲染命令
var Command = &cli.Command{
	Name:      "render",
	Usage:     "用数据记录渲染模板并保存",
	ArgsUsage: "<template> [data-file]",
	Action:    action,
	Flags: append(command.CommonFlags(),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "输出文件名，默认 <template>-<毫秒时间戳>.html",
		},
		&cli.BoolFlag{
			Name:  "sample",
			Usage: "未提供数据文件时使用内置示例房源",
		},
		&cli.BoolFlag{
			Name:  "stdout",
			Usage: "只把展开结果打印到标准输出，不写文件",
		},
	),
}
