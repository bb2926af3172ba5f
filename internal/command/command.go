// Package command 提供各子命令共用的配置、日志与 flag。
package command

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-poster/internal/config"
	"github.com/lwmacct/251014-go-pkg-poster/internal/poster"
	"github.com/lwmacct/251014-go-pkg-poster/internal/version"
	"github.com/lwmacct/251014-go-pkg-poster/pkg/cfgm"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// CommonFlags 返回模板目录、输出目录与日志级别 flag。
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "template-dir",
			Aliases: []string{"t"},
			Value:   Defaults.Template.Dir,
			Usage:   "HTML 模板目录",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Value: Defaults.Output.Dir,
			Usage: "海报输出目录",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别 debug/info/warn/error",
		},
	}
}

// LoadOptions 返回各子命令共用的 cfgm 选项。
func LoadOptions() []cfgm.Option {
	return []cfgm.Option{cfgm.WithEnvPrefix(config.EnvPrefix)}
}

// Load 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags，并初始化日志。
func Load(cmd *cli.Command) (*config.Config, error) {
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), version.AppRawName, LoadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := SetupLogging(cfg.Log.Level); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetupLogging 按级别把默认 slog 输出到 stderr。
func SetupLogging(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	return nil
}

// NewGenerator 根据配置创建海报生成器。
func NewGenerator(cfg *config.Config) *poster.Generator {
	return poster.New(poster.NewStore(cfg.Template.Dir), poster.HTMLRenderer{}, cfg.Output.Dir)
}

// ParseLevel 解析日志级别，大小写不敏感。
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}
