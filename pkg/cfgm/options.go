package cfgm

import (
	"path/filepath"

	"github.com/urfave/cli/v3"
)

type options struct {
	appName     string // 用于生成默认搜索路径
	cmd         *cli.Command
	configPaths []string
	baseDir     string // 相对路径的解析基准，空表示当前工作目录
	envPrefix   string

	noTemplateExpansion bool // 是否禁用配置文件 ${...} 展开（默认启用）
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，显式设置的 flags 优先级最高。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 覆盖配置文件搜索路径，按顺序查找，命中首个即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithBaseDir 设置相对配置路径的解析基准，绝对路径不受影响。
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithEnvPrefix 启用带前缀的环境变量覆盖（见 [Load]）。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

func (o *options) resolve(paths []string) []string {
	if o.baseDir == "" {
		return paths
	}

	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(o.baseDir, p)
		}
	}

	return out
}

// WithoutTemplateExpansion 禁用配置文件的 ${...} 展开，保留原始字符串。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}
