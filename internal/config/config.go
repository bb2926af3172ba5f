// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .poster.yaml、$XDG_CONFIG_HOME/poster/config.yaml 等
//  3. 环境变量 - POSTER_ 前缀，如 POSTER_TEMPLATE_DIR
//  4. CLI flags - 如 --template-dir
package config

import (
	"time"
)

// EnvPrefix 环境变量前缀。
const EnvPrefix = "POSTER_"

// Config 应用配置。
type Config struct {
	Template TemplateConfig `json:"template" desc:"模板配置"`
	Output   OutputConfig   `json:"output" desc:"产物配置"`
	Server   ServerConfig   `json:"server" desc:"服务端配置"`
	Log      LogConfig      `json:"log" desc:"日志配置"`
}

// TemplateConfig 模板配置。
type TemplateConfig struct {
	Dir string `json:"dir" desc:"HTML 模板目录"`
}

// OutputConfig 产物配置。
type OutputConfig struct {
	Dir string `json:"dir" desc:"海报输出目录"`
}

// ServerConfig 服务端配置。
type ServerConfig struct {
	Addr     string        `json:"addr" desc:"服务器监听地址"`
	Timeout  time.Duration `json:"timeout" desc:"HTTP 读写超时"`
	Idletime time.Duration `json:"idletime" desc:"HTTP 空闲超时"`
	MaxBody  int64         `json:"max-body" desc:"请求体大小上限（字节）"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别 debug/info/warn/error"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Template: TemplateConfig{
			Dir: "templates",
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Server: ServerConfig{
			Addr:     ":40117",
			Timeout:  15 * time.Second,
			Idletime: 60 * time.Second,
			MaxBody:  1 << 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
