// Package cfgm 提供分层配置加载。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - defaults 参数
//  2. 配置文件 - [WithConfigPaths] 或 [WithAppName] 生成的 [DefaultPaths]
//  3. 环境变量 - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]，仅用户显式设置的 flag 生效
//
// 配置 key 使用 json tag 描述，YAML 与 JSON 共享同一套 key。
//
// # 快速开始
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), "poster",
//	    cfgm.WithEnvPrefix("POSTER_"),
//	)
//
// # 模板展开
//
// 配置文件在解析前会做 Shell 参数展开（见 templexp 包），
// 如 dir: "${POSTER_ROOT:-.}/templates"。使用 [WithoutTemplateExpansion] 可禁用。
//
// # 映射规则
//
//   - 环境变量：前缀 + 大写 key，"." 与 "-" 转为 "_"，如 POSTER_SERVER_ADDR
//   - CLI flag：key 中 "." 转为 "-"，如 --server-addr
package cfgm
