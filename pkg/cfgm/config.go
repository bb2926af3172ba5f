package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-poster/pkg/templexp"
)

// DefaultPaths 返回配置文件的默认搜索顺序，先命中者生效。
//
// 提供 appName 时（以 poster 为例）：
//  1. ./.poster.yaml
//  2. $XDG_CONFIG_HOME/poster/config.yaml
//  3. /etc/poster/config.yaml
//
// 之后总是追加 config.yaml 与 config/config.yaml。
func DefaultPaths(appName string) []string {
	var paths []string
	if appName != "" {
		paths = append(paths,
			"."+appName+".yaml",
			filepath.Join(xdg.ConfigHome, appName, "config.yaml"),
			filepath.Join("/etc", appName, "config.yaml"),
		)
	}

	return append(paths, "config.yaml", filepath.Join("config", "config.yaml"))
}

// Load 按 默认值 → 配置文件 → 环境变量 → CLI flags 的顺序合并配置。
//
// 配置 key 取自 json tag；YAML 与 JSON 文件共用同一套 key。
func Load[T any](defaults T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	merged := structToMap(defaults)

	fileMap, path, err := readFirstConfig(o.resolve(o.configPaths), !o.noTemplateExpansion)
	if err != nil {
		return nil, err
	}
	if path != "" {
		mergeMaps(merged, fileMap)
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)
	} else {
		slog.Debug("No config file found, using defaults")
	}

	keys := collectConfigKeys(reflect.TypeOf(defaults))
	if o.envPrefix != "" {
		for envKey, key := range envBindings(o.envPrefix, keys) {
			if val, ok := os.LookupEnv(envKey); ok && val != "" {
				setByPath(merged, key, val)
				slog.Debug("Loaded env binding", "env", envKey, "key", key)
			}
		}
	}

	if o.cmd != nil {
		applyFlags(o.cmd, merged, reflect.TypeOf(defaults), "")
	}

	var cfg T
	if err := decodeConfigMap(merged, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的 CLI 版本，自动注入 [WithCommand] 与 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaults T, appName string, opts ...Option) (*T, error) {
	base := []Option{WithCommand(cmd), WithAppName(appName)}

	return Load(defaults, append(base, opts...)...)
}

// MustLoadCmd 调用 [LoadCmd]，失败时 panic，仅用于启动阶段。
func MustLoadCmd[T any](cmd *cli.Command, defaults T, appName string, opts ...Option) *T {
	cfg, err := LoadCmd(cmd, defaults, appName, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// readFirstConfig 读取第一个存在的配置文件；都不存在时 path 为空。
//
// expand 为 true 时先对文件内容做 ${...} 展开再解析。
func readFirstConfig(paths []string, expand bool) (map[string]any, string, error) {
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		if expand {
			expanded, err := templexp.ExpandTemplate(string(content))
			if err != nil {
				return nil, "", fmt.Errorf("expand template in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, "", fmt.Errorf("parse config file %s: %w", path, err)
		}

		return fileMap, path, nil
	}

	return nil, "", nil
}

// collectConfigKeys 返回结构体全部叶子 key，如 server.addr。
func collectConfigKeys(typ reflect.Type) []string {
	var keys []string
	walkFields(typ, "", func(key string, _ reflect.Type) {
		keys = append(keys, key)
	})

	return keys
}

// walkFields 深度优先遍历带 json tag 的叶子字段。
func walkFields(typ reflect.Type, prefix string, fn func(key string, typ reflect.Type)) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isStructType(field.Type) {
			walkFields(field.Type, key, fn)

			continue
		}
		fn(key, field.Type)
	}
}

// envBindings 生成 环境变量名 → 配置 key 的映射。
//
// "." 与 "-" 转为 "_" 后大写并加前缀：
// 前缀 POSTER_ 时 server.read-timeout → POSTER_SERVER_READ_TIMEOUT。
func envBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

// applyFlags 把用户显式设置的 flag 写入配置 map。
//
// flag 名为 key 中 "." 替换为 "-"：template.dir → --template-dir。
func applyFlags(cmd *cli.Command, dst map[string]any, typ reflect.Type, prefix string) {
	walkFields(typ, prefix, func(key string, fieldType reflect.Type) {
		name := strings.ReplaceAll(key, ".", "-")
		if !cmd.IsSet(name) {
			return
		}
		if val, ok := flagValue(cmd, name, fieldType); ok {
			setByPath(dst, key, val)
		}
	})
}

func flagValue(cmd *cli.Command, name string, typ reflect.Type) (any, bool) {
	if typ == reflect.TypeFor[time.Duration]() {
		return cmd.Duration(name), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(name), true
	case reflect.Bool:
		return cmd.Bool(name), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return cmd.Int(name), true
	case reflect.Int64:
		return cmd.Int64(name), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmd.Uint64(name), true
	case reflect.Float32, reflect.Float64:
		return cmd.Float64(name), true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cmd.StringSlice(name), true
		}
	}

	return nil, false
}
