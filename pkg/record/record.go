// Package record 加载海报数据记录。
//
// 记录是扁平的键值对，支持 YAML / JSON / TOML，按文件扩展名选择解析器。
// 嵌套对象与数组会被拒绝，模板指令只认标量值。
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251014-go-pkg-poster/pkg/posterexp"
)

var (
	// ErrUnsupportedFormat 表示无法识别的记录格式。
	ErrUnsupportedFormat = errors.New("record: unsupported format")
	// ErrNotFlat 表示记录包含嵌套对象或数组。
	ErrNotFlat = errors.New("record: value is not a scalar")
)

// Format 记录文件格式。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath 根据扩展名推断格式。
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// FormatFromContentType 根据 HTTP Content-Type 推断格式，空值按 JSON 处理。
func FormatFromContentType(contentType string) (Format, error) {
	mediaType, _, _ := strings.Cut(contentType, ";")
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "", "application/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML, nil
	case "application/toml", "text/toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, contentType)
}

// Load 读取记录文件。
func Load(path string) (posterexp.Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", path, err)
	}

	rec, err := Parse(format, content)
	if err != nil {
		return nil, fmt.Errorf("parse record %s: %w", path, err)
	}

	return rec, nil
}

// Decode 从 r 读取并解析记录，适用于 HTTP 请求体。
func Decode(r io.Reader, format Format) (posterexp.Record, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	return Parse(format, content)
}

// Parse 解析记录内容并校验为扁平结构。
//
// 空内容得到空记录。JSON 数字统一转为 int64 或 float64。
func Parse(format Format, content []byte) (posterexp.Record, error) {
	raw := map[string]any{}
	if len(bytes.TrimSpace(content)) > 0 {
		var err error
		switch format {
		case FormatYAML:
			err = yamlv3.Unmarshal(content, &raw)
		case FormatJSON:
			dec := json.NewDecoder(bytes.NewReader(content))
			dec.UseNumber()
			err = dec.Decode(&raw)
		case FormatTOML:
			err = toml.Unmarshal(content, &raw)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
		}
		if err != nil {
			return nil, err
		}
	}

	rec := make(posterexp.Record, len(raw))
	for key, value := range raw {
		rec[key] = normalize(value)
	}
	if err := Validate(rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// Validate 校验记录中只包含标量值。
func Validate(rec posterexp.Record) error {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch rec[key].(type) {
		case map[string]any, map[any]any, []any:
			return fmt.Errorf("%w: %s", ErrNotFlat, key)
		}
	}

	return nil
}

func normalize(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}

	return n.String()
}
