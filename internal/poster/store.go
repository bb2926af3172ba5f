// Package poster 组装海报：读取模板、展开指令、渲染并保存产物。
package poster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TemplateExt 模板文件扩展名。
const TemplateExt = ".html"

var (
	// ErrTemplateNotFound 表示模板文件不存在。
	ErrTemplateNotFound = errors.New("poster: template not found")
	// ErrInvalidName 表示模板名或输出文件名包含路径成分。
	ErrInvalidName = errors.New("poster: invalid name")
)

// Store 按名称读取模板目录中的 HTML 模板。
type Store struct {
	dir string
}

// NewStore 创建以 dir 为根的模板库。
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir 返回模板目录。
func (s *Store) Dir() string {
	return s.dir
}

// Load 读取 <dir>/<name>.html 的原始文本。
func (s *Store) Load(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name+TemplateExt)
	content, err := os.ReadFile(path) //nolint:gosec // name is validated above
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("read template %s: %w", path, err)
	}

	return string(content), nil
}

// List 返回模板目录中的全部模板名，按字典序排列。
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list templates in %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != TemplateExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), TemplateExt))
	}
	sort.Strings(names)

	return names, nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}
