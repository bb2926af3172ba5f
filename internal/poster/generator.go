package poster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lwmacct/251014-go-pkg-poster/pkg/posterexp"
)

// Generator 持有模板库、渲染器与输出目录。
//
// 渲染器等资源由调用方创建并注入，Generator 本身不持有全局状态，
// 可被多个请求并发使用。
type Generator struct {
	store     *Store
	renderer  Renderer
	outputDir string
	now       func() time.Time
	logger    *slog.Logger
}

// Option Generator 选项函数。
type Option func(*Generator)

// WithClock 替换生成默认文件名所用的时钟。
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger 设置日志记录器，默认使用 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New 创建 Generator；renderer 为 nil 时使用 [HTMLRenderer]。
func New(store *Store, renderer Renderer, outputDir string, opts ...Option) *Generator {
	if renderer == nil {
		renderer = HTMLRenderer{}
	}
	g := &Generator{
		store:     store,
		renderer:  renderer,
		outputDir: outputDir,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Store 返回模板库。
func (g *Generator) Store() *Store {
	return g.store
}

// Preview 返回模板展开后的文本，不写入任何文件。
func (g *Generator) Preview(ctx context.Context, name string, rec posterexp.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := g.store.Load(name)
	if err != nil {
		return "", err
	}

	return posterexp.Expand(content, rec), nil
}

// Generate 展开并渲染模板，保存到输出目录，返回产物路径。
//
// outputName 为空时使用 <模板名>-<毫秒时间戳><扩展名>。
func (g *Generator) Generate(ctx context.Context, name string, rec posterexp.Record, outputName string) (string, error) {
	if outputName != "" {
		if err := checkName(outputName); err != nil {
			return "", err
		}
	}

	html, err := g.Preview(ctx, name, rec)
	if err != nil {
		return "", err
	}

	artifact, err := g.renderer.Render(ctx, html)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil { //nolint:gosec // output is meant to be shared
		return "", fmt.Errorf("create output dir %s: %w", g.outputDir, err)
	}

	if outputName == "" {
		outputName = name + "-" + strconv.FormatInt(g.now().UnixMilli(), 10) + g.renderer.Ext()
	}
	outputPath := filepath.Join(g.outputDir, outputName)

	if err := os.WriteFile(outputPath, artifact, 0o644); err != nil { //nolint:gosec // output is meant to be shared
		return "", fmt.Errorf("write %s: %w", outputPath, err)
	}

	g.logger.Info("海报已保存", "template", name, "path", outputPath, "bytes", len(artifact))

	return outputPath, nil
}
