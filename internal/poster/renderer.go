package poster

import "context"

// Renderer 将展开后的 HTML 转为最终产物。
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
	// Ext 返回产物文件扩展名（含 "."）。
	Ext() string
}

// HTMLRenderer 原样输出展开后的 HTML。
type HTMLRenderer struct{}

// Render 实现 [Renderer]。
func (HTMLRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return []byte(html), nil
}

// Ext 实现 [Renderer]。
func (HTMLRenderer) Ext() string {
	return ".html"
}
