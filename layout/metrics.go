package layout

import "github.com/Horatio-Blackwood/PlainPdf/font"

// Metrics 提供字体度量，由具体 PDF 后端实现。两个方法的返回值都以
// 字号的千分之一为单位（标准字形度量约定）；换算到文档单位（pt）
// 统一经由本文件的辅助函数完成。
type Metrics interface {
	// StringWidth 返回整段文本在指定字体下的宽度（含空格）。
	StringWidth(f font.Font, s string) (float64, error)
	// BBoxHeight 返回字体 FontBBox 的高度。
	BBoxHeight(f font.Font) (float64, error)
}

// ScaledWidth 把 StringWidth 的结果换算为 pt。
func ScaledWidth(m Metrics, f font.Font, size int, s string) (float64, error) {
	w, err := m.StringWidth(f, s)
	if err != nil {
		return 0, err
	}
	return w / 1000 * float64(size), nil
}

// LineOffset 返回一行文本的垂直步进（pt），由 FontBBox 高度按字号缩放得出。
func LineOffset(m Metrics, f font.Font, size int) (float64, error) {
	h, err := m.BBoxHeight(f)
	if err != nil {
		return 0, err
	}
	return h / 1000 * float64(size), nil
}
