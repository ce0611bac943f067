package renderer

import "github.com/Horatio-Blackwood/PlainPdf/font"

// 本包定义布局引擎与 PDF 后端之间的接口：文档 → 页 → 内容流。
// 引擎只通过这三个接口驱动后端，绝不接触具体的 PDF 编码。

// Document 表示一份正在构建的输出文档。Save 或 Close 之后不可再用。
type Document interface {
	// AddPage 追加一页并使其成为当前页。
	AddPage() (Page, error)
	// Save 结束文档并把完整内容写入 path。
	Save(path string) error
	// Close 丢弃文档，不写任何输出。重复调用应当无害。
	Close() error
}

// Page 表示文档中的一页。同一时间每页最多持有一个打开的内容流。
type Page interface {
	// OpenStream 在页上打开文本内容流。流的初始位置在页面原点
	//（左下角），由调用方负责移动到书写位置。
	OpenStream() (Stream, error)
}

// Stream 表示一页上打开的文本内容流，写入顺序即绘制顺序。
type Stream interface {
	// SetFont 设置后续绘制使用的字体与字号。
	SetFont(f font.Font, size int) error
	// MoveBy 把文本位置相对当前位置平移 (dx, dy)。
	MoveBy(dx, dy float64) error
	// Draw 在当前位置绘制一段文本，基线对齐。
	Draw(text string) error
	// Close 结束内容流，之后不得再写入。
	Close() error
}
