// Package pdf 实现按行提交的纯文本排版引擎：调用方逐行喂文本，
// 引擎负责贪心换行、行距推进与自动翻页，再把落字指令交给可替换的
// 输出后端（renderer.Document）。字体度量同样走接口（layout.Metrics），
// 引擎本身不读任何字体文件。
package pdf

import (
	"fmt"

	"github.com/Horatio-Blackwood/PlainPdf/font"
	"github.com/Horatio-Blackwood/PlainPdf/layout"
	"github.com/Horatio-Blackwood/PlainPdf/renderer"
)

// Document 是排版引擎的句柄。所有位置状态集中在 layout.Cursor，
// 当前内容流与页号跟着光标走；一旦底层写入失败，文档整体作废。
type Document struct {
	sink    renderer.Document
	metrics layout.Metrics
	geom    layout.PageGeometry
	cursor  *layout.Cursor

	stream renderer.Stream
	pageNo int

	font font.Font
	size int

	closed bool
}

// New 创建文档并打开第一页。opts 的零值字段逐项落到缺省值。
func New(sink renderer.Document, metrics layout.Metrics, opts Options) (*Document, error) {
	if sink == nil {
		return nil, fmt.Errorf("输出后端不能为空")
	}
	if metrics == nil {
		return nil, fmt.Errorf("字体度量不能为空")
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	d := &Document{
		sink:    sink,
		metrics: metrics,
		geom:    opts.Geometry,
		cursor:  layout.NewCursor(opts.Geometry),
		font:    opts.Font,
		size:    opts.Size,
	}
	if err := d.openPage(); err != nil {
		return nil, err
	}
	return d, nil
}

// RenderLine 以缺省字体与字号排版一行。
func (d *Document) RenderLine(text string) error {
	return d.RenderLineAs(text, d.font, d.size)
}

// RenderLineSized 以缺省字体、指定字号排版一行。
func (d *Document) RenderLineSized(text string, size int) error {
	return d.RenderLineAs(text, d.font, size)
}

// RenderLineAs 以指定字体与字号排版一行。行内文本按词贪心切段，
// 放不下的词挪到下一段，每段各占一行；单个超宽的词不截断，独占一行。
// 每画完一段，光标越过下边界阈值就翻页，于是一行长文本可以跨页。
// 空白行（去掉首尾空白后为空）不产生任何输出。
func (d *Document) RenderLineAs(text string, f font.Font, size int) error {
	if err := d.check(f, size); err != nil {
		return err
	}
	offset, err := layout.LineOffset(d.metrics, f, size)
	if err != nil {
		return d.fatal("render", text, f, size, err)
	}
	seg := layout.SplitLine(d.metrics, f, size, d.geom.UsableWidth(), text)
	for seg.Scan() {
		if err := d.writeSegment(seg.Text(), f, size, offset); err != nil {
			return d.fatal("render", seg.Text(), f, size, err)
		}
	}
	if err := seg.Err(); err != nil {
		return d.fatal("render", text, f, size, err)
	}
	return nil
}

// InsertBlankLine 以缺省字体与字号的行高空一行。
func (d *Document) InsertBlankLine() error {
	return d.InsertBlankLineAs(d.font, d.size)
}

// InsertBlankLineSized 以缺省字体、指定字号的行高空一行。
func (d *Document) InsertBlankLineSized(size int) error {
	return d.InsertBlankLineAs(d.font, size)
}

// InsertBlankLineAs 以指定字体与字号的行高空一行。
// 空行只推进基线：不设字体、不落字，压过下边界也不翻页。
func (d *Document) InsertBlankLineAs(f font.Font, size int) error {
	if err := d.check(f, size); err != nil {
		return err
	}
	offset, err := layout.LineOffset(d.metrics, f, size)
	if err != nil {
		return d.fatal("blank", "", f, size, err)
	}
	if err := d.stream.MoveBy(0, -offset); err != nil {
		return d.fatal("blank", "", f, size, err)
	}
	d.cursor.Advance(-offset)
	return nil
}

// SetDefaultFont 更换后续行的缺省字体。
func (d *Document) SetDefaultFont(f font.Font) error {
	if d.closed {
		return ErrClosed
	}
	if !f.Valid() {
		return ErrInvalidFont
	}
	d.font = f
	return nil
}

// SetDefaultSize 更换后续行的缺省字号（pt）。
func (d *Document) SetDefaultSize(size int) error {
	if d.closed {
		return ErrClosed
	}
	if size <= 0 {
		return ErrInvalidSize
	}
	d.size = size
	return nil
}

// DefaultFont 返回当前缺省字体。
func (d *Document) DefaultFont() font.Font { return d.font }

// DefaultSize 返回当前缺省字号。
func (d *Document) DefaultSize() int { return d.size }

// PageCount 返回已开出的页数。
func (d *Document) PageCount() int { return d.pageNo }

// SaveAs 结束当前内容流并把文档写到 path。
// 无论成败，调用之后文档都不再接受操作。
func (d *Document) SaveAs(path string) error {
	if d.closed {
		return ErrClosed
	}
	if err := d.stream.Close(); err != nil {
		return d.fatal("save", "", 0, 0, err)
	}
	d.closed = true
	if err := d.sink.Save(path); err != nil {
		return &RenderError{Op: "save", Page: d.pageNo, Err: err}
	}
	return nil
}

// Close 丢弃未保存的文档并释放后端资源。
// 在已保存或已关闭的文档上调用是无害的空操作。
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	var firstErr error
	if d.stream != nil {
		firstErr = d.stream.Close()
	}
	if err := d.sink.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// writeSegment 画一段文本：设字体、基线下移一行、落字，
// 最后检查光标是否越过下边界阈值，越过就翻页。
func (d *Document) writeSegment(text string, f font.Font, size int, offset float64) error {
	if err := d.stream.SetFont(f, size); err != nil {
		return err
	}
	if err := d.stream.MoveBy(0, -offset); err != nil {
		return err
	}
	d.cursor.Advance(-offset)
	if err := d.stream.Draw(text); err != nil {
		return err
	}
	if d.cursor.NeedsNewPage() {
		if err := d.stream.Close(); err != nil {
			return err
		}
		return d.openPage()
	}
	return nil
}

// openPage 新开一页：光标回页首，并把新流移动到光标处。
// 调用前当前流必须已经关闭。
func (d *Document) openPage() error {
	pg, err := d.sink.AddPage()
	if err != nil {
		return err
	}
	st, err := pg.OpenStream()
	if err != nil {
		return err
	}
	d.pageNo++
	d.stream = st
	d.cursor.ResetToTop()
	return st.MoveBy(d.cursor.X(), d.cursor.Y())
}

// check 校验一次排版调用的文档状态与参数。
func (d *Document) check(f font.Font, size int) error {
	if d.closed {
		return ErrClosed
	}
	if !f.Valid() {
		return ErrInvalidFont
	}
	if size <= 0 {
		return ErrInvalidSize
	}
	return nil
}

// fatal 标记文档已写坏并包装出事现场。
// 底层一旦失败，流内状态不可信，之后的调用一律返回 ErrClosed。
func (d *Document) fatal(op, text string, f font.Font, size int, err error) error {
	d.closed = true
	return &RenderError{Op: op, Page: d.pageNo, Text: text, Font: f, Size: size, Err: err}
}
