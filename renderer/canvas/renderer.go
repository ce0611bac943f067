package canvasrenderer

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/Horatio-Blackwood/PlainPdf/font"
	"github.com/Horatio-Blackwood/PlainPdf/fonts"
	"github.com/Horatio-Blackwood/PlainPdf/layout"
	"github.com/Horatio-Blackwood/PlainPdf/renderer"
)

// 基于 github.com/tdewolff/canvas 的后端：每页一个 canvas.Canvas，
// 统一经 renderers/pdf 写进同一个 PDF。canvas 的画布单位是 mm、原点
// 在左下角，与引擎的 pt 坐标只差一次换算，无需翻转坐标系。
// 字体用内置的 Go 字体族 TTF（见 fonts 包），按目录字体缓存 FontFamily。

// 度量用的参考字号：在 1000pt 下测得的宽度换算成 pt 后即为千分之一字号。
const metricsRefSize = 1000.0

// Document 在 canvas 之上实现 renderer.Document 与 layout.Metrics。
type Document struct {
	buf      bytes.Buffer
	writer   *pdf.PDF
	widthMM  float64
	heightMM float64

	cur       *page // 当前累积中的页，尚未渲染进写入器
	pageCount int

	fontMu   sync.Mutex
	families map[font.Font]*canvas.FontFamily

	closed bool
}

var (
	_ renderer.Document = (*Document)(nil)
	_ layout.Metrics    = (*Document)(nil)
)

// New 创建 US Letter 纵向文档。
func New() *Document { return NewWithSize(612, 792) }

// NewWithSize 创建自定义页面尺寸（pt）的文档。
func NewWithSize(width, height float64) *Document {
	d := &Document{
		widthMM:  width * layout.PtToMm,
		heightMM: height * layout.PtToMm,
		families: map[font.Font]*canvas.FontFamily{},
	}
	// 写入器创建时即持有第一页，后续页才需要 NewPage
	d.writer = pdf.New(&d.buf, d.widthMM, d.heightMM, nil)
	return d
}

// AddPage 把累积完的当前页渲染进 PDF，再开一页新画布。
func (d *Document) AddPage() (renderer.Page, error) {
	if d.closed {
		return nil, fmt.Errorf("文档已关闭")
	}
	d.flush()
	if d.pageCount > 0 {
		d.writer.NewPage(d.widthMM, d.heightMM)
	}
	c := canvas.New(d.widthMM, d.heightMM)
	d.cur = &page{doc: d, c: c, ctx: canvas.NewContext(c)}
	d.pageCount++
	return d.cur, nil
}

// Save 渲染最后一页、结束 PDF 并写入文件。
func (d *Document) Save(path string) error {
	if d.closed {
		return fmt.Errorf("文档已关闭")
	}
	d.closed = true
	d.flush()
	if err := d.writer.Close(); err != nil {
		return fmt.Errorf("写入 PDF 失败: %w", err)
	}
	if err := os.WriteFile(path, d.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

// Close 丢弃全部未保存内容。
func (d *Document) Close() error {
	d.closed = true
	d.cur = nil
	return nil
}

// flush 把当前页渲染进 PDF 写入器。
func (d *Document) flush() {
	if d.cur == nil {
		return
	}
	d.cur.c.RenderTo(d.writer)
	d.cur = nil
}

// StringWidth 实现 layout.Metrics：在参考字号下测量加载好的字体面，
// 宽度换算为 pt 后返回。
func (d *Document) StringWidth(f font.Font, s string) (float64, error) {
	face, err := d.face(f, metricsRefSize)
	if err != nil {
		return 0, err
	}
	return face.TextWidth(s) * layout.MmToPt, nil
}

// BBoxHeight 实现 layout.Metrics。高度取字体目录的静态 AFM 数据，
// 与 fpdf 后端一致，保证两个后端分页行为相同。
func (d *Document) BBoxHeight(f font.Font) (float64, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("未知字体 %v", f)
	}
	return f.BBoxHeight(), nil
}

// face 返回指定字号（pt）的字体面。
func (d *Document) face(f font.Font, size float64) (*canvas.FontFace, error) {
	fam, err := d.ensureFamily(f)
	if err != nil {
		return nil, err
	}
	return fam.Face(size, canvas.Black, styleOf(f), canvas.FontNormal), nil
}

// ensureFamily 按目录字体缓存加载好的 FontFamily。
func (d *Document) ensureFamily(f font.Font) (*canvas.FontFamily, error) {
	d.fontMu.Lock()
	defer d.fontMu.Unlock()

	if fam, ok := d.families[f]; ok {
		return fam, nil
	}
	data, err := fonts.Data(f)
	if err != nil {
		return nil, err
	}
	fam := canvas.NewFontFamily(f.Family())
	if err := fam.LoadFont(data, 0, styleOf(f)); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", f, err)
	}
	d.families[f] = fam
	return fam, nil
}

type page struct {
	doc *Document
	c   *canvas.Canvas
	ctx *canvas.Context
}

func (p *page) OpenStream() (renderer.Stream, error) {
	return &stream{page: p}, nil
}

// stream 跟踪流内的绝对文本位置（pt，左下角原点）。
type stream struct {
	page   *page
	x, y   float64
	face   *canvas.FontFace
	closed bool
}

func (s *stream) SetFont(f font.Font, size int) error {
	if s.closed {
		return fmt.Errorf("内容流已关闭")
	}
	face, err := s.page.doc.face(f, float64(size))
	if err != nil {
		return err
	}
	s.face = face
	return nil
}

func (s *stream) MoveBy(dx, dy float64) error {
	if s.closed {
		return fmt.Errorf("内容流已关闭")
	}
	s.x += dx
	s.y += dy
	return nil
}

// Draw 在当前位置绘制一行文本，基线对齐；坐标按 pt→mm 换算交给 canvas。
func (s *stream) Draw(text string) error {
	if s.closed {
		return fmt.Errorf("内容流已关闭")
	}
	if s.face == nil {
		return fmt.Errorf("绘制前未设置字体")
	}
	tl := canvas.NewTextLine(s.face, text, canvas.Left)
	s.page.ctx.DrawText(s.x*layout.PtToMm, s.y*layout.PtToMm, tl)
	return nil
}

func (s *stream) Close() error {
	s.closed = true
	return nil
}

// styleOf 把目录字体映射为 canvas 的字体样式位。
func styleOf(f font.Font) canvas.FontStyle {
	style := canvas.FontRegular
	if f.Bold() {
		style = canvas.FontBold
	}
	if f.Italic() {
		style |= canvas.FontItalic
	}
	return style
}
