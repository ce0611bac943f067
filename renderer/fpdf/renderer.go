package fpdfrenderer

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/Horatio-Blackwood/PlainPdf/font"
	"github.com/Horatio-Blackwood/PlainPdf/layout"
	"github.com/Horatio-Blackwood/PlainPdf/renderer"
)

// 基于 codeberg.org/go-pdf/fpdf 的后端。fpdf 内置 PDF 核心字体
//（Helvetica/Courier/Times 族）及其 AFM 宽度表，文本度量与标准字形
// 程序完全一致，因此本后端同时充当 layout.Metrics 的权威实现。
//
// fpdf 的坐标系以左上角为原点、y 向下增长；引擎给出的是 PDF 文本
// 坐标（左下角原点、y 向上），Draw 时对 y 做一次翻转。

// 度量用的参考字号：在 1000pt 下测得的宽度即为千分之一字号。
const metricsRefSize = 1000.0

// Document 在 fpdf 之上实现 renderer.Document 与 layout.Metrics。
type Document struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
}

var (
	_ renderer.Document = (*Document)(nil)
	_ layout.Metrics    = (*Document)(nil)
)

// New 创建 US Letter 纵向文档（单位 pt）。
func New() *Document {
	p := fpdf.New("P", "pt", "Letter", "")
	// 分页完全由引擎决定，禁用 fpdf 自己的自动分页
	p.SetAutoPageBreak(false, 0)
	_, h := p.GetPageSize()
	return &Document{pdf: p, pageHeight: h}
}

// NewWithSize 创建自定义页面尺寸（pt）的文档。
func NewWithSize(width, height float64) *Document {
	p := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetAutoPageBreak(false, 0)
	return &Document{pdf: p, pageHeight: height}
}

// AddPage 追加一页并使其成为当前页。
func (d *Document) AddPage() (renderer.Page, error) {
	d.pdf.AddPage()
	if err := d.pdf.Error(); err != nil {
		return nil, fmt.Errorf("新建页面失败: %w", err)
	}
	return &page{doc: d}, nil
}

// Save 输出 PDF 文件并关闭文档。
func (d *Document) Save(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

// Close 丢弃未保存的内容。
func (d *Document) Close() error {
	d.pdf.Close()
	return nil
}

// StringWidth 实现 layout.Metrics：用 fpdf 的 AFM 宽度表测量，
// 返回千分之一字号宽度。
func (d *Document) StringWidth(f font.Font, s string) (float64, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("未知字体 %v", f)
	}
	d.pdf.SetFont(f.Family(), styleOf(f), metricsRefSize)
	w := d.pdf.GetStringWidth(s)
	if err := d.pdf.Error(); err != nil {
		return 0, fmt.Errorf("测量 %s 文本宽度失败: %w", f, err)
	}
	return w, nil
}

// BBoxHeight 实现 layout.Metrics。高度取自字体目录的静态 AFM 数据，
// 与 canvas 后端一致，保证两个后端分页行为相同。
func (d *Document) BBoxHeight(f font.Font) (float64, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("未知字体 %v", f)
	}
	return f.BBoxHeight(), nil
}

type page struct {
	doc *Document
}

func (p *page) OpenStream() (renderer.Stream, error) {
	return &stream{doc: p.doc}, nil
}

// stream 跟踪流内的绝对文本位置（引擎坐标，左下角原点）。
type stream struct {
	doc    *Document
	x, y   float64
	closed bool
}

func (s *stream) SetFont(f font.Font, size int) error {
	if s.closed {
		return fmt.Errorf("内容流已关闭")
	}
	if !f.Valid() {
		return fmt.Errorf("未知字体 %v", f)
	}
	s.doc.pdf.SetFont(f.Family(), styleOf(f), float64(size))
	if err := s.doc.pdf.Error(); err != nil {
		return fmt.Errorf("设置字体 %s 失败: %w", f, err)
	}
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

// Draw 在当前基线位置绘制文本。引擎 y 向上，这里翻转到 fpdf 的向下坐标。
func (s *stream) Draw(text string) error {
	if s.closed {
		return fmt.Errorf("内容流已关闭")
	}
	s.doc.pdf.Text(s.x, s.doc.pageHeight-s.y, text)
	if err := s.doc.pdf.Error(); err != nil {
		return fmt.Errorf("绘制文本失败: %w", err)
	}
	return nil
}

func (s *stream) Close() error {
	s.closed = true
	return nil
}

// styleOf 把目录字体映射为 fpdf 的样式串：""/"B"/"I"/"BI"。
func styleOf(f font.Font) string {
	style := ""
	if f.Bold() {
		style += "B"
	}
	if f.Italic() {
		style += "I"
	}
	return style
}
