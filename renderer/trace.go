package renderer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Horatio-Blackwood/PlainPdf/font"
)

// Recorder 是一个只记录不渲染的后端：按页累积每次位移与绘制，
// 得到的轨迹可输出为 JSON，便于布局调试或在测试中做精确断言。

// Trace 保存一次完整渲染的布局轨迹。
type Trace struct {
	Pages []PageTrace `json:"pages"`
}

// PageTrace 记录单页上绘制的全部文本行。
type PageTrace struct {
	Lines []LineTrace `json:"lines"`
}

// LineTrace 记录一行文本的绝对位置与使用的字体。
type LineTrace struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Font string  `json:"font"`
	Size int     `json:"size"`
	Text string  `json:"text"`
}

// Recorder 实现 Document，把全部绘制调用记入内存轨迹。
// Save 会把轨迹 JSON 写到给定路径（路径为空时跳过）。
type Recorder struct {
	trace  Trace
	closed bool
}

var _ Document = (*Recorder)(nil)

func NewRecorder() *Recorder { return &Recorder{} }

// AddPage 追加一页轨迹。
func (r *Recorder) AddPage() (Page, error) {
	if r.closed {
		return nil, fmt.Errorf("记录器已关闭")
	}
	r.trace.Pages = append(r.trace.Pages, PageTrace{})
	return &recorderPage{rec: r, index: len(r.trace.Pages) - 1}, nil
}

// Save 把轨迹 JSON 写入 path 并关闭记录器；path 为空时只关闭。
func (r *Recorder) Save(path string) error {
	r.closed = true
	if path == "" {
		return nil
	}
	return r.WriteJSON(path)
}

// Close 关闭记录器，轨迹保留在内存中供查询。
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Trace 返回记录到的布局轨迹。
func (r *Recorder) Trace() *Trace { return &r.trace }

// WriteJSON 将轨迹输出为 JSON 文件，便于调试或可视化。
func (r *Recorder) WriteJSON(path string) error {
	data, err := json.MarshalIndent(&r.trace, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

type recorderPage struct {
	rec   *Recorder
	index int
}

func (p *recorderPage) OpenStream() (Stream, error) {
	return &recorderStream{rec: p.rec, page: p.index}, nil
}

// recorderStream 跟踪流内的绝对位置；MoveBy 累加，Draw 落盘到轨迹。
type recorderStream struct {
	rec    *Recorder
	page   int
	x, y   float64
	font   font.Font
	size   int
	closed bool
}

func (s *recorderStream) SetFont(f font.Font, size int) error {
	if s.closed {
		return fmt.Errorf("内容流已关闭")
	}
	s.font, s.size = f, size
	return nil
}

func (s *recorderStream) MoveBy(dx, dy float64) error {
	if s.closed {
		return fmt.Errorf("内容流已关闭")
	}
	s.x += dx
	s.y += dy
	return nil
}

func (s *recorderStream) Draw(text string) error {
	if s.closed {
		return fmt.Errorf("内容流已关闭")
	}
	pg := &s.rec.trace.Pages[s.page]
	pg.Lines = append(pg.Lines, LineTrace{
		X:    s.x,
		Y:    s.y,
		Font: s.font.String(),
		Size: s.size,
		Text: text,
	})
	return nil
}

func (s *recorderStream) Close() error {
	s.closed = true
	return nil
}
