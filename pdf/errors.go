package pdf

import (
	"errors"
	"fmt"

	"github.com/Horatio-Blackwood/PlainPdf/font"
)

// 参数与状态类错误，可用 errors.Is 判别。
// 这一类错误不会破坏文档，修正参数后可以继续排版。
var (
	// ErrInvalidFont 表示字体不在目录里。
	ErrInvalidFont = errors.New("无效字体")
	// ErrInvalidSize 表示字号不是正数。
	ErrInvalidSize = errors.New("字号必须为正数")
	// ErrClosed 表示文档已保存或关闭，不再接受任何操作。
	ErrClosed = errors.New("文档已关闭")
)

// RenderError 包装后端或字体度量在排版途中的失败，并记下出事现场：
// 页号、操作、正在排的内容。拿到这个错误说明文档已经写坏，
// 之后的调用一律返回 ErrClosed。
type RenderError struct {
	Op   string // 出错的操作："render"、"blank" 或 "save"
	Page int    // 出错时的页号，从 1 起
	Text string // 正在排版的文本，可能为空
	Font font.Font
	Size int
	Err  error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("%s: 第 %d 页", e.Op, e.Page)
	if e.Font.Valid() {
		msg += fmt.Sprintf(" %s %dpt", e.Font, e.Size)
	}
	if e.Text != "" {
		msg += fmt.Sprintf(" %q", e.Text)
	}
	return msg + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }
