package pdf

import (
	"github.com/Horatio-Blackwood/PlainPdf/font"
	"github.com/Horatio-Blackwood/PlainPdf/layout"
)

// 未显式指定时的缺省字体与字号。
const (
	DefaultFont = font.Helvetica
	DefaultSize = 12
)

// Options 配置新文档。零值就是缺省配置：US Letter 页面、Helvetica 12pt。
type Options struct {
	// Geometry 是页面尺寸与边距；零值采用 layout.Letter()。
	Geometry layout.PageGeometry
	// Font 是缺省字体；零值采用 DefaultFont。
	Font font.Font
	// Size 是缺省字号（pt）；零值采用 DefaultSize。
	Size int
}

// withDefaults 逐项补上零值字段并校验结果。
func (o Options) withDefaults() (Options, error) {
	if o.Geometry == (layout.PageGeometry{}) {
		o.Geometry = layout.Letter()
	}
	if err := o.Geometry.Validate(); err != nil {
		return o, err
	}
	if o.Font == 0 {
		o.Font = DefaultFont
	}
	if !o.Font.Valid() {
		return o, ErrInvalidFont
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Size < 0 {
		return o, ErrInvalidSize
	}
	return o, nil
}
