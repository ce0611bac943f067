package fonts

import (
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Horatio-Blackwood/PlainPdf/font"
)

// 该包为 canvas 后端提供可嵌入的字体字节。TTF 数据直接来自 Go 字体
// 家族（golang.org/x/image/font/gofont），编进二进制，不依赖磁盘字体：
// Courier 映射到 Go Mono 系列；Helvetica 与 Times 映射到 Go 无衬线系列
//（开源集合里没有对应的衬线 TTF）。版式度量的保真由 fpdf 后端负责，
// 这里只需要真实可渲染的轮廓。

var ttf = map[font.Font][]byte{
	font.Helvetica:            goregular.TTF,
	font.HelveticaBold:        gobold.TTF,
	font.HelveticaOblique:     goitalic.TTF,
	font.HelveticaBoldOblique: gobolditalic.TTF,
	font.Courier:              gomono.TTF,
	font.CourierBold:          gomonobold.TTF,
	font.CourierOblique:       gomonoitalic.TTF,
	font.CourierBoldOblique:   gomonobolditalic.TTF,
	font.TimesRoman:           goregular.TTF,
	font.TimesBold:            gobold.TTF,
	font.TimesItalic:          goitalic.TTF,
	font.TimesBoldItalic:      gobolditalic.TTF,
}

// Data 返回指定字体的内置 TTF 字节。
func Data(f font.Font) ([]byte, error) {
	if b, ok := ttf[f]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("字体 %s 没有内置 TTF 数据", f)
}
