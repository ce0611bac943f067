package font

import (
	"fmt"
	"strings"
)

// 该文件定义固定的字体目录：{Helvetica, Courier, Times} × {常规, 粗体, 斜体, 粗斜体}，
// 共 12 个标准字形程序。目录只是静态数据，不持有任何后端资源；
// 具体后端自行把 Font 解析成自己的字体句柄。

// Font 标识目录中的一个标准字体。零值不是合法字体，用于表示“未指定”。
type Font int

const (
	Helvetica Font = iota + 1
	HelveticaBold
	HelveticaOblique
	HelveticaBoldOblique
	Courier
	CourierBold
	CourierOblique
	CourierBoldOblique
	TimesRoman
	TimesBold
	TimesItalic
	TimesBoldItalic
)

// face carries the static catalog data for one entry.
// bboxHeight is the FontBBox extent from the standard AFM metrics,
// expressed in thousandths of the font size.
type face struct {
	name       string
	family     string
	bold       bool
	italic     bool
	bboxHeight float64
}

var catalog = map[Font]face{
	Helvetica:            {"Helvetica", "Helvetica", false, false, 1156},
	HelveticaBold:        {"Helvetica-Bold", "Helvetica", true, false, 1190},
	HelveticaOblique:     {"Helvetica-Oblique", "Helvetica", false, true, 1156},
	HelveticaBoldOblique: {"Helvetica-BoldOblique", "Helvetica", true, true, 1190},
	Courier:              {"Courier", "Courier", false, false, 1055},
	CourierBold:          {"Courier-Bold", "Courier", true, false, 1051},
	CourierOblique:       {"Courier-Oblique", "Courier", false, true, 1055},
	CourierBoldOblique:   {"Courier-BoldOblique", "Courier", true, true, 1051},
	TimesRoman:           {"Times-Roman", "Times", false, false, 1116},
	TimesBold:            {"Times-Bold", "Times", true, false, 1153},
	TimesItalic:          {"Times-Italic", "Times", false, true, 1100},
	TimesBoldItalic:      {"Times-BoldItalic", "Times", true, true, 1139},
}

// Valid 报告 f 是否为目录中的字体。
func (f Font) Valid() bool {
	_, ok := catalog[f]
	return ok
}

// String 返回字形程序的 PostScript 名称，例如 "Helvetica-BoldOblique"。
func (f Font) String() string {
	if info, ok := catalog[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Font(%d)", int(f))
}

// Family 返回字体族名：Helvetica、Courier 或 Times。
func (f Font) Family() string { return catalog[f].family }

// Bold 报告是否为粗体变体。
func (f Font) Bold() bool { return catalog[f].bold }

// Italic 报告是否为斜体（oblique/italic）变体。
func (f Font) Italic() bool { return catalog[f].italic }

// BBoxHeight 返回 FontBBox 高度，单位为字号的千分之一，用于推导行距。
func (f Font) BBoxHeight() float64 { return catalog[f].bboxHeight }

// All 按声明顺序返回目录中的全部字体。
func All() []Font {
	return []Font{
		Helvetica, HelveticaBold, HelveticaOblique, HelveticaBoldOblique,
		Courier, CourierBold, CourierOblique, CourierBoldOblique,
		TimesRoman, TimesBold, TimesItalic, TimesBoldItalic,
	}
}

// Parse 将 PostScript 字体名解析为 Font，匹配不区分大小写；
// "Times" 作为 "Times-Roman" 的别名接受。
func Parse(name string) (Font, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "times" {
		key = "times-roman"
	}
	for f, info := range catalog {
		if strings.ToLower(info.name) == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("未知字体 %q", name)
}
