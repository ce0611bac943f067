package canvasrenderer

import (
	"math"
	"testing"

	"github.com/Horatio-Blackwood/PlainPdf/font"
)

// Courier 系映射到等宽的 Go Mono：同长度字符串宽度必须一致，
// n 个字符的宽度必须是单个字符的 n 倍。
func TestCourierEqualWidth(t *testing.T) {
	doc := New()

	const eps = 1e-6
	narrow, err := doc.StringWidth(font.Courier, "iiiiiiii")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wide, err := doc.StringWidth(font.Courier, "WWWWWWWW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := math.Abs(narrow - wide); diff > eps {
		t.Fatalf("monospace widths differ: narrow=%g wide=%g diff=%g", narrow, wide, diff)
	}

	single, err := doc.StringWidth(font.Courier, "M")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single <= 0 {
		t.Fatalf("invalid single glyph width: %g", single)
	}
	if diff := math.Abs(wide - 8*single); diff > eps {
		t.Fatalf("monospace width not additive: got=%g want=%g diff=%g", wide, 8*single, diff)
	}
}

// 等宽的不只常规体：四个 Courier 变体两两同宽的字符串也应同宽。
func TestCourierVariantsMonospace(t *testing.T) {
	const eps = 1e-6
	doc := New()
	for _, f := range []font.Font{font.Courier, font.CourierBold, font.CourierOblique, font.CourierBoldOblique} {
		a, err := doc.StringWidth(f, "abcd")
		if err != nil {
			t.Fatalf("StringWidth(%s) error: %v", f, err)
		}
		b, err := doc.StringWidth(f, "WXYZ")
		if err != nil {
			t.Fatalf("StringWidth(%s) error: %v", f, err)
		}
		if diff := math.Abs(a - b); diff > eps {
			t.Fatalf("%s not monospace: %g vs %g", f, a, b)
		}
	}
}
