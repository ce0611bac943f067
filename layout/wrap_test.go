package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Horatio-Blackwood/PlainPdf/font"
)

// charMetrics 把每个字符记为 width（千分之一字号），FontBBox 高度固定。
// 与真实 AFM 无关，便于精确断言：size=10、width=100 时每字符恰为 1pt。
type charMetrics struct {
	width float64
	bbox  float64
}

func (m charMetrics) StringWidth(f font.Font, s string) (float64, error) {
	return m.width * float64(len(s)), nil
}

func (m charMetrics) BBoxHeight(f font.Font) (float64, error) { return m.bbox, nil }

// countingMetrics 包装另一个 Metrics 并统计 StringWidth 调用次数。
type countingMetrics struct {
	inner Metrics
	calls int
}

func (m *countingMetrics) StringWidth(f font.Font, s string) (float64, error) {
	m.calls++
	return m.inner.StringWidth(f, s)
}

func (m *countingMetrics) BBoxHeight(f font.Font) (float64, error) {
	return m.inner.BBoxHeight(f)
}

// errMetrics 总是返回度量错误。
type errMetrics struct{}

func (errMetrics) StringWidth(f font.Font, s string) (float64, error) {
	return 0, fmt.Errorf("度量失败")
}

func (errMetrics) BBoxHeight(f font.Font) (float64, error) {
	return 0, fmt.Errorf("度量失败")
}

func collect(t *testing.T, seg *Segments) []string {
	t.Helper()
	var out []string
	for seg.Scan() {
		out = append(out, seg.Text())
	}
	if err := seg.Err(); err != nil {
		t.Fatalf("折行出错: %v", err)
	}
	return out
}

// TestSplitLinePreservesWords 验证：所有片段以单个空格拼回后等于
// 归一化（去首尾空白、压缩词间空白）的输入，词不丢失、不重复、不乱序。
func TestSplitLinePreservesWords(t *testing.T) {
	m := charMetrics{width: 100, bbox: 1000}
	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		"  leading and trailing   whitespace \t mixed  ",
		"one",
		"a b c d e f g h i j k l m n o p",
	}
	for _, in := range inputs {
		for _, limit := range []float64{5, 10, 25, 1000} {
			segs := collect(t, SplitLine(m, font.Helvetica, 10, limit, in))
			got := strings.Join(segs, " ")
			want := strings.Join(strings.Fields(in), " ")
			if got != want {
				t.Fatalf("limit=%g 拼接结果不一致:\n got=%q\nwant=%q", limit, got, want)
			}
			for i, s := range segs {
				if s != strings.TrimSpace(s) {
					t.Fatalf("片段 %d 含有首尾空白: %q", i, s)
				}
			}
		}
	}
}

// TestSplitLineWidthLimit 验证：除单词自身超宽的片段外，
// 每个片段的缩放宽度都不超过限制。
func TestSplitLineWidthLimit(t *testing.T) {
	m := charMetrics{width: 100, bbox: 1000}
	const limit = 10.0 // size=10 时即 10 个字符
	in := "short words mixed with extraordinarily long entries here"
	for _, s := range collect(t, SplitLine(m, font.Helvetica, 10, limit, in)) {
		w, err := ScaledWidth(m, font.Helvetica, 10, s)
		if err != nil {
			t.Fatalf("测量失败: %v", err)
		}
		if w > limit && strings.Contains(s, " ") {
			t.Fatalf("多词片段 %q 超出限制: %gpt > %gpt", s, w, limit)
		}
	}
}

// TestSplitLineExactFit 验证等宽视为放得下（<= 而非 <）。
func TestSplitLineExactFit(t *testing.T) {
	m := charMetrics{width: 100, bbox: 1000}
	in := "aaaa bbbb" // 9 字符 → size=10 时恰好 9pt

	if got := collect(t, SplitLine(m, font.Helvetica, 10, 9, in)); len(got) != 1 {
		t.Fatalf("宽度恰好等于限制时应保持单段，实际 %d 段: %v", len(got), got)
	}
	got := collect(t, SplitLine(m, font.Helvetica, 10, 8.9, in))
	want := []string{"aaaa", "bbbb"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("限制略小于宽度时应拆成两段 (-want +got):\n%s", diff)
	}
}

// TestSplitLineEmpty 验证空行（去除空白后）得到零个片段。
func TestSplitLineEmpty(t *testing.T) {
	m := charMetrics{width: 100, bbox: 1000}
	for _, in := range []string{"", "   ", "\t", " \t \n "} {
		seg := SplitLine(m, font.Helvetica, 10, 100, in)
		if seg.Scan() {
			t.Fatalf("空行 %q 产生了片段 %q", in, seg.Text())
		}
		if err := seg.Err(); err != nil {
			t.Fatalf("空行不应报错: %v", err)
		}
	}
}

// TestSplitLineOversizedWord 验证单词自身超宽时按原样独立成段。
func TestSplitLineOversizedWord(t *testing.T) {
	m := charMetrics{width: 100, bbox: 1000}
	got := collect(t, SplitLine(m, font.Helvetica, 10, 5, "aaaaaaaaaaaa bb"))
	want := []string{"aaaaaaaaaaaa", "bb"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("超宽单词处理错误 (-want +got):\n%s", diff)
	}

	// 只有一个超宽单词时同样原样输出
	got = collect(t, SplitLine(m, font.Helvetica, 10, 5, "aaaaaaaaaaaa"))
	if diff := cmp.Diff([]string{"aaaaaaaaaaaa"}, got); diff != "" {
		t.Fatalf("单个超宽单词处理错误 (-want +got):\n%s", diff)
	}
}

// TestSplitLineRestartable 验证 Reset 之后能得到完全相同的序列。
func TestSplitLineRestartable(t *testing.T) {
	m := charMetrics{width: 100, bbox: 1000}
	seg := SplitLine(m, font.Helvetica, 10, 10, "one two three four five six")
	first := collect(t, seg)
	seg.Reset()
	second := collect(t, seg)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("重新迭代结果不一致 (-first +second):\n%s", diff)
	}
	if len(first) < 2 {
		t.Fatalf("用例应产生多个片段，实际 %d", len(first))
	}
}

// TestSplitLineLazy 验证序列是惰性的：构造时不测量，
// 第一次 Scan 只消费第一段所需的测量。
func TestSplitLineLazy(t *testing.T) {
	m := &countingMetrics{inner: charMetrics{width: 100, bbox: 1000}}
	seg := SplitLine(m, font.Helvetica, 10, 10, "aaa bbb ccc ddd eee fff")
	if m.calls != 0 {
		t.Fatalf("构造阶段不应测量，实际调用 %d 次", m.calls)
	}
	if !seg.Scan() {
		t.Fatalf("第一次 Scan 应当成功")
	}
	after := m.calls
	if after == 0 {
		t.Fatalf("Scan 后应发生过测量")
	}
	for seg.Scan() {
	}
	if m.calls <= after {
		t.Fatalf("后续片段应消费更多测量: first=%d total=%d", after, m.calls)
	}
}

// TestSplitLineScenario 复现端到端场景：可用宽度 400 单位，每词 50、
// 词间距 10，10 个词应拆成 6+4 两段。
func TestSplitLineScenario(t *testing.T) {
	m := sceneMetrics{}
	in := strings.TrimSpace(strings.Repeat("words ", 10))
	got := collect(t, SplitLine(m, font.Helvetica, 12, 400, in))
	want := []string{
		strings.TrimSpace(strings.Repeat("words ", 6)),
		strings.TrimSpace(strings.Repeat("words ", 4)),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("场景折行结果错误 (-want +got):\n%s", diff)
	}
}

// sceneMetrics 固定几何的场景打桩：每个词宽 50 单位、词间空格 10 单位
//（文档单位，字号 12），返回值换算回千分之一字号。
type sceneMetrics struct{}

func (sceneMetrics) StringWidth(f font.Font, s string) (float64, error) {
	n := float64(len(strings.Fields(s)))
	if n == 0 {
		return 0, nil
	}
	units := 50*n + 10*(n-1)
	return units * 1000 / 12, nil
}

func (sceneMetrics) BBoxHeight(f font.Font) (float64, error) {
	return 14.0 * 1000 / 12, nil
}

// TestSplitLineMetricsError 验证度量错误经 Err 暴露，并终止迭代。
func TestSplitLineMetricsError(t *testing.T) {
	seg := SplitLine(errMetrics{}, font.Helvetica, 10, 10, "aaa bbb")
	if seg.Scan() {
		t.Fatalf("度量失败时 Scan 应返回 false")
	}
	if seg.Err() == nil {
		t.Fatalf("Err 应返回度量错误")
	}

	// 单词行无需测量，即使度量不可用也能输出
	seg = SplitLine(errMetrics{}, font.Helvetica, 10, 10, "alone")
	if !seg.Scan() || seg.Text() != "alone" {
		t.Fatalf("单词行不应依赖度量，实际 %q err=%v", seg.Text(), seg.Err())
	}
}
