package layout

import (
	"strings"

	"github.com/Horatio-Blackwood/PlainPdf/font"
)

// 本文件实现贪心折行：把一行文本拆成若干宽度不超过限制的片段。
// 拆分只发生在词边界；连续空白归一化为单个空格。

// Segments 是折行结果的惰性序列，用法同 bufio.Scanner：
//
//	seg := layout.SplitLine(m, f, size, limit, line)
//	for seg.Scan() {
//		draw(seg.Text())
//	}
//	if err := seg.Err(); err != nil {
//		...
//	}
//
// 序列有限，且可以用 Reset 从头再迭代一遍。
type Segments struct {
	metrics Metrics
	font    font.Font
	size    int
	limit   float64
	words   []string
	idx     int
	cur     string
	err     error
}

// SplitLine 按贪心算法把 line 拆成宽度不超过 limit（pt）的片段序列：
// 从左到右累积单词，每次并入前先测量“候选片段 + 空格 + 下一个词”的
// 宽度，超出限制且候选非空时收段。等于限制视为放得下。
//
// 入参文本先去除首尾空白，空行得到零个片段。单个词自身超宽时按原样
// 独立成段输出（接受越界，不做词内截断，也不报错）。
//
// SplitLine 是 (line, font, size, Metrics) 的纯函数，不触碰光标或文档状态。
func SplitLine(m Metrics, f font.Font, size int, limit float64, line string) *Segments {
	return &Segments{
		metrics: m,
		font:    f,
		size:    size,
		limit:   limit,
		words:   strings.Fields(line),
	}
}

// Scan 推进到下一个片段；序列耗尽或度量出错时返回 false。
func (s *Segments) Scan() bool {
	if s.err != nil || s.idx >= len(s.words) {
		s.cur = ""
		return false
	}
	cur := s.words[s.idx]
	s.idx++
	for s.idx < len(s.words) {
		trial := cur + " " + s.words[s.idx]
		w, err := ScaledWidth(s.metrics, s.font, s.size, trial)
		if err != nil {
			s.err = err
			s.cur = ""
			return false
		}
		if w > s.limit {
			break
		}
		cur = trial
		s.idx++
	}
	s.cur = cur
	return true
}

// Text 返回最近一次 Scan 得到的片段。
func (s *Segments) Text() string { return s.cur }

// Err 返回迭代过程中遇到的度量错误。
func (s *Segments) Err() error { return s.err }

// Reset 回到序列开头，便于重新迭代。
func (s *Segments) Reset() {
	s.idx = 0
	s.cur = ""
	s.err = nil
}
