package layout

// Cursor 跟踪当前页内的书写位置。坐标原点在页面左下角，
// 文本自上而下书写，y 随行推进而减小。
type Cursor struct {
	geom PageGeometry
	x, y float64
}

// NewCursor 创建定位在内容顶部的光标。
func NewCursor(geom PageGeometry) *Cursor {
	c := &Cursor{geom: geom}
	c.ResetToTop()
	return c
}

// ResetToTop 把光标移回内容区域的起点：x 为左边距，y 为内容顶部。
// 每建立一页后都要调用。
func (c *Cursor) ResetToTop() {
	c.x = c.geom.SideMargin
	c.y = c.geom.ContentTop()
}

// Advance 施加一次垂直位移。向下书写时 dy 为负值。
func (c *Cursor) Advance(dy float64) { c.y += dy }

// NeedsNewPage 报告是否需要开新页。调用时机在落字之后：
// 基线一旦低于阈值，下一行换页；恰好等于阈值不算越界。
func (c *Cursor) NeedsNewPage() bool { return c.y < c.geom.BreakThreshold() }

// X 返回当前 x 坐标（恒为左边距，不做段落缩进）。
func (c *Cursor) X() float64 { return c.x }

// Y 返回当前基线 y 坐标。
func (c *Cursor) Y() float64 { return c.y }
