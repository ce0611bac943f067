package layout

import "fmt"

// PageGeometry 描述一页的尺寸与边距，构造后不再变化。单位全部为 pt，
// 坐标原点在页面左下角。
type PageGeometry struct {
	PageWidth       float64
	PageHeight      float64
	SideMargin      float64
	TopBottomMargin float64
}

// Letter 返回默认几何：US Letter（612×792pt），左右边距 70pt，上下边距 80pt。
func Letter() PageGeometry {
	return PageGeometry{
		PageWidth:       612,
		PageHeight:      792,
		SideMargin:      70,
		TopBottomMargin: 80,
	}
}

// UsableWidth 返回正文可用宽度：页宽减去两侧边距。
func (g PageGeometry) UsableWidth() float64 { return g.PageWidth - 2*g.SideMargin }

// ContentTop 返回内容区域顶部的 y 坐标。
func (g PageGeometry) ContentTop() float64 { return g.PageHeight - g.TopBottomMargin }

// BreakThreshold 返回换页阈值，取两倍上下边距：
// 写完一行后基线低于该值即开新页。
func (g PageGeometry) BreakThreshold() float64 { return 2 * g.TopBottomMargin }

// Validate 校验几何是否可用于排版。
func (g PageGeometry) Validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return fmt.Errorf("页面尺寸非法: %g×%g", g.PageWidth, g.PageHeight)
	}
	if g.SideMargin < 0 || g.TopBottomMargin < 0 {
		return fmt.Errorf("页边距不能为负")
	}
	if g.UsableWidth() <= 0 {
		return fmt.Errorf("可用宽度必须为正: 页宽 %gpt，两侧边距各 %gpt", g.PageWidth, g.SideMargin)
	}
	return nil
}
