package components

// Rect 轴对齐边界框 (AABB)
// 用于小球与墙壁的碰撞检测和触摸命中测试
type Rect struct {
	Left   float64 // 左边界（像素）
	Top    float64 // 上边界（像素）
	Right  float64 // 右边界（像素）
	Bottom float64 // 下边界（像素）
}

// RectFromCenter 根据中心点和边长构造正方形边界框
func RectFromCenter(cx, cy, size float64) Rect {
	half := size / 2
	return Rect{
		Left:   cx - half,
		Top:    cy - half,
		Right:  cx + half,
		Bottom: cy + half,
	}
}

// Width 返回边界框宽度
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height 返回边界框高度
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// CenterX 返回边界框中心X坐标
func (r Rect) CenterX() float64 {
	return (r.Left + r.Right) / 2
}

// CenterY 返回边界框中心Y坐标
func (r Rect) CenterY() float64 {
	return (r.Top + r.Bottom) / 2
}

// Contains 检查点是否在边界框内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}
