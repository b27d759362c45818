package components

// Viewport 视口尺寸
// 首次绘制后固定不变，定义四面静态墙的位置：左 0、右 Width、上 0、下 Height
type Viewport struct {
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素）
}

// FitsX 检查视口宽度是否能容纳指定直径
func (v Viewport) FitsX(diameter float64) bool {
	return v.Width > diameter
}

// FitsY 检查视口高度是否能容纳指定直径
func (v Viewport) FitsY(diameter float64) bool {
	return v.Height > diameter
}

// IsDegenerate 视口在任一方向上无法容纳小球
func (v Viewport) IsDegenerate(diameter float64) bool {
	return !v.FitsX(diameter) || !v.FitsY(diameter)
}
