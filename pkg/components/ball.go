package components

// BallComponent 小球组件
// 中心位置 + 速度 + 直径，Bounds 由位置和直径派生
//
// 任何修改位置的代码都必须通过 SetPosition 或在修改后调用 UpdateBounds，
// 保证 Bounds 不会与位置不同步。
type BallComponent struct {
	X, Y     float64 // 中心位置（像素）
	VX, VY   float64 // 速度（像素/秒）
	Diameter float64 // 直径（像素）
	Bounds   Rect    // 派生的边界框
}

// NewBallComponent 创建小球组件并计算边界框
func NewBallComponent(x, y, diameter float64) BallComponent {
	b := BallComponent{X: x, Y: y, Diameter: diameter}
	b.UpdateBounds()
	return b
}

// SetPosition 设置中心位置并重新计算边界框
func (b *BallComponent) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
	b.UpdateBounds()
}

// SetVelocity 设置速度
func (b *BallComponent) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// UpdateBounds 根据当前位置和直径重新计算边界框
func (b *BallComponent) UpdateBounds() {
	b.Bounds = RectFromCenter(b.X, b.Y, b.Diameter)
}

// Radius 返回半径
func (b *BallComponent) Radius() float64 {
	return b.Diameter / 2
}

// Contains 检查点是否落在小球的边界框内
// 触摸命中测试使用边界框而不是圆形，与碰撞检测保持一致
func (b *BallComponent) Contains(x, y float64) bool {
	return b.Bounds.Contains(x, y)
}
