package components

// TouchMode 触摸状态机的状态
type TouchMode int

const (
	// TouchIdle 空闲，小球由物理系统驱动
	TouchIdle TouchMode = iota
	// TouchDragging 拖拽中，小球位置直接跟随触点（运动学覆盖）
	TouchDragging
)

// String 返回状态名称（用于日志）
func (m TouchMode) String() string {
	switch m {
	case TouchIdle:
		return "Idle"
	case TouchDragging:
		return "Dragging"
	}
	return "Unknown"
}

// TouchComponent 触摸状态
// 只由触摸事件修改；物理系统读取并清空待处理冲量
type TouchComponent struct {
	Mode TouchMode

	// LastX, LastY 上一个触点位置（像素）
	LastX, LastY float64

	// DeltaX, DeltaY 最后一次移动的拖拽位移（像素）
	DeltaX, DeltaY float64

	// ImpulseX, ImpulseY 待处理的释放冲量（力），下一次物理步进消费后清零
	ImpulseX, ImpulseY float64
}

// IsDragging 是否处于拖拽状态
func (t *TouchComponent) IsDragging() bool {
	return t.Mode == TouchDragging
}

// HasImpulse 是否有待处理的冲量
func (t *TouchComponent) HasImpulse() bool {
	return t.ImpulseX != 0 || t.ImpulseY != 0
}

// ConsumeImpulse 取出待处理冲量并清零（只能被消费一次）
func (t *TouchComponent) ConsumeImpulse() (float64, float64) {
	x, y := t.ImpulseX, t.ImpulseY
	t.ImpulseX, t.ImpulseY = 0, 0
	return x, y
}

// Reset 重置为空闲状态
func (t *TouchComponent) Reset() {
	*t = TouchComponent{}
}
