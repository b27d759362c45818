// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerState 获取指针的完整状态
// 同时支持鼠标和触摸输入，优先检测触摸
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return true, x, y
	}

	// 触摸刚刚释放时 TouchPosition 已不可用，使用保存的最后触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return false, lastTouchX, lastTouchY
	}

	// 检查鼠标
	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// ============================================================================
// 指针事件 - 把逐帧轮询的指针状态折叠为按下/移动/释放事件
// ============================================================================

// PointerEventType 指针事件类型
type PointerEventType int

const (
	// PointerPress 按下
	PointerPress PointerEventType = iota
	// PointerMove 按住移动
	PointerMove
	// PointerRelease 释放
	PointerRelease
)

// String 返回事件类型名称
func (t PointerEventType) String() string {
	switch t {
	case PointerPress:
		return "Press"
	case PointerMove:
		return "Move"
	case PointerRelease:
		return "Release"
	}
	return "Unknown"
}

// PointerEvent 指针事件，坐标与视口使用同一像素空间
type PointerEvent struct {
	Type PointerEventType
	X, Y float64
}

// PointerTracker 指针状态跟踪器
// 比较相邻两帧的按下状态和位置，生成事件：
//   - 未按下 → 按下：Press
//   - 按下 → 按下：Move（位置未变化时也会生成，表示这一帧的位移为 0）
//   - 按下 → 未按下：Release（位置为释放帧报告的位置）
type PointerTracker struct {
	pressed bool
}

// NewPointerTracker 创建指针状态跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Next 输入本帧的指针状态，返回生成的事件
//
// 参数:
//   - pressed: 本帧是否按下
//   - x, y: 本帧指针位置
//
// 返回:
//   - PointerEvent: 生成的事件
//   - bool: 本帧是否有事件
func (pt *PointerTracker) Next(pressed bool, x, y int) (PointerEvent, bool) {
	prev := pt.pressed
	pt.pressed = pressed

	switch {
	case pressed && !prev:
		return PointerEvent{Type: PointerPress, X: float64(x), Y: float64(y)}, true
	case pressed && prev:
		return PointerEvent{Type: PointerMove, X: float64(x), Y: float64(y)}, true
	case !pressed && prev:
		return PointerEvent{Type: PointerRelease, X: float64(x), Y: float64(y)}, true
	}
	return PointerEvent{}, false
}

// IsPressed 上一帧是否处于按下状态
func (pt *PointerTracker) IsPressed() bool {
	return pt.pressed
}

// Reset 重置跟踪状态
func (pt *PointerTracker) Reset() {
	*pt = PointerTracker{}
}
