package systems

import (
	"log"

	"github.com/decker502/bounce/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerHandler 指针事件处理函数，返回事件是否已处理
type PointerHandler func(ev utils.PointerEvent) bool

// InputSystem 轮询鼠标/触摸输入并分发指针事件
type InputSystem struct {
	tracker *utils.PointerTracker
	handler PointerHandler

	// OnQuit ESC 键回调，可为 nil
	OnQuit func()
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - handler: 指针事件处理函数
func NewInputSystem(handler PointerHandler) *InputSystem {
	return &InputSystem{
		tracker: utils.NewPointerTracker(),
		handler: handler,
	}
}

// Update 处理本帧的用户输入
func (s *InputSystem) Update() {
	if s.OnQuit != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[InputSystem] ESC pressed, stopping simulation")
		s.OnQuit()
		return
	}

	pressed, x, y := utils.GetPointerState()
	s.Dispatch(pressed, x, y)
}

// Dispatch 把一帧的指针状态转换为事件并交给处理函数
// 返回本帧是否产生了事件
func (s *InputSystem) Dispatch(pressed bool, x, y int) bool {
	ev, ok := s.tracker.Next(pressed, x, y)
	if !ok {
		return false
	}
	if s.handler != nil {
		s.handler(ev)
	}
	return true
}
