package systems

import (
	"log"
	"reflect"

	"github.com/decker502/bounce/pkg/components"
	"github.com/decker502/bounce/pkg/ecs"
	"github.com/decker502/bounce/pkg/utils"
)

// TouchController 把按下/拖动/释放手势转换为小球的抓取和释放冲量
//
// 每个拥有 BallComponent + TouchComponent 的实体各自维护状态机:
//
//	Idle --按下(命中小球)--> Dragging --移动--> Dragging --释放--> Idle
//
// 按下未命中小球时保持 Idle。所有事件都返回 handled=true，不向下层传递。
type TouchController struct {
	em         *ecs.EntityManager
	forceScale float64
}

// NewTouchController 创建触摸控制器
//
// 参数:
//   - em: 实体管理器
//   - forceScale: 释放时拖拽位移到冲量力的比例
func NewTouchController(em *ecs.EntityManager, forceScale float64) *TouchController {
	return &TouchController{
		em:         em,
		forceScale: forceScale,
	}
}

// touchable 返回所有可被拖拽的小球实体
func (tc *TouchController) touchable() []ecs.EntityID {
	return tc.em.GetEntitiesWith(
		reflect.TypeOf(&components.BallComponent{}),
		reflect.TypeOf(&components.TouchComponent{}),
	)
}

func (tc *TouchController) parts(id ecs.EntityID) (*components.BallComponent, *components.TouchComponent) {
	ball, _ := ecs.GetComponentOf[*components.BallComponent](tc.em, id)
	touch, _ := ecs.GetComponentOf[*components.TouchComponent](tc.em, id)
	return ball, touch
}

// Press 处理按下事件
// 已有小球在拖拽中时忽略；否则命中的第一个小球进入拖拽：
// 清空待处理冲量，记录触点，小球吸附到触点并清零速度
func (tc *TouchController) Press(x, y float64) bool {
	ids := tc.touchable()
	for _, id := range ids {
		if _, touch := tc.parts(id); touch.IsDragging() {
			return true
		}
	}

	for _, id := range ids {
		ball, touch := tc.parts(id)
		if !ball.Contains(x, y) {
			continue
		}

		touch.Mode = components.TouchDragging
		touch.ImpulseX, touch.ImpulseY = 0, 0
		touch.DeltaX, touch.DeltaY = 0, 0
		touch.LastX, touch.LastY = x, y

		ball.SetPosition(x, y)
		ball.SetVelocity(0, 0)

		log.Printf("[TouchController] Picked up ball %d at (%.1f, %.1f)", id, x, y)
		return true
	}
	return true
}

// Move 处理拖动事件
// 记录相对上一次轮询的位移并让小球直接跟随触点（绕过物理）。
// 指针按住不动时位移为 0，此时释放不会抛出小球。
func (tc *TouchController) Move(x, y float64) bool {
	for _, id := range tc.touchable() {
		ball, touch := tc.parts(id)
		if !touch.IsDragging() {
			continue
		}

		touch.DeltaX = x - touch.LastX
		touch.DeltaY = y - touch.LastY
		touch.LastX, touch.LastY = x, y

		ball.SetPosition(x, y)
	}
	return true
}

// Release 处理释放事件
// 无论在哪里释放都回到 Idle，冲量 = 最后一次拖拽位移 * forceScale，由下一次物理步进消费
func (tc *TouchController) Release(x, y float64) bool {
	for _, id := range tc.touchable() {
		_, touch := tc.parts(id)
		if !touch.IsDragging() {
			continue
		}

		touch.ImpulseX = touch.DeltaX * tc.forceScale
		touch.ImpulseY = touch.DeltaY * tc.forceScale
		touch.Mode = components.TouchIdle

		log.Printf("[TouchController] Released ball %d at (%.1f, %.1f), impulse (%.1f, %.1f)",
			id, x, y, touch.ImpulseX, touch.ImpulseY)
	}
	return true
}

// Handle 分发指针事件
func (tc *TouchController) Handle(ev utils.PointerEvent) bool {
	switch ev.Type {
	case utils.PointerPress:
		return tc.Press(ev.X, ev.Y)
	case utils.PointerMove:
		return tc.Move(ev.X, ev.Y)
	case utils.PointerRelease:
		return tc.Release(ev.X, ev.Y)
	}
	return true
}
