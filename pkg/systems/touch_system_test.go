package systems

import (
	"testing"

	"github.com/decker502/bounce/pkg/components"
	"github.com/decker502/bounce/pkg/utils"
)

func newTestTouchController() (*TouchController, *components.BallComponent, *components.TouchComponent) {
	ball := components.NewBallComponent(100, 100, 20)
	ball.SetVelocity(40, -30)
	em, b, touch := newBallWorld(ball, components.TouchComponent{}, testViewport)
	return NewTouchController(em, 2), b, touch
}

// TestTouchController_PressInside 命中小球：进入拖拽，吸附到触点并清零速度
func TestTouchController_PressInside(t *testing.T) {
	tc, ball, touch := newTestTouchController()
	touch.ImpulseX = 99

	if !tc.Press(105, 95) {
		t.Error("press should be handled")
	}

	if touch.Mode != components.TouchDragging {
		t.Fatalf("expected Dragging, got %v", touch.Mode)
	}
	if ball.X != 105 || ball.Y != 95 {
		t.Errorf("expected ball snapped to (105, 95), got (%v, %v)", ball.X, ball.Y)
	}
	if ball.VX != 0 || ball.VY != 0 {
		t.Errorf("expected zero velocity, got (%v, %v)", ball.VX, ball.VY)
	}
	if touch.HasImpulse() {
		t.Error("pending impulse should be cleared on pick up")
	}
	if ball.Bounds.CenterX() != 105 || ball.Bounds.CenterY() != 95 {
		t.Error("bounds must follow the snapped position")
	}
}

// TestTouchController_PressOutside 未命中：保持 Idle，速度不变，事件仍被处理
func TestTouchController_PressOutside(t *testing.T) {
	tc, ball, touch := newTestTouchController()

	if !tc.Press(300, 300) {
		t.Error("press outside should still be handled")
	}

	if touch.Mode != components.TouchIdle {
		t.Errorf("expected Idle, got %v", touch.Mode)
	}
	if ball.VX != 40 || ball.VY != -30 || ball.X != 100 || ball.Y != 100 {
		t.Errorf("ball should be unchanged, got %+v", *ball)
	}
}

// TestTouchController_DragAndRelease 释放冲量 = 最后一次位移 * 比例
func TestTouchController_DragAndRelease(t *testing.T) {
	tc, ball, touch := newTestTouchController()

	tc.Press(100, 100)
	tc.Move(110, 95)
	tc.Move(125, 85)

	if ball.X != 125 || ball.Y != 85 {
		t.Errorf("expected kinematic ball at (125, 85), got (%v, %v)", ball.X, ball.Y)
	}
	if touch.DeltaX != 15 || touch.DeltaY != -10 {
		t.Errorf("expected last delta (15, -10), got (%v, %v)", touch.DeltaX, touch.DeltaY)
	}

	// 在任意位置释放都会回到 Idle
	tc.Release(500, 500)

	if touch.Mode != components.TouchIdle {
		t.Fatalf("expected Idle after release, got %v", touch.Mode)
	}
	if touch.ImpulseX != 30 || touch.ImpulseY != -20 {
		t.Errorf("expected impulse (30, -20), got (%v, %v)", touch.ImpulseX, touch.ImpulseY)
	}
}

// TestTouchController_ReleaseConsumedByNextStep 下一次物理步进消费冲量
func TestTouchController_ReleaseConsumedByNextStep(t *testing.T) {
	em, ball, touch := newBallWorld(components.NewBallComponent(200, 200, 20),
		components.TouchComponent{}, testViewport)
	tc := NewTouchController(em, 10)
	ps := NewPhysicsSystem(em, PhysicsParams{})

	tc.Press(200, 200)
	tc.Move(204, 197)

	// 拖拽期间物理被跳过，冲量尚未生成
	ps.Update(0.1)
	if ball.X != 204 || ball.Y != 197 {
		t.Fatalf("expected ball held at the touch point, got (%v, %v)", ball.X, ball.Y)
	}

	tc.Release(204, 197)
	ps.Update(0.1)

	if touch.HasImpulse() {
		t.Error("impulse should be zero after the next step")
	}
	if !approxEqual(ball.VX, 4) || !approxEqual(ball.VY, -3) {
		t.Errorf("expected velocity (4, -3), got (%v, %v)", ball.VX, ball.VY)
	}
}

// TestTouchController_IgnoredWhileIdle 空闲时的移动和释放被忽略
func TestTouchController_IgnoredWhileIdle(t *testing.T) {
	tc, ball, touch := newTestTouchController()

	if !tc.Move(10, 10) || !tc.Release(10, 10) {
		t.Error("events should be handled even when ignored")
	}
	if ball.X != 100 || touch.HasImpulse() {
		t.Error("idle move/release must not change state")
	}
}

// TestTouchController_Handle 通过指针事件驱动状态机
func TestTouchController_Handle(t *testing.T) {
	tc, _, touch := newTestTouchController()

	events := []utils.PointerEvent{
		{Type: utils.PointerPress, X: 100, Y: 100},
		{Type: utils.PointerMove, X: 103, Y: 104},
		{Type: utils.PointerRelease, X: 103, Y: 104},
	}
	for _, ev := range events {
		if !tc.Handle(ev) {
			t.Errorf("event %v should be handled", ev.Type)
		}
	}

	if touch.ImpulseX != 6 || touch.ImpulseY != 8 {
		t.Errorf("expected impulse (6, 8), got (%v, %v)", touch.ImpulseX, touch.ImpulseY)
	}
}

// TestTouchController_HoldStillThenRelease 拖拽后停住再松开，不会带着旧位移抛出
func TestTouchController_HoldStillThenRelease(t *testing.T) {
	tc, ball, touch := newTestTouchController()

	tc.Press(100, 100)
	tc.Move(130, 80)
	if touch.DeltaX != 30 || touch.DeltaY != -20 {
		t.Fatalf("expected delta (30, -20), got (%v, %v)", touch.DeltaX, touch.DeltaY)
	}

	// 手指停住：同一位置上的 Move
	tc.Move(130, 80)
	tc.Release(130, 80)

	if touch.HasImpulse() {
		t.Errorf("expected no impulse after holding still, got (%v, %v)", touch.ImpulseX, touch.ImpulseY)
	}
	if ball.X != 130 || ball.Y != 80 {
		t.Errorf("expected ball left at (130, 80), got (%v, %v)", ball.X, ball.Y)
	}
}

// TestTouchController_HoldStillViaTracker 轮询驱动：按住不动的那一帧清零位移
func TestTouchController_HoldStillViaTracker(t *testing.T) {
	tc, _, touch := newTestTouchController()
	tracker := utils.NewPointerTracker()

	polls := []struct {
		pressed bool
		x, y    int
	}{
		{true, 100, 100},
		{true, 120, 90},
		{true, 120, 90},
		{false, 120, 90},
	}
	for _, p := range polls {
		if ev, ok := tracker.Next(p.pressed, p.x, p.y); ok {
			tc.Handle(ev)
		}
	}

	if touch.Mode != components.TouchIdle {
		t.Fatalf("expected Idle after release, got %v", touch.Mode)
	}
	if touch.HasImpulse() {
		t.Errorf("expected no impulse, got (%v, %v)", touch.ImpulseX, touch.ImpulseY)
	}
}
