package game

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/bounce/pkg/components"
	"github.com/decker502/bounce/pkg/config"
	"github.com/decker502/bounce/pkg/systems"
	"github.com/decker502/bounce/pkg/utils"
)

const testDt = 1.0 / 30

func newTestConfig() *config.SimulationConfig {
	cfg := config.DefaultSimulationConfig()
	cfg.BallDiameter = 20
	cfg.Gravity = 981
	cfg.Restitution = 0.5
	cfg.Initial = config.InitialState{X: 200, Y: 200}
	cfg.TouchForceScale = 10
	return cfg
}

// TestSession_TicksBeforeInitialize 初始化前的 tick 只做帧率统计
func TestSession_TicksBeforeInitialize(t *testing.T) {
	s := NewSession(newTestConfig(), NewManualClock(testDt))

	for i := 0; i < 5; i++ {
		if !s.Tick() {
			t.Fatal("tick before initialization should keep running")
		}
	}

	if s.IsInitialized() {
		t.Error("session should not be initialized yet")
	}
	if s.Stats().Count != 5 {
		t.Errorf("expected 5 governor samples, got %d", s.Stats().Count)
	}
	if s.Ball() != nil {
		t.Errorf("ball should not exist before initialization, got %+v", s.Ball())
	}
	if s.Viewport() != (components.Viewport{}) {
		t.Errorf("viewport should be empty before initialization, got %+v", s.Viewport())
	}

	// 没有小球时绘制什么都不做
	p := &recordingPainter{}
	s.Paint(p)
	if p.calls != 0 {
		t.Errorf("expected no paint before initialization, got %d calls", p.calls)
	}
}

// TestSession_InitializeOnce 初始化只执行一次
func TestSession_InitializeOnce(t *testing.T) {
	s := NewSession(newTestConfig(), nil)

	if !s.Initialize(400, 400, 1) {
		t.Fatal("first Initialize should run")
	}
	if s.Initialize(800, 800, 2) {
		t.Error("second Initialize should be ignored")
	}
	if s.Viewport().Width != 400 || s.Density() != 1 {
		t.Errorf("viewport must stay fixed after first paint, got %+v density %v", s.Viewport(), s.Density())
	}
	if !s.ConsumeRender() {
		t.Error("first paint should be rendered")
	}
	if s.ConsumeRender() {
		t.Error("render flag should be consumed")
	}
}

// TestSession_GravityAfterInitialize 初始化后的 tick 执行物理步进
func TestSession_GravityAfterInitialize(t *testing.T) {
	s := NewSession(newTestConfig(), NewManualClock(testDt))
	s.Initialize(400, 400, 1)

	s.Tick()

	if math.Abs(s.Ball().VY-981*testDt) > 1e-9 {
		t.Errorf("expected vy = %v, got %v", 981*testDt, s.Ball().VY)
	}
	if !s.ShouldRender() {
		t.Error("a 30fps tick should be rendered")
	}
}

// TestSession_SlowTickSkipsRender 卡顿帧仍然更新物理，但跳过重绘
func TestSession_SlowTickSkipsRender(t *testing.T) {
	clock := NewManualClock(testDt)
	s := NewSession(newTestConfig(), clock)
	s.Initialize(400, 400, 1)
	s.ConsumeRender()

	clock.Set(0.1)
	before := s.Ball().Y
	s.Tick()

	if s.ConsumeRender() {
		t.Error("a 10fps tick should skip the redraw")
	}
	if s.Ball().Y == before {
		t.Error("physics must still advance on a skipped frame")
	}
}

// TestSession_Stop 清除运行标志后 Tick 返回 false
func TestSession_Stop(t *testing.T) {
	s := NewSession(newTestConfig(), NewManualClock(testDt))
	if !s.Tick() {
		t.Fatal("active session should keep running")
	}

	s.Stop()

	if s.Tick() {
		t.Error("stopped session should return false")
	}
}

// TestSession_InactiveConfig 配置为非运行状态时首次 tick 即停止
func TestSession_InactiveConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.Active = false
	s := NewSession(cfg, NewManualClock(testDt))

	if s.Tick() {
		t.Error("inactive session should stop on the first tick")
	}
}

// TestSession_ConfigIsCopied 会话开始后修改原配置不影响会话
func TestSession_ConfigIsCopied(t *testing.T) {
	cfg := newTestConfig()
	s := NewSession(cfg, nil)

	cfg.Gravity = 0

	if s.Config().Gravity != 981 {
		t.Errorf("session config should be immutable, got gravity %v", s.Config().Gravity)
	}
}

// TestSession_WithScheduler 通过调度器驱动，Stop 后任务被移除
func TestSession_WithScheduler(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sched := NewFrameScheduler(func() time.Time { return base })
	s := NewSession(newTestConfig(), NewManualClock(testDt))
	s.Initialize(400, 400, 1)

	h := s.Start(sched)
	interval := s.Config().TickInterval()

	for i := 1; i <= 3; i++ {
		sched.Advance(base.Add(time.Duration(i) * interval))
	}
	if s.Ticks() != 3 {
		t.Fatalf("expected 3 ticks, got %d", s.Ticks())
	}

	s.Stop()
	sched.Advance(base.Add(4 * interval))
	sched.Advance(base.Add(5 * interval))

	if sched.Running(h) {
		t.Error("scheduler should drop the session task after Stop")
	}
	if s.Ticks() != 4 {
		t.Errorf("expected exactly one more tick after Stop, got %d", s.Ticks())
	}
}

// TestSession_DragAndThrow 拖拽期间物理被跳过，释放后冲量在下一 tick 生效
func TestSession_DragAndThrow(t *testing.T) {
	s := NewSession(newTestConfig(), NewManualClock(testDt))

	// 初始化前的触摸事件被忽略
	if !s.OnPointer(utils.PointerEvent{Type: utils.PointerPress, X: 200, Y: 200}) {
		t.Error("events should always be handled")
	}
	if s.IsDragging() {
		t.Fatal("press before initialization must be ignored")
	}

	s.Initialize(400, 400, 1)

	s.OnPointer(utils.PointerEvent{Type: utils.PointerPress, X: 205, Y: 195})
	if !s.IsDragging() {
		t.Fatal("press inside the ball should start dragging")
	}

	s.OnPointer(utils.PointerEvent{Type: utils.PointerMove, X: 215, Y: 180})
	s.Tick()
	if s.Ball().X != 215 || s.Ball().Y != 180 || s.Ball().VY != 0 {
		t.Errorf("kinematic ball should stay under the finger, got %+v", s.Ball())
	}

	s.OnPointer(utils.PointerEvent{Type: utils.PointerRelease, X: 215, Y: 180})
	if s.Touch().ImpulseX != 100 || s.Touch().ImpulseY != -150 {
		t.Fatalf("expected impulse (100, -150), got (%v, %v)", s.Touch().ImpulseX, s.Touch().ImpulseY)
	}

	s.Tick()

	if s.Touch().HasImpulse() {
		t.Error("impulse should be consumed by the next tick")
	}
	wantVX := 100 * testDt
	wantVY := (981 - 150) * testDt
	if math.Abs(s.Ball().VX-wantVX) > 1e-9 || math.Abs(s.Ball().VY-wantVY) > 1e-9 {
		t.Errorf("expected velocity (%v, %v), got (%v, %v)", wantVX, wantVY, s.Ball().VX, s.Ball().VY)
	}
}

// TestSession_SettlesAtBottom 400x400 视口中静止释放的小球最终停在底部附近，且每次反弹高度递减
func TestSession_SettlesAtBottom(t *testing.T) {
	s := NewSession(newTestConfig(), NewManualClock(testDt))
	s.Initialize(400, 400, 1)

	// heights[k] 为第 k 次触底之后（k=0 为首次触底前）离地的最大高度
	heights := []float64{0}
	s.SetContactHandler(func(c systems.Contact) {
		if c.Bottom {
			heights = append(heights, 0)
		}
	})

	const ticks = 600
	for i := 0; i < ticks; i++ {
		s.Tick()

		gap := s.Viewport().Height - s.Ball().Bounds.Bottom
		if gap > heights[len(heights)-1] {
			heights[len(heights)-1] = gap
		}

		if i >= ticks/2 && math.Abs(gap) > 5 {
			t.Fatalf("tick %d: ball should have settled near the floor, gap %v", i, gap)
		}
	}

	if len(heights) < 6 {
		t.Fatalf("expected several bounces, got %d", len(heights)-1)
	}
	for k := 1; k < 6; k++ {
		if heights[k] >= heights[k-1] {
			t.Errorf("bounce %d height %v should be lower than previous %v", k, heights[k], heights[k-1])
		}
	}
}

// TestSession_RestingBallIsSilent 小球停稳之后不再触发反弹回调
func TestSession_RestingBallIsSilent(t *testing.T) {
	s := NewSession(newTestConfig(), NewManualClock(testDt))
	s.Initialize(400, 400, 1)

	tick := 0
	lastContact := -1
	s.SetContactHandler(func(systems.Contact) {
		lastContact = tick
	})

	const ticks = 3000
	for tick = 0; tick < ticks; tick++ {
		s.Tick()
	}

	if lastContact < 0 {
		t.Fatal("expected the initial bounces to be reported")
	}
	if lastContact >= ticks-300 {
		t.Errorf("expected no bounce reports once at rest, last one at tick %d", lastContact)
	}
}

// TestSession_Paint 渲染输出收到中心和半径
func TestSession_Paint(t *testing.T) {
	s := NewSession(newTestConfig(), nil)
	s.Initialize(400, 400, 1)

	p := &recordingPainter{}
	s.Paint(p)

	if p.calls != 1 || p.cx != 200 || p.cy != 200 || p.r != 10 {
		t.Errorf("unexpected paint call %+v", p)
	}
}

type recordingPainter struct {
	calls     int
	cx, cy, r float64
}

func (p *recordingPainter) Paint(cx, cy, r float64) {
	p.calls++
	p.cx, p.cy, p.r = cx, cy, r
}
