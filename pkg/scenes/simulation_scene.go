package scenes

import (
	"log"
	"time"

	"github.com/decker502/bounce/pkg/game"
	"github.com/decker502/bounce/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SimulationScene 弹跳小球场景
//
// Ebitengine 的 Update 驱动输入轮询和调度器，tick 在 Update 中同步执行；
// Draw 只在最近一次 tick 允许重绘时才重新绘制（屏幕不会每帧清空）。
type SimulationScene struct {
	session *game.Session
	sched   *game.FrameScheduler
	handle  game.Handle

	input  *systems.InputSystem
	render *systems.RenderSystem

	now           func() time.Time
	density       func() float64
	quitRequested bool
}

// NewSimulationScene 创建场景并启动周期 tick
//
// 参数:
//   - session: 模拟会话
//   - showStats: 是否显示帧率统计
//
// 返回:
//   - *SimulationScene: 场景实例
func NewSimulationScene(session *game.Session, showStats bool) *SimulationScene {
	s := &SimulationScene{
		session: session,
		render:  systems.NewRenderSystem(showStats),
		now:     time.Now,
		density: deviceScaleFactor,
	}
	s.sched = game.NewFrameScheduler(func() time.Time { return s.now() })

	s.input = systems.NewInputSystem(session.OnPointer)
	s.input.OnQuit = s.RequestQuit

	s.handle = session.Start(s.sched)
	return s
}

func deviceScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// Update 实现 game.Scene
// deltaTime 未使用，tick 间隔和经过时间都由调度器和会话时钟决定
func (s *SimulationScene) Update(deltaTime float64) {
	if !s.quitRequested {
		s.input.Update()
	}
	s.sched.Advance(s.now())
}

// Draw 实现 game.Scene
func (s *SimulationScene) Draw(screen *ebiten.Image) {
	if !s.session.IsInitialized() {
		b := screen.Bounds()
		s.session.Initialize(float64(b.Dx()), float64(b.Dy()), s.density())
	}

	if !s.session.ConsumeRender() {
		return
	}
	s.render.Draw(screen, s.session.Ball(), s.session.Stats())
}

// RequestQuit 停止模拟，下一次 tick 后调度器移除任务
func (s *SimulationScene) RequestQuit() {
	if s.quitRequested {
		return
	}
	log.Printf("[SimulationScene] Quit requested")
	s.quitRequested = true
	s.session.Stop()
}

// QuitRequested 是否已请求退出
func (s *SimulationScene) QuitRequested() bool {
	return s.quitRequested
}

// Running 模拟 tick 是否仍在调度中
func (s *SimulationScene) Running() bool {
	return s.sched.Running(s.handle)
}
