package game

import (
	"log"
	"reflect"

	"github.com/decker502/bounce/pkg/components"
	"github.com/decker502/bounce/pkg/config"
	"github.com/decker502/bounce/pkg/ecs"
	"github.com/decker502/bounce/pkg/systems"
	"github.com/decker502/bounce/pkg/utils"
)

// Session 一次模拟会话
//
// 持有实体管理器、运行标志以及驱动实体的系统。小球实体在创建会话时就带有
// TouchComponent 和 FrameStatsComponent，首次绘制时再挂上 BallComponent；
// 视口作为单独的实体在首次绘制时创建。
// 所有字段只在宿主循环所在的 goroutine 上访问（tick、绘制和输入都在同一线程），不需要加锁。
//
// 生命周期：
//   - NewSession 之后只有帧率统计和触摸状态可用
//   - 首次绘制时调用 Initialize 创建小球和视口
//   - Stop 之后下一次 Tick 返回 false，调度器永久停止该任务
type Session struct {
	cfg *config.SimulationConfig

	// Active 运行标志，清除后 Tick 返回 false
	Active bool

	em       *ecs.EntityManager
	ballID   ecs.EntityID
	viewport *components.Viewport

	density       float64
	renderPending bool
	ticks         uint64

	clock    Clock
	physics  *systems.PhysicsSystem
	governor *systems.FrameGovernor
	touchCtl *systems.TouchController
}

// NewSession 创建模拟会话
//
// 参数:
//   - cfg: 模拟配置，会话持有其副本，之后对 cfg 的修改不会影响会话
//   - clock: 时间源，为 nil 时使用 SystemClock
//
// 返回:
//   - *Session: 会话实例
func NewSession(cfg *config.SimulationConfig, clock Clock) *Session {
	if clock == nil {
		clock = NewSystemClock()
	}

	em := ecs.NewEntityManager()
	ballID := em.CreateEntity()
	em.AddComponent(ballID, &components.TouchComponent{})
	em.AddComponent(ballID, &components.FrameStatsComponent{})

	s := &Session{
		cfg:    cfg.Clone(),
		Active: cfg.Active,
		em:     em,
		ballID: ballID,
		clock:  clock,
	}

	s.physics = systems.NewPhysicsSystem(em, systems.PhysicsParams{
		Gravity:     s.cfg.Gravity,
		Restitution: s.cfg.Restitution,
	})
	s.governor = systems.NewFrameGovernor(em, s.cfg.TargetFPS, s.cfg.StatsWindow)
	s.touchCtl = systems.NewTouchController(em, s.cfg.TouchForceScale)

	return s
}

// Config 返回会话使用的配置（只读）
func (s *Session) Config() *config.SimulationConfig {
	return s.cfg
}

// Initialize 在首次绘制时初始化视口和小球
//
// 只执行一次，重复调用返回 false。
//
// 参数:
//   - width, height: 视口尺寸（像素）
//   - density: 像素密度
//
// 返回:
//   - bool: 本次调用是否执行了初始化
func (s *Session) Initialize(width, height, density float64) bool {
	if s.IsInitialized() {
		return false
	}

	s.viewport = &components.Viewport{Width: width, Height: height}
	s.em.AddComponent(s.em.CreateEntity(), s.viewport)
	s.density = density

	ball, params := systems.InitializeBall(s.cfg, *s.viewport, density)
	s.em.AddComponent(s.ballID, &ball)
	s.physics.SetParams(params)

	s.renderPending = true

	log.Printf("[Session] Initialized viewport %.0fx%.0f", width, height)
	return true
}

// IsInitialized 是否已完成首次绘制初始化
func (s *Session) IsInitialized() bool {
	return s.em.HasComponent(s.ballID, reflect.TypeOf(&components.BallComponent{}))
}

// Density 返回初始化时使用的像素密度
func (s *Session) Density() float64 {
	return s.density
}

// Ball 返回小球组件，初始化之前为 nil
func (s *Session) Ball() *components.BallComponent {
	ball, _ := ecs.GetComponentOf[*components.BallComponent](s.em, s.ballID)
	return ball
}

// Touch 返回小球的触摸状态
func (s *Session) Touch() *components.TouchComponent {
	touch, _ := ecs.GetComponentOf[*components.TouchComponent](s.em, s.ballID)
	return touch
}

// Stats 返回帧率统计
func (s *Session) Stats() *components.FrameStatsComponent {
	stats, _ := ecs.GetComponentOf[*components.FrameStatsComponent](s.em, s.ballID)
	return stats
}

// Viewport 返回视口尺寸，初始化之前为零值
func (s *Session) Viewport() components.Viewport {
	if s.viewport == nil {
		return components.Viewport{}
	}
	return *s.viewport
}

// Tick 周期回调：从时钟读取经过的时间并执行一次 Step
// 签名与 TickFunc 一致，可直接交给 Scheduler
func (s *Session) Tick() bool {
	return s.Step(s.clock.Elapsed())
}

// Step 执行一次 tick
//
// 帧率统计每次都会执行；物理步进只在仍在运行时执行，
// 首次绘制之前没有小球和视口实体，物理系统自然什么都不做。
//
// 参数:
//   - dt: 自上一次 tick 以来经过的时间（秒）
//
// 返回:
//   - bool: true 继续调度，false 停止
func (s *Session) Step(dt float64) bool {
	s.ticks++
	s.renderPending = s.governor.Tick(dt)

	if !s.Active {
		log.Printf("[Session] Inactive, stopping after %d ticks", s.ticks)
		return false
	}

	s.physics.Update(dt)
	return true
}

// ShouldRender 最近一次 tick 是否允许重绘
func (s *Session) ShouldRender() bool {
	return s.renderPending
}

// ConsumeRender 返回是否有待执行的重绘，并清除该标志
// 宿主每帧调用一次：两次 tick 之间的帧以及被调控器跳过的帧都不重绘
func (s *Session) ConsumeRender() bool {
	pending := s.renderPending
	s.renderPending = false
	return pending
}

// Paint 把小球交给渲染输出
func (s *Session) Paint(p systems.Painter) {
	ball := s.Ball()
	if ball == nil {
		return
	}
	p.Paint(ball.X, ball.Y, ball.Radius())
}

// OnPointer 处理指针事件
// 初始化前小球尚不存在，事件被忽略；所有事件都视为已处理
func (s *Session) OnPointer(ev utils.PointerEvent) bool {
	if !s.IsInitialized() {
		return true
	}
	return s.touchCtl.Handle(ev)
}

// SetContactHandler 设置墙壁反弹回调（如播放音效）
func (s *Session) SetContactHandler(fn func(systems.Contact)) {
	s.physics.OnContact = fn
}

// Start 把会话的 Tick 交给调度器，间隔由配置决定
func (s *Session) Start(sched Scheduler) Handle {
	interval := s.cfg.TickInterval()
	log.Printf("[Session] Starting simulation, tick interval %v", interval)
	return sched.Start(interval, s.Tick)
}

// Stop 清除运行标志，下一次 Tick 返回 false
func (s *Session) Stop() {
	s.Active = false
}

// Ticks 返回已执行的 tick 数
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// IsDragging 小球是否正被拖拽
func (s *Session) IsDragging() bool {
	return s.Touch().IsDragging()
}
