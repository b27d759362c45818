package systems

import (
	"math"
	"reflect"

	"github.com/decker502/bounce/pkg/components"
	"github.com/decker502/bounce/pkg/ecs"
)

// restingSpeedFactor 撞击速度不超过 gravity*dt*restingSpeedFactor 时视为静止抖动，
// 位置修正和反弹冲量照常执行，但不报告为接触
const restingSpeedFactor = 2

// PhysicsParams 物理参数（像素单位）
type PhysicsParams struct {
	Gravity     float64 // 重力加速度（像素/秒²），正值向下
	Restitution float64 // 反弹系数 0.0 ~ 1.0
}

// Contact 描述本次步进中真正撞击的墙壁
// 停在地面上的小球每隔几个 tick 会以很小的速度再次越过底墙，这类接触不计入
type Contact struct {
	Left, Right, Top, Bottom bool
}

func (c Contact) merge(o Contact) Contact {
	return Contact{
		Left:   c.Left || o.Left,
		Right:  c.Right || o.Right,
		Top:    c.Top || o.Top,
		Bottom: c.Bottom || o.Bottom,
	}
}

// Any 是否与任意墙壁发生了反弹
func (c Contact) Any() bool {
	return c.Left || c.Right || c.Top || c.Bottom
}

// Step 对小球执行一次固定步长的物理步进
//
// 力的累积顺序：
//  1. 从纯重力 (0, g) 开始
//  2. 若边界框越过左/右墙且仍向外运动，X 方向的力替换为反弹冲量 -vx*(1+e)/dt；
//     Y 方向（上/下墙）独立处理，两轴可在同一步中同时修正
//  3. 越墙时先按穿透深度把小球推回墙内，再进行积分
//  4. 叠加触摸释放冲量（这是力，不是速度）
//  5. 半隐式欧拉积分：v += f*dt，p += v*dt，然后重新计算边界框
//
// dt <= 0 时不做任何位移也不计算冲量（避免除零），直接返回。
// 若同一轴的两面墙同时被越过（视口不大于小球），该轴不做修正。
// 上下墙的撞击速度不超过 |g|*dt*2 时不报告接触（静止在地面上的抖动）。
//
// 参数:
//   - ball: 上一步的小球状态
//   - dt: 步长（秒）
//   - vp: 视口
//   - params: 物理参数
//   - impulseX, impulseY: 待处理的触摸冲量（力）
//
// 返回:
//   - components.BallComponent: 新的小球状态
//   - Contact: 真正撞击的墙壁
func Step(ball components.BallComponent, dt float64, vp components.Viewport, params PhysicsParams,
	impulseX, impulseY float64) (components.BallComponent, Contact) {

	var contact Contact
	ball.UpdateBounds()

	if dt <= 0 {
		return ball, contact
	}

	forceX, forceY := 0.0, params.Gravity
	bounce := 1 + params.Restitution
	restingSpeed := math.Abs(params.Gravity) * dt * restingSpeedFactor

	// X 轴：左右墙
	crossedLeft := ball.Bounds.Left < 0
	crossedRight := ball.Bounds.Right > vp.Width
	switch {
	case crossedLeft && crossedRight:
		// 视口宽度不足以容纳小球，不处理
	case crossedLeft:
		ball.X -= ball.Bounds.Left
		if ball.VX < 0 {
			forceX = -ball.VX * bounce / dt
			contact.Left = true
		}
	case crossedRight:
		ball.X -= ball.Bounds.Right - vp.Width
		if ball.VX > 0 {
			forceX = -ball.VX * bounce / dt
			contact.Right = true
		}
	}

	// Y 轴：上下墙
	crossedTop := ball.Bounds.Top < 0
	crossedBottom := ball.Bounds.Bottom > vp.Height
	switch {
	case crossedTop && crossedBottom:
	case crossedTop:
		ball.Y -= ball.Bounds.Top
		if ball.VY < 0 {
			forceY = -ball.VY * bounce / dt
			contact.Top = -ball.VY > restingSpeed
		}
	case crossedBottom:
		ball.Y -= ball.Bounds.Bottom - vp.Height
		if ball.VY > 0 {
			forceY = -ball.VY * bounce / dt
			contact.Bottom = ball.VY > restingSpeed
		}
	}

	forceX += impulseX
	forceY += impulseY

	ball.VX += forceX * dt
	ball.VY += forceY * dt
	ball.X += ball.VX * dt
	ball.Y += ball.VY * dt
	ball.UpdateBounds()

	return ball, contact
}

// PhysicsSystem 驱动所有小球实体的物理步进
// 拖拽中的小球跳过物理步进（位置由 TouchController 直接设置）
type PhysicsSystem struct {
	em     *ecs.EntityManager
	params PhysicsParams

	// OnContact 发生墙壁撞击时回调，可为 nil
	OnContact func(Contact)
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，查询拥有 BallComponent + TouchComponent 的实体和视口实体
//   - params: 物理参数（像素单位）
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, params PhysicsParams) *PhysicsSystem {
	return &PhysicsSystem{
		em:     em,
		params: params,
	}
}

// SetParams 更新物理参数（初始化时换算为像素单位后调用）
func (ps *PhysicsSystem) SetParams(params PhysicsParams) {
	ps.params = params
}

// Update 对每个小球执行一次物理步进
//
// 视口实体不存在（首次绘制之前）时什么都不做。
//
// 参数:
//   - deltaTime: 自上一次 tick 以来经过的时间（秒）
//
// 返回:
//   - Contact: 本次步进所有小球的墙壁撞击情况
func (ps *PhysicsSystem) Update(deltaTime float64) Contact {
	vp, ok := ps.viewport()
	if !ok {
		return Contact{}
	}

	var all Contact
	entities := ps.em.GetEntitiesWith(
		reflect.TypeOf(&components.BallComponent{}),
		reflect.TypeOf(&components.TouchComponent{}),
	)
	for _, id := range entities {
		ball, _ := ecs.GetComponentOf[*components.BallComponent](ps.em, id)
		touch, _ := ecs.GetComponentOf[*components.TouchComponent](ps.em, id)

		if touch.IsDragging() {
			continue
		}

		// dt 无效时保留冲量，留给下一次有效步进
		if deltaTime <= 0 {
			ball.UpdateBounds()
			continue
		}

		impulseX, impulseY := touch.ConsumeImpulse()

		var contact Contact
		*ball, contact = Step(*ball, deltaTime, *vp, ps.params, impulseX, impulseY)

		if contact.Any() && ps.OnContact != nil {
			ps.OnContact(contact)
		}
		all = all.merge(contact)
	}
	return all
}

func (ps *PhysicsSystem) viewport() (*components.Viewport, bool) {
	ids := ps.em.GetEntitiesWith(reflect.TypeOf(&components.Viewport{}))
	if len(ids) == 0 {
		return nil, false
	}
	return ecs.GetComponentOf[*components.Viewport](ps.em, ids[0])
}
