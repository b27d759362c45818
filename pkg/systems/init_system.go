package systems

import (
	"log"

	"github.com/decker502/bounce/pkg/components"
	"github.com/decker502/bounce/pkg/config"
	"github.com/decker502/bounce/pkg/utils"
)

// InitializeBall 在首次绘制时创建小球
//
// 首次绘制前视口尺寸和像素密度都未知，因此初始化被推迟到这里：
//   - 直径、初始位置、初始速度、重力从逻辑单位 (dp) 换算为像素
//   - 夹紧初始位置，使边界框完全位于视口内
//   - 计算初始边界框
//
// 视口在某个方向上不大于小球时，该方向居中放置（尽力而为）。
//
// 参数:
//   - cfg: 模拟配置（逻辑单位）
//   - vp: 视口（像素）
//   - density: 像素密度，<= 0 时按 1 处理
//
// 返回:
//   - components.BallComponent: 初始化后的小球
//   - PhysicsParams: 像素单位的物理参数
func InitializeBall(cfg *config.SimulationConfig, vp components.Viewport, density float64) (components.BallComponent, PhysicsParams) {
	if density <= 0 {
		density = 1
	}

	diameter := utils.DpToPx(cfg.BallDiameter, density)
	radius := diameter / 2

	x := utils.ClampCentered(utils.DpToPx(cfg.Initial.X, density), radius, vp.Width)
	y := utils.ClampCentered(utils.DpToPx(cfg.Initial.Y, density), radius, vp.Height)

	ball := components.NewBallComponent(x, y, diameter)
	ball.SetVelocity(utils.DpToPx(cfg.Initial.VX, density), utils.DpToPx(cfg.Initial.VY, density))

	params := PhysicsParams{
		Gravity:     utils.DpToPx(cfg.Gravity, density),
		Restitution: cfg.Restitution,
	}

	if vp.IsDegenerate(diameter) {
		log.Printf("[Init] Warning: viewport %.0fx%.0f cannot contain ball of diameter %.1f",
			vp.Width, vp.Height, diameter)
	}
	log.Printf("[Init] Ball initialized at (%.1f, %.1f), diameter %.1f px, density %.2f",
		ball.X, ball.Y, ball.Diameter, density)

	return ball, params
}
