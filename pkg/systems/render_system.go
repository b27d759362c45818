package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/bounce/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter 渲染输出
// 每个被接受的帧调用一次，绘制小球当前位置
type Painter interface {
	Paint(centerX, centerY, radius float64)
}

// 默认颜色
var (
	BackgroundColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	BallColor       = color.RGBA{R: 230, G: 80, B: 60, A: 255}
)

// RenderSystem 使用 Ebitengine 绘制小球
//
// 屏幕不会每帧自动清空（见 app 包），跳过重绘时上一帧的画面保留在屏幕上。
type RenderSystem struct {
	target    *ebiten.Image
	ballColor color.Color
	showStats bool
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - showStats: 是否在左上角绘制帧率和速度信息
func NewRenderSystem(showStats bool) *RenderSystem {
	return &RenderSystem{
		ballColor: BallColor,
		showStats: showStats,
	}
}

// SetTarget 设置本帧的绘制目标
func (rs *RenderSystem) SetTarget(screen *ebiten.Image) {
	rs.target = screen
}

// Paint 实现 Painter：清空背景并绘制抗锯齿实心圆
func (rs *RenderSystem) Paint(centerX, centerY, radius float64) {
	if rs.target == nil {
		return
	}
	rs.target.Fill(BackgroundColor)
	vector.DrawFilledCircle(rs.target, float32(centerX), float32(centerY), float32(radius), rs.ballColor, true)
}

// Draw 绘制一帧：小球 + 可选的诊断信息，小球尚未创建时不绘制
func (rs *RenderSystem) Draw(screen *ebiten.Image, ball *components.BallComponent, stats *components.FrameStatsComponent) {
	if ball == nil {
		return
	}
	rs.SetTarget(screen)
	rs.Paint(ball.X, ball.Y, ball.Radius())

	if rs.showStats && stats != nil {
		ebitenutil.DebugPrint(screen, FormatStats(ball, stats))
	}
}

// FormatStats 格式化诊断信息
func FormatStats(ball *components.BallComponent, stats *components.FrameStatsComponent) string {
	return fmt.Sprintf("FPS: %.1f (avg %.1f)\nSkipped: %d\nPos: (%.0f, %.0f)\nVel: (%.0f, %.0f)",
		stats.LastFPS, stats.LastAverage, stats.Skipped, ball.X, ball.Y, ball.VX, ball.VY)
}
