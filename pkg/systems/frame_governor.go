package systems

import (
	"log"
	"reflect"

	"github.com/decker502/bounce/pkg/components"
	"github.com/decker502/bounce/pkg/ecs"
)

// FrameGovernor 帧率调控器
//
// 根据每次 tick 的瞬时帧率决定是否重绘：瞬时帧率低于目标帧率的一半时跳过重绘，
// 物理状态仍然每次 tick 更新。同时在每个拥有 FrameStatsComponent 的实体上
// 累计最近 window 个样本的平均帧率用于诊断。
type FrameGovernor struct {
	em        *ecs.EntityManager
	targetFPS float64
	window    int
}

// NewFrameGovernor 创建帧率调控器
//
// 参数:
//   - em: 实体管理器，查询拥有 FrameStatsComponent 的实体
//   - targetFPS: 目标帧率（如 30）
//   - window: 统计窗口大小（如 20）
func NewFrameGovernor(em *ecs.EntityManager, targetFPS float64, window int) *FrameGovernor {
	if window <= 0 {
		window = 1
	}
	return &FrameGovernor{
		em:        em,
		targetFPS: targetFPS,
		window:    window,
	}
}

// InstantFPS 计算瞬时帧率，dt <= 0 时返回 0
func InstantFPS(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 / dt
}

// Tick 记录一个时间样本并返回本帧是否应该重绘
//
// 参数:
//   - dt: 自上一次 tick 以来经过的时间（秒）
//
// 返回:
//   - bool: 瞬时帧率 >= 目标帧率/2 时返回 true
func (fg *FrameGovernor) Tick(dt float64) bool {
	fps := InstantFPS(dt)
	render := fps >= fg.Threshold()

	for _, id := range fg.em.GetEntitiesWith(reflect.TypeOf(&components.FrameStatsComponent{})) {
		stats, _ := ecs.GetComponentOf[*components.FrameStatsComponent](fg.em, id)
		fg.record(stats, fps, render)
	}
	return render
}

func (fg *FrameGovernor) record(stats *components.FrameStatsComponent, fps float64, render bool) {
	stats.LastFPS = fps
	stats.Count++
	stats.Sum += fps
	if !render {
		stats.Skipped++
	}

	if stats.Count >= fg.window {
		stats.LastAverage = stats.Sum / float64(stats.Count)
		stats.Windows++
		log.Printf("[FrameGovernor] Average FPS over %d ticks: %.1f (skipped %d redraws so far)",
			stats.Count, stats.LastAverage, stats.Skipped)
		stats.Count = 0
		stats.Sum = 0
	}
}

// Threshold 返回重绘所需的最低瞬时帧率
func (fg *FrameGovernor) Threshold() float64 {
	return fg.targetFPS / 2
}
