package game

import "time"

// Clock 提供自上一次 tick 以来经过的时间
type Clock interface {
	// Elapsed 返回自上一次调用以来经过的秒数，首次调用返回 0
	Elapsed() float64
}

// SystemClock 基于单调时钟的真实时间
type SystemClock struct {
	now  func() time.Time
	last time.Time
}

// NewSystemClock 创建真实时间时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{now: time.Now}
}

// Elapsed 实现 Clock
func (c *SystemClock) Elapsed() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// ManualClock 每次返回固定步长，用于测试和无界面运行
type ManualClock struct {
	step float64
}

// NewManualClock 创建固定步长时钟
//
// 参数:
//   - step: 每次 Elapsed 返回的秒数
func NewManualClock(step float64) *ManualClock {
	return &ManualClock{step: step}
}

// Elapsed 实现 Clock
func (c *ManualClock) Elapsed() float64 {
	return c.step
}

// Set 修改步长（模拟卡顿帧）
func (c *ManualClock) Set(step float64) {
	c.step = step
}
