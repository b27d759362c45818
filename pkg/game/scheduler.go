package game

import (
	"time"
)

// TickFunc 周期回调，返回 true 继续调度，返回 false 永久停止
type TickFunc func() bool

// Handle 调度任务句柄
type Handle uint64

// Scheduler 周期回调调度器
type Scheduler interface {
	// Start 以固定间隔调度 fn，返回任务句柄
	Start(interval time.Duration, fn TickFunc) Handle
	// Stop 停止任务；对已停止或不存在的句柄无副作用
	Stop(h Handle)
}

type scheduledTask struct {
	id       Handle
	interval time.Duration
	next     time.Time
	fn       TickFunc
	stopped  bool
}

// FrameScheduler 由宿主循环驱动的调度器
//
// 宿主（Ebitengine 的 Update 或终端事件循环）每帧调用 Advance，
// 到期的回调在调用者的 goroutine 中同步执行，因此回调与绘制、输入处理不会并发。
// 落后多个间隔时只执行一次（不补帧），由回调通过 Clock 感知实际经过的时间。
type FrameScheduler struct {
	now    func() time.Time
	nextID Handle
	tasks  []*scheduledTask
}

// NewFrameScheduler 创建调度器
//
// 参数:
//   - now: 时间源，为 nil 时使用 time.Now
func NewFrameScheduler(now func() time.Time) *FrameScheduler {
	if now == nil {
		now = time.Now
	}
	return &FrameScheduler{now: now}
}

// Start 实现 Scheduler，首次回调在一个间隔之后
func (s *FrameScheduler) Start(interval time.Duration, fn TickFunc) Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	s.nextID++
	s.tasks = append(s.tasks, &scheduledTask{
		id:       s.nextID,
		interval: interval,
		next:     s.now().Add(interval),
		fn:       fn,
	})
	return s.nextID
}

// Stop 实现 Scheduler
func (s *FrameScheduler) Stop(h Handle) {
	for _, task := range s.tasks {
		if task.id == h {
			task.stopped = true
		}
	}
	s.compact()
}

// Advance 执行所有在 now 之前到期的回调
//
// 返回:
//   - int: 本次执行的回调数量
func (s *FrameScheduler) Advance(now time.Time) int {
	fired := 0
	// 回调中可能 Start 新任务，只遍历当前快照
	tasks := append([]*scheduledTask(nil), s.tasks...)
	for _, task := range tasks {
		if task.stopped || now.Before(task.next) {
			continue
		}
		fired++
		if !task.fn() {
			task.stopped = true
			continue
		}
		task.next = task.next.Add(task.interval)
		if !task.next.After(now) {
			task.next = now.Add(task.interval)
		}
	}
	s.compact()
	return fired
}

// Len 返回仍在运行的任务数量
func (s *FrameScheduler) Len() int {
	n := 0
	for _, task := range s.tasks {
		if !task.stopped {
			n++
		}
	}
	return n
}

// Running 检查任务是否仍在运行
func (s *FrameScheduler) Running(h Handle) bool {
	for _, task := range s.tasks {
		if task.id == h && !task.stopped {
			return true
		}
	}
	return false
}

func (s *FrameScheduler) compact() {
	live := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.stopped {
			live = append(live, task)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
