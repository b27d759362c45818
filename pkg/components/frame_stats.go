package components

// FrameStatsComponent 帧率统计
// 仅用于诊断：累计最近的瞬时帧率样本，满窗口后计算平均值并清零
type FrameStatsComponent struct {
	Count       int     // 当前窗口样本数
	Sum         float64 // 当前窗口帧率之和
	LastFPS     float64 // 最近一次瞬时帧率
	LastAverage float64 // 最近一个完整窗口的平均帧率
	Windows     int     // 已完成的窗口数
	Skipped     int     // 累计跳过的重绘次数
}
