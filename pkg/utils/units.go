package utils

// DpToPx 将逻辑单位 (dp) 换算为像素
func DpToPx(dp, density float64) float64 {
	return dp * density
}

// Clamp 将 v 限制在 [lo, hi] 之间
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampCentered 夹紧中心坐标，使半径为 radius 的物体完全位于 [0, extent] 内
// extent 不足以容纳物体时返回 extent 的中点
func ClampCentered(center, radius, extent float64) float64 {
	if extent <= 2*radius {
		return extent / 2
	}
	return Clamp(center, radius, extent-radius)
}
