package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

const ballRune = '█'

// termPainter 把像素坐标的小球画到终端字符格上
// 每个字符格对应 cellW x cellH 像素，格子中心落在圆内即填充
type termPainter struct {
	screen    tcell.Screen
	cellW     float64
	cellH     float64
	ballStyle tcell.Style
	textStyle tcell.Style
	status    string
}

func newTermPainter(screen tcell.Screen, cellW, cellH float64) *termPainter {
	return &termPainter{
		screen:    screen,
		cellW:     cellW,
		cellH:     cellH,
		ballStyle: tcell.StyleDefault.Foreground(tcell.ColorOrange),
		textStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// Paint 实现 systems.Painter
func (p *termPainter) Paint(centerX, centerY, radius float64) {
	p.screen.Clear()
	cols, rows := p.screen.Size()

	minCol := max(0, int(math.Floor((centerX-radius)/p.cellW)))
	maxCol := min(cols-1, int(math.Floor((centerX+radius)/p.cellW)))
	minRow := max(0, int(math.Floor((centerY-radius)/p.cellH)))
	maxRow := min(rows-1, int(math.Floor((centerY+radius)/p.cellH)))

	painted := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			dx := (float64(col)+0.5)*p.cellW - centerX
			dy := (float64(row)+0.5)*p.cellH - centerY
			if dx*dx+dy*dy <= radius*radius {
				p.screen.SetContent(col, row, ballRune, nil, p.ballStyle)
				painted = true
			}
		}
	}

	// 小球比一个字符格还小时，至少画出中心所在的格子
	if !painted {
		col := int(centerX / p.cellW)
		row := int(centerY / p.cellH)
		if col >= 0 && col < cols && row >= 0 && row < rows {
			p.screen.SetContent(col, row, ballRune, nil, p.ballStyle)
		}
	}

	p.drawStatus()
}

func (p *termPainter) drawStatus() {
	if p.status == "" {
		return
	}
	col, row := 0, 0
	for _, r := range p.status {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		p.screen.SetContent(col, row, r, nil, p.textStyle)
		col++
	}
}

// toPixels 把字符格坐标换算为格子中心的像素坐标
func (p *termPainter) toPixels(col, row int) (int, int) {
	return int((float64(col) + 0.5) * p.cellW), int((float64(row) + 0.5) * p.cellH)
}

// viewport 返回整个终端对应的像素尺寸
func (p *termPainter) viewport() (float64, float64) {
	cols, rows := p.screen.Size()
	return float64(cols) * p.cellW, float64(rows) * p.cellH
}
