package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	blipFrequency = 660
	blipDuration  = 40 * time.Millisecond
)

// bounceSound 小球撞墙时播放的短促提示音
// nil 接收者上的方法都是空操作，未初始化音频时可以直接调用
type bounceSound struct{}

func newBounceSound() (*bounceSound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &bounceSound{}, nil
}

// Play 播放一次提示音
func (s *bounceSound) Play() {
	if s == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, blipFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipDuration), sine))
}

// Close 关闭音频输出
func (s *bounceSound) Close() {
	if s == nil {
		return
	}
	speaker.Close()
}
