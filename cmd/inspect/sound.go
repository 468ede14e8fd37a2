package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	toneShown = 880
	toneHost  = 440
)

// tone plays a short click on selection changes; a nil tone is silent
type tone struct {
	rate beep.SampleRate
}

func newTone() (*tone, error) {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &tone{rate: rate}, nil
}

func (t *tone) play(freq float64) {
	if t == nil {
		return
	}
	sine, err := generators.SineTone(t.rate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(t.rate.N(30*time.Millisecond), sine))
}

func (t *tone) close() {
	if t != nil {
		speaker.Close()
	}
}
