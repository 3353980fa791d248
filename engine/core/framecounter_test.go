package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockElapsed(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := &Clock{now: ft.now}

	c.Update()
	assert.Zero(t, c.Elapsed(), "a clock that was never started does not advance")

	c.Start()
	ft.advance(1500 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)

	c.Stop()
	ft.advance(time.Second)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)
}

func TestFrameCounterFPS(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	fc := newFrameCounter(&Clock{now: ft.now})

	// 60 frames of 30ms each: the FPS is published once more than a second has accumulated.
	for i := 0; i < 60; i++ {
		ft.advance(30 * time.Millisecond)
		delta := fc.Frame()
		assert.InDelta(t, 0.030, delta, 1e-9)
	}

	assert.Equal(t, float64(33), fc.FPS())
	assert.InDelta(t, float64(30*time.Millisecond), float64(fc.FrameTime()), float64(time.Microsecond))
}

func TestFrameCounterStartsEmpty(t *testing.T) {
	fc := NewFrameCounter()
	assert.Zero(t, fc.FPS())
	assert.Zero(t, fc.FrameTime())
}
