package core

import "time"

const AVG_COUNT uint8 = 30

// FrameCounter tracks frames per second and a rolling average of frame times.
type FrameCounter struct {
	clock *Clock
	last  float64

	frameAVGCounter    uint8
	msTimes            [AVG_COUNT]float64
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewFrameCounter() *FrameCounter {
	return newFrameCounter(NewClock())
}

func newFrameCounter(c *Clock) *FrameCounter {
	c.Start()
	return &FrameCounter{clock: c}
}

// Frame marks the end of a frame and returns the seconds it took.
func (fc *FrameCounter) Frame() float64 {
	fc.clock.Update()
	now := fc.clock.Elapsed()
	delta := now - fc.last
	fc.last = now
	fc.update(delta)
	return delta
}

func (fc *FrameCounter) update(frameElapsedTime float64) {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	fc.msTimes[fc.frameAVGCounter] = frameMS
	if fc.frameAVGCounter == AVG_COUNT-1 {
		fc.msAvg = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			fc.msAvg += fc.msTimes[i]
		}
		fc.msAvg /= float64(AVG_COUNT)
	}
	fc.frameAVGCounter++
	fc.frameAVGCounter %= AVG_COUNT

	// Calculate frames per second.
	fc.accumulatedFrameMS += frameMS
	if fc.accumulatedFrameMS > 1000 {
		fc.fps = float64(fc.frames)
		fc.accumulatedFrameMS -= 1000
		fc.frames = 0
	}

	// Count all frames.
	fc.frames++
}

func (fc *FrameCounter) FPS() float64 {
	return fc.fps
}

// FrameTime is the average frame duration over the last AVG_COUNT frames.
func (fc *FrameCounter) FrameTime() time.Duration {
	return time.Duration(fc.msAvg * float64(time.Millisecond))
}
