package monotime

import "time"

// Now returns the current time more precisely for Web targets
func Now() time.Duration {
	return now()
}

// FrameTimer tracks how many frames were presented and how long they took
type FrameTimer struct {
	frameCount int
	frameStart time.Duration
	total      time.Duration
	longest    time.Duration
}

// Begin marks the start of a frame
func (timer *FrameTimer) Begin() {
	timer.frameStart = Now()
}

// End marks the end of a frame started with Begin
func (timer *FrameTimer) End() {
	timer.add(Now() - timer.frameStart)
}

func (timer *FrameTimer) add(frameTime time.Duration) {
	timer.frameCount++
	timer.total += frameTime
	if frameTime > timer.longest {
		timer.longest = frameTime
	}
}

// FrameCount is the number of frames ended
func (timer *FrameTimer) FrameCount() int {
	return timer.frameCount
}

// Average is the mean time taken per frame
func (timer *FrameTimer) Average() time.Duration {
	if timer.frameCount == 0 {
		return 0
	}
	return timer.total / time.Duration(timer.frameCount)
}

// Longest is the slowest frame seen
func (timer *FrameTimer) Longest() time.Duration {
	return timer.longest
}
