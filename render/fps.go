package render

import "time"

// FPSCounter counts frames shown within the last second
type FPSCounter struct {
	frames []time.Time
}

// Tick records a frame at now and drops frames older than one second
func (f *FPSCounter) Tick(now time.Time) {
	f.frames = append(f.frames, now)

	cutoff := now.Add(-time.Second)
	i := 0
	for i < len(f.frames) && !f.frames[i].After(cutoff) {
		i++
	}
	n := copy(f.frames, f.frames[i:])
	f.frames = f.frames[:n]
}

// FPS returns the frame count over the trailing second
func (f *FPSCounter) FPS() int {
	return len(f.frames)
}
