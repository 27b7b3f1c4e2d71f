package fibre

import "fmt"

// Duration is an amount of elapsed time measured in two units at once: frames
// (ticks of the host loop) and wall-clock seconds. Neither component is ever
// negative. The zero Duration means "no time left" or "don't wait".
type Duration struct {
	Frames  int
	Seconds float64
}

// Zero is the empty Duration.
var Zero = Duration{}

// NewDuration returns a Duration with negative components clamped to zero.
func NewDuration(frames int, seconds float64) Duration {
	if frames < 0 {
		frames = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	return Duration{Frames: frames, Seconds: seconds}
}

// Frames returns a Duration of n frames and no seconds.
func Frames(n int) Duration {
	return NewDuration(n, 0)
}

// Seconds returns a Duration of s seconds and no frames.
func Seconds(s float64) Duration {
	return NewDuration(0, s)
}

// Add returns the componentwise sum of d and o.
func (d Duration) Add(o Duration) Duration {
	return NewDuration(d.Frames+o.Frames, d.Seconds+o.Seconds)
}

// Sub returns d minus o, clamping each component at zero independently.
func (d Duration) Sub(o Duration) Duration {
	return NewDuration(d.Frames-o.Frames, d.Seconds-o.Seconds)
}

// Min returns the componentwise minimum of d and o.
func (d Duration) Min(o Duration) Duration {
	return Duration{Frames: min(d.Frames, o.Frames), Seconds: min(d.Seconds, o.Seconds)}
}

// Max returns the componentwise maximum of d and o.
func (d Duration) Max(o Duration) Duration {
	return Duration{Frames: max(d.Frames, o.Frames), Seconds: max(d.Seconds, o.Seconds)}
}

// IsZero reports whether both components are zero.
func (d Duration) IsZero() bool {
	return d.Frames == 0 && d.Seconds == 0
}

func (d Duration) String() string {
	return fmt.Sprintf("Duration(frames=%d, seconds=%g)", d.Frames, d.Seconds)
}
