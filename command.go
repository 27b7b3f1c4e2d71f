package fibre

import "fmt"

// WaitCommand describes what a routine is suspended on. It is either a timed
// leaf (wait until a Duration is used up) or a fan-out (run one or more nested
// fibres concurrently and wait for all of them). It is never both.
//
// The zero value is DontWait.
type WaitCommand struct {
	duration Duration
	fibres   []Fibre
}

// WaitForNextFrame waits exactly one frame.
var WaitForNextFrame = WaitFrames(1)

// DontWait is a leaf that is already satisfied.
var DontWait = WaitCommand{}

// Wait returns a timed leaf that waits for d.
func Wait(d Duration) WaitCommand {
	return WaitCommand{duration: NewDuration(d.Frames, d.Seconds)}
}

// WaitFrames returns a timed leaf that waits n frames.
func WaitFrames(n int) WaitCommand {
	return Wait(Frames(n))
}

// WaitSeconds returns a timed leaf that waits s seconds.
func WaitSeconds(s float64) WaitCommand {
	return Wait(Seconds(s))
}

// Spawn returns a fan-out that runs the given fibres concurrently. Every
// sibling advances against the same elapsed time each tick. With a single
// fibre Spawn is plain delegation. Nil fibres are dropped; spawning nothing
// is DontWait.
func Spawn(fibres ...Fibre) WaitCommand {
	n := 0
	for _, f := range fibres {
		if f != nil {
			n++
		}
	}
	if n == 0 {
		return DontWait
	}
	out := make([]Fibre, 0, n)
	for _, f := range fibres {
		if f != nil {
			out = append(out, f)
		}
	}
	return WaitCommand{fibres: out}
}

// IsFanOut reports whether c waits on nested fibres.
func (c WaitCommand) IsFanOut() bool {
	return len(c.fibres) > 0
}

// IsFinished reports whether c is a timed leaf with no time remaining.
// Fan-outs are never finished by themselves; their children decide.
func (c WaitCommand) IsFinished() bool {
	return !c.IsFanOut() && c.duration.IsZero()
}

// Duration returns the remaining time of a timed leaf. It is Zero for fan-outs.
func (c WaitCommand) Duration() Duration {
	return c.duration
}

// Fibres returns the nested fibres of a fan-out. The returned slice MUST NOT
// be mutated.
func (c WaitCommand) Fibres() []Fibre {
	return c.fibres
}

// Add extends a timed leaf by d.
func (c WaitCommand) Add(d Duration) (WaitCommand, error) {
	if c.IsFanOut() {
		return c, fmt.Errorf("add %v: %w", d, ErrFanOutArithmetic)
	}
	return WaitCommand{duration: c.duration.Add(d)}, nil
}

// Sub consumes d from a timed leaf, clamping at zero.
func (c WaitCommand) Sub(d Duration) (WaitCommand, error) {
	if c.IsFanOut() {
		return c, fmt.Errorf("sub %v: %w", d, ErrFanOutArithmetic)
	}
	return WaitCommand{duration: c.duration.Sub(d)}, nil
}

func (c WaitCommand) String() string {
	if c.IsFanOut() {
		return fmt.Sprintf("Spawn(%d)", len(c.fibres))
	}
	switch {
	case c.duration.IsZero():
		return "DontWait"
	case c.duration.Seconds == 0:
		return fmt.Sprintf("WaitFrames(%d)", c.duration.Frames)
	case c.duration.Frames == 0:
		return fmt.Sprintf("WaitSeconds(%g)", c.duration.Seconds)
	}
	return fmt.Sprintf("Wait(%v)", c.duration)
}
