package fibre

import (
	"encoding/json"
	"fmt"
)

// tickStep is one entry of a tick script.
type tickStep struct {
	Frames  int     `json:"frames"`
	Seconds float64 `json:"seconds"`
	Repeat  int     `json:"repeat,omitempty"`
}

// tickScript is the top-level JSON structure for a tick script.
type tickScript struct {
	Ticks []tickStep `json:"ticks"`
}

// TickScript replays a recorded sequence of elapsed-time inputs against a
// Scheduler. Given the same script and the same fibres, every run produces
// the same side effects in the same order.
type TickScript struct {
	steps  []tickStep
	cursor int
	count  int // ticks already played from steps[cursor]

	frame int
	time  float64
	done  bool
}

// LoadTickScript parses a JSON tick script:
//
//	{"ticks": [{"frames": 1, "seconds": 0.016, "repeat": 60}]}
//
// Each entry is the elapsed Duration of one tick, played Repeat times
// (default once).
func LoadTickScript(jsonData []byte) (*TickScript, error) {
	var script tickScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse tick script: %w", err)
	}
	if len(script.Ticks) == 0 {
		return nil, fmt.Errorf("parse tick script: no ticks")
	}
	for i, st := range script.Ticks {
		if st.Frames < 0 || st.Seconds < 0 || st.Repeat < 0 {
			return nil, fmt.Errorf("parse tick script: tick %d has a negative field", i)
		}
	}
	return newTickScript(script.Ticks), nil
}

// NewTickScript builds a script that plays each Duration once.
func NewTickScript(ticks ...Duration) *TickScript {
	steps := make([]tickStep, len(ticks))
	for i, d := range ticks {
		steps[i] = tickStep{Frames: d.Frames, Seconds: d.Seconds}
	}
	return newTickScript(steps)
}

func newTickScript(steps []tickStep) *TickScript {
	// The scheduler starts its cursor at frame -1, time 0.
	return &TickScript{steps: steps, frame: -1, done: len(steps) == 0}
}

// Done reports whether every tick has been played.
func (r *TickScript) Done() bool {
	return r.done
}

// Step plays the next tick against s and reports whether one was played.
// The script keeps its own frame and time cursor, starting where a new
// Scheduler starts, so s should not be updated by anything else.
func (r *TickScript) Step(s *Scheduler) bool {
	if r.done {
		return false
	}
	st := r.steps[r.cursor]
	r.frame += st.Frames
	r.time += st.Seconds
	s.Update(r.frame, r.time)

	r.count++
	if r.count >= max(st.Repeat, 1) {
		r.count = 0
		r.cursor++
	}
	if r.cursor >= len(r.steps) {
		r.done = true
	}
	return true
}

// RunAll plays every remaining tick and returns how many were played.
func (r *TickScript) RunAll(s *Scheduler) int {
	n := 0
	for r.Step(s) {
		n++
	}
	return n
}
