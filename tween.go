package fibre

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenConfig describes a value animated over time.
type TweenConfig struct {
	From, To float32
	// Duration is the animation length in seconds.
	Duration float32
	// Ease shapes the curve. Nil means ease.Linear.
	Ease ease.TweenFunc
	// DeltaTime reports the seconds that passed since the previous frame,
	// normally Scheduler.DeltaTime. Nil assumes a fixed 60 frames per second.
	DeltaTime func() float32
	// Apply receives every intermediate value, including From and To.
	Apply func(float32)
}

// TweenFibre animates a value once per frame with a gween.Tween.
type TweenFibre struct {
	tween   *gween.Tween
	from    float32
	dt      func() float32
	apply   func(float32)
	started bool
	done    bool
}

// Tween returns a fibre that applies cfg.From immediately, then advances the
// tween by DeltaTime every frame until it reaches cfg.To.
func Tween(cfg TweenConfig) *TweenFibre {
	fn := cfg.Ease
	if fn == nil {
		fn = ease.Linear
	}
	dt := cfg.DeltaTime
	if dt == nil {
		dt = fixedDelta
	}
	return &TweenFibre{
		tween: gween.New(cfg.From, cfg.To, cfg.Duration, fn),
		from:  cfg.From,
		dt:    dt,
		apply: cfg.Apply,
	}
}

func fixedDelta() float32 {
	return 1.0 / 60
}

// TweenFloat64 animates *field from its current value to to.
func TweenFloat64(field *float64, to float64, duration float32, fn ease.TweenFunc, dt func() float32) *TweenFibre {
	return Tween(TweenConfig{
		From:      float32(*field),
		To:        float32(to),
		Duration:  duration,
		Ease:      fn,
		DeltaTime: dt,
		Apply:     func(v float32) { *field = float64(v) },
	})
}

// Next implements Fibre.
func (t *TweenFibre) Next() (WaitCommand, bool) {
	if t.done {
		return WaitCommand{}, false
	}
	if !t.started {
		t.started = true
		t.set(t.from)
		return WaitForNextFrame, true
	}
	val, finished := t.tween.Update(t.dt())
	t.set(val)
	if finished {
		t.done = true
		return WaitCommand{}, false
	}
	return WaitForNextFrame, true
}

// Done reports whether the tween has reached its end value.
func (t *TweenFibre) Done() bool {
	return t.done
}

func (t *TweenFibre) set(v float32) {
	if t.apply != nil {
		t.apply(v)
	}
}
