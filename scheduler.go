package fibre

import (
	"time"

	"github.com/rs/zerolog"
)

// Scheduler owns the top-level routines and drives them once per tick.
//
// A Scheduler is single-threaded: Run, Stop and Update must all be called
// from the same goroutine, normally the host's update loop. Panics raised by
// a fibre propagate out of Update untouched; one failing routine aborts the
// tick for every routine after it.
//
// A fibre that never ends and is never stopped keeps its routine alive
// forever. The scheduler does not detect this.
type Scheduler struct {
	pool   *RoutinePool
	active []*Routine

	prevFrame int
	prevTime  float64
	delta     Duration

	updating bool
	stopped  []*Routine

	log   zerolog.Logger
	debug bool
}

// NewScheduler creates a scheduler. The first Update measures elapsed time
// from frame -1 at time 0.
func NewScheduler(cfg Config) *Scheduler {
	s := &Scheduler{
		pool:      NewRoutinePool(cfg.Pool),
		prevFrame: -1,
		log:       zerolog.Nop(),
		debug:     cfg.Debug,
	}
	s.pool.OnGrow = func(added, size int) {
		if s.debug {
			s.log.Debug().Int("added", added).Int("size", size).Msg("routine pool grown")
		}
	}
	return s
}

// SetLogger installs the logger used for debug output.
func (s *Scheduler) SetLogger(l zerolog.Logger) {
	s.log = l
}

// SetDebugMode enables or disables lifecycle and per-tick stats logging.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Pool returns the scheduler's routine pool.
func (s *Scheduler) Pool() *RoutinePool {
	return s.pool
}

// ActiveCount returns the number of registered top-level routines.
func (s *Scheduler) ActiveCount() int {
	n := 0
	for _, r := range s.active {
		if r != nil {
			n++
		}
	}
	return n
}

// Delta returns the elapsed Duration computed by the most recent Update.
func (s *Scheduler) Delta() Duration {
	return s.delta
}

// DeltaTime returns the seconds component of Delta. Its signature fits the
// delta-time function expected by Tween.
func (s *Scheduler) DeltaTime() float32 {
	return float32(s.delta.Seconds)
}

// Run registers f as a new top-level routine and drains its leading
// instructions immediately. The returned Handle cancels it.
func (s *Scheduler) Run(f Fibre) (Handle, error) {
	if f == nil {
		return Handle{}, ErrNilFibre
	}
	r := s.pool.Take()
	r.Initialize(f)
	h := Handle{s: s, r: r, gen: r.generation}
	if r.IsFinished() {
		if s.debug {
			s.log.Debug().Msg("routine finished during initial drain")
		}
		s.release(r)
		return h, nil
	}
	s.active = append(s.active, r)
	if s.debug {
		s.log.Debug().Int("active", s.ActiveCount()).Msg("routine started")
	}
	return h, nil
}

// Stop cancels the routine behind h and its whole subtree. Stopping a routine
// that already finished or was stopped is a no-op.
//
// When called during Update the routine is taken out of the tick at once and
// torn down when the tick ends, so a fibre may stop its own routine.
func (s *Scheduler) Stop(h Handle) {
	if h.s != s || !h.Alive() {
		return
	}
	i := s.indexOf(h.r)
	if i < 0 {
		return
	}
	h.r.cancel()
	if s.updating {
		s.active[i] = nil
		s.stopped = append(s.stopped, h.r)
	} else {
		s.removeAt(i)
		s.release(h.r)
	}
	if s.debug {
		s.log.Debug().Int("active", s.ActiveCount()).Msg("routine stopped")
	}
}

// StopAll cancels every registered routine.
func (s *Scheduler) StopAll() {
	for i := len(s.active) - 1; i >= 0; i-- {
		r := s.active[i]
		if r == nil {
			continue
		}
		s.Stop(Handle{s: s, r: r, gen: r.generation})
	}
}

// Update advances every routine by the time that passed since the previous
// call. currentFrame and currentTime must not decrease; if they do, the
// negative part of the delta is treated as zero.
func (s *Scheduler) Update(currentFrame int, currentTime float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	elapsed := NewDuration(currentFrame-s.prevFrame, currentTime-s.prevTime)
	s.delta = elapsed

	s.updating = true
	finished := 0
	for i := len(s.active) - 1; i >= 0; i-- {
		r := s.active[i]
		if r == nil {
			continue
		}
		if !r.IsFinished() {
			r.Update(elapsed)
		}
		if r.IsFinished() && s.active[i] == r {
			s.active[i] = nil
			s.release(r)
			finished++
		}
	}
	s.updating = false

	for i, r := range s.stopped {
		s.release(r)
		s.stopped[i] = nil
	}
	s.stopped = s.stopped[:0]
	s.compact()

	s.prevFrame = currentFrame
	s.prevTime = currentTime

	if s.debug {
		s.debugTick(tickStats{
			elapsed:   elapsed,
			active:    len(s.active),
			finished:  finished,
			available: s.pool.Available(),
			poolSize:  s.pool.Size(),
			wall:      time.Since(t0),
		})
	}
}

func (s *Scheduler) release(r *Routine) {
	r.Dispose()
}

func (s *Scheduler) indexOf(r *Routine) int {
	for i, a := range s.active {
		if a == r {
			return i
		}
	}
	return -1
}

func (s *Scheduler) removeAt(i int) {
	copy(s.active[i:], s.active[i+1:])
	s.active[len(s.active)-1] = nil
	s.active = s.active[:len(s.active)-1]
}

// compact drops nil slots left by routines that finished or were stopped
// during the tick, keeping registration order.
func (s *Scheduler) compact() {
	n := 0
	for _, r := range s.active {
		if r != nil {
			s.active[n] = r
			n++
		}
	}
	clear(s.active[n:])
	s.active = s.active[:n]
}
