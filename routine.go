package fibre

// RoutineState is the phase a Routine is in between updates.
type RoutineState uint8

const (
	StateFetching          RoutineState = iota // current instruction satisfied, next one not pulled yet
	StateWaiting                               // consuming a timed leaf
	StateWaitingOnChildren                     // waiting on a fan-out
	StateFinished                              // fibre exhausted, no children left
)

func (s RoutineState) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateWaiting:
		return "waiting"
	case StateWaitingOnChildren:
		return "waiting-on-children"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Routine drives one Fibre. It drains instructions, owns the child routines
// of an active fan-out and hands out elapsed time across them.
//
// Routines come from a RoutinePool; child routines are taken from the same
// pool. A finished routine is inert until it is initialized again.
type Routine struct {
	pool      *RoutinePool
	fibre     Fibre
	children  []*Routine
	wait      WaitCommand
	finished  bool
	released  bool
	cancelled bool

	// generation changes on every Reset so stale handles can be detected.
	generation uint32
}

// RoutinePool is a Pool of Routines. Routines taken from it spawn their
// children from it too.
type RoutinePool struct {
	*Pool[*Routine]
}

// NewRoutinePool creates a routine pool with the given sizing.
func NewRoutinePool(cfg PoolConfig) *RoutinePool {
	rp := &RoutinePool{}
	rp.Pool = NewPool(func() *Routine { return &Routine{pool: rp} }, cfg)
	return rp
}

// Initialize binds r to f and performs a zero-duration drain, so any leading
// instructions that are already satisfiable run right away. A nil fibre leaves
// the routine finished.
func (r *Routine) Initialize(f Fibre) {
	r.fibre = f
	r.releaseChildren()
	r.wait = DontWait
	r.released = false
	r.cancelled = false
	r.finished = f == nil
	if r.finished {
		return
	}
	r.Update(Zero)
}

// Update advances the routine by elapsed and returns the time it did not use.
//
// Within one call the routine can pass through any number of instructions:
// whenever the current instruction becomes satisfied and time is left, the
// leftover is applied to the next instruction straight away.
func (r *Routine) Update(elapsed Duration) Duration {
	for {
		if r.finished || r.cancelled {
			return elapsed
		}
		if r.satisfied() {
			r.fetch()
			if r.finished || r.cancelled {
				return elapsed
			}
		}

		var leftover Duration
		if len(r.children) > 0 {
			leftover = r.updateChildren(elapsed)
		} else {
			remaining := r.wait.duration
			r.wait.duration = remaining.Sub(elapsed)
			leftover = elapsed.Sub(remaining)
		}

		if leftover.IsZero() || !r.satisfied() {
			return leftover
		}
		elapsed = leftover
	}
}

// IsFinished reports whether the fibre is exhausted and no children remain.
func (r *Routine) IsFinished() bool {
	return r.finished
}

// State returns the routine's current phase.
func (r *Routine) State() RoutineState {
	switch {
	case r.finished:
		return StateFinished
	case len(r.children) > 0:
		return StateWaitingOnChildren
	case r.wait.IsFinished():
		return StateFetching
	}
	return StateWaiting
}

// Wait returns the active wait budget. It is DontWait while on a fan-out.
func (r *Routine) Wait() WaitCommand {
	return r.wait
}

// ChildCount returns the number of active child routines.
func (r *Routine) ChildCount() int {
	return len(r.children)
}

// Reset stops the fibre, disposes every child and leaves r inert.
func (r *Routine) Reset() {
	if r.fibre != nil {
		stopFibre(r.fibre)
		r.fibre = nil
	}
	r.releaseChildren()
	r.wait = DontWait
	r.finished = true
	r.generation++
}

// Dispose tears down r together with its whole active subtree and hands it
// back to its pool. Disposing twice is a no-op.
func (r *Routine) Dispose() {
	if r.released {
		return
	}
	r.released = true
	if r.pool != nil {
		r.pool.Return(r)
		return
	}
	r.Reset()
}

// cancel marks r and its active subtree as cancelled. A cancelled routine
// stops pulling from its fibre at once; teardown happens in Dispose.
func (r *Routine) cancel() {
	r.cancelled = true
	for _, c := range r.children {
		c.cancel()
	}
}

func (r *Routine) satisfied() bool {
	return len(r.children) == 0 && r.wait.IsFinished()
}

// fetch pulls instructions until one is not immediately satisfied or the
// fibre ends.
func (r *Routine) fetch() {
	for !r.cancelled && r.satisfied() {
		cmd, ok := r.fibre.Next()
		if r.cancelled {
			return
		}
		if !ok {
			r.fibre = nil
			r.finished = true
			return
		}
		if cmd.IsFanOut() {
			r.spawn(cmd.fibres)
			r.wait = DontWait
		} else {
			r.releaseChildren()
			r.wait = cmd
		}
	}
}

// spawn starts one child per fibre. Each child is attached before its
// initial drain so that a cancel raised during the drain reaches it.
func (r *Routine) spawn(fibres []Fibre) {
	for i, f := range fibres {
		c := r.takeChild()
		r.children = append(r.children, c)
		c.Initialize(f)
		if c.IsFinished() {
			c.Dispose()
			last := len(r.children) - 1
			r.children[last] = nil
			r.children = r.children[:last]
		}
		if r.cancelled {
			for _, rest := range fibres[i+1:] {
				stopFibre(rest)
			}
			return
		}
	}
}

// updateChildren forwards the same elapsed time to every child, drops the
// ones that finish and returns the smallest leftover among them: the parent
// cannot get ahead of its slowest child.
func (r *Routine) updateChildren(elapsed Duration) Duration {
	leftover := elapsed
	n := 0
	for i := 0; i < len(r.children); i++ {
		c := r.children[i]
		leftover = leftover.Min(c.Update(elapsed))
		if c.IsFinished() {
			c.Dispose()
		} else {
			r.children[n] = c
			n++
		}
		if r.cancelled {
			n += copy(r.children[n:], r.children[i+1:])
			break
		}
	}
	clear(r.children[n:])
	r.children = r.children[:n]
	return leftover
}

func (r *Routine) takeChild() *Routine {
	if r.pool != nil {
		return r.pool.Take()
	}
	return &Routine{}
}

func (r *Routine) releaseChildren() {
	for i, c := range r.children {
		c.Dispose()
		r.children[i] = nil
	}
	r.children = r.children[:0]
}
