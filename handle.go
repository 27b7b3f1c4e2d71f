package fibre

// Handle identifies a routine started with Scheduler.Run. The zero Handle is
// valid and refers to nothing.
type Handle struct {
	s   *Scheduler
	r   *Routine
	gen uint32
}

// Dispose stops the routine. It is a no-op if the routine already finished or
// was stopped.
func (h Handle) Dispose() {
	if h.s != nil {
		h.s.Stop(h)
	}
}

// Alive reports whether the routine is still registered with its scheduler.
func (h Handle) Alive() bool {
	return h.r != nil && h.r.generation == h.gen && !h.r.released && !h.r.cancelled
}
