package fibre

// andThen runs first to completion, then second.
type andThen struct {
	first, second Fibre
}

// AndThen returns a fibre that yields everything from a, then everything
// from b.
func AndThen(a, b Fibre) Fibre {
	return &andThen{first: a, second: b}
}

func (f *andThen) Next() (WaitCommand, bool) {
	if f.first != nil {
		if cmd, ok := f.first.Next(); ok {
			return cmd, true
		}
		f.first = nil
	}
	if f.second == nil {
		return WaitCommand{}, false
	}
	cmd, ok := f.second.Next()
	if !ok {
		f.second = nil
	}
	return cmd, ok
}

func (f *andThen) Stop() {
	if f.first != nil {
		stopFibre(f.first)
		f.first = nil
	}
	if f.second != nil {
		stopFibre(f.second)
		f.second = nil
	}
}

// waitUntil polls cond once per frame before handing over to inner.
type waitUntil struct {
	cond  func() bool
	inner Fibre
	met   bool
}

// WaitUntil returns a fibre that waits one frame at a time until cond
// reports true, then runs f. A nil f just waits. A nil cond counts as
// already true.
func WaitUntil(cond func() bool, f Fibre) Fibre {
	return &waitUntil{cond: cond, inner: f}
}

// WaitWhile returns a fibre that waits one frame at a time while cond
// reports true, then runs f.
func WaitWhile(cond func() bool, f Fibre) Fibre {
	return WaitUntil(not(cond), f)
}

func (f *waitUntil) Next() (WaitCommand, bool) {
	if !f.met {
		if f.cond != nil && !f.cond() {
			return WaitForNextFrame, true
		}
		f.met = true
	}
	if f.inner == nil {
		return WaitCommand{}, false
	}
	return f.inner.Next()
}

func (f *waitUntil) Stop() {
	if f.inner != nil {
		stopFibre(f.inner)
		f.inner = nil
	}
	f.met = true
}

// runWhile gates a fibre, and every fibre it fans out to, on cond.
type runWhile struct {
	cond  func() bool
	inner Fibre
}

// RunWhile returns a fibre that runs f only while cond holds. Before every
// instruction cond is checked; once it fails the fibre ends and f is
// stopped. Nested fan-outs are gated the same way, so the whole subtree
// winds down together. A nil cond always holds.
func RunWhile(cond func() bool, f Fibre) Fibre {
	return &runWhile{cond: cond, inner: f}
}

// RunUntil returns a fibre that runs f until cond reports true.
func RunUntil(cond func() bool, f Fibre) Fibre {
	return RunWhile(not(cond), f)
}

func (f *runWhile) Next() (WaitCommand, bool) {
	if f.inner == nil {
		return WaitCommand{}, false
	}
	if f.cond != nil && !f.cond() {
		f.Stop()
		return WaitCommand{}, false
	}
	cmd, ok := f.inner.Next()
	if !ok {
		f.inner = nil
		return cmd, false
	}
	if !cmd.IsFanOut() {
		return cmd, true
	}
	gated := make([]Fibre, len(cmd.fibres))
	for i, child := range cmd.fibres {
		gated[i] = RunWhile(f.cond, child)
	}
	return Spawn(gated...), true
}

func (f *runWhile) Stop() {
	if f.inner != nil {
		stopFibre(f.inner)
		f.inner = nil
	}
}

// Skip drains f to completion right now, recursing depth-first into every
// fan-out. All side effects run; the yielded instructions are discarded.
func Skip(f Fibre) {
	if f == nil {
		return
	}
	for {
		cmd, ok := f.Next()
		if !ok {
			return
		}
		for _, child := range cmd.fibres {
			Skip(child)
		}
	}
}

// visit calls fn on every leaf instruction that passes through.
type visit struct {
	fn    func(WaitCommand)
	inner Fibre
}

// Visit returns a fibre that behaves exactly like f but calls fn with every
// timed leaf f or any of its nested fibres yields. Fan-outs are not passed
// to fn; their children are visited instead. A nil f yields nothing.
func Visit(f Fibre, fn func(WaitCommand)) Fibre {
	return &visit{fn: fn, inner: f}
}

func (f *visit) Next() (WaitCommand, bool) {
	if f.inner == nil {
		return WaitCommand{}, false
	}
	cmd, ok := f.inner.Next()
	if !ok {
		return cmd, false
	}
	if !cmd.IsFanOut() {
		if f.fn != nil {
			f.fn(cmd)
		}
		return cmd, true
	}
	wrapped := make([]Fibre, len(cmd.fibres))
	for i, child := range cmd.fibres {
		wrapped[i] = Visit(child, f.fn)
	}
	return Spawn(wrapped...), true
}

func (f *visit) Stop() {
	if f.inner != nil {
		stopFibre(f.inner)
		f.inner = nil
	}
}

// Call returns a fibre that runs fn when first resumed and then ends.
func Call(fn func()) Fibre {
	done := false
	return FibreFunc(func() (WaitCommand, bool) {
		if !done {
			done = true
			fn()
		}
		return WaitCommand{}, false
	})
}

// repeat runs a freshly built fibre n times in a row.
type repeat struct {
	factory func() Fibre
	left    int
	current Fibre
}

// Repeat returns a fibre that runs factory() to completion n times in a row.
// A negative n repeats forever. A nil result from factory ends the repeat.
func Repeat(n int, factory func() Fibre) Fibre {
	return &repeat{factory: factory, left: n}
}

func (f *repeat) Next() (WaitCommand, bool) {
	for {
		if f.current == nil {
			if f.left == 0 {
				return WaitCommand{}, false
			}
			if f.left > 0 {
				f.left--
			}
			f.current = f.factory()
			if f.current == nil {
				f.left = 0
				return WaitCommand{}, false
			}
		}
		if cmd, ok := f.current.Next(); ok {
			return cmd, true
		}
		f.current = nil
	}
}

func (f *repeat) Stop() {
	if f.current != nil {
		stopFibre(f.current)
		f.current = nil
	}
	f.left = 0
}

// not negates cond. The negation of a nil cond is nil: a missing condition
// never blocks.
func not(cond func() bool) func() bool {
	if cond == nil {
		return nil
	}
	return func() bool { return !cond() }
}
