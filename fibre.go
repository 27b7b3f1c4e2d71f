package fibre

import "iter"

// Fibre is a lazy, resumable sequence of WaitCommands representing one
// logical task. Each call to Next runs the task up to its next suspension
// point and returns what it waits on, or false once the task has ended.
//
// A Fibre is owned by exactly one Routine for its whole run.
type Fibre interface {
	Next() (WaitCommand, bool)
}

// Stopper is implemented by fibres that hold resources which must be released
// when the fibre is abandoned before it ends. Routines call Stop on
// cancellation and when they are reset for reuse.
type Stopper interface {
	Stop()
}

// FibreFunc adapts an ordinary function to the Fibre interface.
type FibreFunc func() (WaitCommand, bool)

// Next calls f.
func (f FibreFunc) Next() (WaitCommand, bool) {
	return f()
}

// stopFibre calls Stop on f when it implements Stopper.
func stopFibre(f Fibre) {
	if s, ok := f.(Stopper); ok {
		s.Stop()
	}
}

type sliceFibre struct {
	cmds []WaitCommand
	pos  int
}

// Sequence returns a fibre that yields cmds in order.
func Sequence(cmds ...WaitCommand) Fibre {
	return &sliceFibre{cmds: cmds}
}

func (s *sliceFibre) Next() (WaitCommand, bool) {
	if s.pos >= len(s.cmds) {
		return WaitCommand{}, false
	}
	c := s.cmds[s.pos]
	s.pos++
	return c, true
}

// SeqFibre is a Fibre backed by a pulled range-over-func iterator.
type SeqFibre struct {
	next func() (WaitCommand, bool)
	stop func()
}

// FromSeq turns a Go iterator into a Fibre. This is the natural way to write
// a task:
//
//	f := fibre.FromSeq(func(yield func(fibre.WaitCommand) bool) {
//		fmt.Println("fade out")
//		if !yield(fibre.WaitSeconds(1)) {
//			return
//		}
//		fmt.Println("fade in")
//	})
//
// The iterator is resumed lazily. Stop releases it if the task is cancelled.
func FromSeq(seq iter.Seq[WaitCommand]) *SeqFibre {
	next, stop := iter.Pull(seq)
	return &SeqFibre{next: next, stop: stop}
}

// Next resumes the iterator.
func (s *SeqFibre) Next() (WaitCommand, bool) {
	return s.next()
}

// Stop ends the iterator early. It is safe to call more than once.
func (s *SeqFibre) Stop() {
	s.stop()
}
