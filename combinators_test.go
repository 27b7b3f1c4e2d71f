package fibre

import (
	"testing"
)

func drain(f Fibre) []WaitCommand {
	var out []WaitCommand
	for {
		cmd, ok := f.Next()
		if !ok {
			return out
		}
		out = append(out, cmd)
	}
}

func TestAndThen(t *testing.T) {
	f := AndThen(Sequence(WaitFrames(1)), Sequence(WaitFrames(2), WaitFrames(3)))
	cmds := drain(f)
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	for i, c := range cmds {
		if c.Duration() != Frames(i+1) {
			t.Errorf("cmd %d = %v, want %d frames", i, c, i+1)
		}
	}
	if _, ok := f.Next(); ok {
		t.Error("exhausted AndThen yielded again")
	}
}

func TestAndThenStopsBoth(t *testing.T) {
	a, b := &forever{}, &forever{}
	f := AndThen(a, b)
	f.Next()
	stopFibre(f)
	if a.stopped != 1 || b.stopped != 1 {
		t.Errorf("stopped = %d/%d, want 1/1", a.stopped, b.stopped)
	}
	if _, ok := f.Next(); ok {
		t.Error("stopped AndThen yielded")
	}
}

func TestWaitUntil(t *testing.T) {
	ready := false
	f := WaitUntil(func() bool { return ready }, Sequence(WaitSeconds(1)))

	for i := 0; i < 3; i++ {
		cmd, ok := f.Next()
		if !ok || cmd.IsFanOut() || cmd.Duration() != Frames(1) {
			t.Fatalf("pull %d = %v, %v; want WaitForNextFrame", i, cmd, ok)
		}
	}
	ready = true
	cmd, ok := f.Next()
	if !ok || cmd.Duration() != Seconds(1) {
		t.Errorf("after condition = %v, %v; want inner command", cmd, ok)
	}
	if _, ok := f.Next(); ok {
		t.Error("WaitUntil should end with its inner fibre")
	}
}

func TestWaitUntilNilFibre(t *testing.T) {
	f := WaitUntil(func() bool { return true }, nil)
	if _, ok := f.Next(); ok {
		t.Error("WaitUntil with a nil fibre should end once the condition holds")
	}
}

func TestWaitUntilNilCondition(t *testing.T) {
	for name, f := range map[string]Fibre{
		"until": WaitUntil(nil, Sequence(WaitSeconds(1))),
		"while": WaitWhile(nil, Sequence(WaitSeconds(1))),
	} {
		t.Run(name, func(t *testing.T) {
			cmd, ok := f.Next()
			if !ok || cmd.Duration() != Seconds(1) {
				t.Errorf("first pull = %v, %v; want the inner command", cmd, ok)
			}
		})
	}
}

func TestWaitUntilStopsInnerOnce(t *testing.T) {
	inner := &forever{}
	f := WaitUntil(func() bool { return true }, inner)
	f.Next()
	stopFibre(f)
	stopFibre(f)
	if inner.stopped != 1 {
		t.Errorf("inner stopped = %d, want 1", inner.stopped)
	}
	if _, ok := f.Next(); ok {
		t.Error("stopped WaitUntil yielded")
	}
}

func TestWaitWhile(t *testing.T) {
	busy := true
	s := NewScheduler(Config{})
	done := false
	s.Run(WaitWhile(func() bool { return busy }, Call(func() { done = true })))

	s.Update(0, 0.1)
	if done {
		t.Fatal("ran while condition held")
	}
	busy = false
	s.Update(1, 0.2)
	if !done {
		t.Error("should run once the condition clears")
	}
	if s.ActiveCount() != 0 {
		t.Errorf("active = %d, want 0", s.ActiveCount())
	}
}

func TestRunWhileCancelsSubtree(t *testing.T) {
	alive := true
	a, b := &forever{}, &forever{}
	s := NewScheduler(Config{})
	s.Run(RunWhile(func() bool { return alive }, Sequence(Spawn(a, b), WaitSeconds(10))))

	s.Update(0, 0.1)
	if a.pulls != 2 || b.pulls != 2 {
		t.Fatalf("pulls = %d/%d, want 2/2", a.pulls, b.pulls)
	}

	alive = false
	s.Update(1, 0.2)
	if a.stopped != 1 || b.stopped != 1 {
		t.Errorf("stopped = %d/%d, want 1/1", a.stopped, b.stopped)
	}
	if a.pulls != 2 || b.pulls != 2 {
		t.Error("gated children were pulled after the condition failed")
	}
	if s.ActiveCount() != 0 {
		t.Errorf("active = %d, want 0 (whole tree ends together)", s.ActiveCount())
	}
}

func TestRunUntil(t *testing.T) {
	stop := false
	inner := &forever{}
	f := RunUntil(func() bool { return stop }, inner)

	if _, ok := f.Next(); !ok {
		t.Fatal("RunUntil ended early")
	}
	stop = true
	if _, ok := f.Next(); ok {
		t.Error("RunUntil should end once the condition holds")
	}
	if inner.stopped != 1 {
		t.Errorf("inner stopped = %d, want 1", inner.stopped)
	}
}

func TestSkipDepthFirst(t *testing.T) {
	var trace []string
	mark := func(s string) { trace = append(trace, s) }

	child1 := FromSeq(func(yield func(WaitCommand) bool) {
		mark("c1a")
		if !yield(WaitSeconds(1)) {
			return
		}
		mark("c1b")
	})
	child2 := FromSeq(func(yield func(WaitCommand) bool) {
		mark("c2")
	})
	root := FromSeq(func(yield func(WaitCommand) bool) {
		mark("r1")
		if !yield(Spawn(child1, child2)) {
			return
		}
		mark("r2")
		if !yield(WaitSeconds(10)) {
			return
		}
		mark("r3")
	})

	Skip(root)

	want := []string{"r1", "c1a", "c1b", "c2", "r2", "r3"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
}

func TestSkipNil(t *testing.T) {
	Skip(nil)
}

func TestVisit(t *testing.T) {
	var seen []Duration
	f := Visit(Sequence(
		WaitFrames(1),
		Spawn(Sequence(WaitSeconds(0.5))),
		WaitSeconds(2),
	), func(c WaitCommand) { seen = append(seen, c.Duration()) })

	Skip(f)

	want := []Duration{Frames(1), Seconds(0.5), Seconds(2)}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestVisitNil(t *testing.T) {
	if _, ok := Visit(nil, func(WaitCommand) {}).Next(); ok {
		t.Error("Visit of a nil fibre yielded")
	}
	if _, ok := Visit(Sequence(WaitFrames(1)), nil).Next(); !ok {
		t.Error("Visit with a nil callback should still pass commands through")
	}
}

func TestRunWhileNilCondition(t *testing.T) {
	cmds := drain(RunWhile(nil, Sequence(WaitFrames(1), WaitFrames(2))))
	if len(cmds) != 2 {
		t.Errorf("commands = %d, want 2", len(cmds))
	}
}

func TestVisitForwardsStop(t *testing.T) {
	inner := &forever{}
	f := Visit(inner, func(WaitCommand) {})
	f.Next()
	stopFibre(f)
	if inner.stopped != 1 {
		t.Errorf("inner stopped = %d, want 1", inner.stopped)
	}
}

func TestCall(t *testing.T) {
	n := 0
	f := Call(func() { n++ })
	for i := 0; i < 3; i++ {
		if _, ok := f.Next(); ok {
			t.Fatal("Call should never yield")
		}
	}
	if n != 1 {
		t.Errorf("fn ran %d times, want 1", n)
	}
}

func TestRepeat(t *testing.T) {
	built := 0
	f := Repeat(3, func() Fibre {
		built++
		return Sequence(WaitFrames(1), WaitFrames(2))
	})
	cmds := drain(f)
	if built != 3 {
		t.Errorf("built = %d, want 3", built)
	}
	if len(cmds) != 6 {
		t.Errorf("commands = %d, want 6", len(cmds))
	}
}

func TestRepeatZero(t *testing.T) {
	f := Repeat(0, func() Fibre {
		t.Fatal("factory called for zero repeats")
		return nil
	})
	if _, ok := f.Next(); ok {
		t.Error("Repeat(0) yielded")
	}
}

func TestRepeatForeverUntilStopped(t *testing.T) {
	var last *forever
	f := Repeat(-1, func() Fibre {
		last = &forever{}
		return last
	})
	for i := 0; i < 100; i++ {
		if _, ok := f.Next(); !ok {
			t.Fatal("infinite Repeat ended")
		}
	}
	stopFibre(f)
	if last.stopped != 1 {
		t.Errorf("current fibre stopped = %d, want 1", last.stopped)
	}
	if _, ok := f.Next(); ok {
		t.Error("stopped Repeat yielded")
	}
}

func TestRepeatNilFactoryResult(t *testing.T) {
	calls := 0
	f := Repeat(-1, func() Fibre {
		calls++
		return nil
	})
	if _, ok := f.Next(); ok {
		t.Error("nil factory result should end the repeat")
	}
	f.Next()
	if calls != 1 {
		t.Errorf("factory calls = %d, want 1", calls)
	}
}
