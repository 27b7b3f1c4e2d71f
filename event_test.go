package fibre

import "testing"

var _ EventSource[int] = (*Event[int])(nil)

func TestEventEmitOrder(t *testing.T) {
	var e Event[int]
	var got []string
	e.AddHandler(func(v int) { got = append(got, "a") })
	id := e.AddHandler(func(v int) { got = append(got, "b") })
	e.AddHandler(func(v int) { got = append(got, "c") })

	e.Emit(1)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("got = %v", got)
	}

	got = got[:0]
	e.RemoveHandler(id)
	e.RemoveHandler(id)
	e.RemoveHandler(999)
	e.Emit(2)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("after remove got = %v, want [a c]", got)
	}
	if e.HandlerCount() != 2 {
		t.Errorf("handlers = %d, want 2", e.HandlerCount())
	}
}

func TestAwaitEventResumesRoutine(t *testing.T) {
	var e Event[int]
	s := NewScheduler(Config{})
	resumed := false
	w := AwaitEvent[int](&e, func(v int) bool { return v == 2 })
	s.Run(AndThen(w, Call(func() { resumed = true })))

	e.Emit(1)
	s.Update(0, 0.1)
	if resumed {
		t.Fatal("resumed on a value the predicate rejected")
	}

	e.Emit(2)
	e.Emit(3)
	s.Update(1, 0.2)
	if !resumed {
		t.Fatal("should resume on the tick after a matching event")
	}
	if v, ok := w.Value(); !ok || v != 2 {
		t.Errorf("Value = %d, %v; want 2, true", v, ok)
	}
	if e.HandlerCount() != 0 {
		t.Errorf("handlers = %d, want 0 after resume", e.HandlerCount())
	}
	if s.ActiveCount() != 0 {
		t.Errorf("active = %d, want 0", s.ActiveCount())
	}
}

func TestAwaitEventNilPredicate(t *testing.T) {
	var e Event[string]
	w := AwaitEvent[string](&e, nil)
	if _, ok := w.Next(); !ok {
		t.Fatal("should wait before any event")
	}
	e.Emit("go")
	if _, ok := w.Next(); ok {
		t.Error("should end after the first event")
	}
	if v, _ := w.Value(); v != "go" {
		t.Errorf("Value = %q", v)
	}
}

func TestAwaitEventCancelRemovesHandler(t *testing.T) {
	var e Event[int]
	s := NewScheduler(Config{})
	h, _ := s.Run(AndThen(AwaitEvent[int](&e, nil), Sequence(WaitSeconds(1))))
	if e.HandlerCount() != 1 {
		t.Fatalf("handlers = %d, want 1", e.HandlerCount())
	}
	h.Dispose()
	if e.HandlerCount() != 0 {
		t.Errorf("handlers = %d, want 0 after cancel", e.HandlerCount())
	}
}
