// Package fibre is a cooperative, step-driven task scheduler for game loops
// and other hosts that advance time in ticks.
//
// A task is a [Fibre]: a lazy sequence of [WaitCommand] values. Each value
// says what the task waits on before it resumes: a [Duration] of frames and
// seconds, or a fan-out of nested fibres that run side by side. The host
// registers root tasks with [Scheduler.Run] and calls [Scheduler.Update] once
// per frame with its absolute frame counter and clock.
//
// # Quick start
//
// The easiest way to write a fibre is a Go iterator:
//
//	s := fibre.NewScheduler(fibre.Config{})
//	s.Run(fibre.FromSeq(func(yield func(fibre.WaitCommand) bool) {
//		fmt.Println("fade out")
//		if !yield(fibre.WaitSeconds(1)) {
//			return
//		}
//		fmt.Println("fade in")
//	}))
//
//	for frame := 0; ; frame++ {
//		s.Update(frame, float64(frame)/60)
//	}
//
// For Ebitengine games, package host wraps an [ebiten.Game] and ticks the
// scheduler for you.
//
// # Time
//
// Every tick has an elapsed Duration. A routine spends it on its current
// instruction and, if time is left over and the instruction is done, moves
// straight on to the next one within the same tick. Zero-length steps never
// cost a frame.
//
// Siblings of a fan-out each receive the full elapsed time, not a share of
// it, and always in the order they were spawned. The parent's leftover is
// the smallest leftover of its children. Given the same sequence of elapsed
// inputs a scheduler always produces the same side effects in the same order;
// see [TickScript] for recorded replays.
//
// # Cancellation
//
// [Handle.Dispose] stops a routine and its whole subtree at once. Side
// effects that already ran are not rolled back. Fibres that hold resources
// implement [Stopper] and are stopped when abandoned.
//
// # Threading
//
// Everything here is single-threaded. There is no locking; call Run, Stop
// and Update from one goroutine.
//
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
package fibre
