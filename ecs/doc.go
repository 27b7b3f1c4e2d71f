// Package ecs connects fibre to a [Donburi] world.
//
// [NewEventSource] exposes a Donburi event type as a [fibre.EventSource], so
// a routine can suspend until a given ECS event is processed:
//
//	src := ecs.NewEventSource(world, DamageEvent)
//	defer src.Close()
//	hit := fibre.AwaitEvent(src, func(e Damage) bool { return e.Target == player })
//	scheduler.Run(fibre.AndThen(hit, flashRed()))
//
// Donburi delivers events when ProcessEvents runs, so the awaiting routine
// resumes on the first scheduler tick after that.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
