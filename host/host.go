// Package host drives a fibre.Scheduler from an Ebitengine game loop.
//
// Wrap your game with [New] (or call [Run]) and every ebiten Update ticks the
// scheduler with the current frame number and game clock before your own
// Update runs:
//
//	s := fibre.NewScheduler(fibre.Config{})
//	s.Run(intro())
//	if err := host.Run(s, game, host.RunConfig{Title: "Demo", Width: 640, Height: 480}); err != nil {
//		log.Fatal(err)
//	}
package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/fibre"
)

// Game is an ebiten.Game that ticks a Scheduler before delegating to an
// inner game. The clock advances by 1/TPS seconds per Update, so it follows
// game time rather than wall time.
type Game struct {
	Scheduler *fibre.Scheduler
	Inner     ebiten.Game

	// TPS reports ticks per second. Nil means ebiten.TPS.
	TPS func() int

	frame int
	clock float64
}

// New wraps inner. Inner may be nil for a scheduler-only loop.
func New(s *fibre.Scheduler, inner ebiten.Game) *Game {
	return &Game{Scheduler: s, Inner: inner}
}

// Frame returns the number of Update calls so far.
func (g *Game) Frame() int {
	return g.frame
}

// Clock returns the game time in seconds.
func (g *Game) Clock() float64 {
	return g.clock
}

// Update ticks the scheduler, then the inner game.
func (g *Game) Update() error {
	tps := ebiten.TPS
	if g.TPS != nil {
		tps = g.TPS
	}
	if n := tps(); n > 0 {
		g.clock += 1.0 / float64(n)
	}
	g.Scheduler.Update(g.frame, g.clock)
	g.frame++

	if g.Inner != nil {
		return g.Inner.Update()
	}
	return nil
}

// Draw delegates to the inner game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Inner != nil {
		g.Inner.Draw(screen)
	}
}

// Layout delegates to the inner game, or uses the outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Inner != nil {
		return g.Inner.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the update rate. Zero keeps ebiten's default of 60.
	TPS int
}

// Run opens a window and runs inner with the scheduler attached. It blocks
// until the game ends.
func Run(s *fibre.Scheduler, inner ebiten.Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(New(s, inner))
}
