package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"

	"github.com/jtestard/pong-series/pong"
	"github.com/jtestard/pong-series/render"
	"github.com/jtestard/pong-series/spectate"
)

const (
	windowWidth  = pong.FieldWidth
	windowHeight = pong.FieldHeight
)

// errQuit ends ebiten.RunGame when the player quits
var errQuit = errors.New("quit requested")

// Game adapts a pong.Match to ebiten
type Game struct {
	match    *pong.Match
	clock    *pong.MonotonicClock
	renderer *render.Renderer
	hub      *spectate.Hub
}

// NewGame creates a game around m. hub may be nil.
func NewGame(m *pong.Match, clock *pong.MonotonicClock, hub *spectate.Hub) (*Game, error) {
	r, err := render.New()
	if err != nil {
		return nil, err
	}
	return &Game{
		match:    m,
		clock:    clock,
		renderer: r,
		hub:      hub,
	}, nil
}

// Update advances the match by one tick
func (g *Game) Update(screen *ebiten.Image) error {
	g.match.Step(readInput(), g.clock.Tick())
	if g.match.QuitRequested() {
		return errQuit
	}

	if g.hub != nil {
		g.hub.Publish(g.match.Snapshot())
	}
	return nil
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.match.Draw(g.renderer)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func main() {
	log.SetPrefix("pong: ")
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
