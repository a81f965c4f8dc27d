package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/jtestard/pong-series/pong"
)

type keyBinding struct {
	key    ebiten.Key
	action pong.Action
}

// pressBindings are edge triggered, in the order they are reported
var pressBindings = []keyBinding{
	{ebiten.KeyUp, pong.ActionNavUp},
	{ebiten.KeyW, pong.ActionNavUp},
	{ebiten.KeyDown, pong.ActionNavDown},
	{ebiten.KeyS, pong.ActionNavDown},
	{ebiten.KeyEnter, pong.ActionConfirm},
	{ebiten.KeyKPEnter, pong.ActionConfirm},
	{ebiten.KeySpace, pong.ActionConfirm},
	{ebiten.KeyR, pong.ActionConfirm},
	{ebiten.Key3, pong.ActionBestOf3},
	{ebiten.Key5, pong.ActionBestOf5},
	{ebiten.Key7, pong.ActionBestOf7},
	{ebiten.KeyEscape, pong.ActionQuit},
	{ebiten.KeyQ, pong.ActionQuit},
}

var holdBindings = []keyBinding{
	{ebiten.KeyW, pong.ActionMoveUp},
	{ebiten.KeyUp, pong.ActionMoveUp},
	{ebiten.KeyS, pong.ActionMoveDown},
	{ebiten.KeyDown, pong.ActionMoveDown},
}

// readInput polls the keyboard for this tick
func readInput() pong.Input {
	var in pong.Input
	for _, b := range pressBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.Pressed = append(in.Pressed, b.action)
		}
	}
	for _, b := range holdBindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Held = in.Held.With(b.action)
		}
	}
	return in
}
