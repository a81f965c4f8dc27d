// Package term runs a match inside a terminal using tcell.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jtestard/pong-series/pong"
)

var (
	objStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 226, 160))
	dimStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
)

// Renderer implements pong.Renderer by scaling field coordinates onto the
// screen's cell grid.
type Renderer struct {
	screen         tcell.Screen
	fieldW, fieldH float64
	cols, rows     int
}

func NewRenderer(screen tcell.Screen, fieldW, fieldH float64) *Renderer {
	r := &Renderer{screen: screen, fieldW: fieldW, fieldH: fieldH}
	r.cols, r.rows = screen.Size()
	return r
}

// Begin clears the screen and picks up the current terminal size
func (r *Renderer) Begin() {
	r.screen.Clear()
	r.cols, r.rows = r.screen.Size()
}

func (r *Renderer) col(x float64) int {
	return int(math.Floor(x * float64(r.cols) / r.fieldW))
}

func (r *Renderer) row(y float64) int {
	return int(math.Floor(y * float64(r.rows) / r.fieldH))
}

// span maps [from, from+size) onto cells. Anything visible covers at least
// one cell.
func span(from, to int) (int, int) {
	if to <= from {
		to = from + 1
	}
	return from, to
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) fill(rc pong.Rect, ch rune) {
	if rc.W <= 0 || rc.H <= 0 {
		return
	}
	x0, x1 := span(r.col(float64(rc.X)), r.col(float64(rc.X+rc.W)))
	y0, y1 := span(r.row(float64(rc.Y)), r.row(float64(rc.Y+rc.H)))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.set(x, y, ch, objStyle)
		}
	}
}

func (r *Renderer) FillRect(rc pong.Rect) {
	r.fill(rc, '█')
}

// FillEllipse draws a ball. At terminal resolution it rarely spans more
// than one cell.
func (r *Renderer) FillEllipse(rc pong.Rect) {
	r.fill(rc, '●')
}

func (r *Renderer) Line(x1, y1, x2, y2 float64) {
	cx1, cy1 := r.col(x1), r.row(y1)
	cx2, cy2 := r.col(x2), r.row(y2)

	ch := '·'
	switch {
	case cx1 == cx2:
		ch = '│'
	case cy1 == cy2:
		ch = '─'
	}

	dx, dy := cx2-cx1, cy2-cy1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		r.set(cx1, cy1, ch, objStyle)
		return
	}
	for i := 0; i <= steps; i++ {
		x := cx1 + int(math.Round(float64(dx*i)/float64(steps)))
		y := cy1 + int(math.Round(float64(dy*i)/float64(steps)))
		r.set(x, y, ch, objStyle)
	}
}

// Overlay dims every cell drawn so far
func (r *Renderer) Overlay() {
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			ch, comb, _, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, ch, comb, dimStyle)
		}
	}
}

// Text places s on a single row. Size is ignored; a terminal has one font.
func (r *Renderer) Text(s string, x, y float64, _ pong.TextSize, anchor pong.Anchor) {
	w := runewidth.StringWidth(s)
	left, top := anchor.Origin(float64(r.col(x)), float64(r.row(y)), float64(w), 1)
	cx, cy := int(math.Round(left)), int(math.Round(top))
	for _, ch := range s {
		r.set(cx, cy, ch, objStyle)
		cx += runewidth.RuneWidth(ch)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
