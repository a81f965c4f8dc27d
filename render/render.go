// Package render draws a match onto an ebiten screen.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"

	"github.com/jtestard/pong-series/pong"
)

var (
	BgColor      = color.Black
	ObjColor     = color.RGBA{120, 226, 160, 255}
	OverlayColor = color.RGBA{0, 0, 0, 180}
)

// Renderer implements pong.Renderer for one ebiten frame at a time
type Renderer struct {
	screen *ebiten.Image
	fonts  *Fonts
	discs  map[[2]int]*ebiten.Image
}

// New loads fonts and returns a renderer ready for Begin
func New() (*Renderer, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		fonts: fonts,
		discs: make(map[[2]int]*ebiten.Image),
	}, nil
}

// Begin targets screen and clears it
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	screen.Fill(BgColor)
}

func (r *Renderer) FillRect(rc pong.Rect) {
	ebitenutil.DrawRect(r.screen, float64(rc.X), float64(rc.Y), float64(rc.W), float64(rc.H), ObjColor)
}

func (r *Renderer) FillEllipse(rc pong.Rect) {
	img := r.disc(rc.W, rc.H)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(rc.X), float64(rc.Y))
	r.screen.DrawImage(img, op)
}

func (r *Renderer) Line(x1, y1, x2, y2 float64) {
	ebitenutil.DrawLine(r.screen, x1, y1, x2, y2, ObjColor)
}

func (r *Renderer) Overlay() {
	w, h := r.screen.Size()
	ebitenutil.DrawRect(r.screen, 0, 0, float64(w), float64(h), OverlayColor)
}

func (r *Renderer) Text(s string, x, y float64, size pong.TextSize, anchor pong.Anchor) {
	w, h, ascent := r.fonts.Measure(s, size)
	left, top := anchor.Origin(x, y, float64(w), float64(h))
	text.Draw(r.screen, s, r.fonts.Face(size), int(left), int(top)+ascent, ObjColor)
}

// disc returns a cached filled ellipse sprite of the given size
func (r *Renderer) disc(w, h int) *ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	key := [2]int{w, h}
	if img, ok := r.discs[key]; ok {
		return img
	}
	img, err := ebiten.NewImageFromImage(ellipse(w, h, ObjColor), ebiten.FilterDefault)
	if err != nil {
		return nil
	}
	r.discs[key] = img
	return img
}

// ellipse rasterizes a filled ellipse inscribed in a w×h box
func ellipse(w, h int, clr color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rx, ry := float64(w)/2, float64(h)/2
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			dx := (float64(px) + 0.5 - rx) / rx
			dy := (float64(py) + 0.5 - ry) / ry
			if dx*dx+dy*dy <= 1 {
				img.Set(px, py, clr)
			}
		}
	}
	return img
}
