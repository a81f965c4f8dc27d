package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jtestard/pong-series/pong"
)

const dpi = 72

// Fonts holds one face per HUD text size
type Fonts struct {
	faces map[pong.TextSize]font.Face
}

// LoadFonts parses the embedded Go Regular TrueType font at every HUD size
func LoadFonts() (*Fonts, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	f := &Fonts{faces: make(map[pong.TextSize]font.Face)}
	for _, size := range []pong.TextSize{pong.TextSmall, pong.TextNormal, pong.TextLarge} {
		f.faces[size] = truetype.NewFace(tt, &truetype.Options{
			Size:    size.Points(),
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	return f, nil
}

// Face returns the face for size, falling back to the normal one
func (f *Fonts) Face(size pong.TextSize) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	return f.faces[pong.TextNormal]
}

// Measure returns the advance width and line height of s in pixels, plus the
// ascent needed to place the baseline.
func (f *Fonts) Measure(s string, size pong.TextSize) (w, h, ascent int) {
	face := f.Face(size)
	m := face.Metrics()
	return font.MeasureString(face, s).Ceil(), (m.Ascent + m.Descent).Ceil(), m.Ascent.Ceil()
}
