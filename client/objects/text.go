package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Align controls how DrawText positions a string around x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextWidth returns the advance width of s in pixels.
func TextWidth(f font.Face, s string) float64 {
	return float64(font.MeasureString(f, s).Ceil())
}

// DrawText draws s with its baseline at y.
func DrawText(screen *ebiten.Image, s string, f font.Face, x, y float64, clr color.Color, align Align) {
	DrawTextAlpha(screen, s, f, x, y, clr, align, 1)
}

// DrawTextAlpha is DrawText with the color scaled by alpha.
func DrawTextAlpha(screen *ebiten.Image, s string, f font.Face, x, y float64, clr color.Color, align Align, alpha float32) {
	switch align {
	case AlignCenter:
		x -= TextWidth(f, s) / 2
	case AlignRight:
		x -= TextWidth(f, s)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.DrawWithOptions(screen, s, f, op)
}
