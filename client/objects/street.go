package objects

import (
	"image/color"

	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GroundHeight is the height of the pavement strip at the bottom of the street.
const GroundHeight = 128

// GroundY returns the y-coordinate characters stand on for an image of the given height.
func GroundY(height int) float64 {
	return float64(height - GroundHeight)
}

type building struct {
	x, w, h float32
	clr     color.Color
}

// Backdrop draws the static street: sky, building silhouettes and the pavement.
type Backdrop struct {
	*BaseObject

	width     float32
	buildings []building
}

type NewBackdropOptions struct {
	// Width is the width of the street in pixels.
	Width float32
	// ZIndex is the z-index of the backdrop.
	ZIndex int
}

func NewBackdrop(id string, opts NewBackdropOptions) *Backdrop {
	b := &Backdrop{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		width: opts.Width,
	}

	// fixed skyline so every session looks the same
	heights := []float32{180, 240, 150, 210, 270, 170, 230, 190}
	x := float32(0)
	for i := 0; x < opts.Width; i++ {
		w := float32(90 + (i%3)*30)
		shade := uint8(24 + (i%4)*6)
		b.buildings = append(b.buildings, building{
			x:   x,
			w:   w,
			h:   heights[i%len(heights)],
			clr: color.NRGBA{R: shade, G: shade, B: shade + 14, A: 255},
		})
		x += w + 6
	}

	return b
}

func (o *Backdrop) Draw(screen *ebiten.Image) {
	h := float32(screen.Bounds().Dy())
	ground := float32(GroundY(screen.Bounds().Dy()))

	vector.DrawFilledRect(screen, 0, 0, o.width, h, ui.ColorBackground, false)

	for _, b := range o.buildings {
		top := ground - b.h
		vector.DrawFilledRect(screen, b.x, top, b.w, b.h, b.clr, false)
		for wy := top + 16; wy < ground-24; wy += 28 {
			for wx := b.x + 12; wx < b.x+b.w-16; wx += 24 {
				// light every few windows
				lit := int(wx+wy)%5 == 0
				clr := color.NRGBA{R: 30, G: 30, B: 40, A: 255}
				if lit {
					clr = color.NRGBA{R: 120, G: 100, B: 40, A: 255}
				}
				vector.DrawFilledRect(screen, wx, wy, 10, 14, clr, false)
			}
		}
	}

	vector.DrawFilledRect(screen, 0, ground, o.width, GroundHeight, color.NRGBA{R: 26, G: 26, B: 42, A: 255}, false)
	vector.DrawFilledRect(screen, 0, ground+GroundHeight/2, o.width, GroundHeight/2, color.NRGBA{R: 13, G: 13, B: 21, A: 255}, false)
	vector.DrawFilledRect(screen, 0, ground, o.width, 1, color.NRGBA{R: 201, G: 162, B: 39, A: 51}, false)
}
