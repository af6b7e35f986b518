package objects

import (
	"image/color"
	"math"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Collectible draws a pickup until the session records it as collected.
type Collectible struct {
	*BaseObject

	collectible types.Collectible
	session     *session.Session
	ticks       int
}

func NewCollectible(id string, c types.Collectible, s *session.Session, zIndex int) *Collectible {
	return &Collectible{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		collectible: c,
		session:     s,
	}
}

func (c *Collectible) Update() error {
	c.ticks++
	return nil
}

func (c *Collectible) Draw(screen *ebiten.Image) {
	if c.session.Collected(c.collectible.ID) {
		return
	}

	x := float32(c.collectible.X)
	drift := float32(math.Sin(float64(c.ticks)/15) * 2)
	cy := float32(GroundY(screen.Bounds().Dy())) - 26 + drift

	vector.DrawFilledCircle(screen, x, cy, 16, color.NRGBA{R: 201, G: 162, B: 39, A: 40}, true)
	vector.DrawFilledCircle(screen, x, cy, 11, ui.ColorAccent, true)
	DrawText(screen, c.collectible.Glyph, fonts.TTFNormalFont, float64(x), float64(cy)+6, ui.ColorBackground, AlignCenter)
	DrawText(screen, c.collectible.Label, fonts.TTFSmallFont, float64(x), float64(cy)+30, ui.ColorAccent, AlignCenter)
}
