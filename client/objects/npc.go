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

// NPC draws a stationary street character and marks it while it is the active one.
type NPC struct {
	*BaseObject

	npc     types.NPC
	session *session.Session
	ticks   int
}

func NewNPC(id string, npc types.NPC, s *session.Session, zIndex int) *NPC {
	return &NPC{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		npc:     npc,
		session: s,
	}
}

func (n *NPC) active() bool {
	active, _ := n.session.ActiveNPC()
	return active != nil && active.ID == n.npc.ID
}

func (n *NPC) Update() error {
	n.ticks++
	return nil
}

func (n *NPC) Draw(screen *ebiten.Image) {
	x := float32(n.npc.X)
	feet := float32(GroundY(screen.Bounds().Dy()))

	vector.DrawFilledRect(screen, x-12, feet-2, 24, 4, color.NRGBA{A: 150}, false)
	vector.DrawFilledRect(screen, x-7, feet-14, 5, 14, color.NRGBA{R: 35, G: 35, B: 45, A: 255}, false)
	vector.DrawFilledRect(screen, x+2, feet-14, 5, 14, color.NRGBA{R: 35, G: 35, B: 45, A: 255}, false)
	bodyTop := feet - figureHeight
	vector.DrawFilledRect(screen, x-figureWidth/2, bodyTop, figureWidth, figureHeight-14, color.NRGBA{R: 80, G: 60, B: 60, A: 255}, false)
	headY := bodyTop - headRadius
	vector.DrawFilledCircle(screen, x, headY, headRadius, color.NRGBA{R: 200, G: 170, B: 140, A: 255}, true)
	DrawText(screen, n.npc.Glyph, fonts.TTFSmallFont, float64(x), float64(headY)+4, color.Black, AlignCenter)

	labelY := float64(headY) - headRadius - 8
	DrawText(screen, n.npc.Name, fonts.TTFSmallFont, float64(x), labelY-12, ui.ColorTextDim, AlignCenter)
	DrawText(screen, "("+n.npc.Role+")", fonts.TTFSmallFont, float64(x), labelY, ui.ColorAccent, AlignCenter)

	if n.active() {
		pulse := float32(0.5 + 0.5*math.Sin(float64(n.ticks)/8))
		clr := color.NRGBA{R: 201, G: 162, B: 39, A: uint8(100 + 155*pulse)}
		vector.DrawFilledCircle(screen, x, float32(labelY)-26, 4, clr, true)
	}
}
