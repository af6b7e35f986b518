package objects

import (
	"image/color"
	"math"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/kinematic"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	figureWidth  = 20
	figureHeight = 36
	headRadius   = 9
)

// Player draws the local player at the position held by the session.
type Player struct {
	*BaseObject

	session *session.Session
	debug   bool
}

func NewPlayer(id string, s *session.Session, zIndex int) *Player {
	return &Player{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		session: s,
	}
}

func (p *Player) SetDebug(debug bool) {
	p.debug = debug
}

func (p *Player) Draw(screen *ebiten.Image) {
	x := p.session.X()
	walking := p.session.Walking()
	feet := GroundY(screen.Bounds().Dy()) - kinematic.Bob(p.session.WalkCycle(), walking)

	// shadow stays on the ground while the body bobs
	vector.DrawFilledRect(screen, float32(x-12), float32(GroundY(screen.Bounds().Dy())-2), 24, 4, color.NRGBA{A: 150}, false)

	stride := float32(0)
	if walking {
		stride = float32(math.Sin(p.session.WalkCycle()*math.Pi) * 4)
	}
	legTop := float32(feet) - 14
	vector.DrawFilledRect(screen, float32(x)-7+stride, legTop, 5, 14, color.NRGBA{R: 40, G: 40, B: 60, A: 255}, false)
	vector.DrawFilledRect(screen, float32(x)+2-stride, legTop, 5, 14, color.NRGBA{R: 40, G: 40, B: 60, A: 255}, false)

	bodyTop := float32(feet) - figureHeight
	vector.DrawFilledRect(screen, float32(x)-figureWidth/2, bodyTop, figureWidth, figureHeight-14, color.NRGBA{R: 60, G: 70, B: 90, A: 255}, false)

	headY := bodyTop - headRadius
	vector.DrawFilledCircle(screen, float32(x), headY, headRadius, color.NRGBA{R: 220, G: 190, B: 160, A: 255}, true)
	eyeX := float32(x) + 4
	if p.session.Facing() == kinematic.DirectionLeft {
		eyeX = float32(x) - 4
	}
	vector.DrawFilledCircle(screen, eyeX, headY-1, 1.5, color.Black, true)

	name := p.session.Player().Name
	nameY := float64(headY) - headRadius - 8
	w := TextWidth(fonts.TTFSmallFont, name)
	vector.DrawFilledRect(screen, float32(x-w/2-6), float32(nameY-12), float32(w+12), 16, color.NRGBA{R: 13, G: 13, B: 21, A: 200}, false)
	DrawText(screen, name, fonts.TTFSmallFont, x, nameY, ui.ColorAccent, AlignCenter)

	if p.debug {
		vector.StrokeRect(screen, float32(x)-figureWidth/2, bodyTop-2*headRadius, figureWidth, figureHeight+2*headRadius, 1, color.NRGBA{R: 0, G: 255, B: 60, A: 255}, false)
	}
}
