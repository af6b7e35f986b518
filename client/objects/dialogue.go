package objects

import (
	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const dialogueWidth = 340

// DialogueBox shows the line of the NPC the player is standing next to.
type DialogueBox struct {
	*BaseObject

	session *session.Session
}

func NewDialogueBox(id string, s *session.Session, zIndex int) *DialogueBox {
	return &DialogueBox{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		session: s,
	}
}

func (d *DialogueBox) Draw(screen *ebiten.Image) {
	npc, line := d.session.ActiveNPC()
	if npc == nil {
		return
	}

	x := float32(screen.Bounds().Dx()-dialogueWidth) / 2
	y := float32(screen.Bounds().Dy()) - 176 - 72
	vector.DrawFilledRect(screen, x, y, dialogueWidth, 72, ui.ColorPanel, false)
	vector.StrokeRect(screen, x, y, dialogueWidth, 72, 1, ui.ColorAccent, false)

	DrawText(screen, npc.Glyph+" "+npc.Name, fonts.TTFNormalFont, float64(x)+12, float64(y)+22, ui.ColorAccent, AlignLeft)
	DrawText(screen, line, fonts.TTFSmallFont, float64(x)+12, float64(y)+42, ui.ColorText, AlignLeft)
	DrawText(screen, "[E] — Поговорить", fonts.TTFSmallFont, float64(x)+12, float64(y)+62, ui.ColorTextDim, AlignLeft)
}
