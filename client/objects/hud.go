package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/catalog"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD draws the player stats panel, the money counter and the controls hint in screen space.
type HUD struct {
	*BaseObject

	session *session.Session
}

func NewHUD(id string, s *session.Session, zIndex int) *HUD {
	return &HUD{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		session: s,
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	player := h.session.Player()
	w := float64(screen.Bounds().Dx())
	hgt := float64(screen.Bounds().Dy())

	const panelX, panelY, panelW, panelH = 12, 12, 210, 96
	vector.DrawFilledRect(screen, panelX, panelY, panelW, panelH, ui.ColorPanel, false)
	vector.StrokeRect(screen, panelX, panelY, panelW, panelH, 1, ui.ColorBorder, false)

	DrawText(screen, player.Name, fonts.TTFNormalFont, panelX+10, panelY+22, ui.ColorText, AlignLeft)
	DrawText(screen, fmt.Sprintf("Уровень %d", player.Level), fonts.TTFSmallFont, panelX+10, panelY+38, ui.ColorAccent, AlignLeft)

	drawBar(screen, panelX+10, panelY+54, panelW-20, "HP",
		fmt.Sprintf("%d/%d", player.Hitpoints, player.MaxHitpoints), player.HitpointsPercent(), ui.ColorRed)
	drawBar(screen, panelX+10, panelY+80, panelW-20, "Опыт",
		fmt.Sprintf("%d/%d", player.XP, player.XPToNext), player.XPPercent(), ui.ColorAccent)

	money := catalog.FormatMoney(player.Money)
	mw := TextWidth(fonts.TTFLargeFont, money)
	vector.DrawFilledRect(screen, float32(w-mw-36), panelY, float32(mw+24), 36, ui.ColorPanel, false)
	vector.StrokeRect(screen, float32(w-mw-36), panelY, float32(mw+24), 36, 1, ui.ColorBorder, false)
	DrawText(screen, money, fonts.TTFLargeFont, w-24, panelY+27, ui.ColorAccent, AlignRight)

	DrawText(screen, "← → / A D — движение", fonts.TTFSmallFont, w-12, hgt-12, ui.ColorTextDim, AlignRight)
}

// drawBar draws a labelled progress bar whose top-left corner is at x, y.
func drawBar(screen *ebiten.Image, x, y, width float32, label, value string, fraction float64, fill color.Color) {
	DrawText(screen, label, fonts.TTFSmallFont, float64(x), float64(y), fill, AlignLeft)
	DrawText(screen, value, fonts.TTFSmallFont, float64(x+width), float64(y), ui.ColorTextDim, AlignRight)
	vector.DrawFilledRect(screen, x, y+3, width, 6, ui.ColorBorder, false)
	vector.DrawFilledRect(screen, x, y+3, width*float32(fraction), 6, fill, false)
}
