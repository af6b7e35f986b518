package objects

import (
	"fmt"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/catalog"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// RewardPopup shows the reward popup held by the session above the player.
type RewardPopup struct {
	*BaseObject

	session *session.Session
}

func NewRewardPopup(id string, s *session.Session, zIndex int) *RewardPopup {
	return &RewardPopup{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		session: s,
	}
}

func (o *RewardPopup) Draw(screen *ebiten.Image) {
	popup, ok := o.session.Popup()
	if !ok {
		return
	}

	alpha := float32(1)
	if popup.Reward.TTL > 0 {
		alpha = float32(popup.Remaining) / float32(popup.Reward.TTL)
	}
	elapsed := float64(popup.Reward.TTL-popup.Remaining) / float64(popup.Reward.TTL)
	y := float64(screen.Bounds().Dy()) - 200 - 20*elapsed
	x := o.session.X()

	DrawTextAlpha(screen, fmt.Sprintf("+%d XP", popup.Reward.XP), fonts.TTFLargeFont, x, y, ui.ColorAccent, AlignCenter, alpha)
	DrawTextAlpha(screen, "+"+catalog.FormatMoney(popup.Reward.Money), fonts.TTFSmallFont, x, y+18, ui.ColorText, AlignCenter, alpha)
}
