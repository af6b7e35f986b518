package objects

import (
	"image/color"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextOverlayObject draws a title and an optional subtitle centered horizontally.
type TextOverlayObject struct {
	*BaseObject

	title    string
	subtitle string
	y        float64
	color    color.Color
}

type NewTextOverlayOptions struct {
	Title    string
	Subtitle string
	// Y is the baseline of the title.
	Y     float64
	Color color.Color
}

func NewTextOverlayObject(id string, opts NewTextOverlayOptions) *TextOverlayObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		title:      opts.Title,
		subtitle:   opts.Subtitle,
		y:          opts.Y,
		color:      clr,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	cx := float64(screen.Bounds().Dx()) / 2
	DrawText(screen, o.title, fonts.TitleFont, cx, o.y, o.color, AlignCenter)
	if o.subtitle != "" {
		DrawText(screen, o.subtitle, fonts.TTFNormalFont, cx, o.y+28, ui.ColorTextDim, AlignCenter)
	}
}
