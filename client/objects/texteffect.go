package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// TextEffect is a short-lived floating label. It removes itself from its parent once its TTL runs out.
type TextEffect struct {
	*BaseObject

	text   string
	x      float64
	y      float64
	face   font.Face
	color  color.Color
	scroll bool
	ttl    int
	total  int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the center of the text.
	X float64
	// Y is the baseline of the text, measured from the top of the target image.
	Y float64
	// Face is the font face. Defaults to fonts.TTFNormalFont.
	Face font.Face
	// Color is the color of the text.
	Color color.Color
	// Scroll is a boolean value indicating whether the text should drift upwards.
	Scroll bool
	// TTL is the time to live in milliseconds.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	face := opts.Face
	if face == nil {
		face = fonts.TTFNormalFont
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		text:   opts.Text,
		x:      opts.X,
		y:      opts.Y,
		face:   face,
		color:  clr,
		scroll: opts.Scroll,
		ttl:    opts.TTL,
		total:  opts.TTL,
	}
}

// Expired reports whether the effect has used up its TTL.
func (o *TextEffect) Expired() bool {
	return o.total > 0 && o.ttl <= 0
}

func (o *TextEffect) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return o.advance(1000 / tps)
}

func (o *TextEffect) advance(elapsedMs int) error {
	if o.scroll {
		o.y -= 0.5
	}
	if o.ttl > 0 {
		o.ttl -= elapsedMs
		if o.ttl <= 0 && o.GetParent() != nil {
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	alpha := float32(1)
	if o.total > 0 {
		alpha = float32(o.ttl) / float32(o.total)
		if alpha < 0 {
			alpha = 0
		}
	}
	DrawTextAlpha(screen, o.text, o.face, o.x, o.y, o.color, AlignCenter, alpha)
}
