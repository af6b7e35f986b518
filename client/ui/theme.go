package ui

import (
	"image/color"

	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

var (
	ColorBackground = color.NRGBA{R: 13, G: 13, B: 21, A: 255}
	ColorPanel      = color.NRGBA{R: 20, G: 20, B: 32, A: 240}
	ColorBorder     = color.NRGBA{R: 42, G: 42, B: 58, A: 255}
	ColorAccent     = color.NRGBA{R: 201, G: 162, B: 39, A: 255}
	ColorRed        = color.NRGBA{R: 192, G: 57, B: 43, A: 255}
	ColorText       = color.NRGBA{R: 232, G: 228, B: 216, A: 255}
	ColorTextDim    = color.NRGBA{R: 128, G: 125, B: 115, A: 255}
	ColorDisabled   = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
)

func NeutralButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     eimage.NewNineSliceColor(color.NRGBA{R: 30, G: 30, B: 46, A: 255}),
		Hover:    eimage.NewNineSliceColor(color.NRGBA{R: 48, G: 44, B: 40, A: 255}),
		Pressed:  eimage.NewNineSliceColor(color.NRGBA{R: 70, G: 60, B: 30, A: 255}),
		Disabled: eimage.NewNineSliceColor(color.NRGBA{R: 24, G: 24, B: 30, A: 255}),
	}
}

func PositiveButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     eimage.NewNineSliceColor(color.NRGBA{R: 150, G: 120, B: 30, A: 255}),
		Hover:    eimage.NewNineSliceColor(color.NRGBA{R: 201, G: 162, B: 39, A: 255}),
		Pressed:  eimage.NewNineSliceColor(color.NRGBA{R: 110, G: 90, B: 20, A: 255}),
		Disabled: eimage.NewNineSliceColor(color.NRGBA{R: 60, G: 55, B: 40, A: 255}),
	}
}

// SelectedButtonImage marks the active tab or the selected list entry.
func SelectedButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    eimage.NewNineSliceColor(color.NRGBA{R: 70, G: 60, B: 30, A: 255}),
		Hover:   eimage.NewNineSliceColor(color.NRGBA{R: 90, G: 76, B: 36, A: 255}),
		Pressed: eimage.NewNineSliceColor(color.NRGBA{R: 110, G: 90, B: 20, A: 255}),
	}
}

func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     ColorText,
		Disabled: ColorTextDim,
	}
}

func PanelImage() *eimage.NineSlice {
	return eimage.NewNineSliceColor(ColorPanel)
}

func ButtonPadding() widget.Insets {
	return widget.Insets{
		Left:   15,
		Right:  15,
		Top:    5,
		Bottom: 5,
	}
}
