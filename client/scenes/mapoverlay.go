package scenes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/input"
	"github.com/cbodonnell/kvartal/client/objects"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/collisions"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	mapCanvasX      = 36
	mapCanvasY      = 64
	mapCanvasWidth  = 560
	mapCanvasHeight = 420
	pinRadius       = 14
)

// MapOverlay shows the city map. Pins are hit-tested through a collisions.MapSpace.
type MapOverlay struct {
	session *session.Session
	space   *collisions.MapSpace
	ui      *ebitenui.UI
	err     error
}

var _ Overlay = &MapOverlay{}

func NewMapOverlay(s *session.Session) (*MapOverlay, error) {
	locations := s.Catalog().Locations.All()
	if len(locations) == 0 {
		return nil, fmt.Errorf("no locations to show")
	}
	o := &MapOverlay{
		session: s,
		space:   collisions.NewMapSpace(mapCanvasWidth, mapCanvasHeight, locations),
	}
	o.renderUI()
	return o, nil
}

func (o *MapOverlay) Refresh() {
	o.renderUI()
}

func (o *MapOverlay) selectLocation(id int) {
	o.err = nil
	if err := o.session.SelectLocation(id); err != nil {
		log.Debug("Failed to select location %d: %v", id, err)
		o.err = locationError(err)
	}
	o.renderUI()
}

func (o *MapOverlay) travel() {
	if err := o.session.Travel(); err != nil {
		log.Warn("Failed to travel: %v", err)
		o.err = locationError(err)
		o.renderUI()
	}
}

func locationError(err error) error {
	switch {
	case errors.Is(err, session.ErrLocationLocked):
		return &ui.ActionableError{Message: "Локация закрыта"}
	case errors.Is(err, session.ErrNoLocation):
		return &ui.ActionableError{Message: "Выбери локацию на карте"}
	}
	return err
}

func (o *MapOverlay) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{
				Top:   mapCanvasY - 16,
				Right: 36,
			}),
		)),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
			widget.WidgetOpts.MinSize(300, 0),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	rootContainer.AddChild(column)

	column.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(ui.NeutralButtonImage()),
		widget.ButtonOpts.Text("× Закрыть", fonts.TTFSmallFont, ui.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(ui.ButtonPadding()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			o.session.CloseOverlay(types.OverlayMap)
		}),
	))

	selected, hasSelection := o.session.SelectedLocation()
	for _, location := range o.session.Catalog().Locations.All() {
		image := ui.NeutralButtonImage()
		if hasSelection && selected.ID == location.ID {
			image = ui.SelectedButtonImage()
		}
		label := location.Glyph + "  " + location.Name
		if !location.Status.Selectable() {
			label += " (закрыто)"
		}
		id := location.ID
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Stretch: true,
				}),
			),
			widget.ButtonOpts.Image(image),
			widget.ButtonOpts.Text(label, fonts.TTFSmallFont, ui.ButtonTextColor()),
			widget.ButtonOpts.TextPosition(widget.TextPositionStart, widget.TextPositionCenter),
			widget.ButtonOpts.TextPadding(widget.Insets{Left: 10, Right: 10, Top: 3, Bottom: 3}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				o.selectLocation(id)
			}),
		)
		button.GetWidget().Disabled = !location.Status.Selectable()
		column.AddChild(button)
	}

	if hasSelection {
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(selected.Name, fonts.TTFLargeFont, ui.ColorText),
		))
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(selected.Type.Label(), fonts.TTFSmallFont, selected.Type.Color()),
		))
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(selected.Description, fonts.TTFSmallFont, ui.ColorTextDim),
		))
		column.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Stretch: true,
				}),
			),
			widget.ButtonOpts.Image(ui.PositiveButtonImage()),
			widget.ButtonOpts.Text("Переместиться", fonts.TTFNormalFont, ui.ButtonTextColor()),
			widget.ButtonOpts.TextPadding(ui.ButtonPadding()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				o.travel()
			}),
		))
	}

	if o.err != nil {
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(ui.MessageFor(o.err, "Не удалось выбрать локацию"), fonts.TTFSmallFont, ui.ColorRed),
		))
	}

	o.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (o *MapOverlay) Update() error {
	if x, y, ok := input.CursorJustClicked(); ok {
		if location, hit := o.space.LocationAt(float64(x-mapCanvasX), float64(y-mapCanvasY)); hit {
			o.selectLocation(location.ID)
		}
	}
	o.ui.Update()
	return nil
}

func (o *MapOverlay) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 210}, false)
	vector.DrawFilledRect(screen, 20, 20, float32(w-40), float32(h-40), ui.ColorPanel, false)
	vector.StrokeRect(screen, 20, 20, float32(w-40), float32(h-40), 1, ui.ColorBorder, false)
	objects.DrawText(screen, "КАРТА ГОРОДА", fonts.TTFLargeFont, mapCanvasX, 50, ui.ColorText, objects.AlignLeft)

	o.drawCanvas(screen)
	o.ui.Draw(screen)
}

func (o *MapOverlay) drawCanvas(screen *ebiten.Image) {
	cx, cy := float32(mapCanvasX), float32(mapCanvasY)
	vector.DrawFilledRect(screen, cx, cy, mapCanvasWidth, mapCanvasHeight, ui.ColorBackground, false)
	for gx := float32(0); gx <= mapCanvasWidth; gx += 40 {
		vector.StrokeLine(screen, cx+gx, cy, cx+gx, cy+mapCanvasHeight, 1, color.NRGBA{R: 30, G: 30, B: 44, A: 255}, false)
	}
	for gy := float32(0); gy <= mapCanvasHeight; gy += 40 {
		vector.StrokeLine(screen, cx, cy+gy, cx+mapCanvasWidth, cy+gy, 1, color.NRGBA{R: 30, G: 30, B: 44, A: 255}, false)
	}

	width, height := o.space.Size()
	for _, road := range o.session.Catalog().Roads() {
		x0, y0 := collisions.PointPosition(width, height, road.FromX, road.FromY)
		x1, y1 := collisions.PointPosition(width, height, road.ToX, road.ToY)
		vector.StrokeLine(screen, cx+float32(x0), cy+float32(y0), cx+float32(x1), cy+float32(y1), 3, ui.ColorBorder, true)
	}

	selected, hasSelection := o.session.SelectedLocation()
	for _, location := range o.session.Catalog().Locations.All() {
		px, py := collisions.PointPosition(width, height, location.X, location.Y)
		x, y := cx+float32(px), cy+float32(py)

		fill := location.Type.Color()
		if !location.Status.Selectable() {
			fill = color.NRGBA{R: 70, G: 70, B: 80, A: 255}
		}
		if hasSelection && selected.ID == location.ID {
			vector.StrokeCircle(screen, x, y, pinRadius+4, 2, ui.ColorAccent, true)
		}
		vector.DrawFilledCircle(screen, x, y, pinRadius, fill, true)
		objects.DrawText(screen, location.Glyph, fonts.TTFSmallFont, float64(x), float64(y)+4, ui.ColorBackground, objects.AlignCenter)
		objects.DrawText(screen, location.Name, fonts.TTFSmallFont, float64(x), float64(y)+pinRadius+14, ui.ColorText, objects.AlignCenter)
	}

	hx, hy := o.session.Catalog().Home()
	px, py := collisions.PointPosition(width, height, hx, hy)
	vector.DrawFilledCircle(screen, cx+float32(px), cy+float32(py), 5, ui.ColorRed, true)
	objects.DrawText(screen, "ВЫ", fonts.TTFSmallFont, float64(cx)+px, float64(cy)+py-10, ui.ColorRed, objects.AlignCenter)
}
