package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/catalog"
	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/progression"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

type inventoryTab int

const (
	inventoryTabItems inventoryTab = iota
	inventoryTabSkills
)

const inventoryColumns = 4

// InventoryOverlay shows the player's items and skills.
type InventoryOverlay struct {
	session  *session.Session
	tab      inventoryTab
	selected int
	ui       *ebitenui.UI
}

var _ Overlay = &InventoryOverlay{}

func NewInventoryOverlay(s *session.Session) *InventoryOverlay {
	o := &InventoryOverlay{
		session: s,
	}
	o.renderUI()
	return o
}

// emptySlots returns how many blank cells pad an item grid of n items.
func emptySlots(n int) int {
	return 2*inventoryColumns - n%(2*inventoryColumns)
}

// skillPips renders a rank as filled and empty pips.
func skillPips(rank int) string {
	if rank < 0 {
		rank = 0
	}
	if rank > constants.SkillMaxRank {
		rank = constants.SkillMaxRank
	}
	return strings.Repeat("■", rank) + strings.Repeat("□", constants.SkillMaxRank-rank)
}

func (o *InventoryOverlay) Refresh() {
	o.renderUI()
}

func (o *InventoryOverlay) renderUI() {
	player := o.session.Player()

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(ui.PanelImage()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(720, 440),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)
	rootContainer.AddChild(panel)

	panel.AddChild(o.header(player))
	panel.AddChild(o.tabs(player))

	switch o.tab {
	case inventoryTabItems:
		panel.AddChild(o.itemsTab())
	case inventoryTabSkills:
		panel.AddChild(o.skillsTab(player))
	}

	o.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (o *InventoryOverlay) header(player types.PlayerState) *widget.Container {
	header := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	titles := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	titles.AddChild(widget.NewText(
		widget.TextOpts.Text("ИНВЕНТАРЬ", fonts.TTFLargeFont, ui.ColorText),
	))
	titles.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("%s · Уровень %d · %s", player.Name, player.Level, catalog.FormatMoney(player.Money)), fonts.TTFSmallFont, ui.ColorTextDim),
	))
	header.AddChild(titles)

	header.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(ui.NeutralButtonImage()),
		widget.ButtonOpts.Text("×", fonts.TTFLargeFont, ui.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.Insets{Left: 10, Right: 10}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			o.session.CloseOverlay(types.OverlayInventory)
		}),
	))

	return header
}

func (o *InventoryOverlay) tabs(player types.PlayerState) *widget.Container {
	tabs := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	for _, t := range []struct {
		tab   inventoryTab
		label string
	}{
		{inventoryTabItems, "Предметы"},
		{inventoryTabSkills, "Навыки"},
	} {
		image := ui.NeutralButtonImage()
		if t.tab == o.tab {
			image = ui.SelectedButtonImage()
		}
		tab := t.tab
		tabs.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(image),
			widget.ButtonOpts.Text(t.label, fonts.TTFNormalFont, ui.ButtonTextColor()),
			widget.ButtonOpts.TextPadding(widget.Insets{Left: 24, Right: 24, Top: 6, Bottom: 6}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				o.tab = tab
				o.renderUI()
			}),
		))
	}

	if free := progression.FreePoints(player); free > 0 {
		tabs.AddChild(widget.NewText(
			widget.TextOpts.Text(fmt.Sprintf("%d очков", free), fonts.TTFNormalFont, ui.ColorAccent),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
	}

	return tabs
}

func (o *InventoryOverlay) itemsTab() *widget.Container {
	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(inventoryColumns),
			widget.GridLayoutOpts.Spacing(6, 6),
			widget.GridLayoutOpts.Stretch([]bool{true, true, true, true}, nil),
		)),
	)

	items := o.session.Catalog().Items.All()
	for _, item := range items {
		image := ui.NeutralButtonImage()
		if item.ID == o.selected {
			image = ui.SelectedButtonImage()
		}
		id := item.ID
		grid.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(100, 64),
			),
			widget.ButtonOpts.Image(image),
			widget.ButtonOpts.Text(item.Glyph+"\n"+item.Name, fonts.TTFSmallFont, ui.ButtonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				o.selected = id
				o.renderUI()
			}),
		))
	}
	for i := 0; i < emptySlots(len(items)); i++ {
		slot := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(100, 32),
			),
			widget.ButtonOpts.Image(ui.NeutralButtonImage()),
			widget.ButtonOpts.Text("", fonts.TTFSmallFont, ui.ButtonTextColor()),
		)
		slot.GetWidget().Disabled = true
		grid.AddChild(slot)
	}
	content.AddChild(grid)
	content.AddChild(o.itemDetail())

	return content
}

func (o *InventoryOverlay) itemDetail() *widget.Container {
	detail := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 0),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	item, ok := o.session.Catalog().Items.Get(o.selected)
	if !ok {
		detail.AddChild(widget.NewText(
			widget.TextOpts.Text("Выбери предмет для просмотра", fonts.TTFSmallFont, ui.ColorTextDim),
		))
		return detail
	}

	for _, line := range []struct {
		text string
		face font.Face
		clr  color.Color
	}{
		{strings.ToUpper(item.Rarity.Label()), fonts.TTFSmallFont, item.Rarity.Color()},
		{item.Name, fonts.TTFLargeFont, ui.ColorText},
		{item.Description, fonts.TTFSmallFont, ui.ColorTextDim},
		{"Тип: " + item.Type.Label(), fonts.TTFSmallFont, ui.ColorTextDim},
		{fmt.Sprintf("Вес: %.1f кг", item.Weight), fonts.TTFSmallFont, ui.ColorTextDim},
	} {
		detail.AddChild(widget.NewText(
			widget.TextOpts.Text(line.text, line.face, line.clr),
		))
	}

	return detail
}

func (o *InventoryOverlay) skillsTab(player types.PlayerState) *widget.Container {
	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(12, 12),
			widget.GridLayoutOpts.Stretch([]bool{true, true}, nil),
		)),
	)

	for _, info := range o.session.Catalog().Skills() {
		rank := player.Skills[info.Skill]

		card := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(ui.ColorBorder)),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			)),
		)
		card.AddChild(widget.NewText(
			widget.TextOpts.Text(fmt.Sprintf("%s  %d / %d", info.Label, rank, constants.SkillMaxRank), fonts.TTFNormalFont, ui.ColorText),
		))
		card.AddChild(widget.NewText(
			widget.TextOpts.Text(skillPips(rank), fonts.TTFSmallFont, ui.ColorAccent),
		))
		card.AddChild(widget.NewText(
			widget.TextOpts.Text(info.Description, fonts.TTFSmallFont, ui.ColorTextDim),
		))

		if progression.CanUpgrade(player, info.Skill) {
			skill := info.Skill
			card.AddChild(widget.NewButton(
				widget.ButtonOpts.Image(ui.PositiveButtonImage()),
				widget.ButtonOpts.Text("+ Прокачать", fonts.TTFSmallFont, ui.ButtonTextColor()),
				widget.ButtonOpts.TextPadding(ui.ButtonPadding()),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					o.session.UpgradeSkill(skill)
				}),
			))
		}

		content.AddChild(card)
	}

	return content
}

func (o *InventoryOverlay) Update() error {
	o.ui.Update()
	return nil
}

func (o *InventoryOverlay) Draw(screen *ebiten.Image) {
	o.ui.Draw(screen)
}
