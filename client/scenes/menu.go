package scenes

import (
	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/objects"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/version"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onNewGame func()
	onExit    func()
	ui        *ebitenui.UI
}

type MenuSceneOptions struct {
	// OnNewGame is called when the new game button is pressed.
	OnNewGame func()
	// OnExit is called when the exit button is pressed.
	OnExit func()
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	base := NewBaseScene("menu-root")
	root := base.GetRoot()
	if err := root.AddChild("menu-backdrop", objects.NewBackdrop("menu-backdrop", objects.NewBackdropOptions{
		Width: 1280,
	})); err != nil {
		return nil, err
	}
	if err := root.AddChild("menu-title", objects.NewTextOverlayObject("menu-title", objects.NewTextOverlayOptions{
		Title:    "BLACK RUSSIA",
		Subtitle: "2D Edition",
		Y:        110,
		Color:    ui.ColorText,
	})); err != nil {
		return nil, err
	}

	return &MenuScene{
		BaseScene: base,
		onNewGame: opts.OnNewGame,
		onExit:    opts.OnExit,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    180,
				Left:   200,
				Right:  200,
				Bottom: 60,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("— Россия —", fonts.TTFSmallFont, ui.ColorAccent),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	newGameButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(ui.PositiveButtonImage()),
		widget.ButtonOpts.Text("▶ Новая игра", fontFace, ui.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    10,
			Bottom: 10,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			log.Debug("New game requested from menu")
			s.onNewGame()
		}),
	)
	rootContainer.AddChild(newGameButton)

	// there is no save or settings screen yet
	for _, label := range []string{"Продолжить", "Настройки"} {
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
					Stretch:  true,
				}),
			),
			widget.ButtonOpts.Image(ui.NeutralButtonImage()),
			widget.ButtonOpts.Text(label, fontFace, ui.ButtonTextColor()),
			widget.ButtonOpts.TextPadding(ui.ButtonPadding()),
		)
		button.GetWidget().Disabled = true
		rootContainer.AddChild(button)
	}

	exitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(ui.NeutralButtonImage()),
		widget.ButtonOpts.Text("Выйти", fontFace, ui.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(ui.ButtonPadding()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.onExit()
		}),
	)
	rootContainer.AddChild(exitButton)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)

	h := float64(screen.Bounds().Dy())
	w := float64(screen.Bounds().Dx())
	objects.DrawText(screen, "v"+version.Get()+" ALPHA", fonts.TTFSmallFont, 24, h-18, ui.ColorTextDim, objects.AlignLeft)
	objects.DrawText(screen, "BLACK RUSSIA 2D © 2026", fonts.TTFSmallFont, w-24, h-18, ui.ColorTextDim, objects.AlignRight)
}
