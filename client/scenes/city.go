package scenes

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/cbodonnell/kvartal/client/fonts"
	"github.com/cbodonnell/kvartal/client/input"
	"github.com/cbodonnell/kvartal/client/objects"
	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// WorldWidth is the width of the street image in pixels.
	WorldWidth = int(constants.StreetWidth)

	zIndexBackdrop    = 0
	zIndexCollectible = 10
	zIndexNPC         = 10
	zIndexPlayer      = 20
	zIndexPopup       = 30
	zIndexEffect      = 40
)

// Overlay is a modal panel drawn on top of the street.
type Overlay interface {
	Update() error
	Draw(screen *ebiten.Image)
	Refresh()
}

// CityScene renders the street the session plays on.
type CityScene struct {
	*BaseScene

	session *session.Session
	debug   bool

	screenWidth  int
	screenHeight int
	// world is the world image the street is drawn to before the viewport is cut out of it.
	world *ebiten.Image
	// hud holds objects drawn in screen space above the street.
	hud *objects.SortedZIndexObject
	// CameraViewport is the current viewport.
	CameraViewport *CameraViewport
	ui             *ebitenui.UI

	inventory Overlay
	cityMap   Overlay
}

type CitySceneOptions struct {
	Session      *session.Session
	Debug        bool
	ScreenWidth  int
	ScreenHeight int
}

var _ Scene = &CityScene{}
var _ EventHandler = &CityScene{}

func NewCityScene(opts CitySceneOptions) (Scene, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("session is required")
	}

	s := &CityScene{
		BaseScene:      NewBaseScene("city-root"),
		session:        opts.Session,
		debug:          opts.Debug,
		screenWidth:    opts.ScreenWidth,
		screenHeight:   opts.ScreenHeight,
		hud:            objects.NewSortedZIndexObject("hud-root"),
		CameraViewport: &CameraViewport{},
	}

	if err := s.populate(); err != nil {
		return nil, fmt.Errorf("failed to populate street: %v", err)
	}

	return s, nil
}

func (s *CityScene) populate() error {
	root := s.GetRoot()
	c := s.session.Catalog()

	if err := root.AddChild("backdrop", objects.NewBackdrop("backdrop", objects.NewBackdropOptions{
		Width:  float32(WorldWidth),
		ZIndex: zIndexBackdrop,
	})); err != nil {
		return fmt.Errorf("failed to add backdrop: %v", err)
	}

	for _, collectible := range c.Collectibles.All() {
		id := fmt.Sprintf("collectible-%d", collectible.ID)
		if err := root.AddChild(id, objects.NewCollectible(id, collectible, s.session, zIndexCollectible)); err != nil {
			return fmt.Errorf("failed to add collectible: %v", err)
		}
	}

	for _, npc := range c.NPCs.All() {
		id := fmt.Sprintf("npc-%d", npc.ID)
		if err := root.AddChild(id, objects.NewNPC(id, npc, s.session, zIndexNPC)); err != nil {
			return fmt.Errorf("failed to add NPC: %v", err)
		}
	}

	player := objects.NewPlayer("player", s.session, zIndexPlayer)
	player.SetDebug(s.debug)
	if err := root.AddChild("player", player); err != nil {
		return fmt.Errorf("failed to add player: %v", err)
	}

	if err := root.AddChild("reward-popup", objects.NewRewardPopup("reward-popup", s.session, zIndexPopup)); err != nil {
		return fmt.Errorf("failed to add reward popup: %v", err)
	}

	if err := s.hud.AddChild("hud", objects.NewHUD("hud", s.session, 0)); err != nil {
		return fmt.Errorf("failed to add HUD: %v", err)
	}
	if err := s.hud.AddChild("dialogue", objects.NewDialogueBox("dialogue", s.session, 10)); err != nil {
		return fmt.Errorf("failed to add dialogue box: %v", err)
	}

	return nil
}

func (s *CityScene) Init() error {
	s.world = ebiten.NewImage(WorldWidth, s.screenHeight)
	s.renderUI()
	if err := objects.InitTree(s.hud); err != nil {
		return fmt.Errorf("failed to initialize HUD: %v", err)
	}
	return s.BaseScene.Init()
}

func (s *CityScene) Destroy() error {
	if err := objects.DestroyTree(s.hud); err != nil {
		return fmt.Errorf("failed to destroy HUD: %v", err)
	}
	if s.world != nil {
		s.world.Deallocate()
		s.world = nil
	}
	return s.BaseScene.Destroy()
}

func (s *CityScene) renderUI() {
	fontFace := fonts.TTFSmallFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Bottom: 12}),
		)),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(ui.NeutralButtonImage()),
		widget.ButtonOpts.Text("Инвентарь [I]", fontFace, ui.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(ui.ButtonPadding()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.session.ToggleInventory()
		}),
	))
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(ui.NeutralButtonImage()),
		widget.ButtonOpts.Text("Карта [M]", fontFace, ui.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(ui.ButtonPadding()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.session.ToggleMap()
		}),
	))
	rootContainer.AddChild(buttons)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *CityScene) Update() error {
	s.handleInput()

	s.session.Tick(session.Input{
		Left:  input.MoveLeft.Pressed(),
		Right: input.MoveRight.Pressed(),
	}, frameDuration())

	// only the topmost overlay takes input; the map stacks above the inventory
	switch {
	case s.cityMap != nil:
		if err := s.cityMap.Update(); err != nil {
			return fmt.Errorf("failed to update map: %v", err)
		}
	case s.inventory != nil:
		if err := s.inventory.Update(); err != nil {
			return fmt.Errorf("failed to update inventory: %v", err)
		}
	default:
		s.ui.Update()
	}

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}
	if err := objects.UpdateTree(s.hud); err != nil {
		return fmt.Errorf("failed to update HUD: %v", err)
	}

	s.CameraViewport.Follow(s.session.X(), s.screenWidth, WorldWidth)

	return nil
}

func (s *CityScene) handleInput() {
	if input.Inventory.JustPressed() {
		s.session.ToggleInventory()
	}
	if input.Map.JustPressed() {
		s.session.ToggleMap()
	}
	if input.Back.JustPressed() {
		if s.session.InventoryOpen() || s.session.MapOpen() {
			s.session.CloseOverlays()
		} else {
			s.session.QuitToMenu()
		}
	}
}

func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// HandleEvent reacts to events published by the session.
func (s *CityScene) HandleEvent(event interface{}) error {
	switch e := event.(type) {
	case types.RewardEvent:
		log.Trace("Reward for collectible %d", e.CollectibleID)
	case types.NPCChangedEvent:
		if e.NPC != nil {
			log.Debug("Talking to %s", e.NPC.Name)
		}
	case types.LevelUpEvent:
		return s.addEffect(fmt.Sprintf("Уровень %d!", e.Level), ui.ColorAccent)
	case types.TravelEvent:
		return s.addEffect("→ "+e.Location.Name, ui.ColorText)
	case types.OverlayChangedEvent:
		return s.handleOverlayChanged(e)
	case types.SkillUpgradedEvent:
		if s.inventory != nil {
			s.inventory.Refresh()
		}
	case types.LocationSelectedEvent:
		if s.cityMap != nil {
			s.cityMap.Refresh()
		}
	}
	return nil
}

func (s *CityScene) handleOverlayChanged(e types.OverlayChangedEvent) error {
	switch e.Overlay {
	case types.OverlayInventory:
		s.inventory = nil
		if e.Visible {
			s.inventory = NewInventoryOverlay(s.session)
		}
	case types.OverlayMap:
		s.cityMap = nil
		if e.Visible {
			overlay, err := NewMapOverlay(s.session)
			if err != nil {
				return fmt.Errorf("failed to create map overlay: %v", err)
			}
			s.cityMap = overlay
		}
	}
	return nil
}

func (s *CityScene) addEffect(text string, clr color.Color) error {
	id := fmt.Sprintf("effect-%s", uuid.New().String())
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   text,
		X:      s.session.X(),
		Y:      float64(s.screenHeight) - 240,
		Face:   fonts.TTFLargeFont,
		Color:  clr,
		Scroll: true,
		TTL:    2000,
		ZIndex: zIndexEffect,
	})
	if err := s.GetRoot().AddChild(id, effect); err != nil {
		return fmt.Errorf("failed to add text effect: %v", err)
	}
	return nil
}

func (s *CityScene) Draw(screen *ebiten.Image) {
	s.world.Clear()
	s.BaseScene.Draw(s.world)

	viewport := image.Rect(s.CameraViewport.X, s.CameraViewport.Y, s.CameraViewport.X+s.screenWidth, s.CameraViewport.Y+s.screenHeight)
	screen.DrawImage(s.world.SubImage(viewport).(*ebiten.Image), &ebiten.DrawImageOptions{})

	objects.DrawTree(s.hud, screen)

	if s.inventory != nil {
		s.inventory.Draw(screen)
	}
	if s.cityMap != nil {
		s.cityMap.Draw(screen)
	}
	if s.inventory == nil && s.cityMap == nil {
		s.ui.Draw(screen)
	}

	if s.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x: %0.0f camera: %d", s.session.X(), s.CameraViewport.X), 12, 120)
	}
}
