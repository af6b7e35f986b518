package terminal

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/kvartal/pkg/catalog"
	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/progression"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/cbodonnell/kvartal/pkg/version"
	"github.com/gdamore/tcell/v2"
)

const (
	barWidth = 10
	// statusFrames is how many frames a status line stays up.
	statusFrames = 120
)

var (
	styleDefault = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAccent  = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleRed     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGreen   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePanel   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// Renderer draws a session onto a terminal screen.
type Renderer struct {
	screen  tcell.Screen
	session *session.Session

	status       string
	statusFrames int
}

func NewRenderer(screen tcell.Screen, s *session.Session) *Renderer {
	return &Renderer{
		screen:  screen,
		session: s,
	}
}

// HandleEvent updates the status line from a session event.
func (r *Renderer) HandleEvent(event interface{}) {
	switch e := event.(type) {
	case types.LevelUpEvent:
		r.setStatus(fmt.Sprintf("Новый уровень %d! Макс. HP %d", e.Level, e.MaxHitpoints))
	case types.TravelEvent:
		r.setStatus(fmt.Sprintf("Переход: %s", e.Location.Name))
	case types.SkillUpgradedEvent:
		if info, ok := r.session.Catalog().Skill(e.Skill); ok {
			r.setStatus(fmt.Sprintf("%s: %d", info.Label, e.Rank))
		}
	case types.ScreenChangedEvent:
		r.status = ""
		r.statusFrames = 0
	}
}

func (r *Renderer) setStatus(status string) {
	r.status = status
	r.statusFrames = statusFrames
}

// Draw renders one frame.
func (r *Renderer) Draw() {
	r.screen.Clear()
	switch r.session.Screen() {
	case types.ScreenMenu:
		r.drawMenu()
	case types.ScreenGame:
		r.drawCity()
	}
	r.screen.Show()

	if r.statusFrames > 0 {
		r.statusFrames--
		if r.statusFrames == 0 {
			r.status = ""
		}
	}
}

func (r *Renderer) drawMenu() {
	w, h := r.screen.Size()
	top := h/2 - 4
	drawCentered(r.screen, top, w, "BLACK RUSSIA", styleAccent)
	drawCentered(r.screen, top+1, w, "2D Edition", styleDim)
	drawCentered(r.screen, top+3, w, "Enter — новая игра", styleDefault)
	drawCentered(r.screen, top+4, w, "Q — выйти", styleDefault)
	drawCentered(r.screen, h-1, w, "v"+version.Get()+" ALPHA", styleDim)
}

func (r *Renderer) drawCity() {
	w, h := r.screen.Size()
	r.drawHUD(w)

	if r.status != "" {
		drawText(r.screen, 0, 1, r.status, styleAccent)
	}
	if npc, line := r.session.ActiveNPC(); npc != nil {
		drawText(r.screen, 0, 2, fmt.Sprintf("%s (%s): %s", npc.Name, npc.Role, line), styleDefault)
	}
	if popup, ok := r.session.Popup(); ok {
		drawText(r.screen, 0, 3, fmt.Sprintf("+%d XP  +%s", popup.Reward.XP, catalog.FormatMoney(popup.Reward.Money)), styleGreen)
	}

	r.drawStreet(w, h)

	if r.session.InventoryOpen() {
		r.drawInventory(w, h)
	}
	if r.session.MapOpen() {
		r.drawMap(w, h)
	}

	drawText(r.screen, 0, h-1, "←/→ идти  I инвентарь  M карта  Esc назад  Q выход", styleDim)
}

func (r *Renderer) drawHUD(w int) {
	p := r.session.Player()
	hud := fmt.Sprintf("%s  ур.%d  HP %d/%d  XP %s %d/%d  %s",
		p.Name, p.Level,
		p.Hitpoints, p.MaxHitpoints,
		bar(p.XPPercent(), barWidth), p.XP, p.XPToNext,
		catalog.FormatMoney(p.Money),
	)
	drawText(r.screen, 0, 0, hud, styleDefault)
}

func (r *Renderer) drawStreet(w, h int) {
	row := h - 4
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, row+1, '═', nil, styleDim)
	}

	c := r.session.Catalog()
	for _, item := range c.CollectibleList() {
		if r.session.Collected(item.ID) {
			continue
		}
		drawText(r.screen, StreetColumn(item.X, w), row, item.Glyph, styleAccent)
	}

	active, _ := r.session.ActiveNPC()
	for _, npc := range c.NPCList() {
		style := styleDefault
		if active != nil && active.ID == npc.ID {
			style = styleGreen
		}
		drawText(r.screen, StreetColumn(npc.X, w), row, npc.Glyph, style)
	}

	player := '@'
	if r.session.Walking() && int(r.session.WalkCycle())%2 == 1 {
		player = '&'
	}
	r.screen.SetContent(StreetColumn(r.session.X(), w), row, player, nil, styleRed)
}

func (r *Renderer) drawInventory(w, h int) {
	x, y := panel(r.screen, w, h)
	c := r.session.Catalog()
	p := r.session.Player()

	drawText(r.screen, x, y, "Инвентарь", styleAccent)
	y += 2
	for _, item := range c.Items.All() {
		line := fmt.Sprintf("%s %-22s %-10s %.1f кг", item.Glyph, item.Name, item.Type.Label(), item.Weight)
		drawText(r.screen, x, y, line, tcell.StyleDefault.Foreground(tcell.FromImageColor(item.Rarity.Color())))
		y++
	}

	y++
	drawText(r.screen, x, y, fmt.Sprintf("Навыки (%d очков)", progression.FreePoints(p)), styleAccent)
	y++
	for i, info := range c.Skills() {
		line := fmt.Sprintf("%d %-13s %s", i+1, info.Label, Pips(p.Skills[info.Skill]))
		if progression.CanUpgrade(p, info.Skill) {
			line += "  +"
		}
		drawText(r.screen, x, y, line, styleDefault)
		y++
	}
}

func (r *Renderer) drawMap(w, h int) {
	x, y := panel(r.screen, w, h)
	selected, hasSelection := r.session.SelectedLocation()

	drawText(r.screen, x, y, "Карта города", styleAccent)
	y += 2
	for _, location := range r.session.Catalog().Locations.All() {
		marker := " "
		if hasSelection && selected.ID == location.ID {
			marker = ">"
		}
		line := fmt.Sprintf("%s%d %s %s", marker, location.ID, location.Glyph, location.Name)
		style := styleDefault
		if !location.Status.Selectable() {
			line += " (закрыто)"
			style = styleDim
		} else if location.Status == types.LocationStatusDanger {
			style = styleRed
		}
		drawText(r.screen, x, y, line, style)
		y++
	}

	y++
	if hasSelection {
		drawText(r.screen, x, y, selected.Description, styleDim)
		drawText(r.screen, x, y+1, "T — переместиться", styleGreen)
	} else {
		drawText(r.screen, x, y, "Выбери локацию цифрой", styleDim)
	}
}

// StreetColumn maps a street position to a terminal column in [0, width).
func StreetColumn(x float64, width int) int {
	if width <= 1 {
		return 0
	}
	col := int(x / constants.StreetWidth * float64(width-1))
	if col < 0 {
		return 0
	}
	if col > width-1 {
		return width - 1
	}
	return col
}

// Pips renders a skill rank as filled and empty squares.
func Pips(rank int) string {
	if rank < 0 {
		rank = 0
	}
	if rank > constants.SkillMaxRank {
		rank = constants.SkillMaxRank
	}
	return strings.Repeat("■", rank) + strings.Repeat("□", constants.SkillMaxRank-rank)
}

func bar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// panel clears the overlay area and returns the top-left corner for its contents.
func panel(screen tcell.Screen, w, h int) (int, int) {
	left, top := 2, 2
	right, bottom := w-3, h-6
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			screen.SetContent(x, y, ' ', nil, stylePanel)
		}
	}
	return left + 2, top + 1
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func drawCentered(screen tcell.Screen, y, w int, s string, style tcell.Style) {
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, s, style)
}
