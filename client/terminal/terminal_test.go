package terminal

import (
	"strings"
	"testing"

	"github.com/cbodonnell/kvartal/pkg/game"
	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/kinematic"
	"github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		want   interface{}
		wantOK bool
	}{
		{name: "left arrow", key: tcell.KeyLeft, want: game.MoveCommand{Direction: kinematic.DirectionLeft}, wantOK: true},
		{name: "right arrow", key: tcell.KeyRight, want: game.MoveCommand{Direction: kinematic.DirectionRight}, wantOK: true},
		{name: "a", key: tcell.KeyRune, r: 'a', want: game.MoveCommand{Direction: kinematic.DirectionLeft}, wantOK: true},
		{name: "cyrillic d", key: tcell.KeyRune, r: 'в', want: game.MoveCommand{Direction: kinematic.DirectionRight}, wantOK: true},
		{name: "inventory", key: tcell.KeyRune, r: 'I', want: game.ToggleOverlayCommand{Overlay: types.OverlayInventory}, wantOK: true},
		{name: "map", key: tcell.KeyRune, r: 'm', want: game.ToggleOverlayCommand{Overlay: types.OverlayMap}, wantOK: true},
		{name: "escape", key: tcell.KeyEscape, want: game.EscapeCommand{}, wantOK: true},
		{name: "enter", key: tcell.KeyEnter, want: game.StartCommand{}, wantOK: true},
		{name: "travel", key: tcell.KeyRune, r: 't', want: game.TravelCommand{}, wantOK: true},
		{name: "digit", key: tcell.KeyRune, r: '7', want: game.ChooseCommand{Index: 7}, wantOK: true},
		{name: "zero is unbound", key: tcell.KeyRune, r: '0'},
		{name: "quit", key: tcell.KeyRune, r: 'q', want: game.QuitCommand{}, wantOK: true},
		{name: "ctrl-c", key: tcell.KeyCtrlC, want: game.QuitCommand{}, wantOK: true},
		{name: "unbound", key: tcell.KeyRune, r: 'z'},
		{name: "unbound key", key: tcell.KeyF5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CommandForKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStreetColumn(t *testing.T) {
	tests := []struct {
		x     float64
		width int
		want  int
	}{
		{x: 0, width: 81, want: 0},
		{x: constants.StreetWidth / 2, width: 81, want: 40},
		{x: constants.StreetWidth, width: 81, want: 80},
		{x: -10, width: 81, want: 0},
		{x: constants.StreetWidth * 2, width: 81, want: 80},
		{x: 500, width: 1, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StreetColumn(tt.x, tt.width), "x=%v width=%d", tt.x, tt.width)
	}
}

func TestPips(t *testing.T) {
	assert.Equal(t, "■■□□□□□□□□", Pips(2))
	assert.Equal(t, "□□□□□□□□□□", Pips(-1))
	assert.Equal(t, "■■■■■■■■■■", Pips(12))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "[#####-----]", bar(0.5, 10))
	assert.Equal(t, "[----------]", bar(-1, 10))
	assert.Equal(t, "[##########]", bar(2, 10))
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, h := screen.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(screen, y)
	}
	return strings.Join(rows, "\n")
}

func newTestRenderer(t *testing.T) (*Renderer, *session.Session, tcell.SimulationScreen) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)

	s, err := session.NewSession(session.NewSessionOptions{EventQueue: queue.NewInMemoryQueue(1024)})
	require.NoError(t, err)
	return NewRenderer(screen, s), s, screen
}

func TestRenderer_Draw(t *testing.T) {
	r, s, screen := newTestRenderer(t)

	r.Draw()
	assert.Contains(t, screenText(screen), "BLACK RUSSIA")

	s.Start()
	r.Draw()
	assert.Contains(t, rowText(screen, 0), "Малыш")
	_, h := screen.Size()
	w, _ := screen.Size()
	col := StreetColumn(constants.PlayerStartingX, w)
	got, _, _, _ := screen.GetContent(col, h-4)
	assert.Equal(t, '@', got)

	s.ToggleMap()
	require.NoError(t, s.SelectLocation(7))
	r.Draw()
	text := screenText(screen)
	assert.Contains(t, text, "Карта города")
	assert.Contains(t, text, ">7")
	assert.Contains(t, text, "(закрыто)")
	assert.Contains(t, text, "T — переместиться")
}

func TestRenderer_status(t *testing.T) {
	r, s, screen := newTestRenderer(t)
	s.Start()

	r.HandleEvent(types.LevelUpEvent{Level: 2, MaxHitpoints: 110})
	r.Draw()
	assert.Contains(t, rowText(screen, 1), "Новый уровень 2")

	for i := 0; i < statusFrames; i++ {
		r.Draw()
	}
	r.Draw()
	assert.NotContains(t, rowText(screen, 1), "Новый уровень")
}
