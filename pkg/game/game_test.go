package game

import (
	"context"
	"testing"
	"time"

	mocks "github.com/cbodonnell/kvartal/mocks/github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/kinematic"
	"github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, commands queue.Queue) (*GameManager, *session.Session, *[]interface{}) {
	events := queue.NewInMemoryQueue(1024)
	s, err := session.NewSession(session.NewSessionOptions{EventQueue: events})
	require.NoError(t, err)

	var received []interface{}
	gm := NewGameManager(NewGameManagerOptions{
		Session:          s,
		CommandQueue:     commands,
		EventQueue:       events,
		GameLoopInterval: 16 * time.Millisecond,
		OnEvent: func(event interface{}) {
			received = append(received, event)
		},
	})
	return gm, s, &received
}

func TestGameManager_processCommands(t *testing.T) {
	mockQueue := mocks.NewQueue(t)

	tests := []struct {
		name     string
		commands []interface{}
		wantX    float64
		wantInv  bool
		wantMap  bool
		wantQuit bool
	}{
		{
			name:     "right steps once per tick",
			commands: []interface{}{MoveCommand{Direction: kinematic.DirectionRight}, MoveCommand{Direction: kinematic.DirectionRight}},
			wantX:    constants.PlayerStartingX + constants.PlayerStep,
		},
		{
			name:     "left and right cancel",
			commands: []interface{}{MoveCommand{Direction: kinematic.DirectionLeft}, MoveCommand{Direction: kinematic.DirectionRight}},
			wantX:    constants.PlayerStartingX,
		},
		{
			name:     "overlay blocks movement",
			commands: []interface{}{ToggleOverlayCommand{Overlay: types.OverlayInventory}, MoveCommand{Direction: kinematic.DirectionRight}},
			wantX:    constants.PlayerStartingX,
			wantInv:  true,
		},
		{
			name:     "escape closes overlays",
			commands: []interface{}{ToggleOverlayCommand{Overlay: types.OverlayMap}, ToggleOverlayCommand{Overlay: types.OverlayInventory}, EscapeCommand{}},
			wantX:    constants.PlayerStartingX,
		},
		{
			name:     "quit",
			commands: []interface{}{QuitCommand{}},
			wantX:    constants.PlayerStartingX,
			wantQuit: true,
		},
		{
			name:     "unknown commands are skipped",
			commands: []interface{}{"jump"},
			wantX:    constants.PlayerStartingX,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gm, s, _ := newTestManager(t, mockQueue)
			s.Start()
			mockQueue.EXPECT().ReadAllMessages().Return(tt.commands, nil).Once()

			err := gm.gameTick()
			if tt.wantQuit {
				assert.ErrorIs(t, err, errQuit)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantX, s.X())
			assert.Equal(t, tt.wantInv, s.InventoryOpen())
			assert.Equal(t, tt.wantMap, s.MapOpen())
		})
	}
}

func TestGameManager_forwardsEvents(t *testing.T) {
	commands := queue.NewInMemoryQueue(16)
	gm, s, received := newTestManager(t, commands)

	require.NoError(t, commands.Enqueue(StartCommand{}))
	require.NoError(t, gm.gameTick())
	assert.Equal(t, types.ScreenGame, s.Screen())
	assert.Equal(t, []interface{}{types.ScreenChangedEvent{Screen: types.ScreenGame}}, *received)

	*received = nil
	require.NoError(t, commands.Enqueue(ToggleOverlayCommand{Overlay: types.OverlayMap}))
	require.NoError(t, commands.Enqueue(SelectLocationCommand{LocationID: 5}))
	require.NoError(t, commands.Enqueue(SelectLocationCommand{LocationID: 7}))
	require.NoError(t, commands.Enqueue(TravelCommand{}))
	require.NoError(t, gm.gameTick())

	bank, ok := s.Catalog().Locations.Get(7)
	require.True(t, ok)
	assert.Equal(t, []interface{}{
		types.OverlayChangedEvent{Overlay: types.OverlayMap, Visible: true},
		types.LocationSelectedEvent{Location: bank},
		types.TravelEvent{Location: bank},
		types.OverlayChangedEvent{Overlay: types.OverlayMap, Visible: false},
	}, *received)

	*received = nil
	require.NoError(t, commands.Enqueue(EscapeCommand{}))
	require.NoError(t, gm.gameTick())
	assert.Equal(t, types.ScreenMenu, s.Screen())
	assert.Equal(t, []interface{}{types.ScreenChangedEvent{Screen: types.ScreenMenu}}, *received)
}

func TestGameManager_Start(t *testing.T) {
	t.Run("stops on quit", func(t *testing.T) {
		commands := queue.NewInMemoryQueue(16)
		gm, _, _ := newTestManager(t, commands)
		require.NoError(t, commands.Enqueue(QuitCommand{}))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, gm.Start(ctx))
		assert.NoError(t, ctx.Err())
	})

	t.Run("stops on cancel", func(t *testing.T) {
		gm, _, _ := newTestManager(t, queue.NewInMemoryQueue(16))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.NoError(t, gm.Start(ctx))
	})

	t.Run("rejects zero interval", func(t *testing.T) {
		gm, _, _ := newTestManager(t, queue.NewInMemoryQueue(16))
		gm.gameLoopInterval = 0
		assert.Error(t, gm.Start(context.Background()))
	})
}

func TestGameManager_choose(t *testing.T) {
	commands := queue.NewInMemoryQueue(16)
	gm, s, _ := newTestManager(t, commands)
	s.Start()

	require.NoError(t, commands.Enqueue(ChooseCommand{Index: 7}))
	require.NoError(t, gm.gameTick())
	_, ok := s.SelectedLocation()
	assert.False(t, ok, "nothing is chosen without an open overlay")

	require.NoError(t, commands.Enqueue(ToggleOverlayCommand{Overlay: types.OverlayMap}))
	require.NoError(t, commands.Enqueue(ChooseCommand{Index: 7}))
	require.NoError(t, gm.gameTick())
	selected, ok := s.SelectedLocation()
	require.True(t, ok)
	assert.Equal(t, 7, selected.ID)

	require.NoError(t, commands.Enqueue(ChooseCommand{Index: 5}))
	require.NoError(t, gm.gameTick())
	selected, _ = s.SelectedLocation()
	assert.Equal(t, 7, selected.ID, "locked locations are not selectable")

	before := s.Player().Skills
	require.NoError(t, commands.Enqueue(ToggleOverlayCommand{Overlay: types.OverlayMap}))
	require.NoError(t, commands.Enqueue(ToggleOverlayCommand{Overlay: types.OverlayInventory}))
	require.NoError(t, commands.Enqueue(ChooseCommand{Index: 0}))
	require.NoError(t, commands.Enqueue(ChooseCommand{Index: 9}))
	require.NoError(t, gm.gameTick())
	assert.Equal(t, before, s.Player().Skills)
}
