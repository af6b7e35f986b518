package session

import (
	"testing"
	"time"

	mocks "github.com/cbodonnell/kvartal/mocks/github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/kinematic"
	"github.com/cbodonnell/kvartal/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

func newTestSession(t *testing.T) (*Session, *queue.InMemoryQueue) {
	q := queue.NewInMemoryQueue(1024)
	s, err := NewSession(NewSessionOptions{EventQueue: q})
	require.NoError(t, err)
	return s, q
}

func drain(t *testing.T, q queue.Queue) []interface{} {
	events, err := q.ReadAllMessages()
	require.NoError(t, err)
	return events
}

func walk(s *Session, in Input, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Tick(in, frame)
	}
}

func TestNewSessionRequiresQueue(t *testing.T) {
	_, err := NewSession(NewSessionOptions{})
	assert.Error(t, err)
}

func TestStart(t *testing.T) {
	s, q := newTestSession(t)
	assert.Equal(t, types.ScreenMenu, s.Screen())

	s.Start()
	assert.Equal(t, types.ScreenGame, s.Screen())
	assert.Equal(t, constants.PlayerStartingX, s.X())
	assert.Equal(t, kinematic.DirectionRight, s.Facing())
	assert.Equal(t, types.NewPlayerState(), s.Player())
	assert.Equal(t, []interface{}{types.ScreenChangedEvent{Screen: types.ScreenGame}}, drain(t, q))

	// already in game
	s.Start()
	assert.Empty(t, drain(t, q))
}

func TestTickOnMenuDoesNothing(t *testing.T) {
	s, q := newTestSession(t)
	walk(s, Input{Right: true}, 10)
	assert.Equal(t, constants.PlayerStartingX, s.X())
	assert.False(t, s.Walking())
	assert.Empty(t, drain(t, q))
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name       string
		start      float64
		in         Input
		ticks      int
		wantX      float64
		wantFacing kinematic.Direction
		wantWalk   bool
	}{
		{name: "right", start: 100, in: Input{Right: true}, ticks: 5, wantX: 120, wantFacing: kinematic.DirectionRight, wantWalk: true},
		{name: "left", start: 100, in: Input{Left: true}, ticks: 5, wantX: 80, wantFacing: kinematic.DirectionLeft, wantWalk: true},
		{name: "left clamps", start: 32, in: Input{Left: true}, ticks: 3, wantX: constants.StreetMinX, wantFacing: kinematic.DirectionLeft, wantWalk: true},
		{name: "right clamps", start: 1048, in: Input{Right: true}, ticks: 3, wantX: constants.StreetMaxX, wantFacing: kinematic.DirectionRight, wantWalk: true},
		{name: "both keys cancel", start: 100, in: Input{Left: true, Right: true}, ticks: 3, wantX: 100, wantFacing: kinematic.DirectionRight, wantWalk: true},
		{name: "idle", start: 100, in: Input{}, ticks: 3, wantX: 100, wantFacing: kinematic.DirectionRight, wantWalk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			s.Start()
			s.x = tt.start

			walk(s, tt.in, tt.ticks)

			assert.Equal(t, tt.wantX, s.X())
			assert.Equal(t, tt.wantFacing, s.Facing())
			assert.Equal(t, tt.wantWalk, s.Walking())
			if tt.wantWalk {
				assert.InDelta(t, float64(tt.ticks)*constants.WalkCycleStep, s.WalkCycle(), 1e-9)
			} else {
				assert.Zero(t, s.WalkCycle())
			}
		})
	}
}

func TestWalkingPastNPC(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	drain(t, q)

	// 100 + 13*4 = 152, inside the range of the NPC at 200
	walk(s, Input{Right: true}, 13)
	npc, dialogue := s.ActiveNPC()
	require.NotNil(t, npc)
	assert.Equal(t, 1, npc.ID)
	assert.NotEmpty(t, dialogue)

	events := drain(t, q)
	require.Len(t, events, 1)
	changed, ok := events[0].(types.NPCChangedEvent)
	require.True(t, ok)
	assert.Equal(t, 1, changed.NPC.ID)
	assert.Equal(t, dialogue, changed.Dialogue)

	// staying in range does not republish
	walk(s, Input{Right: true}, 5)
	assert.Empty(t, drain(t, q))

	// 152 + 25*4 = 252, out of range
	walk(s, Input{Right: true}, 20)
	npc, dialogue = s.ActiveNPC()
	assert.Nil(t, npc)
	assert.Empty(t, dialogue)
	assert.Equal(t, []interface{}{types.NPCChangedEvent{}}, drain(t, q))
}

func TestCollectingReward(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()

	// 100 + 53*4 = 312, inside the range of the collectible at 350
	walk(s, Input{Right: true}, 53)
	assert.True(t, s.Collected(1))

	player := s.Player()
	assert.Equal(t, 5500, player.Money)
	assert.Equal(t, 10, player.XP)
	assert.Equal(t, 1, player.Level)

	popup, ok := s.Popup()
	require.True(t, ok)
	assert.Equal(t, 1, popup.Reward.CollectibleID)
	assert.Equal(t, constants.RewardPopupTTL, popup.Remaining)

	var rewards []types.RewardEvent
	for _, e := range drain(t, q) {
		if r, ok := e.(types.RewardEvent); ok {
			rewards = append(rewards, r)
		}
	}
	assert.Equal(t, []types.RewardEvent{{
		CollectibleID: 1,
		XP:            10,
		Money:         constants.CollectibleMoney,
		TTL:           constants.RewardPopupTTL,
	}}, rewards)

	// walking over it again pays nothing
	walk(s, Input{Right: true}, 10)
	walk(s, Input{Left: true}, 10)
	assert.Equal(t, 5500, s.Player().Money)
	for _, e := range drain(t, q) {
		_, isReward := e.(types.RewardEvent)
		assert.False(t, isReward)
	}
}

func TestPopupExpires(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start()
	s.x = 350
	s.Tick(Input{}, frame)

	_, ok := s.Popup()
	require.True(t, ok)

	s.Tick(Input{}, time.Second)
	popup, ok := s.Popup()
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, popup.Remaining)

	s.Tick(Input{}, 500*time.Millisecond)
	_, ok = s.Popup()
	assert.False(t, ok)
}

func TestNewRewardReplacesPopup(t *testing.T) {
	c := startedSession(t)
	c.x = 350
	c.Tick(Input{}, frame)
	c.Tick(Input{}, time.Second)

	c.x = 620
	c.Tick(Input{}, frame)
	popup, ok := c.Popup()
	require.True(t, ok)
	assert.Equal(t, 2, popup.Reward.CollectibleID)
	assert.Equal(t, constants.RewardPopupTTL, popup.Remaining)
}

func startedSession(t *testing.T) *Session {
	s, _ := newTestSession(t)
	s.Start()
	return s
}

func TestLevelUpEvent(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	s.player.XP = 90
	drain(t, q)

	s.x = 880
	s.Tick(Input{}, frame)

	events := drain(t, q)
	require.Len(t, events, 2)
	assert.IsType(t, types.RewardEvent{}, events[0])
	assert.Equal(t, types.LevelUpEvent{Level: 2, MaxHitpoints: 110}, events[1])
	assert.Equal(t, 5, s.Player().XP)
	assert.Equal(t, 150, s.Player().XPToNext)
}

func TestOverlays(t *testing.T) {
	s, q := newTestSession(t)

	// ignored outside the game
	s.ToggleInventory()
	assert.False(t, s.InventoryOpen())

	s.Start()
	drain(t, q)

	s.ToggleInventory()
	assert.True(t, s.InventoryOpen())
	assert.Equal(t, []interface{}{types.OverlayChangedEvent{Overlay: types.OverlayInventory, Visible: true}}, drain(t, q))

	// movement is suspended behind an overlay
	walk(s, Input{Right: true}, 5)
	assert.Equal(t, constants.PlayerStartingX, s.X())
	assert.False(t, s.Walking())

	s.ToggleMap()
	assert.True(t, s.MapOpen())

	s.CloseOverlays()
	assert.False(t, s.InventoryOpen())
	assert.False(t, s.MapOpen())
	assert.Len(t, drain(t, q), 3)

	walk(s, Input{Right: true}, 5)
	assert.Equal(t, 120.0, s.X())
}

func TestOverlayCancelsPopup(t *testing.T) {
	s := startedSession(t)
	s.x = 350
	s.Tick(Input{}, frame)
	_, ok := s.Popup()
	require.True(t, ok)

	s.ToggleMap()
	_, ok = s.Popup()
	assert.False(t, ok)
}

func TestQuitToMenu(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	s.x = 350
	s.Tick(Input{}, frame)
	s.ToggleInventory()
	drain(t, q)

	s.QuitToMenu()
	assert.Equal(t, types.ScreenMenu, s.Screen())
	assert.False(t, s.InventoryOpen())
	_, ok := s.Popup()
	assert.False(t, ok)
	assert.Equal(t, []interface{}{
		types.OverlayChangedEvent{Overlay: types.OverlayInventory, Visible: false},
		types.ScreenChangedEvent{Screen: types.ScreenMenu},
	}, drain(t, q))

	// a new game starts from scratch
	s.Start()
	assert.Equal(t, constants.PlayerStartingX, s.X())
	assert.False(t, s.Collected(1))
	assert.Equal(t, types.NewPlayerState(), s.Player())
}

func TestUpgradeSkill(t *testing.T) {
	s, q := newTestSession(t)
	s.Start()
	drain(t, q)

	// the starting ranks already exceed the level 1 allowance
	assert.False(t, s.UpgradeSkill(types.SkillAgility))
	assert.Empty(t, drain(t, q))

	s.player.Level = 4 // 12 points, 8 spent
	assert.True(t, s.UpgradeSkill(types.SkillAgility))
	assert.Equal(t, 2, s.Player().Skills[types.SkillAgility])
	assert.Equal(t, []interface{}{types.SkillUpgradedEvent{Skill: types.SkillAgility, Rank: 2}}, drain(t, q))

	s.player.Skills[types.SkillShooting] = constants.SkillMaxRank
	assert.False(t, s.UpgradeSkill(types.SkillShooting))
	assert.Equal(t, constants.SkillMaxRank, s.Player().Skills[types.SkillShooting])
}

func TestSelectLocationAndTravel(t *testing.T) {
	s, q := newTestSession(t)
	assert.ErrorIs(t, s.SelectLocation(1), ErrNotInGame)

	s.Start()
	s.ToggleMap()
	drain(t, q)

	assert.ErrorIs(t, s.Travel(), ErrNoLocation)
	assert.ErrorIs(t, s.SelectLocation(5), ErrLocationLocked)
	assert.ErrorIs(t, s.SelectLocation(99), ErrUnknownLocation)
	_, ok := s.SelectedLocation()
	assert.False(t, ok)

	require.NoError(t, s.SelectLocation(3))
	selected, ok := s.SelectedLocation()
	require.True(t, ok)
	assert.Equal(t, "Полицейский участок", selected.Name)

	require.NoError(t, s.Travel())
	assert.False(t, s.MapOpen())
	_, ok = s.SelectedLocation()
	assert.False(t, ok)

	assert.Equal(t, []interface{}{
		types.LocationSelectedEvent{Location: selected},
		types.TravelEvent{Location: selected},
		types.OverlayChangedEvent{Overlay: types.OverlayMap, Visible: false},
	}, drain(t, q))
}

func TestClosingMapClearsSelection(t *testing.T) {
	s := startedSession(t)
	s.ToggleMap()
	require.NoError(t, s.SelectLocation(1))
	s.ToggleMap()
	_, ok := s.SelectedLocation()
	assert.False(t, ok)
}

func TestPublishWithMockQueue(t *testing.T) {
	mockQueue := mocks.NewQueue(t)
	mockQueue.EXPECT().Enqueue(types.ScreenChangedEvent{Screen: types.ScreenGame}).Return(nil).Once()

	s, err := NewSession(NewSessionOptions{EventQueue: mockQueue})
	require.NoError(t, err)
	s.Start()
}

func TestPublishFailureIsNotFatal(t *testing.T) {
	mockQueue := mocks.NewQueue(t)
	mockQueue.EXPECT().Enqueue(types.ScreenChangedEvent{Screen: types.ScreenGame}).Return(queue.ErrFull).Once()
	mockQueue.EXPECT().Enqueue(types.OverlayChangedEvent{Overlay: types.OverlayInventory, Visible: true}).Return(queue.ErrFull).Once()

	s, err := NewSession(NewSessionOptions{EventQueue: mockQueue})
	require.NoError(t, err)
	s.Start()
	s.ToggleInventory()

	assert.Equal(t, types.ScreenGame, s.Screen())
	assert.True(t, s.InventoryOpen())
}
