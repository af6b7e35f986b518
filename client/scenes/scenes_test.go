package scenes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cbodonnell/kvartal/client/ui"
	"github.com/cbodonnell/kvartal/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		view  int
		world int
		want  int
	}{
		{name: "left edge", x: 100, view: 960, world: 1080, want: 0},
		{name: "centered", x: 540, view: 960, world: 1080, want: 60},
		{name: "right edge", x: 1050, view: 960, world: 1080, want: 120},
		{name: "view wider than world", x: 500, view: 1280, world: 1080, want: 0},
		{name: "narrow view", x: 700, view: 640, world: 1080, want: 380},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CameraViewport{}
			c.Follow(tt.x, tt.view, tt.world)
			assert.Equal(t, tt.want, c.X)
		})
	}
}

func TestEmptySlots(t *testing.T) {
	assert.Equal(t, 8, emptySlots(8))
	assert.Equal(t, 3, emptySlots(5))
	assert.Equal(t, 8, emptySlots(0))
	assert.Equal(t, 7, emptySlots(9))
}

func TestSkillPips(t *testing.T) {
	assert.Equal(t, "■■□□□□□□□□", skillPips(2))
	assert.Equal(t, "□□□□□□□□□□", skillPips(-1))
	assert.Equal(t, "■■■■■■■■■■", skillPips(12))
}

func TestLocationError(t *testing.T) {
	locked := locationError(fmt.Errorf("%w: Заброшенный завод", session.ErrLocationLocked))
	assert.Equal(t, "Локация закрыта", ui.MessageFor(locked, "fallback"))

	none := locationError(session.ErrNoLocation)
	assert.Equal(t, "Выбери локацию на карте", ui.MessageFor(none, "fallback"))

	other := locationError(errors.New("boom"))
	assert.Equal(t, "fallback", ui.MessageFor(other, "fallback"))
}

type recordingScene struct {
	*BaseScene
	events []interface{}
	err    error
}

func (s *recordingScene) HandleEvent(event interface{}) error {
	s.events = append(s.events, event)
	return s.err
}

func TestDispatch(t *testing.T) {
	plain := NewBaseScene("plain")
	handled, err := Dispatch(plain, "reward")
	assert.False(t, handled)
	assert.NoError(t, err)

	rec := &recordingScene{BaseScene: NewBaseScene("rec")}
	handled, err = Dispatch(rec, "reward")
	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{"reward"}, rec.events)

	rec.err = errors.New("broken")
	handled, err = Dispatch(rec, "travel")
	assert.True(t, handled)
	assert.EqualError(t, err, "broken")
}
