package catalog

import (
	"strings"
	"testing"
	"unicode"

	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_declaredOrder(t *testing.T) {
	c := Default()

	npcs := c.NPCs.All()
	require.Len(t, npcs, 3)
	assert.Equal(t, []float64{200, 520, 760}, []float64{npcs[0].X, npcs[1].X, npcs[2].X})

	collectibles := c.Collectibles.All()
	require.Len(t, collectibles, 3)
	assert.Equal(t, []int{10, 5, 15}, []int{collectibles[0].XP, collectibles[1].XP, collectibles[2].XP})

	assert.Equal(t, 8, c.Items.Len())
	assert.Equal(t, 8, c.Locations.Len())
	assert.Len(t, c.Roads(), 7)
}

func TestTable_Get(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		id     int
		want   string
		wantOK bool
	}{
		{name: "first npc", id: 1, want: "Боря", wantOK: true},
		{name: "last npc", id: 3, want: "Дядя Жора", wantOK: true},
		{name: "missing npc", id: 4, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			npc, ok := c.NPCs.Get(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, npc.Name)
		})
	}
}

func TestTable_AllReturnsCopy(t *testing.T) {
	c := Default()
	npcs := c.NPCs.All()
	npcs[0].X = 9999

	npc, ok := c.NPCs.Get(1)
	require.True(t, ok)
	assert.Equal(t, 200.0, npc.X)
}

func TestCatalog_Dialogue(t *testing.T) {
	c := Default()
	for _, npc := range c.NPCs.All() {
		line, ok := c.Dialogue(npc.ID)
		assert.True(t, ok, "npc %d should have a dialogue line", npc.ID)
		assert.NotEmpty(t, line)
	}
	line, _ := c.Dialogue(3)
	assert.Equal(t, "Стоять! Предъяви документы!", line)

	_, ok := c.Dialogue(42)
	assert.False(t, ok)
}

func TestCatalog_Skills(t *testing.T) {
	c := Default()
	skills := c.Skills()
	require.Len(t, skills, types.NumSkills)
	for i, s := range skills {
		assert.Equal(t, types.Skill(i), s.Skill)
	}

	info, ok := c.Skill(types.SkillStamina)
	require.True(t, ok)
	assert.Equal(t, "Выносливость", info.Label)
}

func TestCatalog_lockedLocations(t *testing.T) {
	c := Default()
	var locked []int
	for _, l := range c.Locations.All() {
		if !l.Status.Selectable() {
			locked = append(locked, l.ID)
		}
	}
	assert.Equal(t, []int{5}, locked)
}

func TestFormatMoney(t *testing.T) {
	got := FormatMoney(10500)

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, got)
	assert.Equal(t, "10500", digits)
	assert.True(t, strings.HasSuffix(got, "₽"))
	assert.NotContains(t, got, "10500", "thousands should be grouped")
}
