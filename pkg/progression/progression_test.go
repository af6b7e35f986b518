package progression

import (
	"testing"

	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestGrantXP(t *testing.T) {
	type args struct {
		state  types.PlayerState
		amount int
	}
	tests := []struct {
		name string
		args args
		want types.PlayerState
	}{
		{
			name: "no level-up",
			args: args{
				state:  types.PlayerState{Level: 1, XP: 0, XPToNext: 100, Hitpoints: 80, MaxHitpoints: 100},
				amount: 10,
			},
			want: types.PlayerState{Level: 1, XP: 10, XPToNext: 100, Hitpoints: 80, MaxHitpoints: 100},
		},
		{
			name: "exact threshold",
			args: args{
				state:  types.PlayerState{Level: 1, XP: 0, XPToNext: 100, Hitpoints: 80, MaxHitpoints: 100},
				amount: 100,
			},
			want: types.PlayerState{Level: 2, XP: 0, XPToNext: 150, Hitpoints: 110, MaxHitpoints: 110},
		},
		{
			name: "overflow carries into the next level",
			args: args{
				state:  types.PlayerState{Level: 1, XP: 90, XPToNext: 100, Hitpoints: 80, MaxHitpoints: 100},
				amount: 30,
			},
			want: types.PlayerState{Level: 2, XP: 20, XPToNext: 150, Hitpoints: 110, MaxHitpoints: 110},
		},
		{
			name: "several level-ups in one grant",
			args: args{
				state:  types.PlayerState{Level: 1, XP: 0, XPToNext: 100, Hitpoints: 80, MaxHitpoints: 100},
				amount: 100 + 150 + 5,
			},
			want: types.PlayerState{Level: 3, XP: 5, XPToNext: 225, Hitpoints: 120, MaxHitpoints: 120},
		},
		{
			name: "threshold is truncated",
			args: args{
				state:  types.PlayerState{Level: 3, XP: 0, XPToNext: 225, Hitpoints: 1, MaxHitpoints: 120},
				amount: 225,
			},
			want: types.PlayerState{Level: 4, XP: 0, XPToNext: 337, Hitpoints: 130, MaxHitpoints: 130},
		},
		{
			name: "zero grant",
			args: args{
				state:  types.PlayerState{Level: 2, XP: 149, XPToNext: 150, Hitpoints: 5, MaxHitpoints: 110},
				amount: 0,
			},
			want: types.PlayerState{Level: 2, XP: 149, XPToNext: 150, Hitpoints: 5, MaxHitpoints: 110},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrantXP(tt.args.state, tt.args.amount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrantXP_resolvesOverflow(t *testing.T) {
	for _, amount := range []int{0, 1, 99, 100, 101, 249, 250, 1000, 12345, 1 << 20} {
		state := types.NewPlayerState()
		got := GrantXP(state, amount)
		assert.Less(t, got.XP, got.XPToNext, "grant %d", amount)
		assert.GreaterOrEqual(t, got.XP, 0, "grant %d", amount)
		assert.Equal(t, got.MaxHitpoints, state.MaxHitpoints+10*LevelsGained(state, got), "grant %d", amount)
		if LevelsGained(state, got) > 0 {
			assert.Equal(t, got.MaxHitpoints, got.Hitpoints, "grant %d", amount)
		}
	}
}

func TestGrantXP_doesNotMutateInput(t *testing.T) {
	state := types.NewPlayerState()
	_ = GrantXP(state, 500)
	assert.Equal(t, types.NewPlayerState(), state)
}

func TestGrantXP_negativePanics(t *testing.T) {
	assert.Panics(t, func() {
		GrantXP(types.NewPlayerState(), -1)
	})
}

func TestGrantMoney(t *testing.T) {
	got := GrantMoney(types.NewPlayerState(), 500)
	assert.Equal(t, 5500, got.Money)
	assert.Panics(t, func() {
		GrantMoney(got, -500)
	})
}

func TestFreePoints(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		skills types.SkillRanks
		want   int
	}{
		{name: "all spent", level: 1, skills: types.SkillRanks{1, 1, 1}, want: 0},
		{name: "one free", level: 1, skills: types.SkillRanks{1, 1}, want: 1},
		{name: "overspent clamps to zero", level: 1, skills: types.SkillRanks{2, 1, 1, 1, 1, 2}, want: 0},
		{name: "level three", level: 3, skills: types.SkillRanks{2, 1, 1, 1, 1, 2}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreePoints(types.PlayerState{Level: tt.level, Skills: tt.skills})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpgradeSkill(t *testing.T) {
	tests := []struct {
		name      string
		state     types.PlayerState
		skill     types.Skill
		want      types.SkillRanks
		wantApply bool
	}{
		{
			name:      "free point is spent",
			state:     types.PlayerState{Level: 1, Skills: types.SkillRanks{1, 1}},
			skill:     types.SkillCharisma,
			want:      types.SkillRanks{1, 1, 0, 1},
			wantApply: true,
		},
		{
			name:      "no free points is a no-op",
			state:     types.PlayerState{Level: 1, Skills: types.SkillRanks{1, 1, 1}},
			skill:     types.SkillStrength,
			want:      types.SkillRanks{1, 1, 1},
			wantApply: false,
		},
		{
			name:      "starting player cannot upgrade",
			state:     types.NewPlayerState(),
			skill:     types.SkillAgility,
			want:      types.NewPlayerState().Skills,
			wantApply: false,
		},
		{
			name:      "model does not enforce the rank cap",
			state:     types.PlayerState{Level: 5, Skills: types.SkillRanks{10}},
			skill:     types.SkillStrength,
			want:      types.SkillRanks{11},
			wantApply: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := UpgradeSkill(tt.state, tt.skill)
			assert.Equal(t, tt.wantApply, applied)
			assert.Equal(t, tt.want, got.Skills)
		})
	}
}

func TestUpgradeSkill_repeatedCallsStopAtZero(t *testing.T) {
	state := types.PlayerState{Level: 1}
	for i := 0; i < 5; i++ {
		state, _ = UpgradeSkill(state, types.SkillShooting)
	}
	assert.Equal(t, 3, state.Skills[types.SkillShooting])
	assert.Equal(t, 0, FreePoints(state))

	again, applied := UpgradeSkill(state, types.SkillShooting)
	assert.False(t, applied)
	assert.Equal(t, state, again)
}

func TestUpgradeSkill_unknownSkillPanics(t *testing.T) {
	assert.Panics(t, func() {
		UpgradeSkill(types.PlayerState{Level: 9}, types.Skill(types.NumSkills))
	})
}

func TestCanUpgrade(t *testing.T) {
	state := types.PlayerState{Level: 5, Skills: types.SkillRanks{10, 1}}
	assert.False(t, CanUpgrade(state, types.SkillStrength), "capped skill")
	assert.True(t, CanUpgrade(state, types.SkillAgility))
	assert.False(t, CanUpgrade(types.NewPlayerState(), types.SkillAgility), "no free points")
	assert.False(t, CanUpgrade(state, types.Skill(200)))
}
