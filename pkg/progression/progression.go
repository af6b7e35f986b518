// Package progression applies experience, currency and skill changes to a
// player snapshot. Every function is pure: it takes a PlayerState and returns
// a new one.
package progression

import (
	"fmt"

	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
)

// GrantXP adds amount to the player's experience and resolves every level-up
// the overflow pays for. The returned state always satisfies XP < XPToNext.
func GrantXP(p types.PlayerState, amount int) types.PlayerState {
	if amount < 0 {
		panic(fmt.Sprintf("progression: negative xp grant %d", amount))
	}
	if p.XPToNext <= 0 {
		panic(fmt.Sprintf("progression: invalid xp threshold %d", p.XPToNext))
	}

	p.XP += amount
	for p.XP >= p.XPToNext {
		p.Level++
		p.XP -= p.XPToNext
		p.XPToNext = int(float64(p.XPToNext) * constants.XPGrowthFactor)
		p.MaxHitpoints += constants.HitpointsPerLevel
		p.Hitpoints = p.MaxHitpoints
	}
	return p
}

// LevelsGained returns how many levels separate two snapshots of the same player.
func LevelsGained(before, after types.PlayerState) int {
	return after.Level - before.Level
}

// GrantMoney adds amount to the player's currency.
func GrantMoney(p types.PlayerState, amount int) types.PlayerState {
	if amount < 0 {
		panic(fmt.Sprintf("progression: negative money grant %d", amount))
	}
	p.Money += amount
	return p
}

// rawFreePoints may be negative when ranks exceed what the level pays for.
func rawFreePoints(p types.PlayerState) int {
	return p.Level*constants.SkillPointsPerLevel - p.Skills.Total()
}

// FreePoints returns the number of skill points available to spend.
func FreePoints(p types.PlayerState) int {
	return max(0, rawFreePoints(p))
}

// UpgradeSkill raises the rank of skill by one if the player has a free point.
// The second return value is false when the call was a no-op.
// The rank cap is a presentation rule (see CanUpgrade) and is not enforced here.
func UpgradeSkill(p types.PlayerState, skill types.Skill) (types.PlayerState, bool) {
	if !skill.Valid() {
		panic(fmt.Sprintf("progression: unknown skill %d", skill))
	}
	if rawFreePoints(p) <= 0 {
		return p, false
	}
	p.Skills[skill]++
	return p, true
}

// CanUpgrade reports whether the UI should offer an upgrade for skill.
func CanUpgrade(p types.PlayerState, skill types.Skill) bool {
	if !skill.Valid() {
		return false
	}
	return FreePoints(p) > 0 && p.Skills[skill] < constants.SkillMaxRank
}
