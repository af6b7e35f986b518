package types

import "fmt"

// Skill identifies one of the fixed player skills.
type Skill uint8

const (
	SkillStrength Skill = iota
	SkillAgility
	SkillShooting
	SkillCharisma
	SkillIntellect
	SkillStamina
)

// NumSkills is the size of the fixed skill set.
const NumSkills = 6

var skillKeys = [NumSkills]string{
	SkillStrength:  "strength",
	SkillAgility:   "agility",
	SkillShooting:  "shooting",
	SkillCharisma:  "charisma",
	SkillIntellect: "intellect",
	SkillStamina:   "stamina",
}

func (s Skill) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return skillKeys[s]
}

// Valid reports whether s belongs to the fixed skill set.
func (s Skill) Valid() bool {
	return int(s) < NumSkills
}

// ParseSkill returns the skill with the given key.
func ParseSkill(key string) (Skill, error) {
	for i, k := range skillKeys {
		if k == key {
			return Skill(i), nil
		}
	}
	return 0, fmt.Errorf("unknown skill: %s", key)
}

// AllSkills returns the skills in display order.
func AllSkills() []Skill {
	skills := make([]Skill, NumSkills)
	for i := range skills {
		skills[i] = Skill(i)
	}
	return skills
}

// SkillRanks holds the rank of every skill, indexed by Skill.
type SkillRanks [NumSkills]int

// Total returns the sum of all ranks.
func (r SkillRanks) Total() int {
	total := 0
	for _, rank := range r {
		total += rank
	}
	return total
}

// PlayerState is an immutable snapshot of the player's progression.
// Operations that change it return a new value.
type PlayerState struct {
	Name         string
	Level        int
	XP           int
	XPToNext     int
	Hitpoints    int
	MaxHitpoints int
	Money        int
	Skills       SkillRanks
}

// NewPlayerState returns the player as they start a new game.
func NewPlayerState() PlayerState {
	return PlayerState{
		Name:         "Малыш",
		Level:        1,
		XP:           0,
		XPToNext:     100,
		Hitpoints:    80,
		MaxHitpoints: 100,
		Money:        5000,
		Skills: SkillRanks{
			SkillStrength:  2,
			SkillAgility:   1,
			SkillShooting:  1,
			SkillCharisma:  1,
			SkillIntellect: 1,
			SkillStamina:   2,
		},
	}
}

// XPPercent returns progress through the current level in [0, 1].
func (p PlayerState) XPPercent() float64 {
	if p.XPToNext <= 0 {
		return 0
	}
	return float64(p.XP) / float64(p.XPToNext)
}

// HitpointsPercent returns the fraction of max hitpoints remaining in [0, 1].
func (p PlayerState) HitpointsPercent() float64 {
	if p.MaxHitpoints <= 0 {
		return 0
	}
	return float64(p.Hitpoints) / float64(p.MaxHitpoints)
}
