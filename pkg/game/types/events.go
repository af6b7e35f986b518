package types

import "time"

// RewardEvent is emitted once when a collectible is picked up.
// The presentation layer shows it for TTL and then clears it.
type RewardEvent struct {
	CollectibleID int
	XP            int
	Money         int
	TTL           time.Duration
}

// NPCChangedEvent is emitted when the active NPC changes.
// NPC is nil when the player walked out of range of every NPC.
type NPCChangedEvent struct {
	NPC      *NPC
	Dialogue string
}

type LevelUpEvent struct {
	Level        int
	MaxHitpoints int
}

type SkillUpgradedEvent struct {
	Skill Skill
	Rank  int
}

type Overlay uint8

const (
	OverlayInventory Overlay = iota
	OverlayMap
)

func (o Overlay) String() string {
	switch o {
	case OverlayInventory:
		return "inventory"
	case OverlayMap:
		return "map"
	}
	return "unknown"
}

type OverlayChangedEvent struct {
	Overlay Overlay
	Visible bool
}

type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenGame:
		return "game"
	}
	return "unknown"
}

type ScreenChangedEvent struct {
	Screen Screen
}

type LocationSelectedEvent struct {
	Location Location
}

type TravelEvent struct {
	Location Location
}
