package constants

import "time"

const (

	// StreetMinX is the leftmost position the player can walk to
	StreetMinX float64 = 30.0
	// StreetMaxX is the rightmost position the player can walk to
	StreetMaxX float64 = 1050.0
	// StreetWidth is the width of the street in world units
	StreetWidth float64 = 1080.0
	// PlayerStartingX is where the player spawns on the street
	PlayerStartingX float64 = 100.0
	// PlayerStep is how far the player moves each tick a direction is held
	PlayerStep float64 = 4.0
	// WalkCycleStep is added to the walk cycle every tick the player moves
	WalkCycleStep float64 = 0.25
	// WalkBobAmplitude is the height of the walking bob
	WalkBobAmplitude float64 = 3.0

	// CollectibleRange is the distance below which a collectible is picked up
	CollectibleRange float64 = 40.0
	// NPCRange is the distance below which an NPC starts talking
	NPCRange float64 = 50.0
	// CollectibleMoney is the currency granted for every collectible picked up
	CollectibleMoney int = 500
	// RewardPopupTTL is how long the "+N XP" popup stays on screen
	RewardPopupTTL = 1500 * time.Millisecond

	// XPGrowthFactor is applied to the XP threshold on every level-up
	XPGrowthFactor float64 = 1.5
	// HitpointsPerLevel is the max HP increase on every level-up
	HitpointsPerLevel int = 10
	// SkillPointsPerLevel is the number of skill points earned per level
	SkillPointsPerLevel int = 3
	// SkillMaxRank is the highest rank the UI lets a skill reach
	SkillMaxRank int = 10
)
