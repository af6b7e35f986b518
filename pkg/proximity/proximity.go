// Package proximity decides which street entities are in range of the player.
//
// Both scans walk their catalog in declared order and return the first match,
// so overlapping ranges resolve to whichever entity was declared first.
package proximity

import (
	"math"

	"github.com/cbodonnell/kvartal/pkg/game/constants"
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/progression"
)

// InRange reports whether a and b are strictly closer than threshold.
func InRange(a, b, threshold float64) bool {
	return math.Abs(a-b) < threshold
}

// ScanCollectibles returns the first uncollected collectible within range of x.
func ScanCollectibles(x float64, collectibles []types.Collectible, collected CollectedSet) (types.Collectible, bool) {
	for _, c := range collectibles {
		if collected.Has(c.ID) {
			continue
		}
		if InRange(c.X, x, constants.CollectibleRange) {
			return c, true
		}
	}
	return types.Collectible{}, false
}

// ScanNPCs returns the first NPC within range of x.
func ScanNPCs(x float64, npcs []types.NPC) (types.NPC, bool) {
	for _, n := range npcs {
		if InRange(n.X, x, constants.NPCRange) {
			return n, true
		}
	}
	return types.NPC{}, false
}

// Catalog is the static content a scan runs against.
type Catalog interface {
	CollectibleList() []types.Collectible
	NPCList() []types.NPC
	Dialogue(npcID int) (string, bool)
}

// Result is the outcome of evaluating a single position.
type Result struct {
	// Player is the player snapshot after any reward was applied.
	Player types.PlayerState
	// Collected is the set of consumed collectible ids after the evaluation.
	Collected CollectedSet
	// ActiveNPC is the NPC in range, or nil.
	ActiveNPC *types.NPC
	// Dialogue is the line of ActiveNPC, empty when there is none.
	Dialogue string
	// Reward is set when a collectible was picked up by this evaluation.
	Reward *types.RewardEvent
}

// Evaluate runs both scans for position x. Neither player nor collected is modified.
func Evaluate(player types.PlayerState, x float64, catalog Catalog, collected CollectedSet) Result {
	result := Result{
		Player:    player,
		Collected: collected,
	}

	if c, ok := ScanCollectibles(x, catalog.CollectibleList(), collected); ok {
		result.Collected = collected.With(c.ID)
		result.Player = progression.GrantMoney(result.Player, constants.CollectibleMoney)
		result.Player = progression.GrantXP(result.Player, c.XP)
		result.Reward = &types.RewardEvent{
			CollectibleID: c.ID,
			XP:            c.XP,
			Money:         constants.CollectibleMoney,
			TTL:           constants.RewardPopupTTL,
		}
	}

	if n, ok := ScanNPCs(x, catalog.NPCList()); ok {
		result.ActiveNPC = &n
		result.Dialogue, _ = catalog.Dialogue(n.ID)
	}

	return result
}
