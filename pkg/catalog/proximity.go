package catalog

import "github.com/cbodonnell/kvartal/pkg/game/types"

// CollectibleList returns the collectibles in declared order.
func (c *Catalog) CollectibleList() []types.Collectible {
	return c.Collectibles.All()
}

// NPCList returns the NPCs in declared order.
func (c *Catalog) NPCList() []types.NPC {
	return c.NPCs.All()
}
