package session

import (
	"fmt"

	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/cbodonnell/kvartal/pkg/progression"
)

// ToggleInventory opens or closes the inventory overlay.
func (s *Session) ToggleInventory() {
	s.setOverlay(types.OverlayInventory, !s.inventoryOpen)
}

// ToggleMap opens or closes the map overlay.
func (s *Session) ToggleMap() {
	s.setOverlay(types.OverlayMap, !s.mapOpen)
}

// OpenOverlay shows an overlay. It does nothing if the overlay is already open.
func (s *Session) OpenOverlay(overlay types.Overlay) {
	s.setOverlay(overlay, true)
}

// CloseOverlay hides an overlay. It does nothing if the overlay is already closed.
func (s *Session) CloseOverlay(overlay types.Overlay) {
	s.setOverlay(overlay, false)
}

// CloseOverlays hides every overlay.
func (s *Session) CloseOverlays() {
	s.setOverlay(types.OverlayInventory, false)
	s.setOverlay(types.OverlayMap, false)
}

func (s *Session) setOverlay(overlay types.Overlay, visible bool) {
	if s.screen != types.ScreenGame {
		return
	}

	var current *bool
	switch overlay {
	case types.OverlayInventory:
		current = &s.inventoryOpen
	case types.OverlayMap:
		current = &s.mapOpen
	default:
		log.Warn("Unknown overlay %d", overlay)
		return
	}
	if *current == visible {
		return
	}
	*current = visible

	if visible {
		// an overlay supersedes the reward popup
		s.cancelPopup()
	} else if overlay == types.OverlayMap {
		s.selectedLocation = nil
	}

	log.Debug("Overlay %s visible=%t", overlay, visible)
	s.publish(types.OverlayChangedEvent{Overlay: overlay, Visible: visible})
}

// UpgradeSkill spends a free point on skill. It reports whether the rank changed.
func (s *Session) UpgradeSkill(skill types.Skill) bool {
	if !progression.CanUpgrade(s.player, skill) {
		return false
	}
	next, ok := progression.UpgradeSkill(s.player, skill)
	if !ok {
		return false
	}
	s.player = next
	log.Debug("Upgraded %s to %d", skill, s.player.Skills[skill])
	s.publish(types.SkillUpgradedEvent{Skill: skill, Rank: s.player.Skills[skill]})
	return true
}

// SelectLocation marks a map location as the travel destination.
func (s *Session) SelectLocation(id int) error {
	if s.screen != types.ScreenGame {
		return ErrNotInGame
	}
	location, ok := s.catalog.Locations.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownLocation, id)
	}
	if !location.Status.Selectable() {
		return fmt.Errorf("%w: %s", ErrLocationLocked, location.Name)
	}
	s.selectedLocation = &location
	s.publish(types.LocationSelectedEvent{Location: location})
	return nil
}

// Travel goes to the selected location and closes the map.
func (s *Session) Travel() error {
	if s.screen != types.ScreenGame {
		return ErrNotInGame
	}
	if s.selectedLocation == nil {
		return ErrNoLocation
	}
	location := *s.selectedLocation
	log.Info("Travelling to %s", location.Name)
	s.publish(types.TravelEvent{Location: location})
	s.CloseOverlay(types.OverlayMap)
	return nil
}
