package types

import "image/color"

// Collectible is a pickup lying on the street.
type Collectible struct {
	ID    int
	X     float64
	Glyph string
	Label string
	XP    int
}

// NPC is a character standing on the street.
type NPC struct {
	ID    int
	X     float64
	Name  string
	Role  string
	Glyph string
}

type ItemType string

const (
	ItemTypeWeapon ItemType = "weapon"
	ItemTypeArmor  ItemType = "armor"
	ItemTypeMed    ItemType = "med"
	ItemTypeTool   ItemType = "tool"
	ItemTypeMisc   ItemType = "misc"
)

func (t ItemType) Label() string {
	switch t {
	case ItemTypeWeapon:
		return "Оружие"
	case ItemTypeArmor:
		return "Броня"
	case ItemTypeMed:
		return "Медицина"
	case ItemTypeTool:
		return "Инструмент"
	case ItemTypeMisc:
		return "Разное"
	}
	return string(t)
}

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

func (r Rarity) Label() string {
	switch r {
	case RarityCommon:
		return "Обычный"
	case RarityUncommon:
		return "Необычный"
	case RarityRare:
		return "Редкий"
	case RarityEpic:
		return "Эпический"
	}
	return string(r)
}

func (r Rarity) Color() color.Color {
	switch r {
	case RarityUncommon:
		return color.RGBA{74, 222, 128, 255} // Green
	case RarityRare:
		return color.RGBA{96, 165, 250, 255} // Blue
	case RarityEpic:
		return color.RGBA{192, 132, 252, 255} // Purple
	}
	return color.RGBA{156, 163, 175, 255} // Gray
}

type Item struct {
	ID          int
	Name        string
	Type        ItemType
	Glyph       string
	Rarity      Rarity
	Weight      float64
	Description string
}

// SkillInfo describes a skill for display.
type SkillInfo struct {
	Skill       Skill
	Label       string
	Glyph       string
	Description string
}

type LocationType string

const (
	LocationTypeTrade  LocationType = "trade"
	LocationTypeCrime  LocationType = "crime"
	LocationTypeDanger LocationType = "danger"
	LocationTypeSocial LocationType = "social"
	LocationTypeHome   LocationType = "home"
)

func (t LocationType) Label() string {
	switch t {
	case LocationTypeTrade:
		return "Торговля"
	case LocationTypeCrime:
		return "Криминал"
	case LocationTypeDanger:
		return "Опасность"
	case LocationTypeSocial:
		return "Социальное"
	case LocationTypeHome:
		return "Дом"
	}
	return string(t)
}

func (t LocationType) Color() color.Color {
	switch t {
	case LocationTypeTrade:
		return color.RGBA{0xc9, 0xa2, 0x27, 0xff}
	case LocationTypeCrime:
		return color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	case LocationTypeDanger:
		return color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	case LocationTypeSocial:
		return color.RGBA{0x34, 0x98, 0xdb, 0xff}
	case LocationTypeHome:
		return color.RGBA{0x27, 0xae, 0x60, 0xff}
	}
	return color.White
}

type LocationStatus string

const (
	LocationStatusActive LocationStatus = "active"
	LocationStatusDanger LocationStatus = "danger"
	LocationStatusLocked LocationStatus = "locked"
)

// Selectable reports whether a location with this status can be picked on the map.
func (s LocationStatus) Selectable() bool {
	return s != LocationStatusLocked
}

// Location is a point on the city map. X and Y are percentages of the map size.
type Location struct {
	ID          int
	Name        string
	Description string
	X           float64
	Y           float64
	Type        LocationType
	Glyph       string
	Status      LocationStatus
}

// Road is a map line between two points, in percentages of the map size.
type Road struct {
	FromX, FromY float64
	ToX, ToY     float64
}
