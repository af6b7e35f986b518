// Package catalog holds the static game content. Every table keeps its
// declared order, which scans depend on, and an index by id.
package catalog

import (
	"github.com/cbodonnell/kvartal/pkg/game/types"
)

// Table is an immutable list of records with a lookup index by id.
type Table[T any] struct {
	records []T
	index   map[int]int
}

func newTable[T any](records []T, id func(T) int) *Table[T] {
	t := &Table[T]{
		records: records,
		index:   make(map[int]int, len(records)),
	}
	for i, r := range records {
		t.index[id(r)] = i
	}
	return t
}

// All returns the records in declared order. The slice is a copy.
func (t *Table[T]) All() []T {
	out := make([]T, len(t.records))
	copy(out, t.records)
	return out
}

// Get returns the record with the given id.
func (t *Table[T]) Get(id int) (T, bool) {
	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.records[i], true
}

func (t *Table[T]) Len() int {
	return len(t.records)
}

// Catalog is the full set of static content for a session.
type Catalog struct {
	NPCs         *Table[types.NPC]
	Collectibles *Table[types.Collectible]
	Items        *Table[types.Item]
	Locations    *Table[types.Location]

	skills   []types.SkillInfo
	dialogue map[int]string
	roads    []types.Road
	homeX    float64
	homeY    float64
}

// Dialogue returns the line an NPC says when the player walks up.
func (c *Catalog) Dialogue(npcID int) (string, bool) {
	line, ok := c.dialogue[npcID]
	return line, ok
}

// Skills returns display information for every skill, in display order.
func (c *Catalog) Skills() []types.SkillInfo {
	out := make([]types.SkillInfo, len(c.skills))
	copy(out, c.skills)
	return out
}

// Skill returns display information for a single skill.
func (c *Catalog) Skill(skill types.Skill) (types.SkillInfo, bool) {
	for _, s := range c.skills {
		if s.Skill == skill {
			return s, true
		}
	}
	return types.SkillInfo{}, false
}

func (c *Catalog) Roads() []types.Road {
	out := make([]types.Road, len(c.roads))
	copy(out, c.roads)
	return out
}

// Home returns the "you are here" marker position, in map percentages.
func (c *Catalog) Home() (x, y float64) {
	return c.homeX, c.homeY
}

// Default returns the catalog the game ships with.
func Default() *Catalog {
	return &Catalog{
		NPCs: newTable([]types.NPC{
			{ID: 1, X: 200, Name: "Боря", Role: "Барыга", Glyph: "Б"},
			{ID: 2, X: 520, Name: "Малёк", Role: "Прохожий", Glyph: "М"},
			{ID: 3, X: 760, Name: "Дядя Жора", Role: "Полицай", Glyph: "Ж"},
		}, func(n types.NPC) int { return n.ID }),
		Collectibles: newTable([]types.Collectible{
			{ID: 1, X: 350, Glyph: "$", Label: "+500₽", XP: 10},
			{ID: 2, X: 620, Glyph: "T", Label: "+Инструмент", XP: 5},
			{ID: 3, X: 880, Glyph: "#", Label: "+Товар", XP: 15},
		}, func(c types.Collectible) int { return c.ID }),
		Items: newTable([]types.Item{
			{ID: 1, Name: "АКС-74У", Type: types.ItemTypeWeapon, Glyph: "AK", Rarity: types.RarityRare, Weight: 3.2, Description: "Надёжный автомат. Урон +25"},
			{ID: 2, Name: "Бронежилет", Type: types.ItemTypeArmor, Glyph: "БЖ", Rarity: types.RarityUncommon, Weight: 4.0, Description: "Защита от пуль. Броня +30"},
			{ID: 3, Name: "Нож", Type: types.ItemTypeWeapon, Glyph: "Н", Rarity: types.RarityCommon, Weight: 0.5, Description: "Тихое устранение. Урон +10"},
			{ID: 4, Name: "Аптечка", Type: types.ItemTypeMed, Glyph: "+", Rarity: types.RarityCommon, Weight: 0.3, Description: "Восстановление HP +50"},
			{ID: 5, Name: "Рация", Type: types.ItemTypeTool, Glyph: "Р", Rarity: types.RarityUncommon, Weight: 0.8, Description: "Связь с командой"},
			{ID: 6, Name: "Деньги", Type: types.ItemTypeMisc, Glyph: "₽", Rarity: types.RarityCommon, Weight: 0.1, Description: "10,000 рублей"},
			{ID: 7, Name: "Телефон", Type: types.ItemTypeTool, Glyph: "Т", Rarity: types.RarityRare, Weight: 0.2, Description: "Зашифрованный телефон"},
			{ID: 8, Name: "Маска", Type: types.ItemTypeArmor, Glyph: "М", Rarity: types.RarityUncommon, Weight: 0.3, Description: "Скрывает личность"},
		}, func(i types.Item) int { return i.ID }),
		Locations: newTable([]types.Location{
			{ID: 1, Name: "Рынок", Description: "Торговля, барыги, новые задания", X: 15, Y: 25, Type: types.LocationTypeTrade, Glyph: "Р", Status: types.LocationStatusActive},
			{ID: 2, Name: "Депо", Description: "Угон машин и ремонт", X: 55, Y: 55, Type: types.LocationTypeCrime, Glyph: "Д", Status: types.LocationStatusActive},
			{ID: 3, Name: "Полицейский участок", Description: "Опасная зона. Разыскиваемые — осторожно!", X: 75, Y: 20, Type: types.LocationTypeDanger, Glyph: "П", Status: types.LocationStatusDanger},
			{ID: 4, Name: "Бар «Лось»", Description: "Отдых, информаторы, мини-игры", X: 35, Y: 65, Type: types.LocationTypeSocial, Glyph: "Б", Status: types.LocationStatusActive},
			{ID: 5, Name: "Заброшенный завод", Description: "Встреча с группировкой. Опасно!", X: 80, Y: 70, Type: types.LocationTypeCrime, Glyph: "З", Status: types.LocationStatusLocked},
			{ID: 6, Name: "Квартира", Description: "База героя. Сон и сохранение", X: 25, Y: 45, Type: types.LocationTypeHome, Glyph: "К", Status: types.LocationStatusActive},
			{ID: 7, Name: "Банк", Description: "Хранение денег или ограбление", X: 60, Y: 35, Type: types.LocationTypeTrade, Glyph: "$", Status: types.LocationStatusActive},
			{ID: 8, Name: "Лес", Description: "Схрон оружия. Тайные встречи", X: 10, Y: 70, Type: types.LocationTypeSocial, Glyph: "Л", Status: types.LocationStatusActive},
		}, func(l types.Location) int { return l.ID }),
		skills: []types.SkillInfo{
			{Skill: types.SkillStrength, Label: "Сила", Glyph: "С", Description: "Урон в ближнем бою, переноска груза"},
			{Skill: types.SkillAgility, Label: "Ловкость", Glyph: "Л", Description: "Скорость, уклонение, карманные кражи"},
			{Skill: types.SkillShooting, Label: "Стрельба", Glyph: "Ст", Description: "Точность и скорость стрельбы"},
			{Skill: types.SkillCharisma, Label: "Харизма", Glyph: "Х", Description: "Убеждение, торговля, связи"},
			{Skill: types.SkillIntellect, Label: "Интеллект", Glyph: "И", Description: "Взлом, хакерство, медицина"},
			{Skill: types.SkillStamina, Label: "Выносливость", Glyph: "В", Description: "Макс. HP, скорость регенерации"},
		},
		dialogue: map[int]string{
			1: "Есть дело, братан. Надо кое-что передать...",
			2: "Эй, подожди! У меня к тебе разговор.",
			3: "Стоять! Предъяви документы!",
		},
		roads: []types.Road{
			{FromX: 15, FromY: 25, ToX: 35, ToY: 45},
			{FromX: 35, FromY: 45, ToX: 55, ToY: 55},
			{FromX: 55, FromY: 55, ToX: 60, ToY: 35},
			{FromX: 60, FromY: 35, ToX: 75, ToY: 20},
			{FromX: 55, FromY: 55, ToX: 80, ToY: 70},
			{FromX: 35, FromY: 65, ToX: 35, ToY: 45},
			{FromX: 10, FromY: 70, ToX: 35, ToY: 65},
		},
		homeX: 22,
		homeY: 42,
	}
}
