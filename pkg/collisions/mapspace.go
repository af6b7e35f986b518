package collisions

import (
	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceTagLocation string = "location"
	CollisionSpaceTagCursor   string = "cursor"

	// PinSize is the width and height of a location pin on the map.
	PinSize float64 = 40.0
	// cellSize is the resolv cell size used for the map broadphase.
	cellSize = 16
)

type pin struct {
	location types.Location
	object   *resolv.Object
}

// MapSpace hit-tests points against the location pins of the city map.
// Coordinates are relative to the top-left corner of the map area.
type MapSpace struct {
	width  float64
	height float64
	space  *resolv.Space
	cursor *resolv.Object
	pins   []pin
}

// NewMapSpace places a pin for every location, in declared order.
func NewMapSpace(width, height float64, locations []types.Location) *MapSpace {
	space := resolv.NewSpace(int(width), int(height), cellSize, cellSize)
	cursor := resolv.NewObject(0, 0, 1, 1, CollisionSpaceTagCursor)
	space.Add(cursor)

	m := &MapSpace{
		width:  width,
		height: height,
		space:  space,
		cursor: cursor,
		pins:   make([]pin, 0, len(locations)),
	}
	for _, l := range locations {
		x, y := PinPosition(width, height, l)
		obj := resolv.NewObject(x, y, PinSize, PinSize, CollisionSpaceTagLocation)
		space.Add(obj)
		m.pins = append(m.pins, pin{location: l, object: obj})
	}
	return m
}

// PinPosition returns the top-left corner of the pin for l on a map of the given size.
func PinPosition(width, height float64, l types.Location) (x, y float64) {
	return width*l.X/100 - PinSize/2, height*l.Y/100 - PinSize/2
}

// PointPosition converts map percentages to map coordinates.
func PointPosition(width, height, px, py float64) (x, y float64) {
	return width * px / 100, height * py / 100
}

func (m *MapSpace) Size() (width, height float64) {
	return m.width, m.height
}

// LocationAt returns the location whose pin contains the point (x, y).
// Overlapping pins resolve to the location declared first.
func (m *MapSpace) LocationAt(x, y float64) (types.Location, bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return types.Location{}, false
	}

	m.cursor.Position.X = x
	m.cursor.Position.Y = y
	m.cursor.Update()

	collision := m.cursor.Check(0, 0, CollisionSpaceTagLocation)
	if collision == nil {
		return types.Location{}, false
	}

	// the broadphase only tells us which pins share a cell with the cursor
	candidates := make(map[*resolv.Object]struct{}, len(collision.Objects))
	for _, obj := range collision.Objects {
		candidates[obj] = struct{}{}
	}
	for _, p := range m.pins {
		if _, ok := candidates[p.object]; !ok {
			continue
		}
		px, py := p.object.Position.X, p.object.Position.Y
		if x >= px && x < px+PinSize && y >= py && y < py+PinSize {
			return p.location, true
		}
	}
	return types.Location{}, false
}
