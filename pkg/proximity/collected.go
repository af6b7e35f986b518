package proximity

// CollectedSet is an immutable set of consumed collectible ids.
// The zero value is an empty set.
type CollectedSet struct {
	ids map[int]struct{}
}

// NewCollectedSet returns a set holding ids.
func NewCollectedSet(ids ...int) CollectedSet {
	s := CollectedSet{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s CollectedSet) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

func (s CollectedSet) Len() int {
	return len(s.ids)
}

// With returns a new set that also holds id. Adding an id already present
// returns an equal set.
func (s CollectedSet) With(id int) CollectedSet {
	next := CollectedSet{ids: make(map[int]struct{}, len(s.ids)+1)}
	for k := range s.ids {
		next.ids[k] = struct{}{}
	}
	next.ids[id] = struct{}{}
	return next
}
