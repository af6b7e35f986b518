package objects

import (
	"fmt"
	"slices"
	"sort"
)

// SortedZIndexObject keeps its children ordered by z-index so the tree draws back to front.
// Children with equal z-index keep their insertion order.
type SortedZIndexObject struct {
	*BaseObject

	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child %s already exists under %s", id, o.GetID())
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize %s: %v", id, err)
	}
	o.children.Add(id, child)
	child.SetParent(o)

	z := child.GetZIndex()
	at := sort.Search(len(o.sorted), func(i int) bool {
		return o.sorted[i].GetZIndex() > z
	})
	o.sorted = slices.Insert(o.sorted, at, child)
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child %s does not exist under %s", id, o.GetID())
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", id, err)
	}
	o.children.Remove(id)
	child.SetParent(nil)

	before := len(o.sorted)
	o.sorted = slices.DeleteFunc(o.sorted, func(obj GameObject) bool {
		return obj.GetID() == id
	})
	if len(o.sorted) == before {
		return fmt.Errorf("child %s missing from draw order of %s", id, o.GetID())
	}
	return nil
}

// GetChildren returns the children in draw order.
func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}
