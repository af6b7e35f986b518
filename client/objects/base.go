package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ObjectCollection holds child objects in insertion order with an index by id.
type ObjectCollection struct {
	idxIDObjects map[string]GameObject
	objects      []GameObject
}

func NewObjectCollection() *ObjectCollection {
	return &ObjectCollection{
		idxIDObjects: make(map[string]GameObject),
		objects:      make([]GameObject, 0),
	}
}

func (c *ObjectCollection) Add(id string, obj GameObject) {
	c.idxIDObjects[id] = obj
	c.objects = append(c.objects, obj)
}

func (c *ObjectCollection) Remove(id string) {
	obj, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, o := range c.objects {
		if o == obj {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			return
		}
	}
}

func (c *ObjectCollection) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *ObjectCollection) All() []GameObject {
	return c.objects
}

func (c *ObjectCollection) Len() int {
	return len(c.objects)
}

// BaseObject provides the tree plumbing shared by every GameObject.
// Concrete objects embed it and override the Lifecycle methods they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *ObjectCollection
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings inside a SortedZIndexObject.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	if opts == nil {
		opts = &NewBaseObjectOpts{}
	}
	return &BaseObject{
		id:       id,
		zIndex:   opts.ZIndex,
		children: NewObjectCollection(),
	}
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.All()
}

func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object %s has no parent", o.id)
	}
	return o.parent.RemoveChild(o.id)
}
