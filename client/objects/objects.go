package objects

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Lifecycle is driven by the scene tree once per frame: Update on every tick, Draw after it.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	GetChild(id string) GameObject
	GetChildren() []GameObject
	RemoveFromParent() error
}

// InitTree initializes obj and then all of its descendants.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return err
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys all descendants of obj and then obj itself.
func DestroyTree(obj GameObject) error {
	for _, child := range snapshot(obj.GetChildren()) {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	return obj.Destroy()
}

// UpdateTree updates obj and then all of its descendants.
// Children may remove themselves from the tree while it is being updated.
func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return err
	}
	for _, child := range snapshot(obj.GetChildren()) {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws obj and then all of its descendants on top of it.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}

func snapshot(children []GameObject) []GameObject {
	out := make([]GameObject, len(children))
	copy(out, children)
	return out
}
