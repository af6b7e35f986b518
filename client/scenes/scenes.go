package scenes

import (
	"github.com/cbodonnell/kvartal/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game. Its objects live in a tree under GetRoot.
type Scene interface {
	objects.Lifecycle

	GetRoot() objects.GameObject
}

// EventHandler is implemented by scenes that react to session events.
type EventHandler interface {
	HandleEvent(event interface{}) error
}

// Dispatch hands event to scene if it handles events. It reports whether the scene took it.
func Dispatch(scene Scene, event interface{}) (bool, error) {
	handler, ok := scene.(EventHandler)
	if !ok {
		return false, nil
	}
	return true, handler.HandleEvent(event)
}

// BaseScene runs the object tree under a z-ordered root. Scenes embed it and add their own
// state and UI on top.
type BaseScene struct {
	root *objects.SortedZIndexObject
}

func NewBaseScene(rootID string) *BaseScene {
	return &BaseScene{
		root: objects.NewSortedZIndexObject(rootID),
	}
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.root
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.root, screen)
}
