// Package editor declares what the bridge needs from its two host
// applications. The Maya side provides a Scene, the UE4 side a
// ContentBrowser and a Level.
package editor

import "github.com/spaghettifunk/anima-bridge/engine/math"

// Scene is the modeling application's scene graph.
type Scene interface {
	// SelectedObjects returns the names of the selected objects in
	// selection order.
	SelectedObjects() []string
	// Attr reads a transform channel such as "translateX" of an object.
	Attr(object, channel string) (float64, error)
}

// Asset is an item of the content browser.
type Asset interface {
	Name() string
}

// ContentBrowser is the game-engine editor's asset browser.
type ContentBrowser interface {
	SelectedAssets() []Asset
}

// Actor is an instance placed in the level.
type Actor interface {
	SetActorScale3D(scale math.Vec3) error
}

// Level is the game-engine editor's currently open level.
type Level interface {
	// SpawnActorFromObject places a duplicate of asset in the level.
	SpawnActorFromObject(asset Asset, location math.Vec3, rotation math.Rotator) (Actor, error)
}
