package testbed

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-bridge/engine/editor"
	"github.com/spaghettifunk/anima-bridge/engine/math"
)

// Asset is a content browser entry identified by its name.
type Asset string

func (a Asset) Name() string {
	return string(a)
}

// ContentBrowser returns a fixed selection of assets.
type ContentBrowser struct {
	selected []editor.Asset
}

func NewContentBrowser(names ...string) *ContentBrowser {
	cb := &ContentBrowser{}
	for _, n := range names {
		cb.selected = append(cb.selected, Asset(n))
	}
	return cb
}

func (cb *ContentBrowser) SelectedAssets() []editor.Asset {
	return cb.selected
}

// LevelActor is an actor as stored in the level file. Rotation is pitch, yaw, roll.
type LevelActor struct {
	ID       string     `toml:"id"`
	Asset    string     `toml:"asset"`
	Location [3]float32 `toml:"location"`
	Rotation [3]float32 `toml:"rotation"`
	Scale    [3]float32 `toml:"scale"`
}

type levelFile struct {
	Actors []LevelActor `toml:"actor"`
}

type actor struct {
	id        string
	asset     string
	transform math.Transform
}

// Level stands in for the UE4 editor level and keeps spawned actors in a
// TOML file.
type Level struct {
	path   string
	actors []*actor
}

// LoadLevel opens a level file. A missing file is an empty level.
func LoadLevel(path string) (*Level, error) {
	l := &Level{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}

	var lf levelFile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", path, err)
	}
	for _, a := range lf.Actors {
		l.actors = append(l.actors, &actor{
			id:    a.ID,
			asset: a.Asset,
			transform: math.TransformFromLocationRotationScale(
				math.NewVec3(a.Location[0], a.Location[1], a.Location[2]),
				math.Rotator{Pitch: a.Rotation[0], Yaw: a.Rotation[1], Roll: a.Rotation[2]},
				math.NewVec3(a.Scale[0], a.Scale[1], a.Scale[2]),
			),
		})
	}
	return l, nil
}

func (l *Level) SpawnActorFromObject(asset editor.Asset, location math.Vec3, rotation math.Rotator) (editor.Actor, error) {
	if asset == nil || asset.Name() == "" {
		return nil, fmt.Errorf("level: cannot spawn an unnamed asset")
	}
	a := &actor{
		id:        uuid.New().String(),
		asset:     asset.Name(),
		transform: math.TransformCreate(),
	}
	a.transform.SetLocation(location)
	a.transform.SetRotation(rotation)
	l.actors = append(l.actors, a)
	return a, nil
}

func (a *actor) SetActorScale3D(scale math.Vec3) error {
	a.transform.SetScale(scale)
	return nil
}

// Actors returns the actors of the level in spawn order.
func (l *Level) Actors() []LevelActor {
	out := make([]LevelActor, 0, len(l.actors))
	for _, a := range l.actors {
		t := a.transform
		out = append(out, LevelActor{
			ID:       a.id,
			Asset:    a.asset,
			Location: [3]float32{t.Location.X, t.Location.Y, t.Location.Z},
			Rotation: [3]float32{t.Rotation.Pitch, t.Rotation.Yaw, t.Rotation.Roll},
			Scale:    [3]float32{t.Scale.X, t.Scale.Y, t.Scale.Z},
		})
	}
	return out
}

// Save writes the level back to its file.
func (l *Level) Save() error {
	data, err := toml.Marshal(levelFile{Actors: l.Actors()})
	if err != nil {
		return fmt.Errorf("level: encode: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("level: write %s: %w", l.path, err)
	}
	return nil
}
