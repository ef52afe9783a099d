package testbed

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-bridge/engine/store"
)

// SceneObject is one transform node of a scene file.
type SceneObject struct {
	Name      string      `toml:"name"`
	Translate [3]float64  `toml:"translate"`
	Rotate    [3]float64  `toml:"rotate"`
	Scale     *[3]float64 `toml:"scale"`
}

type sceneFile struct {
	Selection []string      `toml:"selection"`
	Objects   []SceneObject `toml:"object"`
}

// Scene stands in for the Maya scene graph. It is loaded from a TOML file:
//
//	selection = ["pCube1"]
//
//	[[object]]
//	name = "pCube1"
//	translate = [1.0, 2.0, 3.0]
//	rotate = [0.0, 90.0, 0.0]
//	scale = [1.0, 1.0, 1.0]
type Scene struct {
	objects   map[string]SceneObject
	selection []string
}

func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return ParseScene(data)
}

func ParseScene(data []byte) (*Scene, error) {
	var sf sceneFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}

	s := &Scene{
		objects:   make(map[string]SceneObject, len(sf.Objects)),
		selection: sf.Selection,
	}
	for _, obj := range sf.Objects {
		if obj.Name == "" {
			return nil, fmt.Errorf("scene: object without a name")
		}
		if _, dup := s.objects[obj.Name]; dup {
			return nil, fmt.Errorf("scene: object %s defined twice", obj.Name)
		}
		if obj.Scale == nil {
			obj.Scale = &[3]float64{1, 1, 1}
		}
		s.objects[obj.Name] = obj
	}
	return s, nil
}

// Select replaces the current selection.
func (s *Scene) Select(names ...string) {
	s.selection = names
}

func (s *Scene) SelectedObjects() []string {
	return s.selection
}

func (s *Scene) Attr(object, channel string) (float64, error) {
	obj, ok := s.objects[object]
	if !ok {
		return 0, fmt.Errorf("no object named %s", object)
	}
	switch channel {
	case store.KeyTranslateX:
		return obj.Translate[0], nil
	case store.KeyTranslateY:
		return obj.Translate[1], nil
	case store.KeyTranslateZ:
		return obj.Translate[2], nil
	case store.KeyRotateX:
		return obj.Rotate[0], nil
	case store.KeyRotateY:
		return obj.Rotate[1], nil
	case store.KeyRotateZ:
		return obj.Rotate[2], nil
	case store.KeyScaleX:
		return obj.Scale[0], nil
	case store.KeyScaleY:
		return obj.Scale[1], nil
	case store.KeyScaleZ:
		return obj.Scale[2], nil
	default:
		return 0, fmt.Errorf("%s has no attribute %s", object, channel)
	}
}
