package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spaghettifunk/anima-bridge/engine/core"
	"github.com/spaghettifunk/anima-bridge/engine/math"
)

// Field names of a record section. They are case-sensitive.
const (
	KeyTranslateX     = "translateX"
	KeyTranslateY     = "translateY"
	KeyTranslateZ     = "translateZ"
	KeyRotateX        = "rotateX"
	KeyRotateY        = "rotateY"
	KeyRotateZ        = "rotateZ"
	KeyScaleX         = "scaleX"
	KeyScaleY         = "scaleY"
	KeyScaleZ         = "scaleZ"
	KeyMeshSourceName = "meshSourceName"
	KeyAssetFromUE4   = "assetFromUE4"
)

// Channels lists the nine transform attributes in file order.
var Channels = []string{
	KeyTranslateX, KeyTranslateY, KeyTranslateZ,
	KeyRotateX, KeyRotateY, KeyRotateZ,
	KeyScaleX, KeyScaleY, KeyScaleZ,
}

const (
	literalTrue  = "true"
	literalFalse = "false"
)

// TransformRecord is the transform of one exported scene object.
type TransformRecord struct {
	// Key is the scene object name at export time and the section name.
	Key string

	TranslateX, TranslateY, TranslateZ float64
	RotateX, RotateY, RotateZ          float64
	ScaleX, ScaleY, ScaleZ             float64

	// MeshSourceName is the content browser name of the asset to duplicate.
	MeshSourceName string
	// AssetFromUE4 marks geometry that was exported out of UE4 into Maya.
	AssetFromUE4 bool
}

// RecordFromChannels builds a record from channel values keyed by the names
// in Channels. Missing channels are an error.
func RecordFromChannels(key string, values map[string]float64, meshSourceName string, assetFromUE4 bool) (TransformRecord, error) {
	r := TransformRecord{Key: key, MeshSourceName: meshSourceName, AssetFromUE4: assetFromUE4}
	for _, ch := range r.channels() {
		v, ok := values[ch.name]
		if !ok {
			return TransformRecord{}, fmt.Errorf("%w: [%s] has no %s", core.ErrInvalidRecord, key, ch.name)
		}
		*ch.value = v
	}
	if err := r.validate(); err != nil {
		return TransformRecord{}, err
	}
	return r, nil
}

// validate checks that r survives a trip through the INI file unchanged.
// DEFAULT names the keys above the first section header, and the reader
// strips the quotes around a quoted value.
func (r TransformRecord) validate() error {
	switch {
	case r.Key == "":
		return fmt.Errorf("%w: empty key", core.ErrInvalidRecord)
	case r.Key == ini.DefaultSection:
		return fmt.Errorf("%w: [%s] is a reserved section name", core.ErrInvalidRecord, r.Key)
	case strings.ContainsAny(r.MeshSourceName, `"'`):
		return fmt.Errorf("%w: [%s] %s %q contains a quote", core.ErrInvalidRecord, r.Key, KeyMeshSourceName, r.MeshSourceName)
	}
	return nil
}

type channel struct {
	name  string
	value *float64
}

func (r *TransformRecord) channels() []channel {
	return []channel{
		{KeyTranslateX, &r.TranslateX},
		{KeyTranslateY, &r.TranslateY},
		{KeyTranslateZ, &r.TranslateZ},
		{KeyRotateX, &r.RotateX},
		{KeyRotateY, &r.RotateY},
		{KeyRotateZ, &r.RotateZ},
		{KeyScaleX, &r.ScaleX},
		{KeyScaleY, &r.ScaleY},
		{KeyScaleZ, &r.ScaleZ},
	}
}

func (r TransformRecord) Translate() math.Vec3 {
	return math.NewVec3(float32(r.TranslateX), float32(r.TranslateY), float32(r.TranslateZ))
}

func (r TransformRecord) Rotate() math.Vec3 {
	return math.NewVec3(float32(r.RotateX), float32(r.RotateY), float32(r.RotateZ))
}

func (r TransformRecord) Scale() math.Vec3 {
	return math.NewVec3(float32(r.ScaleX), float32(r.ScaleY), float32(r.ScaleZ))
}

// encode writes every field of r into sec, replacing what was there.
func (r TransformRecord) encode(sec *ini.Section) error {
	for _, ch := range r.channels() {
		if _, err := sec.NewKey(ch.name, strconv.FormatFloat(*ch.value, 'f', -1, 64)); err != nil {
			return err
		}
	}
	if _, err := sec.NewKey(KeyMeshSourceName, r.MeshSourceName); err != nil {
		return err
	}
	if _, err := sec.NewKey(KeyAssetFromUE4, formatBool(r.AssetFromUE4)); err != nil {
		return err
	}
	return nil
}

// decodeRecord reads a record section. Every field is required.
func decodeRecord(sec *ini.Section) (TransformRecord, error) {
	r := TransformRecord{Key: sec.Name()}

	for _, ch := range r.channels() {
		k, err := sec.GetKey(ch.name)
		if err != nil {
			return TransformRecord{}, fmt.Errorf("%w: [%s] has no %s", core.ErrInvalidRecord, r.Key, ch.name)
		}
		v, err := k.Float64()
		if err != nil {
			return TransformRecord{}, fmt.Errorf("%w: [%s] %s = %q is not a number", core.ErrInvalidRecord, r.Key, ch.name, k.String())
		}
		*ch.value = v
	}

	k, err := sec.GetKey(KeyMeshSourceName)
	if err != nil {
		return TransformRecord{}, fmt.Errorf("%w: [%s] has no %s", core.ErrInvalidRecord, r.Key, KeyMeshSourceName)
	}
	r.MeshSourceName = k.String()

	k, err = sec.GetKey(KeyAssetFromUE4)
	if err != nil {
		return TransformRecord{}, fmt.Errorf("%w: [%s] has no %s", core.ErrInvalidRecord, r.Key, KeyAssetFromUE4)
	}
	if r.AssetFromUE4, err = parseBool(k.String()); err != nil {
		return TransformRecord{}, fmt.Errorf("%w: [%s] %s: %v", core.ErrInvalidRecord, r.Key, KeyAssetFromUE4, err)
	}

	return r, nil
}

func formatBool(b bool) string {
	if b {
		return literalTrue
	}
	return literalFalse
}

// parseBool only accepts the two literals the exporter writes.
func parseBool(s string) (bool, error) {
	switch s {
	case literalTrue:
		return true, nil
	case literalFalse:
		return false, nil
	default:
		return false, fmt.Errorf("%q is neither %q nor %q", s, literalTrue, literalFalse)
	}
}
