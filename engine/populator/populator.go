package populator

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/anima-bridge/engine/core"
	"github.com/spaghettifunk/anima-bridge/engine/editor"
	"github.com/spaghettifunk/anima-bridge/engine/math"
	"github.com/spaghettifunk/anima-bridge/engine/store"
)

// ReimportRotationOffset is added to rotateX of geometry that came from UE4.
// The round trip through Maya leaves it lying on its side.
const ReimportRotationOffset float32 = 90.0

// Report summarizes one populate run.
type Report struct {
	// Spawned is the number of actors placed in the level.
	Spawned int
	// Skipped is the number of sections that were not valid records.
	Skipped int
	Elapsed time.Duration
}

// Populator places a duplicate of every selected asset for each record of the
// store that names it.
type Populator struct {
	store   store.RecordStore
	browser editor.ContentBrowser
	level   editor.Level

	// Debounce is how long Watch waits for the data file to settle.
	Debounce time.Duration
}

func New(s store.RecordStore, browser editor.ContentBrowser, level editor.Level) *Populator {
	return &Populator{
		store:    s,
		browser:  browser,
		level:    level,
		Debounce: DefaultDebounce,
	}
}

// Populate reads the store and spawns one actor per (selected asset, record)
// pair whose names match. The store is left untouched.
func (p *Populator) Populate() (Report, error) {
	clock := core.NewClock()
	clock.Start()
	report := Report{}

	if !p.store.Exists() {
		core.LogError("%s (%s)", core.ErrDataFileMissing, p.store.Path())
		return report, fmt.Errorf("%w: %s", core.ErrDataFileMissing, p.store.Path())
	}

	assets := p.browser.SelectedAssets()
	if len(assets) == 0 {
		core.LogError(core.ErrNoAssetsSelected.Error())
		return report, core.ErrNoAssetsSelected
	}

	sn, err := p.store.Load()
	if err != nil {
		core.LogError("Could not read the data file: %s", err)
		return report, err
	}
	for _, inv := range sn.Invalid {
		core.LogWarn("Skipping section [%s]: %s", inv.Key, inv.Err)
	}
	report.Skipped = len(sn.Invalid)

	for _, asset := range assets {
		name := asset.Name()
		for _, r := range sn.Match(name) {
			if err := p.spawn(asset, r); err != nil {
				core.LogError("Could not place %s for [%s]: %s", name, r.Key, err)
				return report, err
			}
			report.Spawned++
			core.LogInfo("Placed %s from [%s]", name, r.Key)
		}
	}

	clock.Stop()
	report.Elapsed = clock.Elapsed()
	core.LogInfo("Populated %d actor(s) in %s", report.Spawned, report.Elapsed)
	return report, nil
}

func (p *Populator) spawn(asset editor.Asset, r store.TransformRecord) error {
	t := Placement(r)
	if t.Scale.HasZeroAxis(math.K_FLOAT_EPSILON) {
		core.LogWarn("[%s] has a zero scale axis, %s will not be visible", r.Key, asset.Name())
	}
	actor, err := p.level.SpawnActorFromObject(asset, t.Location, t.Rotation)
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	if err := actor.SetActorScale3D(t.Scale); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	return nil
}

// EffectiveRotation is the Maya rotation fed to the converter for r.
func EffectiveRotation(r store.TransformRecord) math.Vec3 {
	rot := r.Rotate()
	if r.AssetFromUE4 {
		rot.X += ReimportRotationOffset
	}
	return rot
}

// Placement converts a record into the level transform of its actor.
func Placement(r store.TransformRecord) math.Transform {
	return math.TransformFromMaya(r.Translate(), EffectiveRotation(r), r.Scale())
}
