package exporter

import (
	"fmt"

	"github.com/spaghettifunk/anima-bridge/engine/core"
	"github.com/spaghettifunk/anima-bridge/engine/editor"
	"github.com/spaghettifunk/anima-bridge/engine/store"
)

// Opener shows a file to the user.
type Opener interface {
	Open(path string) error
}

// Form is the state of the export dialog.
type Form struct {
	// SourceName is the asset name as spelled in the UE4 content browser.
	SourceName string
	// AssetFromUE4 is checked for assets that went from UE4 into Maya.
	AssetFromUE4 bool
}

// Exporter records the transforms of selected scene objects into the store.
// Each method is one action of the export dialog.
type Exporter struct {
	Form Form

	store  store.RecordStore
	scene  editor.Scene
	viewer Opener
}

// New returns an exporter on the store. A nil scene has nothing selected,
// which is enough for the actions that only touch the data file.
func New(s store.RecordStore, scene editor.Scene, viewer Opener) *Exporter {
	return &Exporter{
		store:  s,
		scene:  scene,
		viewer: viewer,
	}
}

// AddMeshData writes one record per selected object, keyed by the object
// name. Nothing is written when the selection or the source name is empty,
// or when any channel cannot be read.
func (e *Exporter) AddMeshData() ([]store.TransformRecord, error) {
	selection := e.selection()
	if len(selection) == 0 {
		core.LogError(core.ErrNothingSelected.Error())
		return nil, core.ErrNothingSelected
	}
	if e.Form.SourceName == "" {
		core.LogError(core.ErrSourceNameRequired.Error())
		return nil, core.ErrSourceNameRequired
	}

	records := make([]store.TransformRecord, 0, len(selection))
	for _, obj := range selection {
		r, err := e.readRecord(obj)
		if err != nil {
			core.LogError("Could not read the transform of [%s]: %s", obj, err)
			return nil, err
		}
		records = append(records, r)
	}

	if e.store.Exists() {
		core.LogInfo("Export data config INI file found!")
	} else {
		core.LogWarn("Mesh transform data config INI does not exist. Creating config file now.")
		if _, err := e.store.Init(); err != nil {
			return nil, err
		}
		core.LogInfo("Sample data written. You can find the data file at: %s", e.store.Path())
	}

	if err := e.store.Put(records...); err != nil {
		core.LogError("Could not write the data file: %s", err)
		return nil, err
	}
	for _, r := range records {
		core.LogInfo("Saved [%s] transform values to data ini file!", r.Key)
	}
	return records, nil
}

func (e *Exporter) selection() []string {
	if e.scene == nil {
		return nil
	}
	return e.scene.SelectedObjects()
}

func (e *Exporter) readRecord(obj string) (store.TransformRecord, error) {
	values := make(map[string]float64, len(store.Channels))
	for _, ch := range store.Channels {
		v, err := e.scene.Attr(obj, ch)
		if err != nil {
			return store.TransformRecord{}, fmt.Errorf("%s.%s: %w", obj, ch, err)
		}
		values[ch] = v
	}
	return store.RecordFromChannels(obj, values, e.Form.SourceName, e.Form.AssetFromUE4)
}

// LoadMeshName copies the name of the single selected object into the
// source name field.
func (e *Exporter) LoadMeshName() (string, error) {
	selection := e.selection()
	switch {
	case len(selection) == 0:
		core.LogError(core.ErrNothingSelected.Error())
		return "", core.ErrNothingSelected
	case len(selection) > 1:
		core.LogError(core.ErrTooManySelected.Error())
		return "", core.ErrTooManySelected
	}
	e.Form.SourceName = selection[0]
	return e.Form.SourceName, nil
}

// ClearTextField empties the source name field.
func (e *Exporter) ClearTextField() {
	e.Form.SourceName = ""
}

// ClearMeshData removes every record from the data file so that UE4 does
// not spawn the same actors twice.
func (e *Exporter) ClearMeshData() error {
	core.LogInfo("Clearing out the data config file...")
	if err := e.store.Clear(); err != nil {
		core.LogError("Could not clear the data file: %s", err)
		return err
	}
	return nil
}

// OpenDataFile shows the data file in the configured viewer. Failures are
// only logged.
func (e *Exporter) OpenDataFile() {
	if e.viewer == nil {
		core.LogWarn("No viewer configured to open %s", e.store.Path())
		return
	}
	if err := e.viewer.Open(e.store.Path()); err != nil {
		core.LogError("Could not open %s: %s", e.store.Path(), err)
	}
}
