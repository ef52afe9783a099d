package exporter

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/anima-bridge/engine/core"
	"github.com/spaghettifunk/anima-bridge/engine/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScene struct {
	selected []string
	attrs    map[string]map[string]float64
}

func (s *fakeScene) SelectedObjects() []string {
	return s.selected
}

func (s *fakeScene) Attr(object, channel string) (float64, error) {
	obj, ok := s.attrs[object]
	if !ok {
		return 0, errors.New("no such object")
	}
	v, ok := obj[channel]
	if !ok {
		return 0, errors.New("no such attribute")
	}
	return v, nil
}

func (s *fakeScene) add(name string, base float64) {
	if s.attrs == nil {
		s.attrs = map[string]map[string]float64{}
	}
	ch := map[string]float64{}
	for i, c := range store.Channels {
		ch[c] = base + float64(i)
	}
	s.attrs[name] = ch
}

type fakeViewer struct {
	opened []string
	err    error
}

func (v *fakeViewer) Open(path string) error {
	v.opened = append(v.opened, path)
	return v.err
}

func newTestExporter(t *testing.T) (*Exporter, *fakeScene, *fakeViewer) {
	t.Helper()
	scene := &fakeScene{}
	scene.add("pCube1", 10)
	scene.add("pCube2", 20)
	viewer := &fakeViewer{}
	s := store.NewRecordStore(filepath.Join(t.TempDir(), core.DefaultDataFileName))
	return New(s, scene, viewer), scene, viewer
}

func TestAddMeshDataWritesEverySelectedObject(t *testing.T) {
	e, scene, _ := newTestExporter(t)
	scene.selected = []string{"pCube1", "pCube2"}
	e.Form = Form{SourceName: "Rock_A", AssetFromUE4: true}

	written, err := e.AddMeshData()
	require.NoError(t, err)
	require.Len(t, written, 2)

	sn, err := e.store.Load()
	require.NoError(t, err)
	require.Equal(t, 2, sn.Len())

	r := sn.Records[0]
	assert.Equal(t, "pCube1", r.Key)
	assert.Equal(t, 10.0, r.TranslateX)
	assert.Equal(t, 13.0, r.RotateX)
	assert.Equal(t, 18.0, r.ScaleZ)
	assert.Equal(t, "Rock_A", r.MeshSourceName)
	assert.True(t, r.AssetFromUE4)

	assert.Equal(t, "pCube2", sn.Records[1].Key)
	assert.Equal(t, 20.0, sn.Records[1].TranslateX)
}

func TestAddMeshDataPreconditions(t *testing.T) {
	e, scene, _ := newTestExporter(t)

	e.Form.SourceName = "Rock_A"
	_, err := e.AddMeshData()
	assert.ErrorIs(t, err, core.ErrNothingSelected)
	assert.False(t, e.store.Exists())

	scene.selected = []string{"pCube1"}
	e.Form.SourceName = ""
	_, err = e.AddMeshData()
	assert.ErrorIs(t, err, core.ErrSourceNameRequired)
	assert.False(t, e.store.Exists())
}

func TestAddMeshDataUnreadableObjectWritesNothing(t *testing.T) {
	e, scene, _ := newTestExporter(t)
	scene.selected = []string{"pCube1", "ghost"}
	e.Form.SourceName = "Rock_A"

	_, err := e.AddMeshData()
	require.Error(t, err)
	assert.False(t, e.store.Exists())
}

func TestAddMeshDataReservedObjectNameWritesNothing(t *testing.T) {
	e, scene, _ := newTestExporter(t)
	scene.add("DEFAULT", 30)
	scene.selected = []string{"pCube1", "DEFAULT"}
	e.Form.SourceName = "Rock_A"

	_, err := e.AddMeshData()
	assert.ErrorIs(t, err, core.ErrInvalidRecord)
	assert.False(t, e.store.Exists())
}

func TestAddMeshDataReexportOverwrites(t *testing.T) {
	e, scene, _ := newTestExporter(t)
	scene.selected = []string{"pCube1"}
	e.Form.SourceName = "Rock_A"
	_, err := e.AddMeshData()
	require.NoError(t, err)

	scene.add("pCube1", 100)
	e.Form.SourceName = "Rock_B"
	_, err = e.AddMeshData()
	require.NoError(t, err)

	sn, err := e.store.Load()
	require.NoError(t, err)
	require.Equal(t, 1, sn.Len())
	assert.Equal(t, "Rock_B", sn.Records[0].MeshSourceName)
	assert.Equal(t, 100.0, sn.Records[0].TranslateX)
}

func TestLoadMeshName(t *testing.T) {
	e, scene, _ := newTestExporter(t)

	_, err := e.LoadMeshName()
	assert.ErrorIs(t, err, core.ErrNothingSelected)

	scene.selected = []string{"pCube1", "pCube2"}
	_, err = e.LoadMeshName()
	assert.ErrorIs(t, err, core.ErrTooManySelected)
	assert.Empty(t, e.Form.SourceName)

	scene.selected = []string{"SM_Rock_A"}
	name, err := e.LoadMeshName()
	require.NoError(t, err)
	assert.Equal(t, "SM_Rock_A", name)
	assert.Equal(t, "SM_Rock_A", e.Form.SourceName)

	e.ClearTextField()
	assert.Empty(t, e.Form.SourceName)
}

func TestClearMeshData(t *testing.T) {
	e, scene, _ := newTestExporter(t)
	scene.selected = []string{"pCube1", "pCube2"}
	e.Form.SourceName = "Rock_A"
	_, err := e.AddMeshData()
	require.NoError(t, err)

	require.NoError(t, e.ClearMeshData())
	require.NoError(t, e.ClearMeshData())

	sn, err := e.store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, sn.Len())
}

func TestOpenDataFileSwallowsErrors(t *testing.T) {
	e, _, viewer := newTestExporter(t)
	viewer.err = errors.New("not installed")

	e.OpenDataFile()
	assert.Equal(t, []string{e.store.Path()}, viewer.opened)

	e.viewer = nil
	e.OpenDataFile()
}

func TestStoreActionsWithoutScene(t *testing.T) {
	viewer := &fakeViewer{}
	s := store.NewRecordStore(filepath.Join(t.TempDir(), core.DefaultDataFileName))
	e := New(s, nil, viewer)

	require.NoError(t, e.ClearMeshData())
	assert.True(t, s.Exists())

	e.OpenDataFile()
	assert.Equal(t, []string{s.Path()}, viewer.opened)

	e.Form.SourceName = "Rock_A"
	_, err := e.AddMeshData()
	assert.ErrorIs(t, err, core.ErrNothingSelected)
	_, err = e.LoadMeshName()
	assert.ErrorIs(t, err, core.ErrNothingSelected)
}
