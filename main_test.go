package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/anima-bridge/engine/core"
	"github.com/spaghettifunk/anima-bridge/testbed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
selection = ["pCube1", "pCube2"]

[[object]]
name = "pCube1"
translate = [1.0, 2.0, 3.0]
rotate = [0.0, 90.0, 0.0]

[[object]]
name = "pCube2"
translate = [4.0, 5.0, 6.0]
rotate = [0.0, 0.0, 0.0]
`

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runLogged(t, dir, args...)
	return out, err
}

// runLogged runs the command line and also returns what it logged.
func runLogged(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	t.Cleanup(func() { core.SetLogOutput(os.Stderr) })
	base := []string{
		"bridge",
		"--config", filepath.Join(dir, "missing.toml"),
		"--data", filepath.Join(dir, "config", "data.ini"),
	}
	err := newApp(&out, &logs).Run(context.Background(), append(base, args...))
	return out.String(), logs.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "convert", "--rx", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Pitch=")
	assert.Contains(t, out, "Roll=90.0000")
}

func TestExportPopulateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(scenePath, []byte(testScene), 0o644))
	levelPath := filepath.Join(dir, "level.toml")

	_, err := run(t, dir, "export", "--scene", scenePath, "--name", "Rock_A")
	require.NoError(t, err)

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pCube1\tRock_A\tassetFromUE4=false")
	assert.Contains(t, out, "pCube2\tRock_A")

	out, err = run(t, dir, "populate", "--asset", "Rock_A", "--level", levelPath)
	require.NoError(t, err)
	assert.Contains(t, out, "spawned 2 actor(s)")

	level, err := testbed.LoadLevel(levelPath)
	require.NoError(t, err)
	actors := level.Actors()
	require.Len(t, actors, 2)
	assert.Equal(t, [3]float32{1, 3, 2}, actors[0].Location)
	assert.InDelta(t, -90, actors[0].Rotation[1], 1e-3)

	_, err = run(t, dir, "clear")
	require.NoError(t, err)
	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExportLogsEveryRecord(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(scenePath, []byte(testScene), 0o644))

	out, logs, err := runLogged(t, dir, "export", "--scene", scenePath, "--name", "Rock_A")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "Saved [pCube1]")
	assert.Contains(t, logs, "Saved [pCube2]")

	_, logs, err = runLogged(t, dir, "--log-level", "error", "clear")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestExportRequiresName(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(scenePath, []byte(testScene), 0o644))

	_, err := run(t, dir, "export", "--scene", scenePath)
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "config", "data.ini"))
}

func TestLoadNameCommand(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(scenePath, []byte(testScene), 0o644))

	_, err := run(t, dir, "load-name", "--scene", scenePath)
	assert.Error(t, err)

	out, err := run(t, dir, "load-name", "--scene", scenePath, "--select", "pCube2")
	require.NoError(t, err)
	assert.Equal(t, "pCube2\n", out)
}

func TestPopulateWithoutDataFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "populate", "--asset", "Rock_A", "--level", filepath.Join(dir, "level.toml"))
	assert.Error(t, err)
}
