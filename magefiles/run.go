//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

type Test mg.Namespace

// Runs every unit test.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Exports the testbed scene and populates a level from it in a scratch directory.
func (Run) Demo() error {
	mg.Deps(Build.Binary)

	dir, err := os.MkdirTemp("", "bridge-demo")
	if err != nil {
		return err
	}
	fmt.Println("Demo directory:", dir)

	bin, err := filepath.Abs(filepath.Join("bin", binaryName()))
	if err != nil {
		return err
	}
	scene, err := filepath.Abs(filepath.Join("testbed", "testdata", "scene.toml"))
	if err != nil {
		return err
	}
	data := filepath.Join(dir, "config", "it_export_dataFile.ini")
	level := filepath.Join(dir, "level.toml")

	steps := [][]string{
		{"--data", data, "export", "--scene", scene, "--name", "Rock_A"},
		{"--data", data, "list"},
		{"--data", data, "populate", "--asset", "Rock_A", "--level", level},
	}
	for _, args := range steps {
		if _, err := executeCmd(bin, withArgs(args...), withDir(dir), withStream()); err != nil {
			return err
		}
	}
	return nil
}
