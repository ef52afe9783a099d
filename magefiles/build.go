//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the bridge binary into bin/.
func (Build) Binary() error {
	mg.Deps(Build.Tidy)
	_, err := executeCmd("go", withArgs("build", "-o", filepath.Join("bin", binaryName()), "."), withStream())
	return err
}

// Runs go mod tidy.
func (Build) Tidy() error {
	return goTidy()
}
