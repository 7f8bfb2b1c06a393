// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library to allow switching between OS-level and in-memory backends.
package filesystem

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit tests.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// EnsureDir creates path and any missing parents. An existing directory is not an error,
// an existing non-directory is.
func EnsureDir(path string) error {
	if err := backend.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}

	isDir, err := backend.IsDir(path)
	if err != nil {
		return fmt.Errorf("stat directory %s: %w", path, err)
	}
	if !isDir {
		return fmt.Errorf("%s exists and is not a directory", path)
	}

	return nil
}
