package fio

import (
	"path/filepath"

	"github.com/gofrs/flock"
)

const flockName = "flock"

// NewFlock guards a partition output directory against concurrent runs.
func NewFlock(dirPath string) *flock.Flock {
	return flock.New(filepath.Join(dirPath, flockName))
}
