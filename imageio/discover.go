// SPDX-License-Identifier: MIT

package imageio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover lists the regular files directly inside dir whose names end with
// one of exts (DefaultExtensions when none are given). Subdirectories are
// not descended into. Paths are joined with dir and sorted by file name.
func Discover(dir string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiscover, err)
	}

	// os.ReadDir returns entries sorted by file name.
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !hasAnySuffix(e.Name(), exts) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	return paths, nil
}

func hasAnySuffix(name string, exts []string) bool {
	for _, ext := range exts {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}
