// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Entry describes one file as a listing shows it.
type Entry struct {
	Name    string
	Mode    fs.FileMode
	Size    int64
	ModTime time.Time
	Links   uint64
}

func (e Entry) IsDir() bool {
	return e.Mode.IsDir()
}

// IsHidden reports whether name is a dot file.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Stat describes path itself without following a final symlink. The entry is
// named after path as given.
func Stat(path string) (Entry, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Entry{}, err
	}
	return newEntry(path, path, fi), nil
}

// ReadDir lists dir sorted by name. Dot files are skipped unless all is set.
func ReadDir(dir string, all bool) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		if !all && IsHidden(de.Name()) {
			continue
		}
		fi, err := de.Info()
		if err != nil {
			// Removed between the read and the stat.
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", de.Name(), err)
		}
		entries = append(entries, newEntry(de.Name(), filepath.Join(dir, de.Name()), fi))
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}

func newEntry(name, path string, fi fs.FileInfo) Entry {
	return Entry{
		Name:    name,
		Mode:    fi.Mode(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		Links:   linkCount(path),
	}
}
