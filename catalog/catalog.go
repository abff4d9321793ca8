// Package catalog builds the immutable track listing for one music
// directory. The listing is fixed at startup: no rescanning, no
// mutation, indices stay valid for the whole session.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// Track is one playable entry. Index is 1-based and dense. Name is the
// filename, extension included, exactly as shown to the operator.
type Track struct {
	Index int
	Path  string
	Name  string
}

// Entry is a file found by ScanDir, before index assignment.
type Entry struct {
	Path string
	Name string
}

// ScanDir lists the files directly under dir. Symlinks count when they
// resolve to regular files; subdirectories and broken links are
// skipped. No recursion and no extension filter: files the engine
// cannot decode fail at play time, per attempt. Order is os.ReadDir
// order (sorted by filename).
func ScanDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := lo.Filter(dirEntries, func(e os.DirEntry, _ int) bool {
		if e.Type().IsRegular() {
			return true
		}
		if e.Type()&os.ModeSymlink == 0 {
			return false
		}
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		return err == nil && info.Mode().IsRegular()
	})

	return lo.Map(files, func(e os.DirEntry, _ int) Entry {
		return Entry{Path: filepath.Join(dir, e.Name()), Name: e.Name()}
	}), nil
}

// Catalog is the ordered track listing. Ordering belongs to the
// enumerator that produced the entries; the catalog never re-sorts.
type Catalog struct {
	tracks []Track
}

// New assigns dense 1-based indices to entries in the order given.
func New(entries []Entry) *Catalog {
	return &Catalog{
		tracks: lo.Map(entries, func(e Entry, i int) Track {
			return Track{Index: i + 1, Path: e.Path, Name: e.Name}
		}),
	}
}

// Get returns the track at index. An index outside 1..Len is a normal
// lookup miss, not an error.
func (c *Catalog) Get(index int) (Track, bool) {
	if index < 1 || index > len(c.tracks) {
		return Track{}, false
	}
	return c.tracks[index-1], true
}

// Tracks returns the listing in index order. The slice is a copy; the
// catalog's own listing never changes after New.
func (c *Catalog) Tracks() []Track {
	tracks := make([]Track, len(c.tracks))
	copy(tracks, c.tracks)
	return tracks
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}
