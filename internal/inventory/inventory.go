package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrLocked is returned for mutations attempted while an extraction batch is running
var ErrLocked = errors.New("file list cannot be changed while extraction is running")

// VideoExtensions is the allow-list used when scanning folders for inputs
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mkv":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
}

// IsVideoFile returns true if the path has a recognized video extension
func IsVideoFile(path string) bool {
	return VideoExtensions[strings.ToLower(filepath.Ext(path))]
}

// FolderScan reports the outcome of one AddFolder call. Entries that could not
// be read are collected in Errors and never abort the rest of the scan.
type FolderScan struct {
	Added  []string
	Found  int // matching video files seen, including duplicates already listed
	Errors []string
}

// Inventory holds the ordered, deduplicated set of input files selected by the
// user. Paths compare by exact string match; first-seen order is preserved.
type Inventory struct {
	mu     sync.RWMutex
	files  []string
	seen   map[string]bool
	locked bool
}

// New creates an empty inventory
func New() *Inventory {
	return &Inventory{
		seen: make(map[string]bool),
	}
}

// Add appends the given paths, skipping any already present, and returns the
// new additions in the order they were accepted.
func (inv *Inventory) Add(paths ...string) ([]string, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.locked {
		return nil, ErrLocked
	}

	var added []string
	for _, path := range paths {
		if path == "" || inv.seen[path] {
			continue
		}
		inv.seen[path] = true
		inv.files = append(inv.files, path)
		added = append(added, path)
	}
	return added, nil
}

// AddFolder scans dir for video files and appends the new ones. When recursive
// is false only the folder's immediate entries are considered. Matches are
// appended in sorted path order so repeated scans of the same folder are stable.
func (inv *Inventory) AddFolder(dir string, recursive bool) (*FolderScan, error) {
	scan := &FolderScan{}

	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == dir {
				return walkErr
			}
			scan.Errors = append(scan.Errors, fmt.Sprintf("%s: %v", path, walkErr))
			log.Printf("Skipping unreadable entry %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if IsVideoFile(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan folder %s: %w", dir, err)
	}

	sort.Strings(matches)
	scan.Found = len(matches)

	added, err := inv.Add(matches...)
	if err != nil {
		return nil, err
	}
	scan.Added = added
	return scan, nil
}

// Remove deletes one path from the inventory
func (inv *Inventory) Remove(path string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.locked {
		return ErrLocked
	}

	if !inv.seen[path] {
		return fmt.Errorf("file not in list: %s", path)
	}

	delete(inv.seen, path)
	for i, f := range inv.files {
		if f == path {
			inv.files = append(inv.files[:i], inv.files[i+1:]...)
			break
		}
	}
	return nil
}

// Clear empties the inventory
func (inv *Inventory) Clear() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.locked {
		return ErrLocked
	}

	inv.files = nil
	inv.seen = make(map[string]bool)
	return nil
}

// Files returns a copy of the current paths in selection order
func (inv *Inventory) Files() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	files := make([]string, len(inv.files))
	copy(files, inv.files)
	return files
}

// Len returns the number of selected files
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.files)
}

// SetLocked toggles the mutation lock held for the duration of a batch run
func (inv *Inventory) SetLocked(locked bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.locked = locked
}
