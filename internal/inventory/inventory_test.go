package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/videos/movie.mp4", true},
		{"/videos/clip.MKV", true},
		{"clip.webm", true},
		{"song.mp3", false},
		{"notes.txt", false},
		{"noextension", false},
	}

	for _, test := range tests {
		result := IsVideoFile(test.path)
		if result != test.expected {
			t.Errorf("IsVideoFile(%s) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestAdd_PreservesOrderAndDedupes(t *testing.T) {
	inv := New()

	added, err := inv.Add("/a/one.mp4", "/b/two.mkv", "/a/one.mp4", "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("Expected 2 additions, got %d", len(added))
	}

	files := inv.Files()
	expected := []string{"/a/one.mp4", "/b/two.mkv"}
	if len(files) != len(expected) {
		t.Fatalf("Expected %d files, got %d", len(expected), len(files))
	}
	for i, f := range expected {
		if files[i] != f {
			t.Errorf("Files()[%d] = %s, expected %s", i, files[i], f)
		}
	}

	// Re-adding keeps the original position
	added, err = inv.Add("/b/two.mkv", "/c/three.mov")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(added) != 1 || added[0] != "/c/three.mov" {
		t.Errorf("Expected only /c/three.mov to be added, got %v", added)
	}
	if inv.Len() != 3 {
		t.Errorf("Expected 3 files, got %d", inv.Len())
	}
}

func TestAdd_CaseSensitiveDedup(t *testing.T) {
	inv := New()

	added, err := inv.Add("/a/Movie.mp4", "/a/movie.mp4")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(added) != 2 {
		t.Errorf("Paths differing only by case are distinct, expected 2 additions, got %d", len(added))
	}
}

func TestAddFolder_Recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "season1")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	mustWrite(t, filepath.Join(dir, "b.mp4"))
	mustWrite(t, filepath.Join(dir, "a.mkv"))
	mustWrite(t, filepath.Join(dir, "notes.txt"))
	mustWrite(t, filepath.Join(sub, "ep1.webm"))

	inv := New()
	scan, err := inv.AddFolder(dir, true)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if scan.Found != 3 {
		t.Errorf("Expected 3 video files found, got %d", scan.Found)
	}
	if len(scan.Added) != 3 {
		t.Errorf("Expected 3 files added, got %d", len(scan.Added))
	}
	if len(scan.Errors) != 0 {
		t.Errorf("Expected no scan errors, got %v", scan.Errors)
	}

	// Sorted path order within one scan
	files := inv.Files()
	if files[0] != filepath.Join(dir, "a.mkv") || files[1] != filepath.Join(dir, "b.mp4") {
		t.Errorf("Expected sorted scan order, got %v", files)
	}
}

func TestAddFolder_Shallow(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	mustWrite(t, filepath.Join(dir, "top.mp4"))
	mustWrite(t, filepath.Join(sub, "deep.mp4"))

	inv := New()
	scan, err := inv.AddFolder(dir, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if scan.Found != 1 {
		t.Errorf("Expected only the top-level file, got %d", scan.Found)
	}
}

func TestAddFolder_MissingDir(t *testing.T) {
	inv := New()
	_, err := inv.AddFolder(filepath.Join(t.TempDir(), "missing"), true)
	if err == nil {
		t.Error("Expected error for missing folder, got nil")
	}
}

func TestAddFolder_SkipsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.mp4")
	mustWrite(t, path)

	inv := New()
	if _, err := inv.Add(path); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	scan, err := inv.AddFolder(dir, true)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if scan.Found != 1 {
		t.Errorf("Expected 1 found, got %d", scan.Found)
	}
	if len(scan.Added) != 0 {
		t.Errorf("Expected no new additions, got %v", scan.Added)
	}
}

func TestRemoveAndClear(t *testing.T) {
	inv := New()
	if _, err := inv.Add("/a/one.mp4", "/b/two.mkv"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if err := inv.Remove("/a/one.mp4"); err != nil {
		t.Errorf("Expected no error removing listed file, got: %v", err)
	}
	if err := inv.Remove("/a/one.mp4"); err == nil {
		t.Error("Expected error removing unknown file, got nil")
	}
	if inv.Len() != 1 {
		t.Errorf("Expected 1 file after remove, got %d", inv.Len())
	}

	if err := inv.Clear(); err != nil {
		t.Errorf("Expected no error clearing, got: %v", err)
	}
	if inv.Len() != 0 {
		t.Errorf("Expected empty inventory after clear, got %d", inv.Len())
	}

	// A cleared path can be added again
	added, err := inv.Add("/a/one.mp4")
	if err != nil || len(added) != 1 {
		t.Errorf("Expected re-add after clear to work, added=%v err=%v", added, err)
	}
}

func TestLockedInventory_RejectsMutation(t *testing.T) {
	inv := New()
	if _, err := inv.Add("/a/one.mp4"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	inv.SetLocked(true)

	if _, err := inv.Add("/b/two.mkv"); err != ErrLocked {
		t.Errorf("Expected ErrLocked from Add, got: %v", err)
	}
	if err := inv.Clear(); err != ErrLocked {
		t.Errorf("Expected ErrLocked from Clear, got: %v", err)
	}
	if err := inv.Remove("/a/one.mp4"); err != ErrLocked {
		t.Errorf("Expected ErrLocked from Remove, got: %v", err)
	}

	// Reads still work while locked
	if inv.Len() != 1 {
		t.Errorf("Expected 1 file while locked, got %d", inv.Len())
	}

	inv.SetLocked(false)
	if _, err := inv.Add("/b/two.mkv"); err != nil {
		t.Errorf("Expected Add to work after unlock, got: %v", err)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
