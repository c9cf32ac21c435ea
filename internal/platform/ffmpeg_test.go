package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeFakeTool creates an executable script that exits with the given code
func writeFakeTool(t *testing.T, dir, name string, exitCode string) string {
	t.Helper()
	if runtime.GOOS == OSWindows {
		t.Skip("fake tool scripts are POSIX-only")
	}

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\nexit " + exitCode + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write fake tool: %v", err)
	}
	return path
}

func TestProbeTool(t *testing.T) {
	dir := t.TempDir()

	ok := writeFakeTool(t, dir, "ffmpeg-ok", "0")
	if err := probeTool(ok); err != nil {
		t.Errorf("Expected healthy tool to probe clean, got: %v", err)
	}

	bad := writeFakeTool(t, dir, "ffmpeg-bad", "1")
	if err := probeTool(bad); err == nil {
		t.Error("Expected error probing failing tool, got nil")
	}
}

func TestProbeTool_Missing(t *testing.T) {
	if err := probeTool(filepath.Join(t.TempDir(), "no-such-ffmpeg")); err == nil {
		t.Error("Expected error for missing binary, got nil")
	}
}

func TestToolName(t *testing.T) {
	name := toolName(FFmpegCommand, FFmpegCommandWin)
	if runtime.GOOS == OSWindows {
		if name != FFmpegCommandWin {
			t.Errorf("Expected %s on windows, got %s", FFmpegCommandWin, name)
		}
	} else if name != FFmpegCommand {
		t.Errorf("Expected %s, got %s", FFmpegCommand, name)
	}
}
