package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// FFmpeg binary names
const (
	FFmpegCommand     = "ffmpeg"
	FFmpegCommandWin  = "ffmpeg.exe"
	FFprobeCommand    = "ffprobe"
	FFprobeCommandWin = "ffprobe.exe"
)

// FindFFmpeg locates a working ffmpeg binary. A copy bundled next to the
// application executable wins over the system PATH, so packaged builds work on
// machines without ffmpeg installed.
func FindFFmpeg() (string, error) {
	return findTool(FFmpegCommand, FFmpegCommandWin)
}

// FindFFprobe locates the ffprobe binary using the same lookup order as FindFFmpeg
func FindFFprobe() (string, error) {
	return findTool(FFprobeCommand, FFprobeCommandWin)
}

func findTool(name, winName string) (string, error) {
	candidates := make([]string, 0, 2)

	if exeDir, err := executableDir(); err == nil {
		bundled := filepath.Join(exeDir, toolName(name, winName))
		if _, err := os.Stat(bundled); err == nil {
			candidates = append(candidates, bundled)
		}
	}
	candidates = append(candidates, toolName(name, winName))

	for _, candidate := range candidates {
		if err := probeTool(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%s not found next to the executable or on PATH", name)
}

// probeTool verifies the candidate is runnable by asking for its version
func probeTool(path string) error {
	cmd := exec.Command(path, "-version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", path, err)
	}
	return nil
}

func toolName(name, winName string) string {
	if runtime.GOOS == OSWindows {
		return winName
	}
	return name
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
