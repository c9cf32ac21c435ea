package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/speedtake/audio-extractor/internal/model"
	"github.com/speedtake/audio-extractor/internal/platform"
)

// FFmpeg argument constants
const (
	OverwriteFlag       = "-y"
	NoVideoFlag         = "-vn"
	AudioCodecFlag      = "-acodec"
	ProgressFlag        = "-progress"
	ProgressPipeTarget  = "pipe:2"
	NoStatsFlag         = "-nostats"
	ProgressTimePrefix  = "out_time_us="
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
)

// Job is the configuration for one batch run: the target audio format and an
// optional output directory. When OutputDir is empty each output lands next to
// its input.
type Job struct {
	Format    model.OutputFormat
	OutputDir string
}

// Validate checks the job before a batch starts. A set output directory is
// created if absent and must accept new files.
func (j Job) Validate() error {
	if !j.Format.IsValid() {
		return fmt.Errorf("unsupported output format: %s", j.Format)
	}

	if j.OutputDir != "" {
		if err := platform.CreateDirectoryIfNotExists(j.OutputDir); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := platform.IsWritableDir(j.OutputDir); err != nil {
			return err
		}
	}
	return nil
}

// OutputPathFor resolves the output file path for one input:
// outputDir/basename.ext when an output directory is set, otherwise the input's
// own directory. Inputs sharing a basename therefore collide in a shared output
// directory and the later one overwrites the earlier.
func (j Job) OutputPathFor(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	dir := j.OutputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, stem+j.Format.Extension())
}

// BuildFFmpegArgs builds the encoder invocation for one input/output pair.
// Output files are overwritten unconditionally; progress is streamed to stderr
// for the per-item percentage display.
func (j Job) BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		OverwriteFlag,         // overwrite existing output
		"-i", inputPath,       // input file
		NoVideoFlag,           // drop the video stream
		AudioCodecFlag, j.Format.Codec(),
		ProgressFlag, ProgressPipeTarget,
		NoStatsFlag,
		outputPath,
	}
}
