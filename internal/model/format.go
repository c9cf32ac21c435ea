package model

import "fmt"

// OutputFormat is one of the supported audio output formats
type OutputFormat string

const (
	FormatMP3  OutputFormat = "mp3"
	FormatWAV  OutputFormat = "wav"
	FormatFLAC OutputFormat = "flac"
	FormatAAC  OutputFormat = "aac"
)

// String returns the lowercase format name (also the file extension without dot)
func (f OutputFormat) String() string {
	return string(f)
}

// Extension returns the output file extension including the dot
func (f OutputFormat) Extension() string {
	return "." + string(f)
}

// Codec returns the ffmpeg audio codec name for the format
func (f OutputFormat) Codec() string {
	switch f {
	case FormatMP3:
		return "libmp3lame"
	case FormatWAV:
		return "pcm_s16le"
	case FormatFLAC:
		return "flac"
	case FormatAAC:
		return "aac"
	default:
		return ""
	}
}

// IsValid returns true if the format is one of the supported set
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatMP3, FormatWAV, FormatFLAC, FormatAAC:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string (case-insensitive not required; formats are
// stored lowercase) into an OutputFormat, or fails for unknown values.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
	return f, nil
}

// OutputFormats returns the supported formats in display order
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatMP3, FormatWAV, FormatFLAC, FormatAAC}
}
