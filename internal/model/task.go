package model

import (
	"strings"
	"time"
)

// ExtractionTask represents one input file going through audio extraction
type ExtractionTask struct {
	ID         string
	InputPath  string
	OutputPath string
	Format     OutputFormat
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0, within this file
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	Index      int     // position in the batch, starting at 1
	Total      int     // total items in the batch
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns the input file name without directory or extension
func (et *ExtractionTask) GetDisplayTitle() string {
	if et.InputPath == "" {
		return ""
	}

	// Extract just the filename without path (support both / and \ separators)
	parts := strings.FieldsFunc(et.InputPath, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return et.InputPath
	}

	filename := parts[len(parts)-1]
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		filename = filename[:idx]
	}
	return filename
}

// Succeeded returns true when the task completed with an output file
func (et *ExtractionTask) Succeeded() bool {
	return et.Status == TaskStatusCompleted && et.OutputPath != ""
}
