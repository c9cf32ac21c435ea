package model

import (
	"time"
)

// BatchStatus represents the current status of a batch run
type BatchStatus string

const (
	BatchStatusIdle      BatchStatus = "idle"
	BatchStatusRunning   BatchStatus = "running"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusCancelled BatchStatus = "cancelled"
)

// Batch represents one extraction run over an ordered list of input files.
// Tasks keep their input order; counters are updated as the runner advances.
type Batch struct {
	ID             string
	Format         OutputFormat
	OutputDir      string // empty means "next to each input"
	Tasks          []*ExtractionTask
	Status         BatchStatus
	TotalFiles     int
	Succeeded      int
	Failed         int
	CurrentIndex   int    // 1-based index of the task in flight, 0 before start
	LastOutputPath string // most recent successful output, for open-folder actions
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBatch creates a batch over the given tasks
func NewBatch(format OutputFormat, outputDir string, tasks []*ExtractionTask) *Batch {
	now := time.Now()
	return &Batch{
		Format:     format,
		OutputDir:  outputDir,
		Tasks:      tasks,
		Status:     BatchStatusIdle,
		TotalFiles: len(tasks),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateStatus updates the batch status
func (b *Batch) UpdateStatus(status BatchStatus) {
	b.Status = status
	b.UpdatedAt = time.Now()
}

// RecordResult folds a finished task into the batch counters
func (b *Batch) RecordResult(task *ExtractionTask) {
	if task.Succeeded() {
		b.Succeeded++
		b.LastOutputPath = task.OutputPath
	} else {
		b.Failed++
	}
	b.UpdatedAt = time.Now()
}

// Processed returns how many tasks have a terminal result
func (b *Batch) Processed() int {
	return b.Succeeded + b.Failed
}

// Progress returns overall batch progress in [0,1] by processed item count
func (b *Batch) Progress() float64 {
	if b.TotalFiles == 0 {
		return 0
	}
	return float64(b.Processed()) / float64(b.TotalFiles)
}

// AllSucceeded returns true when every task completed successfully
func (b *Batch) AllSucceeded() bool {
	return b.TotalFiles > 0 && b.Succeeded == b.TotalFiles
}

// HasErrors returns true if any task failed
func (b *Batch) HasErrors() bool {
	return b.Failed > 0
}

// FailedTasks returns the tasks that ended in error, in input order
func (b *Batch) FailedTasks() []*ExtractionTask {
	var failed []*ExtractionTask
	for _, task := range b.Tasks {
		if task.Status == TaskStatusError {
			failed = append(failed, task)
		}
	}
	return failed
}
