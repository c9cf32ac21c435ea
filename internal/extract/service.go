package extract

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/speedtake/audio-extractor/internal/model"
	"github.com/speedtake/audio-extractor/internal/platform"
)

// Service-level errors that block starting a run
var (
	ErrNoFiles        = errors.New("no video files selected")
	ErrAlreadyRunning = errors.New("extraction is already running")
	ErrEncoderMissing = errors.New("ffmpeg binary is not available")
	ErrNotRunning     = errors.New("no extraction is running")
)

const (
	TaskIDPrefix = "extract-"

	// How many non-progress stderr lines to keep as the failure diagnostic
	diagnosticTailLines = 20
)

// Service runs extraction batches: strictly one encoder subprocess at a time,
// in input order, reporting task updates, batch progress, and a terminal
// summary through callbacks.
type Service struct {
	mu          sync.RWMutex
	batch       *model.Batch
	running     bool
	cancel      context.CancelFunc
	ffmpegPath  string
	ffprobePath string

	onTask     func(*model.ExtractionTask)
	onProgress func(index, total int, inputPath string)
	onComplete func(*model.Batch)
}

// NewService creates an extraction service bound to the given encoder binaries.
// ffprobePath may be empty; per-item percentages then stay indeterminate.
func NewService(ffmpegPath, ffprobePath string) *Service {
	return &Service{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
	}
}

// SetTaskCallback sets the callback invoked on every task state change
func (s *Service) SetTaskCallback(callback func(*model.ExtractionTask)) {
	s.onTask = callback
}

// SetProgressCallback sets the callback fired before each encoder invocation
// with the 1-based item index, the batch total, and the input path
func (s *Service) SetProgressCallback(callback func(index, total int, inputPath string)) {
	s.onProgress = callback
}

// SetCompletionCallback sets the callback invoked once with the finished batch
func (s *Service) SetCompletionCallback(callback func(*model.Batch)) {
	s.onComplete = callback
}

// IsRunning reports whether a batch is in flight
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// CurrentBatch returns the most recent batch, if any
func (s *Service) CurrentBatch() (*model.Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batch, s.batch != nil
}

// StartBatch validates the configuration and starts processing the inputs on a
// background goroutine. Inputs are processed strictly one at a time.
func (s *Service) StartBatch(inputs []string, job Job) (*model.Batch, error) {
	if len(inputs) == 0 {
		return nil, ErrNoFiles
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil, ErrAlreadyRunning
	}
	if s.ffmpegPath == "" {
		return nil, ErrEncoderMissing
	}

	tasks := make([]*model.ExtractionTask, 0, len(inputs))
	for i, input := range inputs {
		tasks = append(tasks, &model.ExtractionTask{
			ID:         generateTaskID(),
			InputPath:  input,
			OutputPath: job.OutputPathFor(input),
			Format:     job.Format,
			Status:     model.TaskStatusPending,
			Index:      i + 1,
			Total:      len(inputs),
		})
	}

	batch := model.NewBatch(job.Format, job.OutputDir, tasks)
	batch.ID = generateTaskID()
	batch.UpdateStatus(model.BatchStatusRunning)

	ctx, cancel := context.WithCancel(context.Background())
	s.batch = batch
	s.running = true
	s.cancel = cancel

	go s.runBatch(ctx, batch, job)

	return batch, nil
}

// Cancel stops the current run. The in-flight encoder process is terminated
// through its context; pending items are marked Stopped and the summary keeps
// results already produced.
func (s *Service) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.cancel == nil {
		return ErrNotRunning
	}

	log.Printf("Cancelling extraction batch %s", s.batch.ID)
	s.cancel()
	return nil
}

// runBatch is the worker loop: one item after another, never in parallel
func (s *Service) runBatch(ctx context.Context, batch *model.Batch, job Job) {
	for _, task := range batch.Tasks {
		if ctx.Err() != nil {
			s.markStopped(task)
			continue
		}

		s.mu.Lock()
		batch.CurrentIndex = task.Index
		s.mu.Unlock()

		s.notifyProgress(task.Index, task.Total, task.InputPath)
		s.runTask(ctx, task, job)

		s.mu.Lock()
		if task.Status != model.TaskStatusStopped {
			batch.RecordResult(task)
		}
		s.mu.Unlock()
	}

	// The service must be idle again before the summary is delivered: a
	// completion handler may start the next batch right away.
	s.mu.Lock()
	if ctx.Err() != nil {
		batch.UpdateStatus(model.BatchStatusCancelled)
	} else {
		batch.UpdateStatus(model.BatchStatusCompleted)
	}
	s.running = false
	s.cancel = nil
	s.mu.Unlock()

	log.Printf("Extraction batch %s finished: %d succeeded, %d failed of %d",
		batch.ID, batch.Succeeded, batch.Failed, batch.TotalFiles)
	s.notifyComplete(batch)
}

// runTask performs one blocking encoder invocation
func (s *Service) runTask(ctx context.Context, task *model.ExtractionTask, job Job) {
	s.mu.Lock()
	task.Status = model.TaskStatusStarting
	task.StartedAt = time.Now()
	s.mu.Unlock()
	s.notifyTask(task)

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(task.OutputPath)); err != nil {
		s.setTaskError(task, fmt.Errorf("failed to create output directory: %w", err))
		return
	}

	// Duration is only needed for the percentage display; a probe failure
	// leaves this task's progress indeterminate and is not fatal.
	duration := s.probeDuration(task.InputPath)

	args := job.BuildFFmpegArgs(task.InputPath, task.OutputPath)
	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.setTaskError(task, fmt.Errorf("failed to create stderr pipe: %w", err))
		return
	}

	if err := cmd.Start(); err != nil {
		s.setTaskError(task, fmt.Errorf("failed to start ffmpeg: %w", err))
		return
	}

	s.mu.Lock()
	task.Status = model.TaskStatusExtracting
	s.mu.Unlock()
	s.notifyTask(task)

	diagCh := make(chan []string, 1)
	go s.monitorStderr(stderr, task, duration, diagCh)

	// Drain stderr to EOF before reaping the process, since Wait closes the
	// pipe and would truncate the diagnostic tail.
	diagnostic := <-diagCh
	err = cmd.Wait()

	s.mu.Lock()
	if ctx.Err() == context.Canceled {
		task.Status = model.TaskStatusStopped
		task.LastError = ""
		os.Remove(task.OutputPath)
	} else if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = failureMessage(err, diagnostic)
		os.Remove(task.OutputPath)
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	}
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyTask(task)
}

// probeDuration returns the input duration in seconds, or 0 when unknown
func (s *Service) probeDuration(inputPath string) float64 {
	if s.ffprobePath == "" {
		return 0
	}

	cmd := exec.Command(s.ffprobePath,
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		inputPath)
	output, err := cmd.Output()
	if err != nil {
		log.Printf("Failed to probe duration for %s: %v", inputPath, err)
		return 0
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		log.Printf("Failed to parse duration for %s: %v", inputPath, err)
		return 0
	}
	return duration
}

// monitorStderr parses ffmpeg progress lines and keeps a tail of everything
// else as the failure diagnostic
func (s *Service) monitorStderr(stderr io.ReadCloser, task *model.ExtractionTask, totalDuration float64, diagCh chan<- []string) {
	var diagnostic []string
	scanner := bufio.NewScanner(stderr)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, ProgressTimePrefix) {
			timeMicroseconds, err := strconv.ParseInt(strings.TrimPrefix(line, ProgressTimePrefix), 10, 64)
			if err != nil {
				continue
			}

			if totalDuration > 0 {
				progress := float64(timeMicroseconds) / 1e6 / totalDuration
				if progress > 1.0 {
					progress = 1.0
				}

				s.mu.Lock()
				task.Progress = progress
				task.Percent = int(progress * 100)
				s.mu.Unlock()

				s.notifyTask(task)
			}
			continue
		}

		if isProgressKey(line) || line == "" {
			continue
		}

		diagnostic = append(diagnostic, line)
		if len(diagnostic) > diagnosticTailLines {
			diagnostic = diagnostic[1:]
		}
	}

	diagCh <- diagnostic
}

// isProgressKey filters the key=value lines emitted by -progress
func isProgressKey(line string) bool {
	idx := strings.IndexByte(line, '=')
	if idx <= 0 {
		return false
	}
	key := line[:idx]
	switch key {
	case "frame", "fps", "bitrate", "total_size", "out_time", "out_time_ms",
		"out_time_us", "dup_frames", "drop_frames", "speed", "progress", "stream_0_0_q":
		return true
	}
	return false
}

// failureMessage combines the exit error with the captured stderr tail so the
// summary always carries a non-empty diagnostic
func failureMessage(err error, diagnostic []string) string {
	if len(diagnostic) == 0 {
		return err.Error()
	}
	return fmt.Sprintf("%s: %s", err.Error(), strings.Join(diagnostic, "\n"))
}

// markStopped flags a task abandoned by cancellation
func (s *Service) markStopped(task *model.ExtractionTask) {
	s.mu.Lock()
	task.Status = model.TaskStatusStopped
	task.FinishedAt = time.Now()
	s.mu.Unlock()
	s.notifyTask(task)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.ExtractionTask, err error) {
	s.mu.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyTask(task)
}

// notifyTask calls the task callback if set
func (s *Service) notifyTask(task *model.ExtractionTask) {
	if s.onTask != nil {
		s.onTask(task)
	}
}

// notifyProgress calls the batch progress callback if set
func (s *Service) notifyProgress(index, total int, inputPath string) {
	if s.onProgress != nil {
		s.onProgress(index, total, inputPath)
	}
}

// notifyComplete calls the completion callback if set
func (s *Service) notifyComplete(batch *model.Batch) {
	if s.onComplete != nil {
		s.onComplete(batch)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
