package extract

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/speedtake/audio-extractor/internal/model"
)

const completionTimeout = 10 * time.Second

// writeFakeFFmpeg writes a shell script standing in for ffmpeg. The invocation
// shape is "-y -i INPUT -vn -acodec C -progress pipe:2 -nostats OUTPUT", so $3
// is the input and the last argument is the output.
func writeFakeFFmpeg(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake encoder scripts are POSIX-only")
	}

	path := filepath.Join(t.TempDir(), "ffmpeg")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write fake ffmpeg: %v", err)
	}
	return path
}

const fakeEncodeOK = `for a in "$@"; do out="$a"; done
printf 'audio' > "$out"
exit 0`

const fakeEncodeFailOnBad = `in="$3"
case "$in" in
*bad*)
	echo "Error: could not decode stream" >&2
	exit 1
	;;
esac
for a in "$@"; do out="$a"; done
printf 'audio' > "$out"
exit 0`

type progressEvent struct {
	index int
	total int
	input string
}

// batchHarness wires a service to collectors for events and completion
type batchHarness struct {
	service  *Service
	mu       sync.Mutex
	events   []progressEvent
	doneCh   chan *model.Batch
	eventsAt []int // processed count observed when each event fired
}

func newBatchHarness(t *testing.T, ffmpegBody string) *batchHarness {
	t.Helper()

	h := &batchHarness{
		service: NewService(writeFakeFFmpeg(t, ffmpegBody), ""),
		doneCh:  make(chan *model.Batch, 1),
	}

	h.service.SetProgressCallback(func(index, total int, inputPath string) {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.events = append(h.events, progressEvent{index, total, inputPath})
		if batch, ok := h.service.CurrentBatch(); ok {
			h.eventsAt = append(h.eventsAt, batch.Processed())
		}
	})
	h.service.SetCompletionCallback(func(batch *model.Batch) {
		h.doneCh <- batch
	})
	return h
}

func (h *batchHarness) wait(t *testing.T) *model.Batch {
	t.Helper()
	select {
	case batch := <-h.doneCh:
		return batch
	case <-time.After(completionTimeout):
		t.Fatal("Timed out waiting for batch completion")
		return nil
	}
}

func makeInputs(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	inputs := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
			t.Fatalf("Failed to write input: %v", err)
		}
		inputs = append(inputs, path)
	}
	return inputs
}

func TestStartBatch_NoFiles(t *testing.T) {
	service := NewService("/usr/bin/ffmpeg", "")

	_, err := service.StartBatch(nil, Job{Format: model.FormatMP3})
	if err != ErrNoFiles {
		t.Errorf("Expected ErrNoFiles, got: %v", err)
	}
}

func TestStartBatch_EncoderMissing(t *testing.T) {
	service := NewService("", "")

	_, err := service.StartBatch([]string{"/in.mp4"}, Job{Format: model.FormatMP3})
	if err != ErrEncoderMissing {
		t.Errorf("Expected ErrEncoderMissing, got: %v", err)
	}
}

func TestStartBatch_InvalidFormat(t *testing.T) {
	service := NewService("/usr/bin/ffmpeg", "")

	_, err := service.StartBatch([]string{"/in.mp4"}, Job{Format: model.OutputFormat("ogg")})
	if err == nil {
		t.Error("Expected validation error for unsupported format, got nil")
	}
}

func TestStartBatch_EmitsProgressInInputOrder(t *testing.T) {
	h := newBatchHarness(t, fakeEncodeOK)
	inputs := makeInputs(t, "c.mp4", "a.mkv", "b.mov")

	batch, err := h.service.StartBatch(inputs, Job{Format: model.FormatMP3})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	result := h.wait(t)
	if result != batch {
		t.Error("Completion callback should deliver the started batch")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.events) != len(inputs) {
		t.Fatalf("Expected exactly %d progress events, got %d", len(inputs), len(h.events))
	}
	for i, event := range h.events {
		if event.index != i+1 {
			t.Errorf("Event %d: expected index %d, got %d", i, i+1, event.index)
		}
		if event.total != len(inputs) {
			t.Errorf("Event %d: expected total %d, got %d", i, len(inputs), event.total)
		}
		if event.input != inputs[i] {
			t.Errorf("Event %d: expected input %s, got %s", i, inputs[i], event.input)
		}
		// Each event fires before its own invocation is processed
		if h.eventsAt[i] != i {
			t.Errorf("Event %d fired after %d processed items, expected %d", i, h.eventsAt[i], i)
		}
	}

	if result.Succeeded != len(inputs) || result.Failed != 0 {
		t.Errorf("Expected %d/0 succeeded/failed, got %d/%d", len(inputs), result.Succeeded, result.Failed)
	}
	if result.Status != model.BatchStatusCompleted {
		t.Errorf("Expected completed batch, got %s", result.Status)
	}

	for _, task := range result.Tasks {
		if task.Status != model.TaskStatusCompleted {
			t.Errorf("Task %s: expected Completed, got %s", task.InputPath, task.Status)
		}
		if _, err := os.Stat(task.OutputPath); err != nil {
			t.Errorf("Expected output file %s to exist: %v", task.OutputPath, err)
		}
		if filepath.Ext(task.OutputPath) != ".mp3" {
			t.Errorf("Expected .mp3 output, got %s", task.OutputPath)
		}
	}
}

func TestStartBatch_ContinuesAfterFailure(t *testing.T) {
	h := newBatchHarness(t, fakeEncodeFailOnBad)
	inputs := makeInputs(t, "good1.mp4", "bad.mp4", "good2.mp4")

	if _, err := h.service.StartBatch(inputs, Job{Format: model.FormatWAV}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	result := h.wait(t)

	if result.Succeeded != 2 {
		t.Errorf("Expected 2 succeeded, got %d", result.Succeeded)
	}
	if result.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", result.Failed)
	}

	failed := result.FailedTasks()
	if len(failed) != 1 {
		t.Fatalf("Expected 1 failed task, got %d", len(failed))
	}
	if failed[0].LastError == "" {
		t.Error("Expected failed task to carry a diagnostic message")
	}
	if !strings.Contains(failed[0].LastError, "could not decode stream") {
		t.Errorf("Expected captured stderr in diagnostic, got: %s", failed[0].LastError)
	}

	// The batch carried on: the item after the failure completed
	last := result.Tasks[2]
	if last.Status != model.TaskStatusCompleted {
		t.Errorf("Expected item after failure to complete, got %s", last.Status)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.events) != 3 {
		t.Errorf("Expected 3 progress events despite the failure, got %d", len(h.events))
	}
}

func TestStartBatch_OverwriteIsIdempotent(t *testing.T) {
	inputs := makeInputs(t, "movie.mp4")
	outDir := t.TempDir()
	job := Job{Format: model.FormatMP3, OutputDir: outDir}

	firstRun := newBatchHarness(t, fakeEncodeOK)
	if _, err := firstRun.service.StartBatch(inputs, job); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	first := firstRun.wait(t)

	secondRun := newBatchHarness(t, fakeEncodeOK)
	if _, err := secondRun.service.StartBatch(inputs, job); err != nil {
		t.Fatalf("Expected no error on re-run, got: %v", err)
	}
	second := secondRun.wait(t)

	if first.Tasks[0].OutputPath != second.Tasks[0].OutputPath {
		t.Errorf("Expected identical output paths across runs, got %s and %s",
			first.Tasks[0].OutputPath, second.Tasks[0].OutputPath)
	}
	if second.Succeeded != 1 {
		t.Errorf("Expected overwrite run to succeed, got %d succeeded", second.Succeeded)
	}
}

func TestStartBatch_RejectsConcurrentRun(t *testing.T) {
	h := newBatchHarness(t, "sleep 1\n"+fakeEncodeOK)
	inputs := makeInputs(t, "movie.mp4")

	if _, err := h.service.StartBatch(inputs, Job{Format: model.FormatMP3}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	_, err := h.service.StartBatch(inputs, Job{Format: model.FormatMP3})
	if err != ErrAlreadyRunning {
		t.Errorf("Expected ErrAlreadyRunning, got: %v", err)
	}

	h.wait(t)

	if h.service.IsRunning() {
		t.Error("Expected service to be idle after completion")
	}
}

func TestCancel_AbandonsPendingItems(t *testing.T) {
	h := newBatchHarness(t, "sleep 5\n"+fakeEncodeOK)
	inputs := makeInputs(t, "one.mp4", "two.mp4", "three.mp4")

	if _, err := h.service.StartBatch(inputs, Job{Format: model.FormatMP3}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Give the first invocation a moment to start, then cancel mid-item
	time.Sleep(200 * time.Millisecond)
	if err := h.service.Cancel(); err != nil {
		t.Fatalf("Expected no error cancelling, got: %v", err)
	}

	result := h.wait(t)

	if result.Status != model.BatchStatusCancelled {
		t.Errorf("Expected cancelled batch, got %s", result.Status)
	}
	for _, task := range result.Tasks {
		if task.Status != model.TaskStatusStopped {
			t.Errorf("Task %d: expected Stopped, got %s", task.Index, task.Status)
		}
	}
	if h.service.IsRunning() {
		t.Error("Expected service to be idle after cancellation")
	}
}

func TestCancel_NotRunning(t *testing.T) {
	service := NewService("/usr/bin/ffmpeg", "")
	if err := service.Cancel(); err != ErrNotRunning {
		t.Errorf("Expected ErrNotRunning, got: %v", err)
	}
}

func TestIsProgressKey(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"frame=120", true},
		{"out_time_us=1000000", true},
		{"progress=continue", true},
		{"speed=3.4x", true},
		{"Error: could not decode stream", false},
		{"=weird", false},
		{"plain text", false},
	}

	for _, test := range tests {
		if isProgressKey(test.line) != test.expected {
			t.Errorf("isProgressKey(%q) = %v, expected %v", test.line, !test.expected, test.expected)
		}
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}
	if !strings.HasPrefix(id1, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, id1)
	}
}

const fakeEncodeFailVerbose = `i=0
while [ $i -lt 40 ]; do
	echo "decode warning line $i" >&2
	i=$((i+1))
done
echo "Error: invalid data found when processing input" >&2
exit 1`

func TestStartBatch_IdleWhenSummaryDelivered(t *testing.T) {
	service := NewService(writeFakeFFmpeg(t, fakeEncodeOK), "")
	inputs := makeInputs(t, "movie.mp4")

	type completion struct {
		runningInCallback bool
		restarted         bool
		restartErr        error
	}
	results := make(chan completion, 2)
	var restartOnce sync.Once
	service.SetCompletionCallback(func(batch *model.Batch) {
		c := completion{runningInCallback: service.IsRunning()}
		// The summary must arrive with the service idle again, so the very
		// next batch can be started from the completion handler itself.
		restartOnce.Do(func() {
			c.restarted = true
			_, c.restartErr = service.StartBatch(inputs, Job{Format: model.FormatMP3})
		})
		results <- c
	})

	if _, err := service.StartBatch(inputs, Job{Format: model.FormatMP3}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var first completion
	select {
	case first = <-results:
	case <-time.After(completionTimeout):
		t.Fatal("Timed out waiting for first completion")
	}
	if first.runningInCallback {
		t.Error("Expected service to be idle when the summary is delivered")
	}
	if !first.restarted {
		t.Fatal("Expected the first completion to attempt a restart")
	}
	if first.restartErr != nil {
		t.Errorf("Expected restart from the completion callback to succeed, got: %v", first.restartErr)
	}

	var second completion
	select {
	case second = <-results:
	case <-time.After(completionTimeout):
		t.Fatal("Timed out waiting for restarted batch completion")
	}
	if second.runningInCallback {
		t.Error("Expected service to be idle after the restarted batch")
	}
}

func TestStartBatch_FailureDiagnosticKeepsTail(t *testing.T) {
	h := newBatchHarness(t, fakeEncodeFailVerbose)
	inputs := makeInputs(t, "movie.mp4")

	if _, err := h.service.StartBatch(inputs, Job{Format: model.FormatMP3}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	result := h.wait(t)

	failed := result.FailedTasks()
	if len(failed) != 1 {
		t.Fatalf("Expected 1 failed task, got %d", len(failed))
	}
	// The final stderr line must survive even when the tool is chatty,
	// so the tail has to be read to EOF before the process is reaped
	if !strings.Contains(failed[0].LastError, "invalid data found when processing input") {
		t.Errorf("Expected the last stderr line in the diagnostic, got: %s", failed[0].LastError)
	}
	if strings.Contains(failed[0].LastError, "decode warning line 0") {
		t.Error("Expected early stderr lines to fall out of the bounded tail")
	}
}
