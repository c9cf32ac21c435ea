package extract

import (
	"github.com/speedtake/audio-extractor/internal/model"
)

// Extractor defines the interface for the batch extraction service.
type Extractor interface {
	SetTaskCallback(func(*model.ExtractionTask))
	SetProgressCallback(func(index, total int, inputPath string))
	SetCompletionCallback(func(*model.Batch))

	// StartBatch validates the job and begins processing the inputs in order,
	// one encoder invocation at a time.
	StartBatch(inputs []string, job Job) (*model.Batch, error)

	// Cancel stops the run: the in-flight invocation is terminated and pending
	// items are abandoned; completed results stay in the summary.
	Cancel() error

	IsRunning() bool
	CurrentBatch() (*model.Batch, bool)
}
