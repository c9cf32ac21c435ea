package model

import (
	"testing"
	"time"
)

func TestExtractionTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		inputPath string
		expected  string
	}{
		{"/videos/movie.mp4", "movie"},
		{"C:\\videos\\clip.mkv", "clip"},
		{"movie.mp4", "movie"},
		{"/videos/no_extension", "no_extension"},
		{"", ""},
	}

	for _, test := range tests {
		task := &ExtractionTask{InputPath: test.inputPath}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with InputPath='%s' = '%s', expected '%s'",
				test.inputPath, result, test.expected)
		}
	}
}

func TestExtractionTask_Succeeded(t *testing.T) {
	tests := []struct {
		status     TaskStatus
		outputPath string
		expected   bool
	}{
		{TaskStatusCompleted, "/out/movie.mp3", true},
		{TaskStatusCompleted, "", false},
		{TaskStatusError, "/out/movie.mp3", false},
		{TaskStatusPending, "", false},
	}

	for _, test := range tests {
		task := &ExtractionTask{Status: test.status, OutputPath: test.outputPath}
		if task.Succeeded() != test.expected {
			t.Errorf("Succeeded() with status=%s output='%s' = %v, expected %v",
				test.status, test.outputPath, task.Succeeded(), test.expected)
		}
	}
}

func TestExtractionTask_Creation(t *testing.T) {
	now := time.Now()
	task := &ExtractionTask{
		ID:        "test-123",
		InputPath: "/videos/movie.mp4",
		Format:    FormatMP3,
		Status:    TaskStatusPending,
		Progress:  0.0,
		Percent:   0,
		Index:     1,
		Total:     3,
		StartedAt: now,
	}

	if task.ID != "test-123" {
		t.Errorf("Expected ID to be 'test-123', got '%s'", task.ID)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status to be TaskStatusPending, got %s", task.Status)
	}

	if !task.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, task.StartedAt)
	}
}
