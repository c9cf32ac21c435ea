package ui

import (
	"fmt"
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/speedtake/audio-extractor/internal/model"
)

// FileRow represents one selected input file in the list: its name, the status
// of its extraction task (if a batch has touched it), and a remove action.
type FileRow struct {
	widget.BaseWidget

	path         string
	task         *model.ExtractionTask
	localization *Localization

	titleLabel   *widget.Label
	statusLabel  *widget.Label
	percentLabel *widget.Label
	removeBtn    *widget.Button

	onRemove func(path string)
}

// NewFileRow creates a new file row widget
func NewFileRow(localization *Localization) *FileRow {
	fr := &FileRow{
		localization: localization,
	}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

// SetCallbacks sets the action callbacks
func (fr *FileRow) SetCallbacks(onRemove func(path string)) {
	fr.onRemove = onRemove
}

// Update binds the row to an input path and its current task state. task may
// be nil when no batch has processed this file yet.
func (fr *FileRow) Update(path string, task *model.ExtractionTask) {
	fr.path = path
	fr.task = task
	fr.updateFromState()
	fr.Refresh()
}

// createUI creates the UI components
func (fr *FileRow) createUI() {
	fr.titleLabel = widget.NewLabel("")
	fr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	fr.titleLabel.Alignment = fyne.TextAlignLeading

	fr.statusLabel = widget.NewLabel("")
	fr.statusLabel.Alignment = fyne.TextAlignTrailing

	fr.percentLabel = widget.NewLabel("")
	fr.percentLabel.Alignment = fyne.TextAlignTrailing

	fr.removeBtn = widget.NewButton(IconClose, func() {
		if fr.onRemove != nil && fr.path != "" {
			fr.onRemove(fr.path)
		}
	})
	fr.removeBtn.Importance = widget.LowImportance
}

// updateFromState updates UI components from the bound path and task
func (fr *FileRow) updateFromState() {
	fr.titleLabel.SetText(filepath.Base(fr.path))

	if fr.task == nil {
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText("")
		fr.percentLabel.SetText(DashPlaceholder)
		fr.removeBtn.Enable()
		return
	}

	switch fr.task.Status {
	case model.TaskStatusError:
		fr.statusLabel.Importance = widget.DangerImportance
		fr.statusLabel.SetText(IconError + " " + fr.task.Status.String())
	case model.TaskStatusCompleted:
		fr.statusLabel.Importance = widget.SuccessImportance
		fr.statusLabel.SetText(fr.task.Status.String())
	case model.TaskStatusExtracting, model.TaskStatusStarting:
		fr.statusLabel.Importance = widget.HighImportance
		fr.statusLabel.SetText(IconPlay + " " + fr.task.Status.String())
	case model.TaskStatusPending:
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText(IconWaiting + " " + fr.task.Status.String())
	case model.TaskStatusStopped:
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText(IconStopped + " " + fr.task.Status.String())
	default:
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText(fr.task.Status.String())
	}

	switch {
	case fr.task.Status == model.TaskStatusCompleted:
		fr.percentLabel.SetText("")
	case fr.task.Status.IsActive() && fr.task.Percent > 0:
		fr.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, clampPercent(fr.task.Percent)))
	default:
		fr.percentLabel.SetText("")
	}

	// Rows cannot be removed while their batch is in flight
	if fr.task.Status.IsActive() || fr.task.Status == model.TaskStatusPending {
		fr.removeBtn.Disable()
	} else {
		fr.removeBtn.Enable()
	}
}

// clampPercent bounds a percentage into [0,100]
func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > MaxProgressPercent {
		return MaxProgressPercent
	}
	return p
}

// MinSize keeps rows usable when the window gets narrow
func (fr *FileRow) MinSize() fyne.Size {
	min := fr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	// Fix info column widths with transparent rectangles underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(StatusLabelWidth, fr.statusLabel),
		fixedWidth(PercentLabelWidth, fr.percentLabel),
		fr.removeBtn,
	)

	row := container.NewBorder(nil, nil, nil, info, fr.titleLabel)
	content := container.NewVBox(row, widget.NewSeparator())

	return widget.NewSimpleRenderer(content)
}
