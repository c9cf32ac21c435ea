package ui

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/speedtake/audio-extractor/internal/config"
	"github.com/speedtake/audio-extractor/internal/extract"
	"github.com/speedtake/audio-extractor/internal/inventory"
	"github.com/speedtake/audio-extractor/internal/model"
	"github.com/speedtake/audio-extractor/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	inventory    *inventory.Inventory
	extractSvc   extract.Extractor
	ffmpegPath   string

	// UI components
	fileList       *widget.List
	addFilesBtn    *widget.Button
	addFolderBtn   *widget.Button
	clearBtn       *widget.Button
	outputDirEntry *widget.Entry
	browseBtn      *widget.Button
	formatRadio    *widget.RadioGroup
	formatLabel    *widget.Label
	startBtn       *widget.Button
	cancelBtn      *widget.Button
	progressBar    *widget.ProgressBar
	statusLabel    *widget.Label

	settingsDialog *SettingsDialog

	// Latest task state per input path, for list rendering
	taskMutex   sync.Mutex
	taskByPath  map[string]*model.ExtractionTask
	listedFiles []string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, extractSvc extract.Extractor, ffmpegPath string) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		inventory:    inventory.New(),
		extractSvc:   extractSvc,
		ffmpegPath:   ffmpegPath,
		taskByPath:   make(map[string]*model.ExtractionTask),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire up extraction service callbacks
	ui.extractSvc.SetTaskCallback(ui.onTaskUpdate)
	ui.extractSvc.SetProgressCallback(ui.onProgressEvent)
	ui.extractSvc.SetCompletionCallback(ui.onBatchComplete)

	ui.setupUI()
	ui.reportEncoderStatus()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// File list actions
	ui.addFilesBtn = widget.NewButton(ui.localization.GetText(KeyAddFiles), ui.onAddFiles)
	ui.addFolderBtn = widget.NewButton(ui.localization.GetText(KeyAddFolder), ui.onAddFolder)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearList), ui.onClearList)
	ui.clearBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	actionsRow := container.NewHBox(ui.addFilesBtn, ui.addFolderBtn, ui.clearBtn, settingsBtn)

	// Output directory row
	ui.outputDirEntry = widget.NewEntry()
	ui.outputDirEntry.SetPlaceHolder("Same folder as each video")
	ui.outputDirEntry.SetText(ui.settings.GetOutputDirectory())
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseOutputDir)
	outputRow := container.NewBorder(nil, nil, widget.NewLabel(ui.localization.GetText(KeyOutputFolder)+":"), ui.browseBtn, ui.outputDirEntry)

	// Output format selection
	formatOptions := []string{}
	for _, format := range model.OutputFormats() {
		formatOptions = append(formatOptions, format.String())
	}
	ui.formatRadio = widget.NewRadioGroup(formatOptions, nil)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.SetSelected(ui.settings.GetOutputFormat().String())
	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeyOutputFormat) + ":")
	formatRow := container.NewHBox(ui.formatLabel, ui.formatRadio)

	// Start / cancel controls
	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyStartExtraction), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancelExtraction), ui.onCancelClick)
	ui.cancelBtn.Importance = widget.DangerImportance
	ui.cancelBtn.Hide()

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()

	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	controls := container.NewVBox(
		container.NewHBox(ui.startBtn, ui.cancelBtn),
		ui.progressBar,
		ui.statusLabel,
	)

	// File list
	ui.fileList = widget.NewList(
		func() int {
			ui.taskMutex.Lock()
			defer ui.taskMutex.Unlock()
			return len(ui.listedFiles)
		},
		func() fyne.CanvasObject {
			row := NewFileRow(ui.localization)
			row.SetCallbacks(ui.onRemoveFile)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateFileItem(id, obj)
		},
	)

	top := container.NewVBox(actionsRow, outputRow, formatRow, widget.NewSeparator())

	content := container.NewBorder(
		top,      // top
		controls, // bottom
		nil,      // left
		nil,      // right
		ui.fileList,
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.addFilesBtn.SetText(ui.localization.GetText(KeyAddFiles))
	ui.addFolderBtn.SetText(ui.localization.GetText(KeyAddFolder))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearList))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.formatLabel.SetText(ui.localization.GetText(KeyOutputFormat) + ":")
	ui.startBtn.SetText(ui.localization.GetText(KeyStartExtraction))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancelExtraction))
	if !ui.extractSvc.IsRunning() {
		ui.statusLabel.SetText(ui.localization.GetText(KeyReady))
	}

	ui.fileList.Refresh()
}

// reportEncoderStatus surfaces the startup FFmpeg check in the status line
func (ui *RootUI) reportEncoderStatus() {
	if ui.ffmpegPath == "" {
		log.Printf("FFmpeg not found on startup")
		ui.statusLabel.SetText(ui.localization.GetText(KeyFFmpegMissing))
		dialog.ShowInformation(
			ui.localization.GetText(KeyAppTitle),
			ui.localization.GetText(KeyFFmpegMissing),
			ui.window,
		)
		return
	}

	log.Printf("FFmpeg found at %s", ui.ffmpegPath)
	ui.statusLabel.SetText(ui.localization.GetText(KeyFFmpegFound))
}

// updateFileItem binds a list row to the file at the given index
func (ui *RootUI) updateFileItem(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*FileRow)
	if !ok {
		return
	}

	ui.taskMutex.Lock()
	if id < 0 || id >= len(ui.listedFiles) {
		ui.taskMutex.Unlock()
		return
	}
	path := ui.listedFiles[id]
	task := ui.taskByPath[path]
	ui.taskMutex.Unlock()

	row.Update(path, task)
}

// refreshFileList re-reads the inventory and redraws the list
func (ui *RootUI) refreshFileList() {
	files := ui.inventory.Files()

	ui.taskMutex.Lock()
	ui.listedFiles = files
	ui.taskMutex.Unlock()

	ui.fileList.Refresh()
}

// videoExtensionFilter builds the file-open filter from the scan allow-list
func videoExtensionFilter() storage.FileFilter {
	extensions := make([]string, 0, len(inventory.VideoExtensions))
	for ext := range inventory.VideoExtensions {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return storage.NewExtensionFileFilter(extensions)
}

// onAddFiles handles adding a single video file via the file picker
func (ui *RootUI) onAddFiles() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		added, addErr := ui.inventory.Add(reader.URI().Path())
		if addErr != nil {
			ui.showInventoryError(addErr)
			return
		}
		log.Printf("Added %d file(s) from picker", len(added))
		ui.refreshFileList()
	}, ui.window)

	fileDialog.SetFilter(videoExtensionFilter())
	fileDialog.Show()
}

// onAddFolder handles adding every video found in a folder
func (ui *RootUI) onAddFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}

		recursive := ui.settings.GetRecursiveScan()
		scan, scanErr := ui.inventory.AddFolder(uri.Path(), recursive)
		if scanErr != nil {
			ui.showInventoryError(scanErr)
			return
		}

		log.Printf("Folder scan of %s (recursive=%v): %d found, %d added, %d errors",
			uri.Path(), recursive, scan.Found, len(scan.Added), len(scan.Errors))

		if len(scan.Errors) > 0 {
			ui.showScanErrors(scan)
		}

		if scan.Found == 0 {
			if len(scan.Errors) == 0 {
				ui.showToast(ui.localization.GetText(KeyNoVideosFound))
			}
			return
		}

		ui.refreshFileList()
		ui.showToast(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyAddFolder), len(scan.Added)))
	}, ui.window)
}

// scanErrorsMessage lists the entries a folder scan could not read
func (ui *RootUI) scanErrorsMessage(scan *inventory.FolderScan) string {
	var sb strings.Builder
	sb.WriteString(ui.localization.GetText(KeyScanErrors))
	for _, entry := range scan.Errors {
		sb.WriteString("\n")
		sb.WriteString(entry)
	}
	return sb.String()
}

// showScanErrors reports per-entry scan failures; the rest of the scan result
// still stands
func (ui *RootUI) showScanErrors(scan *inventory.FolderScan) {
	message := widget.NewLabel(ui.scanErrorsMessage(scan))
	message.Wrapping = fyne.TextWrapWord

	scanDialog := dialog.NewCustom(
		ui.localization.GetText(KeyAddFolder),
		ui.localization.GetText(KeyClose),
		container.NewVScroll(message),
		ui.window,
	)
	scanDialog.Resize(fyne.NewSize(RowMinWidth+120, 240))
	scanDialog.Show()
}

// onClearList empties the file list
func (ui *RootUI) onClearList() {
	if err := ui.inventory.Clear(); err != nil {
		ui.showInventoryError(err)
		return
	}

	ui.taskMutex.Lock()
	ui.taskByPath = make(map[string]*model.ExtractionTask)
	ui.taskMutex.Unlock()

	ui.refreshFileList()
	ui.statusLabel.SetText(ui.localization.GetText(KeyReady))
}

// onRemoveFile handles removing one file from the list
func (ui *RootUI) onRemoveFile(path string) {
	if err := ui.inventory.Remove(path); err != nil {
		ui.showInventoryError(err)
		return
	}

	ui.taskMutex.Lock()
	delete(ui.taskByPath, path)
	ui.taskMutex.Unlock()

	ui.refreshFileList()
}

// showInventoryError reports a file-list mutation failure
func (ui *RootUI) showInventoryError(err error) {
	if errors.Is(err, inventory.ErrLocked) {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyFilesLocked)), ui.window.Canvas())
		return
	}
	log.Printf("Inventory error: %v", err)
	widget.ShowPopUp(widget.NewLabel(err.Error()), ui.window.Canvas())
}

// onBrowseOutputDir handles output directory browsing
func (ui *RootUI) onBrowseOutputDir() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outputDirEntry.SetText(uri.Path())
		ui.settings.SetOutputDirectory(uri.Path())
	}, ui.window)

	// Start browsing from the configured folder, falling back to ~/Music
	startDir := ui.settings.GetOutputDirectory()
	if startDir == "" {
		if musicDir, err := platform.GetHomeMusicDir(); err == nil {
			startDir = musicDir
		}
	}
	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}

	folderDialog.Show()
}

// onShowSettings handles opening the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settingsDialog == nil {
		ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window)
		ui.settingsDialog.SetOnSaved(func() {
			ui.outputDirEntry.SetText(ui.settings.GetOutputDirectory())
			ui.formatRadio.SetSelected(ui.settings.GetOutputFormat().String())
			ui.onLanguageChange(ui.settings.GetLanguage())
		})
	}
	ui.settingsDialog.Show()
}

// onStartClick kicks off a batch over the current file list
func (ui *RootUI) onStartClick() {
	files := ui.inventory.Files()
	if len(files) == 0 {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoFilesSelected)), ui.window.Canvas())
		return
	}

	format, err := model.ParseOutputFormat(ui.formatRadio.Selected)
	if err != nil {
		format = ui.settings.GetOutputFormat()
	}

	job := extract.Job{
		Format:    format,
		OutputDir: strings.TrimSpace(ui.outputDirEntry.Text),
	}

	// Persist the choices for the next session
	ui.settings.SetOutputFormat(format)
	ui.settings.SetOutputDirectory(job.OutputDir)

	// Lock the list and reset row state before the worker launches, so the
	// first task update cannot land in a map about to be wiped
	ui.inventory.SetLocked(true)
	ui.taskMutex.Lock()
	ui.taskByPath = make(map[string]*model.ExtractionTask)
	ui.taskMutex.Unlock()

	batch, err := ui.extractSvc.StartBatch(files, job)
	if err != nil {
		ui.inventory.SetLocked(false)
		log.Printf("Failed to start batch: %v", err)
		if errors.Is(err, extract.ErrEncoderMissing) {
			dialog.ShowInformation(
				ui.localization.GetText(KeyAppTitle),
				ui.localization.GetText(KeyFFmpegMissing),
				ui.window,
			)
			return
		}
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("Batch %s started: %d files to %s as %s", batch.ID, batch.TotalFiles, batch.OutputDir, batch.Format)

	ui.setRunningState(true)
	ui.progressBar.SetValue(0)
	ui.fileList.Refresh()
}

// onCancelClick stops the running batch
func (ui *RootUI) onCancelClick() {
	if err := ui.extractSvc.Cancel(); err != nil {
		log.Printf("Cancel failed: %v", err)
		return
	}
	ui.cancelBtn.Disable()
}

// setRunningState toggles controls between idle and extracting
func (ui *RootUI) setRunningState(running bool) {
	if running {
		ui.startBtn.Hide()
		ui.cancelBtn.Enable()
		ui.cancelBtn.Show()
		ui.progressBar.Show()
		ui.addFilesBtn.Disable()
		ui.addFolderBtn.Disable()
		ui.clearBtn.Disable()
		ui.browseBtn.Disable()
		ui.formatRadio.Disable()
		return
	}

	ui.startBtn.Show()
	ui.cancelBtn.Hide()
	ui.addFilesBtn.Enable()
	ui.addFolderBtn.Enable()
	ui.clearBtn.Enable()
	ui.browseBtn.Enable()
	ui.formatRadio.Enable()
}

// onProgressEvent handles the per-item event fired before each extraction
func (ui *RootUI) onProgressEvent(index, total int, inputPath string) {
	log.Printf("Processing %d/%d: %s", index, total, inputPath)

	name := inputPath
	if task := ui.lookupTask(inputPath); task != nil {
		name = task.GetDisplayTitle()
	}

	fyne.Do(func() {
		ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyProcessing), index, total, name))
		if total > 0 {
			ui.progressBar.SetValue(float64(index-1) / float64(total))
		}
	})
}

// onTaskUpdate handles per-task state changes from the extraction service
func (ui *RootUI) onTaskUpdate(task *model.ExtractionTask) {
	log.Printf("Task update: id=%s input=%s status=%s percent=%d",
		task.ID, task.InputPath, task.Status, task.Percent)

	ui.taskMutex.Lock()
	ui.taskByPath[task.InputPath] = task
	index := -1
	for i, path := range ui.listedFiles {
		if path == task.InputPath {
			index = i
			break
		}
	}
	ui.taskMutex.Unlock()

	fyne.Do(func() {
		if task.Total > 0 {
			done := float64(task.Index-1) + float64(clampPercent(task.Percent))/float64(MaxProgressPercent)
			ui.progressBar.SetValue(done / float64(task.Total))
		}
		if index >= 0 {
			ui.fileList.RefreshItem(index)
		} else {
			ui.fileList.Refresh()
		}
	})
}

// lookupTask returns the latest known task for an input path, or nil
func (ui *RootUI) lookupTask(inputPath string) *model.ExtractionTask {
	ui.taskMutex.Lock()
	defer ui.taskMutex.Unlock()
	return ui.taskByPath[inputPath]
}

// onBatchComplete handles the end of a batch run
func (ui *RootUI) onBatchComplete(batch *model.Batch) {
	log.Printf("Batch %s finished: status=%s succeeded=%d failed=%d",
		batch.ID, batch.Status, batch.Succeeded, batch.Failed)

	ui.inventory.SetLocked(false)

	fyne.Do(func() {
		ui.setRunningState(false)
		ui.progressBar.SetValue(batch.Progress())
		ui.fileList.Refresh()

		switch {
		case batch.Status == model.BatchStatusCancelled:
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyExtractionStopped),
				batch.Processed(), batch.TotalFiles))
		case batch.AllSucceeded():
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyExtractionComplete), batch.TotalFiles))
			ui.showCompletionDialog(batch)
			ui.sendCompletionNotification(batch)
			ui.maybeOpenOutputFolder(batch)
		case batch.Succeeded > 0:
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyPartialSuccess),
				batch.Succeeded, batch.TotalFiles))
			ui.showFailureDialog(batch)
			ui.maybeOpenOutputFolder(batch)
		default:
			ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyExtractionFailed), batch.TotalFiles))
			ui.showFailureDialog(batch)
		}
	})
}

// showCompletionDialog offers play/open actions after a fully successful batch
func (ui *RootUI) showCompletionDialog(batch *model.Batch) {
	message := widget.NewLabel(fmt.Sprintf(ui.localization.GetText(KeyExtractionComplete), batch.TotalFiles))
	message.Wrapping = fyne.TextWrapWord

	var completionDialog *dialog.CustomDialog

	actions := container.NewHBox()
	// Playing one file only makes sense when exactly one was produced
	if batch.Succeeded == 1 && batch.LastOutputPath != "" {
		playBtn := widget.NewButton(ui.localization.GetText(KeyPlayFile), func() {
			ui.openOutputFile(batch.LastOutputPath)
			completionDialog.Hide()
		})
		playBtn.Importance = widget.HighImportance
		actions.Add(playBtn)
	}
	if batch.LastOutputPath != "" {
		openBtn := widget.NewButton(ui.localization.GetText(KeyOpenFolder), func() {
			ui.revealOutputFile(batch.LastOutputPath)
			completionDialog.Hide()
		})
		actions.Add(openBtn)
	}

	content := container.NewVBox(message, actions)
	completionDialog = dialog.NewCustom(
		ui.localization.GetText(KeyAppTitle),
		ui.localization.GetText(KeyClose),
		content,
		ui.window,
	)
	completionDialog.Show()
}

// showFailureDialog lists the inputs that could not be converted
func (ui *RootUI) showFailureDialog(batch *model.Batch) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(ui.localization.GetText(KeyPartialSuccess), batch.Succeeded, batch.TotalFiles))
	sb.WriteString("\n")
	for _, task := range batch.FailedTasks() {
		sb.WriteString("\n")
		sb.WriteString(task.GetDisplayTitle())
		if task.LastError != "" {
			sb.WriteString(MiddleDotSeparator)
			sb.WriteString(task.LastError)
		}
	}

	message := widget.NewLabel(sb.String())
	message.Wrapping = fyne.TextWrapWord

	failureDialog := dialog.NewCustom(
		ui.localization.GetText(KeyAppTitle),
		ui.localization.GetText(KeyClose),
		container.NewVScroll(message),
		ui.window,
	)
	failureDialog.Resize(fyne.NewSize(RowMinWidth+120, 280))
	failureDialog.Show()
}

// sendCompletionNotification sends a system notification for a finished batch
func (ui *RootUI) sendCompletionNotification(batch *model.Batch) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyAppTitle),
		Content: fmt.Sprintf(ui.localization.GetText(KeyExtractionComplete), batch.TotalFiles),
	})
}

// maybeOpenOutputFolder applies the auto-open preference after a batch
func (ui *RootUI) maybeOpenOutputFolder(batch *model.Batch) {
	if !ui.settings.GetAutoOpenFolder() || batch.LastOutputPath == "" {
		return
	}
	ui.revealOutputFile(batch.LastOutputPath)
}

// openOutputFile opens an extracted file with the default player
func (ui *RootUI) openOutputFile(filePath string) {
	if err := platform.OpenPathWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// revealOutputFile shows an extracted file in the system file manager
func (ui *RootUI) revealOutputFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// showToast shows a transient in-app notification in the top-right corner
func (ui *RootUI) showToast(message string) {
	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, closeBtn, messageLabel)
	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight/2)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.ShowAtPosition(toastPos)

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}
