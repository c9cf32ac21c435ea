package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/speedtake/audio-extractor/internal/config"
	"github.com/speedtake/audio-extractor/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	outputDirEntry *widget.Entry
	formatSelect   *widget.Select
	recursiveCheck *widget.Check
	autoOpenCheck  *widget.Check
	languageSelect *widget.Select

	onSaved func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// SetOnSaved sets a callback invoked after settings are persisted
func (sd *SettingsDialog) SetOnSaved(fn func()) {
	sd.onSaved = fn
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Output directory selection; empty means "next to each source video"
	sd.outputDirEntry = widget.NewEntry()
	sd.outputDirEntry.SetPlaceHolder("Same folder as each video")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	// Output format selection
	formatOptions := []string{}
	for _, format := range sd.settings.GetOutputFormatOptions() {
		formatOptions = append(formatOptions, format.String())
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	sd.recursiveCheck = widget.NewCheck(sd.localization.GetText(KeyRecursiveScan), nil)
	sd.autoOpenCheck = widget.NewCheck(sd.localization.GetText(KeyAutoOpenFolder), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyOutputFolder)+":"),
		outputDirRow,

		widget.NewLabel(sd.localization.GetText(KeyOutputFormat)+":"),
		sd.formatSelect,

		sd.recursiveCheck,
		sd.autoOpenCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.formatSelect.SetSelected(sd.settings.GetOutputFormat().String())
	sd.recursiveCheck.SetChecked(sd.settings.GetRecursiveScan())
	sd.autoOpenCheck.SetChecked(sd.settings.GetAutoOpenFolder())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Empty output directory is valid and clears the override
	sd.settings.SetOutputDirectory(sd.outputDirEntry.Text)

	if sd.formatSelect.Selected != "" {
		if format, err := model.ParseOutputFormat(sd.formatSelect.Selected); err == nil {
			sd.settings.SetOutputFormat(format)
		}
	}

	sd.settings.SetRecursiveScan(sd.recursiveCheck.Checked)
	sd.settings.SetAutoOpenFolder(sd.autoOpenCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
