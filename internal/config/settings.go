package config

import (
	"fyne.io/fyne/v2"

	"github.com/speedtake/audio-extractor/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir      = "output_directory"
	KeyOutputFormat   = "output_format"
	KeyRecursiveScan  = "recursive_folder_scan"
	KeyAutoOpenFolder = "auto_open_folder_on_complete"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultOutputFormat   = model.FormatMP3
	DefaultRecursiveScan  = true
	DefaultAutoOpenFolder = false
	DefaultLanguage       = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory. Empty means
// "write each audio file next to its source video".
func (s *Settings) GetOutputDirectory() string {
	return s.app.Preferences().String(KeyOutputDir)
}

// SetOutputDirectory sets the output directory; empty clears the override
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetOutputFormat returns the configured output format
func (s *Settings) GetOutputFormat() model.OutputFormat {
	stored := s.app.Preferences().String(KeyOutputFormat)
	format, err := model.ParseOutputFormat(stored)
	if err != nil {
		s.SetOutputFormat(DefaultOutputFormat)
		return DefaultOutputFormat
	}
	return format
}

// SetOutputFormat sets the output format; unknown values fall back to the default
func (s *Settings) SetOutputFormat(format model.OutputFormat) {
	if !format.IsValid() {
		format = DefaultOutputFormat
	}
	s.app.Preferences().SetString(KeyOutputFormat, format.String())
}

// GetRecursiveScan returns whether folder additions descend into subfolders
func (s *Settings) GetRecursiveScan() bool {
	return s.app.Preferences().BoolWithFallback(KeyRecursiveScan, DefaultRecursiveScan)
}

// SetRecursiveScan sets whether folder additions descend into subfolders
func (s *Settings) SetRecursiveScan(recursive bool) {
	s.app.Preferences().SetBool(KeyRecursiveScan, recursive)
}

// GetAutoOpenFolder returns whether to open the output folder after a batch
func (s *Settings) GetAutoOpenFolder() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenFolder, DefaultAutoOpenFolder)
}

// SetAutoOpenFolder sets whether to open the output folder after a batch
func (s *Settings) SetAutoOpenFolder(autoOpen bool) {
	s.app.Preferences().SetBool(KeyAutoOpenFolder, autoOpen)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetOutputFormatOptions returns the selectable output formats
func (s *Settings) GetOutputFormatOptions() []model.OutputFormat {
	return model.OutputFormats()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
