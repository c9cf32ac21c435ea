package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconError    = "❌"
	IconWaiting  = "⏳"
	IconStopped  = "⏹"
	IconClose    = "×"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (FileRow / lists)
const (
	StatusLabelWidth  float32 = 96
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 44
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Progress calculation constants
const (
	MaxProgressPercent = 100
)
