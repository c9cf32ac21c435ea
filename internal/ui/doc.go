package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the extraction service and renders the file list,
// batch progress, notifications, and settings. All UI strings are localized via
// Localization.
