package extract

// Package extract implements the audio extraction pipeline built on the
// external FFmpeg binary. It owns job configuration (format, codec arguments,
// output path rule) and the sequential batch runner with progress propagation
// to the UI.
