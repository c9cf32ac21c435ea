package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, ffmpeg/ffprobe discovery, and OS open/reveal.
