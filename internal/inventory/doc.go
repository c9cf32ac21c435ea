package inventory

// Package inventory maintains the user's ordered selection of input video
// files: explicit additions, folder scans against the video-extension
// allow-list, and the mutation lock held while a batch is running.
