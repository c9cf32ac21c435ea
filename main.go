package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/speedtake/audio-extractor/internal/extract"
	"github.com/speedtake/audio-extractor/internal/platform"
	"github.com/speedtake/audio-extractor/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.speedtake.audio-extractor"
	AppName = "SpeedTake"

	WindowWidth  = 720
	WindowHeight = 520
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Locate the external tools once at startup. A bundled copy next to the
	// executable wins over whatever is on the PATH.
	ffmpegPath, err := platform.FindFFmpeg()
	if err != nil {
		log.Printf("ffmpeg lookup failed: %v", err)
	}
	ffprobePath, err := platform.FindFFprobe()
	if err != nil {
		log.Printf("ffprobe lookup failed: %v", err)
	}

	extractSvc := extract.NewService(ffmpegPath, ffprobePath)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, extractSvc, ffmpegPath)

	// Show and run
	myWindow.ShowAndRun()
}
