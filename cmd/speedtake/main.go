package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/speedtake/audio-extractor/internal/extract"
	"github.com/speedtake/audio-extractor/internal/platform"
	"github.com/speedtake/audio-extractor/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.speedtake.audio-extractor")
	myWindow := myApp.NewWindow("SpeedTake")
	myWindow.Resize(fyne.NewSize(720, 520))

	ffmpegPath, _ := platform.FindFFmpeg()
	ffprobePath, _ := platform.FindFFprobe()
	extractSvc := extract.NewService(ffmpegPath, ffprobePath)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, extractSvc, ffmpegPath)

	// Show and run
	myWindow.ShowAndRun()
}
