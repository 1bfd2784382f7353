package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var activeSpinner *spinner.Spinner

func DrawBanner() {
	banner := figure.NewColorFigure("rios reaper", "", "green", true)
	banner.Print()
}

func StartSpinner() {
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	activeSpinner.Suffix = " Inspecting fleet..."
	activeSpinner.Start()
}

func StopSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
		activeSpinner = nil
	}
}
