package utils

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/rios-reaper/model"
)

const (
	colorQuiet = "#1a9850"
	colorLow   = "#66c2a5"
	colorWarm  = "#fee08b"
)

var chartFrameStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawUtilizationChart renders peak CPU per idle instance so a human can
// sanity-check the verdicts before reaping anything
func DrawUtilizationChart(instances []model.IdleInstance, threshold float64) {
	if len(instances) == 0 {
		return
	}

	bc := barchart.New(100, 15)

	for _, instance := range instances {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f%%", instance.InstanceID, instance.PeakUtilization),
			Values: []barchart.BarValue{
				{
					Value: instance.PeakUtilization,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(peakColor(instance.PeakUtilization, threshold))),
				},
			},
		})
	}

	bc.Draw()

	fmt.Println()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, chartFrameStyle.Render(bc.View())))
}

func peakColor(peak, threshold float64) string {
	switch {
	case peak < threshold/2:
		return colorQuiet
	case peak < threshold*0.9:
		return colorLow
	default:
		return colorWarm
	}
}
