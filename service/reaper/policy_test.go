package reaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdle(t *testing.T) {
	tests := []struct {
		name       string
		samples    []float64
		numPeriods int
		threshold  float64
		expected   bool
	}{
		{
			name:       "full window below threshold",
			samples:    []float64{0.1, 0.5, 0.3, 0.9, 0.2, 0.4, 0.1, 0.6, 0.7, 0.2, 0.3, 0.8},
			numPeriods: 12,
			threshold:  1.0,
			expected:   true,
		},
		{
			name:       "full window with one busy period",
			samples:    []float64{0.1, 0.5, 0.3, 0.9, 42.0, 0.4, 0.1, 0.6, 0.7, 0.2, 0.3, 0.8},
			numPeriods: 12,
			threshold:  1.0,
			expected:   false,
		},
		{
			name:       "sample exactly at threshold is not idle",
			samples:    []float64{0.1, 0.5, 0.3, 0.9, 1.0, 0.4, 0.1, 0.6, 0.7, 0.2, 0.3, 0.8},
			numPeriods: 12,
			threshold:  1.0,
			expected:   false,
		},
		{
			name:       "short history is never idle even when all zero",
			samples:    []float64{0, 0, 0, 0, 0, 0, 0, 0},
			numPeriods: 12,
			threshold:  1.0,
			expected:   false,
		},
		{
			name:       "empty history is never idle",
			samples:    nil,
			numPeriods: 12,
			threshold:  1.0,
			expected:   false,
		},
		{
			name:       "too many samples is not a complete window",
			samples:    []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			numPeriods: 12,
			threshold:  1.0,
			expected:   false,
		},
		{
			name:       "custom window and threshold",
			samples:    []float64{3.2, 4.9, 2.1},
			numPeriods: 3,
			threshold:  5.0,
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsIdle(tt.samples, tt.numPeriods, tt.threshold))
		})
	}
}

func TestPeakUtilization(t *testing.T) {
	assert.Equal(t, 0.0, PeakUtilization(nil))
	assert.Equal(t, 0.9, PeakUtilization([]float64{0.1, 0.9, 0.3}))
}
