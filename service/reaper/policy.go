package reaper

// IsIdle reports whether a sample series classifies an instance as idle:
// the series must cover every expected period and every sample must stay
// below the threshold. A short series never classifies as idle, whatever its
// values: absence of data is unknown, not idle.
func IsIdle(samples []float64, numPeriods int, threshold float64) bool {
	if len(samples) != numPeriods {
		return false
	}

	for _, sample := range samples {
		if sample >= threshold {
			return false
		}
	}

	return true
}

// PeakUtilization returns the maximum of a sample series, 0 when empty
func PeakUtilization(samples []float64) float64 {
	var peak float64
	for _, sample := range samples {
		if sample > peak {
			peak = sample
		}
	}
	return peak
}
