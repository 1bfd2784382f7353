package reaper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name     string
		idle     []string
		stopped  []string
		unused   []string
		expected string
	}{
		{
			name:     "nothing to report",
			expected: "No Idle Instances detected\nNo Stopped Clusters found",
		},
		{
			name:     "idle instances only",
			idle:     []string{"i-1", "i-2"},
			expected: "The following idle instances were found: i-1,i-2\nNo Stopped Clusters found",
		},
		{
			name:     "stopped clusters only",
			stopped:  []string{"c-X"},
			expected: "No Idle Instances detected\nThe following stopped clusters were found: c-X",
		},
		{
			name:     "both findings",
			idle:     []string{"i-1"},
			stopped:  []string{"c-X", "c-Y"},
			expected: "The following idle instances were found: i-1\nThe following stopped clusters were found: c-X,c-Y",
		},
		{
			name:     "unused load balancers append a third line",
			unused:   []string{"lb-1"},
			expected: "No Idle Instances detected\nNo Stopped Clusters found\nThe following unused load balancers were found: lb-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildMessage(tt.idle, tt.stopped, tt.unused))
		})
	}
}

func TestBuildMessageFirstLine(t *testing.T) {
	message := BuildMessage([]string{"i-1", "i-2"}, nil, nil)
	lines := strings.Split(message, "\n")
	assert.Equal(t, "The following idle instances were found: i-1,i-2", lines[0])
}
