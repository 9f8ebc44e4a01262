package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plain comma separated",
			input:    "Django, Python, Bootstrap",
			expected: []string{"Django", "Python", "Bootstrap"},
		},
		{
			name:     "no spaces",
			input:    "Go,Postgres,Redis",
			expected: []string{"Go", "Postgres", "Redis"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "trailing comma",
			input:    "React,",
			expected: []string{"React"},
		},
		{
			name:     "empty segments dropped",
			input:    "a, ,b,,c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "only commas",
			input:    ",,,",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}
