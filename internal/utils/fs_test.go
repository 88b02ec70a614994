package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "home directory with slash",
			input:    "~/project",
			expected: filepath.Join(home, "project"),
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: home,
		},
		{
			name:     "regular path",
			input:    "/tmp/project",
			expected: "/tmp/project",
		},
		{
			name:     "relative path",
			input:    "./project",
			expected: "./project",
		},
		{
			name:     "tilde inside name is kept",
			input:    "~project",
			expected: "~project",
		},
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
