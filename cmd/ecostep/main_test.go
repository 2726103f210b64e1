package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "valid session exits zero",
			stdin:      "E\n3\n",
			wantCode:   exitOK,
			wantStdout: "Your electronics carbon footprint is MODERATE.",
		},
		{
			name:       "invalid choice exits zero",
			stdin:      "Z\n",
			wantCode:   exitOK,
			wantStdout: "Invalid choice. Please enter E, V or H.",
		},
		{
			name:       "non-numeric quantity exits non-zero",
			stdin:      "V\nten\n",
			wantCode:   exitError,
			wantStderr: "Error: INVALID INPUT. Please enter a valid number.",
		},
		{
			name:       "unknown flag exits non-zero",
			args:       []string{"--nope"},
			wantCode:   exitError,
			wantStderr: "Error:",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantCode:   exitOK,
			wantStdout: "ecostep version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantStdout != "" {
				assert.Contains(t, stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}
