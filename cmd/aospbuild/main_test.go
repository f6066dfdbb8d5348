package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/aospbuild/internal/app"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setupConfig  func(tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name:         "Version",
			args:         []string{"aospbuild", "version"},
			expectedExit: 0,
		},
		{
			name:         "Unknown flag",
			args:         []string{"aospbuild", "--no-such-flag"},
			expectedExit: 1,
		},
		{
			name: "Malformed config",
			setupConfig: func(tmpDir string) {
				err := os.WriteFile(filepath.Join(tmpDir, "aospbuild.yaml"), []byte("branch: [unterminated\n"), 0o600)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			},
			args:         []string{"aospbuild", "-l"},
			expectedExit: 1,
		},
		{
			name: "Unknown config key",
			setupConfig: func(tmpDir string) {
				err := os.WriteFile(filepath.Join(tmpDir, "aospbuild.yaml"), []byte("brnch: android-14.0.0_r1\n"), 0o600)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			},
			args:         []string{"aospbuild", "status"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			if tt.setupConfig != nil {
				tt.setupConfig(tmpDir)
			}

			// Change to tmpDir for relative path resolution
			t.Chdir(tmpDir)

			os.Args = tt.args

			exitCode := run(func(a *app.App) {
				a.WithOutput(io.Discard, io.Discard).WithWorkingDir(tmpDir)
			})
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
