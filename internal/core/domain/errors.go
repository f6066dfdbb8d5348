package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArguments is returned when the command line cannot be parsed.
	ErrInvalidArguments = zerr.New("invalid arguments")

	// ErrUnsupportedOS is returned when the host operating system cannot build AOSP.
	ErrUnsupportedOS = zerr.New("unsupported operating system")

	// ErrToolInstallFailed is returned when the repo tool cannot be located or installed.
	ErrToolInstallFailed = zerr.New("failed to install repo tool")

	// ErrBuildDirLocked is returned when another invocation holds the build directory lock.
	ErrBuildDirLocked = zerr.New("build directory is locked by another run")

	// ErrHelperScriptMissing is returned when the helper script cannot be found at its source location.
	ErrHelperScriptMissing = zerr.New("helper script not found")

	// ErrInitFailed is returned when repo init fails.
	ErrInitFailed = zerr.New("repo init failed")

	// ErrSyncExhausted is returned when every sync attempt failed.
	ErrSyncExhausted = zerr.New("repo sync failed after all attempts")

	// ErrRBESetupMissing is returned when remote execution is requested but its setup script is absent.
	ErrRBESetupMissing = zerr.New("remote execution setup script not found")

	// ErrNoViableTarget is returned when neither the requested target nor any fallback can be selected.
	ErrNoViableTarget = zerr.New("no viable lunch target")

	// ErrBuildFailed is returned when the compiler driver exits with a failure status.
	ErrBuildFailed = zerr.New("build failed")

	// ErrNotInitialized is returned when an operation needs a synced tree but none exists.
	ErrNotInitialized = zerr.New("build directory is not initialized")

	// ErrNoRunRecorded is returned when no previous run exists for a build directory.
	ErrNoRunRecorded = zerr.New("no run recorded for build directory")
)
