package domain

import "io"

// Command is a single invocation of an external tool.
type Command struct {
	// Name is the executable, resolved against the PATH of the merged environment.
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds KEY=VALUE overrides applied on top of the process environment.
	// A PATH entry is prepended to the inherited PATH instead of replacing it.
	Env []string
	// Stdout and Stderr receive the command's output streams. A nil writer sends
	// the stream line by line to the executor's logger.
	Stdout io.Writer
	Stderr io.Writer
}

// Workspace is the execution context shared by every phase touching the build directory.
type Workspace struct {
	Config BuildConfig
	// RepoBin is the resolved path of the repo tool.
	RepoBin string
	// ToolDir is prepended to PATH for child processes.
	ToolDir string
	// SetupScript is the environment setup script sourced before lunch, relative to the build directory.
	SetupScript string
	// Output receives the combined output of long running tools.
	Output io.Writer
}

// Dir returns the build directory.
func (w Workspace) Dir() string {
	return w.Config.BuildDir
}

// Environ returns the environment overlay for child processes.
func (w Workspace) Environ() []string {
	env := w.Config.Environ()
	if w.ToolDir != "" {
		env = append([]string{"PATH=" + w.ToolDir}, env...)
	}
	return env
}
