// Package lunch drives the Android build environment scripts.
package lunch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// EnvSetupScript prepares the build environment of a synced tree.
	EnvSetupScript = "build/envsetup.sh"
	// RBESetupScript prepares the build environment with remote execution enabled.
	RBESetupScript = "build/make/rbesetup.sh"

	// shellName is passed as $0 to the bash scripts below.
	shellName = "aospbuild"

	selectScript  = `source "$1" && lunch "$2"`
	listScript    = `source "$1" && print_lunch_menu`
	compileScript = `source "$1" && lunch "$2" && m -j"$3"`
)

// Environment implements ports.BuildEnvironment using bash and the tree's setup scripts.
type Environment struct {
	executor ports.Executor
}

// NewEnvironment creates an Environment running scripts through executor.
func NewEnvironment(executor ports.Executor) *Environment {
	return &Environment{executor: executor}
}

// SetupScript returns the setup script to source, relative to the build directory.
func (e *Environment) SetupScript(ws domain.Workspace) (string, error) {
	script := EnvSetupScript
	if ws.Config.RemoteExecution {
		script = RBESetupScript
	}

	path := filepath.Join(ws.Dir(), script)
	if _, err := os.Stat(path); err != nil {
		sentinel := domain.ErrNotInitialized
		if ws.Config.RemoteExecution {
			sentinel = domain.ErrRBESetupMissing
		}
		return "", zerr.With(zerr.Wrap(sentinel, "setup script not found"), "path", path)
	}
	return script, nil
}

// SelectTarget checks that target can be selected with lunch.
func (e *Environment) SelectTarget(ctx context.Context, ws domain.Workspace, target string) error {
	cmd := e.bash(ws, selectScript, target)
	if err := e.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "lunch failed"), "target", target)
	}
	return nil
}

// ListTargets writes the lunch menu to w.
func (e *Environment) ListTargets(ctx context.Context, ws domain.Workspace, w io.Writer) error {
	cmd := e.bash(ws, listScript)
	cmd.Stdout = w
	if err := e.executor.Execute(ctx, cmd); err != nil {
		return zerr.Wrap(err, "failed to list lunch targets")
	}
	return nil
}

// Compile builds target with the given parallelism. Both output streams go to the
// workspace output; the returned error reflects the build's own exit status.
func (e *Environment) Compile(ctx context.Context, ws domain.Workspace, target string, jobs int) error {
	cmd := e.bash(ws, compileScript, target, strconv.Itoa(jobs))
	cmd.Stdout = ws.Output
	cmd.Stderr = ws.Output
	if err := e.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "compilation failed"), "target", target), "jobs", jobs)
	}
	return nil
}

func (e *Environment) bash(ws domain.Workspace, script string, args ...string) *domain.Command {
	return &domain.Command{
		Name: "bash",
		Args: append([]string{"-c", script, shellName, ws.SetupScript}, args...),
		Dir:  ws.Dir(),
		Env:  ws.Environ(),
	}
}
