package repo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// MarkerDir is the directory repo init creates at the root of a checkout.
const MarkerDir = ".repo"

// manifestRepos are the manifest checkouts consulted for the tracked branch, in order.
var manifestRepos = []string{
	filepath.Join(MarkerDir, "manifests.git"),
	filepath.Join(MarkerDir, "manifests"),
}

// Tool implements ports.SourceTool on top of the repo executable.
type Tool struct {
	executor ports.Executor
}

// NewTool creates a Tool running repo through executor.
func NewTool(executor ports.Executor) *Tool {
	return &Tool{executor: executor}
}

// IsInitialized reports whether dir carries the repo marker directory.
func (t *Tool) IsInitialized(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MarkerDir))
	return err == nil && info.IsDir()
}

// TrackedBranch reads the manifest branch recorded by repo init.
// It returns "" without error when no manifest checkout exists.
func (t *Tool) TrackedBranch(dir string) (string, error) {
	var errs error
	for _, rel := range manifestRepos {
		path := filepath.Join(dir, rel)
		r, err := git.PlainOpen(path)
		if errors.Is(err, git.ErrRepositoryNotExists) {
			continue
		}
		if err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to open manifest repository"), "path", path))
			continue
		}

		cfg, err := r.Config()
		if err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to read manifest config"), "path", path))
			continue
		}
		if b, ok := cfg.Branches["default"]; ok && b.Merge != "" {
			return strings.TrimPrefix(b.Merge.String(), "refs/heads/"), nil
		}
	}
	return "", errs
}

// Init runs repo init in the build directory.
func (t *Tool) Init(ctx context.Context, ws domain.Workspace) error {
	cmd := t.command(ws, "init", "-u", ws.Config.ManifestURL, "-b", ws.Config.Branch)
	if err := t.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "repo init failed"), "branch", ws.Config.Branch)
	}
	return nil
}

// Sync runs repo sync with the given parallelism.
func (t *Tool) Sync(ctx context.Context, ws domain.Workspace, jobs int) error {
	cmd := t.command(ws, SyncArgs(jobs)...)
	if err := t.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "repo sync failed"), "jobs", jobs)
	}
	return nil
}

// SyncArgs returns the repo arguments of a sync with the given parallelism.
func SyncArgs(jobs int) []string {
	return []string{
		"sync",
		"-c",
		"-j" + strconv.Itoa(jobs),
		"--no-tags",
		"--no-clone-bundle",
		"--optimized-fetch",
	}
}

func (t *Tool) command(ws domain.Workspace, args ...string) *domain.Command {
	bin := ws.RepoBin
	if bin == "" {
		bin = BinaryName
	}
	return &domain.Command{
		Name: bin,
		Args: args,
		Dir:  ws.Dir(),
		Env:  ws.Environ(),
	}
}
