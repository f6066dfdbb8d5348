// Package host inspects the machine a build runs on.
package host

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"

	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PythonBinary is the interpreter the repo tool runs on.
const PythonBinary = "python3"

var pythonVersion = regexp.MustCompile(`Python (\d+)\.`)

// Host implements ports.Host for the running machine.
type Host struct {
	executor ports.Executor
}

// New creates a Host using executor to query external tools.
func New(executor ports.Executor) *Host {
	return &Host{executor: executor}
}

// OS returns the operating system family.
func (h *Host) OS() string {
	return runtime.GOOS
}

// CPUCount returns the number of logical CPUs.
func (h *Host) CPUCount() int {
	return runtime.NumCPU()
}

// Probe measures free disk at dir, total memory and the python major version concurrently.
// Failed probes are reported in the result rather than returned.
func (h *Host) Probe(ctx context.Context, dir string) domain.HostReport {
	var report domain.HostReport
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		report.FreeDiskBytes, report.DiskErr = freeDisk(existingAncestor(dir))
		return nil
	})
	g.Go(func() error {
		report.MemoryBytes, report.MemoryErr = totalMemory()
		return nil
	})
	g.Go(func() error {
		report.PythonMajor, report.PythonErr = h.pythonMajor(gctx)
		return nil
	})

	_ = g.Wait()
	return report
}

func (h *Host) pythonMajor(ctx context.Context) (int, error) {
	var out bytes.Buffer
	// Python 2 prints its version on stderr.
	err := h.executor.Execute(ctx, &domain.Command{
		Name:   PythonBinary,
		Args:   []string{"--version"},
		Stdout: &out,
		Stderr: &out,
	})
	if err != nil {
		return 0, zerr.Wrap(err, "failed to query python version")
	}
	return ParsePythonMajor(out.String())
}

// ParsePythonMajor extracts the major version from the output of python --version.
func ParsePythonMajor(output string) (int, error) {
	m := pythonVersion.FindStringSubmatch(output)
	if m == nil {
		return 0, zerr.With(zerr.New("unrecognized python version"), "output", output)
	}
	return strconv.Atoi(m[1])
}

// existingAncestor walks up from dir to the closest directory that exists, so the
// disk probe works before the build directory is created.
func existingAncestor(dir string) string {
	dir = filepath.Clean(dir)
	for {
		if _, err := os.Stat(dir); !errors.Is(err, fs.ErrNotExist) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
