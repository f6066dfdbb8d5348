// Package repo installs and drives the repo source management tool.
package repo

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go.trai.ch/aospbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DownloadURL is the upstream location of the repo launcher.
	DownloadURL = "https://storage.googleapis.com/git-repo-downloads/repo"
	// BinaryName is the name of the repo executable.
	BinaryName = "repo"
)

// Installer implements ports.ToolInstaller.
type Installer struct {
	logger ports.Logger
	client *http.Client

	// URL is where the launcher is downloaded from.
	URL string
	// ToolDir receives the downloaded launcher.
	ToolDir string
	// Home is the directory holding the user's shell profiles.
	Home string
	// Shell is the user's login shell, used to pick the profile to update.
	Shell string
	// LookPath searches the process PATH.
	LookPath func(file string) (string, error)
}

// NewInstaller creates an Installer using the XDG cache directory for downloads.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{
		logger:   logger,
		client:   http.DefaultClient,
		URL:      DownloadURL,
		ToolDir:  filepath.Join(xdg.CacheHome, "aospbuild", "bin"),
		Home:     xdg.Home,
		Shell:    os.Getenv("SHELL"),
		LookPath: exec.LookPath,
	}
}

// EnsureRepo returns the path of a usable repo executable, downloading it when
// neither PATH nor the tool directory provides one.
func (i *Installer) EnsureRepo(ctx context.Context) (string, error) {
	if i.LookPath != nil {
		if p, err := i.LookPath(BinaryName); err == nil {
			return p, nil
		}
	}

	target := filepath.Join(i.ToolDir, BinaryName)
	if isExecutable(target) {
		return target, i.persistPath()
	}

	i.logger.Info("downloading repo from " + i.URL)
	if err := i.download(ctx, target); err != nil {
		return "", err
	}
	return target, i.persistPath()
}

func (i *Installer) download(ctx context.Context, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.URL, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to build download request"), "url", i.URL)
	}

	client := i.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to download repo"), "url", i.URL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return zerr.With(zerr.With(zerr.New("unexpected download status"), "url", i.URL), "status", resp.StatusCode)
	}

	if err := os.MkdirAll(i.ToolDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create tool directory"), "path", i.ToolDir)
	}

	tmp, err := os.CreateTemp(i.ToolDir, ".repo-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write repo"), "path", target)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write repo"), "path", target)
	}
	//nolint:gosec // the launcher must be executable
	if err := os.Chmod(tmp.Name(), 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to make repo executable"), "path", target)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to install repo"), "path", target)
	}
	return nil
}

// ProfileFor returns the startup file of the given login shell.
func ProfileFor(shell string) string {
	switch filepath.Base(shell) {
	case "zsh":
		return ".zshrc"
	case "bash":
		return ".bashrc"
	default:
		return ".profile"
	}
}

// ExportLine is the profile line adding dir to PATH.
func ExportLine(dir string) string {
	return `export PATH="` + dir + `:$PATH"`
}

// persistPath adds the tool directory to the user's shell profile once.
func (i *Installer) persistPath() error {
	if i.Home == "" {
		return nil
	}
	profile := filepath.Join(i.Home, ProfileFor(i.Shell))
	line := ExportLine(i.ToolDir)

	present, err := containsLine(profile, line)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read shell profile"), "path", profile)
	}
	if present {
		return nil
	}

	//nolint:gosec // profile lives in the user's home directory
	f, err := os.OpenFile(profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open shell profile"), "path", profile)
	}
	if _, err := f.WriteString("\n" + line + "\n"); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to update shell profile"), "path", profile)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to update shell profile"), "path", profile)
	}
	i.logger.Info("added " + i.ToolDir + " to PATH in " + profile)
	return nil
}

func containsLine(path, line string) (bool, error) {
	//nolint:gosec // path is the user's shell profile
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == line {
			return true, nil
		}
	}
	return false, scanner.Err()
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Mode()&0o111 != 0
}
