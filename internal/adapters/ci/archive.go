// Package ci hands build artifacts to the CI agent.
package ci

import (
	"archive/tar"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Uploader implements ports.ArtifactUploader.
type Uploader struct {
	executor ports.Executor
}

// NewUploader creates an Uploader invoking the CI agent through executor.
func NewUploader(executor ports.Executor) *Uploader {
	return &Uploader{executor: executor}
}

// Archive writes the regular files and directories under src into a gzip
// compressed tarball at dst. Paths in the archive are relative to src's parent,
// so an archive of out/logs unpacks into logs/.
func (u *Uploader) Archive(ctx context.Context, src, dst string) (err error) {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "nothing to archive"), "path", src)
	}
	if !info.IsDir() {
		return zerr.With(zerr.New("archive source is not a directory"), "path", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive directory"), "path", dst)
	}
	//nolint:gosec // dst lives in the configured log directory
	f, err := os.Create(dst)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive"), "path", dst)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, "failed to close archive"), "path", dst)
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	gz, err := gzip.NewWriterLevel(f, gzip.BestSpeed)
	if err != nil {
		return zerr.Wrap(err, "failed to create gzip writer")
	}
	tw := tar.NewWriter(gz)

	base := filepath.Dir(filepath.Clean(src))
	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return addEntry(tw, base, path, d)
	})
	if walkErr != nil {
		return zerr.With(zerr.Wrap(walkErr, "failed to archive logs"), "path", src)
	}

	if err := tw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish tar stream")
	}
	if err := gz.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish gzip stream")
	}
	return nil
}

func addEntry(tw *tar.Writer, base, path string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() && !info.IsDir() {
		// Sockets, pipes and symlinks are not build logs.
		return nil
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		return err
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = filepath.ToSlash(rel)
	if info.IsDir() {
		hdr.Name += "/"
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	if info.IsDir() {
		return nil
	}

	//nolint:gosec // path comes from walking the archive source
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = io.CopyN(tw, f, hdr.Size)
	return err
}

// Upload hands path to the CI agent as a build artifact.
func (u *Uploader) Upload(ctx context.Context, cfg domain.CIConfig, path string) error {
	cmd := &domain.Command{
		Name: cfg.Agent,
		Args: []string{"artifact", "upload", path},
		Dir:  filepath.Dir(path),
	}
	if err := u.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "artifact upload failed"), "path", path)
	}
	return nil
}
