// Package adapter contains the filesystem and storage adapters used by the
// staging pipeline.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/bmatcuk/doublestar/v4"
)

// ArchiveFSAdapter abstracts every filesystem operation the domain layer
// performs against the source archive and the stage workspace. All paths are
// absolute; nothing relies on the process working directory.
//
//nolint:interfacebloat // Keeping all disk access behind one seam keeps the domain testable.
type ArchiveFSAdapter interface {
	// Walk traverses root recursively without following symlinked directories.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// FileInfo follows symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether anything, including a dangling symlink, is at path.
	Exists(path m.Path) bool

	// IsDir reports whether path resolves to a directory.
	IsDir(path m.Path) bool

	// ReadDir lists a directory sorted by name.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path m.Path) error

	// Symlink creates link pointing at target. An existing link yields an
	// error matching fs.ErrExist.
	Symlink(target, link m.Path) error

	// Remove deletes a single file or link.
	Remove(path m.Path) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// Rename moves from to to.
	Rename(from, to m.Path) error

	// Glob matches pattern against the entries of dir.
	Glob(ctx context.Context, dir m.Path, pattern string) ([]m.Path, error)

	// CopyFile copies src to dst preserving mode and modification time. It
	// never overwrites; an existing dst yields an error matching fs.ErrExist.
	CopyFile(src, dst m.Path) error

	// AbsPath resolves path against the current directory once, at launch.
	AbsPath(path m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalArchiveFSAdapter implements ArchiveFSAdapter on the local disk.
type LocalArchiveFSAdapter struct{}

// NewLocalArchiveFSAdapter constructs a LocalArchiveFSAdapter instance ready to
// be wired into the stager.
func NewLocalArchiveFSAdapter() *LocalArchiveFSAdapter {
	return &LocalArchiveFSAdapter{}
}

// Walk iterates over every entry under root, stopping when ctx is done.
// A symlinked root is descended into; nested symlinked directories are not.
func (a *LocalArchiveFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	rootStr := string(root)
	if info, err := os.Lstat(rootStr); err == nil && info.Mode()&os.ModeSymlink != 0 {
		rootStr += string(filepath.Separator)
	}

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, info, err)
	})
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalArchiveFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists uses Lstat so that dangling links still count.
func (a *LocalArchiveFSAdapter) Exists(path m.Path) bool {
	_, err := os.Lstat(string(path))
	return err == nil
}

// IsDir reports whether path is a directory.
func (a *LocalArchiveFSAdapter) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.IsDir()
}

// ReadDir lists the entries of path.
func (a *LocalArchiveFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// MkdirAll creates path with 0o755 permissions.
func (a *LocalArchiveFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o755)
}

// Symlink creates a symbolic link at link pointing at target.
func (a *LocalArchiveFSAdapter) Symlink(target, link m.Path) error {
	return os.Symlink(string(target), string(link))
}

// Remove deletes a single file or link.
func (a *LocalArchiveFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// RemoveAll removes a directory and all its contents.
func (a *LocalArchiveFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// Rename moves from to to.
func (a *LocalArchiveFSAdapter) Rename(from, to m.Path) error {
	return os.Rename(string(from), string(to))
}

// Glob returns the absolute paths of the entries of dir matching pattern,
// sorted by name.
func (a *LocalArchiveFSAdapter) Glob(ctx context.Context, dir m.Path, pattern string) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(string(dir)), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s in %s: %w", pattern, dir, err)
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(filepath.Join(string(dir), filepath.FromSlash(match))))
	}

	return paths, nil
}

// CopyFile copies a single file without clobbering the destination.
func (a *LocalArchiveFSAdapter) CopyFile(src, dst m.Path) error {
	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fmt.Errorf("copy %s: is a directory", src)
	}

	// #nosec G304 - src comes from the configured metadata directory
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	// #nosec G304 - dst is inside the stage work directory
	destFile, err := os.OpenFile(string(dst), os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return errors.Join(err, os.Remove(string(dst)))
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chtimes(string(dst), info.ModTime(), info.ModTime())
}

// AbsPath returns the absolute form of path.
func (a *LocalArchiveFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// IsExist reports whether err signals that a path is already taken.
func IsExist(err error) bool {
	return errors.Is(err, fs.ErrExist)
}
