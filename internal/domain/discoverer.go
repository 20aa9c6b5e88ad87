package domain

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	m "ehthops.dev/pkg/ehthops/internal/model"
)

// Discoverer finds the root files to stage under the configured correlator
// release directories.
type Discoverer interface {
	// FindRootFiles returns every root file under srcDir/<corrDat...> that
	// passes the band and HAXP filters. The order is unspecified.
	FindRootFiles(ctx context.Context, srcDir m.Path, corrDat []string, band string, haxp bool) ([]m.RootFile, error)
}

type discoverer struct {
	fsAdapter adapter.ArchiveFSAdapter
}

// NewDiscoverer constructs a Discoverer backed by fsAdapter.
func NewDiscoverer(fsAdapter adapter.ArchiveFSAdapter) Discoverer {
	return &discoverer{fsAdapter: fsAdapter}
}

func (d *discoverer) FindRootFiles(ctx context.Context, srcDir m.Path, corrDat []string, band string, haxp bool) ([]m.RootFile, error) {
	var rootFiles []m.RootFile

	for _, sub := range corrDat {
		searchPath := srcDir.Join(sub)
		if !d.fsAdapter.IsDir(searchPath) {
			slog.Warn("Source directory does not exist", "path", searchPath)
			continue
		}

		slog.Debug("Searching for root files", "path", searchPath)

		err := d.fsAdapter.Walk(ctx, searchPath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				slog.Warn("Skipping unreadable archive entry", "path", path, "error", err)

				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if !isFile(d.fsAdapter, path, info) {
				return nil
			}

			if !IsValidRootFilename(info.Name()) || ShouldSkipPath(path, band, haxp) {
				return nil
			}

			rootFiles = append(rootFiles, m.NewRootFile(m.Path(path)))

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return rootFiles, nil
}

// isFile reports whether a walked entry is a regular file or a symlink to
// one. Walk reports links unresolved, so they are stat'ed through.
func isFile(fsAdapter adapter.ArchiveFSAdapter, path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.Mode().IsRegular()
	}

	target, err := fsAdapter.FileInfo(m.Path(path))
	if err != nil {
		slog.Debug("Skipping dangling link", "path", path)
		return false
	}

	return target.Mode().IsRegular()
}
