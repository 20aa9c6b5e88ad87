package domain

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	m "ehthops.dev/pkg/ehthops/internal/model"
)

// ScanLinker materializes one correlation pass of a scan as symbolic links.
type ScanLinker interface {
	// LinkScan links every file under srcScan ending in "."+ext, except
	// calibration files, into dstScan and returns how many links it created.
	LinkScan(ctx context.Context, srcScan, dstScan m.Path, ext m.Extension) (int, error)
}

type scanLinker struct {
	fsAdapter adapter.ArchiveFSAdapter
}

// NewScanLinker constructs a ScanLinker backed by fsAdapter.
func NewScanLinker(fsAdapter adapter.ArchiveFSAdapter) ScanLinker {
	return &scanLinker{fsAdapter: fsAdapter}
}

func (l *scanLinker) LinkScan(ctx context.Context, srcScan, dstScan m.Path, ext m.Extension) (int, error) {
	suffix := "." + string(ext)

	return linkTree(ctx, l.fsAdapter, srcScan, dstScan, func(name string) bool {
		return strings.HasSuffix(name, suffix) && !IsCalibrationFile(name)
	})
}

// linkTree links the accepted files of the src subtree flat into dst. Existing
// links are left alone; other per-file failures are logged and skipped.
func linkTree(ctx context.Context, fsAdapter adapter.ArchiveFSAdapter, src, dst m.Path, accept func(name string) bool) (int, error) {
	linked := 0

	err := fsAdapter.Walk(ctx, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if !accept(info.Name()) || !isFile(fsAdapter, path, info) {
			return nil
		}

		target := m.Path(path)
		link := dst.Join(info.Name())

		if err := fsAdapter.Symlink(target, link); err != nil {
			if adapter.IsExist(err) {
				slog.Debug("Link already exists", "link", link)
				return nil
			}

			slog.Error("Failed to link", "target", target, "link", link, "error", err)

			return nil
		}

		linked++

		slog.Debug("Linked", "target", target, "link", link)

		return nil
	})

	return linked, err
}
