package domain

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	m "ehthops.dev/pkg/ehthops/internal/model"
)

const (
	hopsSegment = "hops"
	haxpSegment = "haxp"
)

// HAXPResult counts the work done by one substitution.
type HAXPResult struct {
	Removed int
	Linked  int
}

// HAXPSubstituter replaces the linked files of selected stations with the
// alternate HAXP reduction of the same scan.
type HAXPSubstituter interface {
	// Substitute removes the dstScan files whose names start with one of the
	// station prefixes (the ALMA default when none are given) and links the
	// whole HAXP sibling of srcScan in their place.
	Substitute(ctx context.Context, srcScan, dstScan m.Path, stations []string) (HAXPResult, error)
}

type haxpSubstituter struct {
	fsAdapter adapter.ArchiveFSAdapter
}

// NewHAXPSubstituter constructs a HAXPSubstituter backed by fsAdapter.
func NewHAXPSubstituter(fsAdapter adapter.ArchiveFSAdapter) HAXPSubstituter {
	return &haxpSubstituter{fsAdapter: fsAdapter}
}

// HAXPSibling returns srcScan with every "hops" path segment replaced by
// "haxp". The second result is false when srcScan has no such segment.
func HAXPSibling(srcScan m.Path) (m.Path, bool) {
	parts := strings.Split(filepath.ToSlash(string(srcScan)), "/")
	found := false

	for i, part := range parts {
		if part == hopsSegment {
			parts[i] = haxpSegment
			found = true
		}
	}

	if !found {
		return "", false
	}

	return m.Path(filepath.FromSlash(strings.Join(parts, "/"))), true
}

func (h *haxpSubstituter) Substitute(ctx context.Context, srcScan, dstScan m.Path, stations []string) (HAXPResult, error) {
	var result HAXPResult

	if len(stations) == 0 {
		stations = m.DefaultHAXPStations
	}

	haxpScan, ok := HAXPSibling(srcScan)
	if !ok || !h.fsAdapter.IsDir(haxpScan) {
		slog.Debug("HAXP directory does not exist", "source", srcScan, "haxp", haxpScan)
		return result, nil
	}

	result.Removed = h.removeStations(dstScan, stations)
	if result.Removed > 0 {
		slog.Info("Removed station files for HAXP replacement", "count", result.Removed, "scan", dstScan)
	}

	linked, err := linkTree(ctx, h.fsAdapter, haxpScan, dstScan, func(name string) bool {
		return !IsCalibrationFile(name)
	})
	result.Linked = linked

	slog.Info("Linked HAXP files", "count", linked, "scan", dstScan)

	return result, err
}

func (h *haxpSubstituter) removeStations(dstScan m.Path, stations []string) int {
	entries, err := h.fsAdapter.ReadDir(dstScan)
	if err != nil {
		slog.Error("Failed to list scan for HAXP replacement", "scan", dstScan, "error", err)
		return 0
	}

	removed := 0

	for _, entry := range entries {
		if !hasStationPrefix(entry.Name(), stations) {
			continue
		}

		path := dstScan.Join(entry.Name())
		if err := h.fsAdapter.Remove(path); err != nil {
			slog.Error("Failed to remove station file", "path", path, "error", err)
			continue
		}

		removed++

		slog.Debug("Removed station file", "path", path)
	}

	return removed
}

func hasStationPrefix(name string, stations []string) bool {
	for _, prefix := range stations {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}
