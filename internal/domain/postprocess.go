package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	m "ehthops.dev/pkg/ehthops/internal/model"
)

// artifactToken is the upstream naming artifact stripped from linked names.
const artifactToken = "_3"

// renameArtifacts strips "_3" from the name of every file under dataDir.
// Collisions and rename failures are logged and skipped.
func (s *stager) renameArtifacts(ctx context.Context, dataDir m.Path) (int, error) {
	var candidates []m.Path

	err := s.fsAdapter.Walk(ctx, dataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if strings.Contains(info.Name(), artifactToken) && isFile(s.fsAdapter, path, info) {
			candidates = append(candidates, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan %s for renames: %w", dataDir, err)
	}

	renamed := 0

	for _, path := range candidates {
		newName := strings.ReplaceAll(path.Base(), artifactToken, "")
		if newName == "" {
			slog.Warn("Refusing to rename to an empty name", "path", path)
			continue
		}

		newPath := path.Dir().Join(newName)
		if s.fsAdapter.Exists(newPath) {
			slog.Warn("Rename target already exists", "from", path, "to", newPath)
			continue
		}

		if err := s.fsAdapter.Rename(path, newPath); err != nil {
			slog.Error("Failed to rename", "path", path, "error", err)
			continue
		}

		renamed++

		slog.Info("Renamed", "from", path.Base(), "to", newName)
	}

	return renamed, nil
}

// experiments summarizes the valid experiment directories under dataDir.
func (s *stager) experiments(ctx context.Context, dataDir m.Path) ([]m.ExperimentSummary, error) {
	entries, err := s.fsAdapter.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dataDir, err)
	}

	var summaries []m.ExperimentSummary

	for _, entry := range entries {
		if !entry.IsDir() || !IsValidExptDir(entry.Name()) {
			continue
		}

		summary := m.ExperimentSummary{Name: entry.Name()}
		exptDir := dataDir.Join(entry.Name())

		err := s.fsAdapter.Walk(ctx, exptDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}

			switch {
			case info.IsDir() && m.Path(path).Dir() == exptDir:
				summary.Scans++
			case !info.IsDir():
				summary.Files++
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", exptDir, err)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// noDataError builds the one fatal error of the linking step.
func noDataError(env m.Environment) error {
	return fmt.Errorf("%w for band %s: SRCDIR=%s CORRDAT=%v; ensure that the paths exist and the string '-%s-' appears somewhere along the path to the data archive",
		ErrNoData, env.Band, env.SrcDir, env.CorrDat, env.Band)
}
