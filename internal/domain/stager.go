package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/google/uuid"
)

const (
	// ManifestFileName is written under WRKDIR/log after every linking run.
	ManifestFileName = "link-manifest.yaml"

	testsDirName = "tests"
	tempDirName  = "temp"
	logDirName   = "log"
)

// Stager runs the linking step of one pipeline stage.
type Stager interface {
	Link(ctx context.Context, env m.Environment) (m.LinkSummary, error)
}

type stager struct {
	fsAdapter  adapter.ArchiveFSAdapter
	manifests  adapter.ManifestStore
	discoverer Discoverer
	resolver   Resolver
	now        func() time.Time
}

// NewStager constructs a Stager.
func NewStager(
	fsAdapter adapter.ArchiveFSAdapter,
	manifests adapter.ManifestStore,
	discoverer Discoverer,
	resolver Resolver,
) Stager {
	return &stager{
		fsAdapter:  fsAdapter,
		manifests:  manifests,
		discoverer: discoverer,
		resolver:   resolver,
		now:        time.Now,
	}
}

// NewDefaultStager wires the stock discoverer, linker and resolver.
func NewDefaultStager(fsAdapter adapter.ArchiveFSAdapter, manifests adapter.ManifestStore) Stager {
	linker := NewScanLinker(fsAdapter)
	haxp := NewHAXPSubstituter(fsAdapter)

	return NewStager(fsAdapter, manifests, NewDiscoverer(fsAdapter), NewResolver(fsAdapter, linker, haxp))
}

func (s *stager) Link(ctx context.Context, env m.Environment) (m.LinkSummary, error) {
	runID := uuid.NewString()
	logEnvironment(env)

	for _, dir := range []m.Path{env.DataDir, env.WorkDir.Join(testsDirName), env.WorkDir.Join(tempDirName), env.WorkDir.Join(logDirName)} {
		if err := s.fsAdapter.MkdirAll(dir); err != nil {
			return m.LinkSummary{}, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	slog.Info("Processing correlation data directories", "count", len(env.CorrDat))

	rootFiles, err := s.discoverer.FindRootFiles(ctx, env.SrcDir, env.CorrDat, env.Band, env.HAXP)
	if err != nil {
		return m.LinkSummary{}, fmt.Errorf("find root files: %w", err)
	}

	slog.Info("Found root files", "count", len(rootFiles))

	decisions, err := s.resolver.Resolve(ctx, primaryRootFiles(env.SrcDir, rootFiles), env)
	if err != nil {
		return m.LinkSummary{}, fmt.Errorf("resolve duplicates: %w", err)
	}

	summary := m.LinkSummary{
		RunID:     runID,
		Stage:     env.Stage,
		Band:      env.Band,
		RootFiles: len(rootFiles),
		Decisions: decisions,
	}

	for _, decision := range decisions {
		summary.Linked += decision.Linked
		summary.HAXPLinked += decision.HAXPLinked
		summary.HAXPRemoved += decision.HAXPRemoved
	}

	slog.Info("Total files linked", "count", summary.Linked+summary.HAXPLinked)

	summary.Renamed, err = s.renameArtifacts(ctx, env.DataDir)
	if err != nil {
		return summary, err
	}

	if summary.Renamed > 0 {
		slog.Info(fmt.Sprintf("Renamed %d files with '%s' suffix", summary.Renamed, artifactToken))
	}

	summary.Experiments, err = s.experiments(ctx, env.DataDir)
	if err != nil {
		return summary, err
	}

	if len(summary.Experiments) == 0 {
		err := noDataError(env)
		slog.Error("Linking produced no experiments", "error", err)

		return summary, err
	}

	s.saveManifest(env, summary)

	slog.Info("Successfully linked data", "experiments", len(summary.Experiments))

	return summary, nil
}

// primaryRootFiles drops root files from HAXP trees below srcDir; those are
// staged by the substitution pass after the primary pass of their scan.
func primaryRootFiles(srcDir m.Path, rootFiles []m.RootFile) []m.RootFile {
	primary := make([]m.RootFile, 0, len(rootFiles))

	for _, rootFile := range rootFiles {
		rel, err := filepath.Rel(string(srcDir), string(rootFile.Path))
		if err != nil {
			rel = string(rootFile.Path)
		}

		if InHAXPTree(m.Path(rel)) {
			slog.Debug("Leaving HAXP root file to substitution", "file", rootFile.Path)
			continue
		}

		primary = append(primary, rootFile)
	}

	return primary
}

func (s *stager) saveManifest(env m.Environment, summary m.LinkSummary) {
	path := env.WorkDir.Join(logDirName, ManifestFileName)

	manifest := m.Manifest{
		RunID:     summary.RunID,
		Stage:     env.Stage.Name,
		CreatedAt: s.now().UTC(),
		Band:      env.Band,
		SrcDir:    env.SrcDir,
		CorrDat:   env.CorrDat,
		DataDir:   env.DataDir,
		Linked:    summary.Linked + summary.HAXPLinked,
		Renamed:   summary.Renamed,
		Decisions: summary.Decisions,
	}

	if err := s.manifests.SaveManifest(path, manifest); err != nil {
		slog.Error("Failed to write link manifest", "path", path, "error", err)
		return
	}

	slog.Debug("Wrote link manifest", "path", path)
}

func logEnvironment(env m.Environment) {
	slog.Info("Linking HOPS directories",
		"WRKDIR", env.WorkDir,
		"SRCDIR", env.SrcDir,
		"METADIR", env.MetaDir,
		"CORRDAT", strings.Join(env.CorrDat, " "),
		"DATADIR", env.DataDir,
		"BAND", env.Band,
		"MIXEDPOL", env.MixedPol,
		"HAXP", env.HAXP,
		"duplicates", env.Duplicates,
	)
}
