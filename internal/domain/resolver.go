package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	m "ehthops.dev/pkg/ehthops/internal/model"
)

// Resolver decides which correlation pass of every scan is staged and drives
// the linker accordingly. It is the only component that picks extensions.
type Resolver interface {
	// Resolve processes rootFiles in path order. Per-item failures are logged
	// and recorded; only cancellation is returned as an error.
	Resolve(ctx context.Context, rootFiles []m.RootFile, env m.Environment) ([]m.ScanDecision, error)
}

type resolver struct {
	fsAdapter adapter.ArchiveFSAdapter
	linker    ScanLinker
	haxp      HAXPSubstituter
}

// NewResolver constructs a Resolver.
func NewResolver(fsAdapter adapter.ArchiveFSAdapter, linker ScanLinker, haxp HAXPSubstituter) Resolver {
	return &resolver{
		fsAdapter: fsAdapter,
		linker:    linker,
		haxp:      haxp,
	}
}

func (r *resolver) Resolve(ctx context.Context, rootFiles []m.RootFile, env m.Environment) ([]m.ScanDecision, error) {
	sorted := make([]m.RootFile, len(rootFiles))
	copy(sorted, rootFiles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	switch env.Duplicates {
	case m.DuplicatesAdjacent:
		return r.resolveAdjacent(ctx, sorted, env)
	case m.DuplicatesGrouped, "":
		return r.resolveGrouped(ctx, sorted, env)
	default:
		return nil, fmt.Errorf("unknown duplicate policy %q", env.Duplicates)
	}
}

// candidate is a classified root file.
type candidate struct {
	rootFile m.RootFile
	ext      m.Extension
}

type scanKey struct {
	expt string
	scan string
}

// classify validates the experiment directory and extension of rootFile.
func classify(rootFile m.RootFile) (candidate, bool) {
	if !IsValidExptDir(rootFile.ExptName()) {
		slog.Debug("Skipping root file with invalid experiment number", "expt", rootFile.ExptDir, "file", rootFile.Path)
		return candidate{}, false
	}

	ext := ExtractExtension(rootFile.Path.Base())
	if ext == "" {
		slog.Warn("Could not extract extension", "file", rootFile.Path.Base())
		return candidate{}, false
	}

	rootFile.Extension = ext

	return candidate{rootFile: rootFile, ext: ext}, true
}

func (r *resolver) resolveGrouped(ctx context.Context, sorted []m.RootFile, env m.Environment) ([]m.ScanDecision, error) {
	var order []scanKey

	groups := make(map[scanKey][]candidate)

	for _, rootFile := range sorted {
		cand, ok := classify(rootFile)
		if !ok {
			continue
		}

		key := scanKey{expt: rootFile.ExptName(), scan: rootFile.ScanName()}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}

		groups[key] = append(groups[key], cand)
	}

	decisions := make([]m.ScanDecision, 0, len(order))

	for _, key := range order {
		if err := ctx.Err(); err != nil {
			return decisions, err
		}

		winner := bestCandidate(groups[key])
		for _, cand := range groups[key] {
			if cand.ext != winner.ext || cand.rootFile.ScanDir != winner.rootFile.ScanDir {
				slog.Info(fmt.Sprintf("Skipping %s in favour of %s", cand.ext, winner.ext), "scan", cand.rootFile.ScanDir)
			}
		}

		dstScan := env.DataDir.Join(key.expt, key.scan)
		decision := newDecision(winner, key)

		action, proceed := r.reconcile(ctx, winner.ext, dstScan, &decision)
		if !proceed {
			decisions = append(decisions, decision)
			continue
		}

		decisions = append(decisions, r.stage(ctx, winner, dstScan, env, decision, action))
	}

	return decisions, nil
}

// bestCandidate returns the highest extension; the earliest candidate wins ties.
func bestCandidate(cands []candidate) candidate {
	best := cands[0]

	for _, cand := range cands[1:] {
		if cand.ext > best.ext {
			best = cand
		}
	}

	return best
}

func (r *resolver) resolveAdjacent(ctx context.Context, sorted []m.RootFile, env m.Environment) ([]m.ScanDecision, error) {
	var (
		decisions []m.ScanDecision
		prevScan  m.Path
	)

	for _, rootFile := range sorted {
		if err := ctx.Err(); err != nil {
			return decisions, err
		}

		slog.Debug("Processing root file", "file", rootFile.Path)

		cand, ok := classify(rootFile)
		if !ok {
			continue
		}

		key := scanKey{expt: rootFile.ExptName(), scan: rootFile.ScanName()}
		dstScan := env.DataDir.Join(key.expt, key.scan)
		decision := newDecision(cand, key)
		action := m.ScanLinked

		if r.fsAdapter.Exists(dstScan) {
			// Only the immediately preceding root file counts as the same scan.
			if rootFile.ScanDir != prevScan {
				prevScan = rootFile.ScanDir
				decision.Action = m.ScanSkipped
				decision.Reason = "destination exists and previous root file belongs to a different scan"

				slog.Debug("Skipping root file of non-contiguous scan", "file", rootFile.Path, "dest", dstScan)

				decisions = append(decisions, decision)

				continue
			}

			var proceed bool

			action, proceed = r.reconcile(ctx, cand.ext, dstScan, &decision)
			if !proceed {
				prevScan = rootFile.ScanDir
				decisions = append(decisions, decision)

				continue
			}
		}

		prevScan = rootFile.ScanDir

		decisions = append(decisions, r.stage(ctx, cand, dstScan, env, decision, action))
	}

	return decisions, nil
}

// reconcile compares ext with the passes already linked in dstScan. It
// returns the action to record and whether linking should go ahead; when it
// returns false, decision has been filled in.
func (r *resolver) reconcile(ctx context.Context, ext m.Extension, dstScan m.Path, decision *m.ScanDecision) (m.ScanAction, bool) {
	if !r.fsAdapter.Exists(dstScan) {
		return m.ScanLinked, true
	}

	existing := r.maxExtension(ctx, dstScan)
	if existing == "" {
		return m.ScanLinked, true
	}

	if ext <= existing {
		slog.Info(fmt.Sprintf("Skipping %s in favour of %s", ext, existing), "scan", dstScan)

		decision.Action = m.ScanKept
		decision.Extension = existing

		return m.ScanKept, false
	}

	slog.Info(fmt.Sprintf("Replacing %s with extension %s", existing, ext), "scan", dstScan)

	if err := r.fsAdapter.RemoveAll(dstScan); err != nil {
		slog.Error("Failed to remove stale scan directory", "scan", dstScan, "error", err)

		decision.Action = m.ScanSkipped
		decision.Reason = fmt.Sprintf("remove stale scan: %v", err)

		return m.ScanSkipped, false
	}

	return m.ScanReplaced, true
}

// maxExtension returns the highest extension among the files linked in dstScan.
func (r *resolver) maxExtension(ctx context.Context, dstScan m.Path) m.Extension {
	var names []string

	err := r.fsAdapter.Walk(ctx, dstScan, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if isFile(r.fsAdapter, path, info) {
			names = append(names, info.Name())
		}

		return nil
	})
	if err != nil {
		slog.Warn("Failed to scan destination extensions", "scan", dstScan, "error", err)
	}

	return MaxExtension(names)
}

// stage links the chosen pass into dstScan and applies the HAXP override.
func (r *resolver) stage(ctx context.Context, cand candidate, dstScan m.Path, env m.Environment, decision m.ScanDecision, action m.ScanAction) m.ScanDecision {
	decision.Action = action

	if err := r.fsAdapter.MkdirAll(dstScan); err != nil {
		slog.Error("Failed to create scan directory", "scan", dstScan, "error", err)

		decision.Action = m.ScanSkipped
		decision.Reason = fmt.Sprintf("create scan directory: %v", err)

		return decision
	}

	linked, err := r.linker.LinkScan(ctx, cand.rootFile.ScanDir, dstScan, cand.ext)
	if err != nil {
		slog.Error("Linking scan stopped early", "scan", cand.rootFile.ScanDir, "error", err)
	}

	decision.Linked = linked

	if !env.HAXP {
		return decision
	}

	result, err := r.haxp.Substitute(ctx, cand.rootFile.ScanDir, dstScan, env.HAXPStations)
	if err != nil {
		slog.Error("HAXP substitution stopped early", "scan", cand.rootFile.ScanDir, "error", err)
	}

	decision.HAXPLinked = result.Linked
	decision.HAXPRemoved = result.Removed

	return decision
}

func newDecision(cand candidate, key scanKey) m.ScanDecision {
	return m.ScanDecision{
		Experiment: key.expt,
		Scan:       key.scan,
		Source:     cand.rootFile.ScanDir,
		Extension:  cand.ext,
	}
}
