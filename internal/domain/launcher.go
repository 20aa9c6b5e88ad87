package domain

import (
	"context"
	"fmt"
	"log/slog"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	m "ehthops.dev/pkg/ehthops/internal/model"
)

const (
	dataDirName    = "data"
	controlDirName = "cf"
)

// Launcher prepares the work directory of one stage and resolves its
// Environment.
type Launcher interface {
	Launch(ctx context.Context, settings m.Settings, stage m.Stage, baseDir m.Path) (m.Environment, error)
}

type launcher struct {
	fsAdapter adapter.ArchiveFSAdapter
}

// NewLauncher constructs a Launcher backed by fsAdapter.
func NewLauncher(fsAdapter adapter.ArchiveFSAdapter) Launcher {
	return &launcher{fsAdapter: fsAdapter}
}

func (l *launcher) Launch(ctx context.Context, settings m.Settings, stage m.Stage, baseDir m.Path) (m.Environment, error) {
	if err := ctx.Err(); err != nil {
		return m.Environment{}, err
	}

	workDir, err := l.fsAdapter.AbsPath(baseDir.Join(stage.Name))
	if err != nil {
		return m.Environment{}, fmt.Errorf("resolve work directory: %w", err)
	}

	if err := l.fsAdapter.MkdirAll(workDir); err != nil {
		return m.Environment{}, fmt.Errorf("create work directory %s: %w", workDir, err)
	}

	env, err := l.environment(settings, stage, workDir)
	if err != nil {
		return m.Environment{}, err
	}

	if !l.fsAdapter.IsDir(env.MetaDir) {
		return m.Environment{}, fmt.Errorf("%w: METADIR=%s", ErrMissingDirectory, env.MetaDir)
	}

	if !l.fsAdapter.IsDir(env.SrcDir) {
		return m.Environment{}, fmt.Errorf("%w: SRCDIR=%s", ErrMissingDirectory, env.SrcDir)
	}

	slog.Info("Launching stage",
		"stage", stage.String(),
		"WRKDIR", env.WorkDir,
		"TOPDIR", env.TopDir,
		"SRCDIR", env.SrcDir,
		"METADIR", env.MetaDir,
		"DATADIR", env.DataDir,
		"BAND", env.Band,
		"YEAR", env.ObsYear,
	)

	if err := l.copyControlFiles(ctx, env); err != nil {
		return m.Environment{}, err
	}

	return env, nil
}

func (l *launcher) environment(settings m.Settings, stage m.Stage, workDir m.Path) (m.Environment, error) {
	srcDir, err := l.fsAdapter.AbsPath(m.Path(settings.Data.SrcDir))
	if err != nil {
		return m.Environment{}, fmt.Errorf("resolve SRCDIR: %w", err)
	}

	metaDir, err := l.fsAdapter.AbsPath(m.Path(settings.Data.MetaDir))
	if err != nil {
		return m.Environment{}, fmt.Errorf("resolve METADIR: %w", err)
	}

	env := m.Environment{
		Stage:        stage,
		WorkDir:      workDir,
		TopDir:       workDir.Dir(),
		SrcDir:       srcDir,
		MetaDir:      metaDir,
		DataDir:      workDir.Join(dataDirName),
		CorrDat:      settings.Data.CorrDat,
		Band:         settings.Data.Band,
		Pattern:      settings.Data.Pattern,
		ObsYear:      settings.Observation.Year,
		MixedPol:     settings.Polarization.MixedPol,
		HAXP:         settings.Polarization.HAXP,
		HAXPStations: settings.Polarization.HAXPStations,
		Duplicates:   settings.Linking.Duplicates,
	}

	if env.HAXP && !env.MixedPol {
		slog.Warn("HAXP data requires mixed polarization; enabling MIXEDPOL")

		env.MixedPol = true
	}

	return env, nil
}

// copyControlFiles seeds the work directory with the stage control files of
// the band. Files already present are never overwritten.
func (l *launcher) copyControlFiles(ctx context.Context, env m.Environment) error {
	cfDir := env.MetaDir.Join(controlDirName)
	if !l.fsAdapter.IsDir(cfDir) {
		slog.Warn("Control file directory does not exist", "path", cfDir)
		return nil
	}

	patterns := []string{
		fmt.Sprintf("cf%d_bx_*", env.Stage.Number),
		fmt.Sprintf("cf%d_%s_*", env.Stage.Number, env.Band),
	}

	for _, pattern := range patterns {
		matches, err := l.fsAdapter.Glob(ctx, cfDir, pattern)
		if err != nil {
			return fmt.Errorf("find control files: %w", err)
		}

		for _, src := range matches {
			if l.fsAdapter.IsDir(src) {
				continue
			}

			dst := env.WorkDir.Join(src.Base())

			err := l.fsAdapter.CopyFile(src, dst)
			if adapter.IsExist(err) {
				slog.Debug("Control file already present", "path", dst)
				continue
			}

			if err != nil {
				return fmt.Errorf("copy control file %s: %w", src.Base(), err)
			}

			slog.Info("Copied control file", "file", src.Base())
		}
	}

	return nil
}
