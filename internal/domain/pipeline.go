package domain

import (
	"context"
	"fmt"
	"log/slog"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	"ehthops.dev/pkg/ehthops/internal/controller"
	m "ehthops.dev/pkg/ehthops/internal/model"
)

// RunArgs contains the arguments for running pipeline stages.
type RunArgs struct {
	SettingsFile m.Path
	Settings     m.Settings
	// Stages overrides pipeline.stages when non-empty.
	Stages []int
	// BaseDir overrides pipeline.base_dir when set.
	BaseDir m.Path
	DryRun  bool
}

// Pipeline runs the configured stages in order.
type Pipeline interface {
	Run(ctx context.Context, args RunArgs) error
}

type pipeline struct {
	fsAdapter adapter.ArchiveFSAdapter
	Launcher
	Stager
	controller.UI
}

// NewPipeline creates a new Pipeline instance with the provided dependencies.
func NewPipeline(
	fsAdapter adapter.ArchiveFSAdapter,
	launcher Launcher,
	stager Stager,
	ui controller.UI,
) Pipeline {
	return &pipeline{
		fsAdapter: fsAdapter,
		Launcher:  launcher,
		Stager:    stager,
		UI:        ui,
	}
}

func (p *pipeline) Run(ctx context.Context, args RunArgs) error {
	stages, err := resolveStages(args)
	if err != nil {
		return err
	}

	baseDir := args.BaseDir
	if baseDir == "" {
		baseDir = m.Path(args.Settings.Pipeline.BaseDir)
	}

	if args.DryRun {
		p.DisplayPlan(ctx, m.RunPlan{
			SettingsFile: args.SettingsFile,
			SrcDir:       m.Path(args.Settings.Data.SrcDir),
			BaseDir:      baseDir,
			Band:         args.Settings.Data.Band,
			CorrDat:      args.Settings.Data.CorrDat,
			Stages:       stages,
		})

		return nil
	}

	if baseDir == "" {
		return ErrNoBaseDir
	}

	if err := p.fsAdapter.MkdirAll(baseDir); err != nil {
		return fmt.Errorf("create base directory %s: %w", baseDir, err)
	}

	slog.Info("Running pipeline", "stages", len(stages), "base_dir", baseDir)

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := p.runStage(ctx, args.Settings, stage, baseDir)
		p.DisplayStageDone(ctx, stage, err)

		if err != nil {
			return fmt.Errorf("stage %s: %w", stage, err)
		}
	}

	return nil
}

func (p *pipeline) runStage(ctx context.Context, settings m.Settings, stage m.Stage, baseDir m.Path) error {
	slog.Info("Starting stage", "stage", stage.String())

	env, err := p.Launch(ctx, settings, stage, baseDir)
	if err != nil {
		return fmt.Errorf("launch: %w", err)
	}

	p.DisplayEnvironment(ctx, env)

	if !stage.Links() {
		slog.Info("Stage does not link correlator data", "stage", stage.String())
		return nil
	}

	summary, err := p.Link(ctx, env)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}

	p.DisplayLinkSummary(ctx, summary)

	return nil
}

// resolveStages maps the requested stage numbers onto the stage table.
func resolveStages(args RunArgs) ([]m.Stage, error) {
	numbers := args.Stages
	if len(numbers) == 0 {
		numbers = args.Settings.Pipeline.Stages
	}

	stages := make([]m.Stage, 0, len(numbers))

	for _, n := range numbers {
		stage, ok := m.LookupStage(n)
		if !ok {
			return nil, fmt.Errorf("%w: %d (valid stages are 0-%d)", ErrInvalidStage, n, len(m.Stages())-1)
		}

		stages = append(stages, stage)
	}

	return stages, nil
}
