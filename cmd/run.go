package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ehthops.dev/pkg/ehthops/internal/controller"
	"ehthops.dev/pkg/ehthops/internal/domain"
	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runStagesFlag []int
var runBaseDirFlag string
var runDryRunFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <settings.yaml>",
		Short: "Run pipeline stages",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settingsFile := m.Path(args[0])

			settings, err := settingsLoader.Load(settingsFile)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return newPipeline(controller.NewUI(cmd)).Run(ctx, domain.RunArgs{
				SettingsFile: settingsFile,
				Settings:     settings,
				Stages:       runStagesFlag,
				BaseDir:      m.Path(viper.GetString(runBaseDirKey)),
				DryRun:       runDryRunFlag,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&runStagesFlag, stagesFlagName, nil, "stage numbers to run, e.g. 0,1,2 (default: pipeline.stages)")
	cmd.Flags().StringVar(&runBaseDirFlag, baseDirFlagName, "", "directory holding the stage work directories")
	bindFlagToConfig(cmd.Flags().Lookup(baseDirFlagName), runBaseDirKey)
	cmd.Flags().BoolVar(&runDryRunFlag, dryRunFlagName, false, "validate settings and show the plan without touching the filesystem")
}
