// Package cmd provides the root command and CLI setup for ehthops.
package cmd

import (
	"fmt"
	"os"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	"ehthops.dev/pkg/ehthops/internal/controller"
	"ehthops.dev/pkg/ehthops/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var archiveFS adapter.ArchiveFSAdapter
var settingsLoader adapter.SettingsLoader
var manifestStore adapter.ManifestStore
var launcher domain.Launcher
var stager domain.Stager

// newPipeline builds the pipeline for one command invocation; tests swap it.
var newPipeline func(ui controller.UI) domain.Pipeline

// verboseFlag switches logging to debug.
var verboseFlag bool

// logFileFlag overrides log.filename.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	archiveFS = adapter.NewLocalArchiveFSAdapter()
	settingsLoader = adapter.NewViperSettingsLoader()
	manifestStore = adapter.NewYAMLManifestStore()
	launcher = domain.NewLauncher(archiveFS)
	stager = domain.NewDefaultStager(archiveFS, manifestStore)
	newPipeline = func(ui controller.UI) domain.Pipeline {
		return domain.NewPipeline(archiveFS, launcher, stager, ui)
	}
}

const rootLongDescription = `ehthops prepares EHT-HOPS pipeline stages from a VLBI correlator archive.

Each stage gets its own work directory below the base directory. Stages 0-5
stage correlator data: the best correlation pass of every scan is symlinked
into <stage>/data/<experiment>/<scan>, optionally substituting HAXP data for
selected stations.`

const runLongDescription = `Run pipeline stages described by a settings file.

Stages default to pipeline.stages from the settings file and can be
overridden with --stages 0,1,2. The base directory comes from --base-dir,
then run.base_dir in ehthops.yaml, then pipeline.base_dir.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ehthops",
		Short:         "EHT-HOPS data staging pipeline",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(cmd.ErrOrStderr(), logFileFlag, verboseFlag)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with its persistent flags but no children.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
