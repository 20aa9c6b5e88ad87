package cmd

import (
	"fmt"
	"path/filepath"

	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initToolConfigFlag bool

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [settings.yaml]",
		Short: "Generate a settings file template",
		Long: `Write a pipeline settings file populated with defaults so it can be edited
manually. The file defaults to settings.yaml and is never overwritten.

With --tool-config an ehthops.yaml holding the current CLI defaults is
written to the working directory as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := m.Path(defaultSettingsFile)
			if len(args) == 1 {
				target = m.Path(args[0])
			}

			if err := settingsLoader.WriteTemplate(target, m.DefaultSettings()); err != nil {
				return fmt.Errorf("failed to write settings file: %w", err)
			}

			cmd.Printf("Wrote settings template to %s\n", target)

			if !initToolConfigFlag {
				return nil
			}

			configPath := filepath.Join(configFolderPath, configFileName)
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote tool configuration to %s\n", configPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&initToolConfigFlag, toolConfFlagName, false, "also write "+configFileName)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
