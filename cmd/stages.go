package cmd

import (
	"ehthops.dev/pkg/ehthops/internal/controller"
	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/spf13/cobra"
)

// stagesCmd represents the stages command.
var stagesCmd = newStagesCmd()

func newStagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the pipeline stages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			controller.NewUI(cmd).DisplayStages(cmd.Context(), m.Stages())
		},
	}
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
