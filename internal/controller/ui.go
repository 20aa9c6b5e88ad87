// Package controller provides output adapters for displaying staging results.
package controller

import (
	"context"

	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/spf13/cobra"
)

// UI defines how pipeline progress is presented to the operator.
// Detailed traces go to the log; the UI only shows summaries.
type UI interface {
	DisplayStages(ctx context.Context, stages []m.Stage)
	DisplayPlan(ctx context.Context, plan m.RunPlan)
	DisplayEnvironment(ctx context.Context, env m.Environment)
	DisplayLinkSummary(ctx context.Context, summary m.LinkSummary)
	DisplayStageDone(ctx context.Context, stage m.Stage, err error)
}

// NewUI returns the UI bound to the command output streams.
func NewUI(cmd *cobra.Command) UI {
	return NewSimpleUI(cmd)
}
