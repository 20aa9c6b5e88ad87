package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by writing plain text and tables to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStages prints the stage table.
func (s *SimpleUI) DisplayStages(ctx context.Context, stages []m.Stage) {
	if err := ctx.Err(); err != nil {
		return
	}

	rows := make([][]string, 0, len(stages))
	for _, stage := range stages {
		links := "no"
		if stage.Links() {
			links = "yes"
		}

		rows = append(rows, []string{fmt.Sprintf("%d", stage.Number), stage.Name, links})
	}

	s.printf("%s", renderTable([]string{"Stage", "Directory", "Links data"}, rows, nil))
}

// DisplayPlan prints what a dry run would execute.
func (s *SimpleUI) DisplayPlan(ctx context.Context, plan m.RunPlan) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("DRY RUN - no processing will be performed\n")
	s.printf("  Config file: %s\n", plan.SettingsFile)
	s.printf("  Source dir:  %s\n", plan.SrcDir)

	if plan.BaseDir != "" {
		s.printf("  Base dir:    %s\n", plan.BaseDir)
	}

	s.printf("  Band:        %s\n", plan.Band)
	s.printf("  Corrdat:     %s\n", strings.Join(plan.CorrDat, ", "))

	names := make([]string, 0, len(plan.Stages))
	for _, stage := range plan.Stages {
		names = append(names, stage.String())
	}

	s.printf("  Stages:      %s\n", strings.Join(names, ", "))
}

// DisplayEnvironment prints the resolved stage environment.
func (s *SimpleUI) DisplayEnvironment(ctx context.Context, env m.Environment) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Stage %s\n", env.Stage)
	s.printf("  WRKDIR=%s\n  SRCDIR=%s\n  DATADIR=%s\n", env.WorkDir, env.SrcDir, env.DataDir)
	s.printf("  BAND=%s MIXEDPOL=%t HAXP=%t\n", env.Band, env.MixedPol, env.HAXP)
}

// DisplayLinkSummary prints per-experiment counts and the resolver totals.
func (s *SimpleUI) DisplayLinkSummary(ctx context.Context, summary m.LinkSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(summary))
	s.printf("Root files %d, scans linked %d, replaced %d, kept %d, skipped %d, renamed %d\n",
		summary.RootFiles,
		summary.Count(m.ScanLinked),
		summary.Count(m.ScanReplaced),
		summary.Count(m.ScanKept),
		summary.Count(m.ScanSkipped),
		summary.Renamed,
	)

	if summary.HAXPLinked > 0 || summary.HAXPRemoved > 0 {
		s.printf("HAXP files linked %d, removed %d\n", summary.HAXPLinked, summary.HAXPRemoved)
	}
}

// DisplayStageDone reports the outcome of one stage.
func (s *SimpleUI) DisplayStageDone(ctx context.Context, stage m.Stage, err error) {
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		s.printf("Stage %s failed: %v\n", stage, err)
		return
	}

	s.printf("Stage %s completed\n", stage)
}

func renderSummaryTable(summary m.LinkSummary) string {
	rows := make([][]string, 0, len(summary.Experiments))
	scans, files := 0, 0

	for _, expt := range summary.Experiments {
		rows = append(rows, []string{expt.Name, fmt.Sprintf("%d", expt.Scans), fmt.Sprintf("%d", expt.Files)})
		scans += expt.Scans
		files += expt.Files
	}

	footer := []string{
		fmt.Sprintf("Total Experiments %d", len(summary.Experiments)),
		fmt.Sprintf("%d", scans),
		fmt.Sprintf("%d", files),
	}

	return renderTable([]string{"Experiment", "Scans", "Files"}, rows, footer)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	alignments := make([]int, len(header))
	for i := range alignments {
		alignments[i] = tablewriter.ALIGN_CENTER
	}

	alignments[0] = tablewriter.ALIGN_LEFT
	table.SetColumnAlignment(alignments)

	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
