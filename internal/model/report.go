package model

import "time"

// ScanAction records what the resolver did with one destination scan.
type ScanAction string

const (
	// ScanLinked means the scan was linked into a fresh destination directory.
	ScanLinked ScanAction = "linked"
	// ScanReplaced means an inferior pass was removed and the scan relinked.
	ScanReplaced ScanAction = "replaced"
	// ScanKept means the destination already held an equal or better pass.
	ScanKept ScanAction = "kept"
	// ScanSkipped means the scan could not be resolved and was left untouched.
	ScanSkipped ScanAction = "skipped"
)

// ScanDecision is the outcome for one destination scan directory.
type ScanDecision struct {
	Experiment  string     `yaml:"experiment"`
	Scan        string     `yaml:"scan"`
	Source      Path       `yaml:"source"`
	Extension   Extension  `yaml:"extension"`
	Action      ScanAction `yaml:"action"`
	Linked      int        `yaml:"linked"`
	HAXPLinked  int        `yaml:"haxp_linked,omitempty"`
	HAXPRemoved int        `yaml:"haxp_removed,omitempty"`
	Reason      string     `yaml:"reason,omitempty"`
}

// ExperimentSummary counts what ended up under one destination experiment directory.
type ExperimentSummary struct {
	Name  string
	Scans int
	Files int
}

// LinkSummary is the result of one linking run.
type LinkSummary struct {
	RunID       string
	Stage       Stage
	Band        string
	RootFiles   int
	Linked      int
	HAXPLinked  int
	HAXPRemoved int
	Renamed     int
	Decisions   []ScanDecision
	Experiments []ExperimentSummary
}

// Count returns how many decisions took the given action.
func (s LinkSummary) Count(action ScanAction) int {
	n := 0

	for _, d := range s.Decisions {
		if d.Action == action {
			n++
		}
	}

	return n
}

// Manifest is the on-disk record of a linking run.
type Manifest struct {
	RunID     string         `yaml:"run_id"`
	Stage     string         `yaml:"stage"`
	CreatedAt time.Time      `yaml:"created_at"`
	Band      string         `yaml:"band"`
	SrcDir    Path           `yaml:"srcdir"`
	CorrDat   []string       `yaml:"corrdat"`
	DataDir   Path           `yaml:"datadir"`
	Linked    int            `yaml:"linked"`
	Renamed   int            `yaml:"renamed"`
	Decisions []ScanDecision `yaml:"decisions"`
}

// RunPlan describes what a pipeline run would do.
type RunPlan struct {
	SettingsFile Path
	SrcDir       Path
	BaseDir      Path
	Band         string
	CorrDat      []string
	Stages       []Stage
}
