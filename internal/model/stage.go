package model

import (
	"fmt"
	"sort"
)

// Stage is one numbered step of the reduction pipeline.
type Stage struct {
	Number int
	Name   string
}

// LastLinkStage is the highest stage that stages correlator data before uvfits conversion.
const LastLinkStage = 5

var stageNames = map[int]string{
	0: "0.bootstrap",
	1: "1.+flags+wins",
	2: "2.+pcal",
	3: "3.+adhoc",
	4: "4.+delays",
	5: "5.+close",
	6: "6.uvfits",
	7: "7.+apriori",
	8: "8.+polcal",
}

// LookupStage returns the stage for number n.
func LookupStage(n int) (Stage, bool) {
	name, ok := stageNames[n]
	if !ok {
		return Stage{}, false
	}

	return Stage{Number: n, Name: name}, true
}

// Stages returns the full stage table ordered by number.
func Stages() []Stage {
	stages := make([]Stage, 0, len(stageNames))
	for n, name := range stageNames {
		stages = append(stages, Stage{Number: n, Name: name})
	}

	sort.Slice(stages, func(i, j int) bool {
		return stages[i].Number < stages[j].Number
	})

	return stages
}

// Links reports whether the stage runs the linking step.
func (s Stage) Links() bool {
	return s.Number <= LastLinkStage
}

func (s Stage) String() string {
	return fmt.Sprintf("%d (%s)", s.Number, s.Name)
}
