package model

// DuplicatePolicy selects how correlation passes of the same scan are resolved.
type DuplicatePolicy string

const (
	// DuplicatesGrouped groups root files by destination scan before picking
	// the highest extension.
	DuplicatesGrouped DuplicatePolicy = "grouped"
	// DuplicatesAdjacent only compares a root file with the one processed
	// immediately before it in path order.
	DuplicatesAdjacent DuplicatePolicy = "adjacent"
)

// DefaultHAXPStations are the station-code prefixes replaced by HAXP data.
var DefaultHAXPStations = []string{"A"}

// Environment is the resolved path and flag bundle for one stage invocation.
// It is built once by the launcher and only read afterwards.
type Environment struct {
	Stage    Stage
	WorkDir  Path
	TopDir   Path
	SrcDir   Path
	MetaDir  Path
	DataDir  Path
	CorrDat  []string
	Band     string
	Pattern  string
	ObsYear  int
	MixedPol bool
	HAXP     bool

	HAXPStations []string
	Duplicates   DuplicatePolicy
}
