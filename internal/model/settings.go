package model

// Settings mirrors the pipeline settings YAML file.
type Settings struct {
	Data         DataSettings         `mapstructure:"data" yaml:"data"`
	Observation  ObservationSettings  `mapstructure:"observation" yaml:"observation"`
	Polarization PolarizationSettings `mapstructure:"polarization" yaml:"polarization"`
	Pipeline     PipelineSettings     `mapstructure:"pipeline" yaml:"pipeline"`
	Linking      LinkingSettings      `mapstructure:"linking" yaml:"linking"`
}

// DataSettings locates the correlator archive.
type DataSettings struct {
	SrcDir  string   `mapstructure:"srcdir" yaml:"srcdir"`
	CorrDat []string `mapstructure:"-" yaml:"corrdat"`
	MetaDir string   `mapstructure:"metadir" yaml:"metadir"`
	Band    string   `mapstructure:"band" yaml:"band"`
	Pattern string   `mapstructure:"pattern" yaml:"pattern"`
}

// ObservationSettings describes the observing campaign.
type ObservationSettings struct {
	Campaign string `mapstructure:"campaign" yaml:"campaign"`
	Year     int    `mapstructure:"year" yaml:"year"`
}

// PolarizationSettings holds the polarization calibration switches.
type PolarizationSettings struct {
	MixedPol     bool     `mapstructure:"mixedpol" yaml:"mixedpol"`
	HAXP         bool     `mapstructure:"haxp" yaml:"haxp"`
	HAXPStations []string `mapstructure:"haxp_stations" yaml:"haxp_stations"`
}

// PipelineSettings selects what to run and where.
type PipelineSettings struct {
	Stages  []int  `mapstructure:"stages" yaml:"stages"`
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir"`
}

// LinkingSettings tunes the linking stage.
type LinkingSettings struct {
	Duplicates DuplicatePolicy `mapstructure:"duplicates" yaml:"duplicates"`
}

// DefaultSettings returns the settings written by `ehthops init`.
func DefaultSettings() Settings {
	return Settings{
		Data: DataSettings{
			SrcDir:  "/data/archive",
			CorrDat: []string{"Rev1-Cal"},
			MetaDir: "/data/meta",
			Band:    "b1",
		},
		Observation: ObservationSettings{
			Campaign: "EHT",
			Year:     2021,
		},
		Polarization: PolarizationSettings{
			HAXPStations: append([]string(nil), DefaultHAXPStations...),
		},
		Pipeline: PipelineSettings{
			Stages: []int{0, 1, 2, 3, 4, 5},
		},
		Linking: LinkingSettings{
			Duplicates: DuplicatesGrouped,
		},
	}
}
