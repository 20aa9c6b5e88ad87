package domain

import "errors"

var (
	// ErrNoData is returned when linking produced no experiment directory.
	ErrNoData = errors.New("no data in the archive to link")
	// ErrMissingDirectory is returned when a required input directory is absent.
	ErrMissingDirectory = errors.New("required directory does not exist")
	// ErrInvalidStage is returned for stage numbers outside the stage table.
	ErrInvalidStage = errors.New("invalid stage number")
	// ErrNoBaseDir is returned when neither flag nor settings name a base directory.
	ErrNoBaseDir = errors.New("no base directory specified")
)
