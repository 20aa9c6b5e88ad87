// Package domain provides the staging logic that turns a correlator archive
// into a deduplicated, linked stage workspace.
package domain

import (
	"regexp"
	"strings"

	m "ehthops.dev/pkg/ehthops/internal/model"
)

var (
	rootFilenamePattern = regexp.MustCompile(`^[A-Za-z0-9+_-]+\.[A-Za-z0-9]{6}$`)
	exptDirPattern      = regexp.MustCompile(`^[0-9]{4,5}$`)
	extensionPattern    = regexp.MustCompile(`[A-Za-z0-9]{6}$`)

	// Per-baseline calibration artifacts: station pair, tag, sequence, extension.
	calibrationPattern = regexp.MustCompile(`[A-Za-z]{2}\.[A-Za-z]\.[0-9]+\.[A-Za-z0-9]{6}$`)
)

// IsValidRootFilename reports whether name identifies a root file.
func IsValidRootFilename(name string) bool {
	return rootFilenamePattern.MatchString(name)
}

// IsValidExptDir reports whether name is a 4-5 digit experiment number.
func IsValidExptDir(name string) bool {
	return exptDirPattern.MatchString(name)
}

// ExtractExtension returns the trailing 6 alphanumeric characters of name, or
// "" when name cannot be classified.
func ExtractExtension(name string) m.Extension {
	return m.Extension(extensionPattern.FindString(name))
}

// IsCalibrationFile reports whether name is a per-baseline calibration file
// that must never be staged.
func IsCalibrationFile(name string) bool {
	return calibrationPattern.MatchString(name)
}

// MaxExtension returns the lexicographically greatest extension among names.
func MaxExtension(names []string) m.Extension {
	var highest m.Extension

	for _, name := range names {
		if ext := ExtractExtension(name); ext > highest {
			highest = ext
		}
	}

	return highest
}

// ShouldSkipPath applies the band and HAXP filters to a candidate path. The
// band token must appear as "-<band>-"; any path mentioning haxp is dropped
// unless HAXP mode is on.
func ShouldSkipPath(path, band string, haxp bool) bool {
	if !haxp && strings.Contains(strings.ToLower(path), "haxp") {
		return true
	}

	return !strings.Contains(path, "-"+band+"-")
}

// InHAXPTree reports whether path belongs to an alternate HAXP data tree.
func InHAXPTree(path m.Path) bool {
	return strings.Contains(strings.ToLower(string(path)), "haxp")
}
