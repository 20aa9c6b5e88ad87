// Package model defines the data structures shared by the staging pipeline.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Dir returns all but the last element of the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// Extension is the 6-character token identifying one correlation pass.
// Extensions order lexicographically, never numerically.
type Extension string

// RootFile is the primary file of one correlation pass of one scan.
//
//	<SRCDIR>/<corrdat>/.../<ExptDir>/<ScanDir>/<name>.<Extension>
type RootFile struct {
	Path      Path
	ScanDir   Path
	ExptDir   Path
	Extension Extension
}

// NewRootFile derives the scan and experiment directories from path.
func NewRootFile(path Path) RootFile {
	scan := path.Dir()

	return RootFile{
		Path:    path,
		ScanDir: scan,
		ExptDir: scan.Dir(),
	}
}

// ExptName is the experiment directory name, e.g. "3597".
func (r RootFile) ExptName() string {
	return r.ExptDir.Base()
}

// ScanName is the scan directory name.
func (r RootFile) ScanName() string {
	return r.ScanDir.Base()
}
