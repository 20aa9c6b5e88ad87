package domain

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/stretchr/testify/require"
)

const (
	testBand    = "b1"
	testRelease = "e21b09-b1-rel"
)

// testArchive builds a correlator archive below a temporary SRCDIR:
//
//	<root>/<corrdat>/<release>/<tree>/<expt>/<scan>/<files>
type testArchive struct {
	t    *testing.T
	root string
}

func newTestArchive(t *testing.T) *testArchive {
	t.Helper()

	return &testArchive{t: t, root: filepath.Join(t.TempDir(), "archive")}
}

func (a *testArchive) srcDir() m.Path {
	return m.Path(a.root)
}

// scan creates one scan directory of the b1 release with empty files.
func (a *testArchive) scan(corrDat, tree, expt, scan string, files ...string) m.Path {
	a.t.Helper()

	return a.scanIn(corrDat, testRelease, tree, expt, scan, files...)
}

func (a *testArchive) scanIn(corrDat, release, tree, expt, scan string, files ...string) m.Path {
	a.t.Helper()

	dir := filepath.Join(a.root, corrDat, release, tree, expt, scan)
	require.NoError(a.t, os.MkdirAll(dir, 0o755))

	for _, name := range files {
		require.NoError(a.t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}

	return m.Path(dir)
}

func testEnvironment(t *testing.T, srcDir m.Path, corrDat ...string) m.Environment {
	t.Helper()

	stage, _ := m.LookupStage(0)
	workDir := m.Path(filepath.Join(t.TempDir(), stage.Name))

	return m.Environment{
		Stage:      stage,
		WorkDir:    workDir,
		TopDir:     workDir.Dir(),
		SrcDir:     srcDir,
		DataDir:    workDir.Join("data"),
		CorrDat:    corrDat,
		Band:       testBand,
		Duplicates: m.DuplicatesGrouped,
	}
}

// dirNames lists the entry names of dir, sorted.
func dirNames(t *testing.T, dir m.Path) []string {
	t.Helper()

	entries, err := os.ReadDir(string(dir))
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names
}

func rootFiles(scanDir m.Path, names ...string) []m.RootFile {
	files := make([]m.RootFile, 0, len(names))
	for _, name := range names {
		files = append(files, m.NewRootFile(scanDir.Join(name)))
	}

	return files
}

var errInjected = errors.New("injected failure")

// faultyFS fails the configured operations and delegates everything else to
// the local disk. Symlink and Rename failures are keyed by base name.
type faultyFS struct {
	*adapter.LocalArchiveFSAdapter

	failRemoveAll map[m.Path]bool
	failSymlink   map[string]bool
	failRename    map[string]bool
}

func newFaultyFS() *faultyFS {
	return &faultyFS{
		LocalArchiveFSAdapter: adapter.NewLocalArchiveFSAdapter(),
		failRemoveAll:         map[m.Path]bool{},
		failSymlink:           map[string]bool{},
		failRename:            map[string]bool{},
	}
}

func (f *faultyFS) RemoveAll(path m.Path) error {
	if f.failRemoveAll[path] {
		return errInjected
	}

	return f.LocalArchiveFSAdapter.RemoveAll(path)
}

func (f *faultyFS) Symlink(target, link m.Path) error {
	if f.failSymlink[link.Base()] {
		return errInjected
	}

	return f.LocalArchiveFSAdapter.Symlink(target, link)
}

func (f *faultyFS) Rename(from, to m.Path) error {
	if f.failRename[from.Base()] {
		return errInjected
	}

	return f.LocalArchiveFSAdapter.Rename(from, to)
}
