package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ehthops.dev/pkg/ehthops/internal/adapter"
	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLinker_LinkScan(t *testing.T) {
	archive := newTestArchive(t)
	src := archive.scan("Rev1-Cal", "hops", "3597", "092-0335",
		"3C279.aaaaaa", "AL..aaaaaa", "AA.X.12.aaaaaa", "3C279.aaaaab", "AL..aaaaab")
	require.NoError(t, os.MkdirAll(filepath.Join(string(src), "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(string(src), "nested", "LM..aaaaaa"), nil, 0o644))

	dst := m.Path(filepath.Join(t.TempDir(), "3597", "092-0335"))
	require.NoError(t, os.MkdirAll(string(dst), 0o755))

	linker := NewScanLinker(adapter.NewLocalArchiveFSAdapter())

	linked, err := linker.LinkScan(context.Background(), src, dst, "aaaaaa")
	require.NoError(t, err)
	assert.Equal(t, 3, linked)
	assert.Equal(t, []string{"3C279.aaaaaa", "AL..aaaaaa", "LM..aaaaaa"}, dirNames(t, dst))

	target, err := os.Readlink(string(dst.Join("AL..aaaaaa")))
	require.NoError(t, err)
	assert.Equal(t, string(src.Join("AL..aaaaaa")), target)

	t.Run("second run links nothing", func(t *testing.T) {
		linked, err := linker.LinkScan(context.Background(), src, dst, "aaaaaa")
		require.NoError(t, err)
		assert.Zero(t, linked)
		assert.Equal(t, []string{"3C279.aaaaaa", "AL..aaaaaa", "LM..aaaaaa"}, dirNames(t, dst))
	})

	t.Run("never links calibration files", func(t *testing.T) {
		assert.NotContains(t, dirNames(t, dst), "AA.X.12.aaaaaa")
	})
}

func TestScanLinker_LinkScan_MissingDestination(t *testing.T) {
	archive := newTestArchive(t)
	src := archive.scan("Rev1-Cal", "hops", "3597", "092-0335", "3C279.aaaaaa", "AL..aaaaaa")

	linker := NewScanLinker(adapter.NewLocalArchiveFSAdapter())

	linked, err := linker.LinkScan(context.Background(), src, m.Path(filepath.Join(t.TempDir(), "absent")), "aaaaaa")
	require.NoError(t, err)
	assert.Zero(t, linked)
}

func TestScanLinker_LinkScan_SkipsLinkedDirectories(t *testing.T) {
	archive := newTestArchive(t)
	src := archive.scan("Rev1-Cal", "hops", "3597", "092-0335", "3C279.aaaaab")
	require.NoError(t, os.Symlink(t.TempDir(), string(src.Join("calib.aaaaab"))))

	dst := m.Path(filepath.Join(t.TempDir(), "3597", "092-0335"))
	require.NoError(t, os.MkdirAll(string(dst), 0o755))

	linked, err := NewScanLinker(adapter.NewLocalArchiveFSAdapter()).LinkScan(context.Background(), src, dst, "aaaaab")
	require.NoError(t, err)
	assert.Equal(t, 1, linked)
	assert.Equal(t, []string{"3C279.aaaaab"}, dirNames(t, dst))
}

func TestScanLinker_LinkScan_SymlinkFailure(t *testing.T) {
	archive := newTestArchive(t)
	src := archive.scan("Rev1-Cal", "hops", "3597", "092-0335", "3C279.aaaaaa", "AL..aaaaaa", "LM..aaaaaa")

	dst := m.Path(filepath.Join(t.TempDir(), "3597", "092-0335"))
	require.NoError(t, os.MkdirAll(string(dst), 0o755))

	fsAdapter := newFaultyFS()
	fsAdapter.failSymlink["AL..aaaaaa"] = true

	linked, err := NewScanLinker(fsAdapter).LinkScan(context.Background(), src, dst, "aaaaaa")
	require.NoError(t, err)
	assert.Equal(t, 2, linked)
	assert.Equal(t, []string{"3C279.aaaaaa", "LM..aaaaaa"}, dirNames(t, dst))
}
