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

func TestSubstituter_ReplacesStationFiles(t *testing.T) {
	archive := newTestArchive(t)
	src := archive.scan("Rev1-Cal", "hops", "3597", "092-0335", "3C279.aaaaaa", "AA..aaaaaa", "AL..aaaaaa", "LM..aaaaaa")
	archive.scan("Rev1-Cal", "haxp", "3597", "092-0335", "AA..cccccc", "AL..cccccc", "AL.X.1.cccccc", "notes")

	fsAdapter := adapter.NewLocalArchiveFSAdapter()

	tests := []struct {
		name        string
		stations    []string
		wantRemoved int
		want        []string
	}{
		{
			name:        "default station prefix",
			stations:    nil,
			wantRemoved: 2,
			want:        []string{"3C279.aaaaaa", "AA..cccccc", "AL..cccccc", "LM..aaaaaa", "notes"},
		},
		{
			name:        "configured station prefixes",
			stations:    []string{"L", "3C"},
			wantRemoved: 2,
			want:        []string{"AA..aaaaaa", "AA..cccccc", "AL..aaaaaa", "AL..cccccc", "notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := m.Path(filepath.Join(t.TempDir(), "3597", "092-0335"))
			require.NoError(t, fsAdapter.MkdirAll(dst))

			_, err := NewScanLinker(fsAdapter).LinkScan(context.Background(), src, dst, "aaaaaa")
			require.NoError(t, err)

			result, err := NewHAXPSubstituter(fsAdapter).Substitute(context.Background(), src, dst, tt.stations)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRemoved, result.Removed)
			assert.Equal(t, 3, result.Linked)
			assert.Equal(t, tt.want, dirNames(t, dst))
		})
	}
}

func TestSubstituter_NoSibling(t *testing.T) {
	archive := newTestArchive(t)
	src := archive.scan("Rev1-Cal", "hops", "3597", "092-0335", "3C279.aaaaaa", "AA..aaaaaa")

	fsAdapter := adapter.NewLocalArchiveFSAdapter()
	dst := m.Path(filepath.Join(t.TempDir(), "092-0335"))
	require.NoError(t, os.MkdirAll(string(dst), 0o755))

	_, err := NewScanLinker(fsAdapter).LinkScan(context.Background(), src, dst, "aaaaaa")
	require.NoError(t, err)

	result, err := NewHAXPSubstituter(fsAdapter).Substitute(context.Background(), src, dst, nil)
	require.NoError(t, err)

	assert.Equal(t, HAXPResult{}, result)
	assert.Equal(t, []string{"3C279.aaaaaa", "AA..aaaaaa"}, dirNames(t, dst))
}
