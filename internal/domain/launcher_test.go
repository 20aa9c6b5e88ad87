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

type launchFixture struct {
	settings m.Settings
	baseDir  m.Path
	metaDir  string
}

func newLaunchFixture(t *testing.T, controlFiles ...string) launchFixture {
	t.Helper()

	root := t.TempDir()
	srcDir := filepath.Join(root, "archive")
	metaDir := filepath.Join(root, "meta")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.MkdirAll(metaDir, 0o755))

	if len(controlFiles) > 0 {
		require.NoError(t, os.MkdirAll(filepath.Join(metaDir, "cf"), 0o755))
	}

	for _, name := range controlFiles {
		require.NoError(t, os.WriteFile(filepath.Join(metaDir, "cf", name), []byte("meta "+name), 0o644))
	}

	settings := m.DefaultSettings()
	settings.Data.SrcDir = srcDir
	settings.Data.MetaDir = metaDir
	settings.Data.CorrDat = []string{"Rev1-Cal", "Rev2-Cal"}
	settings.Data.Band = "b3"
	settings.Observation.Year = 2018

	return launchFixture{
		settings: settings,
		baseDir:  m.Path(filepath.Join(root, "stages")),
		metaDir:  metaDir,
	}
}

func TestLauncher_Launch(t *testing.T) {
	fx := newLaunchFixture(t, "cf0_bx_flags", "cf0_b3_pcal", "cf0_b1_pcal", "cf1_bx_flags")
	stage, _ := m.LookupStage(0)

	env, err := NewLauncher(adapter.NewLocalArchiveFSAdapter()).Launch(context.Background(), fx.settings, stage, fx.baseDir)
	require.NoError(t, err)

	t.Run("builds the environment", func(t *testing.T) {
		assert.Equal(t, stage, env.Stage)
		assert.Equal(t, fx.baseDir.Join("0.bootstrap"), env.WorkDir)
		assert.Equal(t, fx.baseDir, env.TopDir)
		assert.Equal(t, env.WorkDir.Join("data"), env.DataDir)
		assert.Equal(t, m.Path(fx.settings.Data.SrcDir), env.SrcDir)
		assert.Equal(t, m.Path(fx.metaDir), env.MetaDir)
		assert.Equal(t, []string{"Rev1-Cal", "Rev2-Cal"}, env.CorrDat)
		assert.Equal(t, "b3", env.Band)
		assert.Equal(t, 2018, env.ObsYear)
		assert.Equal(t, m.DuplicatesGrouped, env.Duplicates)
		assert.False(t, env.MixedPol)
		assert.False(t, env.HAXP)
	})

	t.Run("copies the stage control files", func(t *testing.T) {
		assert.Equal(t, []string{"cf0_b3_pcal", "cf0_bx_flags"}, dirNames(t, env.WorkDir))
	})
}

func TestLauncher_Launch_KeepsLocalControlFiles(t *testing.T) {
	fx := newLaunchFixture(t, "cf2_bx_flags", "cf2_b3_pcal")
	stage, _ := m.LookupStage(2)

	workDir := fx.baseDir.Join(stage.Name)
	require.NoError(t, os.MkdirAll(string(workDir), 0o755))
	require.NoError(t, os.WriteFile(string(workDir.Join("cf2_bx_flags")), []byte("local edit"), 0o644))

	_, err := NewLauncher(adapter.NewLocalArchiveFSAdapter()).Launch(context.Background(), fx.settings, stage, fx.baseDir)
	require.NoError(t, err)

	kept, err := os.ReadFile(string(workDir.Join("cf2_bx_flags")))
	require.NoError(t, err)
	assert.Equal(t, "local edit", string(kept))

	copied, err := os.ReadFile(string(workDir.Join("cf2_b3_pcal")))
	require.NoError(t, err)
	assert.Equal(t, "meta cf2_b3_pcal", string(copied))
}

func TestLauncher_Launch_ForcesMixedPolarization(t *testing.T) {
	fx := newLaunchFixture(t)
	fx.settings.Polarization.HAXP = true
	fx.settings.Polarization.MixedPol = false
	stage, _ := m.LookupStage(3)

	env, err := NewLauncher(adapter.NewLocalArchiveFSAdapter()).Launch(context.Background(), fx.settings, stage, fx.baseDir)
	require.NoError(t, err)

	assert.True(t, env.HAXP)
	assert.True(t, env.MixedPol)
	assert.Empty(t, dirNames(t, env.WorkDir))
}

func TestLauncher_Launch_MissingDirectories(t *testing.T) {
	stage, _ := m.LookupStage(0)

	tests := []struct {
		name   string
		mutate func(*m.Settings)
		want   string
	}{
		{
			name:   "source",
			mutate: func(s *m.Settings) { s.Data.SrcDir = filepath.Join(s.Data.SrcDir, "absent") },
			want:   "SRCDIR",
		},
		{
			name:   "metadata",
			mutate: func(s *m.Settings) { s.Data.MetaDir = filepath.Join(s.Data.MetaDir, "absent") },
			want:   "METADIR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newLaunchFixture(t)
			tt.mutate(&fx.settings)

			_, err := NewLauncher(adapter.NewLocalArchiveFSAdapter()).Launch(context.Background(), fx.settings, stage, fx.baseDir)
			require.ErrorIs(t, err, ErrMissingDirectory)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
