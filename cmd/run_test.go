package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	adaptermocks "ehthops.dev/pkg/ehthops/internal/adapter/mocks"
	"ehthops.dev/pkg/ehthops/internal/controller"
	"ehthops.dev/pkg/ehthops/internal/domain"
	domainmocks "ehthops.dev/pkg/ehthops/internal/domain/mocks"
	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubRunDependencies swaps the settings loader and pipeline for mocks.
func stubRunDependencies(t *testing.T) (*adaptermocks.MockSettingsLoader, *domainmocks.MockPipeline) {
	t.Helper()

	mockLoader := adaptermocks.NewMockSettingsLoader(t)
	mockPipeline := domainmocks.NewMockPipeline(t)

	originalLoader := settingsLoader
	originalPipeline := newPipeline

	settingsLoader = mockLoader
	newPipeline = func(controller.UI) domain.Pipeline { return mockPipeline }

	t.Cleanup(func() {
		settingsLoader = originalLoader
		newPipeline = originalPipeline
	})

	return mockLoader, mockPipeline
}

func executeRun(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"run", "--log-file", filepath.Join(t.TempDir(), "ehthops.log")}, args...))

	return cmd.Execute()
}

func TestRunCmd_PassesSettings(t *testing.T) {
	mockLoader, mockPipeline := stubRunDependencies(t)

	settings := m.DefaultSettings()
	mockLoader.EXPECT().Load(m.Path("settings.yaml")).Return(settings, nil).Once()
	mockPipeline.EXPECT().Run(mock.Anything, domain.RunArgs{
		SettingsFile: "settings.yaml",
		Settings:     settings,
		Stages:       nil,
		BaseDir:      "",
		DryRun:       false,
	}).Return(nil).Once()

	require.NoError(t, executeRun(t, "settings.yaml"))
}

func TestRunCmd_Flags(t *testing.T) {
	mockLoader, mockPipeline := stubRunDependencies(t)

	settings := m.DefaultSettings()
	mockLoader.EXPECT().Load(m.Path("eht2021.yaml")).Return(settings, nil).Once()
	mockPipeline.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return assert.ObjectsAreEqual([]int{0, 1, 2}, args.Stages) &&
			args.BaseDir == m.Path("/scratch/eht") &&
			args.DryRun
	})).Return(nil).Once()

	err := executeRun(t, "eht2021.yaml", "--stages", "0,1,2", "--base-dir", "/scratch/eht", "--dry-run")
	require.NoError(t, err)
}

func TestRunCmd_SettingsError(t *testing.T) {
	mockLoader, _ := stubRunDependencies(t)

	mockLoader.EXPECT().Load(m.Path("broken.yaml")).Return(m.Settings{}, errors.New("bad yaml")).Once()

	err := executeRun(t, "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load settings")
}

func TestRunCmd_PipelineError(t *testing.T) {
	mockLoader, mockPipeline := stubRunDependencies(t)

	mockLoader.EXPECT().Load(mock.Anything).Return(m.DefaultSettings(), nil).Once()
	mockPipeline.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ErrNoData).Once()

	err := executeRun(t, "settings.yaml", "--base-dir", t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestRunCmd_RequiresSettingsFile(t *testing.T) {
	stubRunDependencies(t)

	err := executeRun(t)
	require.Error(t, err)
}
