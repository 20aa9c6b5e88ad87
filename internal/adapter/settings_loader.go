package adapter

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	m "ehthops.dev/pkg/ehthops/internal/model"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings marks a settings file that parsed but cannot drive the pipeline.
var ErrInvalidSettings = errors.New("invalid settings")

var (
	requiredSections = []string{"data", "pipeline", "observation"}
	corrDatSeparator = regexp.MustCompile(`[ \t\n:,]+`)
)

// SettingsLoader reads and writes pipeline settings files.
type SettingsLoader interface {
	Load(path m.Path) (m.Settings, error)
	WriteTemplate(path m.Path, settings m.Settings) error
}

// ViperSettingsLoader reads YAML settings through a private viper instance so
// the tool configuration held by the global viper is never mixed in.
type ViperSettingsLoader struct{}

// NewViperSettingsLoader constructs a ViperSettingsLoader.
func NewViperSettingsLoader() *ViperSettingsLoader {
	return &ViperSettingsLoader{}
}

// Load parses and validates the settings file at path.
func (l *ViperSettingsLoader) Load(path m.Path) (m.Settings, error) {
	v := viper.New()
	v.SetConfigFile(string(path))
	v.SetConfigType("yaml")
	v.SetDefault("polarization.haxp_stations", m.DefaultHAXPStations)
	v.SetDefault("linking.duplicates", string(m.DuplicatesGrouped))

	if err := v.ReadInConfig(); err != nil {
		return m.Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	for _, section := range requiredSections {
		if !v.IsSet(section) {
			return m.Settings{}, fmt.Errorf("%w: missing required section %q", ErrInvalidSettings, section)
		}
	}

	var settings m.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return m.Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	settings.Data.CorrDat = ParseCorrDat(v.Get("data.corrdat"))

	if err := validateSettings(v, settings); err != nil {
		return m.Settings{}, err
	}

	return settings, nil
}

func validateSettings(v *viper.Viper, settings m.Settings) error {
	if strings.TrimSpace(settings.Data.SrcDir) == "" {
		return fmt.Errorf("%w: missing 'srcdir' in data configuration", ErrInvalidSettings)
	}

	if strings.TrimSpace(settings.Data.Band) == "" {
		return fmt.Errorf("%w: missing 'band' in data configuration", ErrInvalidSettings)
	}

	if !v.IsSet("pipeline.stages") {
		return fmt.Errorf("%w: missing 'stages' in pipeline configuration", ErrInvalidSettings)
	}

	for _, n := range settings.Pipeline.Stages {
		if _, ok := m.LookupStage(n); !ok {
			return fmt.Errorf("%w: invalid stage number %d, valid stages are 0-8", ErrInvalidSettings, n)
		}
	}

	switch settings.Linking.Duplicates {
	case m.DuplicatesGrouped, m.DuplicatesAdjacent:
	default:
		return fmt.Errorf("%w: linking.duplicates must be %q or %q, got %q",
			ErrInvalidSettings, m.DuplicatesGrouped, m.DuplicatesAdjacent, settings.Linking.Duplicates)
	}

	return nil
}

// ParseCorrDat normalizes the corrdat setting, which may be a YAML list or a
// single string separated by spaces, tabs, newlines, colons or commas.
func ParseCorrDat(raw any) []string {
	var parts []string

	switch value := raw.(type) {
	case nil:
		return nil
	case string:
		parts = corrDatSeparator.Split(strings.TrimSpace(value), -1)
	case []string:
		parts = value
	case []any:
		for _, item := range value {
			parts = append(parts, fmt.Sprint(item))
		}
	default:
		parts = []string{fmt.Sprint(value)}
	}

	dirs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			dirs = append(dirs, trimmed)
		}
	}

	return dirs
}

// WriteTemplate writes settings as YAML to path, refusing to overwrite.
func (l *ViperSettingsLoader) WriteTemplate(path m.Path, settings m.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	// #nosec G304 - path is chosen by the operator
	file, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create settings file: %w", err)
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("write settings file: %w", err)
	}

	return file.Close()
}
