// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML configuration decoded with gopkg.in/yaml.v3; unknown keys are rejected

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// Settings holds the merged configuration. Zero values mean "use the
// built-in default".
type Settings struct {
	Banner         string `yaml:"banner,omitempty"`
	EmptyLineGlyph string `yaml:"empty_line_glyph,omitempty"`
	LogFile        string `yaml:"log_file,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. Missing files are skipped.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadFile reads settings from an explicit path. Unlike Load, a missing
// file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist; an empty file is valid.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Banner != "" {
		result.Banner = project.Banner
	}
	if project.EmptyLineGlyph != "" {
		result.EmptyLineGlyph = project.EmptyLineGlyph
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}
	return &result
}

// Validate rejects values the renderer cannot draw on a single row.
func (s *Settings) Validate() error {
	if strings.ContainsFunc(s.Banner, isControl) {
		return fmt.Errorf("banner: control characters are not allowed")
	}
	if s.EmptyLineGlyph != "" {
		if strings.ContainsFunc(s.EmptyLineGlyph, isControl) || width.VisibleWidth(s.EmptyLineGlyph) != 1 {
			return fmt.Errorf("empty_line_glyph: %q must be exactly one column wide", s.EmptyLineGlyph)
		}
	}
	return nil
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
