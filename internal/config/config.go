// Package config loads editor settings from config.toml or config.json in
// the user's config directory. Missing files fall back to defaults; a
// malformed file is an error rather than a silent default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Format identifies the serialization format of a settings file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Source describes where settings were loaded from. An empty Path means the
// defaults were used.
type Source struct {
	Path   string
	Format Format
}

// Settings are the user-tunable editor options.
type Settings struct {
	Theme       string `json:"theme,omitempty" toml:"theme,omitempty"`
	TabWidth    int    `json:"tab_width,omitempty" toml:"tab_width,omitempty"`
	DefaultFile string `json:"default_file,omitempty" toml:"default_file,omitempty"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() Settings {
	return Settings{Theme: "dark", TabWidth: 4}
}

// Load reads settings from dir, preferring config.toml over config.json.
// Fields left unset in the file keep their default values.
func Load(dir string) (Settings, Source, error) {
	candidates := []Source{
		{Path: filepath.Join(dir, "config.toml"), Format: FormatTOML},
		{Path: filepath.Join(dir, "config.json"), Format: FormatJSON},
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Defaults(), Source{}, fmt.Errorf("read config %q: %w", candidate.Path, err)
		}
		s := Defaults()
		if err := decode(data, candidate.Format, &s); err != nil {
			return Defaults(), Source{}, fmt.Errorf("parse config %q: %w", candidate.Path, err)
		}
		if s.TabWidth <= 0 {
			s.TabWidth = Defaults().TabWidth
		}
		if s.Theme == "" {
			s.Theme = Defaults().Theme
		}
		return s, candidate, nil
	}
	return Defaults(), Source{}, nil
}

func decode(data []byte, format Format, out *Settings) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, out)
	case FormatJSON:
		return json.Unmarshal(data, out)
	default:
		return fmt.Errorf("unknown config format %q", format)
	}
}

// DefaultDir returns the per-user config directory for the editor.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "text-editor")
}
