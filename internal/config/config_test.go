package config

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMissingDirUsesDefaults(t *testing.T) {
	s, src, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Path != "" {
		t.Fatalf("expected default source, got %q", src.Path)
	}
	if s != Defaults() {
		t.Fatalf("settings = %+v", s)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "config.toml", "theme = \"light\"\ntab_width = 8\n")

	s, src, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Format != FormatTOML {
		t.Fatalf("format = %q", src.Format)
	}
	if s.Theme != "light" || s.TabWidth != 8 {
		t.Fatalf("settings = %+v", s)
	}
}

func TestLoadJSONFallback(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "config.json", `{"theme":"light","default_file":"/tmp/notes.txt"}`)

	s, src, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Format != FormatJSON {
		t.Fatalf("format = %q", src.Format)
	}
	if s.Theme != "light" || s.DefaultFile != "/tmp/notes.txt" {
		t.Fatalf("settings = %+v", s)
	}
	// Unset fields keep defaults.
	if s.TabWidth != Defaults().TabWidth {
		t.Fatalf("tab width = %d", s.TabWidth)
	}
}

func TestTOMLPreferredOverJSON(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "config.toml", "theme = \"light\"\n")
	write(t, dir, "config.json", `{"theme":"dark"}`)

	s, src, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Format != FormatTOML || s.Theme != "light" {
		t.Fatalf("format=%q theme=%q", src.Format, s.Theme)
	}
}

func TestMalformedConfigIsAnError(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "config.toml", "theme = [broken")

	if _, _, err := Load(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}
