package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cardstack/pkg/cards"
	errs "github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/layout"
)

func TestDefaultMatchesStockGeometry(t *testing.T) {
	cfg := Default()

	if got := cfg.Constants(); got != layout.DefaultConstants() {
		t.Errorf("Constants() = %+v, want %+v", got, layout.DefaultConstants())
	}
	if cfg.Layout.Offset != -30 || cfg.Layout.Gap != 10 {
		t.Errorf("offset/gap = %v/%v, want -30/10", cfg.Layout.Offset, cfg.Layout.Gap)
	}
	if len(cfg.Cards) != 5 {
		t.Errorf("len(Cards) = %d, want 5", len(cfg.Cards))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(`
[layout]
gap = 16
width = 320

[spring]
damping = 0.8
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Layout.Gap != 16 || cfg.Layout.Width != 320 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	if cfg.Layout.Offset != -30 {
		t.Errorf("unset offset = %v, want default -30", cfg.Layout.Offset)
	}
	if cfg.Spring.Damping != 0.8 || cfg.Spring.Frequency != 10 {
		t.Errorf("spring = %+v", cfg.Spring)
	}
	if len(cfg.Cards) != 5 {
		t.Errorf("default deck not kept: %d cards", len(cfg.Cards))
	}
}

func TestParseCardsReplaceDeck(t *testing.T) {
	cfg, err := Parse(`
[[cards]]
icon = "camera"
title = "PHOTOS"

[[cards]]
title = "NOTES"
bg_color = "#123456"
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Cards) != 2 {
		t.Fatalf("len(Cards) = %d, want 2", len(cfg.Cards))
	}
	want := cards.Spec{Icon: "camera", Title: "PHOTOS"}
	if cfg.Cards[0] != want {
		t.Errorf("Cards[0] = %+v, want %+v (no values inherited from the default deck)", cfg.Cards[0], want)
	}
	if cfg.Cards[1].BgColor != "#123456" {
		t.Errorf("Cards[1].BgColor = %q", cfg.Cards[1].BgColor)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"zero gap", "[layout]\ngap = 0"},
		{"positive offset", "[layout]\noffset = 5"},
		{"negative inset", "[layout]\nside_inset = -1"},
		{"zero fps", "[spring]\nfps = 0"},
		{"zero cell", "[terminal]\ncell_width = 0"},
		{"empty deck", "cards = []"},
		{"syntax error", "[layout\ngap = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.toml)
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, meta, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if meta.Found {
		t.Error("meta.Found = true for missing file")
	}
	if cfg.Layout.Gap != Default().Layout.Gap {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %v", err, errs.ErrCodeFileNotFound)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "cardstack", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	data := "[layout]\ngap = 12\ncolour = \"red\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, meta, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !meta.Found || meta.Path != path {
		t.Errorf("meta = %+v, want found at %s", meta, path)
	}
	if cfg.Layout.Gap != 12 {
		t.Errorf("Gap = %v, want 12", cfg.Layout.Gap)
	}
	if len(meta.Unknown) != 1 || meta.Unknown[0] != "layout.colour" {
		t.Errorf("Unknown = %v, want [layout.colour]", meta.Unknown)
	}
}

func TestNewStack(t *testing.T) {
	cfg := Default()
	cfg.Layout.Width = 500
	cfg.Layout.Gap = 20

	s := cfg.NewStack()
	if s.ContainerWidth() != 500 {
		t.Errorf("ContainerWidth() = %v, want 500", s.ContainerWidth())
	}
	if s.Constants().Gap != 20 {
		t.Errorf("Gap = %v, want 20", s.Constants().Gap)
	}
	if s.Driver().FPS() != cfg.Spring.FPS {
		t.Errorf("FPS = %d, want %d", s.Driver().FPS(), cfg.Spring.FPS)
	}
	if s.Expanded() {
		t.Error("new stack should be collapsed")
	}
}

func TestLoadExampleConfig(t *testing.T) {
	cfg, meta, err := Load(filepath.Join("..", "..", "examples", "config.toml"))
	if err != nil {
		t.Fatalf("Load(example) error = %v", err)
	}
	if len(meta.Unknown) != 0 {
		t.Errorf("example has unknown keys %v", meta.Unknown)
	}
	if cfg.Layout.Width != 360 || cfg.Spring.Damping != 0.4 {
		t.Errorf("layout/spring not applied: %+v %+v", cfg.Layout, cfg.Spring)
	}

	s := cfg.NewStack()
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	if got := s.Cards()[1].BgColor; got != "#3c5050" {
		t.Errorf("rgb() color normalized to %q, want #3c5050", got)
	}
}
