// Package config loads cardstack settings from a TOML file.
//
// Every setting has a default, so a missing file is not an error when the
// default location is used. Values from the file are applied on top of the
// defaults and then validated as a whole.
//
// Example config.toml:
//
//	[layout]
//	offset = -30
//	gap = 10
//	width = 400
//
//	[spring]
//	frequency = 10
//	damping = 0.5
//
//	[[cards]]
//	icon = "camera"
//	title = "CAMERA"
//	bg_color = "#606060"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cardstack/pkg/anim"
	"github.com/matzehuels/cardstack/pkg/cards"
	errs "github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/layout"
	"github.com/matzehuels/cardstack/pkg/stack"
)

const (
	appName  = "cardstack"
	fileName = "config.toml"
)

// Config is the full set of settings.
type Config struct {
	Layout   Layout       `toml:"layout"`
	Spring   Spring       `toml:"spring"`
	Terminal Terminal     `toml:"terminal"`
	Cards    []cards.Spec `toml:"cards"`
}

// Layout holds the stack geometry.
type Layout struct {
	Offset       float64 `toml:"offset"`
	Gap          float64 `toml:"gap"`
	CardHeight   float64 `toml:"card_height"`
	SideInset    float64 `toml:"side_inset"`
	DepthShrink  float64 `toml:"depth_shrink"`
	CollapseLift float64 `toml:"collapse_lift"`
	Width        float64 `toml:"width"` // container width for snapshots
}

// Spring holds the animation parameters.
type Spring struct {
	FPS              int     `toml:"fps"`
	Frequency        float64 `toml:"frequency"`
	Damping          float64 `toml:"damping"`
	RestDisplacement float64 `toml:"rest_displacement"`
	RestSpeed        float64 `toml:"rest_speed"`
}

// Terminal holds the pixel-to-cell mapping of the interactive view.
type Terminal struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	Mouse      bool    `toml:"mouse"`
}

// Meta describes where a config came from.
type Meta struct {
	Path    string   // file consulted
	Found   bool     // whether the file existed
	Unknown []string // keys present in the file but not understood
}

// Default returns the stock settings.
func Default() Config {
	c := layout.DefaultConstants()
	return Config{
		Layout: Layout{
			Offset:       c.Offset,
			Gap:          c.Gap,
			CardHeight:   c.CardHeight,
			SideInset:    c.SideInset,
			DepthShrink:  c.DepthShrink,
			CollapseLift: c.CollapseLift,
			Width:        stack.DefaultContainerWidth,
		},
		Spring: Spring{
			FPS:              anim.DefaultFPS,
			Frequency:        anim.DefaultFrequency,
			Damping:          anim.DefaultDamping,
			RestDisplacement: anim.DefaultRestDisplacement,
			RestSpeed:        anim.DefaultRestSpeed,
		},
		Terminal: Terminal{
			CellWidth:  5,
			CellHeight: 12,
			Mouse:      true,
		},
		Cards: cards.Default(),
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/cardstack/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads settings from path. An empty path means [DefaultPath], where a
// missing file yields the defaults; an explicitly named file must exist.
func Load(path string) (Config, Meta, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, Meta{}, nil
		}
		path = p
	}
	meta := Meta{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, meta, nil
		}
		if os.IsNotExist(err) {
			return cfg, meta, errs.New(errs.ErrCodeFileNotFound, "config file %s does not exist", path)
		}
		return cfg, meta, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}
	meta.Found = true

	cfg, md, err := decode(string(data))
	if err != nil {
		return cfg, meta, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	for _, k := range md.Undecoded() {
		meta.Unknown = append(meta.Unknown, k.String())
	}
	return cfg, meta, cfg.Validate()
}

// Parse decodes settings from TOML text on top of the defaults.
func Parse(data string) (Config, error) {
	cfg, _, err := decode(data)
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	return cfg, cfg.Validate()
}

func decode(data string) (Config, toml.MetaData, error) {
	cfg := Default()
	// Cards from the file replace the default deck instead of merging into it.
	cfg.Cards = nil
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Default(), md, err
	}
	if cfg.Cards == nil {
		cfg.Cards = cards.Default()
	}
	return cfg, md, nil
}

// Constants converts the layout section.
func (c Config) Constants() layout.Constants {
	return layout.Constants{
		Offset:       c.Layout.Offset,
		Gap:          c.Layout.Gap,
		CardHeight:   c.Layout.CardHeight,
		SideInset:    c.Layout.SideInset,
		DepthShrink:  c.Layout.DepthShrink,
		CollapseLift: c.Layout.CollapseLift,
	}
}

// NewDriver builds a spring driver from the spring section.
func (c Config) NewDriver() *anim.Driver {
	return anim.NewDriver(
		anim.WithFPS(c.Spring.FPS),
		anim.WithFrequency(c.Spring.Frequency),
		anim.WithDamping(c.Spring.Damping),
		anim.WithRest(c.Spring.RestDisplacement, c.Spring.RestSpeed),
	)
}

// NewStack builds a collapsed stack controller from the whole config.
func (c Config) NewStack(opts ...stack.Option) *stack.Controller {
	base := []stack.Option{
		stack.WithConstants(c.Constants()),
		stack.WithContainerWidth(c.Layout.Width),
		stack.WithDriver(c.NewDriver()),
	}
	return stack.New(c.Cards, append(base, opts...)...)
}
