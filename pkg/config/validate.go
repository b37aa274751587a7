package config

import (
	errs "github.com/matzehuels/cardstack/pkg/errors"
)

// Validate checks that the settings describe a drawable stack.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"layout.gap", c.Layout.Gap},
		{"layout.card_height", c.Layout.CardHeight},
		{"layout.width", c.Layout.Width},
		{"spring.frequency", c.Spring.Frequency},
		{"spring.damping", c.Spring.Damping},
		{"spring.rest_displacement", c.Spring.RestDisplacement},
		{"spring.rest_speed", c.Spring.RestSpeed},
		{"terminal.cell_width", c.Terminal.CellWidth},
		{"terminal.cell_height", c.Terminal.CellHeight},
	}
	for _, ch := range checks {
		if err := errs.ValidatePositive(ch.name, ch.v); err != nil {
			return invalid(err)
		}
	}

	if err := errs.ValidateFinite("layout.offset", c.Layout.Offset); err != nil {
		return invalid(err)
	}
	if c.Layout.Offset >= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "layout.offset must be negative, got %v", c.Layout.Offset)
	}
	if c.Layout.SideInset < 0 || c.Layout.DepthShrink < 0 || c.Layout.CollapseLift < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "layout side_inset, depth_shrink and collapse_lift must not be negative")
	}
	if c.Spring.FPS <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "spring.fps must be positive, got %d", c.Spring.FPS)
	}
	if len(c.Cards) == 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "at least one card is required")
	}
	return nil
}

func invalid(err error) error {
	return errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid config")
}
