// Package pkg provides the core libraries of cardstack.
//
// # Overview
//
// Cardstack renders five cards that sit in a collapsed, peeking pile and
// spring apart into a list when the top card is tapped. The pkg directory
// is organized bottom-up:
//
//  1. [layout] - Pure geometry: card transforms and frames for a progress value
//  2. [anim] - The spring driver that owns the progress value
//  3. [cards] - Card descriptions, the default deck, glyphs and colors
//  4. [stack] - The controller: toggle state, taps and per-card content
//  5. [config] - TOML settings for geometry, spring and terminal
//  6. [render] - Terminal and snapshot painters
//
// Supporting packages: [errors] for coded errors, [observability] for event
// hooks, and [buildinfo] for version metadata.
//
// # Data Flow
//
//	tap on top card
//	      ↓
//	[stack] flips expanded, retargets the spring
//	      ↓
//	[anim] steps once per frame, publishes progress
//	      ↓
//	[layout] computes the frame for that progress
//	      ↓
//	[render] paints it (terminal, SVG, PNG, JSON)
//
// # Quick Start
//
//	s := stack.New(cards.Default())
//	s.Tap(0)
//	for s.Step() {
//	    f := s.Frame()
//	    _ = f // paint f with s.Views()
//	}
//
// [layout]: github.com/matzehuels/cardstack/pkg/layout
// [anim]: github.com/matzehuels/cardstack/pkg/anim
// [cards]: github.com/matzehuels/cardstack/pkg/cards
// [stack]: github.com/matzehuels/cardstack/pkg/stack
// [config]: github.com/matzehuels/cardstack/pkg/config
// [render]: github.com/matzehuels/cardstack/pkg/render
// [errors]: github.com/matzehuels/cardstack/pkg/errors
// [observability]: github.com/matzehuels/cardstack/pkg/observability
// [buildinfo]: github.com/matzehuels/cardstack/pkg/buildinfo
package pkg
