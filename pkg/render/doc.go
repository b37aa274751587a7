// Package render groups the painters that turn a card stack frame into
// output.
//
// # Overview
//
// Both painters consume the same inputs: a [layout.Frame] with absolute
// card rects in paint order, and one [stack.ItemView] per card saying what
// the card shows. Neither clamps geometry; a frame taken during spring
// overshoot is painted as is and clipped to the canvas.
//
//   - [term]: cell-grid painter for the interactive terminal view, styled
//     with lipgloss
//   - [sink]: snapshot exporters for SVG, PNG and JSON
//
// The canvas of a stack is the union of its collapsed and expanded frames,
// so the top card keeps its position while the stack animates and snapshots
// of one stack line up with each other.
//
// [layout.Frame]: github.com/matzehuels/cardstack/pkg/layout
// [stack.ItemView]: github.com/matzehuels/cardstack/pkg/stack
// [term]: github.com/matzehuels/cardstack/pkg/render/term
// [sink]: github.com/matzehuels/cardstack/pkg/render/sink
package render
