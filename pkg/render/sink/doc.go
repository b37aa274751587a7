// Package sink exports card stack frames as static snapshots.
//
// A [Scene] captures one frame of a stack: the geometry at a progress value,
// what each card displays, and the canvas the frame is drawn on. The sinks
// turn a scene into a file format:
//
//   - SVG: vector output, one group per card in paint order
//   - PNG: raster output drawn with github.com/fogleman/gg
//   - JSON: the raw geometry, for regression tests and external tools
//
// Basic usage:
//
//	s := stack.New(cards.Default())
//	scene := sink.NewScene(s, 0.5)
//	svg := sink.RenderSVG(scene)
//	png, err := sink.RenderPNG(scene, sink.WithScale(2))
//
// Snapshots are pure functions of the scene, so rendering the same frame
// twice yields identical bytes.
package sink
