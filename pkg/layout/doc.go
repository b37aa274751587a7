// Package layout computes card geometry for an animated card stack.
//
// # Overview
//
// A stack has two resting configurations. Collapsed, the cards overlap and
// deeper cards peek out above the top card, each one a little narrower than
// the one in front of it. Expanded, the cards separate into an evenly spaced
// list of full-width rows. Every intermediate frame is a linear blend of the
// two, driven by a single progress value:
//
//	translateY = lerp(p, (Offset-CollapseLift)*i, Gap*i)
//	width      = lerp(p, W-SideInset-DepthShrink*i, W-SideInset)
//
// The container's bottom margin follows the same rule with i = n-1, so that
// whatever sits below the stack moves with it.
//
// # Overshoot
//
// Progress is produced by a spring and may leave [0, 1] for a few frames.
// Nothing in this package clamps: an overshooting spring yields slightly
// over-wide or over-spread frames, which is the intended bounce. Painters
// clip to their canvas.
//
// # Paint Order
//
// The card at index 0 is the [Top] item: it paints above every other card
// and is the only one that reacts to taps. Other cards are [Stacked] and
// paint in reverse index order so depth grows with the index. [Compute]
// returns items already sorted for painting.
package layout
