// Package anim drives a progress scalar toward a target with spring physics.
//
// A [Driver] owns one float value, its velocity and its target. Each call to
// [Driver.Step] advances the simulation by one display frame using a damped
// harmonic oscillator from github.com/charmbracelet/harmonica, publishes the
// new value to subscribers, and reports whether the value is still moving.
// Once both the distance to the target and the speed fall under the rest
// thresholds the value snaps to the target and the driver goes idle, so a
// frame loop can stop scheduling ticks.
//
// Retargeting with [Driver.SetTarget] while a transition is in flight keeps
// the current position and velocity. A quick double toggle therefore swings
// the value back smoothly instead of jumping.
//
// The default spring (angular frequency 10, damping ratio 0.5) is
// underdamped and overshoots its target by roughly sixteen percent before
// settling.
//
// A Driver is not safe for concurrent use. It is meant to be stepped from a
// single UI loop, which is also where its value is read.
package anim
