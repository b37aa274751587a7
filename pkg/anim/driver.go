package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults.
const (
	DefaultFPS              = 60
	DefaultFrequency        = 10.0 // angular frequency, rad/s
	DefaultDamping          = 0.5  // damping ratio; below 1 overshoots
	DefaultRestDisplacement = 0.01
	DefaultRestSpeed        = 2.0 // units per second
)

// Option configures a [Driver].
type Option func(*Driver)

// WithFPS sets the number of frames simulated per second.
func WithFPS(fps int) Option {
	return func(d *Driver) {
		if fps > 0 {
			d.fps = fps
		}
	}
}

// WithFrequency sets the spring's angular frequency.
func WithFrequency(f float64) Option {
	return func(d *Driver) { d.frequency = f }
}

// WithDamping sets the spring's damping ratio.
func WithDamping(z float64) Option {
	return func(d *Driver) { d.damping = z }
}

// WithRest sets the thresholds under which the value is considered settled.
func WithRest(displacement, speed float64) Option {
	return func(d *Driver) {
		d.restDisplacement = displacement
		d.restSpeed = speed
	}
}

// WithInitial places the driver at rest on v.
func WithInitial(v float64) Option {
	return func(d *Driver) {
		d.value = v
		d.target = v
	}
}

// Driver animates a single scalar toward a target.
type Driver struct {
	spring harmonica.Spring

	fps              int
	frequency        float64
	damping          float64
	restDisplacement float64
	restSpeed        float64

	value    float64
	velocity float64
	target   float64
	active   bool

	subs   map[int]func(float64)
	nextID int
}

// NewDriver returns an idle driver resting at 0.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		fps:              DefaultFPS,
		frequency:        DefaultFrequency,
		damping:          DefaultDamping,
		restDisplacement: DefaultRestDisplacement,
		restSpeed:        DefaultRestSpeed,
		subs:             make(map[int]func(float64)),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.spring = harmonica.NewSpring(harmonica.FPS(d.fps), d.frequency, d.damping)
	return d
}

// FPS returns the simulated frame rate.
func (d *Driver) FPS() int { return d.fps }

// Value returns the last committed value.
func (d *Driver) Value() float64 { return d.value }

// Velocity returns the current velocity in units per second.
func (d *Driver) Velocity() float64 { return d.velocity }

// Target returns the value the driver is moving toward.
func (d *Driver) Target() float64 { return d.target }

// Active reports whether a transition is in flight.
func (d *Driver) Active() bool { return d.active }

// SetTarget starts a transition toward t, or redirects the one in flight.
// Position and velocity carry over unchanged.
func (d *Driver) SetTarget(t float64) {
	if t == d.target && !d.active {
		return
	}
	d.target = t
	d.active = true
}

// Step advances the simulation by one frame and returns the new value and
// whether the driver is still moving. An idle driver returns immediately.
func (d *Driver) Step() (float64, bool) {
	if !d.active {
		return d.value, false
	}
	d.value, d.velocity = d.spring.Update(d.value, d.velocity, d.target)
	if d.atRest() {
		d.value = d.target
		d.velocity = 0
		d.active = false
	}
	d.publish()
	return d.value, d.active
}

// Snap ends any transition by jumping to the target.
func (d *Driver) Snap() {
	d.value = d.target
	d.velocity = 0
	d.active = false
	d.publish()
}

// Subscribe registers fn to be called with every committed value. The
// returned function removes the subscription.
func (d *Driver) Subscribe(fn func(float64)) (cancel func()) {
	id := d.nextID
	d.nextID++
	d.subs[id] = fn
	return func() { delete(d.subs, id) }
}

func (d *Driver) atRest() bool {
	return math.Abs(d.value-d.target) < d.restDisplacement && math.Abs(d.velocity) < d.restSpeed
}

func (d *Driver) publish() {
	for _, fn := range d.subs {
		fn(d.value)
	}
}
