package anim

import (
	"math"
	"testing"
)

// run steps d until it settles or max frames pass, returning the values seen.
func run(d *Driver, max int) []float64 {
	var seen []float64
	for i := 0; i < max; i++ {
		v, active := d.Step()
		seen = append(seen, v)
		if !active {
			break
		}
	}
	return seen
}

func TestNewDriverDefaults(t *testing.T) {
	d := NewDriver()

	if d.Value() != 0 || d.Target() != 0 || d.Velocity() != 0 {
		t.Errorf("new driver = (%v, %v, %v), want all zero", d.Value(), d.Target(), d.Velocity())
	}
	if d.Active() {
		t.Error("new driver should be idle")
	}
	if d.FPS() != DefaultFPS {
		t.Errorf("FPS() = %d, want %d", d.FPS(), DefaultFPS)
	}
}

func TestStepIdleIsNoop(t *testing.T) {
	d := NewDriver(WithInitial(0.25))
	v, active := d.Step()
	if v != 0.25 || active {
		t.Errorf("Step() = (%v, %v), want (0.25, false)", v, active)
	}
}

func TestSetTargetSameValueStaysIdle(t *testing.T) {
	d := NewDriver()
	d.SetTarget(0)
	if d.Active() {
		t.Error("SetTarget to the resting value should not start a transition")
	}
}

func TestSpringOvershootsAndSettles(t *testing.T) {
	d := NewDriver()
	d.SetTarget(1)

	seen := run(d, 1000)
	if d.Active() {
		t.Fatalf("driver still active after %d frames", len(seen))
	}

	peak := 0.0
	for _, v := range seen {
		peak = math.Max(peak, v)
	}
	if peak <= 1 {
		t.Errorf("peak = %v, want overshoot above 1", peak)
	}
	if d.Value() != 1 {
		t.Errorf("settled value = %v, want exactly 1", d.Value())
	}
	if d.Velocity() != 0 {
		t.Errorf("settled velocity = %v, want 0", d.Velocity())
	}
	if seen[0] <= 0 || seen[0] >= 1 {
		t.Errorf("first frame = %v, want strictly between 0 and 1", seen[0])
	}
}

func TestCriticallyDampedDoesNotOvershoot(t *testing.T) {
	d := NewDriver(WithDamping(1))
	d.SetTarget(1)

	for _, v := range run(d, 1000) {
		if v > 1+1e-9 {
			t.Fatalf("value %v overshot with damping ratio 1", v)
		}
	}
}

func TestRedirectKeepsPositionAndVelocity(t *testing.T) {
	d := NewDriver()
	d.SetTarget(1)
	for i := 0; i < 5; i++ {
		d.Step()
	}

	pos, vel := d.Value(), d.Velocity()
	if vel <= 0 {
		t.Fatalf("velocity after 5 frames = %v, want positive", vel)
	}

	d.SetTarget(0)
	if d.Value() != pos || d.Velocity() != vel {
		t.Errorf("redirect changed state: (%v, %v) -> (%v, %v)", pos, vel, d.Value(), d.Velocity())
	}

	// The value keeps moving up for a moment before it turns around.
	next, _ := d.Step()
	if math.Abs(next-pos) > 0.2 {
		t.Errorf("value jumped from %v to %v after redirect", pos, next)
	}

	run(d, 1000)
	if d.Value() != 0 || d.Active() {
		t.Errorf("after redirect settled at (%v, active=%v), want (0, false)", d.Value(), d.Active())
	}
}

func TestSnap(t *testing.T) {
	d := NewDriver()
	d.SetTarget(1)
	d.Step()
	d.Snap()

	if d.Value() != 1 || d.Velocity() != 0 || d.Active() {
		t.Errorf("Snap() left (%v, %v, %v), want (1, 0, false)", d.Value(), d.Velocity(), d.Active())
	}
}

func TestSubscribe(t *testing.T) {
	d := NewDriver()

	var got []float64
	cancel := d.Subscribe(func(v float64) { got = append(got, v) })

	d.SetTarget(1)
	d.Step()
	d.Step()
	if len(got) != 2 {
		t.Fatalf("subscriber saw %d values, want 2", len(got))
	}
	if got[1] != d.Value() {
		t.Errorf("last published = %v, want %v", got[1], d.Value())
	}

	cancel()
	d.Step()
	if len(got) != 2 {
		t.Errorf("cancelled subscriber still notified: %d values", len(got))
	}
}

func TestWithFPSIgnoresNonPositive(t *testing.T) {
	d := NewDriver(WithFPS(0))
	if d.FPS() != DefaultFPS {
		t.Errorf("FPS() = %d, want %d", d.FPS(), DefaultFPS)
	}
	d = NewDriver(WithFPS(120))
	if d.FPS() != 120 {
		t.Errorf("FPS() = %d, want 120", d.FPS())
	}
}
