// Package anim drives scene objects through timed, sequenced changes.
package anim

import (
	"github.com/lbzfran/gp-project/r3d"
)

// Animation is a time bounded change applied to a single object.
// The object is borrowed; an animation must not outlive it.
type Animation interface {
	// Tick advances the animation by dt seconds. Elapsed time never goes
	// past Duration and a finished animation leaves its target alone.
	Tick(dt float32)
	Duration() float32
	CurrentTime() float32
	Started() bool
	Finished() bool
	Target() *r3d.Object
}

// base keeps the clock shared by every animation shape.
type base struct {
	object   *r3d.Object
	duration float32
	current  float32
	started  bool
}

func newBase(obj *r3d.Object, duration float32) base {
	if duration < 0 {
		duration = 0
	}
	return base{object: obj, duration: duration}
}

func (b *base) Duration() float32    { return b.duration }
func (b *base) CurrentTime() float32 { return b.current }
func (b *base) Started() bool        { return b.started }
func (b *base) Target() *r3d.Object  { return b.object }

func (b *base) Finished() bool {
	return b.started && b.current >= b.duration
}

// instant reports whether the animation has no length and must apply its
// whole effect on the first tick.
func (b *base) instant() bool {
	return b.duration == 0
}

// advance moves the clock and returns how much of dt actually elapsed.
// ok is false once the animation has finished.
func (b *base) advance(dt float32) (step float32, ok bool) {
	if b.Finished() {
		return 0, false
	}
	b.started = true
	if dt < 0 {
		dt = 0
	}
	if remaining := b.duration - b.current; dt >= remaining {
		step = remaining
		b.current = b.duration
	} else {
		step = dt
		b.current += dt
	}
	return step, true
}

// progress is the normalized time in [0, 1].
func (b *base) progress() float32 {
	if b.instant() {
		return 1
	}
	return b.current / b.duration
}
