package r3d

import (
	"github.com/chewxy/math32"
	"github.com/lbzfran/gp-project/utils"
)

const (
	Friction     = 1.25
	Weight       = 4.0
	Gravity      = 9.81
	Deceleration = 2.0 // natural slowdown of unforced movement
	Rubber       = 0.5 // share of vertical speed kept after hitting the ground
)

// Tick advances the kinematic state of o by dt seconds and then ticks every
// child with the same dt.
func (o *Object) Tick(dt float32) {
	// position moves before velocity picks up this frame's acceleration
	o.position = o.position.Add(o.velocity.Mul(dt))
	o.velocity = o.velocity.Add(o.acceleration.Mul(dt))

	o.orientation = o.orientation.Add(o.rotVelocity.Mul(dt))
	o.rotVelocity = o.rotVelocity.Add(o.rotAcceleration.Mul(dt))

	// no gravity while thrusting upwards
	if o.gravityAffected && o.position[1] > 0 && o.acceleration[1] <= 0 {
		o.velocity[1] += -(Weight + Gravity) * dt
	}

	if o.position[1] < 0 {
		o.position[1] = 0
		o.velocity[1] = -(o.velocity[1] * Rubber)
	}

	for i := range o.velocity {
		if o.acceleration[i] == 0 && o.velocity[i] != 0 {
			o.velocity[i] = decelerate(o.velocity[i], Deceleration*Friction*dt)
		}
	}

	for _, c := range o.childs {
		c.Tick(dt)
	}
}

// decelerate shrinks the magnitude of v by amount, stopping at zero
// instead of flipping sign on long frames.
func decelerate(v, amount float32) float32 {
	if math32.Abs(v) <= amount {
		return 0
	}
	return v - amount*utils.SignOf(v)
}
