package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/r3d"
	"github.com/lbzfran/gp-project/utils"
)

// Translation moves an object at a constant rate. Movement is applied in
// steps, so the end position is relative to wherever the object was when
// the animation started ticking.
type Translation struct {
	base
	total     mgl32.Vec3
	perSecond mgl32.Vec3
}

func NewTranslation(obj *r3d.Object, duration float32, totalMovement mgl32.Vec3) *Translation {
	a := &Translation{base: newBase(obj, duration), total: totalMovement}
	if !a.instant() {
		a.perSecond = totalMovement.Mul(1 / a.duration)
	}
	return a
}

func (a *Translation) PerSecond() mgl32.Vec3 { return a.perSecond }

func (a *Translation) Tick(dt float32) {
	step, ok := a.advance(dt)
	if !ok {
		return
	}
	if a.instant() {
		a.object.Move(a.total)
	} else {
		a.object.Move(a.perSecond.Mul(step))
	}
}

// Rotation turns an object at a constant rate, in euler radians.
type Rotation struct {
	base
	total     mgl32.Vec3
	perSecond mgl32.Vec3
}

func NewRotation(obj *r3d.Object, duration float32, totalRotation mgl32.Vec3) *Rotation {
	a := &Rotation{base: newBase(obj, duration), total: totalRotation}
	if !a.instant() {
		a.perSecond = totalRotation.Mul(1 / a.duration)
	}
	return a
}

func (a *Rotation) PerSecond() mgl32.Vec3 { return a.perSecond }

func (a *Rotation) Tick(dt float32) {
	step, ok := a.advance(dt)
	if !ok {
		return
	}
	if a.instant() {
		a.object.Rotate(a.total)
	} else {
		a.object.Rotate(a.perSecond.Mul(step))
	}
}

// BezierTranslation places an object on a cubic Bezier curve. Unlike
// Translation the position is absolute and overwrites any other movement.
type BezierTranslation struct {
	base
	points [4]mgl32.Vec3
}

func NewBezierTranslation(obj *r3d.Object, duration float32, start, mid1, mid2, end mgl32.Vec3) *BezierTranslation {
	return &BezierTranslation{
		base:   newBase(obj, duration),
		points: [4]mgl32.Vec3{start, mid1, mid2, end},
	}
}

func (a *BezierTranslation) Points() [4]mgl32.Vec3 { return a.points }

func (a *BezierTranslation) Tick(dt float32) {
	if _, ok := a.advance(dt); !ok {
		return
	}
	p := a.points
	a.object.SetPosition(utils.CubicBezier(p[0], p[1], p[2], p[3], a.progress()))
}

// Pause only consumes time. It fills gaps in a sequence.
type Pause struct {
	base
}

func NewPause(obj *r3d.Object, duration float32) *Pause {
	return &Pause{base: newBase(obj, duration)}
}

func (a *Pause) Tick(dt float32) {
	a.advance(dt)
}
