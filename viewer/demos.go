package viewer

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/anim"
	"github.com/lbzfran/gp-project/r3d"
	"github.com/pkg/errors"
)

// Builtin scenes. Imported models are stood in for by builtin cubes and
// every scene keeps its ground at y = 0.
var demos = map[string]func() *Scene{
	"bunny":      bunny,
	"cube":       cube,
	"life-of-pi": lifeOfPi,
	"sanders":    sanders,
	"marble":     marble,
}

// Demos lists the builtin scene names in order.
func Demos() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Demo(name string) (*Scene, error) {
	build, ok := demos[name]
	if !ok {
		return nil, errors.Errorf("unknown demo scene %q", name)
	}
	return build(), nil
}

func named(name string, mesh *r3d.Primitive) *r3d.Object {
	obj := r3d.NewObject([]r3d.Mesh{mesh})
	obj.SetName(name)
	return obj
}

func floor(name string, size float32) *r3d.Object {
	obj := named(name, r3d.Square())
	obj.Grow(mgl32.Vec3{size, size, size})
	obj.Rotate(mgl32.Vec3{-math32.Pi / 2, 0, 0})
	obj.SetGravityAffected(false)
	return obj
}

func bunny() *Scene {
	s := NewScene("bunny")

	b := named("bunny", r3d.Cube())
	b.Move(mgl32.Vec3{0.2, 0, 0})
	s.AddObject(b)

	s.AddAnimator(anim.NewAnimator(
		anim.RotateBy(s.Handle("bunny"), 10, mgl32.Vec3{0, 2 * math32.Pi, 0}),
	))
	return s
}

func cube() *Scene {
	s := NewScene("cube")
	s.AddObject(named("cube", r3d.Cube()))

	h := s.Handle("cube")
	s.AddAnimator(anim.NewAnimator(
		anim.RotateBy(h, 10, mgl32.Vec3{0, math32.Pi, 0}),
		anim.RotateBy(h, 10, mgl32.Vec3{math32.Pi, 0, 0}),
	))
	return s
}

// lifeOfPi puts a tiger in a boat; both spin on their own animators.
func lifeOfPi() *Scene {
	s := NewScene("life-of-pi")

	boat := named("boat", r3d.Cube())
	boat.Grow(mgl32.Vec3{2, 0.5, 1})
	boat.SetAcceleration(mgl32.Vec3{0, -1, 0})

	tiger := named("tiger", r3d.Cube())
	tiger.Move(mgl32.Vec3{0, 1, 0.5})
	tiger.Grow(mgl32.Vec3{0.3, 0.3, 0.3})
	boat.AddChild(tiger)

	s.AddObject(boat)
	s.AddObject(floor("floor", 5))

	s.AddAnimator(anim.NewAnimator(
		anim.RotateBy(s.Handle("boat"), 10, mgl32.Vec3{0, 2 * math32.Pi, 0}),
	))
	s.AddAnimator(anim.NewAnimator(
		anim.RotateBy(s.Handle("boat/tiger"), 10, mgl32.Vec3{0, 2 * math32.Pi, 0}),
	))
	return s
}

// sanders drops three figures onto a large floor next to a wall.
func sanders() *Scene {
	s := NewScene("sanders")
	s.Camera = r3d.NewCamera(mgl32.Vec3{0, 5, 25}, mgl32.Vec3{0, 1, 0}, r3d.DefaultYaw, r3d.DefaultPitch)

	s.AddObject(floor("floor", 100))

	wall := named("wall", r3d.Square())
	wall.Grow(mgl32.Vec3{100, 100, 100})
	wall.Move(mgl32.Vec3{100, 0, 0})
	wall.Rotate(mgl32.Vec3{math32.Pi, 0, math32.Pi})
	wall.SetGravityAffected(false)
	s.AddObject(wall)

	brr := named("brr", r3d.Cube())
	brr.Move(mgl32.Vec3{0, 5, 0})

	trala := named("trala", r3d.Cube())
	trala.Move(mgl32.Vec3{5, 7.5, -5})
	trala.Grow(mgl32.Vec3{0.75, 0.75, 0.75})
	trala.ToggleGravity()

	thung := named("thung", r3d.Cube())
	thung.Move(mgl32.Vec3{-10, 10, -10})
	thung.Grow(mgl32.Vec3{0.75, 0.75, 0.75})

	s.AddObject(brr)
	s.AddObject(trala)
	s.AddObject(thung)

	s.AddAnimator(anim.NewAnimator(
		anim.TranslateBy(s.Handle("thung"), 4, mgl32.Vec3{3, 2, 3}),
	))
	return s
}

func marble() *Scene {
	s := NewScene("marble")
	s.AddObject(floor("floor", 5))
	return s
}
