package viewer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/anim"
	"github.com/lbzfran/gp-project/config"
	"github.com/lbzfran/gp-project/r3d"
	"github.com/lbzfran/gp-project/utils/gltfutils"
	"github.com/pkg/errors"
)

// ModelLoader imports the model file referenced by an object.
type ModelLoader func(path string) (*r3d.Object, error)

// FromConfig builds a scene from a validated description. A nil loader
// reads glTF files from disk.
func FromConfig(name string, cfg *config.Scene, load ModelLoader) (*Scene, error) {
	if load == nil {
		load = gltfutils.Load
	}

	s := NewScene(name)
	s.Width = float32(cfg.Window.Width)
	s.Height = float32(cfg.Window.Height)

	for i := range cfg.Objects {
		obj, err := buildObject(&cfg.Objects[i], load)
		if err != nil {
			return nil, err
		}
		s.AddObject(obj)
	}

	s.Camera = buildCamera(&cfg.Camera)
	s.LockOn = cfg.Camera.LockOn
	s.Lighting = buildLighting(&cfg.Lighting)

	for i := range cfg.Animators {
		a, err := s.buildAnimator(&cfg.Animators[i])
		if err != nil {
			return nil, errors.Wrapf(err, "animator %d", i)
		}
		s.AddAnimator(a)
	}
	return s, nil
}

func degrees(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{mgl32.DegToRad(v[0]), mgl32.DegToRad(v[1]), mgl32.DegToRad(v[2])}
}

func buildObject(o *config.Object, load ModelLoader) (*r3d.Object, error) {
	var obj *r3d.Object
	switch {
	case o.Mesh != "":
		mesh, ok := r3d.BuiltinMesh(o.Mesh)
		if !ok {
			return nil, errors.Errorf("object %q: unknown mesh %q", o.Name, o.Mesh)
		}
		obj = r3d.NewObject([]r3d.Mesh{mesh})
	case o.Model != "":
		model, err := load(o.Model)
		if err != nil {
			return nil, errors.Wrapf(err, "object %q", o.Name)
		}
		obj = model
	default:
		obj = r3d.NewObject(nil)
	}

	if o.Name != "" {
		obj.SetName(o.Name)
	}

	var zero mgl32.Vec3
	obj.SetPosition(o.Position.Or(zero))
	obj.SetOrientation(degrees(o.Orientation.Or(zero)))
	obj.SetScale(o.Scale.Or(mgl32.Vec3{1, 1, 1}))
	obj.SetCenter(o.Center.Or(zero))
	obj.SetVelocity(o.Velocity.Or(zero))
	obj.SetAcceleration(o.Acceleration.Or(zero))
	obj.SetRotVelocity(degrees(o.RotVelocity.Or(zero)))
	obj.SetRotAcceleration(degrees(o.RotAcceleration.Or(zero)))
	if o.Shininess != nil {
		obj.SetShininess(*o.Shininess)
	}
	obj.SetDisplay(config.BoolOr(o.Display, true))
	obj.SetGravityAffected(config.BoolOr(o.Gravity, true))

	for i := range o.Children {
		child, err := buildObject(&o.Children[i], load)
		if err != nil {
			return nil, err
		}
		obj.AddChild(child)
	}
	return obj, nil
}

func buildCamera(c *config.Camera) *r3d.Camera {
	yaw, pitch := float32(r3d.DefaultYaw), float32(r3d.DefaultPitch)
	if c.Yaw != nil {
		yaw = *c.Yaw
	}
	if c.Pitch != nil {
		pitch = *c.Pitch
	}

	cam := r3d.NewCamera(c.Position.Or(mgl32.Vec3{0, 0, 3}), mgl32.Vec3{0, 1, 0}, yaw, pitch)
	if c.Zoom > 0 {
		cam.SetZoom(c.Zoom)
	}
	if c.MoveSpeed > 0 {
		cam.MoveSpeed = c.MoveSpeed
	}
	if c.Sensitivity > 0 {
		cam.MouseSensitivity = c.Sensitivity
	}
	return cam
}

func buildLighting(l *config.Lighting) r3d.Lighting {
	out := r3d.DefaultLighting()
	out.Ambient = l.Ambient.Or(out.Ambient)
	out.Dir.Direction = l.Direction.Or(out.Dir.Direction)
	out.Point.Position = l.Point.Or(out.Point.Position)
	out.Spot.Position = l.Spot.Or(out.Spot.Position)
	out.Spot.Direction = l.SpotDirection.Or(out.Spot.Direction)
	out.Flashlight = config.BoolOr(l.Flashlight, out.Flashlight)

	for _, name := range l.Disable {
		switch name {
		case "dir":
			out.Dir.Display = false
		case "point":
			out.Point.Display = false
		case "spot":
			out.Spot.Display = false
		}
	}
	return out
}

func (s *Scene) buildAnimator(a *config.Animator) (*anim.Animator, error) {
	h := s.Handle(a.Target)
	animator := anim.NewAnimator()
	for i := range a.Sequence {
		f, err := stepFactory(h, &a.Sequence[i])
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		animator.AddAnimation(f)
	}
	return animator, nil
}

func stepFactory(h anim.Handle, step *config.Step) (anim.Factory, error) {
	var zero mgl32.Vec3
	switch step.Type {
	case config.StepTranslate:
		if step.To.IsSet() {
			return anim.TranslateTo(h, step.Duration, step.To.Or(zero)), nil
		}
		return anim.TranslateBy(h, step.Duration, step.By.Or(zero)), nil
	case config.StepRotate:
		if step.To.IsSet() {
			return anim.RotateTo(h, step.Duration, degrees(step.To.Or(zero))), nil
		}
		return anim.RotateBy(h, step.Duration, degrees(step.By.Or(zero))), nil
	case config.StepBezier:
		p := make([]mgl32.Vec3, len(step.Points))
		for i, v := range step.Points {
			p[i] = v.Or(zero)
		}
		if step.FromCurrent {
			if len(p) != 3 {
				return nil, errors.Errorf("bezier from current needs 3 points, got %d", len(p))
			}
			return anim.BezierFromCurrent(h, step.Duration, p[0], p[1], p[2]), nil
		}
		if len(p) != 4 {
			return nil, errors.Errorf("bezier needs 4 points, got %d", len(p))
		}
		return anim.Bezier(h, step.Duration, p[0], p[1], p[2], p[3]), nil
	case config.StepPause:
		return anim.Wait(h, step.Duration), nil
	}
	return nil, errors.Errorf("unknown step type %q", step.Type)
}
