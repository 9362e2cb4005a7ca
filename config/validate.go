package config

import (
	"strconv"

	"github.com/lbzfran/gp-project/r3d"
	"github.com/pkg/errors"
)

var lightNames = map[string]bool{"dir": true, "point": true, "spot": true}

// Validate checks everything the scene builder relies on. Animation steps
// must have a positive duration.
func (s *Scene) Validate() error {
	if err := s.Camera.Position.validate(); err != nil {
		return errors.Wrap(err, "camera position")
	}
	if s.Camera.LockOn != "" && !s.Resolves(s.Camera.LockOn) {
		return errors.Errorf("camera: lock_on target %q not found", s.Camera.LockOn)
	}

	l := &s.Lighting
	for name, v := range map[string]Vec{
		"ambient":        l.Ambient,
		"direction":      l.Direction,
		"point":          l.Point,
		"spot":           l.Spot,
		"spot_direction": l.SpotDirection,
	} {
		if err := v.validate(); err != nil {
			return errors.Wrapf(err, "lighting %s", name)
		}
	}
	for _, name := range l.Disable {
		if !lightNames[name] {
			return errors.Errorf("lighting: unknown light %q", name)
		}
	}

	if err := validateObjects(s.Objects, ""); err != nil {
		return err
	}

	for i, a := range s.Animators {
		if !s.Resolves(a.Target) {
			return errors.Errorf("animator %d: target %q not found", i, a.Target)
		}
		for j, step := range a.Sequence {
			if err := step.validate(); err != nil {
				return errors.Wrapf(err, "animator %d (%s) step %d", i, a.Target, j)
			}
		}
	}
	return nil
}

func validateObjects(objects []Object, parent string) error {
	seen := make(map[string]bool)
	for i := range objects {
		o := &objects[i]
		path := parent + "/" + o.Name
		if o.Name == "" {
			path = parent + "/#" + strconv.Itoa(i)
		} else if seen[o.Name] {
			return errors.Errorf("object %s: duplicate name", path)
		}
		seen[o.Name] = true

		if o.Mesh != "" && o.Model != "" {
			return errors.Errorf("object %s: mesh and model are exclusive", path)
		}
		if o.Mesh != "" {
			if _, ok := r3d.BuiltinMesh(o.Mesh); !ok {
				return errors.Errorf("object %s: unknown mesh %q", path, o.Mesh)
			}
		}
		if o.Mesh == "" && o.Model == "" && len(o.Children) == 0 {
			return errors.Errorf("object %s: needs a mesh, a model or children", path)
		}

		for name, v := range map[string]Vec{
			"position":         o.Position,
			"orientation":      o.Orientation,
			"scale":            o.Scale,
			"center":           o.Center,
			"velocity":         o.Velocity,
			"acceleration":     o.Acceleration,
			"rot_velocity":     o.RotVelocity,
			"rot_acceleration": o.RotAcceleration,
		} {
			if err := v.validate(); err != nil {
				return errors.Wrapf(err, "object %s %s", path, name)
			}
		}

		if err := validateObjects(o.Children, path); err != nil {
			return err
		}
	}
	return nil
}

func (s *Step) validate() error {
	if s.Duration <= 0 {
		return errors.Errorf("duration must be positive, got %v", s.Duration)
	}
	if err := s.By.validate(); err != nil {
		return errors.Wrap(err, "by")
	}
	if err := s.To.validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	for i, p := range s.Points {
		if err := p.validate(); err != nil {
			return errors.Wrapf(err, "point %d", i)
		}
		if !p.IsSet() {
			return errors.Errorf("point %d is empty", i)
		}
	}

	switch s.Type {
	case StepTranslate, StepRotate:
		if s.By.IsSet() == s.To.IsSet() {
			return errors.Errorf("%s needs exactly one of by and to", s.Type)
		}
	case StepBezier:
		want := 4
		if s.FromCurrent {
			want = 3
		}
		if len(s.Points) != want {
			return errors.Errorf("bezier needs %d points, got %d", want, len(s.Points))
		}
	case StepPause:
	default:
		return errors.Errorf("unknown step type %q", s.Type)
	}
	return nil
}
