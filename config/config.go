// Package config describes scenes in YAML or TOML files.
package config

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	DefaultWidth    = 1200
	DefaultHeight   = 800
	DefaultFrames   = 600
	DefaultDT       = 1.0 / 60.0
	DefaultLogEvery = 60
)

type Scene struct {
	Window    Window     `yaml:"window" toml:"window"`
	Run       Run        `yaml:"run" toml:"run"`
	Camera    Camera     `yaml:"camera" toml:"camera"`
	Lighting  Lighting   `yaml:"lighting" toml:"lighting"`
	Objects   []Object   `yaml:"objects" toml:"objects"`
	Animators []Animator `yaml:"animators" toml:"animators"`
}

type Window struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Run controls the headless frame loop.
type Run struct {
	Frames   int     `yaml:"frames" toml:"frames"`
	DT       float32 `yaml:"dt" toml:"dt"`
	LogEvery int     `yaml:"log_every" toml:"log_every"`
}

type Camera struct {
	Position    Vec      `yaml:"position" toml:"position"`
	Yaw         *float32 `yaml:"yaw" toml:"yaw"`
	Pitch       *float32 `yaml:"pitch" toml:"pitch"`
	Zoom        float32  `yaml:"zoom" toml:"zoom"`
	MoveSpeed   float32  `yaml:"move_speed" toml:"move_speed"`
	Sensitivity float32  `yaml:"sensitivity" toml:"sensitivity"`
	// LockOn names an object path the camera locks onto at start.
	LockOn string `yaml:"lock_on" toml:"lock_on"`
}

type Lighting struct {
	Ambient       Vec      `yaml:"ambient" toml:"ambient"`
	Direction     Vec      `yaml:"direction" toml:"direction"`
	Point         Vec      `yaml:"point" toml:"point"`
	Spot          Vec      `yaml:"spot" toml:"spot"`
	SpotDirection Vec      `yaml:"spot_direction" toml:"spot_direction"`
	Flashlight    *bool    `yaml:"flashlight" toml:"flashlight"`
	Disable       []string `yaml:"disable" toml:"disable"`
}

// Object describes a scene node. Orientation, rotation velocity and
// rotation acceleration are given in degrees; positions in world units.
type Object struct {
	Name string `yaml:"name" toml:"name"`
	// Mesh is a builtin primitive, Model a glTF file. At most one is set;
	// objects with neither only group their children.
	Mesh  string `yaml:"mesh" toml:"mesh"`
	Model string `yaml:"model" toml:"model"`

	Position        Vec `yaml:"position" toml:"position"`
	Orientation     Vec `yaml:"orientation" toml:"orientation"`
	Scale           Vec `yaml:"scale" toml:"scale"`
	Center          Vec `yaml:"center" toml:"center"`
	Velocity        Vec `yaml:"velocity" toml:"velocity"`
	Acceleration    Vec `yaml:"acceleration" toml:"acceleration"`
	RotVelocity     Vec `yaml:"rot_velocity" toml:"rot_velocity"`
	RotAcceleration Vec `yaml:"rot_acceleration" toml:"rot_acceleration"`

	Shininess *float32 `yaml:"shininess" toml:"shininess"`
	Display   *bool    `yaml:"display" toml:"display"`
	Gravity   *bool    `yaml:"gravity" toml:"gravity"`

	Children []Object `yaml:"children" toml:"children"`
}

type Animator struct {
	// Target is a slash separated path of object names from the scene root.
	// Below an object with a model the path names nodes of the imported
	// model, which are only checked once the scene is built.
	Target   string `yaml:"target" toml:"target"`
	Sequence []Step `yaml:"sequence" toml:"sequence"`
}

const (
	StepTranslate = "translate"
	StepRotate    = "rotate"
	StepBezier    = "bezier"
	StepPause     = "pause"
)

type Step struct {
	Type     string  `yaml:"type" toml:"type"`
	Duration float32 `yaml:"duration" toml:"duration"`
	// By is a relative change, To an absolute destination measured when
	// the step begins. Rotations are in degrees.
	By Vec `yaml:"by" toml:"by"`
	To Vec `yaml:"to" toml:"to"`
	// Points holds the bezier control points: four, or three when
	// FromCurrent starts the curve at the object's position.
	Points      []Vec `yaml:"points" toml:"points"`
	FromCurrent bool  `yaml:"from_current" toml:"from_current"`
}

// Vec is a 3 component vector; empty means unset.
type Vec []float32

func (v Vec) IsSet() bool { return len(v) != 0 }

// Or returns v as a vector, or def when v is unset.
func (v Vec) Or(def mgl32.Vec3) mgl32.Vec3 {
	if !v.IsSet() {
		return def
	}
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func (v Vec) validate() error {
	if v.IsSet() && len(v) != 3 {
		return errors.Errorf("vector needs 3 components, got %d", len(v))
	}
	return nil
}

// Defaults fills the zero values of the run and window settings.
func (s *Scene) Defaults() {
	if s.Window.Width <= 0 {
		s.Window.Width = DefaultWidth
	}
	if s.Window.Height <= 0 {
		s.Window.Height = DefaultHeight
	}
	if s.Run.Frames <= 0 {
		s.Run.Frames = DefaultFrames
	}
	if s.Run.DT <= 0 {
		s.Run.DT = DefaultDT
	}
	if s.Run.LogEvery <= 0 {
		s.Run.LogEvery = DefaultLogEvery
	}
}

// Find resolves a slash separated object path against the top level
// objects.
func (s *Scene) Find(path string) *Object {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil
	}
	objects := s.Objects
	var found *Object
	for _, part := range parts {
		found = nil
		for i := range objects {
			if objects[i].Name == part {
				found = &objects[i]
				break
			}
		}
		if found == nil {
			return nil
		}
		objects = found.Children
	}
	return found
}

// Resolves reports whether path can name an object of the built scene. The
// part of the path below a model object is left to the importer.
func (s *Scene) Resolves(path string) bool {
	parts := splitPath(path)
	if len(parts) == 0 {
		return false
	}
	objects := s.Objects
	for i, part := range parts {
		var found *Object
		for j := range objects {
			if objects[j].Name == part {
				found = &objects[j]
				break
			}
		}
		if found == nil {
			return false
		}
		if found.Model != "" && i < len(parts)-1 {
			return true
		}
		objects = found.Children
	}
	return true
}

// BoolOr dereferences an optional flag.
func BoolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
