// Package viewer ties objects, animators, the camera and lighting into a
// scene that a host advances one frame at a time.
package viewer

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/anim"
	"github.com/lbzfran/gp-project/r3d"
)

type Scene struct {
	Name      string
	Objects   []*r3d.Object
	Animators []*anim.Animator
	Camera    *r3d.Camera
	Lighting  r3d.Lighting

	Width  float32
	Height float32

	// LockOn is the object path the camera targets when the target lock is
	// toggled. Empty means the first top level object.
	LockOn string

	elapsed float32
	frames  int
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		Camera:   r3d.NewDefaultCamera(),
		Lighting: r3d.DefaultLighting(),
		Width:    1200,
		Height:   800,
	}
}

func (s *Scene) AddObject(obj *r3d.Object) { s.Objects = append(s.Objects, obj) }

func (s *Scene) AddAnimator(a *anim.Animator) { s.Animators = append(s.Animators, a) }

func (s *Scene) Elapsed() float32 { return s.elapsed }
func (s *Scene) Frames() int      { return s.frames }

// Handle resolves path lazily for use by animation factories.
func (s *Scene) Handle(path string) anim.Handle {
	return func() *r3d.Object { return s.Find(path) }
}

// Find resolves a slash separated path of object names. The first element
// names a top level object.
func (s *Scene) Find(path string) *r3d.Object {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	head, rest, _ := strings.Cut(path, "/")
	for _, obj := range s.Objects {
		if obj.Name() != head {
			continue
		}
		if rest == "" {
			return obj
		}
		return obj.Find(rest)
	}
	return nil
}

// WorldPosition is the origin of the object at path in world space.
func (s *Scene) WorldPosition(path string) (mgl32.Vec3, bool) {
	path = strings.Trim(path, "/")
	head, rest, _ := strings.Cut(path, "/")
	top := s.Find(head)
	if top == nil {
		return mgl32.Vec3{}, false
	}
	m, ok := top.WorldMatrix(rest)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return m.Col(3).Vec3(), true
}

// Root returns a grouping node holding the top level objects. It shares
// the objects with the scene.
func (s *Scene) Root() *r3d.Object {
	root := r3d.NewObject(nil)
	root.SetName(s.Name)
	for _, obj := range s.Objects {
		root.AddChild(obj)
	}
	return root
}

// Start starts every animator and engages the camera lock when one is
// configured.
func (s *Scene) Start() {
	for _, a := range s.Animators {
		a.Start()
	}
	if s.LockOn != "" && !s.Camera.Targeting() {
		s.lockOn()
	}
}

// Frame advances the scene by dt seconds: input first, then object
// physics, then animators, then the camera matrices.
func (s *Scene) Frame(in Input, dt float32) {
	s.handleInput(in, dt)

	for _, obj := range s.Objects {
		obj.Tick(dt)
	}
	for _, a := range s.Animators {
		a.Tick(dt)
	}

	s.Camera.Update(s.Width, s.Height, dt)

	s.elapsed += dt
	s.frames++
}

func (s *Scene) handleInput(in Input, dt float32) {
	if in.Resize != nil {
		s.Width, s.Height = in.Resize[0], in.Resize[1]
		s.Camera.RequestPerspective()
	}
	if in.ToggleFocus {
		s.Camera.ToggleFocus()
	}
	if in.ToggleTarget {
		s.toggleTarget()
	}

	s.Camera.ProcessKeyboard(in.Move, dt)
	s.Camera.ProcessMouseMove(in.MouseDX, in.MouseDY, true)
	s.Camera.ProcessMouseScroll(in.Scroll)
}

func (s *Scene) toggleTarget() {
	if s.Camera.Targeting() {
		s.Camera.DropTarget()
		return
	}
	s.lockOn()
}

// lockOn targets the LockOn object, or the first top level object.
func (s *Scene) lockOn() {
	path := s.LockOn
	if path == "" {
		if len(s.Objects) == 0 {
			return
		}
		path = s.Objects[0].Name()
	}
	if pos, ok := s.WorldPosition(path); ok {
		s.Camera.SetTarget(pos)
	}
}

// Render binds camera and light uniforms, then draws every visible object.
func (s *Scene) Render(p r3d.Program) {
	s.Camera.Apply(p)
	s.Lighting.Apply(p, s.Camera)
	for _, obj := range s.Objects {
		obj.Render(p)
	}
}
