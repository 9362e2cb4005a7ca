package r3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/utils"
)

const (
	DefaultMoveSpeed   = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0

	MinZoom  = 1.0
	MaxZoom  = 45.0
	MaxPitch = 89.0

	NearPlane = 0.1
	FarPlane  = 100.0

	// how fast the camera blends between free look and target lock, per second
	TargetLerpRate = 1.0
)

// Camera is a free-look camera that can smoothly lock onto a target point.
// While locked, keyboard movement drives a separate hover point which
// becomes the eye once the blend completes.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	yaw   float32 // degrees
	pitch float32 // degrees
	zoom  float32 // vertical fov, degrees

	MoveSpeed        float32
	MouseSensitivity float32

	focused    bool
	targeting  bool
	target     mgl32.Vec3
	hover      mgl32.Vec3
	targetLerp float32

	view        mgl32.Mat4
	perspective mgl32.Mat4

	viewDirty        bool
	perspectiveDirty bool
}

func NewDefaultCamera() *Camera {
	return NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

func NewCamera(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		position:         position,
		hover:            position,
		up:               worldUp,
		yaw:              yaw,
		pitch:            pitch,
		zoom:             DefaultZoom,
		MoveSpeed:        DefaultMoveSpeed,
		MouseSensitivity: DefaultSensitivity,
		focused:          true,
		view:             mgl32.Ident4(),
		perspective:      mgl32.Ident4(),
	}
	c.updateVectors()
	c.RequestView()
	c.RequestPerspective()
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Hover() mgl32.Vec3    { return c.hover }
func (c *Camera) Target() mgl32.Vec3   { return c.target }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Zoom() float32        { return c.zoom }
func (c *Camera) Focused() bool        { return c.focused }
func (c *Camera) Targeting() bool      { return c.targeting }
func (c *Camera) TargetLerp() float32  { return c.targetLerp }

func (c *Camera) GetViewMatrix() mgl32.Mat4    { return c.view }
func (c *Camera) ProjectionMatrix() mgl32.Mat4 { return c.perspective }

func (c *Camera) RequestView()        { c.viewDirty = true }
func (c *Camera) RequestPerspective() { c.perspectiveDirty = true }

// ProcessKeyboard moves the camera. Every component of direction is
// expected in [-1, 1]: x walks along front, z strafes along right and y
// lifts along up. Walking and strafing stay on the horizontal plane.
func (c *Camera) ProcessKeyboard(direction mgl32.Vec3, dt float32) {
	velocity := c.MoveSpeed * dt

	var delta mgl32.Vec3
	delta = delta.Add(c.front.Mul(direction.X() * velocity))
	delta = delta.Add(c.right.Mul(direction.Z() * velocity))
	delta[1] = 0
	delta = delta.Add(c.up.Mul(direction.Y() * velocity))

	if delta == (mgl32.Vec3{}) {
		return
	}
	if c.targeting {
		c.hover = c.hover.Add(delta)
	} else {
		c.position = c.position.Add(delta)
		c.hover = c.position
	}
	c.RequestView()
}

// ProcessMouseMove turns the camera. Ignored while locked on a target or
// unfocused.
func (c *Camera) ProcessMouseMove(dx, dy float32, limitPitch bool) {
	if dx == 0 && dy == 0 {
		return
	}
	if !c.targeting && c.focused {
		c.yaw += dx * c.MouseSensitivity
		c.pitch += dy * c.MouseSensitivity

		if limitPitch {
			c.pitch = mgl32.Clamp(c.pitch, -MaxPitch, MaxPitch)
		}
		c.updateVectors()
	}
	c.RequestView()
}

func (c *Camera) ProcessMouseScroll(dy float32) {
	if dy == 0 {
		return
	}
	c.zoom = mgl32.Clamp(c.zoom-dy, MinZoom, MaxZoom)
	c.RequestPerspective()
}

// SetZoom sets the field of view, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.zoom = mgl32.Clamp(zoom, MinZoom, MaxZoom)
	c.RequestPerspective()
}

func (c *Camera) SetFront(front mgl32.Vec3) {
	c.front = front
	c.RequestView()
}

// SetTarget starts blending towards looking at point. The zoom resets to
// its default.
func (c *Camera) SetTarget(point mgl32.Vec3) {
	c.targeting = true
	c.target = point
	c.zoom = DefaultZoom

	c.RequestView()
	c.RequestPerspective()
}

// DropTarget starts blending back to free look.
func (c *Camera) DropTarget() {
	c.targeting = false
	c.RequestView()
}

func (c *Camera) ToggleFocus() { c.focused = !c.focused }

// Update advances the target blend and rebuilds whichever matrices are
// stale. The view is rebuilt every frame of a blend; the projection only
// after a zoom change, target change or resize request.
func (c *Camera) Update(winWidth, winHeight, dt float32) {
	step := TargetLerpRate * dt
	if c.targeting {
		if c.targetLerp < 1 {
			c.targetLerp = mgl32.Clamp(c.targetLerp+step, 0, 1)
			c.RequestView()
		}
	} else if c.targetLerp > 0 {
		c.targetLerp = mgl32.Clamp(c.targetLerp-step, 0, 1)
		c.RequestView()
	}

	if c.viewDirty {
		c.updateView()
		c.viewDirty = false
	}

	if c.perspectiveDirty && winHeight > 0 {
		c.updatePerspective(winWidth, winHeight)
		c.perspectiveDirty = false
	}
}

// Apply binds the camera uniforms.
func (c *Camera) Apply(p Program) {
	p.SetUniformMat4(UniformView, c.view)
	p.SetUniformMat4(UniformProjection, c.perspective)
	p.SetUniformVec3(UniformViewPos, c.position)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	c.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(c.up).Normalize()
}

func (c *Camera) updateView() {
	eye := utils.Vec3Lerp(c.position, c.targetLerp, c.hover)
	center := utils.Vec3Lerp(c.position.Add(c.front), c.targetLerp, c.target)
	c.view = mgl32.LookAtV(eye, center, c.up)
}

func (c *Camera) updatePerspective(winWidth, winHeight float32) {
	c.perspective = mgl32.Perspective(mgl32.DegToRad(c.zoom), winWidth/winHeight, NearPlane, FarPlane)
}
