package r3d

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/utils"
)

// Object is a node of the scene graph. It owns its meshes and children;
// children are held by pointer so references handed to animators stay
// valid when siblings are added.
type Object struct {
	meshes []Mesh
	childs []*Object

	// local space, relative to the parent
	position    mgl32.Vec3
	orientation mgl32.Vec3 // euler angles, radians
	scale       mgl32.Vec3
	center      mgl32.Vec3

	forward mgl32.Vec3

	velocity        mgl32.Vec3
	acceleration    mgl32.Vec3
	rotVelocity     mgl32.Vec3
	rotAcceleration mgl32.Vec3

	shininess float32

	// fixed at construction, usually comes from the importer
	baseTransform mgl32.Mat4

	display         bool
	gravityAffected bool

	name string
}

// NewObject creates a node owning the given meshes. Grouping nodes coming
// from importers may pass an empty slice.
func NewObject(meshes []Mesh) *Object {
	return NewObjectWithBase(meshes, mgl32.Ident4())
}

func NewObjectWithBase(meshes []Mesh, baseTransform mgl32.Mat4) *Object {
	return &Object{
		meshes:          meshes,
		scale:           mgl32.Vec3{1, 1, 1},
		shininess:       4,
		baseTransform:   baseTransform,
		display:         true,
		gravityAffected: true,
	}
}

func (o *Object) Position() mgl32.Vec3        { return o.position }
func (o *Object) Orientation() mgl32.Vec3     { return o.orientation }
func (o *Object) Scale() mgl32.Vec3           { return o.scale }
func (o *Object) Center() mgl32.Vec3          { return o.center }
func (o *Object) Forward() mgl32.Vec3         { return o.forward }
func (o *Object) Velocity() mgl32.Vec3        { return o.velocity }
func (o *Object) Acceleration() mgl32.Vec3    { return o.acceleration }
func (o *Object) RotVelocity() mgl32.Vec3     { return o.rotVelocity }
func (o *Object) RotAcceleration() mgl32.Vec3 { return o.rotAcceleration }
func (o *Object) Shininess() float32          { return o.shininess }
func (o *Object) BaseTransform() mgl32.Mat4   { return o.baseTransform }
func (o *Object) Display() bool               { return o.display }
func (o *Object) GravityAffected() bool       { return o.gravityAffected }
func (o *Object) Name() string                { return o.name }
func (o *Object) Meshes() []Mesh              { return o.meshes }

func (o *Object) SetPosition(v mgl32.Vec3)        { o.position = v }
func (o *Object) SetOrientation(v mgl32.Vec3)     { o.orientation = v }
func (o *Object) SetScale(v mgl32.Vec3)           { o.scale = v }
func (o *Object) SetForward(v mgl32.Vec3)         { o.forward = v }
func (o *Object) SetVelocity(v mgl32.Vec3)        { o.velocity = v }
func (o *Object) SetAcceleration(v mgl32.Vec3)    { o.acceleration = v }
func (o *Object) SetRotVelocity(v mgl32.Vec3)     { o.rotVelocity = v }
func (o *Object) SetRotAcceleration(v mgl32.Vec3) { o.rotAcceleration = v }
func (o *Object) SetShininess(v float32)          { o.shininess = v }
func (o *Object) SetDisplay(v bool)               { o.display = v }
func (o *Object) SetGravityAffected(v bool)       { o.gravityAffected = v }
func (o *Object) SetName(name string)             { o.name = name }

// SetCenter sets the point the object rotates and scales around, in local
// space. By default this is the local origin.
func (o *Object) SetCenter(v mgl32.Vec3) { o.center = v }

func (o *Object) Move(offset mgl32.Vec3)  { o.position = o.position.Add(offset) }
func (o *Object) Rotate(delta mgl32.Vec3) { o.orientation = o.orientation.Add(delta) }
func (o *Object) Grow(factor mgl32.Vec3)  { o.scale = utils.MulElem(o.scale, factor) }

func (o *Object) ToggleGravity() { o.gravityAffected = !o.gravityAffected }

// UpdateForward recomputes the forward vector on the horizontal plane from
// the first orientation component.
func (o *Object) UpdateForward() {
	yaw := o.orientation.X()
	o.forward = mgl32.Vec3{math32.Cos(yaw), 0, math32.Sin(yaw)}.Normalize()
}

// AddChild appends child to the end of the child list. The caller must not
// introduce cycles.
func (o *Object) AddChild(child *Object) {
	o.childs = append(o.childs, child)
}

func (o *Object) NumChildren() int    { return len(o.childs) }
func (o *Object) Child(i int) *Object { return o.childs[i] }
func (o *Object) Children() []*Object { return o.childs }

// Find resolves a slash separated path of child names starting below o.
// An empty path returns o itself.
func (o *Object) Find(path string) *Object {
	cur := o
	for _, part := range splitPath(path) {
		var next *Object
		for _, c := range cur.childs {
			if c.name == part {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// Walk visits o and every descendant depth first, parents before children.
// Returning false from fn skips the subtree of that node.
func (o *Object) Walk(fn func(obj *Object, depth int) bool) {
	o.walk(fn, 0)
}

func (o *Object) walk(fn func(obj *Object, depth int) bool, depth int) {
	if !fn(o, depth) {
		return
	}
	for _, c := range o.childs {
		c.walk(fn, depth+1)
	}
}

// ModelMatrix is the local transform:
// T(position) T(center*scale) Rz Rx Ry S(scale) T(-center) base
func (o *Object) ModelMatrix() mgl32.Mat4 {
	sc := utils.MulElem(o.center, o.scale)

	m := mgl32.Translate3D(o.position.X(), o.position.Y(), o.position.Z())
	m = m.Mul4(mgl32.Translate3D(sc.X(), sc.Y(), sc.Z()))
	m = m.Mul4(mgl32.HomogRotate3DZ(o.orientation.Z()))
	m = m.Mul4(mgl32.HomogRotate3DX(o.orientation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(o.orientation.Y()))
	m = m.Mul4(mgl32.Scale3D(o.scale.X(), o.scale.Y(), o.scale.Z()))
	m = m.Mul4(mgl32.Translate3D(-o.center.X(), -o.center.Y(), -o.center.Z()))
	return m.Mul4(o.baseTransform)
}
