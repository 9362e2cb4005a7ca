package r3d

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestObject(name string) *Object {
	o := NewObject([]Mesh{Square()})
	o.SetName(name)
	return o
}

func assertMat4(t *testing.T, expected, actual mgl32.Mat4) {
	t.Helper()
	assert.True(t, expected.ApproxEqualThreshold(actual, 1e-5), "expected\n%v\ngot\n%v", expected, actual)
}

func TestNewObjectDefaults(t *testing.T) {
	o := NewObject(nil)

	assert.Equal(t, mgl32.Vec3{1, 1, 1}, o.Scale())
	assert.Equal(t, float32(4), o.Shininess())
	assert.True(t, o.Display())
	assert.True(t, o.GravityAffected())
	assert.Equal(t, mgl32.Ident4(), o.BaseTransform())
	assertMat4(t, mgl32.Ident4(), o.ModelMatrix())
}

func TestMoveRotateGrow(t *testing.T) {
	o := newTestObject("box")
	o.Move(mgl32.Vec3{1, 2, 3})
	o.Move(mgl32.Vec3{-1, 0, 1})
	o.Rotate(mgl32.Vec3{0, math.Pi, 0})
	o.Rotate(mgl32.Vec3{0.5, 0, 0})
	o.Grow(mgl32.Vec3{2, 2, 2})
	o.Grow(mgl32.Vec3{0.5, 3, 1})

	assert.Equal(t, mgl32.Vec3{0, 2, 4}, o.Position())
	assert.Equal(t, mgl32.Vec3{0.5, math.Pi, 0}, o.Orientation())
	assert.Equal(t, mgl32.Vec3{1, 6, 2}, o.Scale())
}

func TestModelMatrixComposition(t *testing.T) {
	o := newTestObject("box")
	o.SetPosition(mgl32.Vec3{1, -2, 3})
	o.SetOrientation(mgl32.Vec3{0.3, 1.1, -0.7})
	o.SetScale(mgl32.Vec3{2, 3, 4})
	o.SetCenter(mgl32.Vec3{0.5, 0.25, -1})

	expected := mgl32.Translate3D(1, -2, 3).
		Mul4(mgl32.Translate3D(1, 0.75, -4)).
		Mul4(mgl32.HomogRotate3DZ(-0.7)).
		Mul4(mgl32.HomogRotate3DX(0.3)).
		Mul4(mgl32.HomogRotate3DY(1.1)).
		Mul4(mgl32.Scale3D(2, 3, 4)).
		Mul4(mgl32.Translate3D(-0.5, -0.25, 1))
	assertMat4(t, expected, o.ModelMatrix())
}

func TestModelMatrixAppliesBaseTransformLast(t *testing.T) {
	base := mgl32.Translate3D(0, 0, 10)
	o := NewObjectWithBase([]Mesh{Cube()}, base)
	o.SetScale(mgl32.Vec3{2, 2, 2})

	// the base offset is scaled along with the mesh
	p := o.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 20, p.Z(), 1e-5)
}

func TestCenterKeepsPivotInPlace(t *testing.T) {
	o := newTestObject("door")
	o.SetCenter(mgl32.Vec3{1, 0, 0})
	o.Rotate(mgl32.Vec3{0, 0, math.Pi / 2})

	// the pivot point maps onto itself
	p := o.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.True(t, p.Vec3().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5), "got %v", p)
}

func TestAddChildKeepsReferences(t *testing.T) {
	boat := newTestObject("boat")
	tiger := newTestObject("tiger")
	boat.AddChild(newTestObject("hull"))
	boat.AddChild(tiger)
	for i := 0; i < 64; i++ {
		boat.AddChild(newTestObject("crate"))
	}

	require.Equal(t, 66, boat.NumChildren())
	assert.Same(t, tiger, boat.Child(1))
	tiger.Move(mgl32.Vec3{0, 1, 0})
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, boat.Child(1).Position())
}

func TestFind(t *testing.T) {
	boat := newTestObject("boat")
	tiger := newTestObject("tiger")
	tail := newTestObject("tail")
	tiger.AddChild(tail)
	boat.AddChild(newTestObject("hull"))
	boat.AddChild(tiger)

	assert.Same(t, boat, boat.Find(""))
	assert.Same(t, tiger, boat.Find("tiger"))
	assert.Same(t, tail, boat.Find("tiger/tail"))
	assert.Same(t, tail, boat.Find("/tiger//tail/"))
	assert.Nil(t, boat.Find("tiger/head"))
	assert.Nil(t, boat.Find("boat"))
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := newTestObject("root")
	a := newTestObject("a")
	a.AddChild(newTestObject("a1"))
	root.AddChild(a)
	root.AddChild(newTestObject("b"))

	var names []string
	root.Walk(func(o *Object, depth int) bool {
		names = append(names, strings.Repeat("-", depth)+o.Name())
		return o.Name() != "a"
	})
	assert.Equal(t, []string{"root", "-a", "-b"}, names)
}

func TestUpdateForward(t *testing.T) {
	o := newTestObject("ship")
	o.SetOrientation(mgl32.Vec3{math.Pi / 2, 0, 0})
	o.UpdateForward()

	assert.True(t, o.Forward().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-6), "got %v", o.Forward())
}

func TestToggleGravity(t *testing.T) {
	o := newTestObject("balloon")
	o.ToggleGravity()
	assert.False(t, o.GravityAffected())
	o.ToggleGravity()
	assert.True(t, o.GravityAffected())
}
