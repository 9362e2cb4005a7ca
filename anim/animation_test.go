package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/r3d"
	"github.com/lbzfran/gp-project/utils"
	"github.com/stretchr/testify/assert"
)

func newTarget() *r3d.Object {
	return r3d.NewObject([]r3d.Mesh{r3d.Cube()})
}

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.True(t, expected.ApproxEqualThreshold(actual, 1e-5), "expected %v, got %v", expected, actual)
}

func TestTranslationLifecycle(t *testing.T) {
	obj := newTarget()
	a := NewTranslation(obj, 3, mgl32.Vec3{3, 0, -6})

	assert.False(t, a.Started())
	assert.False(t, a.Finished())
	assertVec3(t, mgl32.Vec3{1, 0, -2}, a.PerSecond())

	a.Tick(1)
	assert.True(t, a.Started())
	assert.False(t, a.Finished())
	assertVec3(t, mgl32.Vec3{1, 0, -2}, obj.Position())

	a.Tick(1)
	a.Tick(1)
	assert.True(t, a.Finished())
	assertVec3(t, mgl32.Vec3{3, 0, -6}, obj.Position())

	a.Tick(1)
	assert.Equal(t, float32(3), a.CurrentTime())
	assertVec3(t, mgl32.Vec3{3, 0, -6}, obj.Position())
}

func TestTranslationClampsOvershoot(t *testing.T) {
	obj := newTarget()
	a := NewTranslation(obj, 2, mgl32.Vec3{0, 4, 0})

	a.Tick(0.5)
	a.Tick(10)

	assert.Equal(t, float32(2), a.CurrentTime())
	assertVec3(t, mgl32.Vec3{0, 4, 0}, obj.Position())
}

func TestTranslationIsIncremental(t *testing.T) {
	obj := newTarget()
	a := NewTranslation(obj, 2, mgl32.Vec3{2, 0, 0})

	a.Tick(1)
	obj.Move(mgl32.Vec3{0, 0, 5})
	a.Tick(1)

	assertVec3(t, mgl32.Vec3{2, 0, 5}, obj.Position())
}

func TestRotation(t *testing.T) {
	obj := newTarget()
	obj.SetOrientation(mgl32.Vec3{1, 0, 0})
	a := NewRotation(obj, 4, mgl32.Vec3{0, 2, 0})

	for i := 0; i < 8; i++ {
		a.Tick(0.5)
	}

	assert.True(t, a.Finished())
	assertVec3(t, mgl32.Vec3{1, 2, 0}, obj.Orientation())
}

func TestBezierEndpointsAreExact(t *testing.T) {
	obj := newTarget()
	start := mgl32.Vec3{0.3, 1.7, -2.9}
	end := mgl32.Vec3{9.1, 0.2, 4.4}
	a := NewBezierTranslation(obj, 3, start, mgl32.Vec3{1, 5, 1}, mgl32.Vec3{7, 5, 2}, end)

	a.Tick(0)
	assert.Equal(t, start, obj.Position())

	a.Tick(1.3)
	a.Tick(2)
	assert.True(t, a.Finished())
	assert.Equal(t, end, obj.Position())
}

func TestBezierIntermediate(t *testing.T) {
	obj := newTarget()
	p0, p1, p2, p3 := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 3, 0}, mgl32.Vec3{3, 3, 0}, mgl32.Vec3{3, 0, 3}
	a := NewBezierTranslation(obj, 2, p0, p1, p2, p3)

	a.Tick(0.5)

	// t = 0.25
	const s, u = 0.25, 0.75
	expected := p0.Mul(u * u * u).
		Add(p1.Mul(3 * u * u * s)).
		Add(p2.Mul(3 * u * s * s)).
		Add(p3.Mul(s * s * s))
	assertVec3(t, expected, obj.Position())
	assertVec3(t, utils.CubicBezier(p0, p1, p2, p3, 0.25), obj.Position())
}

func TestBezierOverwritesPosition(t *testing.T) {
	obj := newTarget()
	a := NewBezierTranslation(obj, 1, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{})

	obj.Move(mgl32.Vec3{5, 5, 5})
	a.Tick(0.5)

	assert.Equal(t, mgl32.Vec3{}, obj.Position())
}

func TestPause(t *testing.T) {
	obj := newTarget()
	obj.SetPosition(mgl32.Vec3{1, 2, 3})
	a := NewPause(obj, 1.5)

	a.Tick(1)
	assert.False(t, a.Finished())
	a.Tick(1)
	assert.True(t, a.Finished())
	assert.Equal(t, float32(1.5), a.CurrentTime())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.Position())
	assert.Same(t, obj, a.Target())
}

func TestZeroDurationCompletesInstantly(t *testing.T) {
	obj := newTarget()

	tr := NewTranslation(obj, 0, mgl32.Vec3{1, 2, 3})
	tr.Tick(0)
	assert.True(t, tr.Finished())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.Position())
	tr.Tick(1)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.Position())

	rot := NewRotation(obj, -5, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, float32(0), rot.Duration())
	rot.Tick(0.1)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, obj.Orientation())

	end := mgl32.Vec3{-4, 0, 4}
	bz := NewBezierTranslation(obj, 0, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, end)
	bz.Tick(0)
	assert.Equal(t, end, obj.Position())
}

func TestNegativeTickIsIgnored(t *testing.T) {
	obj := newTarget()
	a := NewTranslation(obj, 1, mgl32.Vec3{1, 0, 0})

	a.Tick(-1)

	assert.Equal(t, float32(0), a.CurrentTime())
	assert.Equal(t, mgl32.Vec3{}, obj.Position())
}
