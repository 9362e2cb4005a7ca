package r3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(n int) []*Object {
	chain := make([]*Object, n)
	for i := range chain {
		o := newTestObject(string(rune('a' + i)))
		o.SetPosition(mgl32.Vec3{float32(i), 1, -float32(i)})
		o.SetOrientation(mgl32.Vec3{0.1 * float32(i), 0.2, 0.3})
		o.SetScale(mgl32.Vec3{1, 1 + 0.5*float32(i), 1})
		if i > 0 {
			chain[i-1].AddChild(o)
		}
		chain[i] = o
	}
	return chain
}

func TestIdentityParentComposition(t *testing.T) {
	o := newTestObject("box")
	o.SetPosition(mgl32.Vec3{3, 2, 1})
	o.SetOrientation(mgl32.Vec3{1, 2, 3})

	assertMat4(t, o.ModelMatrix(), mgl32.Ident4().Mul4(o.ModelMatrix()))
	assertMat4(t, o.ModelMatrix(), o.WorldMatrices()[0])
}

func TestChainWorldMatrix(t *testing.T) {
	chain := buildChain(5)

	expected := mgl32.Ident4()
	for _, o := range chain {
		expected = expected.Mul4(o.ModelMatrix())
	}

	world, ok := chain[0].WorldMatrix("b/c/d/e")
	require.True(t, ok)
	assertMat4(t, expected, world)

	all := chain[0].WorldMatrices()
	require.Len(t, all, 5)
	assertMat4(t, expected, all[4])

	_, ok = chain[0].WorldMatrix("b/x")
	assert.False(t, ok)
}

func TestRenderSetsUniformsPerNode(t *testing.T) {
	chain := buildChain(3)
	chain[1].SetShininess(32)
	rec := NewRecorder()

	chain[0].Render(rec)

	require.Len(t, rec.Calls, 3)
	world := chain[0].WorldMatrices()
	for i, call := range rec.Calls {
		assert.Equal(t, "square", call.Label)
		assert.Equal(t, 6, call.Count)
		assertMat4(t, world[i], call.Model)
	}
	assert.Equal(t, float32(4), rec.Calls[0].Shine)
	assert.Equal(t, float32(32), rec.Calls[1].Shine)
}

func TestRenderOncePerMeshBatch(t *testing.T) {
	o := NewObject([]Mesh{Square(), Cube(), &Primitive{Label: "wheel", Indices: 120}})
	rec := NewRecorder()

	o.Render(rec)

	require.Len(t, rec.Calls, 3)
	assert.Equal(t, "wheel", rec.Calls[2].Label)
	assert.Equal(t, 2, rec.Uniforms())
}

func TestHiddenObjectHidesSubtree(t *testing.T) {
	chain := buildChain(3)
	rec := NewRecorder()

	chain[1].SetDisplay(false)
	chain[0].Render(rec)
	assert.Len(t, rec.Calls, 1)

	rec.Reset()
	chain[0].SetDisplay(false)
	chain[0].Render(rec)
	assert.Empty(t, rec.Calls)
	assert.Zero(t, rec.Uniforms())
}

func TestRenderDoesNotMutate(t *testing.T) {
	chain := buildChain(3)
	before := chain[0].WorldMatrices()

	chain[0].Render(NewRecorder())

	assert.Equal(t, before, chain[0].WorldMatrices())
}

func TestRenderWithoutDrawer(t *testing.T) {
	o := newTestObject("box")
	var p uniformsOnly
	o.Render(&p)
	assert.Equal(t, 1, p.mats)
}

type uniformsOnly struct{ mats int }

func (u *uniformsOnly) SetUniformMat4(string, mgl32.Mat4) { u.mats++ }
func (u *uniformsOnly) SetUniformVec3(string, mgl32.Vec3) {}
func (u *uniformsOnly) SetUniformFloat(string, float32)   {}
