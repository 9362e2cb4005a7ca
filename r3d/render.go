package r3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	UniformModel      = "model"
	UniformShininess  = "material.shininess"
	UniformView       = "view"
	UniformProjection = "projection"
	UniformViewPos    = "viewPos"
)

// Render draws o and its subtree. A hidden object hides its whole subtree.
func (o *Object) Render(p Program) {
	if o.display {
		o.renderRecursive(p, mgl32.Ident4())
	}
}

func (o *Object) renderRecursive(p Program, parent mgl32.Mat4) {
	world := parent.Mul4(o.ModelMatrix())
	p.SetUniformMat4(UniformModel, world)
	p.SetUniformFloat(UniformShininess, o.shininess)

	for _, mesh := range o.meshes {
		mesh.Render(p)
	}
	for _, c := range o.childs {
		if c.display {
			c.renderRecursive(p, world)
		}
	}
}

// WorldMatrix composes the local matrices from o down to the descendant at
// path. It returns false when the path does not resolve.
func (o *Object) WorldMatrix(path string) (mgl32.Mat4, bool) {
	m := o.ModelMatrix()
	if path == "" {
		return m, true
	}
	cur := o
	for _, name := range splitPath(path) {
		next := cur.Find(name)
		if next == nil {
			return mgl32.Mat4{}, false
		}
		m = m.Mul4(next.ModelMatrix())
		cur = next
	}
	return m, true
}

// WorldMatrices returns the world matrix of every node in the subtree,
// parents first, in Walk order.
func (o *Object) WorldMatrices() []mgl32.Mat4 {
	var out []mgl32.Mat4
	var rec func(obj *Object, parent mgl32.Mat4)
	rec = func(obj *Object, parent mgl32.Mat4) {
		world := parent.Mul4(obj.ModelMatrix())
		out = append(out, world)
		for _, c := range obj.childs {
			rec(c, world)
		}
	}
	rec(o, mgl32.Ident4())
	return out
}
