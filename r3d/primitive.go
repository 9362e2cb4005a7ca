package r3d

// Primitive is a mesh batch known only by its label and index count.
// Vertex data stays with whoever uploaded it.
type Primitive struct {
	Label    string
	Indices  int
	Material int
}

func (m *Primitive) Render(p Program) {
	if d, ok := p.(Drawer); ok {
		d.DrawElements(m.Label, m.Indices)
	}
}

// Square is a unit quad in the XY plane.
func Square() *Primitive {
	return &Primitive{Label: "square", Indices: 6, Material: -1}
}

// Cube is a unit cube centered on the origin.
func Cube() *Primitive {
	return &Primitive{Label: "cube", Indices: 36, Material: -1}
}

// BuiltinMesh returns one of the builtin primitives by name.
func BuiltinMesh(name string) (*Primitive, bool) {
	switch name {
	case "square":
		return Square(), true
	case "cube":
		return Cube(), true
	}
	return nil, false
}
