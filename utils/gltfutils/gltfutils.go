// Package gltfutils moves scene graphs in and out of glTF documents.
package gltfutils

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/r3d"
	"github.com/lbzfran/gp-project/utils"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// Load opens a .gltf or .glb file and converts its default scene.
func Load(path string) (*r3d.Object, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	root, err := FromDocument(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "importing %q", path)
	}
	return root, nil
}

// Decode reads a glTF document from r.
func Decode(r io.Reader) (*r3d.Object, error) {
	var doc gltf.Document
	if err := gltf.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding gltf")
	}
	return FromDocument(&doc)
}

type importer struct {
	doc      *gltf.Document
	names    *utils.NameGenerator
	visiting map[uint32]bool
}

// FromDocument converts the default scene of doc into an object tree. The
// returned root is a grouping node without meshes. Node matrices become
// base transforms, so the imported objects start with an identity
// position, orientation and scale of their own.
func FromDocument(doc *gltf.Document) (*r3d.Object, error) {
	imp := &importer{
		doc:      doc,
		names:    utils.NewNameGenerator(int64(len(doc.Nodes))),
		visiting: make(map[uint32]bool),
	}
	for _, n := range doc.Nodes {
		if n.Name != "" {
			imp.names.Reserve(n.Name)
		}
	}

	root := r3d.NewObject(nil)
	roots, name := imp.rootNodes()
	root.SetName(name)

	for _, idx := range roots {
		child, err := imp.node(idx)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}
	return root, nil
}

func (imp *importer) rootNodes() ([]uint32, string) {
	if len(imp.doc.Scenes) != 0 {
		i := uint32(0)
		if imp.doc.Scene != nil && int(*imp.doc.Scene) < len(imp.doc.Scenes) {
			i = *imp.doc.Scene
		}
		scene := imp.doc.Scenes[i]
		name := scene.Name
		if name == "" {
			name = "scene"
		}
		return scene.Nodes, name
	}

	// no scenes: every node that is nobody's child is a root
	isChild := make(map[uint32]bool)
	for _, n := range imp.doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	var roots []uint32
	for i := range imp.doc.Nodes {
		if !isChild[uint32(i)] {
			roots = append(roots, uint32(i))
		}
	}
	return roots, "scene"
}

func (imp *importer) node(idx uint32) (*r3d.Object, error) {
	if int(idx) >= len(imp.doc.Nodes) {
		return nil, errors.Errorf("node index %d out of range", idx)
	}
	if imp.visiting[idx] {
		return nil, errors.Errorf("node %d is its own ancestor", idx)
	}
	imp.visiting[idx] = true
	defer delete(imp.visiting, idx)

	n := imp.doc.Nodes[idx]

	var meshes []r3d.Mesh
	if n.Mesh != nil {
		var err error
		if meshes, err = imp.mesh(*n.Mesh); err != nil {
			return nil, errors.Wrapf(err, "node %d", idx)
		}
	}

	obj := r3d.NewObjectWithBase(meshes, NodeTransform(n))
	if n.Name != "" {
		obj.SetName(n.Name)
	} else {
		obj.SetName(imp.names.Name("node"))
	}

	for _, c := range n.Children {
		child, err := imp.node(c)
		if err != nil {
			return nil, err
		}
		obj.AddChild(child)
	}
	return obj, nil
}

func (imp *importer) mesh(idx uint32) ([]r3d.Mesh, error) {
	if int(idx) >= len(imp.doc.Meshes) {
		return nil, errors.Errorf("mesh index %d out of range", idx)
	}
	m := imp.doc.Meshes[idx]
	label := m.Name
	if label == "" {
		label = fmt.Sprintf("mesh%d", idx)
	}

	meshes := make([]r3d.Mesh, 0, len(m.Primitives))
	for i, p := range m.Primitives {
		count, err := imp.indexCount(p)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q primitive %d", label, i)
		}
		material := -1
		if p.Material != nil {
			material = int(*p.Material)
		}
		meshes = append(meshes, &r3d.Primitive{
			Label:    fmt.Sprintf("%s/%d", label, i),
			Indices:  count,
			Material: material,
		})
	}
	return meshes, nil
}

// indexCount is the indices accessor count, or the vertex count for
// non indexed primitives.
func (imp *importer) indexCount(p *gltf.Primitive) (int, error) {
	acc := p.Indices
	if acc == nil {
		pos, ok := p.Attributes[gltf.POSITION]
		if !ok {
			return 0, errors.New("primitive has neither indices nor positions")
		}
		acc = &pos
	}
	if int(*acc) >= len(imp.doc.Accessors) {
		return 0, errors.Errorf("accessor index %d out of range", *acc)
	}
	return int(imp.doc.Accessors[*acc].Count), nil
}

// NodeTransform is the local matrix of a node. An explicit matrix wins over
// translation, rotation and scale. Zero valued fields are read as their
// glTF defaults.
func NodeTransform(n *gltf.Node) mgl32.Mat4 {
	m := mgl32.Mat4(n.Matrix)
	if m != (mgl32.Mat4{}) && m != mgl32.Ident4() {
		return m
	}

	t := mgl32.Vec3(n.Translation)

	q := mgl32.Quat{W: n.Rotation[3], V: mgl32.Vec3{n.Rotation[0], n.Rotation[1], n.Rotation[2]}}
	if q.Len() == 0 {
		q = mgl32.QuatIdent()
	}

	s := mgl32.Vec3(n.Scale)
	if s == (mgl32.Vec3{}) {
		s = mgl32.Vec3{1, 1, 1}
	}

	return mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}
