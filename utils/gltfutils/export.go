package gltfutils

import (
	"io"

	"github.com/lbzfran/gp-project/r3d"
	"github.com/qmuntal/gltf"
)

// ToDocument writes the node hierarchy below root into a new document.
// Every node carries its current local model matrix; mesh data is not
// exported since primitives only hold index counts.
func ToDocument(root *r3d.Object) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Scenes[0].Name = root.Name()

	var add func(obj *r3d.Object) uint32
	add = func(obj *r3d.Object) uint32 {
		idx := uint32(len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:     obj.Name(),
			Matrix:   obj.ModelMatrix(),
			Rotation: [4]float32{0, 0, 0, 1},
			Scale:    [3]float32{1, 1, 1},
		})
		for _, c := range obj.Children() {
			ci := add(c)
			doc.Nodes[idx].Children = append(doc.Nodes[idx].Children, ci)
		}
		return idx
	}
	for _, c := range root.Children() {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, add(c))
	}
	return doc
}

// Export encodes the hierarchy below root as glTF, or as GLB when binary
// is set.
func Export(w io.Writer, root *r3d.Object, binary bool) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = binary
	return encoder.Encode(ToDocument(root))
}
