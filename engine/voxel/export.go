package voxel

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var ErrEmptyMesh = errors.New("mesh has no triangles")

// ToDocument wraps the mesh in a single-node glTF scene.
func ToDocument(m *ExtractedMesh, name string) (*gltf.Document, error) {
	if m.TriangleCount() == 0 {
		return nil, ErrEmptyMesh
	}
	positions := make([][3]float32, m.VertexCount())
	normals := make([][3]float32, m.VertexCount())
	uvs := make([][2]float32, m.VertexCount())
	for i := range positions {
		positions[i] = [3]float32{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
		normals[i] = [3]float32{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
		uvs[i] = [2]float32{m.UVs[i*2], m.UVs[i*2+1]}
	}

	doc := gltf.NewDocument()
	indicesAccessor := modeler.WriteIndices(doc, m.Indices)
	positionAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	uvAccessor := modeler.WriteTextureCoord(doc, uvs)

	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indicesAccessor),
			Mode:    gltf.PrimitiveTriangles,
			Attributes: gltf.Attribute{
				gltf.POSITION:   positionAccessor,
				gltf.NORMAL:     normalAccessor,
				gltf.TEXCOORD_0: uvAccessor,
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// WriteGLB saves the mesh as a binary glTF file.
func WriteGLB(m *ExtractedMesh, name, filename string) error {
	doc, err := ToDocument(m, name)
	if err != nil {
		return errors.Wrapf(err, "export %s", name)
	}
	if err := gltf.SaveBinary(doc, filename); err != nil {
		return errors.Wrapf(err, "write %s", filename)
	}
	return nil
}
