package physics

import (
	"github.com/Emilinya/physics-engine/transform"
	"github.com/Emilinya/physics-engine/vect"
)

// Wrapper around []vect.Vect.
type Vertices []vect.Vect

func VerticesFrom32(verts [][2]float32) Vertices {
	out := make(Vertices, len(verts))
	for i, v := range verts {
		out[i] = vect.Vect{X: float64(v[0]), Y: float64(v[1])}
	}
	return out
}

// Checks if verts forms a valid polygon.
// The vertices must be convex and winded counter clockwise.
func (verts Vertices) ValidatePolygon() bool {
	numVerts := len(verts)
	if numVerts < 3 {
		return false
	}
	for i := 0; i < numVerts; i++ {
		a := verts[i]
		b := verts[(i+1)%numVerts]
		c := verts[(i+2)%numVerts]

		if vect.Cross(vect.Sub(b, a), vect.Sub(c, b)) <= 0.0 {
			return false
		}
	}

	return true
}

// Returns the vertices moved by xf.
func (verts Vertices) Transform(xf transform.Transform) Vertices {
	out := make(Vertices, len(verts))
	for i, v := range verts {
		out[i] = xf.TransformVect(v)
	}
	return out
}

// Returns the vertex closest to point.
func (verts Vertices) Closest(point vect.Vect) vect.Vect {
	closest := verts[0]
	minDist := vect.DistSqr(closest, point)
	for _, v := range verts[1:] {
		if dist := vect.DistSqr(v, point); dist < minDist {
			closest, minDist = v, dist
		}
	}
	return closest
}

// Returns the vertices as float32 pairs.
func (verts Vertices) Array32() [][2]float32 {
	out := make([][2]float32, len(verts))
	for i, v := range verts {
		out[i] = v.Array32()
	}
	return out
}
