package physics

import (
	"math"

	"github.com/Emilinya/physics-engine/vect"
)

//extent of a shape along an axis.
type projection struct {
	min, max float64
}

//length of the shared part of two projections, negative if they are apart.
func (p projection) overlap(other projection) float64 {
	return math.Min(p.max, other.max) - math.Max(p.min, other.min)
}

func projectVertices(verts Vertices, axis vect.Vect) projection {
	p := projection{math.Inf(1), math.Inf(-1)}
	for _, v := range verts {
		d := vect.Dot(axis, v)
		p.min = math.Min(p.min, d)
		p.max = math.Max(p.max, d)
	}
	return p
}

//projection of an ellipse onto a unit axis.
func projectEllipse(data ShapeData, axis vect.Vect) projection {
	phi := vect.Angle(axis) - data.Rotation
	sin, cos := math.Sincos(phi)
	radius := math.Hypot(0.5*data.Size.X*cos, 0.5*data.Size.Y*sin)

	center := vect.Dot(axis, data.Position)
	return projection{center - radius, center + radius}
}

// Returns the unit outward normal of every edge.
func edgeNormals(verts Vertices) []vect.Vect {
	numVerts := len(verts)
	normals := make([]vect.Vect, numVerts)
	for i := 0; i < numVerts; i++ {
		edge := vect.Sub(verts[(i+1)%numVerts], verts[i])
		normals[i] = vect.Normalize(vect.RPerp(edge))
	}
	return normals
}

//finds the minimum separating axis. Returns ok = false as soon as an axis
//separates the projections.
func findMSA(axes []vect.Vect, projA, projB func(axis vect.Vect) projection) (depth float64, axis vect.Vect, ok bool) {
	depth = math.Inf(1)
	for _, n := range axes {
		overlap := projA(n).overlap(projB(n))
		if overlap <= 0.0 {
			return 0, vect.Vector_Zero, false
		}
		if overlap < depth {
			depth = overlap
			axis = n
		}
	}

	return depth, axis, len(axes) > 0
}

//flips dir so it points from other toward self.
func orientFrom(dir, self, other vect.Vect) vect.Vect {
	if vect.Dot(dir, vect.Sub(self, other)) < 0 {
		return vect.Mult(dir, -1)
	}
	return dir
}
