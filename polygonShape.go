package physics

import (
	"log"

	"github.com/Emilinya/physics-engine/vect"
	"github.com/chewxy/math32"
)

type PolygonAxis struct {
	// The axis normal.
	N vect.Vect
	D float64
}

// Regular polygon with its first vertex pointing up.
type ngonShape struct {
	sides int
}

func ngonVertices(sides int) [][2]float32 {
	verts := make([][2]float32, sides)
	for i := range verts {
		angle := float32(i)*2*math32.Pi/float32(sides) + math32.Pi/2
		sin, cos := math32.Sincos(angle)
		verts[i] = [2]float32{0.5 * cos, 0.5 * sin}
	}
	return verts
}

func (ngon ngonShape) isRound() bool {
	return ngon.sides >= ngonCircleThreshold
}

func (ngon ngonShape) collisionKind() ShapeKind {
	if ngon.isRound() {
		return ShapeKind_Circle
	}
	return ShapeKind_NGon
}

func (ngon ngonShape) GetVertices() [][2]float32 {
	return ngonVertices(ngon.sides)
}

func (ngon ngonShape) boundingBox(data ShapeData) BoundingBox {
	if ngon.isRound() {
		return circleBoundingBox(data)
	}
	return vertexBoundingBox(VerticesFrom32(ngon.GetVertices()), data)
}

func (ngon ngonShape) testPoint(data ShapeData, point vect.Vect) bool {
	if ngon.isRound() {
		return circleShape{}.testPoint(data, point)
	}
	xf := data.Transform()
	return ContainsVert(polygonAxes(VerticesFrom32(ngon.GetVertices())), xf.TransformVectInv(point))
}

// Returns the outward edge normals of a counter clockwise polygon.
func polygonAxes(verts Vertices) []PolygonAxis {
	if !verts.ValidatePolygon() {
		log.Printf("Warning: vertices not valid")
	}

	numVerts := len(verts)
	axes := make([]PolygonAxis, numVerts)
	for i := 0; i < numVerts; i++ {
		a := verts[i]
		b := verts[(i+1)%numVerts]
		n := vect.Normalize(vect.RPerp(vect.Sub(b, a)))

		axes[i].N = n
		axes[i].D = vect.Dot(n, a)
	}
	return axes
}

// Returns true if v is on the inner side of every axis.
func ContainsVert(axes []PolygonAxis, v vect.Vect) bool {
	for _, axis := range axes {
		dist := vect.Dot(axis.N, v) - axis.D
		if dist > 0.0 {
			return false
		}
	}

	return true
}

// Returns the local vertices the shape collides with as a polygon.
func collisionVertices(shape Shape) Vertices {
	if shape.Kind == ShapeKind_NGon {
		return VerticesFrom32(ngonVertices(shape.Sides))
	}
	return VerticesFrom32(squareVertices)
}
