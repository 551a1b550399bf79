package physics

import (
	"math"

	"github.com/Emilinya/physics-engine/vect"
)

var squareVertices = [][2]float32{
	{-0.5, -0.5},
	{0.5, -0.5},
	{0.5, 0.5},
	{-0.5, 0.5},
}

// Axis aligned unit square.
type squareShape struct{}

func (squareShape) collisionKind() ShapeKind {
	return ShapeKind_Square
}

func (squareShape) GetVertices() [][2]float32 {
	verts := make([][2]float32, len(squareVertices))
	copy(verts, squareVertices)
	return verts
}

func (squareShape) boundingBox(data ShapeData) BoundingBox {
	return squareBoundingBox(data)
}

// Returns true if the given point is located inside the box.
func (squareShape) testPoint(data ShapeData, point vect.Vect) bool {
	xf := data.Transform()
	local := xf.TransformVectInv(point)
	return math.Abs(local.X) <= 0.5 && math.Abs(local.Y) <= 0.5
}
