package physics

import (
	"github.com/Emilinya/physics-engine/vect"
)

// Unit circle, stretched into an ellipse by the shape size.
// Drawn as a polygon but bounding box, point and collision tests are exact.
type circleShape struct{}

func (circleShape) collisionKind() ShapeKind {
	return ShapeKind_Circle
}

func (circleShape) GetVertices() [][2]float32 {
	return ngonVertices(circleSides)
}

func (circleShape) boundingBox(data ShapeData) BoundingBox {
	return circleBoundingBox(data)
}

// Returns true if the given point is located inside the ellipse.
func (circleShape) testPoint(data ShapeData, point vect.Vect) bool {
	xf := data.Transform()
	return xf.TransformVectInv(point).LengthSqr() < 0.25
}

//true if the ellipse is a circle.
func isCircular(data ShapeData) bool {
	return vect.ApproxEqual(data.Size.X, data.Size.Y, 1e-6)
}
