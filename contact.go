package physics

import (
	"github.com/Emilinya/physics-engine/vect"
)

//CollisionData describes how far two shapes overlap.
type CollisionData struct {
	// Distance to move self along Direction to separate the shapes.
	Depth float32
	// Unit vector pointing from the other shape toward self.
	Direction vect.Vect
}

func newCollisionData(depth float64, dir vect.Vect) CollisionData {
	return CollisionData{Depth: float32(depth), Direction: dir}
}

//the same collision seen from the other shape.
func (data CollisionData) Flipped() CollisionData {
	return CollisionData{Depth: data.Depth, Direction: vect.Mult(data.Direction, -1)}
}

//the translation that separates the shapes.
func (data CollisionData) Translation() vect.Vect {
	return vect.Mult(data.Direction, float64(data.Depth))
}
