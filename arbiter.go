package physics

import (
	"github.com/Emilinya/physics-engine/vect"
)

// Default strength of the collision response.
const DefaultCollisionStiffness = 100.0

//Collider is a tangible shape taking part in collision response.
type Collider struct {
	Shape Shape
	Data  ShapeData
	// Index of the body the shape follows, -1 for static shapes.
	Body int
}

//placement of the collider with its body at the given positions.
func (col *Collider) dataAt(positions []vect.Vect) ShapeData {
	data := col.Data
	if col.Body >= 0 && col.Body < len(positions) {
		data.Position = positions[col.Body]
	}
	return data
}

//Arbiter records a colliding pair. Data is seen from A, so its direction
//points from B toward A.
type Arbiter struct {
	// Indices into the collider list.
	A, B int
	Data CollisionData
}

// Tests every pair of colliders. Colliders on the same body never collide.
func FindCollisions(colliders []Collider, positions []vect.Vect) []Arbiter {
	data := make([]ShapeData, len(colliders))
	for i := range colliders {
		data[i] = colliders[i].dataAt(positions)
	}

	var arbiters []Arbiter
	for i := range colliders {
		for j := i + 1; j < len(colliders); j++ {
			if colliders[i].Body >= 0 && colliders[i].Body == colliders[j].Body {
				continue
			}
			if col, ok := colliders[i].Shape.Collision(data[i], colliders[j].Shape, data[j]); ok {
				arbiters = append(arbiters, Arbiter{A: i, B: j, Data: col})
			}
		}
	}
	return arbiters
}

// Pushes overlapping bodies apart with a force proportional to the
// penetration depth.
func ApplyCollisionForce(colliders []Collider, positions []vect.Vect, objects []*PhysicsObject, stiffness float64) {
	for _, arb := range FindCollisions(colliders, positions) {
		push := vect.Mult(arb.Data.Translation(), stiffness)

		if obj := objectAt(objects, colliders[arb.A].Body); obj != nil {
			obj.ApplyForce(push)
		}
		if obj := objectAt(objects, colliders[arb.B].Body); obj != nil {
			obj.ApplyForce(vect.Mult(push, -1))
		}
	}
}
