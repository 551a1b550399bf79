package physics

import (
	"github.com/Emilinya/physics-engine/vect"
)

// Standard gravity in m/s².
const Gravity = 9.81

//PhysicsObject is the dynamic state of a body. Bodies without one, such as
//anchors, keep their position.
type PhysicsObject struct {
	Velocity vect.Vect
	/// Reset to zero at the start of every step, then accumulated by the forces.
	Acceleration vect.Vect
	/// Must be positive. Use SetMass when changing it.
	Mass float64
}

func NewPhysicsObject(mass float64) *PhysicsObject {
	obj := &PhysicsObject{}
	obj.SetMass(mass)
	return obj
}

func (obj *PhysicsObject) SetMass(mass float64) {
	if mass <= 0 {
		panic("Mass must be positive and non-zero.")
	}
	obj.Mass = mass
}

// Adds f/m to the acceleration.
func (obj *PhysicsObject) ApplyForce(f vect.Vect) {
	obj.Acceleration.Add(vect.Mult(f, 1/obj.Mass))
}

func (obj *PhysicsObject) KineticEnergy() float64 {
	return 0.5 * obj.Mass * obj.Velocity.LengthSqr()
}

func (obj *PhysicsObject) GravitationalEnergy(position vect.Vect, g float64) float64 {
	return obj.Mass * g * position.Y
}

// Pulls every object down with acceleration g. Nil entries are skipped.
func ApplyGravity(objects []*PhysicsObject, g float64) {
	for _, obj := range objects {
		if obj == nil {
			continue
		}
		obj.Acceleration.Y -= g
	}
}
