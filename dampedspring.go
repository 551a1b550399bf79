package physics

import (
	"github.com/Emilinya/physics-engine/vect"
)

type SpringForce struct {
	SpringConstant    float64
	Damping           float64
	EquilibriumLength float64
}

//Connection refers to the two bodies a spring is attached to by their index
//in the per step body arrays. Negative or out of range indices dangle.
type Connection struct {
	Body1, Body2 int
}

// Returns true if both ends refer to one of n bodies.
func (con Connection) Valid(n int) bool {
	return con.Body1 >= 0 && con.Body1 < n && con.Body2 >= 0 && con.Body2 < n
}

type SpringConnection struct {
	SpringForce
	Connection
}

func (force *SpringForce) PotentialEnergy(length float64) float64 {
	elongation := length - force.EquilibriumLength
	return 0.5 * force.SpringConstant * elongation * elongation
}

//force the spring pulls body1 with, body2 gets the opposite.
func (force *SpringForce) force(pos1, pos2 vect.Vect) vect.Vect {
	between := vect.Sub(pos2, pos1)
	length := between.Length()
	if length == 0 {
		return vect.Vector_Zero
	}
	direction := vect.Mult(between, 1/length)
	return vect.Mult(direction, force.SpringConstant*(length-force.EquilibriumLength))
}

// Accumulates spring and damping forces into the accelerations.
// The damping of each end opposes that end's own velocity.
// Dangling connections are skipped, ends without a physics object only
// pull on the other end.
func ApplySpringForce(springs []SpringConnection, positions []vect.Vect, objects []*PhysicsObject) {
	for i := range springs {
		spring := &springs[i]
		if !spring.Valid(len(positions)) {
			continue
		}

		f := spring.force(positions[spring.Body1], positions[spring.Body2])

		if phy1 := objectAt(objects, spring.Body1); phy1 != nil {
			phy1.ApplyForce(f)
			phy1.ApplyForce(vect.Mult(phy1.Velocity, -spring.Damping))
		}
		if phy2 := objectAt(objects, spring.Body2); phy2 != nil {
			phy2.ApplyForce(vect.Mult(f, -1))
			phy2.ApplyForce(vect.Mult(phy2.Velocity, -spring.Damping))
		}
	}
}

// Returns the total potential energy stored in the springs.
func SpringEnergy(springs []SpringConnection, positions []vect.Vect) float64 {
	energy := 0.0
	for i := range springs {
		spring := &springs[i]
		if !spring.Valid(len(positions)) {
			continue
		}
		energy += spring.PotentialEnergy(vect.Dist(positions[spring.Body1], positions[spring.Body2]))
	}
	return energy
}

// Moves a spring shape so it spans pos1 to pos2. The height is kept.
func ResyncSpring(data *ShapeData, pos1, pos2 vect.Vect) {
	between := vect.Sub(pos1, pos2)

	data.Position = vect.Midpoint(pos1, pos2)
	data.Rotation = vect.AngleTo(vect.Vector_X, between)
	data.Size.X = between.Length()
}
