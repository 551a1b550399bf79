package physics

import (
	"github.com/Emilinya/physics-engine/vect"
)

func objectAt(objects []*PhysicsObject, i int) *PhysicsObject {
	if i < 0 || i >= len(objects) {
		return nil
	}
	return objects[i]
}

func resetAccelerations(objects []*PhysicsObject) {
	for _, obj := range objects {
		if obj != nil {
			obj.Acceleration = vect.Vector_Zero
		}
	}
}

//copies of the state, so forces can be evaluated without touching it.
func snapshot(positions []vect.Vect, objects []*PhysicsObject) ([]vect.Vect, []*PhysicsObject) {
	posCopy := make([]vect.Vect, len(positions))
	copy(posCopy, positions)

	objCopy := make([]*PhysicsObject, len(objects))
	for i, obj := range objects {
		if obj != nil {
			clone := *obj
			objCopy[i] = &clone
		}
	}
	return posCopy, objCopy
}

func accelerations(objects []*PhysicsObject) []vect.Vect {
	acc := make([]vect.Vect, len(objects))
	for i, obj := range objects {
		if obj != nil {
			acc[i] = obj.Acceleration
		}
	}
	return acc
}

func velocities(objects []*PhysicsObject) []vect.Vect {
	vel := make([]vect.Vect, len(objects))
	for i, obj := range objects {
		if obj != nil {
			vel[i] = obj.Velocity
		}
	}
	return vel
}
