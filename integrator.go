package physics

import (
	"log"
	"strings"

	"github.com/Emilinya/physics-engine/vect"
	"github.com/pkg/errors"
)

// Largest time step the integrators accept.
const MaxStep = 1.0 / 30.0

//ForceModel accumulates accelerations for the given state. Positions and
//objects share indices, anchors have a nil object.
type ForceModel func(positions []vect.Vect, objects []*PhysicsObject)

type Integrator int

const (
	Euler Integrator = iota
	EulerChromer
	VelocityVerlet
	RK4
)

var integratorNames = [...]string{
	Euler:          "euler",
	EulerChromer:   "euler-chromer",
	VelocityVerlet: "velocity-verlet",
	RK4:            "rk4",
}

func (in Integrator) String() string {
	if in < 0 || int(in) >= len(integratorNames) {
		return "unknown"
	}
	return integratorNames[in]
}

func ParseIntegrator(name string) (Integrator, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range integratorNames {
		if n == name {
			return Integrator(i), nil
		}
	}
	return 0, errors.Errorf("unknown integrator %q", name)
}

func (in Integrator) MarshalText() ([]byte, error) {
	return []byte(in.String()), nil
}

func (in *Integrator) UnmarshalText(text []byte) error {
	parsed, err := ParseIntegrator(string(text))
	if err != nil {
		return err
	}
	*in = parsed
	return nil
}

// Evaluates the forces once so the first VelocityVerlet step has an
// acceleration to start from. The other integrators don't need it.
func (in Integrator) Prime(positions []vect.Vect, objects []*PhysicsObject, forces ForceModel) {
	if in != VelocityVerlet {
		return
	}
	resetAccelerations(objects)
	forces(positions, objects)
}

// Advances the state by dt using MaxStep as the stability limit.
func (in Integrator) Step(dt float64, positions []vect.Vect, objects []*PhysicsObject, forces ForceModel) bool {
	return in.StepLimited(dt, MaxStep, positions, objects, forces)
}

// Advances the state by dt. Steps longer than maxStep are skipped with a
// warning and leave the accelerations zeroed. Returns false if skipped.
func (in Integrator) StepLimited(dt, maxStep float64, positions []vect.Vect, objects []*PhysicsObject, forces ForceModel) bool {
	if dt > maxStep {
		log.Printf("Warning: ignoring a large step size equal to %v", dt)
		resetAccelerations(objects)
		return false
	}

	switch in {
	case Euler:
		eulerStep(dt, positions, objects, forces)
	case EulerChromer:
		eulerChromerStep(dt, positions, objects, forces)
	case VelocityVerlet:
		velocityVerletStep(dt, positions, objects, forces)
	case RK4:
		rk4Step(dt, positions, objects, forces)
	default:
		log.Printf("Error: unknown integrator %d", in)
		return false
	}
	return true
}

func eulerStep(dt float64, positions []vect.Vect, objects []*PhysicsObject, forces ForceModel) {
	resetAccelerations(objects)
	forces(positions, objects)

	for i, obj := range objects {
		if obj == nil {
			continue
		}
		positions[i].Add(vect.Mult(obj.Velocity, dt))
		obj.Velocity.Add(vect.Mult(obj.Acceleration, dt))
	}
}

func eulerChromerStep(dt float64, positions []vect.Vect, objects []*PhysicsObject, forces ForceModel) {
	resetAccelerations(objects)
	forces(positions, objects)

	for i, obj := range objects {
		if obj == nil {
			continue
		}
		obj.Velocity.Add(vect.Mult(obj.Acceleration, dt))
		positions[i].Add(vect.Mult(obj.Velocity, dt))
	}
}

//uses the acceleration left by the previous step (or Prime) for the first
//half kick and the freshly computed one for the second.
func velocityVerletStep(dt float64, positions []vect.Vect, objects []*PhysicsObject, forces ForceModel) {
	for i, obj := range objects {
		if obj == nil {
			continue
		}
		obj.Velocity.Add(vect.Mult(obj.Acceleration, 0.5*dt))
		positions[i].Add(vect.Mult(obj.Velocity, dt))
	}

	resetAccelerations(objects)
	forces(positions, objects)

	for _, obj := range objects {
		if obj == nil {
			continue
		}
		obj.Velocity.Add(vect.Mult(obj.Acceleration, 0.5*dt))
	}
}

//one RK4 stage: the derivative of (position, velocity) at the given state,
//computed on copies so the live state is untouched.
func rk4Derivative(positions, vel []vect.Vect, objects []*PhysicsObject, forces ForceModel) (dx, dv []vect.Vect) {
	posCopy, objCopy := snapshot(positions, objects)
	for i, obj := range objCopy {
		if obj != nil {
			obj.Velocity = vel[i]
			obj.Acceleration = vect.Vector_Zero
		}
	}

	forces(posCopy, objCopy)
	return velocities(objCopy), accelerations(objCopy)
}

//state + scale·derivative, anchors stay put.
func rk4Offset(state, derivative []vect.Vect, objects []*PhysicsObject, scale float64) []vect.Vect {
	out := make([]vect.Vect, len(state))
	for i := range state {
		out[i] = state[i]
		if objectAt(objects, i) != nil {
			out[i].Add(vect.Mult(derivative[i], scale))
		}
	}
	return out
}

func rk4Step(dt float64, positions []vect.Vect, objects []*PhysicsObject, forces ForceModel) {
	x := positions
	v := velocities(objects)

	k1x, k1v := rk4Derivative(x, v, objects, forces)
	k2x, k2v := rk4Derivative(rk4Offset(x, k1x, objects, dt/2), rk4Offset(v, k1v, objects, dt/2), objects, forces)
	k3x, k3v := rk4Derivative(rk4Offset(x, k2x, objects, dt/2), rk4Offset(v, k2v, objects, dt/2), objects, forces)
	k4x, k4v := rk4Derivative(rk4Offset(x, k3x, objects, dt), rk4Offset(v, k3v, objects, dt), objects, forces)

	for i, obj := range objects {
		if obj == nil {
			continue
		}
		dx := vect.Add(vect.Add(k1x[i], vect.Mult(k2x[i], 2)), vect.Add(vect.Mult(k3x[i], 2), k4x[i]))
		dv := vect.Add(vect.Add(k1v[i], vect.Mult(k2v[i], 2)), vect.Add(vect.Mult(k3v[i], 2), k4v[i]))

		positions[i].Add(vect.Mult(dx, dt/6))
		obj.Velocity.Add(vect.Mult(dv, dt/6))
		obj.Acceleration = k1v[i]
	}
}
