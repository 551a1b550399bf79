package physics

import (
	"math"

	"github.com/Emilinya/physics-engine/vect"
)

// Default smoothing time constant of Energy, in seconds.
const DefaultEnergySmoothing = 0.1

// Returns kinetic, gravitational and spring energy of the system.
// Anchors (nil objects) carry no energy of their own.
func TotalEnergy(positions []vect.Vect, objects []*PhysicsObject, springs []SpringConnection, g float64) float64 {
	total := 0.0
	for i, obj := range objects {
		if obj == nil || i >= len(positions) {
			continue
		}
		total += obj.KineticEnergy()
		total += obj.GravitationalEnergy(positions[i], g)
	}
	return total + SpringEnergy(springs, positions)
}

//Energy is an exponential moving average of the total energy. The raw value
//jitters from step to step, the average is what gets shown and logged.
type Energy struct {
	Current float64
	Initial float64
	// Last unsmoothed value.
	Raw float64
	// Smoothing time constant in seconds.
	Tau float64

	seeded bool
}

func NewEnergy(tau float64) *Energy {
	return &Energy{Tau: tau}
}

// Folds raw into the average and returns it. The first value seeds both
// Current and Initial.
func (e *Energy) Update(dt, raw float64) float64 {
	e.Raw = raw
	if !e.seeded || math.IsNaN(e.Current) {
		e.Current = raw
		e.Initial = raw
		e.seeded = true
		return e.Current
	}

	alpha := 1.0
	if e.Tau > 0 {
		alpha = vect.Clamp(dt/e.Tau, 0, 1)
	}
	e.Current += alpha * (raw - e.Current)
	return e.Current
}

// Relative change since the first value.
func (e Energy) Drift() float64 {
	if e.Initial == 0 {
		return math.Abs(e.Current)
	}
	return math.Abs(e.Current-e.Initial) / math.Abs(e.Initial)
}

// Computes the total energy of the system and folds it into e.
func CalculateTotalEnergy(e *Energy, dt float64, positions []vect.Vect, objects []*PhysicsObject, springs []SpringConnection, g float64) float64 {
	return e.Update(dt, TotalEnergy(positions, objects, springs, g))
}
