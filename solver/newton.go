// Package solver finds real roots of scalar equations. It backs the
// ellipse intersection code, which needs both an iterative solver for
// trigonometric boundary equations and a closed form for quadratics.
package solver

import "math"

const (
	newtonMaxIters = 10
	newtonEpsilon  = 1e-12
	minDamping     = 1e-4
)

//a function returning both f(x) and f'(x).
type Func func(x float64) (f, fp float64)

type NewtonResult struct {
	Value      float64
	Iterations int
	Converged  bool
}

//Newton runs a damped Newton-Raphson iteration from x0.
//When a full step makes |f| grow the step is halved until |f| shrinks,
//which lets the iteration escape regions where plain Newton diverges.
func Newton(x0 float64, fn Func) NewtonResult {
	x := x0
	i := 1

	f, fp := fn(x)
	for {
		step := f / fp
		if math.Abs(step) < newtonEpsilon {
			return NewtonResult{Value: x, Iterations: i, Converged: true}
		}
		x -= step

		i++
		if i > newtonMaxIters {
			return NewtonResult{Value: x, Iterations: i, Converged: false}
		}

		prevF := f
		f, fp = fn(x)
		if !(math.Abs(f) > math.Abs(prevF)) {
			continue
		}

		//undo and retry with a shorter step
		x += step
		damping := 0.5
		for {
			f, fp = fn(x - step*damping)
			if math.Abs(f) < math.Abs(prevF) {
				x -= step * damping
				break
			}

			damping *= 0.5
			if damping < minDamping {
				return NewtonResult{Value: x, Iterations: i, Converged: false}
			}
		}
	}
}
