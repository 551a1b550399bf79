package physics

import (
	"github.com/Emilinya/physics-engine/vect"
	"github.com/chewxy/math32"
)

// Coil spring drawn as a sine shaped ribbon. It collides like a square.
type springShape struct {
	coils        int
	coilDiameter float32
}

func (springShape) collisionKind() ShapeKind {
	return ShapeKind_Square
}

func (spring springShape) boundingBox(data ShapeData) BoundingBox {
	return squareBoundingBox(data)
}

func (spring springShape) testPoint(data ShapeData, point vect.Vect) bool {
	return squareShape{}.testPoint(data, point)
}

//center line f(t) = (1-d)/2 sin(2π c t), its slope and the slope normalization.
func springCenter(t, coils, d float32) (f, fp, nfp float32) {
	sin, cos := math32.Sincos(coils * 2 * math32.Pi * t)

	f = 0.5 * (1 - d) * sin
	fp = 0.5 * (1 - d) * coils * 2 * math32.Pi * cos
	nfp = math32.Sqrt(1 + fp*fp)
	return
}

//the center line offset by half the wire thickness along its normal.
func springTopCurve(t, coils, d float32) (float32, float32) {
	f, fp, nfp := springCenter(t, coils, d)
	return t - 0.5*d*fp/nfp, f + 0.5*d/nfp
}

func springBottomCurve(t, coils, d float32) (float32, float32) {
	f, fp, nfp := springCenter(t, coils, d)
	return t + 0.5*d*fp/nfp, f - 0.5*d/nfp
}

//lagrange polynomial through points, evaluated at x.
func interpolate(x float32, points [][2]float32) float32 {
	var p float32
	for i := range points {
		l := float32(1)
		for j := range points {
			if j == i {
				continue
			}
			l *= (x - points[j][0]) / (points[i][0] - points[j][0])
		}
		p += l * points[i][1]
	}
	return p
}

//evaluates a parametric curve (x(t), y(t)) as y(x) by stepping t until x(t)
//passes x and interpolating the last stretch.
func curveToFunction(x, delta float32, curve func(float32) (float32, float32)) float32 {
	px, py := curve(x)
	if math32.Abs(px-x) < 1e-8 {
		return py
	}

	sign := math32.Copysign(1, x-px)

	nx := x + delta*sign
	for i := 0; i < 10000; i++ {
		cx, _ := curve(nx)
		if math32.Copysign(1, x-cx) != sign {
			break
		}
		nx += delta * sign
	}

	points := make([][2]float32, 0, 5)
	for _, frac := range []float32{1, 0.25, 0.5, 0.75, 0} {
		cx, cy := curve(nx - frac*delta*sign)
		points = append(points, [2]float32{cx, cy})
	}
	return interpolate(x, points)
}

// Returns the outline of the ribbon as alternating top and bottom points,
// laid out for a triangle strip.
func (spring springShape) GetVertices() [][2]float32 {
	coils := float32(spring.coils)
	d := spring.coilDiameter
	n := 20 * spring.coils
	delta := 0.01 / (math32.Sqrt(d) * coils * coils)
	dx := 1 / float32(n-1)

	top := func(t float32) (float32, float32) { return springTopCurve(t, coils, d) }
	bottom := func(t float32) (float32, float32) { return springBottomCurve(t, coils, d) }

	points := make([][2]float32, 0, 2*n+1)
	points = append(points,
		[2]float32{-0.5, curveToFunction(-0.5, delta, top)},
		[2]float32{-0.5, curveToFunction(-0.5, delta, bottom)},
	)
	for i := 1; i < n; i++ {
		x := -0.5 + float32(i)*dx
		points = append(points,
			[2]float32{x, curveToFunction(x, delta, top)},
			[2]float32{x - 0.5*dx, curveToFunction(x-0.5*dx, delta, bottom)},
		)
	}
	points = append(points, [2]float32{0.5, curveToFunction(0.5, delta, bottom)})

	return points
}
