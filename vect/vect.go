package vect

import (
	"math"

	"golang.org/x/exp/constraints"
)

var (
	Vector_Zero = Vect{0, 0}
	Vector_X    = Vect{1, 0}
	Vector_Y    = Vect{0, 1}
)

//clamps val to the closed interval [min, max].
func Clamp[T constraints.Float](val, min, max T) T {
	if val < min {
		return min
	} else if val > max {
		return max
	}
	return val
}

//returns true if a and b differ by less than eps.
func ApproxEqual[T constraints.Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

//basic 2d vector.
type Vect struct {
	X, Y float64
}

//adds v2 to the given vector.
func (v1 *Vect) Add(v2 Vect) {
	v1.X += v2.X
	v1.Y += v2.Y
}

//subtracts v2 rom the given vector.
func (v1 *Vect) Sub(v2 Vect) {
	v1.X -= v2.X
	v1.Y -= v2.Y
}

//returns the squared length of the vector.
func (v Vect) LengthSqr() float64 {
	//length of a vector: distance to origin
	return DistSqr(v, Vect{})
}

//returns the length of the vector.
func (v Vect) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

//multiplies the vector by the scalar.
func (v *Vect) Mult(s float64) {
	v.X *= s
	v.Y *= s
}

//returns the components as a float32 pair, the layout used for vertex lists.
func (v Vect) Array32() [2]float32 {
	return [2]float32{float32(v.X), float32(v.Y)}
}

//compare two vectors by value.
func Equals(v1, v2 Vect) bool {
	return v1.X == v2.X && v1.Y == v2.Y
}

//compare two vectors component wise with a tolerance.
func ApproxEquals(v1, v2 Vect, eps float64) bool {
	return ApproxEqual(v1.X, v2.X, eps) && ApproxEqual(v1.Y, v2.Y, eps)
}

//adds the input vectors and returns the result.
func Add(v1, v2 Vect) Vect {
	return Vect{v1.X + v2.X, v1.Y + v2.Y}
}

//subtracts the input vectors and returns the result.
func Sub(v1, v2 Vect) Vect {
	return Vect{v1.X - v2.X, v1.Y - v2.Y}
}

//multiplies a vector by a scalar and returns the result.
func Mult(v1 Vect, s float64) Vect {
	return Vect{v1.X * s, v1.Y * s}
}

//multiplies two vectors component wise.
func Scale(v1, v2 Vect) Vect {
	return Vect{v1.X * v2.X, v1.Y * v2.Y}
}

//divides v1 by v2 component wise.
func Div(v1, v2 Vect) Vect {
	return Vect{v1.X / v2.X, v1.Y / v2.Y}
}

//returns the point halfway between v1 and v2.
func Midpoint(v1, v2 Vect) Vect {
	return Vect{(v1.X + v2.X) / 2, (v1.Y + v2.Y) / 2}
}

//returns the square distance between two vectors.
func DistSqr(v1, v2 Vect) float64 {
	return (v1.X-v2.X)*(v1.X-v2.X) + (v1.Y-v2.Y)*(v1.Y-v2.Y)
}

//returns the distance between two vectors.
func Dist(v1, v2 Vect) float64 {
	return math.Hypot(v1.X-v2.X, v1.Y-v2.Y)
}

//returns a new vector with its x/y values set to the smaller one from the two input values.
func Min(v1, v2 Vect) (out Vect) {
	out.X = math.Min(v1.X, v2.X)
	out.Y = math.Min(v1.Y, v2.Y)
	return
}

//returns a new vector with its x/y values set to the bigger one from the two input values.
//e.g. Max({2, 10}, {8, 3}) would return {8, 10}
func Max(v1, v2 Vect) (out Vect) {
	out.X = math.Max(v1.X, v2.X)
	out.Y = math.Max(v1.Y, v2.Y)
	return
}

//returns the normalized input vector.
func Normalize(v Vect) Vect {
	f := 1.0 / v.Length()
	return Vect{v.X * f, v.Y * f}
}

//dot product between two vectors.
func Dot(v1, v2 Vect) float64 {
	return (v1.X * v2.X) + (v1.Y * v2.Y)
}

//z component of the cross product of two vectors.
func Cross(a, b Vect) float64 {
	return (a.X * b.Y) - (a.Y * b.X)
}

//linear interpolation between two vectors by the given scalar
func Lerp(v1, v2 Vect, s float64) Vect {
	return Vect{
		v1.X + (v2.X-v1.X)*s,
		v1.Y + (v2.Y-v1.Y)*s,
	}
}

//Returns v rotated by 90 degrees
func Perp(v Vect) Vect {
	return Vect{-v.Y, v.X}
}

//Returns v rotated by -90 degrees.
//For an edge of a counter clockwise polygon this is the outward normal.
func RPerp(v Vect) Vect {
	return Vect{v.Y, -v.X}
}

//returns v rotated by angle radians.
func Rotate(v Vect, angle float64) Vect {
	sin, cos := math.Sincos(angle)
	return Vect{cos*v.X - sin*v.Y, sin*v.X + cos*v.Y}
}

func FromAngle(angle float64) Vect {
	sin, cos := math.Sincos(angle)
	return Vect{cos, sin}
}

//angle of v measured counter clockwise from the x axis, in (-π, π].
func Angle(v Vect) float64 {
	return math.Atan2(v.Y, v.X)
}

//signed angle that rotates a onto b, in (-π, π].
func AngleTo(a, b Vect) float64 {
	return math.Atan2(Cross(a, b), Dot(a, b))
}
