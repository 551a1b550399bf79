package transform

import (
	"math"

	"github.com/Emilinya/physics-engine/vect"
)

type Rotation struct {
	//sine and cosine.
	C, S float64
}

func NewRotation(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{C: c, S: s}
}

func (rot *Rotation) SetIdentity() {
	rot.S = 0
	rot.C = 1
}

func (rot *Rotation) SetAngle(angle float64) {
	rot.S, rot.C = math.Sincos(angle)
}

func (rot *Rotation) Angle() float64 {
	return math.Atan2(rot.S, rot.C)
}

//rotates the input vector.
func (rot *Rotation) RotateVect(v vect.Vect) vect.Vect {
	return vect.Vect{
		X: (v.X * rot.C) - (v.Y * rot.S),
		Y: (v.X * rot.S) + (v.Y * rot.C),
	}
}

func (rot *Rotation) RotateVectInv(v vect.Vect) vect.Vect {
	return vect.Vect{
		X: (v.X * rot.C) + (v.Y * rot.S),
		Y: (-v.X * rot.S) + (v.Y * rot.C),
	}
}

func RotateVect(v vect.Vect, r Rotation) vect.Vect {
	return r.RotateVect(v)
}

func RotateVectInv(v vect.Vect, r Rotation) vect.Vect {
	return r.RotateVectInv(v)
}

//Transform places a shape in the world: the unit shape is scaled to Scale,
//rotated by Rotation and moved to Position.
type Transform struct {
	Position vect.Vect
	Rotation
	Scale vect.Vect
}

func NewTransform(pos vect.Vect, angle float64, scale vect.Vect) Transform {
	return Transform{
		Position: pos,
		Rotation: NewRotation(angle),
		Scale:    scale,
	}
}

func (xf *Transform) SetIdentity() {
	xf.Position = vect.Vect{}
	xf.Rotation.SetIdentity()
	xf.Scale = vect.Vect{X: 1, Y: 1}
}

func (xf *Transform) Set(pos vect.Vect, rot float64, scale vect.Vect) {
	xf.Position = pos
	xf.SetAngle(rot)
	xf.Scale = scale
}

//scales, rotates and moves a shape local point into the world.
func (xf *Transform) TransformVect(v vect.Vect) vect.Vect {
	return vect.Add(xf.Position, xf.RotateVect(vect.Scale(v, xf.Scale)))
}

//maps a world point into the normalized shape local frame.
//the result lies in [-0.5, 0.5]² iff the point is inside the unit square.
func (xf *Transform) TransformVectInv(v vect.Vect) vect.Vect {
	return vect.Div(xf.RotateVectInv(vect.Sub(v, xf.Position)), xf.Scale)
}

//like TransformVect but for directions, translation is ignored.
func (xf *Transform) TransformDir(v vect.Vect) vect.Vect {
	return xf.RotateVect(vect.Scale(v, xf.Scale))
}

//like TransformVectInv but for directions, translation is ignored.
func (xf *Transform) TransformDirInv(v vect.Vect) vect.Vect {
	return vect.Div(xf.RotateVectInv(v), xf.Scale)
}
