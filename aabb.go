package physics

import (
	"math"

	"github.com/Emilinya/physics-engine/vect"
	"github.com/golang/geo/r2"
)

//axis aligned bounding box.
type BoundingBox struct {
	r2.Rect
}

func toPoint(v vect.Vect) r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

func fromPoint(p r2.Point) vect.Vect {
	return vect.Vect{X: p.X, Y: p.Y}
}

// Creates a box of the given size centered on center.
func NewBoundingBox(center, size vect.Vect) BoundingBox {
	return BoundingBox{r2.RectFromCenterSize(toPoint(center), toPoint(size))}
}

// Creates the smallest box holding every point.
func BoundingBoxFromPoints(points ...vect.Vect) BoundingBox {
	pts := make([]r2.Point, len(points))
	for i, p := range points {
		pts[i] = toPoint(p)
	}
	return BoundingBox{r2.RectFromPoints(pts...)}
}

//lower left corner.
func (bb BoundingBox) Min() vect.Vect {
	return fromPoint(bb.Lo())
}

//upper right corner.
func (bb BoundingBox) Max() vect.Vect {
	return fromPoint(bb.Hi())
}

//returns the center of the box
func (bb BoundingBox) CenterVect() vect.Vect {
	return fromPoint(bb.Center())
}

func (bb BoundingBox) Width() float64 {
	return bb.X.Length()
}

func (bb BoundingBox) Height() float64 {
	return bb.Y.Length()
}

func (bb BoundingBox) Valid() bool {
	return !bb.IsEmpty()
}

//returns if v is contained inside this box, edges included.
func (bb BoundingBox) Contains(v vect.Vect) bool {
	return bb.ContainsPoint(toPoint(v))
}

//returns if the boxes overlap on both axes. Boxes that only touch do not.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.X.Lo < other.X.Hi && other.X.Lo < bb.X.Hi &&
		bb.Y.Lo < other.Y.Hi && other.Y.Lo < bb.Y.Hi
}

//returns a box that holds both a and b.
func Combine(a, b BoundingBox) BoundingBox {
	return BoundingBox{a.Union(b.Rect)}
}

//bounding box of a rotated rectangle.
func squareBoundingBox(data ShapeData) BoundingBox {
	if math.Abs(data.Rotation) < 1e-6 {
		return NewBoundingBox(data.Position, data.Size)
	}

	sin, cos := math.Sincos(data.Rotation)
	sin, cos = math.Abs(sin), math.Abs(cos)
	w, h := data.Size.X, data.Size.Y
	return NewBoundingBox(data.Position, vect.Vect{
		X: w*cos + h*sin,
		Y: w*sin + h*cos,
	})
}

//bounding box of a rotated ellipse.
func circleBoundingBox(data ShapeData) BoundingBox {
	w, h := data.Size.X, data.Size.Y
	if vect.ApproxEqual(w, h, 1e-6) {
		return NewBoundingBox(data.Position, data.Size)
	}

	sin, cos := math.Sincos(data.Rotation)
	return NewBoundingBox(data.Position, vect.Vect{
		X: math.Hypot(w*cos, h*sin),
		Y: math.Hypot(w*sin, h*cos),
	})
}

//bounding box from the transformed vertices, slow but works for any polygon.
func vertexBoundingBox(verts Vertices, data ShapeData) BoundingBox {
	return BoundingBoxFromPoints(verts.Transform(data.Transform())...)
}
