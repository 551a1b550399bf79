package physics

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Emilinya/physics-engine/transform"
	"github.com/Emilinya/physics-engine/vect"
)

const (
	// Number of sides used to draw a circle.
	circleSides = 30
	// Polygons with at least this many sides collide like circles.
	ngonCircleThreshold = 10
)

//ShapeData is the placement of a shape, built from the live state of a body
//whenever a query needs it.
type ShapeData struct {
	/// World space center.
	Position vect.Vect
	/// Rotation in radians, any real value.
	Rotation float64
	/// Width and height, both positive.
	Size vect.Vect
}

func NewShapeData(pos vect.Vect, rot float64, size vect.Vect) ShapeData {
	return ShapeData{Position: pos, Rotation: rot, Size: size}
}

//maps the unit shape onto this placement.
func (data ShapeData) Transform() transform.Transform {
	return transform.NewTransform(data.Position, data.Rotation, data.Size)
}

// ShapeData is written as its transform. The rotation reads back
// normalized to (-π, π].
func (data ShapeData) MarshalJSON() ([]byte, error) {
	return json.Marshal(data.Transform())
}

func (data *ShapeData) UnmarshalJSON(b []byte) error {
	var xf transform.Transform
	if err := json.Unmarshal(b, &xf); err != nil {
		return err
	}
	data.Position = xf.Position
	data.Rotation = xf.Angle()
	data.Size = xf.Scale
	return nil
}

func (data ShapeData) Width() float64 {
	return data.Size.X
}

func (data ShapeData) Height() float64 {
	return data.Size.Y
}

//Shape is one of Square, NGon, Circle or Spring. Only the fields of the
//active kind are meaningful; use the constructors.
type Shape struct {
	Kind ShapeKind
	/// Number of sides of an NGon.
	Sides int
	/// Number of coils of a Spring.
	Coils int
	/// Thickness of a Spring's wire relative to its height.
	CoilDiameter float32
}

func Square() Shape {
	return Shape{Kind: ShapeKind_Square}
}

//Creates a regular polygon with the given number of sides.
//Panics if sides < 3.
func NGon(sides int) Shape {
	if sides < 3 {
		panic("NGon must have at least 3 sides.")
	}
	return Shape{Kind: ShapeKind_NGon, Sides: sides}
}

func Circle() Shape {
	return Shape{Kind: ShapeKind_Circle}
}

func Spring(coils int, coilDiameter float32) Shape {
	return Shape{Kind: ShapeKind_Spring, Coils: coils, CoilDiameter: coilDiameter}
}

func Triangle() Shape { return NGon(3) }
func Pentagon() Shape { return NGon(5) }
func Hexagon() Shape  { return NGon(6) }
func Heptagon() Shape { return NGon(7) }
func Octagon() Shape  { return NGon(8) }

func (shape Shape) String() string {
	text, err := shape.MarshalText()
	if err != nil {
		return fmt.Sprintf("Shape(%d)", shape.Kind)
	}
	return string(text)
}

func (shape Shape) class() shapeClass {
	switch shape.Kind {
	case ShapeKind_Square:
		return squareShape{}
	case ShapeKind_NGon:
		return ngonShape{sides: shape.Sides}
	case ShapeKind_Circle:
		return circleShape{}
	case ShapeKind_Spring:
		return springShape{coils: shape.Coils, coilDiameter: shape.CoilDiameter}
	}
	panic(fmt.Sprintf("unknown shape kind %d", shape.Kind))
}

// Returns the shape local vertices, counter clockwise in [-0.5, 0.5]².
func (shape Shape) GetVertices() [][2]float32 {
	return shape.class().GetVertices()
}

// Returns the axis aligned bounding box of the shape placed at data.
func (shape Shape) GetBoundingBox(data ShapeData) BoundingBox {
	return shape.class().boundingBox(data)
}

// Returns true if point lies inside the shape placed at data.
func (shape Shape) CollidesWithPoint(data ShapeData, point vect.Vect) bool {
	if pointDefinitelyOutside(data, point) {
		return false
	}
	return shape.class().testPoint(data, point)
}

// Returns true if the two shapes overlap.
func (shape Shape) CollidesWithShape(data ShapeData, other Shape, otherData ShapeData) bool {
	_, ok := shape.Collision(data, other, otherData)
	return ok
}

// Returns the penetration of the two shapes. The direction points from
// other toward shape, ok is false if the shapes don't overlap.
func (shape Shape) Collision(data ShapeData, other Shape, otherData ShapeData) (CollisionData, bool) {
	if !shape.GetBoundingBox(data).Intersects(other.GetBoundingBox(otherData)) {
		return CollisionData{}, false
	}
	return collide(shape, data, other, otherData)
}

//no point farther from the center than half the diagonal can be inside.
func pointDefinitelyOutside(data ShapeData, point vect.Vect) bool {
	maxRadius := math.Max(data.Size.X, data.Size.Y) / math.Sqrt2
	return vect.DistSqr(point, data.Position) > maxRadius*maxRadius
}

// Returns the vertices of shape placed at data in world space.
func worldVertices(shape Shape, data ShapeData) Vertices {
	xf := data.Transform()
	return collisionVertices(shape).Transform(xf)
}
