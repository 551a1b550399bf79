package physics

import (
	"fmt"
	"strings"

	"github.com/Emilinya/physics-engine/vect"
	"github.com/pkg/errors"
)

type ShapeKind int

const (
	ShapeKind_Square ShapeKind = iota
	ShapeKind_NGon
	ShapeKind_Circle
	ShapeKind_Spring
	numShapes = iota
)

func (kind ShapeKind) String() string {
	switch kind {
	case ShapeKind_Square:
		return "Square"
	case ShapeKind_NGon:
		return "NGon"
	case ShapeKind_Circle:
		return "Circle"
	case ShapeKind_Spring:
		return "Spring"
	default:
		return "Unknown"
	}
}

//per kind geometry. Collision only distinguishes the kinds returned by
//collisionKind, springs and many sided polygons borrow another kind's math.
type shapeClass interface {
	collisionKind() ShapeKind
	// Shape local vertices in [-0.5, 0.5]², counter clockwise.
	GetVertices() [][2]float32
	boundingBox(data ShapeData) BoundingBox
	// Exact point test, the quick reject has already been done.
	testPoint(data ShapeData, point vect.Vect) bool
}

var shapeNames = map[string]Shape{
	"square":   Square(),
	"circle":   Circle(),
	"triangle": Triangle(),
	"pentagon": Pentagon(),
	"hexagon":  Hexagon(),
	"heptagon": Heptagon(),
	"octagon":  Octagon(),
}

//ParseShape reads a shape name as used in scene files: one of square,
//circle, triangle, pentagon, hexagon, heptagon, octagon, "ngon:<sides>" or
//"spring:<coils>:<diameter>".
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if shape, ok := shapeNames[name]; ok {
		return shape, nil
	}

	switch {
	case strings.HasPrefix(name, "ngon:"):
		var sides int
		if _, err := fmt.Sscanf(name, "ngon:%d", &sides); err != nil {
			return Shape{}, errors.Wrapf(err, "invalid shape %q", name)
		}
		if sides < 3 {
			return Shape{}, errors.Errorf("invalid shape %q: need at least 3 sides", name)
		}
		return NGon(sides), nil
	case strings.HasPrefix(name, "spring:"):
		var coils int
		var diameter float32
		if _, err := fmt.Sscanf(name, "spring:%d:%g", &coils, &diameter); err != nil {
			return Shape{}, errors.Wrapf(err, "invalid shape %q", name)
		}
		if coils < 1 || diameter <= 0 || diameter >= 1 {
			return Shape{}, errors.Errorf("invalid shape %q: need coils >= 1 and 0 < diameter < 1", name)
		}
		return Spring(coils, diameter), nil
	}

	return Shape{}, errors.Errorf("unknown shape %q", name)
}

func (shape Shape) MarshalText() ([]byte, error) {
	switch shape.Kind {
	case ShapeKind_Square:
		return []byte("square"), nil
	case ShapeKind_Circle:
		return []byte("circle"), nil
	case ShapeKind_NGon:
		for name, named := range shapeNames {
			if named == shape {
				return []byte(name), nil
			}
		}
		return []byte(fmt.Sprintf("ngon:%d", shape.Sides)), nil
	case ShapeKind_Spring:
		return []byte(fmt.Sprintf("spring:%d:%g", shape.Coils, shape.CoilDiameter)), nil
	}
	return nil, errors.Errorf("unknown shape kind %d", shape.Kind)
}

func (shape *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*shape = parsed
	return nil
}
