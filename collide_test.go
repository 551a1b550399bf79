package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Emilinya/physics-engine/vect"
)

func approxCollision(t *testing.T, got CollisionData, depth float64, dir vect.Vect, eps float64) {
	t.Helper()
	// Depth is a float32
	if math.Abs(float64(got.Depth)-depth) > math.Max(eps, 1e-6) {
		t.Errorf("depth = %v, want %v", got.Depth, depth)
	}
	if !vect.ApproxEquals(got.Direction, dir, eps) {
		t.Errorf("direction = %v, want %v", got.Direction, dir)
	}
}

func TestEllipseCollision(t *testing.T) {
	data1 := NewShapeData(vect.Vect{}, math.Pi/4, vect.Vect{X: 2, Y: 1})
	data2 := NewShapeData(vect.Vect{X: 0.4, Y: -1.06}, -math.Pi/6, vect.Vect{X: 1, Y: 2})

	col, ok := Circle().Collision(data2, Circle(), data1)
	if !ok {
		t.Fatal("ellipses should collide")
	}
	approxCollision(t, col, 0.0133, vect.FromAngle(5.45997), 1e-3)

	data2.Position = vect.Vect{X: -1.36, Y: -1.45}
	if _, ok := Circle().Collision(data2, Circle(), data1); ok {
		t.Error("ellipses should not collide")
	}
}

func TestPentagonCircleCollision(t *testing.T) {
	pentagonData := NewShapeData(vect.Vect{}, math.Pi/4, vect.Vect{X: 2, Y: 1})
	circleData := NewShapeData(vect.Vect{X: 0.62, Y: -0.71}, -math.Pi/6, vect.Vect{X: 1, Y: 2})

	col, ok := Circle().Collision(circleData, Pentagon(), pentagonData)
	if !ok {
		t.Fatal("pentagon and circle should collide")
	}
	approxCollision(t, col, 0.011998, vect.Mult(vect.FromAngle(3*math.Pi/4), -1), 1e-3)

	flipped, ok := Pentagon().Collision(pentagonData, Circle(), circleData)
	if !ok {
		t.Fatal("collision is not symmetric")
	}
	approxCollision(t, flipped, float64(col.Depth), vect.Mult(col.Direction, -1), 1e-9)
}

func TestCircleCollision(t *testing.T) {
	a := NewShapeData(vect.Vect{}, 0, vect.Vect{X: 2, Y: 2})
	b := NewShapeData(vect.Vect{X: 1.5}, 0.3, vect.Vect{X: 1, Y: 1})

	// touching
	if _, ok := Circle().Collision(b, Circle(), a); ok {
		t.Error("touching circles should not collide")
	}

	b.Position = vect.Vect{X: 1.2, Y: 0}
	col, ok := Circle().Collision(b, Circle(), a)
	if !ok {
		t.Fatal("circles should collide")
	}
	approxCollision(t, col, 0.3, vect.Vector_X, 1e-9)

	b.Position = vect.Vect{X: 1.6}
	if _, ok := Circle().Collision(b, Circle(), a); ok {
		t.Error("circles should not collide")
	}
}

func TestSquareCollision(t *testing.T) {
	a := NewShapeData(vect.Vect{}, 0, vect.Vect{X: 1, Y: 1})
	b := NewShapeData(vect.Vect{X: 0.9, Y: 0.2}, 0, vect.Vect{X: 1, Y: 1})

	col, ok := Square().Collision(b, Square(), a)
	if !ok {
		t.Fatal("squares should collide")
	}
	approxCollision(t, col, 0.1, vect.Vector_X, 1e-9)

	b.Position = vect.Vect{X: 1.1}
	if _, ok := Square().Collision(b, Square(), a); ok {
		t.Error("squares should not collide")
	}

	// bounding boxes overlap, the shapes don't
	b = NewShapeData(vect.Vect{X: 1.1, Y: 1.1}, math.Pi/4, vect.Vect{X: 1, Y: 1})
	if _, ok := Square().Collision(b, Square(), a); ok {
		t.Error("diamond in the corner should not collide")
	}
}

func TestCollisionSymmetry(t *testing.T) {
	placements := [][2]ShapeData{
		{
			NewShapeData(vect.Vect{}, 0.1, vect.Vect{X: 1, Y: 1}),
			NewShapeData(vect.Vect{X: 0.8, Y: 0.15}, 0.7, vect.Vect{X: 0.9, Y: 0.6}),
		},
		{
			NewShapeData(vect.Vect{X: 1, Y: 1}, -0.4, vect.Vect{X: 2, Y: 0.5}),
			NewShapeData(vect.Vect{X: 1.3, Y: 1.5}, 1.1, vect.Vect{X: 0.7, Y: 0.8}),
		},
	}
	polygons := []Shape{Square(), Triangle(), Pentagon(), Hexagon(), Octagon(), Spring(5, 0.2)}

	for _, pair := range placements {
		for _, a := range polygons {
			for _, b := range polygons {
				ab, okAB := a.Collision(pair[0], b, pair[1])
				ba, okBA := b.Collision(pair[1], a, pair[0])
				if okAB != okBA {
					t.Errorf("%v vs %v: collides %v one way and %v the other", a, b, okAB, okBA)
					continue
				}
				if !okAB {
					continue
				}
				if math.Abs(float64(ab.Depth-ba.Depth)) > 1e-6 || !vect.ApproxEquals(ab.Direction, vect.Mult(ba.Direction, -1), 1e-9) {
					t.Errorf("%v vs %v: %+v is not the reverse of %+v", a, b, ab, ba)
				}
				if ab.Depth < 0 {
					t.Errorf("%v vs %v: negative depth %v", a, b, ab.Depth)
				}
			}
		}
	}
}

func TestEllipseCollisionSymmetry(t *testing.T) {
	a := NewShapeData(vect.Vect{X: -0.863, Y: 0.792}, -0.0549, vect.Vect{X: 1.501, Y: 0.787})
	b := NewShapeData(vect.Vect{X: -0.908, Y: 0.895}, -1.990, vect.Vect{X: 0.338, Y: 2.142})
	ab, okAB := Circle().Collision(a, Circle(), b)
	ba, okBA := Circle().Collision(b, Circle(), a)
	if !okAB || !okBA {
		t.Fatalf("crossing ellipses: collides %v one way and %v the other", okAB, okBA)
	}
	approxCollision(t, ab, float64(ba.Depth), vect.Mult(ba.Direction, -1), 1e-9)

	rnd := rand.New(rand.NewSource(1))
	randomData := func() ShapeData {
		return NewShapeData(
			vect.Vect{X: rnd.Float64() - 0.5, Y: rnd.Float64() - 0.5},
			(rnd.Float64()*2-1)*math.Pi,
			vect.Vect{X: 0.2 + 2*rnd.Float64(), Y: 0.2 + 2*rnd.Float64()},
		)
	}
	pairs := [][2]Shape{
		{Circle(), Circle()},
		{Circle(), NGon(12)},
		{NGon(12), NGon(12)},
		{Circle(), Pentagon()},
	}
	for _, pair := range pairs {
		for i := 0; i < 2000; i++ {
			dataA, dataB := randomData(), randomData()
			ab, okAB := pair[0].Collision(dataA, pair[1], dataB)
			ba, okBA := pair[1].Collision(dataB, pair[0], dataA)
			if okAB != okBA {
				t.Errorf("%v at %+v vs %v at %+v: collides %v one way and %v the other", pair[0], dataA, pair[1], dataB, okAB, okBA)
				continue
			}
			if !okAB {
				continue
			}
			if math.Abs(float64(ab.Depth-ba.Depth)) > 1e-6 || !vect.ApproxEquals(ab.Direction, vect.Mult(ba.Direction, -1), 1e-9) {
				t.Errorf("%v at %+v vs %v at %+v: %+v is not the reverse of %+v", pair[0], dataA, pair[1], dataB, ab, ba)
			}
		}
	}
}

// Boundaries that clearly cross must be reported as colliding.
func TestEllipseCrossingsFound(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := NewShapeData(vect.Vect{}, rnd.Float64()*math.Pi, vect.Vect{X: 0.5 + rnd.Float64(), Y: 0.5 + rnd.Float64()})
		b := NewShapeData(vect.Vect{X: rnd.Float64() - 0.5, Y: rnd.Float64() - 0.5}, rnd.Float64()*math.Pi, vect.Vect{X: 0.5 + rnd.Float64(), Y: 0.5 + rnd.Float64()})

		// the unit frame boundary is at |p|² = 0.25
		xf := a.Transform()
		inside, outside := false, false
		for k := 0; k < 360; k++ {
			q := xf.TransformVectInv(ellipseBoundary(b, float64(k)*math.Pi/180)).LengthSqr()
			inside = inside || q < 0.16
			outside = outside || q > 0.36
		}
		if !inside || !outside {
			continue
		}
		if _, ok := Circle().Collision(a, Circle(), b); !ok {
			t.Errorf("%+v and %+v cross but don't collide", a, b)
		}
		if points := ellipseCrossings(a, b); len(points) < 2 {
			t.Errorf("%+v and %+v: found crossings %v", a, b, points)
		}
	}
}

// Collision direction points away from the other shape.
func TestCollisionDirection(t *testing.T) {
	other := NewShapeData(vect.Vect{}, 0, vect.Vect{X: 1, Y: 1})
	for _, shape := range []Shape{Square(), Pentagon(), Circle()} {
		for _, dir := range []vect.Vect{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			data := NewShapeData(vect.Mult(dir, 0.8), 0, vect.Vect{X: 1, Y: 1})
			col, ok := shape.Collision(data, Square(), other)
			if !ok {
				t.Errorf("%v at %v should collide", shape, data.Position)
				continue
			}
			if vect.Dot(col.Direction, dir) <= 0 {
				t.Errorf("%v at %v: direction %v points toward the other shape", shape, data.Position, col.Direction)
			}
		}
	}
}

func TestManySidedNGonCollidesAsCircle(t *testing.T) {
	a := NewShapeData(vect.Vect{}, 0, vect.Vect{X: 1, Y: 1})
	b := NewShapeData(vect.Vect{X: 0.7, Y: 0.3}, 0.2, vect.Vect{X: 1, Y: 1})

	want, ok := Circle().Collision(a, Circle(), b)
	if !ok {
		t.Fatal("circles should collide")
	}
	for _, sides := range []int{10, 12, 20} {
		got, ok := NGon(sides).Collision(a, Circle(), b)
		if !ok || got != want {
			t.Errorf("NGon(%d) = %+v %v, want %+v", sides, got, ok, want)
		}
	}

	// below the threshold the polygon itself is used
	if NGon(9).class().collisionKind() != ShapeKind_NGon {
		t.Error("NGon(9) should collide as a polygon")
	}
}

func TestSpringCollidesAsSquare(t *testing.T) {
	a := NewShapeData(vect.Vect{}, 0.3, vect.Vect{X: 2, Y: 0.2})
	b := NewShapeData(vect.Vect{X: 0.5, Y: 0.1}, 0, vect.Vect{X: 0.5, Y: 0.5})

	want, okWant := Square().Collision(a, Pentagon(), b)
	got, okGot := Spring(10, 0.1).Collision(a, Pentagon(), b)
	if okWant != okGot || got != want {
		t.Errorf("spring = %+v %v, square = %+v %v", got, okGot, want, okWant)
	}
}

func TestEllipseContainment(t *testing.T) {
	outer := NewShapeData(vect.Vect{}, 0, vect.Vect{X: 4, Y: 2})
	inner := NewShapeData(vect.Vect{X: 0.1}, 0.2, vect.Vect{X: 1, Y: 0.5})

	// no boundary crossing means no contact
	if _, ok := Circle().Collision(inner, Circle(), outer); ok {
		t.Error("contained ellipse should not report a collision")
	}
}
