package physics

import (
	"cmp"
	"log"
	"math"
	"slices"

	"github.com/Emilinya/physics-engine/solver"
	"github.com/Emilinya/physics-engine/transform"
	"github.com/Emilinya/physics-engine/vect"
)

type collisionHandler func(sA Shape, dA ShapeData, sB Shape, dB ShapeData) (CollisionData, bool)

var collisionHandlers = [numShapes][numShapes]collisionHandler{
	ShapeKind_Square: [numShapes]collisionHandler{
		ShapeKind_Square: polygon2polygon,
		ShapeKind_NGon:   polygon2polygon,
		ShapeKind_Circle: polygon2circle,
	},
	ShapeKind_NGon: [numShapes]collisionHandler{
		ShapeKind_Square: polygon2polygon,
		ShapeKind_NGon:   polygon2polygon,
		ShapeKind_Circle: polygon2circle,
	},
	ShapeKind_Circle: [numShapes]collisionHandler{
		ShapeKind_Square: circle2polygon,
		ShapeKind_NGon:   circle2polygon,
		ShapeKind_Circle: circle2circle,
	},
}

func collide(sA Shape, dA ShapeData, sB Shape, dB ShapeData) (CollisionData, bool) {
	kA := sA.class().collisionKind()
	kB := sB.class().collisionKind()

	handler := collisionHandlers[kA][kB]
	if handler == nil {
		log.Printf("Error: no collision handler for %v and %v", kA, kB)
		return CollisionData{}, false
	}

	return handler(sA, dA, sB, dB)
}

//START COLLISION HANDLERS
func polygon2polygon(sA Shape, dA ShapeData, sB Shape, dB ShapeData) (CollisionData, bool) {
	vertsA := worldVertices(sA, dA)
	vertsB := worldVertices(sB, dB)

	axes := append(edgeNormals(vertsA), edgeNormals(vertsB)...)
	depth, axis, ok := findMSA(axes,
		func(n vect.Vect) projection { return projectVertices(vertsA, n) },
		func(n vect.Vect) projection { return projectVertices(vertsB, n) },
	)
	if !ok {
		return CollisionData{}, false
	}

	return newCollisionData(depth, orientFrom(axis, dA.Position, dB.Position)), true
}

func circle2polygon(sA Shape, dA ShapeData, sB Shape, dB ShapeData) (CollisionData, bool) {
	return ellipse2polyFunc(dA, worldVertices(sB, dB), dB)
}

func polygon2circle(sA Shape, dA ShapeData, sB Shape, dB ShapeData) (CollisionData, bool) {
	data, ok := ellipse2polyFunc(dB, worldVertices(sA, dA), dA)
	return data.Flipped(), ok
}

func circle2circle(sA Shape, dA ShapeData, sB Shape, dB ShapeData) (CollisionData, bool) {
	if isCircular(dA) && isCircular(dB) {
		return circle2circleQuery(dA.Position, dB.Position, 0.5*dA.Size.X, 0.5*dB.Size.X)
	}
	return ellipse2ellipseFunc(dA, dB)
}

//END COLLISION HANDLERS

func circle2circleQuery(p1, p2 vect.Vect, r1, r2 float64) (CollisionData, bool) {
	minDist := r1 + r2

	delta := vect.Sub(p1, p2)
	distSqr := delta.LengthSqr()

	if distSqr >= minDist*minDist {
		return CollisionData{}, false
	}

	dist := math.Sqrt(distSqr)

	norm := vect.Vector_X
	if dist != 0.0 {
		norm = vect.Mult(delta, 1.0/dist)
	}

	return newCollisionData(minDist-dist, norm), true
}

//SAT between an ellipse and a polygon. The candidate axes are the polygon's
//edge normals and the axis from the ellipse center to the nearest vertex.
func ellipse2polyFunc(ellipse ShapeData, verts Vertices, poly ShapeData) (CollisionData, bool) {
	axes := edgeNormals(verts)

	toVertex := vect.Sub(verts.Closest(ellipse.Position), ellipse.Position)
	if toVertex.LengthSqr() > 0 {
		axes = append(axes, vect.Normalize(toVertex))
	}

	depth, axis, ok := findMSA(axes,
		func(n vect.Vect) projection { return projectEllipse(ellipse, n) },
		func(n vect.Vect) projection { return projectVertices(verts, n) },
	)
	if !ok {
		return CollisionData{}, false
	}

	return newCollisionData(depth, orientFrom(axis, ellipse.Position, poly.Position)), true
}

//maps world points into a frame where the ellipse is the unit circle.
type ellipseFrame struct {
	xf transform.Transform
}

func newEllipseFrame(data ShapeData) ellipseFrame {
	return ellipseFrame{data.Transform()}
}

func (frame *ellipseFrame) point(p vect.Vect) vect.Vect {
	return vect.Mult(frame.xf.TransformVectInv(p), 2)
}

func (frame *ellipseFrame) dir(d vect.Vect) vect.Vect {
	return vect.Mult(frame.xf.TransformDirInv(d), 2)
}

//world point on the ellipse boundary at parameter t.
func ellipseBoundary(data ShapeData, t float64) vect.Vect {
	sin, cos := math.Sincos(t)
	local := vect.Vect{X: 0.5 * data.Size.X * cos, Y: 0.5 * data.Size.Y * sin}
	return vect.Add(data.Position, vect.Rotate(local, data.Rotation))
}

const (
	// Newton seeds spread evenly around the boundary, starting at 0.
	numEllipseSeeds = 16
	// Crossings closer than this are the same point.
	crossingTolerance = 1e-6
)

var ellipseSeeds = func() (seeds [numEllipseSeeds]float64) {
	for i := range seeds {
		seeds[i] = float64(i) * 2 * math.Pi / numEllipseSeeds
	}
	return
}()

//parameters t where the boundary of other crosses the boundary of self.
func ellipseIntersections(self, other ShapeData) []float64 {
	frame := newEllipseFrame(self)

	// other's boundary in self's unit frame is center + cos t·u + sin t·v
	center := frame.point(other.Position)
	u := frame.dir(vect.Rotate(vect.Vect{X: 0.5 * other.Size.X}, other.Rotation))
	v := frame.dir(vect.Rotate(vect.Vect{Y: 0.5 * other.Size.Y}, other.Rotation))

	fn := func(t float64) (float64, float64) {
		sin, cos := math.Sincos(t)
		q := vect.Add(center, vect.Add(vect.Mult(u, cos), vect.Mult(v, sin)))
		dq := vect.Add(vect.Mult(u, -sin), vect.Mult(v, cos))
		return q.LengthSqr() - 1, 2 * vect.Dot(q, dq)
	}

	roots := make([]float64, 0, len(ellipseSeeds))
	for _, seed := range ellipseSeeds {
		result := solver.Newton(seed, fn)
		if !result.Converged || math.IsNaN(result.Value) {
			continue
		}
		if f, _ := fn(result.Value); math.Abs(f) > 1e-6 {
			continue
		}

		t := math.Mod(result.Value, 2*math.Pi)
		if t < 0 {
			t += 2 * math.Pi
		}
		if !containsAngle(roots, t) {
			roots = append(roots, t)
		}
	}

	return roots
}

func containsAngle(angles []float64, t float64) bool {
	for _, a := range angles {
		d := math.Abs(a - t)
		if math.Min(d, 2*math.Pi-d) < 1e-6 {
			return true
		}
	}
	return false
}

//signed distance from p along dir to the ellipse boundary, nearest side.
func boundaryDistance(data ShapeData, p, dir vect.Vect) (float64, bool) {
	frame := newEllipseFrame(data)
	a := frame.point(p)
	b := frame.dir(dir)

	// |a + s·b|² = 1
	roots := solver.Quadratic(vect.Dot(b, b), 2*vect.Dot(a, b), vect.Dot(a, a)-1)
	if len(roots) == 0 {
		return 0, false
	}

	best := roots[0]
	for _, s := range roots[1:] {
		if math.Abs(s) < math.Abs(best) {
			best = s
		}
	}
	return best, true
}

//world points where the boundaries of a and b cross. Both boundaries are
//searched and the points are merged in a fixed order, so the result doesn't
//depend on the argument order.
func ellipseCrossings(a, b ShapeData) []vect.Vect {
	var candidates []vect.Vect
	for _, t := range ellipseIntersections(a, b) {
		candidates = append(candidates, ellipseBoundary(b, t))
	}
	for _, t := range ellipseIntersections(b, a) {
		candidates = append(candidates, ellipseBoundary(a, t))
	}

	slices.SortFunc(candidates, func(p, q vect.Vect) int {
		if c := cmp.Compare(p.X, q.X); c != 0 {
			return c
		}
		return cmp.Compare(p.Y, q.Y)
	})

	points := make([]vect.Vect, 0, len(candidates))
	for _, p := range candidates {
		if !containsPoint(points, p) {
			points = append(points, p)
		}
	}
	return points
}

func containsPoint(points []vect.Vect, p vect.Vect) bool {
	for _, q := range points {
		if vect.DistSqr(p, q) < crossingTolerance*crossingTolerance {
			return true
		}
	}
	return false
}

func ellipse2ellipseFunc(self, other ShapeData) (CollisionData, bool) {
	points := ellipseCrossings(self, other)
	if len(points) < 2 {
		return CollisionData{}, false
	}

	// more than two crossings, use the widest chord
	p0, p1 := points[0], points[1]
	widest := vect.DistSqr(p0, p1)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := vect.DistSqr(points[i], points[j]); d > widest {
				p0, p1, widest = points[i], points[j], d
			}
		}
	}

	contact := vect.Midpoint(p0, p1)
	normal := vect.Normalize(vect.RPerp(vect.Sub(p1, p0)))
	normal = orientFrom(normal, self.Position, other.Position)

	s1, ok1 := boundaryDistance(self, contact, normal)
	s2, ok2 := boundaryDistance(other, contact, normal)
	if !ok1 || !ok2 {
		log.Printf("Warning: ellipse contact point outside of ellipse")
		return newCollisionData(0, normal), true
	}

	return newCollisionData(math.Abs(s1-s2), normal), true
}
