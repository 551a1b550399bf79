package physics

import (
	"log"
	"slices"
	"time"

	"github.com/Emilinya/physics-engine/vect"
	"github.com/mlange-42/ark/ecs"
	"github.com/pkg/errors"
)

// Components stored in the Space's world.

type Position struct {
	vect.Vect
}

type Rotation struct {
	Angle float64
}

type Size struct {
	Width, Height float64
}

// Marks a shape that takes part in collision response.
type Tangible struct{}

// The two bodies a spring entity hangs between.
type SpringLink struct {
	Entity1, Entity2 ecs.Entity
}

const anchorSize = 0.05

//Space owns the simulation state and runs it one fixed step at a time.
//Each step runs the forces, the integrator, the spring resync and the energy
//update in that order.
type Space struct {
	Config Config

	world ecs.World

	positions *ecs.Map[Position]
	rotations *ecs.Map[Rotation]
	sizes     *ecs.Map[Size]
	shapes    *ecs.Map[Shape]
	physics   *ecs.Map[PhysicsObject]
	springs   *ecs.Map[SpringForce]
	links     *ecs.Map[SpringLink]
	tangible  *ecs.Map[Tangible]

	shapeMap  *ecs.Map4[Shape, Position, Rotation, Size]
	bodyMap   *ecs.Map5[Shape, Position, Rotation, Size, PhysicsObject]
	springMap *ecs.Map6[Shape, Position, Rotation, Size, SpringForce, SpringLink]

	bodyFilter   *ecs.Filter1[Position]
	springFilter *ecs.Filter2[SpringForce, SpringLink]
	shapeFilter  *ecs.Filter4[Shape, Position, Rotation, Size]

	energy Energy
	time   float64
	primed bool

	StepTime time.Duration
}

func NewSpace(conf Config) *Space {
	space := &Space{
		Config: conf,
		world:  ecs.NewWorld(),
	}
	w := &space.world

	space.positions = ecs.NewMap[Position](w)
	space.rotations = ecs.NewMap[Rotation](w)
	space.sizes = ecs.NewMap[Size](w)
	space.shapes = ecs.NewMap[Shape](w)
	space.physics = ecs.NewMap[PhysicsObject](w)
	space.springs = ecs.NewMap[SpringForce](w)
	space.links = ecs.NewMap[SpringLink](w)
	space.tangible = ecs.NewMap[Tangible](w)

	space.shapeMap = ecs.NewMap4[Shape, Position, Rotation, Size](w)
	space.bodyMap = ecs.NewMap5[Shape, Position, Rotation, Size, PhysicsObject](w)
	space.springMap = ecs.NewMap6[Shape, Position, Rotation, Size, SpringForce, SpringLink](w)

	space.bodyFilter = ecs.NewFilter1[Position](w)
	space.springFilter = ecs.NewFilter2[SpringForce, SpringLink](w)
	space.shapeFilter = ecs.NewFilter4[Shape, Position, Rotation, Size](w)

	space.energy = Energy{Tau: conf.EnergySmoothing}
	return space
}

// Adds a fixed point springs can hang from.
func (space *Space) AddAnchor(pos vect.Vect) ecs.Entity {
	return space.shapeMap.NewEntity(
		&Shape{Kind: ShapeKind_Circle},
		&Position{pos},
		&Rotation{},
		&Size{anchorSize, anchorSize},
	)
}

// Adds a moving body. Panics if mass is not positive.
func (space *Space) AddBody(shape Shape, data ShapeData, mass float64, tangible bool) ecs.Entity {
	obj := NewPhysicsObject(mass)
	e := space.bodyMap.NewEntity(
		&shape,
		&Position{data.Position},
		&Rotation{data.Rotation},
		&Size{data.Size.X, data.Size.Y},
		obj,
	)
	if tangible {
		space.tangible.Add(e, &Tangible{})
	}
	space.primed = false
	return e
}

// Adds a shape that never moves, such as a floor.
func (space *Space) AddShape(shape Shape, data ShapeData, tangible bool) ecs.Entity {
	e := space.shapeMap.NewEntity(
		&shape,
		&Position{data.Position},
		&Rotation{data.Rotation},
		&Size{data.Size.X, data.Size.Y},
	)
	if tangible {
		space.tangible.Add(e, &Tangible{})
	}
	return e
}

// Connects two bodies or anchors with a spring drawn height units thick.
func (space *Space) AddSpring(e1, e2 ecs.Entity, force SpringForce, height float64) (ecs.Entity, error) {
	for _, e := range [...]ecs.Entity{e1, e2} {
		if !space.world.Alive(e) || !space.positions.Has(e) {
			return ecs.Entity{}, errors.Errorf("spring end %v has no position", e)
		}
		if space.links.Has(e) {
			return ecs.Entity{}, errors.Errorf("spring end %v is a spring", e)
		}
	}
	if force.SpringConstant < 0 || force.Damping < 0 || force.EquilibriumLength < 0 {
		return ecs.Entity{}, errors.Errorf("invalid spring %+v", force)
	}

	data := ShapeData{Size: vect.Vect{X: 0, Y: height}}
	ResyncSpring(&data, space.positions.Get(e1).Vect, space.positions.Get(e2).Vect)

	conf := space.Config.Spring
	shape := Spring(conf.Coils, conf.CoilDiameter)
	e := space.springMap.NewEntity(
		&shape,
		&Position{data.Position},
		&Rotation{data.Rotation},
		&Size{data.Size.X, data.Size.Y},
		&force,
		&SpringLink{e1, e2},
	)
	space.primed = false
	return e, nil
}

// Moves an anchor or static shape. Returns false for bodies and springs,
// which the simulation moves.
func (space *Space) MoveAnchor(e ecs.Entity, pos vect.Vect) bool {
	if !space.world.Alive(e) || !space.positions.Has(e) || space.physics.Has(e) || space.links.Has(e) {
		return false
	}
	space.positions.Get(e).Vect = pos
	return true
}

// Removes an entity. Springs attached to it are removed on the next step.
func (space *Space) RemoveEntity(e ecs.Entity) {
	if space.world.Alive(e) {
		space.world.RemoveEntity(e)
		space.primed = false
	}
}

func (space *Space) Alive(e ecs.Entity) bool {
	return space.world.Alive(e)
}

// Returns the placement of an entity's shape.
func (space *Space) ShapeData(e ecs.Entity) (ShapeData, bool) {
	if !space.world.Alive(e) || !space.positions.Has(e) {
		return ShapeData{}, false
	}
	data := ShapeData{Position: space.positions.Get(e).Vect}
	if space.rotations.Has(e) {
		data.Rotation = space.rotations.Get(e).Angle
	}
	if space.sizes.Has(e) {
		size := space.sizes.Get(e)
		data.Size = vect.Vect{X: size.Width, Y: size.Height}
	}
	return data, true
}

// Returns the physics state of a body, nil for anchors and static shapes.
func (space *Space) PhysicsObject(e ecs.Entity) *PhysicsObject {
	if !space.world.Alive(e) || !space.physics.Has(e) {
		return nil
	}
	return space.physics.Get(e)
}

// Time simulated so far, skipped steps excluded.
func (space *Space) Time() float64 {
	return space.time
}

// Returns the smoothed energy of the system.
func (space *Space) Energy() Energy {
	return space.energy
}

//state of one step, dense arrays indexed by body.
type stepState struct {
	bodies    []ecs.Entity
	index     map[ecs.Entity]int
	positions []vect.Vect
	objects   []*PhysicsObject

	springs        []SpringConnection
	springEntities []ecs.Entity

	colliders []Collider
}

//index of a body, -1 if it isn't one.
func (state *stepState) bodyIndex(e ecs.Entity) int {
	if i, ok := state.index[e]; ok {
		return i
	}
	return -1
}

func sortEntities(entities []ecs.Entity) {
	slices.SortFunc(entities, func(a, b ecs.Entity) int {
		return int(a.ID()) - int(b.ID())
	})
}

//removes springs whose ends no longer exist.
func (space *Space) removeDanglingSprings() {
	var dangling []ecs.Entity

	query := space.springFilter.Query()
	for query.Next() {
		_, link := query.Get()
		for _, end := range [...]ecs.Entity{link.Entity1, link.Entity2} {
			if !space.world.Alive(end) || !space.positions.Has(end) {
				dangling = append(dangling, query.Entity())
				break
			}
		}
	}

	for _, e := range dangling {
		log.Printf("Warning: spring %v is connected to a removed body, removing it", e)
		space.world.RemoveEntity(e)
	}
}

//gathers the world into dense arrays. No entities may be added or removed
//while the state is in use, objects point into the world's storage.
func (space *Space) gather() *stepState {
	state := &stepState{index: map[ecs.Entity]int{}}

	query := space.bodyFilter.Query()
	for query.Next() {
		e := query.Entity()
		if space.links.Has(e) {
			continue
		}
		state.bodies = append(state.bodies, e)
	}
	sortEntities(state.bodies)

	state.positions = make([]vect.Vect, len(state.bodies))
	state.objects = make([]*PhysicsObject, len(state.bodies))
	for i, e := range state.bodies {
		state.index[e] = i
		state.positions[i] = space.positions.Get(e).Vect
		if space.physics.Has(e) {
			state.objects[i] = space.physics.Get(e)
		}
	}

	springQuery := space.springFilter.Query()
	for springQuery.Next() {
		state.springEntities = append(state.springEntities, springQuery.Entity())
	}
	sortEntities(state.springEntities)
	for _, e := range state.springEntities {
		link := space.links.Get(e)
		state.springs = append(state.springs, SpringConnection{
			SpringForce: *space.springs.Get(e),
			Connection:  Connection{Body1: state.bodyIndex(link.Entity1), Body2: state.bodyIndex(link.Entity2)},
		})
	}

	state.colliders = space.colliders(state)
	return state
}

func (space *Space) colliders(state *stepState) []Collider {
	var entities []ecs.Entity
	query := space.shapeFilter.Query()
	for query.Next() {
		e := query.Entity()
		if space.tangible.Has(e) {
			entities = append(entities, e)
		}
	}
	sortEntities(entities)

	colliders := make([]Collider, 0, len(entities))
	for _, e := range entities {
		data, _ := space.ShapeData(e)
		colliders = append(colliders, Collider{Shape: *space.shapes.Get(e), Data: data, Body: state.bodyIndex(e)})
	}
	return colliders
}

func (space *Space) forces(state *stepState) ForceModel {
	g := space.Config.Gravity
	stiffness := space.Config.CollisionStiffness
	return func(positions []vect.Vect, objects []*PhysicsObject) {
		ApplyGravity(objects, g)
		ApplySpringForce(state.springs, positions, objects)
		if stiffness > 0 {
			ApplyCollisionForce(state.colliders, positions, objects, stiffness)
		}
	}
}

// Advances the simulation by dt. Returns false if the step was too long and
// got skipped.
func (space *Space) Step(dt float64) bool {
	// don't step if the timestep is 0!
	if dt == 0 {
		return true
	}

	stepStart := time.Now()

	space.removeDanglingSprings()
	state := space.gather()
	forces := space.forces(state)

	integrator := space.Config.Integrator
	if !space.primed {
		integrator.Prime(state.positions, state.objects, forces)
		space.primed = true
	}

	ok := integrator.StepLimited(dt, space.Config.MaxStep, state.positions, state.objects, forces)
	if ok {
		space.time += dt
	}

	for i, e := range state.bodies {
		space.positions.Get(e).Vect = state.positions[i]
	}

	for i, e := range state.springEntities {
		spring := state.springs[i]
		if !spring.Valid(len(state.positions)) {
			continue
		}
		data, _ := space.ShapeData(e)
		ResyncSpring(&data, state.positions[spring.Body1], state.positions[spring.Body2])
		space.positions.Get(e).Vect = data.Position
		space.rotations.Get(e).Angle = data.Rotation
		space.sizes.Get(e).Width = data.Size.X
	}

	CalculateTotalEnergy(&space.energy, dt, state.positions, state.objects, state.springs, space.Config.Gravity)

	space.StepTime = time.Since(stepStart)
	return ok
}

// Returns the topmost shape containing point.
func (space *Space) BodyAt(point vect.Vect) (ecs.Entity, bool) {
	var hits []ecs.Entity
	query := space.shapeFilter.Query()
	for query.Next() {
		shape, pos, rot, size := query.Get()
		data := ShapeData{pos.Vect, rot.Angle, vect.Vect{X: size.Width, Y: size.Height}}
		if shape.CollidesWithPoint(data, point) {
			hits = append(hits, query.Entity())
		}
	}
	if len(hits) == 0 {
		return ecs.Entity{}, false
	}
	sortEntities(hits)
	return hits[len(hits)-1], true
}

// Returns every pair of tangible shapes that currently overlap.
func (space *Space) CollidingPairs() [][2]ecs.Entity {
	var entities []ecs.Entity
	query := space.shapeFilter.Query()
	for query.Next() {
		if e := query.Entity(); space.tangible.Has(e) {
			entities = append(entities, e)
		}
	}
	sortEntities(entities)

	colliders := make([]Collider, len(entities))
	for i, e := range entities {
		data, _ := space.ShapeData(e)
		colliders[i] = Collider{Shape: *space.shapes.Get(e), Data: data, Body: -1}
	}

	var pairs [][2]ecs.Entity
	for _, arb := range FindCollisions(colliders, nil) {
		pairs = append(pairs, [2]ecs.Entity{entities[arb.A], entities[arb.B]})
	}
	return pairs
}

//ShapeState is a copy of one drawable entity.
type ShapeState struct {
	ID       uint32
	Shape    Shape
	Data     ShapeData
	Velocity vect.Vect
	Mass     float64 `json:",omitempty"`
	Spring   bool    `json:",omitempty"`
	Tangible bool    `json:",omitempty"`
}

// Returns a copy of every shape, ordered by entity.
func (space *Space) Snapshot() []ShapeState {
	var entities []ecs.Entity
	query := space.shapeFilter.Query()
	for query.Next() {
		entities = append(entities, query.Entity())
	}
	sortEntities(entities)

	states := make([]ShapeState, len(entities))
	for i, e := range entities {
		data, _ := space.ShapeData(e)
		states[i] = ShapeState{
			ID:       e.ID(),
			Shape:    *space.shapes.Get(e),
			Data:     data,
			Spring:   space.links.Has(e),
			Tangible: space.tangible.Has(e),
		}
		if obj := space.PhysicsObject(e); obj != nil {
			states[i].Velocity = obj.Velocity
			states[i].Mass = obj.Mass
		}
	}
	return states
}
