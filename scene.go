package physics

import (
	"embed"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/Emilinya/physics-engine/vect"
	"github.com/mlange-42/ark/ecs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed scenes/*.yaml
var builtinScenes embed.FS

//Scene describes the initial state of a simulation. Springs refer to
//anchors and bodies by name.
type Scene struct {
	Name string `yaml:"name"`
	// Overrides the configured gravity when set.
	Gravity *float64    `yaml:"gravity,omitempty"`
	Anchors []AnchorDef `yaml:"anchors,omitempty"`
	Bodies  []BodyDef   `yaml:"bodies,omitempty"`
	Springs []SpringDef `yaml:"springs,omitempty"`
}

type AnchorDef struct {
	Name     string    `yaml:"name"`
	Position vect.Vect `yaml:"position"`
}

type BodyDef struct {
	Name     string    `yaml:"name"`
	Shape    Shape     `yaml:"shape"`
	Position vect.Vect `yaml:"position"`
	Size     vect.Vect `yaml:"size"`
	Rotation float64   `yaml:"rotation,omitempty"`
	// 0 makes a static shape.
	Mass     float64   `yaml:"mass,omitempty"`
	Velocity vect.Vect `yaml:"velocity,omitempty"`
	Tangible bool      `yaml:"tangible,omitempty"`
}

//Unset fields take the configured spring defaults, an unset length makes
//the spring start at rest.
type SpringDef struct {
	From           string   `yaml:"from"`
	To             string   `yaml:"to"`
	SpringConstant *float64 `yaml:"spring_constant,omitempty"`
	Damping        *float64 `yaml:"damping,omitempty"`
	Length         *float64 `yaml:"length,omitempty"`
	Height         *float64 `yaml:"height,omitempty"`
}

func (shape Shape) MarshalYAML() (interface{}, error) {
	text, err := shape.MarshalText()
	return string(text), err
}

func (shape *Shape) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return shape.UnmarshalText([]byte(name))
}

// Names of the scenes that ship with the package.
func SceneNames() []string {
	entries, err := builtinScenes.ReadDir("scenes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Returns one of the scenes listed by SceneNames.
func BuiltinScene(name string) (*Scene, error) {
	data, err := builtinScenes.ReadFile(path.Join("scenes", name+".yaml"))
	if err != nil {
		return nil, errors.Errorf("unknown scene %q, have %s", name, strings.Join(SceneNames(), ", "))
	}
	return DecodeScene(data)
}

// LoadScene reads a YAML scene file.
func LoadScene(filename string) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	scene, err := DecodeScene(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", filename)
	}
	return scene, nil
}

func DecodeScene(data []byte) (*Scene, error) {
	scene := &Scene{}
	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	return scene, scene.Validate()
}

func (scene *Scene) Validate() error {
	names := map[string]bool{}
	addName := func(name string) error {
		if name == "" {
			return nil
		}
		if names[name] {
			return errors.Errorf("duplicate name %q", name)
		}
		names[name] = true
		return nil
	}

	for _, anchor := range scene.Anchors {
		if err := addName(anchor.Name); err != nil {
			return err
		}
	}
	for _, body := range scene.Bodies {
		if err := addName(body.Name); err != nil {
			return err
		}
		if body.Size.X <= 0 || body.Size.Y <= 0 {
			return errors.Errorf("body %q: size must be positive, got %v", body.Name, body.Size)
		}
		if body.Mass < 0 {
			return errors.Errorf("body %q: mass must not be negative, got %v", body.Name, body.Mass)
		}
	}
	for i, spring := range scene.Springs {
		if !names[spring.From] || !names[spring.To] {
			return errors.Errorf("spring %d: unknown end %q or %q", i, spring.From, spring.To)
		}
		if spring.From == spring.To {
			return errors.Errorf("spring %d: both ends are %q", i, spring.From)
		}
	}
	return nil
}

// Adds the scene to space and returns its entities by name.
func (scene *Scene) Build(space *Space) (map[string]ecs.Entity, error) {
	if scene.Gravity != nil {
		space.Config.Gravity = *scene.Gravity
	}

	entities := map[string]ecs.Entity{}
	for _, anchor := range scene.Anchors {
		entities[anchor.Name] = space.AddAnchor(anchor.Position)
	}

	for _, body := range scene.Bodies {
		data := NewShapeData(body.Position, body.Rotation, body.Size)
		if body.Mass == 0 {
			entities[body.Name] = space.AddShape(body.Shape, data, body.Tangible)
			continue
		}
		e := space.AddBody(body.Shape, data, body.Mass, body.Tangible)
		space.PhysicsObject(e).Velocity = body.Velocity
		entities[body.Name] = e
	}

	defaults := space.Config.Spring
	for i, def := range scene.Springs {
		e1, e2 := entities[def.From], entities[def.To]
		data1, _ := space.ShapeData(e1)
		data2, _ := space.ShapeData(e2)

		force := SpringForce{
			SpringConstant:    valueOr(def.SpringConstant, defaults.SpringConstant),
			Damping:           valueOr(def.Damping, defaults.Damping),
			EquilibriumLength: valueOr(def.Length, vect.Dist(data1.Position, data2.Position)),
		}
		if _, err := space.AddSpring(e1, e2, force, valueOr(def.Height, defaults.Height)); err != nil {
			return entities, errors.Wrapf(err, "spring %d", i)
		}
	}

	return entities, nil
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
