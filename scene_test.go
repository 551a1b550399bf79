package physics

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Emilinya/physics-engine/vect"
)

func TestBuiltinScenes(t *testing.T) {
	names := SceneNames()
	for _, name := range []string{"bouncy-castle", "collision-test", "oscillator", "shapes", "spring-pendulum"} {
		if !slices.Contains(names, name) {
			t.Errorf("scene %q missing from %v", name, names)
		}
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			scene, err := BuiltinScene(name)
			if err != nil {
				t.Fatal(err)
			}
			space := NewSpace(DefaultConfig())
			entities, err := scene.Build(space)
			if err != nil {
				t.Fatal(err)
			}
			if want := len(scene.Anchors) + len(scene.Bodies); len(entities) != want {
				t.Errorf("%d named entities, want %d", len(entities), want)
			}
			if want := len(entities) + len(scene.Springs); len(space.Snapshot()) != want {
				t.Errorf("%d shapes, want %d", len(space.Snapshot()), want)
			}
			for i := 0; i < 60; i++ {
				space.Step(space.Config.Timestep)
			}
		})
	}

	if _, err := BuiltinScene("nope"); err == nil {
		t.Error("unknown scene loaded")
	}
}

func TestDecodeScene(t *testing.T) {
	scene, err := DecodeScene([]byte(`
name: test
gravity: 1.5
anchors:
  - {name: top, position: {x: 0, y: 2}}
bodies:
  - {name: ball, shape: circle, position: [0, 0], size: [0.5, 0.5], mass: 2, velocity: [1, 0]}
  - {name: wall, shape: "ngon:6", position: [3, 0], size: [1, 1], tangible: true}
springs:
  - {from: top, to: ball, damping: 0.2}
`))
	if err != nil {
		t.Fatal(err)
	}

	space := NewSpace(DefaultConfig())
	entities, err := scene.Build(space)
	if err != nil {
		t.Fatal(err)
	}
	if space.Config.Gravity != 1.5 {
		t.Errorf("gravity %v", space.Config.Gravity)
	}

	ball := space.PhysicsObject(entities["ball"])
	if ball == nil || ball.Mass != 2 || !vect.Equals(ball.Velocity, vect.Vect{X: 1}) {
		t.Errorf("ball %+v", ball)
	}
	if space.PhysicsObject(entities["wall"]) != nil {
		t.Error("massless body should be static")
	}

	var spring *ShapeState
	snapshot := space.Snapshot()
	for i := range snapshot {
		if snapshot[i].Spring {
			spring = &snapshot[i]
		}
	}
	if spring == nil {
		t.Fatal("no spring built")
	}
	// unset length starts at rest, unset height takes the default
	if !vect.ApproxEqual(spring.Data.Size.X, 2, 1e-12) || spring.Data.Size.Y != DefaultConf.Spring.Height {
		t.Errorf("spring size %v", spring.Data.Size)
	}
	if spring.Shape.Coils != DefaultConf.Spring.Coils {
		t.Errorf("spring shape %v", spring.Shape)
	}
}

func TestDecodeSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"shape", `bodies: [{name: a, shape: blob, size: [1, 1]}]`},
		{"size", `bodies: [{name: a, shape: square, size: [0, 1]}]`},
		{"mass", `bodies: [{name: a, shape: square, size: [1, 1], mass: -1}]`},
		{"duplicate", `anchors: [{name: a}, {name: a}]`},
		{"spring end", `anchors: [{name: a}]
springs: [{from: a, to: b}]`},
		{"spring loop", `anchors: [{name: a}]
springs: [{from: a, to: a}]`},
		{"yaml", `bodies: {`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeScene([]byte(tt.data)); err == nil {
				t.Errorf("%q decoded without error", tt.data)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "name: file\nbodies:\n  - {name: box, shape: square, position: [1, 1], size: [1, 1], mass: 1}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	scene, err := LoadScene(path)
	if err != nil {
		t.Fatal(err)
	}
	if scene.Name != "file" || len(scene.Bodies) != 1 || scene.Bodies[0].Shape != Square() {
		t.Errorf("loaded %+v", scene)
	}
}
