package vect

import (
	"encoding/json"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

type addTest struct {
	in1, in2 Vect
	out      Vect
}

var addTests = []addTest{
	{Vect{0, 0}, Vect{0, 0}, Vect{0, 0}},
	{Vect{0, 1}, Vect{0, 0}, Vect{0, 1}},
	{Vect{1, 0}, Vect{0, 0}, Vect{1, 0}},
	{Vect{1, 2}, Vect{0, 0}, Vect{1, 2}},
	{Vect{0, 0}, Vect{1, 2}, Vect{1, 2}},
	{Vect{2, 4}, Vect{1, 3}, Vect{3, 7}},
	{Vect{3, 1}, Vect{4, 2}, Vect{7, 3}},
	{Vect{5, 5}, Vect{2, 2}, Vect{7, 7}},
}

func TestAdd(t *testing.T) {
	for _, at := range addTests {
		v := Add(at.in1, at.in2)
		if !Equals(at.out, v) {
			t.Errorf("Add(%v, %v) = %v, want %v.", at.in1, at.in2, v, at.out)
		}
	}
}

type minMaxTest struct {
	in1, in2 Vect
	min, max Vect
}

var minMaxTests = []minMaxTest{
	{Vect{0, 0}, Vect{0, 0}, Vect{0, 0}, Vect{0, 0}},
	{Vect{1, 2}, Vect{9, 9}, Vect{1, 2}, Vect{9, 9}},
	{Vect{9, 9}, Vect{1, 2}, Vect{1, 2}, Vect{9, 9}},
	{Vect{5, 2}, Vect{1, 4}, Vect{1, 2}, Vect{5, 4}},
	{Vect{9, 6}, Vect{7, 8}, Vect{7, 6}, Vect{9, 8}},
}

func TestMinMax(t *testing.T) {
	for _, at := range minMaxTests {
		if v := Min(at.in1, at.in2); !Equals(at.min, v) {
			t.Errorf("Min(%v, %v) = %v, want %v.", at.in1, at.in2, v, at.min)
		}
		if v := Max(at.in1, at.in2); !Equals(at.max, v) {
			t.Errorf("Max(%v, %v) = %v, want %v.", at.in1, at.in2, v, at.max)
		}
	}
}

type distTest struct {
	in1, in2 Vect
	out      float64
}

var distTests = []distTest{
	{Vect{0, 0}, Vect{0, 0}, 0},
	{Vect{0, 2}, Vect{0, 0}, 2},
	{Vect{2, 0}, Vect{0, 0}, 2},
	{Vect{0, 0}, Vect{4, 0}, 4},
	{Vect{1, 1}, Vect{0, 0}, math.Sqrt(2)},
	{Vect{1, 1}, Vect{2, 2}, math.Sqrt(2)},
	{Vect{-1, 0}, Vect{2, 4}, 5},
}

func TestDist(t *testing.T) {
	for _, at := range distTests {
		v := Dist(at.in1, at.in2)
		if !ApproxEqual(at.out, v, 1e-12) {
			t.Errorf("Dist(%v, %v) = %v, want %v.", at.in1, at.in2, v, at.out)
		}
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vect
		angle float64
		out   Vect
	}{
		{"quarter turn", Vect{1, 0}, math.Pi / 2, Vect{0, 1}},
		{"half turn", Vect{1, 2}, math.Pi, Vect{-1, -2}},
		{"negative", Vect{0, 1}, -math.Pi / 2, Vect{1, 0}},
		{"full turn", Vect{3, -4}, 2 * math.Pi, Vect{3, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := Rotate(tt.in, tt.angle); !ApproxEquals(v, tt.out, 1e-12) {
				t.Errorf("Rotate(%v, %v) = %v, want %v", tt.in, tt.angle, v, tt.out)
			}
		})
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		a, b Vect
		out  float64
	}{
		{Vector_X, Vector_Y, math.Pi / 2},
		{Vector_Y, Vector_X, -math.Pi / 2},
		{Vector_X, Vect{-1, 0}, math.Pi},
		{Vector_X, Vect{1, 1}, math.Pi / 4},
	}
	for _, tt := range tests {
		if v := AngleTo(tt.a, tt.b); !ApproxEqual(v, tt.out, 1e-12) {
			t.Errorf("AngleTo(%v, %v) = %v, want %v", tt.a, tt.b, v, tt.out)
		}
	}
}

func TestPerpendiculars(t *testing.T) {
	edge := Vect{1, 0}
	if v := Perp(edge); !Equals(v, Vect{0, 1}) {
		t.Errorf("Perp(%v) = %v", edge, v)
	}
	if v := RPerp(edge); !Equals(v, Vect{0, -1}) {
		t.Errorf("RPerp(%v) = %v", edge, v)
	}
}

func TestLerp(t *testing.T) {
	v := Lerp(Vect{0, 0}, Vect{2, 4}, 0.25)
	if !ApproxEquals(v, Vect{0.5, 1}, 1e-12) {
		t.Errorf("Lerp = %v, want [0.5 1]", v)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(1.5, 0.0, 1.0); v != 1 {
		t.Errorf("Clamp(1.5) = %v", v)
	}
	if v := Clamp(float32(-2), 0, 1); v != 0 {
		t.Errorf("Clamp(-2) = %v", v)
	}
	if v := Clamp(0.25, 0.0, 1.0); v != 0.25 {
		t.Errorf("Clamp(0.25) = %v", v)
	}
}

func TestDecode(t *testing.T) {
	inputs := map[string]string{
		"json array":  `[1.5, -2]`,
		"json object": `{"X": 1.5, "Y": -2}`,
	}
	for name, in := range inputs {
		var v Vect
		if err := json.Unmarshal([]byte(in), &v); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !Equals(v, Vect{1.5, -2}) {
			t.Errorf("%s: got %v", name, v)
		}
	}

	yamlInputs := map[string]string{
		"yaml sequence": `[1.5, -2]`,
		"yaml mapping":  "x: 1.5\ny: -2\n",
	}
	for name, in := range yamlInputs {
		var v Vect
		if err := yaml.Unmarshal([]byte(in), &v); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !Equals(v, Vect{1.5, -2}) {
			t.Errorf("%s: got %v", name, v)
		}
	}

	var v Vect
	if err := v.UnmarshalTOML([]interface{}{int64(3), 0.5}); err != nil {
		t.Fatal(err)
	}
	if !Equals(v, Vect{3, 0.5}) {
		t.Errorf("toml: got %v", v)
	}
	if err := v.UnmarshalTOML([]interface{}{1.0}); err == nil {
		t.Error("toml: expected an error for a single component")
	}
}
