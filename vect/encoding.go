package vect

import (
	"encoding/json"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// Vectors are written as [x, y] and read either as [x, y] or as {X: x, Y: y}.

func (v Vect) MarshalJSON() ([]byte, error) {
	return json.Marshal(&[2]float64{v.X, v.Y})
}

func (v *Vect) UnmarshalJSON(data []byte) error {
	vectData := [2]float64{}

	//try unmarshalling array form
	err := json.Unmarshal(data, &vectData)
	if err != nil {
		//try other form
		vectData := struct {
			X, Y float64
		}{}

		err := json.Unmarshal(data, &vectData)

		if err != nil {
			log.Printf("Error decoding Vect")
			return err
		}
		v.X = vectData.X
		v.Y = vectData.Y
		return nil
	}

	v.X = vectData[0]
	v.Y = vectData[1]

	return nil
}

func (v Vect) MarshalYAML() (interface{}, error) {
	return []float64{v.X, v.Y}, nil
}

func (v *Vect) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		vectData := [2]float64{}
		if err := node.Decode(&vectData); err != nil {
			return err
		}
		v.X, v.Y = vectData[0], vectData[1]
		return nil
	}

	vectData := struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	}{}
	if err := node.Decode(&vectData); err != nil {
		log.Printf("Error decoding Vect")
		return err
	}
	v.X, v.Y = vectData.X, vectData.Y
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (v *Vect) UnmarshalTOML(data interface{}) error {
	switch d := data.(type) {
	case []interface{}:
		if len(d) != 2 {
			return fmt.Errorf("vect: expected 2 components, got %d", len(d))
		}
		x, err := tomlFloat(d[0])
		if err != nil {
			return err
		}
		y, err := tomlFloat(d[1])
		if err != nil {
			return err
		}
		v.X, v.Y = x, y
		return nil
	case map[string]interface{}:
		for key, value := range d {
			f, err := tomlFloat(value)
			if err != nil {
				return err
			}
			switch key {
			case "x", "X":
				v.X = f
			case "y", "Y":
				v.Y = f
			default:
				return fmt.Errorf("vect: unknown key %q", key)
			}
		}
		return nil
	}
	return fmt.Errorf("vect: cannot decode %T", data)
}

func tomlFloat(value interface{}) (float64, error) {
	switch n := value.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("vect: component %v is not a number", value)
}
