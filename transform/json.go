package transform

import (
	"encoding/json"
	"log"

	"github.com/Emilinya/physics-engine/vect"
)

// Transforms are written as {"position": [x, y], "angle": a, "scale": [w, h]}.
type transformJSON struct {
	Position vect.Vect  `json:"position"`
	Angle    float64    `json:"angle"`
	Scale    *vect.Vect `json:"scale,omitempty"`
}

func (xf Transform) MarshalJSON() ([]byte, error) {
	scale := xf.Scale
	return json.Marshal(&transformJSON{
		Position: xf.Position,
		Angle:    xf.Angle(),
		Scale:    &scale,
	})
}

// A missing scale reads as (1, 1).
func (xf *Transform) UnmarshalJSON(data []byte) error {
	xfData := transformJSON{}
	if err := json.Unmarshal(data, &xfData); err != nil {
		log.Printf("Error decoding transform")
		return err
	}

	scale := vect.Vect{X: 1, Y: 1}
	if xfData.Scale != nil {
		scale = *xfData.Scale
	}
	xf.Set(xfData.Position, xfData.Angle, scale)
	return nil
}
