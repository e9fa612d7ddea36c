package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: addU8(c.R, dr), G: addU8(c.G, dg), B: addU8(c.B, db)}
}

func addU8(v uint8, d int) uint8 {
	return uint8(clamp(int(v)+d, 0, 255))
}

// Floats returns the colour as normalised components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// UnmarshalYAML reads a colour written as [r, g, b].
func (c *RGB) UnmarshalYAML(n *yaml.Node) error {
	var v []int
	if err := n.Decode(&v); err != nil {
		return err
	}
	if len(v) != 3 {
		return fmt.Errorf("line %d: colour needs 3 components, got %d", n.Line, len(v))
	}
	for _, x := range v {
		if x < 0 || x > 255 {
			return fmt.Errorf("line %d: colour component %d out of range", n.Line, x)
		}
	}
	*c = RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}
	return nil
}

var Palette = struct {
	Ground     RGB
	Head       RGB
	Body       RGB
	BodyAlt    RGB
	Flash      RGB
	Ghost      RGB
	Bridge     RGB
	Dust       RGB
	Spark      RGB
	Combo      RGB
	Warning    RGB
	Milestone  RGB
	PowerUpMsg RGB
}{
	Ground:     RGB{R: 58, G: 122, B: 62},
	Head:       RGB{R: 40, G: 200, B: 70},
	Body:       RGB{R: 30, G: 160, B: 55},
	BodyAlt:    RGB{R: 50, G: 180, B: 80},
	Flash:      RGB{R: 230, G: 40, B: 40},
	Ghost:      RGB{R: 170, G: 230, B: 190},
	Bridge:     RGB{R: 150, G: 110, B: 70},
	Dust:       RGB{R: 160, G: 150, B: 135},
	Spark:      RGB{R: 255, G: 220, B: 120},
	Combo:      RGB{R: 255, G: 190, B: 60},
	Warning:    RGB{R: 230, G: 60, B: 60},
	Milestone:  RGB{R: 255, G: 120, B: 220},
	PowerUpMsg: RGB{R: 120, G: 220, B: 255},
}
