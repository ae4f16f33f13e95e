package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals a yaml prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// ShipSpec tunes the player ship.
type ShipSpec struct {
	Name        string     `yaml:"name"`
	Radius      float64    `yaml:"radius"`
	TurnSpeed   float64    `yaml:"turn_speed"`
	ThrustAccel float64    `yaml:"thrust_accel"`
	Damping     float64    `yaml:"damping"`
	MaxSpeed    float64    `yaml:"max_speed"`
	FireDelay   int        `yaml:"fire_delay"`
	ShotSpeed   float64    `yaml:"shot_speed"`
	ShotLife    int        `yaml:"shot_life"`
	GraceFrames int        `yaml:"grace_frames"`
	Lives       int        `yaml:"lives"`
	Color       *YAMLColor `yaml:"color"`
}

func LoadShipSpec() (*ShipSpec, error) {
	spec, err := LoadSpec[ShipSpec]("ship.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// RockSizeSpec tunes one rock generation.
type RockSizeSpec struct {
	Radius   float64 `yaml:"radius"`
	Score    int     `yaml:"score"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Points   int     `yaml:"points"`
	Jag      float64 `yaml:"jag"`
	MaxSpin  float64 `yaml:"max_spin"`
}

// RockSpec tunes rocks and splitting.
type RockSpec struct {
	Name       string       `yaml:"name"`
	SplitCount int          `yaml:"split_count"`
	Color      *YAMLColor   `yaml:"color"`
	Large      RockSizeSpec `yaml:"large"`
	Medium     RockSizeSpec `yaml:"medium"`
	Small      RockSizeSpec `yaml:"small"`
}

func LoadRockSpec() (*RockSpec, error) {
	spec, err := LoadSpec[RockSpec]("rock.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// HUDSpec tunes the in-game text overlay.
type HUDSpec struct {
	TextSize   float64    `yaml:"text_size"`
	LineHeight float64    `yaml:"line_height"`
	Margin     float64    `yaml:"margin"`
	Color      *YAMLColor `yaml:"color"`
}

func LoadHUDSpec() (*HUDSpec, error) {
	spec, err := LoadSpec[HUDSpec]("hud.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// WaveSpec names the pacing script and carries the fallback pacing
// used when the script is missing or fails.
type WaveSpec struct {
	Script     string  `yaml:"script"`
	BaseCount  int     `yaml:"base_count"`
	CountStep  int     `yaml:"count_step"`
	MaxCount   int     `yaml:"max_count"`
	SpeedStep  float64 `yaml:"speed_step"`
	SpawnDelay int     `yaml:"spawn_delay"`
}

func LoadWaveSpec() (*WaveSpec, error) {
	spec, err := LoadSpec[WaveSpec]("waves.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor parses "#rrggbb" or "#rrggbbaa" strings.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// RGBA implements color.Color with an opaque white fallback so a spec
// without a color never draws invisible.
func (c *YAMLColor) RGBA() (uint32, uint32, uint32, uint32) {
	if c == nil || c.Color == nil {
		return color.White.RGBA()
	}
	return c.Color.RGBA()
}
