package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

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

// GameSpec holds world tuning shared by every level.
type GameSpec struct {
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	ScrollThreshold float64 `yaml:"scroll_threshold"`
	StartLevel      int     `yaml:"start_level"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SoldierSpec struct {
	Name          string     `yaml:"name"`
	Width         float64    `yaml:"width"`
	Height        float64    `yaml:"height"`
	Speed         float64    `yaml:"speed"`
	JumpVelocity  float64    `yaml:"jump_velocity"`
	Health        int        `yaml:"health"`
	Ammo          int        `yaml:"ammo"`
	ShootCooldown int        `yaml:"shoot_cooldown"`
	Vision        VisionSpec `yaml:"vision"`
	AI            AISpec     `yaml:"ai"`
	Color         *YAMLColor `yaml:"color"`
}

type VisionSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AISpec configures the scripted enemy brain. An empty Script means the
// soldier is player controlled.
type AISpec struct {
	Script     string `yaml:"script"`
	IdleChance int    `yaml:"idle_chance"`
	IdleFrames int    `yaml:"idle_frames"`
}

func LoadPlayerSpec() (*SoldierSpec, error) {
	spec, err := LoadSpec[SoldierSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadEnemySpec() (*SoldierSpec, error) {
	spec, err := LoadSpec[SoldierSpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	if spec.AI.Script == "" {
		return nil, fmt.Errorf("prefabs: enemy.yaml: ai.script is required")
	}
	return &spec, nil
}

type BulletSpec struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Speed        float64    `yaml:"speed"`
	PlayerDamage int        `yaml:"player_damage"`
	EnemyDamage  int        `yaml:"enemy_damage"`
	Color        *YAMLColor `yaml:"color"`
}

func LoadBulletSpec() (*BulletSpec, error) {
	spec, err := LoadSpec[BulletSpec]("bullet.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PickupSpec struct {
	Size         float64 `yaml:"size"`
	HealthAmount int     `yaml:"health_amount"`
	AmmoAmount   int     `yaml:"ammo_amount"`
}

func LoadPickupSpec() (*PickupSpec, error) {
	spec, err := LoadSpec[PickupSpec]("pickup.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

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
