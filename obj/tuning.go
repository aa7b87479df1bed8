package obj

import (
	"fmt"

	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/prefabs"
)

// Tuning gathers every prefab the play screen needs.
type Tuning struct {
	Game   prefabs.GameSpec
	Player prefabs.SoldierSpec
	Enemy  prefabs.SoldierSpec
	Bullet prefabs.BulletSpec
	Pickup prefabs.PickupSpec
}

// DefaultTuning mirrors the embedded prefab files without touching disk.
func DefaultTuning() Tuning {
	return Tuning{
		Game: prefabs.GameSpec{
			Gravity:         common.Gravity,
			MaxFallSpeed:    common.MaxFallSpeed,
			ScrollThreshold: common.ScrollThreshold,
		},
		Player: prefabs.SoldierSpec{
			Name:          "player",
			Width:         24,
			Height:        36,
			Speed:         5,
			JumpVelocity:  -11,
			Health:        common.MaxHealth,
			Ammo:          20,
			ShootCooldown: 20,
		},
		Enemy: prefabs.SoldierSpec{
			Name:          "enemy",
			Width:         24,
			Height:        36,
			Speed:         2,
			JumpVelocity:  -11,
			Health:        common.MaxHealth,
			Ammo:          20,
			ShootCooldown: 20,
			Vision:        prefabs.VisionSpec{Width: 150, Height: 20},
			AI:            prefabs.AISpec{Script: "soldier.tengo", IdleChance: 200, IdleFrames: 50},
		},
		Bullet: DefaultBulletSpec(),
		Pickup: prefabs.PickupSpec{Size: 24, HealthAmount: 25, AmmoAmount: 15},
	}
}

// LoadTuning reads all prefabs. Missing values keep their defaults.
func LoadTuning() (Tuning, error) {
	t := DefaultTuning()

	game, err := prefabs.LoadGameSpec()
	if err != nil {
		return t, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return t, err
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return t, err
	}
	bullet, err := prefabs.LoadBulletSpec()
	if err != nil {
		return t, err
	}
	pickup, err := prefabs.LoadPickupSpec()
	if err != nil {
		return t, err
	}

	t.Game = *game
	t.Player = *player
	t.Enemy = *enemy
	t.Bullet = *bullet
	t.Pickup = *pickup
	t.fillDefaults()

	if t.Player.Width <= 0 || t.Player.Height <= 0 || t.Enemy.Width <= 0 || t.Enemy.Height <= 0 {
		return t, fmt.Errorf("prefabs: soldier size must be positive")
	}
	return t, nil
}

func (t *Tuning) fillDefaults() {
	def := DefaultTuning()
	if t.Game.Gravity == 0 {
		t.Game.Gravity = def.Game.Gravity
	}
	if t.Game.MaxFallSpeed <= 0 {
		t.Game.MaxFallSpeed = def.Game.MaxFallSpeed
	}
	if t.Game.ScrollThreshold <= 0 {
		t.Game.ScrollThreshold = def.Game.ScrollThreshold
	}
	if t.Game.StartLevel < 0 || t.Game.StartLevel >= common.MaxLevels {
		t.Game.StartLevel = 0
	}
	if t.Player.Health <= 0 {
		t.Player.Health = def.Player.Health
	}
	if t.Enemy.Health <= 0 {
		t.Enemy.Health = def.Enemy.Health
	}
	if t.Enemy.AI.IdleChance <= 0 {
		t.Enemy.AI.IdleChance = def.Enemy.AI.IdleChance
	}
	if t.Pickup.Size <= 0 {
		t.Pickup.Size = def.Pickup.Size
	}
}
