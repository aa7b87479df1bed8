package obj

import (
	"github.com/milk9111/shooter/ai"
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/prefabs"
)

type SoldierKind int

const (
	KindPlayer SoldierKind = iota
	KindEnemy
)

// Soldier is the player or an enemy. Both share movement, gravity,
// shooting and health; enemies additionally carry patrol state.
type Soldier struct {
	Kind SoldierKind

	X, Y          float64
	Width, Height float64
	Speed         float64
	Direction     float64
	VelY          float64
	JumpVelocity  float64
	InAir         bool

	Health    int
	MaxHealth int
	Ammo      int

	ShootCooldown int
	cooldown      int

	Action ai.Action
	alive  bool

	vision      prefabs.VisionSpec
	idleChance  int
	idleFrames  int
	idling      bool
	idleCounter int
	moveCounter int
}

// NewSoldier places a soldier standing on tile (tx, ty), facing right.
func NewSoldier(kind SoldierKind, tx, ty float64, spec prefabs.SoldierSpec) *Soldier {
	size := float64(common.TileSize)
	s := &Soldier{
		Kind:          kind,
		Width:         spec.Width,
		Height:        spec.Height,
		Speed:         spec.Speed,
		Direction:     1,
		JumpVelocity:  spec.JumpVelocity,
		Health:        spec.Health,
		MaxHealth:     spec.Health,
		Ammo:          spec.Ammo,
		ShootCooldown: spec.ShootCooldown,
		Action:        ai.ActionIdle,
		alive:         true,
		vision:        spec.Vision,
		idleChance:    spec.AI.IdleChance,
		idleFrames:    spec.AI.IdleFrames,
	}
	s.X = tx*size + (size-s.Width)/2
	s.Y = (ty+1)*size - s.Height
	return s
}

// Alive implements Target.
func (s *Soldier) Alive() bool { return s != nil && s.alive }

// Bounds implements Target.
func (s *Soldier) Bounds() common.Rect {
	return common.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// Hurt implements Target. Health may go negative; CheckAlive settles it.
func (s *Soldier) Hurt(amount int) {
	if s == nil {
		return
	}
	s.Health -= amount
}

// CheckAlive kills the soldier once its health is used up.
func (s *Soldier) CheckAlive() {
	if s == nil || !s.alive || s.Health > 0 {
		return
	}
	s.Health = 0
	s.Speed = 0
	s.alive = false
}

// Update ticks the shoot cooldown and settles death.
func (s *Soldier) Update() {
	if s == nil {
		return
	}
	if s.cooldown > 0 {
		s.cooldown--
	}
	s.CheckAlive()
}

// Jump starts a jump when standing on the ground.
func (s *Soldier) Jump() {
	if !s.Alive() || s.InAir {
		return
	}
	s.VelY = s.JumpVelocity
	s.InAir = true
}

// Shoot fires a bullet from just in front of the soldier when the cooldown
// has elapsed and ammo remains.
func (s *Soldier) Shoot(g *BulletGroup, spec prefabs.BulletSpec) *Bullet {
	if !s.Alive() || g == nil || s.cooldown > 0 || s.Ammo <= 0 {
		return nil
	}
	s.cooldown = s.ShootCooldown
	c := s.Bounds().Center()
	b := NewBullet(c.X+0.75*s.Width*s.Direction, c.Y, s.Direction, spec)
	g.Add(b)
	s.Ammo--
	return b
}

// Vision returns the box in front of the soldier it can spot the player in.
func (s *Soldier) Vision() common.Rect {
	c := s.Bounds().Center()
	return common.RectCentered(c.X+s.vision.Width/2*s.Direction, c.Y, s.vision.Width, s.vision.Height)
}

// MoveEnv is the frame state a soldier moves through.
type MoveEnv struct {
	World           *World
	Gravity         float64
	MaxFallSpeed    float64
	ScrollThreshold float64
	// BGScroll is how far the camera has already scrolled into the level.
	BGScroll float64
}

// MoveResult reports what a move did to the camera and level.
type MoveResult struct {
	// Scroll is the horizontal shift to apply to everything else this frame.
	Scroll  float64
	Exit    bool
	Blocked bool
}

// Move applies input, gravity and obstacle collision for one frame. Only the
// player produces scroll: while the level has more to show, the player is
// held inside the scroll threshold and the world moves instead.
func (s *Soldier) Move(left, right bool, env MoveEnv) MoveResult {
	var res MoveResult
	if !s.Alive() {
		return res
	}

	dx, dy := 0.0, 0.0
	if left {
		dx = -s.Speed
		s.Direction = -1
	}
	if right {
		dx = s.Speed
		s.Direction = 1
	}

	s.VelY += env.Gravity
	if env.MaxFallSpeed > 0 && s.VelY > env.MaxFallSpeed {
		s.VelY = env.MaxFallSpeed
	}
	dy += s.VelY
	s.InAir = true

	if env.World != nil {
		for _, o := range env.World.Obstacles {
			if dx != 0 && s.Bounds().Offset(dx, 0).Intersects(o) {
				dx = 0
				res.Blocked = true
			}
			if s.Bounds().Offset(0, dy).Intersects(o) {
				if s.VelY < 0 {
					s.VelY = 0
					dy = o.Bottom() - s.Y
				} else {
					s.VelY = 0
					s.InAir = false
					dy = o.Top() - (s.Y + s.Height)
				}
			}
		}

		if touchesAny(s.Bounds(), env.World.Water) {
			s.Health = 0
		}
		if s.Kind == KindPlayer && touchesAny(s.Bounds(), env.World.Exits) {
			res.Exit = true
		}
	}

	if s.Y+s.Height > common.ScreenHeight {
		s.Health = 0
	}

	if s.Kind == KindPlayer {
		if s.X+dx < 0 || s.X+s.Width+dx > common.ScreenWidth {
			dx = 0
		}
	}

	s.X += dx
	s.Y += dy

	if s.Kind == KindPlayer && env.World != nil {
		limit := env.World.Length() - common.ScreenWidth
		if (s.X+s.Width > common.ScreenWidth-env.ScrollThreshold && env.BGScroll < limit) ||
			(s.X < env.ScrollThreshold && env.BGScroll > common.Abs(dx)) {
			s.X -= dx
			res.Scroll = -dx
		}
	}
	return res
}

// ThinkAI lets the enemy's brain pick an action and carries it out.
func (s *Soldier) ThinkAI(brain *ai.Brain, player *Soldier, roll int, env MoveEnv, bullets *BulletGroup, bullet prefabs.BulletSpec) error {
	if s == nil || s.Kind != KindEnemy {
		return nil
	}
	d, err := brain.Decide(ai.Perception{
		Alive:       s.Alive(),
		PlayerAlive: player.Alive(),
		SeesPlayer:  player.Alive() && s.Vision().Intersects(player.Bounds()),
		Idling:      s.idling,
		IdleCounter: s.idleCounter,
		IdleFrames:  s.idleFrames,
		MoveCounter: s.moveCounter,
		Patrol:      common.TileSize,
		Roll:        roll,
	})
	if err != nil {
		s.Action = ai.ActionIdle
		s.Move(false, false, env)
		return err
	}

	s.idling = d.Idling
	s.idleCounter = d.IdleCounter
	s.moveCounter = d.MoveCounter
	s.Action = d.Action

	switch d.Action {
	case ai.ActionShoot:
		s.Shoot(bullets, bullet)
		s.Move(false, false, env)
	case ai.ActionWalk:
		res := s.Move(s.Direction < 0, s.Direction > 0, env)
		if res.Blocked {
			s.Direction = -s.Direction
			s.moveCounter = 0
		} else if d.Turn {
			s.Direction = -s.Direction
		}
	default:
		s.Move(false, false, env)
	}
	return nil
}

// IdleChance is the 1-in-N chance per frame of an enemy stopping to idle.
func (s *Soldier) IdleChance() int {
	if s == nil || s.idleChance <= 0 {
		return 1
	}
	return s.idleChance
}
