package obj

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shooter/ai"
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/levels"
)

type StepResult int

const (
	Running StepResult = iota
	PlayerDied
	LevelComplete
)

func (r StepResult) String() string {
	switch r {
	case PlayerDied:
		return "player_died"
	case LevelComplete:
		return "level_complete"
	}
	return "running"
}

// Controls is one frame of player input.
type Controls struct {
	Left, Right bool
	Jump        bool
	Shoot       bool
}

// PlayScreen is the running level. It is both ScrollAware and PlayAware, so
// bullets updated against it scroll with the camera and collide with the
// level, the player and enemies.
type PlayScreen struct {
	tuning Tuning
	brain  *ai.Brain
	rng    *rand.Rand

	level   int
	world   *World
	player  *Soldier
	enemies []*Soldier
	targets []Target
	bullets BulletGroup

	scroll   float64
	bgScroll float64
	visible  []common.Rect
	frames   int
}

// NewPlayScreen loads level and spawns its soldiers. brain may be nil, in
// which case enemies stand still.
func NewPlayScreen(t Tuning, brain *ai.Brain, level int, seed uint64) (*PlayScreen, error) {
	s := &PlayScreen{
		tuning: t,
		brain:  brain,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	if err := s.load(level); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PlayScreen) load(level int) error {
	lvl, err := levels.Load(level)
	if err != nil {
		return fmt.Errorf("play screen: %w", err)
	}
	s.loadLevel(level, lvl)
	return nil
}

// loadLevel resets all per-level state from an already parsed level.
func (s *PlayScreen) loadLevel(index int, lvl *levels.Level) {
	s.level = index
	s.world = NewWorld(lvl, s.tuning.Pickup)
	s.player = NewSoldier(KindPlayer, s.world.PlayerSpawn.X, s.world.PlayerSpawn.Y, s.tuning.Player)
	s.enemies = s.enemies[:0]
	s.targets = s.targets[:0]
	for _, sp := range s.world.EnemySpawns {
		e := NewSoldier(KindEnemy, sp.X, sp.Y, s.tuning.Enemy)
		s.enemies = append(s.enemies, e)
		s.targets = append(s.targets, e)
	}
	s.bullets.Clear()
	s.scroll = 0
	s.bgScroll = 0
	s.frames = 0
	s.refreshVisible()
	log.Info("level loaded", "level", index, "name", s.world.Name, "enemies", len(s.enemies))
}

// ScreenScroll implements ScrollAware.
func (s *PlayScreen) ScreenScroll() float64 {
	if s == nil {
		return 0
	}
	return s.scroll
}

// Obstacles implements PlayAware. Only obstacles near the screen are returned.
func (s *PlayScreen) Obstacles() []common.Rect {
	if s == nil {
		return nil
	}
	return s.visible
}

// Player implements PlayAware.
func (s *PlayScreen) Player() Target {
	if s == nil || s.player == nil {
		return nil
	}
	return s.player
}

// Enemies implements PlayAware.
func (s *PlayScreen) Enemies() []Target {
	if s == nil {
		return nil
	}
	return s.targets
}

func (s *PlayScreen) refreshVisible() {
	margin := float64(common.TileSize)
	view := common.Rect{X: -margin, Y: -margin, Width: common.ScreenWidth + 2*margin, Height: common.ScreenHeight + 2*margin}
	s.visible = s.world.ObstaclesNear(view, s.visible)
}

func (s *PlayScreen) moveEnv() MoveEnv {
	return MoveEnv{
		World:           s.world,
		Gravity:         s.tuning.Game.Gravity,
		MaxFallSpeed:    s.tuning.Game.MaxFallSpeed,
		ScrollThreshold: s.tuning.Game.ScrollThreshold,
		BGScroll:        s.bgScroll,
	}
}

// Step advances the level by one frame: player, camera scroll, world shift,
// enemies, bullets, then pickups. Deaths are settled last so damage dealt
// this frame counts.
func (s *PlayScreen) Step(c Controls) StepResult {
	s.frames++
	p := s.player
	p.Update()

	s.scroll = 0
	exit := false
	if p.Alive() {
		if c.Shoot {
			p.Shoot(&s.bullets, s.tuning.Bullet)
		}
		if c.Jump {
			p.Jump()
		}
		res := p.Move(c.Left, c.Right, s.moveEnv())
		s.scroll = res.Scroll
		exit = res.Exit
		s.bgScroll = common.Clamp(s.bgScroll-s.scroll, 0, max(0, s.world.Length()-common.ScreenWidth))
		switch {
		case c.Shoot:
			p.Action = ai.ActionShoot
		case c.Left || c.Right:
			p.Action = ai.ActionWalk
		default:
			p.Action = ai.ActionIdle
		}
	}

	s.world.Shift(s.scroll)
	for _, e := range s.enemies {
		e.X += s.scroll
	}
	s.refreshVisible()

	env := s.moveEnv()
	for _, e := range s.enemies {
		e.Update()
		roll := s.rng.IntN(e.IdleChance()) + 1
		if err := e.ThinkAI(s.brain, p, roll, env, &s.bullets, s.tuning.Bullet); err != nil {
			log.Error("enemy ai failed", "script", s.brain.Name(), "err", err)
		}
	}

	s.bullets.Update(s)

	for _, pk := range s.world.Pickups {
		if pk.Apply(p, s.tuning.Pickup) {
			log.Debug("pickup collected", "kind", pk.Kind, "health", p.Health, "ammo", p.Ammo)
		}
	}

	p.CheckAlive()
	for _, e := range s.enemies {
		e.CheckAlive()
	}

	if !p.Alive() {
		return PlayerDied
	}
	if exit {
		return LevelComplete
	}
	return Running
}

// Drift advances bullets and enemy bookkeeping without a live player. Bullets
// keep flying off screen but no longer collide with anything.
func (s *PlayScreen) Drift() {
	s.frames++
	for _, e := range s.enemies {
		e.Update()
	}
	s.bullets.Update(ScrollOffset(0))
}

// Restart reloads the current level from scratch.
func (s *PlayScreen) Restart() error {
	return s.load(s.level)
}

// NextLevel loads the following level. It reports false when the last level
// has been completed.
func (s *PlayScreen) NextLevel() (bool, error) {
	next := s.level + 1
	if next >= common.MaxLevels {
		return false, nil
	}
	if err := s.load(next); err != nil {
		return false, err
	}
	return true, nil
}

// SetTuning swaps prefab tuning. It applies to soldiers spawned from now on.
func (s *PlayScreen) SetTuning(t Tuning) { s.tuning = t }

// SetBrain swaps the enemy AI script.
func (s *PlayScreen) SetBrain(b *ai.Brain) { s.brain = b }

func (s *PlayScreen) Level() int { return s.level }

func (s *PlayScreen) World() *World { return s.world }

func (s *PlayScreen) PlayerSoldier() *Soldier { return s.player }

func (s *PlayScreen) EnemySoldiers() []*Soldier { return s.enemies }

func (s *PlayScreen) Bullets() *BulletGroup { return &s.bullets }

func (s *PlayScreen) BGScroll() float64 { return s.bgScroll }

func (s *PlayScreen) Frames() int { return s.frames }

func (s *PlayScreen) Tuning() Tuning { return s.tuning }
