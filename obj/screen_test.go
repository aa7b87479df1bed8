package obj

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/shooter/common"
)

var (
	_ ScrollAware = (*PlayScreen)(nil)
	_ PlayAware   = (*PlayScreen)(nil)
	_ ScrollAware = ScrollOffset(0)
	_ Target      = (*Soldier)(nil)
)

func newTestScreen(t *testing.T, rows ...string) *PlayScreen {
	t.Helper()
	s := &PlayScreen{tuning: DefaultTuning(), rng: rand.New(rand.NewPCG(1, 2))}
	s.loadLevel(0, testLevel(t, rows...))
	return s
}

func TestPlayScreenLoadsEmbeddedLevel(t *testing.T) {
	s, err := NewPlayScreen(DefaultTuning(), nil, 0, 42)
	if err != nil {
		t.Fatalf("NewPlayScreen: %v", err)
	}
	if s.PlayerSoldier() == nil || len(s.EnemySoldiers()) == 0 {
		t.Fatalf("level 0 should spawn a player and enemies")
	}
	if len(s.Enemies()) != len(s.EnemySoldiers()) {
		t.Fatalf("enemy targets out of sync")
	}
	if len(s.Obstacles()) == 0 {
		t.Fatalf("visible obstacles should be populated on load")
	}
	for i := 0; i < 30; i++ {
		if r := s.Step(Controls{}); r != Running {
			t.Fatalf("idle player should keep running, got %s", r)
		}
	}
}

func TestPlayScreenScrollsWithPlayer(t *testing.T) {
	s, err := NewPlayScreen(DefaultTuning(), nil, 0, 42)
	if err != nil {
		t.Fatalf("NewPlayScreen: %v", err)
	}
	p := s.PlayerSoldier()
	obstacle := s.World().Obstacles[0].X
	threshold := DefaultTuning().Game.ScrollThreshold

	scrolled := false
	for i := 0; i < 120; i++ {
		if r := s.Step(Controls{Right: true}); r != Running {
			t.Fatalf("frame %d: unexpected %s", i, r)
		}
		if s.ScreenScroll() != 0 {
			scrolled = true
			if s.ScreenScroll() != -p.Speed {
				t.Fatalf("scroll = %v, want %v", s.ScreenScroll(), -p.Speed)
			}
		}
		if p.X+p.Width > common.ScreenWidth-threshold+p.Speed {
			t.Fatalf("player escaped the scroll threshold: right=%v", p.X+p.Width)
		}
	}
	if !scrolled || s.BGScroll() <= 0 {
		t.Fatalf("walking right should scroll the level: bg=%v", s.BGScroll())
	}
	if got := s.World().Obstacles[0].X; got != obstacle-s.BGScroll() {
		t.Fatalf("world shifted to %v, want %v", got, obstacle-s.BGScroll())
	}
}

func TestPlayScreenNoScrollOnShortLevel(t *testing.T) {
	s := newTestScreen(t,
		" P        ",
		"##########",
	)
	for i := 0; i < 60; i++ {
		s.Step(Controls{Right: true})
		if s.ScreenScroll() != 0 {
			t.Fatalf("a level narrower than the screen must not scroll")
		}
	}
}

func TestPlayScreenPlayerKillsEnemy(t *testing.T) {
	s := newTestScreen(t,
		"  P   E   ",
		"##########",
	)
	enemy := s.EnemySoldiers()[0]
	for i := 0; i < 120 && enemy.Alive(); i++ {
		s.Step(Controls{Shoot: true})
	}
	if enemy.Alive() || enemy.Health != 0 {
		t.Fatalf("enemy should be dead: alive=%v health=%d", enemy.Alive(), enemy.Health)
	}
	if got := s.PlayerSoldier().Ammo; got >= DefaultTuning().Player.Ammo {
		t.Fatalf("ammo should have been spent, still %d", got)
	}
}

func TestPlayScreenPlayerDies(t *testing.T) {
	s := newTestScreen(t,
		" P  ",
		"    ",
	)
	result := Running
	for i := 0; i < 60 && result == Running; i++ {
		result = s.Step(Controls{})
	}
	if result != PlayerDied {
		t.Fatalf("falling out of the level should kill the player, got %s", result)
	}

	b := NewBullet(400, 100, 1, DefaultBulletSpec())
	s.Bullets().Add(b)
	x := b.X
	s.Drift()
	if b.X != x+b.Speed {
		t.Fatalf("bullets keep flying after death: x=%v", b.X)
	}
}

func TestPlayScreenReachesExit(t *testing.T) {
	s := newTestScreen(t,
		" P X",
		"####",
	)
	result := Running
	for i := 0; i < 30 && result == Running; i++ {
		result = s.Step(Controls{Right: true})
	}
	if result != LevelComplete {
		t.Fatalf("walking into the exit should complete the level, got %s", result)
	}
}

func TestPlayScreenCollectsPickups(t *testing.T) {
	s := newTestScreen(t,
		" PHA   ",
		"#######",
	)
	p := s.PlayerSoldier()
	p.Health = 50
	ammo := p.Ammo
	for i := 0; i < 20; i++ {
		s.Step(Controls{Right: true})
	}
	spec := DefaultTuning().Pickup
	if p.Health != 50+spec.HealthAmount {
		t.Fatalf("health = %d, want %d", p.Health, 50+spec.HealthAmount)
	}
	if p.Ammo != ammo+spec.AmmoAmount {
		t.Fatalf("ammo = %d, want %d", p.Ammo, ammo+spec.AmmoAmount)
	}
	for _, pk := range s.World().Pickups {
		if !pk.Collected {
			t.Fatalf("%s pickup not collected", pk.Kind)
		}
	}
}

func TestPickupHealthIsCapped(t *testing.T) {
	s := NewSoldier(KindPlayer, 0, 0, DefaultTuning().Player)
	s.Health = s.MaxHealth - 5
	pk := &Pickup{Kind: PickupHealth, Rect: s.Bounds()}
	if !pk.Apply(s, DefaultTuning().Pickup) {
		t.Fatalf("overlapping pickup should apply")
	}
	if s.Health != s.MaxHealth {
		t.Fatalf("health = %d, want cap %d", s.Health, s.MaxHealth)
	}
	if pk.Apply(s, DefaultTuning().Pickup) {
		t.Fatalf("pickup applied twice")
	}
}

func TestPlayScreenLevelProgression(t *testing.T) {
	s, err := NewPlayScreen(DefaultTuning(), nil, 0, 1)
	if err != nil {
		t.Fatalf("NewPlayScreen: %v", err)
	}
	for want := 1; want < common.MaxLevels; want++ {
		ok, err := s.NextLevel()
		if err != nil || !ok {
			t.Fatalf("NextLevel to %d: ok=%v err=%v", want, ok, err)
		}
		if s.Level() != want {
			t.Fatalf("level = %d, want %d", s.Level(), want)
		}
	}
	ok, err := s.NextLevel()
	if err != nil || ok {
		t.Fatalf("no level after the last: ok=%v err=%v", ok, err)
	}

	s.PlayerSoldier().Health = 1
	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.PlayerSoldier().Health != DefaultTuning().Player.Health || s.Level() != common.MaxLevels-1 {
		t.Fatalf("restart should respawn the player on the same level")
	}
}
