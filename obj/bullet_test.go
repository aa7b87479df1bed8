package obj

import (
	"testing"

	"github.com/milk9111/shooter/common"
)

type fakeTarget struct {
	alive  bool
	rect   common.Rect
	health int
	hits   int
}

func (f *fakeTarget) Alive() bool         { return f.alive }
func (f *fakeTarget) Bounds() common.Rect { return f.rect }
func (f *fakeTarget) Hurt(amount int) {
	f.health -= amount
	f.hits++
}

// scrollOnly exposes only the scroll facet.
type scrollOnly struct{ scroll float64 }

func (s scrollOnly) ScreenScroll() float64 { return s.scroll }

// playOnly exposes only the play facet.
type playOnly struct {
	obstacles []common.Rect
	player    Target
	enemies   []Target
}

func (p *playOnly) Obstacles() []common.Rect { return p.obstacles }
func (p *playOnly) Player() Target           { return p.player }
func (p *playOnly) Enemies() []Target        { return p.enemies }

// fullContext exposes both facets.
type fullContext struct {
	scrollOnly
	*playOnly
}

func testBullet(x, y, dir float64) *Bullet {
	return &Bullet{X: x, Y: y, Width: 10, Height: 6, Speed: 10, Direction: dir, PlayerDamage: PlayerDamage, EnemyDamage: EnemyDamage}
}

func TestBulletNilContextIsInert(t *testing.T) {
	b := testBullet(100, 100, 1)
	b.Update(nil)
	if b.X != 100 || !b.Active() {
		t.Fatalf("nil context should not move or destroy bullet: x=%v state=%v", b.X, b.State())
	}
}

func TestBulletMovement(t *testing.T) {
	cases := []struct {
		name string
		ctx  any
		dir  float64
		want float64
	}{
		{"neither_facet", struct{}{}, 1, 110},
		{"neither_facet_left", struct{}{}, -1, 90},
		{"scroll_only", scrollOnly{scroll: -5}, 1, 105},
		{"play_only", &playOnly{}, 1, 110},
		{"both", fullContext{scrollOnly{scroll: 3}, &playOnly{}}, -1, 93},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := testBullet(100, 100, c.dir)
			b.Update(c.ctx)
			if b.X != c.want {
				t.Fatalf("x = %v, want %v", b.X, c.want)
			}
			if !b.Active() {
				t.Fatalf("bullet should still be active")
			}
		})
	}
}

func TestBulletLeavesScreen(t *testing.T) {
	player := &fakeTarget{alive: true, health: 100, rect: common.Rect{X: 795, Y: 95, Width: 30, Height: 30}}
	ctx := fullContext{scrollOnly{}, &playOnly{player: player}}

	b := testBullet(790, 100, 1)
	b.Update(ctx)
	if b.X != 800 {
		t.Fatalf("x = %v, want 800", b.X)
	}
	if b.Active() {
		t.Fatalf("bullet past the right edge should be destroyed")
	}
	if player.hits != 0 {
		t.Fatalf("no collision checks should run after leaving the screen")
	}

	left := testBullet(0, 100, -1)
	left.Update(struct{}{})
	if left.X != -10 || left.Active() {
		t.Fatalf("bullet fully past the left edge should be destroyed: x=%v", left.X)
	}

	partial := testBullet(12, 100, -1)
	partial.Update(struct{}{})
	if !partial.Active() {
		t.Fatalf("bullet still overlapping the screen should stay active")
	}
}

func TestBulletOffScreenPropertyHolds(t *testing.T) {
	for x := -40.0; x <= 840; x += 7 {
		for _, dir := range []float64{-1, 1} {
			b := testBullet(x, 50, dir)
			b.Update(scrollOnly{scroll: 2})
			r := b.Bounds()
			visible := r.Right() > 0 && r.Left() < common.ScreenWidth
			if !visible && b.Active() {
				t.Fatalf("bullet at %v (dir %v) is off screen but active", r, dir)
			}
			if visible && !b.Active() {
				t.Fatalf("bullet at %v (dir %v) is on screen but destroyed", r, dir)
			}
		}
	}
}

func TestBulletObstacleBeatsPlayer(t *testing.T) {
	player := &fakeTarget{alive: true, health: 100, rect: common.Rect{X: 105, Y: 90, Width: 20, Height: 30}}
	ctx := &playOnly{
		obstacles: []common.Rect{{X: 110, Y: 80, Width: 40, Height: 40}},
		player:    player,
	}
	b := testBullet(100, 100, 1)
	b.Update(ctx)
	if b.Active() {
		t.Fatalf("bullet should be destroyed by obstacle")
	}
	if player.health != 100 || player.hits != 0 {
		t.Fatalf("player must not be hurt when an obstacle is hit: health=%d", player.health)
	}
}

func TestBulletHitsPlayer(t *testing.T) {
	player := &fakeTarget{alive: true, health: 100, rect: common.Rect{X: 110, Y: 90, Width: 20, Height: 30}}
	enemy := &fakeTarget{alive: true, health: 100, rect: player.rect}
	ctx := &playOnly{player: player, enemies: []Target{enemy}}

	b := testBullet(100, 100, 1)
	b.Update(ctx)
	if b.Active() {
		t.Fatalf("bullet should be destroyed by the player")
	}
	if player.health != 95 {
		t.Fatalf("player health = %d, want 95", player.health)
	}
	if enemy.hits != 0 {
		t.Fatalf("a bullet that hit the player must not also hit an enemy")
	}
}

func TestBulletSkipsDeadPlayer(t *testing.T) {
	player := &fakeTarget{alive: false, health: 0, rect: common.Rect{X: 110, Y: 90, Width: 20, Height: 30}}
	enemy := &fakeTarget{alive: true, health: 30, rect: player.rect}
	ctx := &playOnly{player: player, enemies: []Target{enemy}}

	b := testBullet(100, 100, 1)
	b.Update(ctx)
	if player.hits != 0 {
		t.Fatalf("dead player should not be hurt")
	}
	if enemy.health != 5 || b.Active() {
		t.Fatalf("enemy behind a dead player should be hit: health=%d", enemy.health)
	}
}

func TestBulletHitsEnemy(t *testing.T) {
	player := &fakeTarget{alive: true, health: 100, rect: common.Rect{X: 400, Y: 400, Width: 20, Height: 30}}
	enemy := &fakeTarget{alive: true, health: 30, rect: common.Rect{X: 110, Y: 90, Width: 20, Height: 30}}
	ctx := fullContext{scrollOnly{}, &playOnly{player: player, enemies: []Target{enemy}}}

	b := testBullet(100, 100, 1)
	b.Update(ctx)
	if enemy.health != 5 {
		t.Fatalf("enemy health = %d, want 5", enemy.health)
	}
	if b.Active() {
		t.Fatalf("bullet should be destroyed after hitting an enemy")
	}
	if player.health != 100 {
		t.Fatalf("player health changed to %d", player.health)
	}
}

func TestBulletDamagesOnlyFirstEnemy(t *testing.T) {
	rect := common.Rect{X: 110, Y: 90, Width: 20, Height: 30}
	dead := &fakeTarget{alive: false, health: 0, rect: rect}
	first := &fakeTarget{alive: true, health: 100, rect: rect}
	second := &fakeTarget{alive: true, health: 100, rect: rect}
	ctx := &playOnly{enemies: []Target{nil, dead, first, second}}

	b := testBullet(100, 100, 1)
	b.Update(ctx)
	if dead.hits != 0 {
		t.Fatalf("dead enemy should be skipped")
	}
	if first.hits != 1 || first.health != 75 {
		t.Fatalf("first live enemy should take one hit: hits=%d health=%d", first.hits, first.health)
	}
	if second.hits != 0 {
		t.Fatalf("only one enemy may be hit per bullet")
	}
}

func TestBulletDoesNotSettleDeath(t *testing.T) {
	enemy := &fakeTarget{alive: true, health: 10, rect: common.Rect{X: 110, Y: 90, Width: 20, Height: 30}}
	b := testBullet(100, 100, 1)
	b.Update(&playOnly{enemies: []Target{enemy}})
	// Health is not clamped and alive is left for the owner to update.
	if enemy.health != -15 || !enemy.alive {
		t.Fatalf("health=%d alive=%v, want -15 and still alive", enemy.health, enemy.alive)
	}
}

func TestScrollOffsetBulletDrifts(t *testing.T) {
	b := testBullet(100, 100, 1)
	b.Update(ScrollOffset(1))
	if b.X != 111 {
		t.Fatalf("x = %v, want 111", b.X)
	}
	for i := 0; i < 200 && b.Active(); i++ {
		b.Update(ScrollOffset(1))
	}
	if b.Active() {
		t.Fatalf("bullet should eventually leave the screen")
	}
}

func TestDestroyedBulletIsNoOp(t *testing.T) {
	enemy := &fakeTarget{alive: true, health: 100, rect: common.Rect{X: 110, Y: 90, Width: 20, Height: 30}}
	ctx := fullContext{scrollOnly{scroll: 4}, &playOnly{enemies: []Target{enemy}}}

	b := testBullet(100, 100, 1)
	b.Update(ctx)
	x := b.X
	for i := 0; i < 3; i++ {
		b.Update(ctx)
	}
	if b.X != x || enemy.hits != 1 || b.State() != BulletDestroyed {
		t.Fatalf("destroyed bullet changed state: x=%v hits=%d state=%v", b.X, enemy.hits, b.State())
	}
}

func TestNilPlayerIsSkipped(t *testing.T) {
	b := testBullet(100, 100, 1)
	b.Update(&playOnly{})
	if !b.Active() || b.X != 110 {
		t.Fatalf("empty play context should not affect bullet")
	}
}

func TestNewBulletDefaults(t *testing.T) {
	b := NewBullet(50, 60, -3, DefaultBulletSpec())
	if b.Direction != -1 {
		t.Fatalf("direction = %v, want -1", b.Direction)
	}
	c := b.Bounds().Center()
	if c.X != 50 || c.Y != 60 {
		t.Fatalf("bullet not centered: %v", c)
	}
	if b.Speed != DefaultBulletSpeed || b.PlayerDamage != PlayerDamage || b.EnemyDamage != EnemyDamage {
		t.Fatalf("unexpected defaults %+v", b)
	}
}
