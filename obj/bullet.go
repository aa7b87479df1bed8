package obj

import (
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/prefabs"
)

type BulletState int

const (
	BulletActive BulletState = iota
	BulletDestroyed
)

func (s BulletState) String() string {
	if s == BulletDestroyed {
		return "destroyed"
	}
	return "active"
}

const (
	DefaultBulletSpeed  = 10.0
	DefaultBulletWidth  = 10.0
	DefaultBulletHeight = 6.0
	PlayerDamage        = 5
	EnemyDamage         = 25
)

// DefaultBulletSpec returns the built-in bullet tuning.
func DefaultBulletSpec() prefabs.BulletSpec {
	return prefabs.BulletSpec{
		Width:        DefaultBulletWidth,
		Height:       DefaultBulletHeight,
		Speed:        DefaultBulletSpeed,
		PlayerDamage: PlayerDamage,
		EnemyDamage:  EnemyDamage,
	}
}

// Bullet is a horizontally travelling projectile in screen coordinates.
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Direction     float64

	PlayerDamage int
	EnemyDamage  int

	state BulletState
}

// NewBullet creates an active bullet centered on (cx, cy). Zero fields in
// spec fall back to the defaults.
func NewBullet(cx, cy, direction float64, spec prefabs.BulletSpec) *Bullet {
	def := DefaultBulletSpec()
	if spec.Width <= 0 {
		spec.Width = def.Width
	}
	if spec.Height <= 0 {
		spec.Height = def.Height
	}
	if spec.Speed <= 0 {
		spec.Speed = def.Speed
	}
	if spec.PlayerDamage <= 0 {
		spec.PlayerDamage = def.PlayerDamage
	}
	if spec.EnemyDamage <= 0 {
		spec.EnemyDamage = def.EnemyDamage
	}
	if direction < 0 {
		direction = -1
	} else {
		direction = 1
	}
	r := common.RectCentered(cx, cy, spec.Width, spec.Height)
	return &Bullet{
		X:            r.X,
		Y:            r.Y,
		Width:        spec.Width,
		Height:       spec.Height,
		Speed:        spec.Speed,
		Direction:    direction,
		PlayerDamage: spec.PlayerDamage,
		EnemyDamage:  spec.EnemyDamage,
	}
}

func (b *Bullet) Bounds() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func (b *Bullet) State() BulletState { return b.state }

func (b *Bullet) Active() bool { return b != nil && b.state == BulletActive }

// Kill destroys the bullet. The owning group drops it on its next sweep.
func (b *Bullet) Kill() {
	if b != nil {
		b.state = BulletDestroyed
	}
}

// Update advances the bullet one frame. ctx may implement ScrollAware,
// PlayAware, both or neither; a nil ctx leaves the bullet untouched.
// Collisions resolve in a fixed order: screen bounds, obstacles, player,
// then enemies in collection order. At most one target is damaged.
func (b *Bullet) Update(ctx any) {
	if !b.Active() || ctx == nil {
		return
	}

	scroll := 0.0
	if s, ok := ctx.(ScrollAware); ok {
		scroll = s.ScreenScroll()
	}
	b.X += b.Direction*b.Speed + scroll

	if b.offScreen() {
		b.Kill()
		return
	}

	if play, ok := ctx.(PlayAware); ok {
		b.collide(play)
	}
}

// offScreen reports whether the bullet no longer overlaps [0, ScreenWidth).
func (b *Bullet) offScreen() bool {
	r := b.Bounds()
	return r.Right() <= 0 || r.Left() >= common.ScreenWidth
}

func (b *Bullet) collide(play PlayAware) {
	r := b.Bounds()

	for _, o := range play.Obstacles() {
		if r.Intersects(o) {
			b.Kill()
			return
		}
	}

	if p := play.Player(); p != nil && p.Alive() && r.Intersects(p.Bounds()) {
		p.Hurt(b.PlayerDamage)
		b.Kill()
		return
	}

	for _, e := range play.Enemies() {
		if e == nil || !e.Alive() {
			continue
		}
		if r.Intersects(e.Bounds()) {
			e.Hurt(b.EnemyDamage)
			b.Kill()
			return
		}
	}
}

// BulletGroup holds live bullets in firing order.
type BulletGroup struct {
	bullets []*Bullet
}

func (g *BulletGroup) Add(b *Bullet) {
	if g == nil || !b.Active() {
		return
	}
	g.bullets = append(g.bullets, b)
}

// Update runs every active bullet once, then removes destroyed ones.
func (g *BulletGroup) Update(ctx any) {
	if g == nil || len(g.bullets) == 0 {
		return
	}
	for _, b := range g.bullets {
		if b.Active() {
			b.Update(ctx)
		}
	}
	g.Sweep()
}

// Sweep drops destroyed bullets, preserving the order of the rest.
func (g *BulletGroup) Sweep() {
	if g == nil {
		return
	}
	writeIdx := 0
	for _, b := range g.bullets {
		if !b.Active() {
			continue
		}
		g.bullets[writeIdx] = b
		writeIdx++
	}
	clear(g.bullets[writeIdx:])
	g.bullets = g.bullets[:writeIdx]
}

func (g *BulletGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.bullets)
}

// Bullets returns the group's bullets. The slice is only valid until the
// next Update or Sweep.
func (g *BulletGroup) Bullets() []*Bullet {
	if g == nil {
		return nil
	}
	return g.bullets
}

func (g *BulletGroup) Clear() {
	if g == nil {
		return
	}
	clear(g.bullets)
	g.bullets = g.bullets[:0]
}
