package obj

import "github.com/milk9111/shooter/common"

// Target is anything a bullet can damage. Hurt only lowers health; deciding
// when a target dies is up to the owner of the target.
type Target interface {
	Alive() bool
	Bounds() common.Rect
	Hurt(amount int)
}

// ScrollAware contexts report the horizontal camera scroll for the current
// frame. World-relative objects add it to their x position.
type ScrollAware interface {
	ScreenScroll() float64
}

// PlayAware contexts expose the level geometry and actors bullets collide with.
// Player may return nil and Enemies may contain nil entries.
type PlayAware interface {
	Obstacles() []common.Rect
	Player() Target
	Enemies() []Target
}

// ScrollOffset is a context that only scrolls. Bullets updated with it still
// move and leave the screen but never collide.
type ScrollOffset float64

func (s ScrollOffset) ScreenScroll() float64 { return float64(s) }
