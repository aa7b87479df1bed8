package common

// Screen and level geometry. The level grid is always Rows tiles tall, so the
// tile size follows from the screen height.
const (
	ScreenWidth  = 800
	ScreenHeight = ScreenWidth * 8 / 10

	Rows     = 16
	TileSize = ScreenHeight / Rows

	MaxLevels = 3
	FPS       = 60
)

// Physics and camera defaults. Prefabs may override the tunable ones.
const (
	Gravity         = 0.75
	MaxFallSpeed    = 10.0
	ScrollThreshold = 200.0

	MaxHealth = 100
)
