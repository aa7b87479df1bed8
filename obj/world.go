package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/levels"
	"github.com/milk9111/shooter/prefabs"
)

// World is the geometry of one level in screen coordinates. Shift moves all
// of it together when the camera scrolls.
type World struct {
	Name string

	Obstacles   []common.Rect
	Water       []common.Rect
	Decorations []common.Rect
	Exits       []common.Rect
	Pickups     []*Pickup

	// Spawn points are tile-space, left to right.
	PlayerSpawn cp.Vector
	EnemySpawns []cp.Vector

	widthTiles int
}

// NewWorld builds the world geometry for lvl.
func NewWorld(lvl *levels.Level, pickup prefabs.PickupSpec) *World {
	w := &World{}
	if lvl == nil {
		return w
	}
	w.Name = lvl.Name
	w.widthTiles = lvl.Width()
	w.Obstacles = mergeSolidTiles(lvl)

	size := float64(common.TileSize)
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			tile := common.Rect{X: float64(x) * size, Y: float64(y) * size, Width: size, Height: size}
			switch lvl.Tile(x, y) {
			case levels.TileWater:
				w.Water = append(w.Water, tile)
			case levels.TileGrass:
				w.Decorations = append(w.Decorations, tile)
			case levels.TileExit:
				w.Exits = append(w.Exits, tile)
			case levels.TilePlayer:
				w.PlayerSpawn = cp.Vector{X: float64(x), Y: float64(y)}
			case levels.TileEnemy:
				w.EnemySpawns = append(w.EnemySpawns, cp.Vector{X: float64(x), Y: float64(y)})
			case levels.TileHealthBox:
				w.Pickups = append(w.Pickups, &Pickup{Kind: PickupHealth, Rect: boxOnTile(tile, pickup.Size)})
			case levels.TileAmmoBox:
				w.Pickups = append(w.Pickups, &Pickup{Kind: PickupAmmo, Rect: boxOnTile(tile, pickup.Size)})
			}
		}
	}
	return w
}

// boxOnTile centers a size x size box horizontally and rests it on the tile floor.
func boxOnTile(tile common.Rect, size float64) common.Rect {
	if size <= 0 || size > tile.Width {
		size = tile.Width
	}
	return common.Rect{X: tile.X + (tile.Width-size)/2, Y: tile.Bottom() - size, Width: size, Height: size}
}

// mergeSolidTiles covers solid tiles with as few rectangles as possible,
// growing each one greedily to the right and then downward.
func mergeSolidTiles(lvl *levels.Level) []common.Rect {
	width, height := lvl.Width(), lvl.Height()
	processed := make([]bool, width*height)
	var out []common.Rect

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if processed[idx] {
				continue
			}
			if !levels.Solid(lvl.Tile(x, y)) {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < width {
				idx2 := y*width + (x + w)
				if processed[idx2] || !levels.Solid(lvl.Tile(x+w, y)) {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*width + xi
					if processed[idx2] || !levels.Solid(lvl.Tile(xi, y+h)) {
						break heightLoop
					}
				}
				h++
			}

			x0 := float64(x * common.TileSize)
			y0 := float64(y * common.TileSize)
			bb := cp.BB{L: x0, B: y0, R: x0 + float64(w*common.TileSize), T: y0 + float64(h*common.TileSize)}
			out = append(out, common.RectFromBB(bb))

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
		}
	}
	return out
}

// Length returns the level width in pixels.
func (w *World) Length() float64 {
	if w == nil {
		return 0
	}
	return float64(w.widthTiles * common.TileSize)
}

// Shift moves all world geometry horizontally by dx.
func (w *World) Shift(dx float64) {
	if w == nil || dx == 0 {
		return
	}
	shiftRects(w.Obstacles, dx)
	shiftRects(w.Water, dx)
	shiftRects(w.Decorations, dx)
	shiftRects(w.Exits, dx)
	for _, p := range w.Pickups {
		p.Rect.X += dx
	}
}

func shiftRects(rs []common.Rect, dx float64) {
	for i := range rs {
		rs[i].X += dx
	}
}

// ObstaclesNear returns obstacles whose bounds touch view.
func (w *World) ObstaclesNear(view common.Rect, dst []common.Rect) []common.Rect {
	dst = dst[:0]
	if w == nil {
		return dst
	}
	bb := view.BB()
	for _, o := range w.Obstacles {
		if bb.Intersects(o.BB()) {
			dst = append(dst, o)
		}
	}
	return dst
}

func touchesAny(r common.Rect, rs []common.Rect) bool {
	for _, o := range rs {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
