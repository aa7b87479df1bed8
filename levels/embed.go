package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/shooter/common"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Tile legend for level rows.
const (
	TileEmpty     = ' '
	TileGround    = '#'
	TileStone     = '='
	TileWater     = '~'
	TileGrass     = '"'
	TilePlayer    = 'P'
	TileEnemy     = 'E'
	TileHealthBox = 'H'
	TileAmmoBox   = 'A'
	TileExit      = 'X'
)

// Level is a fixed tile grid. Rows are top to bottom, one rune per tile.
type Level struct {
	Name string   `json:"name"`
	Rows []string `json:"rows"`

	grid [][]rune
}

// Width returns the level width in tiles.
func (l *Level) Width() int {
	if l == nil || len(l.grid) == 0 {
		return 0
	}
	return len(l.grid[0])
}

// Height returns the level height in tiles.
func (l *Level) Height() int {
	if l == nil {
		return 0
	}
	return len(l.grid)
}

// Tile returns the tile at (x, y), or TileEmpty outside the grid.
func (l *Level) Tile(x, y int) rune {
	if l == nil || y < 0 || y >= len(l.grid) || x < 0 || x >= len(l.grid[y]) {
		return TileEmpty
	}
	return l.grid[y][x]
}

// Solid reports whether a tile blocks movement and bullets.
func Solid(tile rune) bool {
	return tile == TileGround || tile == TileStone
}

func (l *Level) validate() error {
	if len(l.Rows) != common.Rows {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidLevel, len(l.Rows), common.Rows)
	}
	l.grid = make([][]rune, len(l.Rows))
	spawns := 0
	for y, row := range l.Rows {
		l.grid[y] = []rune(row)
		if len(l.grid[y]) == 0 {
			return fmt.Errorf("%w: row %d is empty", ErrInvalidLevel, y)
		}
		if len(l.grid[y]) != len(l.grid[0]) {
			return fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidLevel, y, len(l.grid[y]), len(l.grid[0]))
		}
		for x, tile := range l.grid[y] {
			switch tile {
			case TileEmpty, TileGround, TileStone, TileWater, TileGrass,
				TileEnemy, TileHealthBox, TileAmmoBox, TileExit:
			case TilePlayer:
				spawns++
			default:
				return fmt.Errorf("%w: unknown tile %q at %d,%d", ErrInvalidLevel, tile, x, y)
			}
		}
	}
	if spawns != 1 {
		return fmt.Errorf("%w: %d player spawns, want 1", ErrInvalidLevel, spawns)
	}
	return nil
}

// Parse decodes and validates a level from JSON.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadLevelFromFS loads a level file by name from the embedded set.
func LoadLevelFromFS(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return lvl, nil
}

// Load returns the level with the given index.
func Load(index int) (*Level, error) {
	if index < 0 || index >= common.MaxLevels {
		return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidLevel, index)
	}
	return LoadLevelFromFS(fmt.Sprintf("level%d.json", index))
}

// Names lists the embedded level files without extension.
func Names() []string {
	entries, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(path.Base(e), ".json"))
	}
	sort.Strings(names)
	return names
}
