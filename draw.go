package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/obj"
	"github.com/milk9111/shooter/prefabs"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

var (
	skyTop      = color.RGBA{R: 144, G: 201, B: 232, A: 255}
	skyBottom   = color.RGBA{R: 144, G: 201, B: 120, A: 255}
	groundColor = color.RGBA{R: 110, G: 78, B: 52, A: 255}
	groundEdge  = color.RGBA{R: 70, G: 50, B: 34, A: 255}
	waterColor  = color.RGBA{R: 40, G: 110, B: 220, A: 200}
	grassColor  = color.RGBA{R: 60, G: 150, B: 60, A: 255}
	exitColor   = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	healthColor = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	ammoColor   = color.RGBA{R: 200, G: 170, B: 60, A: 255}
	deadTint    = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// palette holds the prefab-tunable colors.
type palette struct {
	player color.Color
	enemy  color.Color
	bullet color.Color
}

func newPalette(t obj.Tuning) palette {
	return palette{
		player: colorOr(t.Player.Color, color.RGBA{R: 60, G: 120, B: 255, A: 255}),
		enemy:  colorOr(t.Enemy.Color, color.RGBA{R: 235, G: 65, B: 54, A: 255}),
		bullet: colorOr(t.Bullet.Color, color.RGBA{R: 255, G: 215, B: 0, A: 255}),
	}
}

func colorOr(c *prefabs.YAMLColor, def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}

func fillRect(dst *ebiten.Image, r common.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func onScreen(r common.Rect) bool {
	return r.Right() > 0 && r.Left() < common.ScreenWidth
}

// drawBackground paints a vertical sky gradient whose bands drift slower than
// the level for a little parallax.
func drawBackground(screen *ebiten.Image, bgScroll float64) {
	const bands = common.Rows
	h := float64(common.ScreenHeight) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		c := color.RGBA{
			R: uint8(common.Lerp(float64(skyTop.R), float64(skyBottom.R), t)),
			G: uint8(common.Lerp(float64(skyTop.G), float64(skyBottom.G), t)),
			B: uint8(common.Lerp(float64(skyTop.B), float64(skyBottom.B), t)),
			A: 255,
		}
		fillRect(screen, common.Rect{X: 0, Y: float64(i) * h, Width: common.ScreenWidth, Height: h + 1}, c)
	}

	// Distant hills.
	span := float64(common.ScreenWidth) / 2
	offset := -float64(int(bgScroll*0.5) % int(span))
	for x := offset; x < common.ScreenWidth; x += span {
		fillRect(screen, common.Rect{X: x + span/4, Y: common.ScreenHeight * 0.55, Width: span / 2, Height: common.ScreenHeight * 0.45}, color.RGBA{R: 120, G: 170, B: 110, A: 255})
	}
}

func drawWorld(screen *ebiten.Image, w *obj.World, pal palette) {
	if w == nil {
		return
	}
	for _, r := range w.Obstacles {
		if !onScreen(r) {
			continue
		}
		fillRect(screen, r, groundColor)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 2, groundEdge, false)
	}
	for _, r := range w.Decorations {
		if onScreen(r) {
			fillRect(screen, common.Rect{X: r.X, Y: r.Bottom() - r.Height/4, Width: r.Width, Height: r.Height / 4}, grassColor)
		}
	}
	for _, r := range w.Water {
		if onScreen(r) {
			fillRect(screen, r, waterColor)
		}
	}
	for _, r := range w.Exits {
		if onScreen(r) {
			fillRect(screen, common.Rect{X: r.X + r.Width/3, Y: r.Y, Width: r.Width / 3, Height: r.Height}, exitColor)
		}
	}
	for _, p := range w.Pickups {
		if p.Collected || !onScreen(p.Rect) {
			continue
		}
		c := healthColor
		if p.Kind == obj.PickupAmmo {
			c = ammoColor
		}
		fillRect(screen, p.Rect, c)
	}
}

func drawSoldiers(screen *ebiten.Image, play *obj.PlayScreen, pal palette) {
	for _, e := range play.EnemySoldiers() {
		drawSoldier(screen, e, pal.enemy)
	}
	drawSoldier(screen, play.PlayerSoldier(), pal.player)
}

func drawSoldier(screen *ebiten.Image, s *obj.Soldier, c color.Color) {
	if s == nil || !onScreen(s.Bounds()) {
		return
	}
	if !s.Alive() {
		// Corpses lie flat on the ground.
		b := s.Bounds()
		fillRect(screen, common.Rect{X: b.X - (b.Height-b.Width)/2, Y: b.Bottom() - b.Width/2, Width: b.Height, Height: b.Width / 2}, deadTint)
		return
	}
	b := s.Bounds()
	fillRect(screen, b, c)

	// Eye on the facing side.
	eye := common.RectCentered(b.Center().X+b.Width/4*s.Direction, b.Y+b.Height/4, 4, 4)
	fillRect(screen, eye, color.White)

	if s.Kind == obj.KindEnemy && s.Health < s.MaxHealth {
		drawBar(screen, common.Rect{X: b.X, Y: b.Y - 6, Width: b.Width, Height: 3}, float64(s.Health)/float64(s.MaxHealth))
	}
}

func drawBullets(screen *ebiten.Image, g *obj.BulletGroup, pal palette) {
	for _, b := range g.Bullets() {
		if b.Active() {
			fillRect(screen, b.Bounds(), pal.bullet)
		}
	}
}

func drawBar(screen *ebiten.Image, r common.Rect, frac float64) {
	frac = common.Clamp(frac, 0, 1)
	fillRect(screen, r, color.RGBA{R: 40, G: 0, B: 0, A: 255})
	fillRect(screen, common.Rect{X: r.X, Y: r.Y, Width: r.Width * frac, Height: r.Height}, color.RGBA{R: 0, G: 220, B: 0, A: 255})
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, hudFace, op)
}

func drawHUD(screen *ebiten.Image, play *obj.PlayScreen) {
	p := play.PlayerSoldier()
	if p == nil {
		return
	}
	drawText(screen, "HEALTH", 10, 10, color.White)
	drawBar(screen, common.Rect{X: 70, Y: 10, Width: 150, Height: 14}, float64(p.Health)/float64(p.MaxHealth))
	drawText(screen, fmt.Sprintf("AMMO  %d", p.Ammo), 10, 32, color.White)
	drawText(screen, fmt.Sprintf("LEVEL %d  %s", play.Level()+1, play.World().Name), 10, 54, color.White)
}

func drawBanner(screen *ebiten.Image, title, hint string) {
	fillRect(screen, common.Rect{X: 0, Y: common.ScreenHeight/2 - 40, Width: common.ScreenWidth, Height: 80}, color.RGBA{A: 180})
	w, _ := ebtext.Measure(title, hudFace, 0)
	drawText(screen, title, (common.ScreenWidth-w)/2, common.ScreenHeight/2-20, color.White)
	w, _ = ebtext.Measure(hint, hudFace, 0)
	drawText(screen, hint, (common.ScreenWidth-w)/2, common.ScreenHeight/2+8, color.RGBA{R: 200, G: 200, B: 200, A: 255})
}

// drawDebug outlines the obstacles bullets collide with and enemy vision.
func drawDebug(screen *ebiten.Image, play *obj.PlayScreen) {
	for _, r := range play.Obstacles() {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, color.RGBA{R: 255, A: 200}, false)
	}
	for _, e := range play.EnemySoldiers() {
		if !e.Alive() {
			continue
		}
		v := e.Vision()
		vector.StrokeRect(screen, float32(v.X), float32(v.Y), float32(v.Width), float32(v.Height), 1, color.RGBA{R: 255, G: 255, A: 160}, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  bullets %d  scroll %.0f", ebiten.ActualFPS(), play.Bullets().Len(), play.BGScroll()), 10, common.ScreenHeight-20)
}
