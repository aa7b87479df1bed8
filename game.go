package main

import (
	"errors"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/shooter/ai"
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/obj"
	"github.com/milk9111/shooter/prefabs"
)

// errQuit ends ebiten.RunGame without reporting a failure.
var errQuit = errors.New("quit")

type gameState int

const (
	statePlaying gameState = iota
	statePaused
	stateDead
	stateWon
)

func (s gameState) String() string {
	switch s {
	case statePaused:
		return "paused"
	case stateDead:
		return "dead"
	case stateWon:
		return "won"
	}
	return "playing"
}

type GameOptions struct {
	// Level is the starting level; negative uses game.yaml's start_level.
	Level int
	Debug bool
	Watch bool
	Seed  uint64
}

type Game struct {
	opts  GameOptions
	state gameState
	quit  bool

	tuning obj.Tuning
	brain  *ai.Brain
	play   *obj.PlayScreen

	input   *Input
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
	palette palette
}

func NewGame(opts GameOptions) (*Game, error) {
	tuning, err := obj.LoadTuning()
	if err != nil {
		log.Warn("prefabs invalid, using defaults", "err", err)
		tuning = obj.DefaultTuning()
	}

	brain, err := ai.Load(tuning.Enemy.AI.Script)
	if err != nil {
		log.Error("enemy ai unavailable, enemies will stand still", "script", tuning.Enemy.AI.Script, "err", err)
		brain = nil
	}

	level := opts.Level
	if level < 0 {
		level = tuning.Game.StartLevel
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}

	play, err := obj.NewPlayScreen(tuning, brain, level, opts.Seed)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:    opts,
		tuning:  tuning,
		brain:   brain,
		play:    play,
		input:   NewInput(),
		palette: newPalette(tuning),
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			log.Warn("hot reload disabled", "dir", prefabs.DiskDir, "err", err)
		} else {
			g.watcher = w
			log.Info("watching prefabs", "dir", prefabs.DiskDir)
		}
	}

	log.Debug("game started", "level", level, "seed", opts.Seed)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return errQuit
	}
	g.pollWatcher()
	g.input.Update()

	switch g.state {
	case statePlaying:
		if g.input.Pause {
			g.setState(statePaused)
			return nil
		}
		switch g.play.Step(g.input.Controls()) {
		case obj.PlayerDied:
			log.Info("player died", "level", g.play.Level(), "frames", g.play.Frames())
			g.setState(stateDead)
		case obj.LevelComplete:
			ok, err := g.play.NextLevel()
			if err != nil {
				return err
			}
			if !ok {
				log.Info("all levels complete")
				g.setState(stateWon)
			}
		}
	case statePaused:
		if g.input.Pause {
			g.setState(statePlaying)
			return nil
		}
		g.pauseUI.Update()
	case stateDead:
		g.play.Drift()
		if g.input.Confirm {
			g.restart()
		}
	case stateWon:
		if g.input.Confirm {
			g.newRun()
		}
	}
	return nil
}

func (g *Game) setState(s gameState) {
	if g.state == s {
		return
	}
	log.Debug("game state", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) restart() {
	if err := g.play.Restart(); err != nil {
		log.Error("restart failed", "level", g.play.Level(), "err", err)
		return
	}
	g.setState(statePlaying)
}

func (g *Game) newRun() {
	play, err := obj.NewPlayScreen(g.tuning, g.brain, 0, rand.Uint64())
	if err != nil {
		log.Error("new run failed", "err", err)
		return
	}
	g.play = play
	g.setState(statePlaying)
}

// pollWatcher applies any pending prefab edits without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeSpec:
		tuning, err := obj.LoadTuning()
		if err != nil {
			log.Error("prefab reload failed", "file", change.Name, "err", err)
			return
		}
		g.tuning = tuning
		g.palette = newPalette(tuning)
		g.play.SetTuning(tuning)
		log.Info("prefabs reloaded", "file", change.Name)
		if tuning.Enemy.AI.Script == g.brain.Name() {
			return
		}
		fallthrough
	case prefabs.ChangeScript:
		brain, err := ai.Load(g.tuning.Enemy.AI.Script)
		if err != nil {
			log.Error("script reload failed", "file", change.Name, "err", err)
			return
		}
		g.brain = brain
		g.play.SetBrain(brain)
		log.Info("enemy ai reloaded", "script", brain.Name())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBackground(screen, g.play.BGScroll())
	drawWorld(screen, g.play.World(), g.palette)
	drawSoldiers(screen, g.play, g.palette)
	drawBullets(screen, g.play.Bullets(), g.palette)
	if g.opts.Debug {
		drawDebug(screen, g.play)
	}
	drawHUD(screen, g.play)

	switch g.state {
	case statePaused:
		g.pauseUI.Draw(screen)
	case stateDead:
		drawBanner(screen, "You died", "Enter to restart")
	case stateWon:
		drawBanner(screen, "All levels cleared", "Enter to play again")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
