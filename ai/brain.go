// Package ai runs enemy decision scripts written in tengo.
//
// A script defines a function `think(s)` that receives the soldier's
// perception as a map and returns a map with the chosen action and the
// updated patrol state. The Go side owns movement and shooting; the script
// only decides.
package ai

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/shooter/prefabs"
)

type Action string

const (
	ActionIdle  Action = "idle"
	ActionWalk  Action = "walk"
	ActionShoot Action = "shoot"
)

var ErrUnknownAction = errors.New("ai: unknown action")

const dispatchScript = `
__out := think(__in)
`

// Perception is what a soldier knows about the frame.
type Perception struct {
	Alive       bool
	PlayerAlive bool
	SeesPlayer  bool
	Idling      bool
	IdleCounter int
	IdleFrames  int
	MoveCounter int
	Patrol      int
	Roll        int
}

// Decision is the script's answer for one frame.
type Decision struct {
	Action      Action
	Idling      bool
	IdleCounter int
	MoveCounter int
	Turn        bool
}

// Brain is a compiled AI script. It is not safe for concurrent use; the
// frame loop calls Decide for one soldier at a time.
type Brain struct {
	name     string
	compiled *tengo.Compiled
}

// Load compiles the named script from the prefab scripts directory.
func Load(name string) (*Brain, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("ai: load %s: %w", name, err)
	}
	return Compile(name, src)
}

// Compile builds a Brain from tengo source.
func Compile(name string, src []byte) (*Brain, error) {
	full := append(append([]byte(nil), src...), dispatchScript...)
	script := tengo.NewScript(full)
	_ = script.Add("__in", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile %s: %w", name, err)
	}
	return &Brain{name: name, compiled: compiled}, nil
}

func (b *Brain) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// Decide runs the script once for the given perception.
func (b *Brain) Decide(p Perception) (Decision, error) {
	if b == nil || b.compiled == nil {
		return Decision{Action: ActionIdle, Idling: p.Idling, IdleCounter: p.IdleCounter, MoveCounter: p.MoveCounter}, nil
	}

	in := map[string]any{
		"alive":        p.Alive,
		"player_alive": p.PlayerAlive,
		"sees_player":  p.SeesPlayer,
		"idling":       p.Idling,
		"idle_counter": p.IdleCounter,
		"idle_frames":  p.IdleFrames,
		"move_counter": p.MoveCounter,
		"patrol":       p.Patrol,
		"roll":         p.Roll,
	}
	if err := b.compiled.Set("__in", in); err != nil {
		return Decision{}, fmt.Errorf("ai: %s: set input: %w", b.name, err)
	}
	if err := b.compiled.Run(); err != nil {
		return Decision{}, fmt.Errorf("ai: %s: run: %w", b.name, err)
	}

	out := b.compiled.Get("__out").Map()
	if out == nil {
		return Decision{}, fmt.Errorf("ai: %s: think returned no map", b.name)
	}

	d := Decision{
		Action:      Action(stringValue(out["action"])),
		Idling:      boolValue(out["idling"]),
		IdleCounter: intValue(out["idle_counter"]),
		MoveCounter: intValue(out["move_counter"]),
		Turn:        boolValue(out["turn"]),
	}
	switch d.Action {
	case ActionIdle, ActionWalk, ActionShoot:
	default:
		return Decision{}, fmt.Errorf("%w: %q from %s", ErrUnknownAction, d.Action, b.name)
	}
	return d, nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}

func intValue(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}
