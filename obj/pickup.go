package obj

import (
	"github.com/milk9111/shooter/common"
	"github.com/milk9111/shooter/prefabs"
)

type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupAmmo
)

func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "health"
	case PickupAmmo:
		return "ammo"
	}
	return "unknown"
}

// Pickup is an item box resting on the tile it was placed in.
type Pickup struct {
	Kind      PickupKind
	Rect      common.Rect
	Collected bool
}

// Apply gives the pickup to s. It reports whether the pickup was consumed.
func (p *Pickup) Apply(s *Soldier, spec prefabs.PickupSpec) bool {
	if p == nil || p.Collected || s == nil || !s.Alive() {
		return false
	}
	if !p.Rect.Intersects(s.Bounds()) {
		return false
	}
	switch p.Kind {
	case PickupHealth:
		s.Health += spec.HealthAmount
		if s.Health > s.MaxHealth {
			s.Health = s.MaxHealth
		}
	case PickupAmmo:
		s.Ammo += spec.AmmoAmount
	}
	p.Collected = true
	return true
}
