// Package enemy implements the attacking side of a battle.
package enemy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LilyAvelis/battle-arena/internal/battle"
)

// ErrUnknownKind is returned when parsing a kind outside the closed set.
var ErrUnknownKind = errors.New("enemy: unknown kind")

// Kind tags what sort of enemy this is.
type Kind string

const (
	KindGoblin   Kind = "goblin"
	KindDragon   Kind = "dragon"
	KindSkeleton Kind = "skeleton"
)

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindGoblin, KindDragon, KindSkeleton}
}

// ParseKind converts a string to a Kind, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Kinds() {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// String returns the kind's tag.
func (k Kind) String() string {
	return string(k)
}

// Enemy has a kind and a fixed damage value. Attacking never changes it.
type Enemy struct {
	kind   Kind
	damage int
}

var _ battle.Attacker = Enemy{}

// New creates an enemy. Negative damage is clamped to zero.
func New(kind Kind, damage int) Enemy {
	if damage < 0 {
		damage = 0
	}
	return Enemy{kind: kind, damage: damage}
}

// Default creates an enemy of the given kind with its standard damage.
func Default(kind Kind) Enemy {
	return New(kind, DefaultDamage(kind))
}

// Kind returns the enemy's kind.
func (e Enemy) Kind() Kind {
	return e.kind
}

// Attack applies this enemy's damage to the target.
func (e Enemy) Attack(t battle.Target) {
	t.TakeDamage(e.damage)
}

// Damage reports the damage this enemy deals.
func (e Enemy) Damage() int {
	return e.damage
}
