package enemy

import (
	"github.com/LilyAvelis/battle-arena/internal/battle"
	"github.com/LilyAvelis/battle-arena/internal/registry"
)

// Default damage per kind.
var defaultDamage = map[Kind]int{
	KindGoblin:   10,
	KindDragon:   40,
	KindSkeleton: 15,
}

var titles = map[Kind]string{
	KindGoblin:   "Goblin",
	KindDragon:   "Dragon",
	KindSkeleton: "Skeleton",
}

// DefaultDamage returns the standard damage for a kind, 0 if unknown.
func DefaultDamage(kind Kind) int {
	return defaultDamage[kind]
}

func init() {
	for _, k := range Kinds() {
		kind := k
		registry.Register(kind.String(), titles[kind], func() battle.Attacker {
			return Default(kind)
		})
	}
}
