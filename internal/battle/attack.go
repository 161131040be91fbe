package battle

import "fmt"

// Target is anything that can receive damage.
type Target interface {
	TakeDamage(amount int)
}

// Attacker is the capability to damage a target.
type Attacker interface {
	// Attack applies the attacker's damage to the target through the
	// target's own TakeDamage.
	Attack(t Target)

	// Damage reports the damage value without side effects.
	Damage() int
}

// Outcome records a single resolved attack.
type Outcome struct {
	Player       string
	EnemyKind    string
	Damage       int
	HealthBefore int
	HealthAfter  int
	Healed       int
}

// Defeated reports whether the attack left the player at zero health.
func (o Outcome) Defeated() bool {
	return o.HealthAfter == 0
}

// String returns the single-line result, e.g. "Player health: 90".
// The line is the same whatever the player is called.
func (o Outcome) String() string {
	return fmt.Sprintf("Player health: %d", o.HealthAfter)
}

// Resolve performs one attack against p and captures the result.
func Resolve(a Attacker, kind string, p *Player) Outcome {
	before := p.Health()
	a.Attack(p)
	return Outcome{
		Player:       p.Name(),
		EnemyKind:    kind,
		Damage:       a.Damage(),
		HealthBefore: before,
		HealthAfter:  p.Health(),
	}
}

// ResolveWithHeal performs the attack and then heals the player by heal.
// HealthAfter reflects the health once both have been applied.
func ResolveWithHeal(a Attacker, kind string, p *Player, heal int) Outcome {
	o := Resolve(a, kind, p)
	if heal > 0 {
		mid := p.Health()
		p.Heal(heal)
		o.Healed = p.Health() - mid
		o.HealthAfter = p.Health()
	}
	return o
}
