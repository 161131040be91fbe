// Package battle contains the core combat model: players, their items and
// the attack capability enemies implement.
// It has no I/O and no external dependencies; the CLI and storage layers
// build on top of it.
package battle

// MaxHealth is the health a player starts with and can never exceed.
const MaxHealth = 100

// Item is something a player owns. Items are values and never change after
// creation.
type Item struct {
	ID   int
	Name string
}

// Player holds a player's name, health and inventory.
// Health is always kept within [0, MaxHealth].
type Player struct {
	name   string
	health int
	items  []Item
}

// NewPlayer creates a player with full health and an empty inventory.
func NewPlayer(name string) *Player {
	return &Player{
		name:   name,
		health: MaxHealth,
	}
}

// NewPlayerAt creates a player with the given starting health, clamped to
// [0, MaxHealth]. Used when a scenario starts a player already wounded.
func NewPlayerAt(name string, health int) *Player {
	return &Player{
		name:   name,
		health: clamp(health, 0, MaxHealth),
	}
}

// Name returns the player's name.
func (p *Player) Name() string {
	return p.name
}

// Health returns the current health.
func (p *Player) Health() int {
	return p.health
}

// IsDefeated reports whether health has reached zero.
func (p *Player) IsDefeated() bool {
	return p.health == 0
}

// TakeDamage lowers health by amount, stopping at zero.
// Negative amounts are ignored so damage can never heal.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	if amount >= p.health {
		p.health = 0
		return
	}
	p.health -= amount
}

// Heal raises health by amount, stopping at MaxHealth.
// Negative amounts are ignored.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	if amount >= MaxHealth-p.health {
		p.health = MaxHealth
		return
	}
	p.health += amount
}

// AddItem appends an item to the inventory.
func (p *Player) AddItem(item Item) {
	p.items = append(p.items, item)
}

// Items returns a copy of the inventory in insertion order.
func (p *Player) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
