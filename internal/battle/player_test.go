package battle

import (
	"math"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Hero")

	if p.Name() != "Hero" {
		t.Errorf("Expected name Hero, got %q", p.Name())
	}
	if p.Health() != MaxHealth {
		t.Errorf("Expected health %d, got %d", MaxHealth, p.Health())
	}
	if len(p.Items()) != 0 {
		t.Errorf("Expected empty inventory, got %d items", len(p.Items()))
	}
}

func TestNewPlayerAtClamps(t *testing.T) {
	tests := []struct {
		start int
		want  int
	}{
		{start: 50, want: 50},
		{start: -10, want: 0},
		{start: 250, want: MaxHealth},
	}

	for _, tt := range tests {
		p := NewPlayerAt("p", tt.start)
		if p.Health() != tt.want {
			t.Errorf("NewPlayerAt(%d): expected health %d, got %d", tt.start, tt.want, p.Health())
		}
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name   string
		health int
		damage int
		want   int
	}{
		{"full health", 100, 10, 90},
		{"exact kill", 10, 10, 0},
		{"no underflow", 5, 10, 0},
		{"already dead", 0, 30, 0},
		{"zero damage", 40, 0, 40},
		{"negative damage ignored", 40, -15, 40},
		{"max int damage", 100, math.MaxInt, 0},
		{"min int damage ignored", 100, math.MinInt, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayerAt("p", tt.health)
			p.TakeDamage(tt.damage)
			if p.Health() != tt.want {
				t.Errorf("Expected health %d, got %d", tt.want, p.Health())
			}
		})
	}
}

func TestTakeDamageProperty(t *testing.T) {
	for h := 0; h <= MaxHealth; h += 5 {
		for d := 0; d <= 150; d += 7 {
			p := NewPlayerAt("p", h)
			p.TakeDamage(d)

			want := h - d
			if want < 0 {
				want = 0
			}
			if p.Health() != want {
				t.Fatalf("h=%d d=%d: expected %d, got %d", h, d, want, p.Health())
			}
		}
	}
}

func TestHeal(t *testing.T) {
	tests := []struct {
		name   string
		health int
		amount int
		want   int
	}{
		{"partial", 50, 20, 70},
		{"clamped at max", 95, 20, 100},
		{"from zero", 0, 30, 30},
		{"negative ignored", 60, -5, 60},
		{"max int heal", 50, math.MaxInt, 100},
		{"max int heal at full", 100, math.MaxInt, 100},
		{"max int heal from zero", 0, math.MaxInt, 100},
		{"exactly to max", 70, 30, 100},
		{"min int heal ignored", 60, math.MinInt, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayerAt("p", tt.health)
			p.Heal(tt.amount)
			if p.Health() != tt.want {
				t.Errorf("Expected health %d, got %d", tt.want, p.Health())
			}
		})
	}
}

func TestHealProperty(t *testing.T) {
	for h := 0; h <= MaxHealth; h += 5 {
		for a := 0; a <= 150; a += 9 {
			p := NewPlayerAt("p", h)
			p.Heal(a)

			want := h + a
			if want > MaxHealth {
				want = MaxHealth
			}
			if p.Health() != want {
				t.Fatalf("h=%d a=%d: expected %d, got %d", h, a, want, p.Health())
			}
		}
	}
}

func TestAddItemPreservesOrder(t *testing.T) {
	p := NewPlayer("p")
	items := []Item{
		{ID: 1, Name: "Sword"},
		{ID: 2, Name: "Shield"},
		{ID: 3, Name: "Potion"},
	}

	for i, it := range items {
		p.AddItem(it)
		if len(p.Items()) != i+1 {
			t.Fatalf("Expected %d items after add, got %d", i+1, len(p.Items()))
		}
	}

	got := p.Items()
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("Item %d: expected %+v, got %+v", i, items[i], got[i])
		}
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	p := NewPlayer("p")
	p.AddItem(Item{ID: 1, Name: "Sword"})

	items := p.Items()
	items[0].Name = "Stick"

	if p.Items()[0].Name != "Sword" {
		t.Error("Modifying returned slice changed the inventory")
	}
}

func TestIsDefeated(t *testing.T) {
	p := NewPlayerAt("p", 5)
	if p.IsDefeated() {
		t.Fatal("Player with health should not be defeated")
	}
	p.TakeDamage(10)
	if !p.IsDefeated() {
		t.Error("Player at zero health should be defeated")
	}
}

func TestLargeAmountsStayInRange(t *testing.T) {
	amounts := []int{math.MaxInt, math.MaxInt - 1, math.MaxInt - MaxHealth, math.MaxInt / 2}

	for _, a := range amounts {
		for _, h := range []int{0, 1, 50, 99, MaxHealth} {
			p := NewPlayerAt("p", h)
			p.Heal(a)
			if p.Health() != MaxHealth {
				t.Errorf("Heal(%d) from %d: expected %d, got %d", a, h, MaxHealth, p.Health())
			}

			p = NewPlayerAt("p", h)
			p.TakeDamage(a)
			if p.Health() != 0 {
				t.Errorf("TakeDamage(%d) from %d: expected 0, got %d", a, h, p.Health())
			}
		}
	}
}
