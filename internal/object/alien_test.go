package object

import "testing"

func TestNewAlien(t *testing.T) {
	// First roll < 0.5 selects the straight behavior.
	straight := NewAlien(&seqRand{vals: []float64{0.2, 0.5, 0.5}}, testBounds)
	if straight.Behavior != AlienStraight {
		t.Errorf("behavior = %v, want AlienStraight", straight.Behavior)
	}
	zig := NewAlien(&seqRand{vals: []float64{0.8, 0.5, 0.5}}, testBounds)
	if zig.Behavior != AlienZig {
		t.Errorf("behavior = %v, want AlienZig", zig.Behavior)
	}

	if zig.HP != AlienHP {
		t.Errorf("hp = %d, want %d", zig.HP, AlienHP)
	}
	if zig.Y != -AlienHeight {
		t.Errorf("spawn y = %v, want %v", zig.Y, -AlienHeight)
	}
	if zig.Speed < 70 || zig.Speed > 130 {
		t.Errorf("speed %v out of range", zig.Speed)
	}
}

func TestAlienAdvance(t *testing.T) {
	zig := &Alien{X: 200, Y: 0, Speed: 100, Behavior: AlienZig}
	straight := &Alien{X: 200, Y: 0, Speed: 100, Behavior: AlienStraight}

	for i := 0; i < 30; i++ {
		zig.Advance(1.0/60, 1)
		straight.Advance(1.0/60, 1)
	}

	if straight.X != 200 {
		t.Errorf("straight alien drifted to x=%v", straight.X)
	}
	if zig.X == 200 {
		t.Error("zig alien never drifted laterally")
	}
	if zig.Y != straight.Y {
		t.Errorf("fall distance differs: zig %v, straight %v", zig.Y, straight.Y)
	}
	if zig.Y <= 0 {
		t.Errorf("alien did not fall: y=%v", zig.Y)
	}
}

func TestAlienSlowFactorSparesZig(t *testing.T) {
	slowed := &Alien{X: 200, Speed: 100, Behavior: AlienZig}
	full := &Alien{X: 200, Speed: 100, Behavior: AlienZig}

	slowed.Advance(0.1, 0.45)
	full.Advance(0.1, 1)

	if slowed.Y >= full.Y {
		t.Errorf("slow factor did not reduce fall: %v >= %v", slowed.Y, full.Y)
	}
	// Lateral drift runs off age, not fall speed.
	if slowed.X != full.X {
		t.Errorf("lateral drift differs under slow: %v != %v", slowed.X, full.X)
	}
}
