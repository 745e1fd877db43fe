package object

import "testing"

func TestNewPowerUpType(t *testing.T) {
	slow := NewPowerUp(&seqRand{vals: []float64{0.2, 0.5}}, testBounds)
	if slow.Type != PowerSlow {
		t.Errorf("type = %v, want PowerSlow", slow.Type)
	}
	shield := NewPowerUp(&seqRand{vals: []float64{0.8, 0.5}}, testBounds)
	if shield.Type != PowerShield {
		t.Errorf("type = %v, want PowerShield", shield.Type)
	}
}

func TestPowerUpFallAndRemoval(t *testing.T) {
	p := &PowerUp{Y: 0}
	p.Advance(1)
	if p.Y != PowerUpFallSpeed {
		t.Errorf("y = %v, want %v", p.Y, PowerUpFallSpeed)
	}
	p.Y = testBounds.Height + 40
	if p.OffScreen(testBounds) {
		t.Error("power-up at the removal bound should not be removed yet")
	}
	p.Y += 1
	if !p.OffScreen(testBounds) {
		t.Error("power-up past the removal bound should be removed")
	}
}
