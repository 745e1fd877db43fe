package object

import (
	"math"
	"testing"
)

func TestNewPlayerPosition(t *testing.T) {
	p := NewPlayer(testBounds)
	if got, want := p.X, (testBounds.Width-PlayerWidth)/2; got != want {
		t.Errorf("spawn x = %v, want %v", got, want)
	}
	if p.Y+p.H >= testBounds.Height {
		t.Errorf("ship spawned below the bottom edge: y=%v", p.Y)
	}
}

func TestSteer(t *testing.T) {
	dt := 0.1

	t.Run("left", func(t *testing.T) {
		p := NewPlayer(testBounds)
		start := p.X
		p.Steer(Input{Left: true}, dt, testBounds)
		if got, want := p.X, start-PlayerSpeed*dt; got != want {
			t.Errorf("x = %v, want %v", got, want)
		}
	})

	t.Run("right wins over left", func(t *testing.T) {
		p := NewPlayer(testBounds)
		start := p.X
		p.Steer(Input{Left: true, Right: true}, dt, testBounds)
		if p.X <= start {
			t.Errorf("x = %v, expected movement to the right of %v", p.X, start)
		}
	})

	t.Run("boost multiplies speed", func(t *testing.T) {
		plain := NewPlayer(testBounds)
		boosted := NewPlayer(testBounds)
		plain.Steer(Input{Right: true}, dt, testBounds)
		boosted.Steer(Input{Right: true, Boost: true}, dt, testBounds)
		plainDist := plain.X - NewPlayer(testBounds).X
		boostDist := boosted.X - NewPlayer(testBounds).X
		if math.Abs(boostDist-plainDist*BoostFactor) > 1e-9 {
			t.Errorf("boost distance = %v, want %v", boostDist, plainDist*BoostFactor)
		}
		if !boosted.Boosting {
			t.Error("Boosting flag not set")
		}
	})

	t.Run("clamped to margins", func(t *testing.T) {
		p := NewPlayer(testBounds)
		for i := 0; i < 100; i++ {
			p.Steer(Input{Left: true, Boost: true}, dt, testBounds)
		}
		if p.X != PlayerMargin {
			t.Errorf("left clamp: x = %v, want %v", p.X, PlayerMargin)
		}
		for i := 0; i < 100; i++ {
			p.Steer(Input{Right: true, Boost: true}, dt, testBounds)
		}
		if got, want := p.X, testBounds.Width-PlayerMargin-PlayerWidth; got != want {
			t.Errorf("right clamp: x = %v, want %v", got, want)
		}
	})

	t.Run("no input stops", func(t *testing.T) {
		p := NewPlayer(testBounds)
		start := p.X
		p.Steer(Input{}, dt, testBounds)
		if p.X != start || p.VX != 0 {
			t.Errorf("ship moved without input: x=%v vx=%v", p.X, p.VX)
		}
	})
}

func TestCooldown(t *testing.T) {
	p := NewPlayer(testBounds)
	if !p.CanShoot() {
		t.Fatal("fresh ship cannot shoot")
	}
	p.Cooldown = ShootCooldown
	if p.CanShoot() {
		t.Fatal("can shoot during cooldown")
	}
	p.TickCooldown(0.1) // 100ms
	if p.CanShoot() {
		t.Fatal("cooldown elapsed too early")
	}
	p.TickCooldown(0.2)
	if !p.CanShoot() {
		t.Fatal("cooldown did not elapse")
	}
	if p.Cooldown != 0 {
		t.Errorf("cooldown went negative: %v", p.Cooldown)
	}
}

func TestNewBulletSpawnsAtNose(t *testing.T) {
	p := NewPlayer(testBounds)
	b := NewBullet(p)
	if got, want := b.X+BulletWidth/2, p.X+p.W/2; got != want {
		t.Errorf("bullet center x = %v, want %v", got, want)
	}
	if b.Y != p.Y-BulletHeight {
		t.Errorf("bullet y = %v, want %v", b.Y, p.Y-BulletHeight)
	}
}

func TestBulletAdvanceAndRemoval(t *testing.T) {
	b := &Bullet{Y: 100}
	b.Advance(0.1)
	if got, want := b.Y, 100-BulletSpeed*0.1; got != want {
		t.Errorf("y = %v, want %v", got, want)
	}
	b.Y = -30
	if b.OffScreen() {
		t.Error("bullet at the removal bound should not be removed yet")
	}
	b.Y = -30.1
	if !b.OffScreen() {
		t.Error("bullet past the removal bound should be removed")
	}
}
