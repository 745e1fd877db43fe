package web

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tomz197/skyfall/internal/loop"
	"github.com/tomz197/skyfall/internal/object"
)

type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

func TestToWire(t *testing.T) {
	state := loop.NewState(fixedRand{0.999}, nil)
	state.StartRun()
	state.Asteroids = append(state.Asteroids, &object.Asteroid{X: 10, Y: 20, Size: 30, Angle: 1.5, HP: 2})
	state.PowerUps = append(state.PowerUps, &object.PowerUp{X: 5, Y: 6, Type: object.PowerSlow})
	state.Score = 12

	ws := toWire(state.Snapshot(), wireCues{Shoot: 2, Music: 1})

	if ws.Phase != int(loop.PhasePlaying) {
		t.Errorf("phase = %d", ws.Phase)
	}
	if ws.Width != loop.BoundsWidth || ws.Height != loop.BoundsHeight {
		t.Errorf("bounds = %vx%v", ws.Width, ws.Height)
	}
	if len(ws.Asteroids) != 1 || ws.Asteroids[0].Size != 30 {
		t.Errorf("asteroids = %+v", ws.Asteroids)
	}
	if len(ws.PowerUps) != 1 || ws.PowerUps[0].Type != int(object.PowerSlow) {
		t.Errorf("power-ups = %+v", ws.PowerUps)
	}
	if ws.Cues.Shoot != 2 || ws.Cues.Music != 1 {
		t.Errorf("cues = %+v", ws.Cues)
	}
}

func TestWireSnapshotRoundTrip(t *testing.T) {
	state := loop.NewState(fixedRand{0.999}, nil)
	state.StartRun()
	state.Score = 7

	in := toWire(state.Snapshot(), wireCues{})
	data, err := msgpack.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out wireSnapshot
	if err := msgpack.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Score != in.Score || out.Player.X != in.Player.X || out.Phase != in.Phase {
		t.Errorf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestCueCounterDrains(t *testing.T) {
	c := &cueCounter{}
	c.Shoot()
	c.Shoot()
	c.Explode()
	c.MusicStart()

	got := c.drain()
	if got.Shoot != 2 || got.Explode != 1 || got.Music != 1 {
		t.Errorf("drained = %+v", got)
	}
	if second := c.drain(); second != (wireCues{}) {
		t.Errorf("counter not reset: %+v", second)
	}
}
