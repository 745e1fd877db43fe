// Package web serves the game to a browser: input messages come in over a
// WebSocket, msgpack-encoded frame snapshots go out. The browser is a render
// surface and input source, nothing more; the simulation runs server-side.
package web

import (
	"github.com/tomz197/skyfall/internal/loop"
)

// InputMsg is the client→server control message. The client sends one
// whenever its key/touch state changes.
type InputMsg struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Boost bool `json:"boost"`
	Shoot bool `json:"shoot"`
	Pause bool `json:"pause"`
	Start bool `json:"start"`
}

// Wire snapshot types. Field names are shortened to keep 30 Hz broadcasts
// small.

type wirePlayer struct {
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	W        float64 `msgpack:"w"`
	H        float64 `msgpack:"h"`
	Boosting bool    `msgpack:"b"`
}

type wireRect struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

type wireAsteroid struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Size  float64 `msgpack:"s"`
	Angle float64 `msgpack:"a"`
}

type wireAlien struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

type wirePowerUp struct {
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	Type int     `msgpack:"t"`
}

type wireParticle struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Size  float64 `msgpack:"s"`
	Color string  `msgpack:"c"`
}

type wireCues struct {
	Shoot   int `msgpack:"sh"`
	Explode int `msgpack:"ex"`
	Pickup  int `msgpack:"pu"`
	Music   int `msgpack:"mu"` // 1 start, -1 stop, 0 unchanged
}

type wireSnapshot struct {
	Phase     int            `msgpack:"ph"`
	Width     float64        `msgpack:"w"`
	Height    float64        `msgpack:"h"`
	Player    wirePlayer     `msgpack:"p"`
	Bullets   []wireRect     `msgpack:"bu"`
	Asteroids []wireAsteroid `msgpack:"as"`
	Aliens    []wireAlien    `msgpack:"al"`
	PowerUps  []wirePowerUp  `msgpack:"po"`
	Particles []wireParticle `msgpack:"pa"`
	Score     int            `msgpack:"sc"`
	Lives     int            `msgpack:"li"`
	Level     int            `msgpack:"lv"`
	Best      int            `msgpack:"be"`
	Slow      bool           `msgpack:"sl"`
	Cues      wireCues       `msgpack:"cu"`
}

// toWire converts a core snapshot plus pending cues into the wire form.
func toWire(snap loop.Snapshot, cues wireCues) wireSnapshot {
	ws := wireSnapshot{
		Phase:  int(snap.Phase),
		Width:  snap.Bounds.Width,
		Height: snap.Bounds.Height,
		Player: wirePlayer{
			X: snap.Player.X, Y: snap.Player.Y,
			W: snap.Player.W, H: snap.Player.H,
			Boosting: snap.Player.Boosting,
		},
		Score: snap.HUD.Score,
		Lives: snap.HUD.Lives,
		Level: snap.HUD.Level,
		Best:  snap.HUD.Best,
		Slow:  snap.SlowActive,
		Cues:  cues,
	}

	ws.Bullets = make([]wireRect, len(snap.Bullets))
	for i, b := range snap.Bullets {
		ws.Bullets[i] = wireRect{X: b.X, Y: b.Y}
	}
	ws.Asteroids = make([]wireAsteroid, len(snap.Asteroids))
	for i, a := range snap.Asteroids {
		ws.Asteroids[i] = wireAsteroid{X: a.X, Y: a.Y, Size: a.Size, Angle: a.Angle}
	}
	ws.Aliens = make([]wireAlien, len(snap.Aliens))
	for i, a := range snap.Aliens {
		ws.Aliens[i] = wireAlien{X: a.X, Y: a.Y}
	}
	ws.PowerUps = make([]wirePowerUp, len(snap.PowerUps))
	for i, p := range snap.PowerUps {
		ws.PowerUps[i] = wirePowerUp{X: p.X, Y: p.Y, Type: int(p.Type)}
	}
	ws.Particles = make([]wireParticle, len(snap.Particles))
	for i, p := range snap.Particles {
		ws.Particles[i] = wireParticle{X: p.X, Y: p.Y, Size: p.Size, Color: p.Color}
	}

	return ws
}
