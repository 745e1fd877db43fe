package loop

import (
	"fmt"
	"io"
	"math"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/object"
)

// drawFrame renders a snapshot to the terminal canvas and UI overlay.
func drawFrame(snap Snapshot, w io.Writer, canvas *draw.Canvas) {
	draw.ClearScreen(w)
	canvas.Clear()

	switch snap.Phase {
	case PhasePlaying, PhasePaused, PhaseGameOver:
		drawEntities(snap, canvas)
	}
	canvas.Render(w)

	drawUI(snap, w, canvas)
}

// drawEntities draws the player and all entity stores as fallback vector
// shapes. The terminal front end has no sprites; the snapshot only tells it
// entity kind and state.
func drawEntities(snap Snapshot, canvas *draw.Canvas) {
	if snap.Phase != PhaseGameOver {
		drawShip(snap.Player, canvas)
	}

	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		canvas.FillRect(b.X, b.Y, object.BulletWidth, object.BulletHeight)
	}

	for i := range snap.Asteroids {
		drawAsteroid(&snap.Asteroids[i], canvas)
	}

	for i := range snap.Aliens {
		drawAlien(&snap.Aliens[i], canvas)
	}

	for i := range snap.PowerUps {
		drawPowerUp(&snap.PowerUps[i], canvas)
	}

	for i := range snap.Particles {
		p := &snap.Particles[i]
		canvas.SetFloat(p.X, p.Y)
	}
}

// drawShip renders the player as a filled triangle pointing up.
func drawShip(p object.Player, canvas *draw.Canvas) {
	canvas.DrawPolygon([]draw.Point{
		{X: p.X + p.W/2, Y: p.Y},
		{X: p.X, Y: p.Y + p.H},
		{X: p.X + p.W, Y: p.Y + p.H},
	}, true)
}

// drawAsteroid renders a rotated square outline around the asteroid's center.
func drawAsteroid(a *object.Asteroid, canvas *draw.Canvas) {
	cx := a.X + a.Size/2
	cy := a.Y + a.Size/2
	r := a.Size / math.Sqrt2

	var corners [4]draw.Point
	for i := 0; i < 4; i++ {
		angle := a.Angle + math.Pi/4 + float64(i)*math.Pi/2
		corners[i] = draw.Point{
			X: cx + math.Cos(angle)*r,
			Y: cy + math.Sin(angle)*r,
		}
	}
	canvas.DrawPolygon(corners[:], false)
}

// drawAlien renders a saucer: filled hull with a cabin line.
func drawAlien(a *object.Alien, canvas *draw.Canvas) {
	canvas.DrawPolygon([]draw.Point{
		{X: a.X, Y: a.Y + object.AlienHeight/2},
		{X: a.X + object.AlienWidth/4, Y: a.Y},
		{X: a.X + 3*object.AlienWidth/4, Y: a.Y},
		{X: a.X + object.AlienWidth, Y: a.Y + object.AlienHeight/2},
		{X: a.X + 3*object.AlienWidth/4, Y: a.Y + object.AlienHeight},
		{X: a.X + object.AlienWidth/4, Y: a.Y + object.AlienHeight},
	}, true)
}

// drawPowerUp renders a diamond: filled for shield, outline for slow.
func drawPowerUp(p *object.PowerUp, canvas *draw.Canvas) {
	half := object.PowerUpSize / 2
	canvas.DrawPolygon([]draw.Point{
		{X: p.X + half, Y: p.Y},
		{X: p.X + object.PowerUpSize, Y: p.Y + half},
		{X: p.X + half, Y: p.Y + object.PowerUpSize},
		{X: p.X, Y: p.Y + half},
	}, p.Type == object.PowerShield)
}

// drawUI draws the text overlay for the current phase.
func drawUI(snap Snapshot, w io.Writer, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	centerX := canvas.OffsetCol() + termWidth/2
	centerY := canvas.OffsetRow() + canvas.TerminalHeight()/2

	switch snap.Phase {
	case PhaseMenu:
		drawMenuScreen(w, centerX, centerY)
	case PhasePlaying:
		drawHUD(snap, w, canvas)
	case PhasePaused:
		drawHUD(snap, w, canvas)
		drawCentered(w, centerX, centerY, "PAUSED")
		drawCentered(w, centerX, centerY+2, "Press P to resume")
	case PhaseGameOver:
		drawGameOverScreen(snap, w, centerX, centerY)
	}
}

// drawCentered writes text centered on the given terminal column.
func drawCentered(w io.Writer, centerX, row int, text string) {
	draw.MoveCursor(w, centerX-len(text)/2, row)
	fmt.Fprint(w, text)
}

// drawMenuScreen draws the title screen.
func drawMenuScreen(w io.Writer, centerX, centerY int) {
	drawCentered(w, centerX, centerY-2, "S K Y F A L L")
	drawCentered(w, centerX, centerY+1, "Press SPACE to Start")
	drawCentered(w, centerX, centerY+4, "A/D or Arrows to move, W to boost, SPACE to shoot, P to pause, Q to quit")
}

// drawHUD draws the in-game status line above the play area.
func drawHUD(snap Snapshot, w io.Writer, canvas *draw.Canvas) {
	row := canvas.OffsetRow()
	if row < 1 {
		row = 1
	}
	draw.MoveCursor(w, canvas.OffsetCol()+1, row)
	fmt.Fprintf(w, "Score: %d  Lives: %d  Level: %d  Best: %d",
		snap.HUD.Score, snap.HUD.Lives, snap.HUD.Level, snap.HUD.Best)

	if snap.SlowActive {
		slowText := "SLOW-MO"
		draw.MoveCursor(w, canvas.OffsetCol()+canvas.TerminalWidth()-len(slowText), row)
		fmt.Fprint(w, slowText)
	}
}

// drawGameOverScreen draws the end-of-run screen.
func drawGameOverScreen(snap Snapshot, w io.Writer, centerX, centerY int) {
	drawCentered(w, centerX, centerY-2, "GAME OVER")
	drawCentered(w, centerX, centerY, fmt.Sprintf("Score: %d   Best: %d", snap.HUD.Score, snap.HUD.Best))
	drawCentered(w, centerX, centerY+2, "Press SPACE to Restart, P for Menu")
}
