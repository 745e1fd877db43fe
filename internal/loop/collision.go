package loop

// Collide runs the frame's collision pass over the stores the step just
// mutated: bullets against enemies, then the player against enemies, then
// the player against power-ups. If the player dies mid-pass the run ends
// immediately and the remaining checks are skipped.
func (s *State) Collide() {
	s.collideBullets()
	if !s.collidePlayerEnemies() {
		return
	}
	s.collidePowerUps()
	s.refreshDerived()
}

// collideBullets resolves bullet hits. Each bullet scans asteroids first,
// then aliens; it is consumed by its first overlap and can damage at most
// one target per frame, whether or not the target dies.
func (s *State) collideBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		br := b.Rect()
		hit := false

		for i, a := range s.Asteroids {
			if br.Overlaps(a.Rect()) {
				hit = true
				a.HP--
				if a.HP <= 0 {
					r := a.Rect()
					s.explodeAt(r.CenterX(), r.CenterY())
					s.Score += ScorePerAsteroid
					s.Asteroids = append(s.Asteroids[:i], s.Asteroids[i+1:]...)
				}
				break
			}
		}

		if !hit {
			for i, a := range s.Aliens {
				if br.Overlaps(a.Rect()) {
					hit = true
					a.HP--
					if a.HP <= 0 {
						r := a.Rect()
						s.explodeAt(r.CenterX(), r.CenterY())
						s.Score += ScorePerAlien
						s.Aliens = append(s.Aliens[:i], s.Aliens[i+1:]...)
					}
					break
				}
			}
		}

		if !hit {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

// collidePlayerEnemies resolves ship contact with asteroids and aliens. Any
// overlap destroys the enemy outright (no hp check), explodes at the ship's
// center and costs a life. Returns false when the run ended.
func (s *State) collidePlayerEnemies() bool {
	pr := s.Player.Rect()

	for i := 0; i < len(s.Asteroids); {
		if pr.Overlaps(s.Asteroids[i].Rect()) {
			s.Asteroids = append(s.Asteroids[:i], s.Asteroids[i+1:]...)
			if !s.loseLife() {
				return false
			}
			continue
		}
		i++
	}

	for i := 0; i < len(s.Aliens); {
		if pr.Overlaps(s.Aliens[i].Rect()) {
			s.Aliens = append(s.Aliens[:i], s.Aliens[i+1:]...)
			if !s.loseLife() {
				return false
			}
			continue
		}
		i++
	}

	return true
}

// loseLife explodes at the ship's center and decrements lives. Returns false
// when the run ends.
func (s *State) loseLife() bool {
	pr := s.Player.Rect()
	s.explodeAt(pr.CenterX(), pr.CenterY())
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.endRun()
		return false
	}
	return true
}

// collidePowerUps resolves pickups: remove, cue, apply effect.
func (s *State) collidePowerUps() {
	pr := s.Player.Rect()
	for i := 0; i < len(s.PowerUps); {
		p := s.PowerUps[i]
		if pr.Overlaps(p.Rect()) {
			s.PowerUps = append(s.PowerUps[:i], s.PowerUps[i+1:]...)
			s.cues.Pickup()
			s.applyPowerUp(p.Type)
			continue
		}
		i++
	}
}
