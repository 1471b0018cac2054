package game

// Combo tracks consecutive kills inside the combo window
type Combo struct {
	// Count of kills in the current chain
	Count int

	// Timer counts down to the end of the chain
	Timer int

	// Max is the longest chain of the run
	Max int
}

// Tick counts the window down; the chain resets to 0 when it runs out
func (c *Combo) Tick() {
	if c.Timer > 0 {
		c.Timer--
		if c.Timer <= 0 {
			c.Count = 0
		}
	}
}

// Kill extends the chain, refreshes the window and returns the multiplier
func (c *Combo) Kill(window, maxMultiplier int) int {
	c.Count++
	c.Timer = window
	if c.Count > c.Max {
		c.Max = c.Count
	}
	return Multiplier(c.Count, maxMultiplier)
}

// Multiplier is the chain length capped at maxMultiplier
func Multiplier(count, maxMultiplier int) int {
	if count > maxMultiplier {
		return maxMultiplier
	}
	return count
}

// scoreKill is the single path every enemy kill is scored through
func (r *Run) scoreKill(e *Enemy, cause KillCause) {
	mult := r.combo.Kill(r.cfg.ComboWindow, r.cfg.ComboMax)
	pts := e.Points * mult
	r.score += pts
	r.kills++

	cx, cy := e.Rect.Center()
	r.emit(Event{
		Kind:       EventEnemyDestroyed,
		X:          cx,
		Y:          cy,
		Player:     -1,
		Points:     pts,
		Multiplier: mult,
		Cause:      cause,
		Enemy:      e.Kind,
	})
	r.rollPowerUp(cx, cy)
}

// rollPowerUp drops a random power-up at (x, y) with the configured chance
func (r *Run) rollPowerUp(x, y float64) {
	if len(r.cfg.PowerUpKinds) == 0 || r.rng.Float64() >= r.cfg.PowerUpDropChance {
		return
	}
	kind := r.cfg.PowerUpKinds[r.rng.Intn(len(r.cfg.PowerUpKinds))]
	r.powerUps.Add(NewPowerUp(x, y, kind, r.cfg.PowerUpSpeed))
	r.emit(Event{Kind: EventPowerUpDropped, X: x, Y: y, Player: -1, PowerUp: kind})
}
