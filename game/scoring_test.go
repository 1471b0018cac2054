package game

import "testing"

func TestComboResetsAfterWindow(t *testing.T) {
	r := newTestRun(t, 1)

	r.scoreKill(enemyAt(EnemyMedium, 100, 100), CauseBullet)
	if r.combo.Count != 1 {
		t.Fatalf("combo after first kill = %d, want 1", r.combo.Count)
	}

	for i := 0; i < r.cfg.ComboWindow; i++ {
		r.combo.Tick()
	}
	if r.combo.Count != 0 {
		t.Fatalf("combo after window = %d, want 0", r.combo.Count)
	}

	r.scoreKill(enemyAt(EnemyMedium, 100, 100), CauseBullet)
	if r.combo.Count != 1 {
		t.Fatalf("combo after second kill = %d, want 1", r.combo.Count)
	}
	if r.combo.Max != 1 {
		t.Fatalf("max combo = %d, want 1", r.combo.Max)
	}
}

func TestComboSurvivesInsideWindow(t *testing.T) {
	var c Combo
	c.Kill(90, 8)
	for i := 0; i < 89; i++ {
		c.Tick()
	}
	if got := c.Kill(90, 8); got != 2 {
		t.Fatalf("multiplier = %d, want 2", got)
	}
	if c.Timer != 90 {
		t.Fatalf("timer = %d, want refreshed to 90", c.Timer)
	}
}

func TestMultiplierIsCapped(t *testing.T) {
	r := newTestRun(t, 1)
	for i := 0; i < 12; i++ {
		r.scoreKill(enemyAt(EnemyLarge, 100, 100), CauseMissile)
	}
	// 3 points * (1+2+...+8 + 8*4)
	want := 3 * (36 + 32)
	if r.score != want {
		t.Fatalf("score = %d, want %d", r.score, want)
	}
	if r.kills != 12 || r.combo.Max != 12 {
		t.Fatalf("kills = %d, max combo = %d, want 12 and 12", r.kills, r.combo.Max)
	}
}

func TestScoreKillEmitsEvent(t *testing.T) {
	r := newTestRun(t, 1)
	r.events = nil
	r.scoreKill(enemyAt(EnemySmall, 50, 60), CauseBullet)

	if len(r.events) != 1 {
		t.Fatalf("events = %d, want 1", len(r.events))
	}
	e := r.events[0]
	if e.Kind != EventEnemyDestroyed || e.Points != 2 || e.Multiplier != 1 || e.X != 50 || e.Y != 60 {
		t.Fatalf("unexpected event %+v", e)
	}
}

func TestPowerUpDropRoll(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUpDropChance = 1
	cfg.PowerUpKinds = []PowerUpKind{PowerUpShield}
	r := newTestRunWith(t, cfg, 1)

	r.scoreKill(enemyAt(EnemySmall, 50, 60), CauseBullet)
	if r.powerUps.Len() != 1 {
		t.Fatalf("power-ups = %d, want 1", r.powerUps.Len())
	}
	pu := r.powerUps.At(0)
	if pu.Kind != PowerUpShield || pu.Rect != (Rect{X: 40, Y: 50, W: 20, H: 20}) {
		t.Fatalf("unexpected power-up %+v", pu)
	}
}
