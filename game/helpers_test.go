package game

import (
	"math/rand"
	"testing"
)

// testConfig is DefaultConfig without random power-up drops
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PowerUpDropChance = 0
	return cfg
}

func newTestRun(t *testing.T, players int) *Run {
	t.Helper()
	return newTestRunWith(t, testConfig(), players)
}

func newTestRunWith(t *testing.T, cfg Config, players int) *Run {
	t.Helper()
	r, err := NewRun(cfg, players, WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	return r
}

// enemyAt places an enemy of kind with its centre on (cx, cy)
func enemyAt(kind EnemyKind, cx, cy float64) *Enemy {
	kc := GetEnemyKindConfig(kind)
	return &Enemy{
		Kind:   kind,
		Rect:   Rect{X: cx - kc.Width/2, Y: cy - kc.Height/2, W: kc.Width, H: kc.Height},
		Speed:  kc.Speed,
		Points: kc.Points,
	}
}

// vulnerable clears the spawn invincibility of every player
func vulnerable(r *Run) {
	for _, p := range r.players {
		p.Invincible = false
		p.InvincibleTimer = 0
	}
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
