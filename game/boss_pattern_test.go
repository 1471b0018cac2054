package game

import (
	"errors"
	"math"
	"testing"
)

func volleyBullets(vs []Volley) int {
	n := 0
	for _, v := range vs {
		if v.Kind == VolleyDrop {
			n += len(v.Offsets)
			continue
		}
		n += v.Count
	}
	return n
}

func TestStandardPatternsTable(t *testing.T) {
	tests := []struct {
		level, phase int
		want         int
	}{
		{1, 0, 3},
		{1, 1, 4},
		{2, 0, 5},
		{2, 1, 8},
		{3, 0, 7},
		{3, 1, 10},
		{3, 2, 7},
		{4, 0, 9},
		{4, 1, 14},
		{4, 2, 10},
		{4, 3, 9},
		{5, 0, 11},
		{5, 1, 24},
		{5, 2, 12},
		{5, 3, 11},
		{7, 0, 20},
		{7, 1, 35},
		{7, 2, 26},
		{7, 3, 32},
	}
	var src StandardPatterns
	for _, tt := range tests {
		vs := src.Volleys(PatternContext{Level: tt.level, AttackPhase: tt.phase})
		if got := volleyBullets(vs); got != tt.want {
			t.Errorf("level %d phase %d: %d bullets, want %d", tt.level, tt.phase, got, tt.want)
		}
		for _, v := range vs {
			if err := v.Validate(); err != nil {
				t.Errorf("level %d phase %d: %v", tt.level, tt.phase, err)
			}
		}
	}
}

func TestCycleLength(t *testing.T) {
	for level, want := range map[int]int{1: 2, 2: 2, 3: 3, 4: 3, 5: 4, 9: 4} {
		if got := CycleLength(level); got != want {
			t.Errorf("CycleLength(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestSpiralPhaseFollowsPatternTimer(t *testing.T) {
	vs := StandardPatterns{}.Volleys(PatternContext{Level: 4, AttackPhase: 2, PatternTimer: 100})
	if len(vs) != 1 || vs[0].Kind != VolleySpiral || math.Abs(vs[0].Phase-5) > 1e-9 {
		t.Fatalf("unexpected spiral %+v", vs)
	}
}

func TestEmitVolleysFanAimsAtTarget(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoss(1, cfg)
	b.Rect.Y = 60
	p := NewPlayer(1, false, cfg)
	// Directly below the boss
	bx, _ := b.Rect.Center()
	p.Rect.X = bx - p.Rect.W/2

	bullets := EmitVolleys(b, p, 5, []Volley{{Kind: VolleyFan, Count: 3, Spread: 0.6}})
	if len(bullets) != 3 {
		t.Fatalf("bullets = %d", len(bullets))
	}
	mid := bullets[1]
	if math.Abs(mid.VX) > 1e-9 || math.Abs(mid.VY-5) > 1e-9 {
		t.Fatalf("middle bullet should aim straight down, got (%v, %v)", mid.VX, mid.VY)
	}
	if math.Abs(bullets[0].VX+bullets[2].VX) > 1e-9 {
		t.Fatalf("fan should be symmetric")
	}
	if !mid.IsBoss || mid.Rect.Y != b.Rect.Bottom() {
		t.Fatalf("fan should start at the boss bottom")
	}
}

func TestEmitVolleysRings(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoss(1, cfg)
	p := NewPlayer(1, false, cfg)

	circle := EmitVolleys(b, p, 4, []Volley{{Kind: VolleyCircle, Count: 8}})
	spiral := EmitVolleys(b, p, 4, []Volley{{Kind: VolleySpiral, Count: 8, Phase: 0.1}})
	if len(circle) != 8 || len(spiral) != 8 {
		t.Fatalf("ring sizes %d, %d", len(circle), len(spiral))
	}
	if s := math.Hypot(circle[3].VX, circle[3].VY); math.Abs(s-4) > 1e-9 {
		t.Fatalf("circle speed = %v, want 4", s)
	}
	if s := math.Hypot(spiral[3].VX, spiral[3].VY); math.Abs(s-3.2) > 1e-9 {
		t.Fatalf("spiral speed = %v, want 3.2", s)
	}
	if a := math.Atan2(spiral[0].VY, spiral[0].VX); math.Abs(a-0.1) > 1e-9 {
		t.Fatalf("spiral phase = %v, want 0.1", a)
	}
}

func TestEmitVolleysDrops(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoss(6, cfg)
	p := NewPlayer(1, false, cfg)
	bx, _ := b.Rect.Center()

	bullets := EmitVolleys(b, p, 10, []Volley{{Kind: VolleyDrop, Offsets: []float64{-50, 50}, SpeedMult: 1.3, Drift: 0.02}})
	if len(bullets) != 2 {
		t.Fatalf("bullets = %d", len(bullets))
	}
	if math.Abs(bullets[0].VX+1) > 1e-9 || math.Abs(bullets[1].VX-1) > 1e-9 || math.Abs(bullets[0].VY-13) > 1e-9 {
		t.Fatalf("unexpected drop velocities %+v %+v", bullets[0], bullets[1])
	}
	if c, _ := bullets[0].Rect.Center(); c != bx-50 {
		t.Fatalf("drop x = %v, want %v", c, bx-50)
	}
}

func TestEmitVolleysSkipsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoss(1, cfg)
	p := NewPlayer(1, false, cfg)
	bullets := EmitVolleys(b, p, 4, []Volley{{Kind: "laser", Count: 4}, {Kind: VolleyCircle}})
	if len(bullets) != 0 {
		t.Fatalf("invalid volleys emitted %d bullets", len(bullets))
	}
	if err := (Volley{Kind: "laser"}).Validate(); !errors.Is(err, ErrInvalidVolley) {
		t.Fatalf("err = %v", err)
	}
}

func TestBossScaling(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoss(3, cfg)
	if b.MaxHP != 49 || b.HP != 49 || b.Points != 35 {
		t.Fatalf("hp = %d points = %d", b.MaxHP, b.Points)
	}
	if BossFireInterval(cfg, 3) != 51 || BossFireInterval(cfg, 30) != 20 {
		t.Fatalf("fire interval scaling broken")
	}
	if BossBulletSpeed(cfg, 4) != cfg.BossBulletSpeed+1 {
		t.Fatalf("bullet speed scaling broken")
	}
}

func TestBossEntryAndPatrol(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoss(1, cfg)

	ticks := 0
	for b.Entering {
		if b.ShouldFire(0) {
			t.Fatalf("boss fired while entering")
		}
		b.Update()
		ticks++
	}
	if b.Rect.Y != 60 || ticks != 70 {
		t.Fatalf("entered at y %v after %d ticks", b.Rect.Y, ticks)
	}

	for i := 0; i < 2000; i++ {
		b.Update()
		if b.Rect.X < 0 || b.Rect.Right() > float64(cfg.ScreenWidth) {
			t.Fatalf("boss left the screen at x %v", b.Rect.X)
		}
	}
	if b.FireTimer != 2000 {
		t.Fatalf("fire timer = %d", b.FireTimer)
	}

	b.TakeDamage(1000)
	if b.HP != 0 || !b.Dead() {
		t.Fatalf("hp = %d", b.HP)
	}
}
