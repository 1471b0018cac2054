package game

import (
	"math"
	"testing"
)

func TestWeaponLadder(t *testing.T) {
	step := WeaponStep{BulletNormal, StyleNormal}
	for i := 0; i < 6; i++ {
		step = NextWeapon(step.Type, step.Style)
	}
	if step != (WeaponStep{BulletFan7, StyleLaser}) {
		t.Fatalf("after 6 pickups got %+v, want fan7/laser", step)
	}

	got := NextWeapon(BulletFan10, StyleElectric)
	if got != (WeaponStep{BulletFan10, StyleNormal}) {
		t.Fatalf("wrap from the top got %+v, want fan10/normal", got)
	}

	// Off-ladder pairs restart from the bottom
	if got := NextWeapon(BulletTriple, StyleLaser); got != (WeaponStep{BulletDouble, StyleNormal}) {
		t.Fatalf("off-ladder got %+v", got)
	}
}

func TestFireBulletsCounts(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		bt    BulletType
		level int
		kills int
		want  int
	}{
		{BulletNormal, 1, 0, 1},
		{BulletNormal, 1, 30, 2},
		{BulletNormal, 3, 30, 4},
		{BulletDouble, 2, 0, 2},
		{BulletDouble, 3, 0, 4},
		{BulletTriple, 1, 0, 3},
		{BulletTriple, 6, 0, 6},
		{BulletTriple, 9, 0, 6},
		{BulletFan5, 1, 0, 5},
		{BulletFan5, 4, 0, 8},
		{BulletFan7, 6, 0, 12},
		{BulletFan10, 1, 0, 10},
		{BulletFan10, 20, 0, 15},
	}
	for _, tt := range tests {
		p := NewPlayer(1, false, cfg)
		p.BulletType = tt.bt
		got := FireBullets(p, tt.kills, tt.level, cfg)
		if len(got) != tt.want {
			t.Errorf("%s level %d kills %d: %d bullets, want %d", tt.bt, tt.level, tt.kills, len(got), tt.want)
		}
		if p.BulletType != tt.bt {
			t.Errorf("FireBullets mutated the player")
		}
	}
}

func TestFireBulletsFanAngles(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(1, false, cfg)
	p.BulletType = BulletFan5

	bullets := FireBullets(p, 0, 1, cfg)
	first, last := bullets[0], bullets[len(bullets)-1]

	wantFirst := -math.Pi/2 - 0.35
	if a := math.Atan2(first.VY, first.VX); math.Abs(a-wantFirst) > 1e-9 {
		t.Fatalf("first angle = %v, want %v", a, wantFirst)
	}
	wantLast := -math.Pi/2 + 0.35
	if a := math.Atan2(last.VY, last.VX); math.Abs(a-wantLast) > 1e-9 {
		t.Fatalf("last angle = %v, want %v", a, wantLast)
	}
	mid := bullets[2]
	if math.Abs(mid.VX) > 1e-9 || math.Abs(mid.VY+cfg.BulletSpeed) > 1e-9 {
		t.Fatalf("middle bullet should fly straight up, got (%v, %v)", mid.VX, mid.VY)
	}
}

func TestFireBulletsStyleSizes(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		style BulletStyle
		w, h  float64
	}{
		{StyleNormal, 4, 12},
		{StyleLaser, 3, 18},
		{StylePlasma, 8, 14},
		{StyleElectric, 5, 14},
	}
	for _, tt := range tests {
		p := NewPlayer(1, false, cfg)
		p.BulletStyle = tt.style
		b := FireBullets(p, 0, 1, cfg)[0]
		if b.Rect.W != tt.w || b.Rect.H != tt.h || b.Style != tt.style {
			t.Errorf("%s: got %vx%v, want %vx%v", tt.style, b.Rect.W, b.Rect.H, tt.w, tt.h)
		}
		if b.Rect.Y != p.Rect.Top() {
			t.Errorf("%s: bullet should start at the ship top", tt.style)
		}
	}
}

func TestFireBulletsDoubleOffsets(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(1, false, cfg)
	p.BulletType = BulletDouble
	cx, _ := p.Rect.Center()

	b := FireBullets(p, 0, 1, cfg)
	if b[0].Rect.X != cx-8-2 || b[1].Rect.X != cx+4-2 {
		t.Fatalf("double offsets = %v, %v", b[0].Rect.X-cx, b[1].Rect.X-cx)
	}
}

func TestNextForm(t *testing.T) {
	if NextForm(FormNormal) != FormAgile || NextForm(FormAgile) != FormHeavy || NextForm(FormHeavy) != FormNormal {
		t.Fatalf("form cycle broken")
	}
}
