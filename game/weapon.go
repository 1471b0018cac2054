package game

import "math"

// EffectiveBulletType resolves the double-shot unlock. The player's own type is untouched.
func EffectiveBulletType(t BulletType, kills, unlock int) BulletType {
	if t == BulletNormal && kills >= unlock {
		return BulletDouble
	}
	return t
}

// spreadPattern describes a fan of evenly spaced bullets around straight up
type spreadPattern struct {
	baseCount  int
	maxBonus   int
	halfAngle  float64
	angleBonus float64
}

var spreadPatterns = map[BulletType]spreadPattern{
	BulletFan10:  {baseCount: 10, maxBonus: 5, halfAngle: 0.55, angleBonus: 0.03},
	BulletFan7:   {baseCount: 7, maxBonus: 5, halfAngle: 0.45, angleBonus: 0.02},
	BulletFan5:   {baseCount: 5, maxBonus: 5, halfAngle: 0.35, angleBonus: 0.02},
	BulletTriple: {baseCount: 3, maxBonus: 3, halfAngle: 0.2, angleBonus: 0.015},
}

// FireBullets builds the projectiles for one shot from p. Kills past the
// double-shot unlock turn a normal gun into a double for this shot only.
// It never mutates the player.
func FireBullets(p *Player, kills, level int, cfg Config) []*Bullet {
	bulletType := EffectiveBulletType(p.BulletType, kills, cfg.DoubleShotUnlock)
	speed := cfg.BulletSpeed
	sc := GetBulletStyleConfig(p.BulletStyle)
	w, h := sc.Width, sc.Height
	cx, _ := p.Rect.Center()
	top := p.Rect.Top()
	left := cx - math.Floor(w/2)

	bonus := level - 1
	if bonus > 5 {
		bonus = 5
	}
	if bonus < 0 {
		bonus = 0
	}

	newBullet := func(x, angle float64) *Bullet {
		return &Bullet{
			Rect:  Rect{X: x, Y: top, W: w, H: h},
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Style: p.BulletStyle,
		}
	}
	straight := func(x float64) *Bullet {
		return &Bullet{Rect: Rect{X: x, Y: top, W: w, H: h}, VY: -speed, Style: p.BulletStyle}
	}

	if sp, ok := spreadPatterns[bulletType]; ok {
		b := bonus
		if b > sp.maxBonus {
			b = sp.maxBonus
		}
		count := sp.baseCount + b
		half := sp.halfAngle + float64(bonus)*sp.angleBonus
		denom := float64(count - 1)
		if denom < 1 {
			denom = 1
		}
		out := make([]*Bullet, 0, count)
		for i := 0; i < count; i++ {
			angle := -math.Pi/2 + (-half + 2*half*float64(i)/denom)
			out = append(out, newBullet(left, angle))
		}
		return out
	}

	if bulletType == BulletDouble {
		out := []*Bullet{straight(cx - 8 - math.Floor(w/2)), straight(cx + 4 - math.Floor(w/2))}
		if bonus >= 2 {
			for _, off := range []float64{-0.15, 0.15} {
				out = append(out, newBullet(left, -math.Pi/2+off))
			}
		}
		return out
	}

	return []*Bullet{straight(left)}
}
