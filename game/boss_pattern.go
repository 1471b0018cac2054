package game

import (
	"errors"
	"fmt"
	"math"
)

// VolleyKind is a boss bullet primitive
type VolleyKind string

const (
	VolleyFan    VolleyKind = "fan"    // aimed spread at the target
	VolleyCircle VolleyKind = "circle" // ring around the boss
	VolleySpiral VolleyKind = "spiral" // rotated ring at reduced speed
	VolleyDrop   VolleyKind = "drop"   // straight drops from offsets under the boss
)

// spiralSpeed scales spiral bullets relative to the level bullet speed
const spiralSpeed = 0.8

// ErrInvalidVolley is returned for a volley that cannot be emitted
var ErrInvalidVolley = errors.New("invalid volley")

// Volley describes one primitive of a boss attack
type Volley struct {
	Kind VolleyKind `json:"kind"`

	// Count of bullets for fan, circle and spiral
	Count int `json:"count,omitempty"`

	// Spread is the total fan arc in radians
	Spread float64 `json:"spread,omitempty"`

	// SpeedMult scales the level bullet speed; zero means 1
	SpeedMult float64 `json:"speedMult,omitempty"`

	// Phase rotates a spiral, in radians
	Phase float64 `json:"phase,omitempty"`

	// Offsets are the x offsets of drop bullets from the boss centre
	Offsets []float64 `json:"offsets,omitempty"`

	// Drift gives each drop bullet vx = offset * Drift
	Drift float64 `json:"drift,omitempty"`
}

// Validate checks a volley before emission
func (v Volley) Validate() error {
	switch v.Kind {
	case VolleyFan, VolleyCircle, VolleySpiral:
		if v.Count <= 0 {
			return fmt.Errorf("%w: %s needs a positive count, got %d", ErrInvalidVolley, v.Kind, v.Count)
		}
	case VolleyDrop:
		if len(v.Offsets) == 0 {
			return fmt.Errorf("%w: drop needs offsets", ErrInvalidVolley)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidVolley, v.Kind)
	}
	if v.SpeedMult < 0 {
		return fmt.Errorf("%w: negative speed multiplier", ErrInvalidVolley)
	}
	return nil
}

func (v Volley) speedMult() float64 {
	if v.SpeedMult == 0 {
		return 1
	}
	return v.SpeedMult
}

// PatternContext is what a pattern source sees when the boss fires
type PatternContext struct {
	Level        int     `json:"level"`
	AttackPhase  int     `json:"attackPhase"`
	PatternTimer int     `json:"patternTimer"`
	HPRatio      float64 `json:"hpRatio"`
}

// PatternSource picks the volleys of one boss attack
type PatternSource interface {
	Volleys(ctx PatternContext) []Volley
}

// StandardPatterns is the built-in per-level attack table
type StandardPatterns struct{}

// CycleLength is how many distinct attacks a level rotates through
func CycleLength(level int) int {
	switch {
	case level <= 2:
		return 2
	case level <= 4:
		return 3
	default:
		return 4
	}
}

// Volleys implements PatternSource
func (StandardPatterns) Volleys(ctx PatternContext) []Volley {
	level := ctx.Level
	branch := ctx.AttackPhase % CycleLength(level)
	pt := float64(ctx.PatternTimer)

	fan := func(count int, spread float64) Volley {
		return Volley{Kind: VolleyFan, Count: count, Spread: spread}
	}
	circle := func(count int, mult float64) Volley {
		return Volley{Kind: VolleyCircle, Count: count, SpeedMult: mult}
	}
	spiral := func(count int, phase float64) Volley {
		return Volley{Kind: VolleySpiral, Count: count, Phase: phase}
	}
	drop := func(mult, drift float64, offsets ...float64) Volley {
		return Volley{Kind: VolleyDrop, Offsets: offsets, SpeedMult: mult, Drift: drift}
	}

	switch {
	case level <= 1:
		return []Volley{fan(3+ctx.AttackPhase%2, 0.6)}
	case level == 2:
		if branch == 0 {
			return []Volley{fan(5, 0.8)}
		}
		return []Volley{circle(8, 1)}
	case level == 3:
		switch branch {
		case 0:
			return []Volley{fan(7, 1.0)}
		case 1:
			return []Volley{circle(10, 1)}
		default:
			return []Volley{fan(5, 0.5), drop(1.2, 0, -30, 30)}
		}
	case level == 4:
		switch branch {
		case 0:
			return []Volley{fan(9, 1.2)}
		case 1:
			return []Volley{circle(14, 1)}
		default:
			return []Volley{spiral(10, pt*0.05)}
		}
	case level == 5:
		switch branch {
		case 0:
			return []Volley{fan(11, 1.4)}
		case 1:
			return []Volley{circle(16, 0.9), circle(8, 1.3)}
		case 2:
			return []Volley{spiral(12, pt*0.08)}
		default:
			return []Volley{fan(7, 0.8), drop(1.1, 0, -40, -20, 20, 40)}
		}
	default:
		switch branch {
		case 0:
			return []Volley{fan(13+level, 1.6)}
		case 1:
			return []Volley{circle(18+level, 0.85), circle(10, 1.4)}
		case 2:
			return []Volley{spiral(14+level, pt*0.1), fan(5, 0.4)}
		default:
			return []Volley{circle(20+level, 1), drop(1.3, 0.02, -50, -25, 0, 25, 50)}
		}
	}
}

// BossBulletSpeed is the level-scaled base speed of boss bullets
func BossBulletSpeed(cfg Config, level int) float64 {
	return cfg.BossBulletSpeed + float64(level)*0.25
}

// BossFireInterval is the level-scaled tick gap between boss attacks
func BossFireInterval(cfg Config, level int) int {
	interval := cfg.BossFireInterval - level*3
	if interval < 20 {
		return 20
	}
	return interval
}

// EmitVolleys expands volleys into bullets. Fans aim from the boss bottom centre
// at the target centre; rings fire from the boss centre; drops fall from the bottom.
// Invalid volleys are skipped.
func EmitVolleys(b *Boss, target *Player, speed float64, volleys []Volley) []*EnemyBullet {
	bx, by := b.Rect.Center()
	bottom := b.Rect.Bottom()

	tx, ty := target.Rect.Center()
	aim := math.Atan2(ty-bottom, tx-bx)

	var out []*EnemyBullet
	for _, v := range volleys {
		if v.Validate() != nil {
			continue
		}
		spd := speed * v.speedMult()
		switch v.Kind {
		case VolleyFan:
			n := float64(v.Count - 1)
			step := v.Spread / math.Max(1, n)
			for i := 0; i < v.Count; i++ {
				a := aim + (float64(i)-n/2)*step
				out = append(out, NewEnemyBullet(bx, bottom, math.Cos(a)*spd, math.Sin(a)*spd, true))
			}
		case VolleyCircle, VolleySpiral:
			phase := 0.0
			if v.Kind == VolleySpiral {
				spd *= spiralSpeed
				phase = v.Phase
			}
			for i := 0; i < v.Count; i++ {
				a := phase + 2*math.Pi*float64(i)/float64(v.Count)
				out = append(out, NewEnemyBullet(bx, by, math.Cos(a)*spd, math.Sin(a)*spd, true))
			}
		case VolleyDrop:
			for _, ox := range v.Offsets {
				out = append(out, NewEnemyBullet(bx+ox, bottom, ox*v.Drift, spd, true))
			}
		}
	}
	return out
}
