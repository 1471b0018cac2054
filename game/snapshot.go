package game

// WeaponTags describe a player's loadout for the HUD
type WeaponTags struct {
	Player int

	// Weapon is the effective bullet type, double once unlocked
	Weapon BulletType
	Style  BulletStyle
	Form   Form
	Shield bool

	// MissileCharge goes from 0 right after launch to 1 when ready
	MissileCharge float64
}

// Stats is the session summary shown by the HUD
type Stats struct {
	Score    int
	Level    int
	Kills    int
	Combo    int
	MaxCombo int

	// ComboMultiplier is the multiplier the next kill would extend
	ComboMultiplier int

	Lives []int

	HasBoss     bool
	BossHPRatio float64

	Phase            Phase
	BossWarningTicks int
	LevelClearTicks  int

	Weapons []WeaponTags
	Tick    int
}

// Snapshot is a read-only copy of the session for rendering
type Snapshot struct {
	Players      []Player
	Alive        []bool
	Bullets      []Bullet
	EnemyBullets []EnemyBullet
	Enemies      []Enemy
	PowerUps     []PowerUp
	Missiles     []Missile
	Boss         *Boss
	Stats        Stats
}

func copyAll[T any](c *Collection[T]) []T {
	out := make([]T, 0, c.Len())
	c.Each(func(v *T) bool {
		out = append(out, *v)
		return true
	})
	return out
}

// Snapshot copies the current state. Mutating it does not affect the run.
func (r *Run) Snapshot() Snapshot {
	s := Snapshot{
		Bullets:      copyAll(r.bullets),
		EnemyBullets: copyAll(r.enemyBullets),
		Enemies:      copyAll(r.enemies),
		PowerUps:     copyAll(r.powerUps),
		Stats:        r.Stats(),
	}
	for i, p := range r.players {
		s.Players = append(s.Players, *p)
		s.Alive = append(s.Alive, r.lives[i] > 0)
	}
	r.missiles.Each(func(m *Missile) bool {
		mc := *m
		mc.Trail = append([]TrailPoint(nil), m.Trail...)
		s.Missiles = append(s.Missiles, mc)
		return true
	})
	if r.boss != nil {
		b := *r.boss
		s.Boss = &b
	}
	return s
}

// Stats returns the session summary
func (r *Run) Stats() Stats {
	st := Stats{
		Score:            r.score,
		Level:            r.level,
		Kills:            r.kills,
		Combo:            r.combo.Count,
		MaxCombo:         r.combo.Max,
		ComboMultiplier:  Multiplier(r.combo.Count, r.cfg.ComboMax),
		Lives:            append([]int(nil), r.lives...),
		Phase:            r.Phase(),
		BossWarningTicks: r.bossWarningTimer,
		LevelClearTicks:  r.levelClearTimer,
		Tick:             r.ticks,
	}
	if !r.bossWarningActive {
		st.BossWarningTicks = 0
	}
	if r.boss != nil {
		st.HasBoss = true
		st.BossHPRatio = r.boss.HPRatio()
	}
	for i, p := range r.players {
		charge := 1.0
		if r.cfg.MissileCooldown > 0 && r.missileCooldowns[i] > 0 {
			charge = 1 - float64(r.missileCooldowns[i])/float64(r.cfg.MissileCooldown)
		}
		st.Weapons = append(st.Weapons, WeaponTags{
			Player:        p.ID,
			Weapon:        EffectiveBulletType(p.BulletType, r.kills, r.cfg.DoubleShotUnlock),
			Style:         p.BulletStyle,
			Form:          p.Form,
			Shield:        p.ShieldTimer > 0,
			MissileCharge: charge,
		})
	}
	return st
}
