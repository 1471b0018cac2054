package game

import "fmt"

// resolveCollisions runs the collision phases in their fixed order.
// Each phase sees the removals of the phases before it.
func (r *Run) resolveCollisions(terminal []*Missile) {
	r.detonateMissiles(terminal)
	r.enemies.Compact()
	r.enemyBullets.Compact()

	killed := r.resolveProjectiles()
	for _, e := range killed {
		r.scoreKill(e, CauseBullet)
	}
	r.bullets.Compact()
	r.enemies.Compact()

	r.checkBossDeath()

	r.collectPowerUps()
	r.powerUps.Compact()

	r.damagePlayers()
	r.enemyBullets.Compact()
	r.enemies.Compact()

	r.checkGameOver()
}

// InSplash reports whether (x, y) lies within radius of the detonation point.
// The boundary counts as inside.
func InSplash(x, y, ex, ey, radius float64) bool {
	dx, dy := x-ex, y-ey
	return dx*dx+dy*dy <= radius*radius
}

// detonateMissiles applies splash damage for each terminal missile
func (r *Run) detonateMissiles(terminal []*Missile) {
	radius := r.cfg.MissileRadius
	for _, m := range terminal {
		ex, ey := m.ExplosionPoint()
		r.emit(Event{Kind: EventMissileExploded, X: ex, Y: ey, Player: m.Owner, Radius: radius})

		r.enemies.Each(func(e *Enemy) bool {
			if r.enemies.Marked(e) {
				return true
			}
			cx, cy := e.Rect.Center()
			if InSplash(cx, cy, ex, ey, radius) {
				r.enemies.Mark(e)
				r.scoreKill(e, CauseMissile)
			}
			return true
		})

		r.enemyBullets.Each(func(b *EnemyBullet) bool {
			cx, cy := b.Rect.Center()
			if InSplash(cx, cy, ex, ey, radius) {
				r.enemyBullets.Mark(b)
			}
			return true
		})

		if r.boss != nil {
			cx, cy := r.boss.Rect.Center()
			if InSplash(cx, cy, ex, ey, radius) {
				r.boss.TakeDamage(r.cfg.MissileBossDamage)
				r.emit(Event{Kind: EventBossHit, X: cx, Y: cy, Player: m.Owner, Cause: CauseMissile})
			}
		}
	}
}

// resolveProjectiles hits the boss when one is present, otherwise enemies.
// A bullet stops at the first enemy it overlaps, which only the first such bullet destroys.
func (r *Run) resolveProjectiles() []*Enemy {
	if r.boss != nil {
		r.bullets.Each(func(b *Bullet) bool {
			if b.Rect.Intersects(r.boss.Rect) {
				r.bullets.Mark(b)
				r.boss.TakeDamage(1)
				cx, cy := b.Rect.Center()
				r.emit(Event{Kind: EventBulletSpark, X: cx, Y: cy, Player: -1})
			}
			return true
		})
		return nil
	}

	var killed []*Enemy
	r.bullets.Each(func(b *Bullet) bool {
		r.enemies.Each(func(e *Enemy) bool {
			if !b.Rect.Intersects(e.Rect) {
				return true
			}
			// the first overlap stops the bullet even if that enemy is already gone
			r.bullets.Mark(b)
			cx, cy := b.Rect.Center()
			r.emit(Event{Kind: EventBulletSpark, X: cx, Y: cy, Player: -1})
			if !r.enemies.Marked(e) {
				r.enemies.Mark(e)
				killed = append(killed, e)
			}
			return false
		})
		return true
	})
	return killed
}

// checkBossDeath awards the boss and starts the level-clear transition
func (r *Run) checkBossDeath() {
	if r.boss == nil || !r.boss.Dead() {
		return
	}
	cx, cy := r.boss.Rect.Center()
	r.score += r.boss.Points
	r.emit(Event{Kind: EventBossDestroyed, X: cx, Y: cy, Player: -1, Points: r.boss.Points})
	r.log.Infof("boss destroyed on level %d, score %d", r.level, r.score)
	r.boss = nil
	r.levelClearTimer = r.cfg.LevelClearTicks
}

// collectPowerUps lets the first touching living player take each pickup
func (r *Run) collectPowerUps() {
	r.powerUps.Each(func(pu *PowerUp) bool {
		for i, p := range r.players {
			if r.lives[i] <= 0 || !p.Rect.Intersects(pu.Rect) {
				continue
			}
			label := r.applyPowerUp(i, pu.Kind)
			r.powerUps.Mark(pu)
			cx, _ := p.Rect.Center()
			r.emit(Event{
				Kind:    EventPowerUpCollected,
				X:       cx,
				Y:       p.Rect.Top() - 10,
				Player:  i,
				PowerUp: pu.Kind,
				Label:   label,
			})
			break
		}
		return true
	})
}

// applyPowerUp applies a pickup effect and returns a short label for it
func (r *Run) applyPowerUp(i int, kind PowerUpKind) string {
	p := r.players[i]
	switch kind {
	case PowerUpBullet:
		next := NextWeapon(p.BulletType, p.BulletStyle)
		p.BulletType, p.BulletStyle = next.Type, next.Style
		if next.Style != StyleNormal {
			return string(next.Style)
		}
		return string(next.Type)
	case PowerUpLife:
		r.lives[i]++
		return "+1 life"
	case PowerUpMorph:
		p.ApplyForm(NextForm(p.Form))
		return string(p.Form)
	case PowerUpShield:
		p.ShieldTimer = r.cfg.ShieldDuration
		return "shield"
	default:
		panic(fmt.Sprintf("game: unknown power-up kind %q", kind))
	}
}

// damagePlayers tests each vulnerable player against enemy bullets, then enemies, then the boss.
// At most one hit lands per player per tick.
func (r *Run) damagePlayers() {
	for i, p := range r.players {
		if r.lives[i] <= 0 || p.Invincible {
			continue
		}
		hitbox := p.Hitbox()

		hit := false
		r.enemyBullets.Each(func(b *EnemyBullet) bool {
			if r.enemyBullets.Marked(b) || !hitbox.Intersects(b.Rect) {
				return true
			}
			r.enemyBullets.Mark(b)
			cx, cy := b.Rect.Center()
			r.takeHit(i, cx, cy)
			hit = true
			return false
		})
		if hit {
			continue
		}

		r.enemies.Each(func(e *Enemy) bool {
			if r.enemies.Marked(e) || !hitbox.Intersects(e.Rect) {
				return true
			}
			r.enemies.Mark(e)
			cx, cy := e.Rect.Center()
			r.emit(Event{Kind: EventEnemyDestroyed, X: cx, Y: cy, Player: i, Cause: CauseRam, Enemy: e.Kind})
			r.takeHit(i, cx, cy)
			hit = true
			return false
		})
		if hit {
			continue
		}

		if r.boss != nil && hitbox.Intersects(r.boss.Rect) {
			cx, cy := p.Rect.Center()
			r.takeHit(i, cx, cy)
		}
	}
}

// takeHit spends the shield if there is one, otherwise a life
func (r *Run) takeHit(i int, x, y float64) {
	p := r.players[i]
	if p.ShieldTimer > 0 {
		p.ShieldTimer = 0
		r.emit(Event{Kind: EventShieldAbsorbed, X: x, Y: y, Player: i})
		return
	}

	r.lives[i]--
	if r.lives[i] > 0 {
		p.Hit(r.cfg.InvincibilityFrames)
		r.emit(Event{Kind: EventPlayerHit, X: x, Y: y, Player: i})
		return
	}
	cx, cy := p.Rect.Center()
	r.emit(Event{Kind: EventPlayerDown, X: cx, Y: cy, Player: i})
	r.log.Infof("player %d down at score %d", p.ID, r.score)
}

// checkGameOver ends the run once every player is out of lives
func (r *Run) checkGameOver() {
	for _, l := range r.lives {
		if l > 0 {
			return
		}
	}
	r.over = true
	r.emit(Event{Kind: EventGameOver, Player: -1, Points: r.score, Level: r.level})
	r.log.Infof("game over: score %d, kills %d, max combo %d, level %d",
		r.score, r.kills, r.combo.Max, r.level)
}
