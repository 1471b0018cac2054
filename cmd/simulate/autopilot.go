package main

import (
	"math"

	"skyraid/game"
)

const (
	// dodgeRange is how close above the ship an enemy bullet has to be to dodge it
	dodgeRange = 90
	// alignSlack is the horizontal distance treated as lined up with a target
	alignSlack = 6
	// missileCrowd is how many enemies on screen justify a missile
	missileCrowd = 4
)

// autopilot plays each living ship: dodge incoming bullets, line up under the
// nearest target, fire continuously and spend missiles on bosses and crowds.
func autopilot(snap game.Snapshot) []game.Intent {
	intents := make([]game.Intent, len(snap.Players))
	for i, p := range snap.Players {
		if !snap.Alive[i] {
			continue
		}
		intents[i] = steer(p, snap)
	}
	return intents
}

func steer(p game.Player, snap game.Snapshot) game.Intent {
	in := game.Intent{Fire: true}
	cx, _ := p.Rect.Center()

	if dx, ok := threat(p, snap.EnemyBullets); ok {
		// move away from the bullet
		in.Left = dx >= 0
		in.Right = dx < 0
		return in
	}

	if tx, ok := target(cx, snap); ok {
		switch {
		case tx < cx-alignSlack:
			in.Left = true
		case tx > cx+alignSlack:
			in.Right = true
		}
	}

	charged := false
	for _, w := range snap.Stats.Weapons {
		if w.Player == p.ID {
			charged = w.MissileCharge >= 1
		}
	}
	in.Missile = charged && (snap.Boss != nil || len(snap.Enemies) >= missileCrowd)
	return in
}

// threat returns the horizontal offset of the closest enemy bullet about to hit the ship
func threat(p game.Player, bullets []game.EnemyBullet) (float64, bool) {
	hb := p.Hitbox()
	best, found := math.Inf(1), false
	var dx float64
	for _, b := range bullets {
		above := hb.Top() - b.Rect.Bottom()
		if above < -hb.H || above > dodgeRange {
			continue
		}
		if b.Rect.Right() < hb.Left()-10 || b.Rect.Left() > hb.Right()+10 {
			continue
		}
		if above < best {
			best = above
			bx, _ := b.Rect.Center()
			hx, _ := hb.Center()
			dx = bx - hx
			found = true
		}
	}
	return dx, found
}

// target picks the boss, else the lowest enemy, else nothing
func target(cx float64, snap game.Snapshot) (float64, bool) {
	if snap.Boss != nil {
		x, _ := snap.Boss.Rect.Center()
		return x, true
	}
	lowest, found := math.Inf(-1), false
	var tx float64
	for _, e := range snap.Enemies {
		if e.Rect.Bottom() > lowest {
			lowest = e.Rect.Bottom()
			tx, _ = e.Rect.Center()
			found = true
		}
	}
	return tx, found
}
