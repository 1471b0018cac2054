package game

// Rect is an axis-aligned box in screen space
type Rect struct {
	X, Y float64
	W, H float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether the two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Scaled returns the box scaled around its centre
func (r Rect) Scaled(s float64) Rect {
	cx, cy := r.Center()
	w, h := r.W*s, r.H*s
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Player is one ship. Lives are tracked by the Run, not here.
type Player struct {
	// ID is 1 or 2
	ID int

	Rect Rect

	// Speed is derived from Form
	Speed float64

	BulletType  BulletType
	BulletStyle BulletStyle
	Form        Form

	// Invincible is set after losing a life and cleared when InvincibleTimer runs out
	Invincible      bool
	InvincibleTimer int

	// ShieldTimer > 0 means the next hit is absorbed
	ShieldTimer int
}

const (
	playerWidth  = 50
	playerHeight = 60
)

// NewPlayer creates a player at its spawn position
func NewPlayer(id int, twoPlayer bool, cfg Config) *Player {
	w, h := float64(playerWidth), float64(playerHeight)
	sw, sh := float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)

	var x float64
	switch {
	case id == 2:
		x = sw*3/4 - w/2
	case twoPlayer:
		x = sw/4 - w/2
	default:
		x = (sw - w) / 2
	}

	p := &Player{
		ID:          id,
		Rect:        Rect{X: x, Y: sh - h - 20, W: w, H: h},
		BulletType:  BulletNormal,
		BulletStyle: StyleNormal,
	}
	p.ApplyForm(FormNormal)
	return p
}

// ApplyForm switches the ship form and its speed
func (p *Player) ApplyForm(f Form) {
	p.Form = f
	p.Speed = GetFormStats(f).Speed
}

// Hitbox is the box used for damage tests
func (p *Player) Hitbox() Rect {
	return p.Rect.Scaled(GetFormStats(p.Form).HitboxScale)
}

// Hit grants temporary invincibility
func (p *Player) Hit(frames int) {
	p.Invincible = true
	p.InvincibleTimer = frames
}

// Update counts down timers and moves the ship by the intent
func (p *Player) Update(in Intent, cfg Config) {
	if p.Invincible {
		p.InvincibleTimer--
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
		}
	}
	if p.ShieldTimer > 0 {
		p.ShieldTimer--
	}
	p.Speed = GetFormStats(p.Form).Speed

	if in.Target != nil {
		p.Rect.X = in.Target.X - p.Rect.W/2
		p.Rect.Y = in.Target.Y - p.Rect.H/2
	} else {
		dx, dy := in.Direction()
		p.Rect.X += dx * p.Speed
		p.Rect.Y += dy * p.Speed
	}

	p.Rect.X = clamp(p.Rect.X, 0, float64(cfg.ScreenWidth)-p.Rect.W)
	p.Rect.Y = clamp(p.Rect.Y, 0, float64(cfg.ScreenHeight)-p.Rect.H)
}

// Bullet is a player projectile
type Bullet struct {
	Rect   Rect
	VX, VY float64
	Style  BulletStyle
}

// Update advances the bullet
func (b *Bullet) Update() {
	b.Rect.X += b.VX
	b.Rect.Y += b.VY
}

// OffScreen reports whether the bullet left through the top
func (b *Bullet) OffScreen() bool {
	return b.Rect.Bottom() < 0
}

// EnemyBullet is fired by enemies and bosses. IsBoss only affects presentation.
type EnemyBullet struct {
	Rect   Rect
	VX, VY float64
	IsBoss bool
}

// NewEnemyBullet creates a 6x14 bullet centred horizontally on x
func NewEnemyBullet(x, y, vx, vy float64, isBoss bool) *EnemyBullet {
	return &EnemyBullet{
		Rect:   Rect{X: x - 3, Y: y, W: 6, H: 14},
		VX:     vx,
		VY:     vy,
		IsBoss: isBoss,
	}
}

// Update advances the bullet
func (b *EnemyBullet) Update() {
	b.Rect.X += b.VX
	b.Rect.Y += b.VY
}

// OffScreen checks the vertical bounds against the screen and the horizontal ones against cullX
func (b *EnemyBullet) OffScreen(screenHeight, cullX float64) bool {
	return b.Rect.Top() > screenHeight || b.Rect.Bottom() < 0 ||
		b.Rect.Right() < 0 || b.Rect.Left() > cullX
}

// PowerUp is a falling pickup
type PowerUp struct {
	Kind  PowerUpKind
	Rect  Rect
	Speed float64
}

// NewPowerUp creates a 20x20 pickup centred on (x, y)
func NewPowerUp(x, y float64, kind PowerUpKind, speed float64) *PowerUp {
	return &PowerUp{
		Kind:  kind,
		Rect:  Rect{X: x - 10, Y: y - 10, W: 20, H: 20},
		Speed: speed,
	}
}

// Update advances the pickup
func (p *PowerUp) Update() {
	p.Rect.Y += p.Speed
}

// OffScreen reports whether the pickup fell past the bottom
func (p *PowerUp) OffScreen(screenHeight float64) bool {
	return p.Rect.Top() > screenHeight
}

// TrailPoint is one exhaust puff behind a missile
type TrailPoint struct {
	X, Y float64
	Life int
}

const missileTrailLife = 8

// Missile flies straight up and detonates once past the ceiling
type Missile struct {
	X, Y  float64
	Speed float64

	// Owner is the index of the player that launched it
	Owner int

	Trail []TrailPoint
}

// NewMissile creates a missile at (x, y)
func NewMissile(x, y, speed float64, owner int) *Missile {
	return &Missile{X: x, Y: y, Speed: speed, Owner: owner}
}

// Update advances the missile and ages its trail. It reports whether the missile is terminal.
func (m *Missile) Update(ceiling float64) bool {
	m.Y -= m.Speed
	m.Trail = append(m.Trail, TrailPoint{X: m.X, Y: m.Y + m.Speed*2, Life: missileTrailLife})

	kept := m.Trail[:0]
	for _, tp := range m.Trail {
		if tp.Life <= 0 {
			continue
		}
		tp.Life--
		kept = append(kept, tp)
	}
	m.Trail = kept

	return m.Y < ceiling
}

// ExplosionPoint is where a terminal missile detonates
func (m *Missile) ExplosionPoint() (float64, float64) {
	return m.X, m.Y + 20
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
