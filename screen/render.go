package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"skyraid/game"
)

// Renderer draws a snapshot with sprites where available and flat shapes otherwise
type Renderer struct {
	assets       *Assets
	face         *text.GoXFace
	showHitboxes bool
}

// NewRenderer creates a renderer over a sprite cache. Nil assets draw everything as shapes.
func NewRenderer(assets *Assets) *Renderer {
	return &Renderer{assets: assets, face: text.NewGoXFace(basicfont.Face7x13)}
}

// Close drops the font face and its glyph cache; text draws nothing afterwards
func (r *Renderer) Close() {
	r.face = nil
}

// ToggleHitboxes switches the damage hitbox overlay
func (r *Renderer) ToggleHitboxes() { r.showHitboxes = !r.showHitboxes }

var bulletColors = map[game.BulletStyle]color.NRGBA{
	game.StyleNormal:   colorYellow,
	game.StyleLaser:    colorCyan,
	game.StylePlasma:   colorPink,
	game.StyleElectric: colorLightBlue,
}

var powerUpColors = map[game.PowerUpKind]color.NRGBA{
	game.PowerUpBullet: colorOrange,
	game.PowerUpLife:   colorRed,
	game.PowerUpMorph:  colorLavender,
	game.PowerUpShield: colorShieldBlue,
}

var powerUpLetters = map[game.PowerUpKind]string{
	game.PowerUpBullet: "B",
	game.PowerUpLife:   "L",
	game.PowerUpMorph:  "M",
	game.PowerUpShield: "S",
}

var enemyColors = map[game.EnemyKind]color.NRGBA{
	game.EnemySmall:  colorPink,
	game.EnemyMedium: colorRed,
	game.EnemyLarge:  colorDeepRed,
}

// drawStars draws the background
func drawStars(dst *ebiten.Image, stars *Stars) {
	for _, st := range stars.All() {
		k := stars.Twinkle(st)
		c := color.NRGBA{
			R: uint8(float64(st.Color.R) * k),
			G: uint8(float64(st.Color.G) * k),
			B: uint8(float64(st.Color.B) * k),
			A: 255,
		}
		vector.DrawFilledRect(dst, float32(st.X), float32(st.Y), float32(st.Size), float32(st.Size), c, false)
	}
}

// drawRect fills a game rect shifted by the shake offset
func drawRect(dst *ebiten.Image, rc game.Rect, ox, oy float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rc.X+ox), float32(rc.Y+oy), float32(rc.W), float32(rc.H), clr, false)
}

// drawSprite stretches img over rc, or fills rc with fallback when img is nil
func drawSprite(dst, img *ebiten.Image, rc game.Rect, ox, oy float64, fallback color.Color) {
	if img == nil {
		drawRect(dst, rc, ox, oy, fallback)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rc.W/float64(b.Dx()), rc.H/float64(b.Dy()))
	op.GeoM.Translate(rc.X+ox, rc.Y+oy)
	dst.DrawImage(img, op)
}

// Draw renders the world: missiles, pickups, enemies, boss, bullets, players and effects
func (r *Renderer) Draw(dst *ebiten.Image, snap game.Snapshot, fx *Effects, ox, oy float64) {
	for _, m := range snap.Missiles {
		for _, t := range m.Trail {
			a := uint8(min(255, t.Life*30))
			vector.DrawFilledCircle(dst, float32(t.X+ox), float32(t.Y+oy), float32(1+t.Life/3), color.NRGBA{R: 255, G: 163, B: 0, A: a}, true)
		}
		vector.DrawFilledRect(dst, float32(m.X-3+ox), float32(m.Y+oy), 6, 16, colorLightGray, false)
		vector.DrawFilledRect(dst, float32(m.X-3+ox), float32(m.Y+oy), 6, 4, colorRed, false)
	}

	for _, p := range snap.PowerUps {
		drawRect(dst, p.Rect, ox, oy, powerUpColors[p.Kind])
		vector.StrokeRect(dst, float32(p.Rect.X+ox), float32(p.Rect.Y+oy), float32(p.Rect.W), float32(p.Rect.H), 2, colorWhite, false)
		cx, cy := p.Rect.Center()
		r.drawText(dst, powerUpLetters[p.Kind], cx+ox, cy+oy-6, colorWhite, alignCenter)
	}

	for _, e := range snap.Enemies {
		drawSprite(dst, r.assets.EnemySprite(e.Kind), e.Rect, ox, oy, enemyColors[e.Kind])
	}

	if snap.Boss != nil {
		drawSprite(dst, r.assets.Sprite("boss"), snap.Boss.Rect, ox, oy, colorDeepRed)
	}

	for _, b := range snap.Bullets {
		drawRect(dst, b.Rect, ox, oy, bulletColors[b.Style])
	}
	for _, b := range snap.EnemyBullets {
		clr := colorOrange
		if b.IsBoss {
			clr = colorRed
		}
		drawRect(dst, b.Rect, ox, oy, clr)
	}

	for i, p := range snap.Players {
		if !snap.Alive[i] {
			continue
		}
		// blink while invincible
		if p.Invincible && (p.InvincibleTimer/4)%2 == 1 {
			continue
		}
		fallback := colorBlue
		if p.ID == 2 {
			fallback = colorGreen
		}
		drawSprite(dst, r.assets.PlayerSprite(p.ID), p.Rect, ox, oy, fallback)
		if p.ShieldTimer > 0 {
			cx, cy := p.Rect.Center()
			vector.StrokeCircle(dst, float32(cx+ox), float32(cy+oy), float32(max(p.Rect.W, p.Rect.H)*0.65), 2, colorShieldBlue, true)
		}
		if r.showHitboxes {
			hb := p.Hitbox()
			vector.StrokeRect(dst, float32(hb.X+ox), float32(hb.Y+oy), float32(hb.W), float32(hb.H), 1, colorHitbox, false)
		}
	}

	r.drawEffects(dst, fx, ox, oy)
}

func (r *Renderer) drawEffects(dst *ebiten.Image, fx *Effects, ox, oy float64) {
	for _, ring := range fx.Rings {
		c := ring.Color
		c.A = uint8(255 * (1 - float64(ring.Frame)/ringLife))
		vector.StrokeCircle(dst, float32(ring.X+ox), float32(ring.Y+oy), float32(ring.Current()), 3, c, true)
	}
	for _, p := range fx.Particles {
		size := float32(2)
		if p.Life > 6 {
			size = 4
		}
		vector.DrawFilledRect(dst, float32(p.X+ox)-size/2, float32(p.Y+oy)-size/2, size, size, p.Color, false)
	}
	for _, t := range fx.Texts {
		c := t.Color
		c.A = t.Alpha()
		r.drawText(dst, t.Text, t.X+ox, t.Y+oy, c, alignCenter)
	}
}

// drawTouchControls draws the missile button, dimmed while it recharges
func (r *Renderer) drawTouchControls(dst *ebiten.Image, t *Touch, ready bool) {
	x, y, rad := t.MissileButton()
	fill := colorTouchButton
	if !ready {
		fill.A = 25
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(rad), fill, true)
	vector.StrokeCircle(dst, float32(x), float32(y), float32(rad), 2, colorLightBlue, true)
	label := "MSL"
	if !ready {
		label = "CD"
	}
	r.drawText(dst, label, x, y-6, colorLightBlue, alignCenter)
}
