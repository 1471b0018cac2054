package screen

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"skyraid/game"
)

// Shake is a decaying screen shake
type Shake struct {
	Intensity int
	Duration  int
}

// Trigger starts a shake, keeping the stronger of the current and the new one
func (s *Shake) Trigger(intensity, duration int) {
	s.Intensity = max(s.Intensity, intensity)
	s.Duration = max(s.Duration, duration)
}

// Update decays the shake by one frame
func (s *Shake) Update() {
	if s.Duration <= 0 {
		return
	}
	s.Duration--
	t := float64(s.Duration) / float64(max(1, s.Duration+5))
	s.Intensity = int(float64(s.Intensity) * t)
	if s.Duration <= 0 {
		s.Intensity = 0
	}
}

// Offset returns a random displacement within the current intensity
func (s *Shake) Offset(rng *rand.Rand) (float64, float64) {
	if s.Duration <= 0 || s.Intensity <= 0 {
		return 0, 0
	}
	n := s.Intensity*2 + 1
	return float64(rng.Intn(n) - s.Intensity), float64(rng.Intn(n) - s.Intensity)
}

// Particle is one spark
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Color  color.NRGBA
}

// FloatingText rises and fades above where something happened
type FloatingText struct {
	X, Y     float64
	Text     string
	Color    color.NRGBA
	Frame    int
	Duration int
}

// Alpha fades quadratically over the text's life
func (f *FloatingText) Alpha() uint8 {
	t := float64(f.Frame) / float64(f.Duration)
	return uint8(math.Max(0, 255-255*t*t))
}

// Ring is an expanding shockwave
type Ring struct {
	X, Y   float64
	Radius float64
	Frame  int
	Color  color.NRGBA
}

// Current returns the ring's radius this frame
func (r *Ring) Current() float64 {
	return r.Radius * float64(r.Frame) / ringLife
}

// Effects holds every presentation-only effect driven by game events
type Effects struct {
	Shake     Shake
	Particles []Particle
	Texts     []FloatingText
	Rings     []Ring

	rng *rand.Rand
}

// NewEffects creates an empty effect set
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{rng: rng}
}

// Burst emits n sparks at (x, y) in random directions
func (e *Effects) Burst(x, y float64, n int, minSpeed, maxSpeed float64, colors ...color.NRGBA) {
	if len(colors) == 0 {
		colors = []color.NRGBA{colorWhite, colorYellow, colorOrange}
	}
	for i := 0; i < n && len(e.Particles) < maxParticles; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := minSpeed + e.rng.Float64()*(maxSpeed-minSpeed)
		e.Particles = append(e.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  4 + e.rng.Intn(7),
			Color: colors[e.rng.Intn(len(colors))],
		})
	}
}

// Text adds a floating label
func (e *Effects) Text(x, y float64, s string, c color.NRGBA) {
	e.Texts = append(e.Texts, FloatingText{X: x, Y: y, Text: s, Color: c, Duration: floatingTextLife})
}

// Apply turns one game event into effects
func (e *Effects) Apply(ev game.Event) {
	if intensity, duration := ev.Shake(); duration > 0 {
		e.Shake.Trigger(intensity, duration)
	}

	switch ev.Kind {
	case game.EventEnemyDestroyed:
		e.Burst(ev.X, ev.Y, explosionSparks, 2, 6)
		e.Text(ev.X, ev.Y-10, fmt.Sprintf("+%d", ev.Points), colorYellow)
		if ev.Multiplier > 1 {
			e.Text(ev.X, ev.Y-26, fmt.Sprintf("x%d COMBO", ev.Multiplier), colorPink)
		}
	case game.EventBulletSpark:
		e.Burst(ev.X, ev.Y, sparkCount, 2, 6)
	case game.EventBossHit:
		e.Burst(ev.X, ev.Y, sparkCount, 2, 6, colorRed, colorWhite)
	case game.EventBossDestroyed:
		e.Burst(ev.X, ev.Y, bossExplosionParts, 3, 10, colorOrange, colorYellow, colorRed, colorWhite)
		e.Rings = append(e.Rings, Ring{X: ev.X, Y: ev.Y, Radius: 160, Color: colorOrange})
		e.Text(ev.X, ev.Y, fmt.Sprintf("BOSS DOWN +%d", ev.Points), colorGold)
	case game.EventMissileExploded:
		e.Burst(ev.X, ev.Y, explosionSparks, 3, 8, colorOrange, colorYellow)
		e.Rings = append(e.Rings, Ring{X: ev.X, Y: ev.Y, Radius: ev.Radius, Color: colorLightBlue})
	case game.EventPowerUpCollected:
		e.Text(ev.X, ev.Y, ev.Label, colorCyan)
	case game.EventShieldAbsorbed:
		e.Burst(ev.X, ev.Y, sparkCount, 2, 5, colorShieldBlue, colorWhite)
	case game.EventPlayerHit, game.EventPlayerDown:
		e.Burst(ev.X, ev.Y, explosionSparks, 2, 7, colorRed, colorOrange)
	case game.EventLevelCleared:
		e.Text(ev.X, ev.Y, fmt.Sprintf("LEVEL %d CLEAR", ev.Level), colorLightGreen)
	}
}

// Update advances every effect by one frame and drops the finished ones
func (e *Effects) Update() {
	e.Shake.Update()

	alive := e.Particles[:0]
	for _, p := range e.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= sparkDrag
		p.VY *= sparkDrag
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	e.Particles = alive

	texts := e.Texts[:0]
	for _, t := range e.Texts {
		t.Frame++
		t.Y -= floatingTextRise
		if t.Frame < t.Duration {
			texts = append(texts, t)
		}
	}
	e.Texts = texts

	rings := e.Rings[:0]
	for _, r := range e.Rings {
		r.Frame++
		if r.Frame < ringLife {
			rings = append(rings, r)
		}
	}
	e.Rings = rings
}

// Reset clears everything, used between runs
func (e *Effects) Reset() {
	e.Shake = Shake{}
	e.Particles = e.Particles[:0]
	e.Texts = e.Texts[:0]
	e.Rings = e.Rings[:0]
}

// Star is one point of the scrolling background
type Star struct {
	X, Y  float64
	Speed float64
	Size  float64
	Phase float64
	Color color.NRGBA
}

// Stars is a layered vertical starfield
type Stars struct {
	stars []Star
	w, h  float64
	rng   *rand.Rand
	tick  int
}

var starLayers = []struct {
	weight   int
	minSpeed float64
	maxSpeed float64
	size     float64
	colors   []color.NRGBA
}{
	{3, 0.3, 0.8, 2, []color.NRGBA{{80, 80, 100, 255}, {60, 60, 80, 255}, {100, 80, 100, 255}}},
	{4, 1.0, 2.0, 2, []color.NRGBA{colorWhite, {200, 200, 255, 255}, colorLightGray}},
	{3, 2.0, 3.5, 4, []color.NRGBA{colorWhite, colorCyan, colorYellow, colorPink, colorLightBlue}},
}

// NewStars scatters n stars over a w x h screen. Layers are picked 3:4:3 from far to near.
func NewStars(n, w, h int, rng *rand.Rand) *Stars {
	s := &Stars{w: float64(w), h: float64(h), rng: rng}
	total := 0
	for _, l := range starLayers {
		total += l.weight
	}
	for i := 0; i < n; i++ {
		pick := rng.Intn(total)
		layer := starLayers[0]
		for _, l := range starLayers {
			if pick < l.weight {
				layer = l
				break
			}
			pick -= l.weight
		}
		s.stars = append(s.stars, Star{
			X:     rng.Float64() * s.w,
			Y:     rng.Float64() * s.h,
			Speed: layer.minSpeed + rng.Float64()*(layer.maxSpeed-layer.minSpeed),
			Size:  layer.size,
			Phase: rng.Float64() * 2 * math.Pi,
			Color: layer.colors[rng.Intn(len(layer.colors))],
		})
	}
	return s
}

// Update scrolls the stars down, wrapping them to a random x at the top
func (s *Stars) Update() {
	s.tick++
	for i := range s.stars {
		st := &s.stars[i]
		st.Y += st.Speed
		if st.Y > s.h {
			st.Y = -st.Size
			st.X = s.rng.Float64() * s.w
		}
	}
}

// Twinkle returns the brightness factor of a star this frame, in [0.4, 1]
func (s *Stars) Twinkle(st Star) float64 {
	return math.Sin(float64(s.tick)/36+st.Phase)*0.3 + 0.7
}

// All returns the stars
func (s *Stars) All() []Star { return s.stars }
