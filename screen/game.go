// Package screen is the ebiten shell around the simulation: window, input, drawing, effects and sound.
package screen

import (
	"context"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"skyraid/game"
	"skyraid/observability"
)

// TickObserver is told how long each simulation tick took
type TickObserver interface {
	Observe(d time.Duration) bool
}

// Game implements ebiten.Game around a game.Controller
type Game struct {
	ctrl *game.Controller
	cfg  game.Config
	log  observability.Logger
	ctx  context.Context

	renderer *Renderer
	assets   *Assets
	sounds   *Sounds
	effects  *Effects
	stars    *Stars
	touch    *Touch
	ticks    TickObserver
	rng      *rand.Rand

	frame    int
	touchIDs []ebiten.TouchID
}

// Option configures a Game
type Option func(*Game)

// WithSounds enables sound effects
func WithSounds(s *Sounds) Option {
	return func(g *Game) { g.sounds = s }
}

// WithAssets sets the sprite cache
func WithAssets(a *Assets) Option {
	return func(g *Game) { g.assets = a }
}

// WithTickObserver reports simulation tick durations, e.g. to a profiler
func WithTickObserver(o TickObserver) Option {
	return func(g *Game) { g.ticks = o }
}

// WithLogger sets the logger
func WithLogger(l observability.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithContext sets the context passed to leaderboard submissions
func WithContext(ctx context.Context) Option {
	return func(g *Game) { g.ctx = ctx }
}

// New creates the shell. Effects use their own random source so they never
// disturb the simulation's.
func New(ctrl *game.Controller, cfg game.Config, opts ...Option) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Game{
		ctrl:    ctrl,
		cfg:     cfg,
		ctx:     context.Background(),
		effects: NewEffects(rng),
		stars:   NewStars(starCount, cfg.ScreenWidth, cfg.ScreenHeight, rng),
		touch:   NewTouch(cfg.ScreenWidth, cfg.ScreenHeight),
		rng:     rng,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.renderer = NewRenderer(g.assets)
	return g
}

// Update handles menus, reads input and advances the simulation one tick
func (g *Game) Update() error {
	g.frame++
	g.stars.Update()
	g.effects.Update()
	g.handleSystemKeys()

	switch menuActionFor(g.ctrl.State(), inpututil.IsKeyJustPressed) {
	case actionStartOne:
		g.start(1)
	case actionStartTwo:
		g.start(2)
	case actionReplay:
		g.transition(g.ctrl.Replay)
	case actionAbort:
		g.transition(g.ctrl.Abort)
	case actionQuit:
		g.transition(g.ctrl.Quit)
	}

	switch g.ctrl.State() {
	case game.StateExit:
		return ebiten.Termination
	case game.StatePlaying:
		g.tick()
	}
	return nil
}

func (g *Game) start(players int) {
	if err := g.ctrl.Start(players); err != nil {
		g.log.Errorf("start: %v", err)
		return
	}
	g.effects.Reset()
}

func (g *Game) transition(f func() error) {
	if err := f(); err != nil {
		g.log.Warnf("%v", err)
	}
}

// handleSystemKeys covers keys that work in every state
func (g *Game) handleSystemKeys() {
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if alt && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			mw, mh := ebiten.Monitor().Size()
			ebiten.SetWindowSize(int(float64(mw)*windowedSizeRatio), int(float64(mh)*windowedSizeRatio))
		} else {
			ebiten.SetFullscreen(true)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderer.ToggleHitboxes()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sounds != nil {
		g.sounds.SetMuted(!g.sounds.muted)
	}
}

// readTouches feeds touch presses, drags and releases into the touch controller
func (g *Game) readTouches(run *game.Run) {
	if pressed := inpututil.AppendJustPressedTouchIDs(nil); len(pressed) > 0 {
		shipX, shipY := run.Snapshot().Players[0].Rect.Center()
		for _, id := range pressed {
			x, y := ebiten.TouchPosition(id)
			g.touch.Press(id, float64(x), float64(y), shipX, shipY)
		}
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.touch.Move(id, float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		g.touch.Release(id)
	}
}

func (g *Game) tick() {
	run := g.ctrl.Run()
	g.readTouches(run)

	intents := ReadIntents(len(run.Stats().Lives), ebiten.IsKeyPressed)
	g.touch.Apply(&intents[0])

	start := time.Now()
	events := g.ctrl.Update(g.ctx, intents)
	if g.ticks != nil {
		g.ticks.Observe(time.Since(start))
	}

	for _, ev := range events {
		g.effects.Apply(ev)
		g.sounds.Play(ev)
	}
}

// Draw renders the current state
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(colorBackground)
	drawStars(dst, g.stars)

	w, h := g.cfg.ScreenWidth, g.cfg.ScreenHeight
	switch g.ctrl.State() {
	case game.StateStartScreen:
		g.renderer.drawStartScreen(dst, w, h, g.frame)
	case game.StatePlaying:
		run := g.ctrl.Run()
		snap := run.Snapshot()
		ox, oy := g.effects.Shake.Offset(g.rng)
		g.renderer.Draw(dst, snap, g.effects, ox, oy)
		g.renderer.drawHUD(dst, snap.Stats, w, h)
		if g.touch.Used() && len(snap.Stats.Weapons) > 0 {
			g.renderer.drawTouchControls(dst, g.touch, snap.Stats.Weapons[0].MissileCharge >= 1)
		}
	case game.StateGameOver:
		if run := g.ctrl.Run(); run != nil {
			g.renderer.Draw(dst, run.Snapshot(), g.effects, 0, 0)
		}
		g.renderer.drawGameOver(dst, g.ctrl.Results(), w, h, g.frame)
	}
}

// Layout returns the fixed logical screen size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// Close releases GPU resources and the font face
func (g *Game) Close() {
	g.renderer.Close()
	g.assets.Close()
}
