package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"skyraid/observability"
)

// ErrPlayerCount is returned when a run is started with other than 1 or 2 players
var ErrPlayerCount = errors.New("player count must be 1 or 2")

// Phase is the spawn phase inside a run
type Phase int

const (
	PhaseNormal Phase = iota
	PhaseBossWarning
	PhaseBossFight
	PhaseLevelClear
)

func (p Phase) String() string {
	switch p {
	case PhaseBossWarning:
		return "boss_warning"
	case PhaseBossFight:
		return "boss_fight"
	case PhaseLevelClear:
		return "level_clear"
	default:
		return "normal"
	}
}

// Run is one play session. It owns every entity and all cross-entity state.
// It is not safe for concurrent use.
type Run struct {
	// ID correlates log lines of one session
	ID string

	cfg      Config
	rng      *rand.Rand
	patterns PatternSource
	log      observability.Logger

	players          []*Player
	lives            []int
	fireCooldowns    []int
	missileCooldowns []int

	bullets      *Collection[Bullet]
	enemyBullets *Collection[EnemyBullet]
	enemies      *Collection[Enemy]
	powerUps     *Collection[PowerUp]
	missiles     *Collection[Missile]
	boss         *Boss

	spawner *Spawner

	score int
	kills int
	level int
	combo Combo

	bossWarningActive bool
	bossWarningTimer  int
	levelClearTimer   int

	ticks  int
	over   bool
	events []Event
}

// RunOption configures a Run
type RunOption func(*Run)

// WithRand sets the random source, for reproducible runs
func WithRand(rng *rand.Rand) RunOption {
	return func(r *Run) { r.rng = rng }
}

// WithSeed seeds the random source
func WithSeed(seed int64) RunOption {
	return func(r *Run) { r.rng = rand.New(rand.NewSource(seed)) }
}

// WithPatterns replaces the built-in boss patterns
func WithPatterns(src PatternSource) RunOption {
	return func(r *Run) {
		if src != nil {
			r.patterns = src
		}
	}
}

// WithLogger sets the run logger
func WithLogger(l observability.Logger) RunOption {
	return func(r *Run) { r.log = l }
}

// NewRun starts a session for numPlayers players
func NewRun(cfg Config, numPlayers int, opts ...RunOption) (*Run, error) {
	if numPlayers != 1 && numPlayers != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, numPlayers)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Run{
		ID:           uuid.NewString(),
		cfg:          cfg,
		patterns:     StandardPatterns{},
		bullets:      NewCollection[Bullet](128),
		enemyBullets: NewCollection[EnemyBullet](128),
		enemies:      NewCollection[Enemy](32),
		powerUps:     NewCollection[PowerUp](8),
		missiles:     NewCollection[Missile](4),
		level:        1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r.log = r.log.With("run_id", r.ID)

	twoPlayer := numPlayers == 2
	for i := 0; i < numPlayers; i++ {
		p := NewPlayer(i+1, twoPlayer, cfg)
		p.Hit(cfg.InvincibilityFrames)
		r.players = append(r.players, p)
		r.lives = append(r.lives, cfg.PlayerLives)
	}
	r.fireCooldowns = make([]int, numPlayers)
	r.missileCooldowns = make([]int, numPlayers)
	r.spawner = NewSpawner(cfg, r.rng)

	r.log.Infof("run started with %d player(s)", numPlayers)
	return r, nil
}

func (r *Run) emit(e Event) {
	if e.Level == 0 {
		e.Level = r.level
	}
	r.events = append(r.events, e)
}

// Tick advances the session by one fixed step and returns what happened.
// intents is indexed by player; missing entries count as no input.
func (r *Run) Tick(intents []Intent) []Event {
	if r.over {
		return nil
	}
	r.events = nil
	r.ticks++

	for i := range r.players {
		if r.fireCooldowns[i] > 0 {
			r.fireCooldowns[i]--
		}
		if r.missileCooldowns[i] > 0 {
			r.missileCooldowns[i]--
		}
	}
	r.combo.Tick()

	for i, p := range r.players {
		if r.lives[i] > 0 {
			p.Update(intentFor(intents, i), r.cfg)
		}
	}
	r.handleFire(intents)

	r.updatePhase()
	if r.boss == nil && !r.bossWarningActive && r.levelClearTimer <= 0 {
		r.enemies.AddAll(r.spawner.Tick(r.score, r.level))
	}

	terminal := r.advance()
	r.resolveCollisions(terminal)

	return r.events
}

// handleFire launches bullets and missiles for living players whose cooldown is over
func (r *Run) handleFire(intents []Intent) {
	for i, p := range r.players {
		if r.lives[i] <= 0 {
			continue
		}
		in := intentFor(intents, i)
		if in.Fire && r.fireCooldowns[i] <= 0 {
			for _, b := range FireBullets(p, r.kills, r.level, r.cfg) {
				r.bullets.Add(b)
			}
			r.fireCooldowns[i] = r.cfg.FireCooldown
		}
		if in.Missile && r.missileCooldowns[i] <= 0 {
			cx, _ := p.Rect.Center()
			r.missiles.Add(NewMissile(cx, p.Rect.Top(), r.cfg.MissileSpeed, i))
			r.missileCooldowns[i] = r.cfg.MissileCooldown
			r.emit(Event{Kind: EventMissileLaunched, X: cx, Y: p.Rect.Top(), Player: i})
		}
	}
}

// updatePhase runs the level-clear countdown and the warning/boss state machine
func (r *Run) updatePhase() {
	if r.levelClearTimer > 0 {
		r.levelClearTimer--
		if r.levelClearTimer <= 0 {
			r.level++
			r.emit(Event{Kind: EventLevelCleared, Player: -1})
			r.log.Infof("level %d begins", r.level)
		}
	}

	switch {
	case r.bossWarningActive:
		r.bossWarningTimer--
		if r.bossWarningTimer <= 0 {
			r.bossWarningActive = false
			r.boss = NewBoss(r.level, r.cfg)
			cx, cy := r.boss.Rect.Center()
			r.emit(Event{Kind: EventBossSpawned, X: cx, Y: cy, Player: -1})
			r.log.Infof("boss spawned on level %d with %d hp", r.level, r.boss.MaxHP)
		}
	case r.boss != nil:
		r.boss.Update()
		if r.boss.ShouldFire(BossFireInterval(r.cfg, r.level)) {
			r.boss.ResetFireTimer()
			r.bossFire()
		}
	case r.levelClearTimer <= 0:
		if r.score >= r.level*r.cfg.BossScoreThreshold {
			r.bossWarningActive = true
			r.bossWarningTimer = r.cfg.BossWarningTicks
			r.emit(Event{Kind: EventBossWarning, Player: -1})
		}
	}
}

// bossFire emits one attack at a random living player and advances the attack phase
func (r *Run) bossFire() {
	b := r.boss
	defer func() { b.AttackPhase++ }()

	var alive []*Player
	for i, p := range r.players {
		if r.lives[i] > 0 {
			alive = append(alive, p)
		}
	}
	if len(alive) == 0 {
		return
	}
	target := alive[r.rng.Intn(len(alive))]

	volleys := r.patterns.Volleys(PatternContext{
		Level:        r.level,
		AttackPhase:  b.AttackPhase,
		PatternTimer: b.PatternTimer,
		HPRatio:      b.HPRatio(),
	})
	for _, eb := range EmitVolleys(b, target, BossBulletSpeed(r.cfg, r.level), volleys) {
		r.enemyBullets.Add(eb)
	}
}

// advance moves every entity one step and culls what left the screen.
// It returns the missiles that reached their detonation point.
func (r *Run) advance() []*Missile {
	sh := float64(r.cfg.ScreenHeight)

	r.bullets.Each(func(b *Bullet) bool {
		b.Update()
		if b.OffScreen() {
			r.bullets.Mark(b)
		}
		return true
	})
	r.bullets.Compact()

	r.enemies.Each(func(e *Enemy) bool {
		e.Update()
		if e.OffScreen(sh) {
			r.enemies.Mark(e)
			return true
		}
		if eb := e.TryFire(r.cfg.EnemyFireInterval, r.cfg.EnemyBulletSpeed); eb != nil {
			r.enemyBullets.Add(eb)
		}
		return true
	})
	r.enemies.Compact()

	r.enemyBullets.Each(func(b *EnemyBullet) bool {
		b.Update()
		if b.OffScreen(sh, r.cfg.EnemyBulletCullX) {
			r.enemyBullets.Mark(b)
		}
		return true
	})
	r.enemyBullets.Compact()

	r.powerUps.Each(func(p *PowerUp) bool {
		p.Update()
		if p.OffScreen(sh) {
			r.powerUps.Mark(p)
		}
		return true
	})
	r.powerUps.Compact()

	var terminal []*Missile
	r.missiles.Each(func(m *Missile) bool {
		if m.Update(r.cfg.MissileCeiling) {
			r.missiles.Mark(m)
			terminal = append(terminal, m)
		}
		return true
	})
	r.missiles.Compact()
	return terminal
}

// Phase reports the current spawn phase
func (r *Run) Phase() Phase {
	switch {
	case r.levelClearTimer > 0:
		return PhaseLevelClear
	case r.bossWarningActive:
		return PhaseBossWarning
	case r.boss != nil:
		return PhaseBossFight
	default:
		return PhaseNormal
	}
}

// Over reports whether every player is out of lives
func (r *Run) Over() bool { return r.over }

// Score returns the current score
func (r *Run) Score() int { return r.score }

// Level returns the current level
func (r *Run) Level() int { return r.level }

// Kills returns the number of enemies destroyed
func (r *Run) Kills() int { return r.kills }

// MaxCombo returns the longest kill chain of the run
func (r *Run) MaxCombo() int { return r.combo.Max }

// Ticks returns how many steps the run has taken
func (r *Run) Ticks() int { return r.ticks }
