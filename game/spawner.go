package game

import (
	"math"
	"math/rand"
)

// FormationPattern is the layout of a formation
type FormationPattern string

const (
	FormationV        FormationPattern = "v"
	FormationLine     FormationPattern = "line"
	FormationDiagonal FormationPattern = "diagonal"
)

var formationPatterns = []FormationPattern{FormationV, FormationLine, FormationDiagonal}

// Spawner schedules regular enemies and formations
type Spawner struct {
	cfg Config
	rng *rand.Rand

	spawnTimer     int
	formationTimer int

	// formationAt is the formation threshold for the current cycle
	formationAt int
}

// NewSpawner creates a spawner
func NewSpawner(cfg Config, rng *rand.Rand) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.rollFormation()
	return s
}

func (s *Spawner) rollFormation() {
	s.formationAt = s.cfg.FormationInterval
	if s.cfg.FormationJitter > 0 {
		s.formationAt += s.rng.Intn(s.cfg.FormationJitter + 1)
	}
}

// SpawnInterval is the tick gap between regular spawns for the given score and level
func (s *Spawner) SpawnInterval(score, level int) int {
	return SpawnInterval(s.cfg, score, level)
}

// SpawnInterval shortens by 4 ticks every DifficultyScoreStep points, level adding 5 points each
func SpawnInterval(cfg Config, score, level int) int {
	step := (score + level*5) / cfg.DifficultyScoreStep
	interval := cfg.InitialSpawnInterval - step*4
	if interval < cfg.MinSpawnInterval {
		return cfg.MinSpawnInterval
	}
	return interval
}

// Tick advances both timers and returns the enemies spawned this tick
func (s *Spawner) Tick(score, level int) []*Enemy {
	var out []*Enemy

	s.spawnTimer++
	if s.spawnTimer >= s.SpawnInterval(score, level) {
		out = append(out, NewEnemy(PickEnemyKind(s.rng), s.cfg.ScreenWidth, s.rng))
		s.spawnTimer = 0
	}

	s.formationTimer++
	if s.formationTimer >= s.formationAt {
		out = append(out, s.Formation()...)
		s.formationTimer = 0
		s.rollFormation()
	}
	return out
}

// Formation builds a random formation above the screen
func (s *Spawner) Formation() []*Enemy {
	pattern := formationPatterns[s.rng.Intn(len(formationPatterns))]
	kind := EnemySmall
	if s.rng.Intn(2) == 1 {
		kind = EnemyMedium
	}
	count := 3 + s.rng.Intn(3)
	return s.layout(pattern, kind, count)
}

func (s *Spawner) layout(pattern FormationPattern, kind EnemyKind, count int) []*Enemy {
	sw := s.cfg.ScreenWidth
	cx := 80
	if sw > 160 {
		cx = 80 + s.rng.Intn(sw-160+1)
	}
	mid := count / 2

	out := make([]*Enemy, 0, count)
	for i := 0; i < count; i++ {
		e := NewEnemy(kind, sw, s.rng)
		maxX := float64(sw) - e.Rect.W
		switch pattern {
		case FormationV:
			offset := (i - mid) * 40
			e.Rect.X = clamp(float64(cx+offset), 0, maxX)
			e.Rect.Y = -(math.Abs(float64(i-mid))*30 + e.Rect.H)
		case FormationLine:
			spacing := sw / (count + 1)
			e.Rect.X = float64(spacing*(i+1)) - math.Floor(e.Rect.W/2)
			e.Rect.Y = -e.Rect.H - float64(s.rng.Intn(11))
		default:
			e.Rect.X = clamp(float64(cx+i*35), 0, maxX)
			e.Rect.Y = -(float64(i)*25 + e.Rect.H)
		}
		out = append(out, e)
	}
	return out
}
