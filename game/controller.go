package game

import (
	"context"
	"errors"
	"fmt"

	"skyraid/observability"
)

//go:generate go tool mockgen -destination=./mocks/leaderboard_mock.go -package=mocks . Leaderboard

// Leaderboard stores final scores
type Leaderboard interface {
	// Submit records score and returns the top scores, highest first
	Submit(ctx context.Context, score int) ([]int, error)
}

// ErrState is returned for a transition the controller's current state does not allow
var ErrState = errors.New("invalid state transition")

// State is the top-level screen state
type State int

const (
	StateStartScreen State = iota
	StatePlaying
	StateGameOver
	StateExit
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateExit:
		return "exit"
	default:
		return "start_screen"
	}
}

// Results summarise a finished run
type Results struct {
	RunID       string
	Players     int
	Score       int
	Kills       int
	MaxCombo    int
	Level       int
	Leaderboard []int
}

// Controller drives the start screen, play and game over states around a Run
type Controller struct {
	cfg     Config
	board   Leaderboard
	log     observability.Logger
	runOpts []RunOption

	state   State
	players int
	run     *Run
	results Results
}

// NewController creates a controller on the start screen
func NewController(cfg Config, board Leaderboard, log observability.Logger, opts ...RunOption) *Controller {
	return &Controller{
		cfg:     cfg,
		board:   board,
		log:     log,
		runOpts: opts,
		state:   StateStartScreen,
	}
}

// State returns the current state
func (c *Controller) State() State { return c.state }

// Run returns the session in progress, or the finished one on the game over screen
func (c *Controller) Run() *Run { return c.run }

// Results returns the summary of the last finished run
func (c *Controller) Results() Results { return c.results }

// Start begins a session with 1 or 2 players
func (c *Controller) Start(players int) error {
	if c.state != StateStartScreen {
		return fmt.Errorf("%w: start from %s", ErrState, c.state)
	}
	opts := append([]RunOption{WithLogger(c.log)}, c.runOpts...)
	run, err := NewRun(c.cfg, players, opts...)
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	c.run = run
	c.players = players
	c.results = Results{}
	c.state = StatePlaying
	return nil
}

// Update advances the session one tick. When the last life is lost the score
// is submitted and the controller moves to the game over state. A failing
// leaderboard is logged and leaves the results with an empty board.
func (c *Controller) Update(ctx context.Context, intents []Intent) []Event {
	if c.state != StatePlaying {
		return nil
	}
	events := c.run.Tick(intents)
	if !c.run.Over() {
		return events
	}

	c.results = Results{
		RunID:    c.run.ID,
		Players:  c.players,
		Score:    c.run.Score(),
		Kills:    c.run.Kills(),
		MaxCombo: c.run.MaxCombo(),
		Level:    c.run.Level(),
	}
	if c.board != nil {
		top, err := c.board.Submit(ctx, c.run.Score())
		if err != nil {
			c.log.Errorf("submit score %d for run %s: %v", c.run.Score(), c.run.ID, err)
			top = nil
		}
		c.results.Leaderboard = top
	}
	c.state = StateGameOver
	return events
}

// Replay leaves the game over screen for the start screen
func (c *Controller) Replay() error {
	if c.state != StateGameOver {
		return fmt.Errorf("%w: replay from %s", ErrState, c.state)
	}
	c.run = nil
	c.state = StateStartScreen
	return nil
}

// Quit exits from the start screen or the game over screen
func (c *Controller) Quit() error {
	if c.state != StateStartScreen && c.state != StateGameOver {
		return fmt.Errorf("%w: quit from %s", ErrState, c.state)
	}
	c.run = nil
	c.state = StateExit
	return nil
}

// Abort discards the session in progress and returns to the start screen
func (c *Controller) Abort() error {
	if c.state != StatePlaying {
		return fmt.Errorf("%w: abort from %s", ErrState, c.state)
	}
	c.log.Infof("run %s aborted at score %d", c.run.ID, c.run.Score())
	c.run = nil
	c.state = StateStartScreen
	return nil
}
