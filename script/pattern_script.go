// Package script runs boss attack patterns written in JavaScript.
package script

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dop251/goja"

	"skyraid/game"
	"skyraid/observability"
)

// EntryPoint is the function a pattern script must define.
// It receives the pattern context and returns an array of volleys.
const EntryPoint = "volleys"

// ErrNoEntryPoint is returned for a script that does not define EntryPoint
var ErrNoEntryPoint = errors.New("script must define a '" + EntryPoint + "' function")

// DefaultTimeout bounds a single call into the script
const DefaultTimeout = 20 * time.Millisecond

// PatternScript executes a boss pattern script using goja.
// A failing call falls back to the built-in patterns.
type PatternScript struct {
	Name string

	mu       sync.Mutex
	vm       *goja.Runtime
	fn       goja.Callable
	fallback game.PatternSource
	timeout  time.Duration
	log      observability.Logger
	failures int
}

// Option configures a PatternScript
type Option func(*PatternScript)

// WithFallback replaces the built-in patterns used when the script fails
func WithFallback(src game.PatternSource) Option {
	return func(s *PatternScript) { s.fallback = src }
}

// WithTimeout sets the per-call time budget
func WithTimeout(d time.Duration) Option {
	return func(s *PatternScript) { s.timeout = d }
}

// WithLogger sets the logger for script failures
func WithLogger(l observability.Logger) Option {
	return func(s *PatternScript) { s.log = l }
}

// Compile runs the script source once and binds its entry point
func Compile(name, code string, opts ...Option) (*PatternScript, error) {
	s := &PatternScript{
		Name:     name,
		vm:       goja.New(),
		fallback: game.StandardPatterns{},
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.run(func() (goja.Value, error) { return s.vm.RunString(code) }); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	fn, ok := goja.AssertFunction(s.vm.Get(EntryPoint))
	if !ok {
		return nil, fmt.Errorf("script %s: %w", name, ErrNoEntryPoint)
	}
	s.fn = fn
	return s, nil
}

// LoadFile compiles the script at path
func LoadFile(path string, opts ...Option) (*PatternScript, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Compile(path, string(code), opts...)
}

// run executes f with the interrupt timer armed
func (s *PatternScript) run(f func() (goja.Value, error)) (goja.Value, error) {
	if s.timeout > 0 {
		timer := time.AfterFunc(s.timeout, func() {
			s.vm.Interrupt("pattern script timed out")
		})
		defer func() {
			timer.Stop()
			s.vm.ClearInterrupt()
		}()
	}
	return f()
}

// Eval calls the entry point and decodes its volleys
func (s *PatternScript) Eval(pc game.PatternContext) ([]game.Volley, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctxJSON, err := json.Marshal(pc)
	if err != nil {
		return nil, fmt.Errorf("serialize context: %w", err)
	}
	ctxObj, err := s.vm.RunString(fmt.Sprintf("(%s)", ctxJSON))
	if err != nil {
		return nil, fmt.Errorf("parse context: %w", err)
	}

	result, err := s.run(func() (goja.Value, error) { return s.fn(goja.Undefined(), ctxObj) })
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", EntryPoint, err)
	}

	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return nil, fmt.Errorf("serialize result: %w", err)
	}
	var volleys []game.Volley
	if err := json.Unmarshal(resultJSON, &volleys); err != nil {
		return nil, fmt.Errorf("parse script result: %w (result: %s)", err, resultJSON)
	}
	for i, v := range volleys {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("volley %d: %w", i, err)
		}
	}
	return volleys, nil
}

// Volleys implements game.PatternSource
func (s *PatternScript) Volleys(pc game.PatternContext) []game.Volley {
	volleys, err := s.Eval(pc)
	if err != nil {
		s.mu.Lock()
		s.failures++
		s.mu.Unlock()
		s.log.Warnf("pattern script %s level %d phase %d: %v", s.Name, pc.Level, pc.AttackPhase, err)
		return s.fallback.Volleys(pc)
	}
	return volleys
}

// Failures returns how many calls fell back to the built-in patterns
func (s *PatternScript) Failures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}

// Fetcher loads script source by name, e.g. from a Convex deployment
type Fetcher interface {
	FetchPatternScript(ctx context.Context, name string) (string, error)
}

// Fetch loads a named script and compiles it
func Fetch(ctx context.Context, f Fetcher, name string, opts ...Option) (*PatternScript, error) {
	code, err := f.FetchPatternScript(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetch script %s: %w", name, err)
	}
	return Compile(name, code, opts...)
}
