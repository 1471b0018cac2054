package script_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"skyraid/game"
	"skyraid/script"
)

const alternating = `
function volleys(ctx) {
  if (ctx.attackPhase % 2 === 0) {
    return [{kind: "fan", count: 3 + ctx.level, spread: 0.5}];
  }
  return [
    {kind: "circle", count: 12, speedMult: 0.9},
    {kind: "drop", offsets: [-20, 20], speedMult: 1.2}
  ];
}
`

func TestPatternScriptVolleys(t *testing.T) {
	s, err := script.Compile("alternating", alternating)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	vs, err := s.Eval(game.PatternContext{Level: 2, AttackPhase: 0})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if len(vs) != 1 || vs[0].Kind != game.VolleyFan || vs[0].Count != 5 || vs[0].Spread != 0.5 {
		t.Fatalf("unexpected volleys %+v", vs)
	}

	vs = s.Volleys(game.PatternContext{Level: 2, AttackPhase: 1})
	if len(vs) != 2 || vs[0].Kind != game.VolleyCircle || vs[0].SpeedMult != 0.9 || len(vs[1].Offsets) != 2 {
		t.Fatalf("unexpected volleys %+v", vs)
	}
	if s.Failures() != 0 {
		t.Fatalf("failures = %d", s.Failures())
	}
}

func TestCompileRequiresEntryPoint(t *testing.T) {
	_, err := script.Compile("empty", "var x = 1;")
	if !errors.Is(err, script.ErrNoEntryPoint) {
		t.Fatalf("err = %v, want ErrNoEntryPoint", err)
	}
	if _, err := script.Compile("broken", "function volleys( {"); err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestPatternScriptFallsBack(t *testing.T) {
	tests := map[string]string{
		"throws":        `function volleys(ctx) { throw new Error("nope"); }`,
		"bad kind":      `function volleys(ctx) { return [{kind: "laser", count: 3}]; }`,
		"not an array":  `function volleys(ctx) { return 42; }`,
		"zero count":    `function volleys(ctx) { return [{kind: "circle", count: 0}]; }`,
		"runs too long": `function volleys(ctx) { for (;;) {} }`,
	}
	pc := game.PatternContext{Level: 3, AttackPhase: 1}
	want := game.StandardPatterns{}.Volleys(pc)

	for name, code := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := script.Compile(name, code, script.WithTimeout(10*time.Millisecond))
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			got := s.Volleys(pc)
			if len(got) != len(want) || got[0].Kind != want[0].Kind || got[0].Count != want[0].Count {
				t.Fatalf("got %+v, want the built-in %+v", got, want)
			}
			if s.Failures() != 1 {
				t.Fatalf("failures = %d, want 1", s.Failures())
			}
		})
	}
}

func TestPatternScriptRecoversAfterTimeout(t *testing.T) {
	code := `function volleys(ctx) { if (ctx.level > 5) { for (;;) {} } return [{kind: "circle", count: 4}]; }`
	s, err := script.Compile("slow", code, script.WithTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := s.Eval(game.PatternContext{Level: 6}); err == nil {
		t.Fatalf("expected a timeout")
	}
	vs, err := s.Eval(game.PatternContext{Level: 1})
	if err != nil || len(vs) != 1 {
		t.Fatalf("script should run again after an interrupt: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boss.js")
	if err := os.WriteFile(path, []byte(alternating), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := script.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Name != path {
		t.Fatalf("name = %q", s.Name)
	}
	if _, err := script.LoadFile(filepath.Join(t.TempDir(), "none.js")); err == nil {
		t.Fatalf("expected a read error")
	}
}

func TestScriptDrivesBoss(t *testing.T) {
	s, err := script.Compile("alternating", alternating)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r, err := game.NewRun(game.DefaultConfig(), 1, game.WithSeed(2), game.WithPatterns(s))
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	// Runs until the run ends or a generous budget is spent; the script must never fail
	for i := 0; i < 3000 && !r.Over(); i++ {
		r.Tick([]game.Intent{{Fire: true}})
	}
	if s.Failures() != 0 {
		t.Fatalf("script failed %d times", s.Failures())
	}
}

type fetcherFunc func(ctx context.Context, name string) (string, error)

func (f fetcherFunc) FetchPatternScript(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

func TestFetch(t *testing.T) {
	f := fetcherFunc(func(_ context.Context, name string) (string, error) {
		if name != "storm" {
			return "", errors.New("not found")
		}
		return alternating, nil
	})
	s, err := script.Fetch(context.Background(), f, "storm")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if s.Name != "storm" {
		t.Fatalf("name = %q", s.Name)
	}
	if _, err := script.Fetch(context.Background(), f, "calm"); err == nil {
		t.Fatalf("expected a fetch error")
	}
}
