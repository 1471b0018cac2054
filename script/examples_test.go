package script_test

import (
	"reflect"
	"testing"

	"skyraid/game"
	"skyraid/script"
)

func TestExamplesProduceValidVolleys(t *testing.T) {
	if got, want := script.Examples(), []string{"rain", "storm"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("examples = %v, want %v", got, want)
	}
	for _, name := range script.Examples() {
		t.Run(name, func(t *testing.T) {
			code, ok := script.Example(name)
			if !ok {
				t.Fatalf("example %s missing", name)
			}
			s, err := script.Compile(name, code)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			for level := 1; level <= 5; level++ {
				for phase := 0; phase < 6; phase++ {
					pc := game.PatternContext{Level: level, AttackPhase: phase, PatternTimer: phase * 60, HPRatio: 0.4}
					vs, err := s.Eval(pc)
					if err != nil {
						t.Fatalf("level %d phase %d: %v", level, phase, err)
					}
					if len(vs) == 0 {
						t.Fatalf("level %d phase %d: no volleys", level, phase)
					}
				}
			}
		})
	}
	if _, ok := script.Example("nope"); ok {
		t.Fatalf("unexpected example")
	}
}
