package leaderboard_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"skyraid/leaderboard"
	"skyraid/observability"
)

type submitFunc func(ctx context.Context, score int) ([]int, error)

func (f submitFunc) Submit(ctx context.Context, score int) ([]int, error) { return f(ctx, score) }

func TestTieredPrefersPrimary(t *testing.T) {
	primary := submitFunc(func(context.Context, int) ([]int, error) { return []int{900, 100}, nil })
	fallback := submitFunc(func(context.Context, int) ([]int, error) {
		t.Fatal("fallback used while primary is healthy")
		return nil, nil
	})

	top, err := leaderboard.NewTiered(primary, fallback, observability.Discard()).Submit(context.Background(), 100)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if want := []int{900, 100}; !reflect.DeepEqual(top, want) {
		t.Fatalf("top = %v, want %v", top, want)
	}
}

func TestTieredFallsBackToFile(t *testing.T) {
	primary := submitFunc(func(context.Context, int) ([]int, error) {
		return nil, leaderboard.ErrRemote
	})
	file := leaderboard.NewFileStore(filepath.Join(t.TempDir(), "scores.txt"), 5)

	top, err := leaderboard.NewTiered(primary, file, observability.Discard()).Submit(context.Background(), 250)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if want := []int{250}; !reflect.DeepEqual(top, want) {
		t.Fatalf("top = %v, want %v", top, want)
	}
}

func TestTieredReturnsFallbackError(t *testing.T) {
	boom := errors.New("disk full")
	failing := submitFunc(func(context.Context, int) ([]int, error) { return nil, boom })

	_, err := leaderboard.NewTiered(failing, failing, observability.Discard()).Submit(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
