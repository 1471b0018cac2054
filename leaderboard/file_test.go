package leaderboard_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"skyraid/leaderboard"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	s := leaderboard.NewFileStore(filepath.Join(t.TempDir(), "scores.txt"), 5)
	scores, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("scores = %v, want empty", scores)
	}
}

func TestFileStoreSubmitKeepsTopN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.txt")
	s := leaderboard.NewFileStore(path, 3)
	ctx := context.Background()

	for _, v := range []int{10, 50, 30} {
		if _, err := s.Submit(ctx, v); err != nil {
			t.Fatalf("Submit(%d): %v", v, err)
		}
	}
	top, err := s.Submit(ctx, 40)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if want := []int{50, 40, 30}; !reflect.DeepEqual(top, want) {
		t.Fatalf("top = %v, want %v", top, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "50\n40\n30\n" {
		t.Fatalf("file = %q", data)
	}
}

func TestFileStoreSkipsGarbageLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("12\nnot a score\n\n7\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := leaderboard.NewFileStore(path, 10)
	scores, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []int{12, 7}; !reflect.DeepEqual(scores, want) {
		t.Fatalf("scores = %v, want %v", scores, want)
	}
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	s := leaderboard.NewFileStore(filepath.Join(t.TempDir(), "scores.txt"), 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Submit(ctx, 1); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestMerge(t *testing.T) {
	got := leaderboard.Merge([]int{9, 5, 1}, 5, 3)
	if want := []int{9, 5, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
