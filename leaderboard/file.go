// Package leaderboard stores final scores locally and in a Convex deployment.
package leaderboard

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps the top scores in a text file, one integer per line, highest first
type FileStore struct {
	path string
	size int

	mu sync.Mutex
}

// NewFileStore creates a store capped at size entries
func NewFileStore(path string, size int) *FileStore {
	if size <= 0 {
		size = 10
	}
	return &FileStore{path: path, size: size}
}

// Load reads the stored scores. A missing file is an empty board.
// Lines that are not integers are skipped.
func (s *FileStore) Load() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard %s: %w", s.path, err)
	}

	var scores []int
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		scores = append(scores, v)
	}
	return scores, sc.Err()
}

// Submit adds score, keeps the best entries and returns them highest first
func (s *FileStore) Submit(ctx context.Context, score int) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	scores, err := s.load()
	if err != nil {
		// An unreadable board is replaced rather than blocking the submit
		scores = nil
	}
	scores = Merge(scores, score, s.size)
	if err := s.save(scores); err != nil {
		return scores, err
	}
	return scores, nil
}

func (s *FileStore) save(scores []int) error {
	var b strings.Builder
	for _, v := range scores {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte('\n')
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create leaderboard dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}

// Merge inserts score into scores, sorts highest first and caps at size
func Merge(scores []int, score, size int) []int {
	out := make([]int, 0, len(scores)+1)
	out = append(out, scores...)
	out = append(out, score)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if len(out) > size {
		out = out[:size]
	}
	return out
}
