package leaderboard

import (
	"context"

	"skyraid/observability"
)

// Submitter records a score and returns the top scores
type Submitter interface {
	Submit(ctx context.Context, score int) ([]int, error)
}

// Tiered submits to a primary store and falls back to a secondary one when it fails
type Tiered struct {
	primary  Submitter
	fallback Submitter
	log      observability.Logger
}

// NewTiered creates a store that prefers primary
func NewTiered(primary, fallback Submitter, log observability.Logger) *Tiered {
	return &Tiered{primary: primary, fallback: fallback, log: log}
}

// Submit implements Submitter
func (t *Tiered) Submit(ctx context.Context, score int) ([]int, error) {
	top, err := t.primary.Submit(ctx, score)
	if err == nil {
		return top, nil
	}
	t.log.Warnf("primary leaderboard failed, using fallback: %v", err)
	return t.fallback.Submit(ctx, score)
}
