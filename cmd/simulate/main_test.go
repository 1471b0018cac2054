package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"skyraid/game"
)

func TestSummaryIsTheOnlyOutput(t *testing.T) {
	var logs, out bytes.Buffer
	prev := logOutput
	logOutput = &logs
	t.Cleanup(func() { logOutput = prev })

	ctrl := game.NewController(game.DefaultConfig(), nil, newLogger("game"), game.WithSeed(3))
	if err := ctrl.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := simulate(context.Background(), ctrl, 600, nil)
	if err := writeSummary(&out, s); err != nil {
		t.Fatalf("writeSummary: %v", err)
	}

	if logs.Len() == 0 {
		t.Fatalf("expected the run to log somewhere other than the summary")
	}
	dec := json.NewDecoder(&out)
	var got summary
	if err := dec.Decode(&got); err != nil {
		t.Fatalf("summary is not clean JSON: %v\n%s", err, out.String())
	}
	if dec.More() {
		t.Fatalf("unexpected output after the summary")
	}
	if got.Ticks != s.Ticks || got.RunID == "" {
		t.Fatalf("summary = %+v", got)
	}
}
