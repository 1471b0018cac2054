package leaderboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"skyraid/leaderboard"
	"skyraid/observability"
)

type convexCall struct {
	Path   string         `json:"path"`
	Args   map[string]any `json:"args"`
	Format string         `json:"format"`
}

func convexServer(t *testing.T, handle func(endpoint string, call convexCall) (int, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var call convexCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			t.Errorf("decode request: %v", err)
		}
		status, body := handle(r.URL.Path, call)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestConvexStoreSubmit(t *testing.T) {
	srv := convexServer(t, func(endpoint string, call convexCall) (int, string) {
		if endpoint != "/api/mutation" || call.Path != "scores:submit" || call.Format != "json" {
			t.Errorf("unexpected call %s %+v", endpoint, call)
		}
		if call.Args["score"] != float64(77) || call.Args["limit"] != float64(3) {
			t.Errorf("unexpected args %v", call.Args)
		}
		return http.StatusOK, `{"status":"success","value":[90,77.0,12]}`
	})

	store := leaderboard.NewConvexStore(leaderboard.NewConvexClient(srv.URL), 3)
	top, err := store.Submit(context.Background(), 77)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if want := []int{90, 77, 12}; !reflect.DeepEqual(top, want) {
		t.Fatalf("top = %v, want %v", top, want)
	}
}

func TestConvexStoreTop(t *testing.T) {
	srv := convexServer(t, func(endpoint string, call convexCall) (int, string) {
		if endpoint != "/api/query" || call.Path != "scores:top" {
			t.Errorf("unexpected call %s %+v", endpoint, call)
		}
		return http.StatusOK, `{"status":"success","value":[5]}`
	})
	top, err := leaderboard.NewConvexStore(leaderboard.NewConvexClient(srv.URL), 10).Top(context.Background())
	if err != nil || len(top) != 1 || top[0] != 5 {
		t.Fatalf("top = %v, err = %v", top, err)
	}
}

func TestConvexErrors(t *testing.T) {
	tests := map[string]struct {
		status int
		body   string
	}{
		"http error":     {http.StatusInternalServerError, "boom"},
		"convex failure": {http.StatusOK, `{"status":"error","errorMessage":"nope"}`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := convexServer(t, func(string, convexCall) (int, string) { return tt.status, tt.body })
			_, err := leaderboard.NewConvexStore(leaderboard.NewConvexClient(srv.URL), 10).Submit(context.Background(), 1)
			if !errors.Is(err, leaderboard.ErrRemote) {
				t.Fatalf("err = %v, want ErrRemote", err)
			}
		})
	}
}

func TestFetchPatternScript(t *testing.T) {
	srv := convexServer(t, func(endpoint string, call convexCall) (int, string) {
		if call.Path != "patterns:getByName" {
			t.Errorf("unexpected path %s", call.Path)
		}
		if call.Args["name"] == "missing" {
			return http.StatusOK, `{"status":"success","value":null}`
		}
		return http.StatusOK, `{"status":"success","value":{"_id":"a1","name":"storm","code":"function volleys(ctx) { return [] }","createdAt":1}}`
	})
	client := leaderboard.NewConvexClient(srv.URL)

	code, err := client.FetchPatternScript(context.Background(), "storm")
	if err != nil {
		t.Fatalf("FetchPatternScript: %v", err)
	}
	if code != "function volleys(ctx) { return [] }" {
		t.Fatalf("code = %q", code)
	}
	if _, err := client.FetchPatternScript(context.Background(), "missing"); !errors.Is(err, leaderboard.ErrRemote) {
		t.Fatalf("missing script err = %v", err)
	}
}

func TestTieredFallsBackToFile(t *testing.T) {
	srv := convexServer(t, func(string, convexCall) (int, string) { return http.StatusBadGateway, "down" })
	remote := leaderboard.NewConvexStore(leaderboard.NewConvexClient(srv.URL), 10)
	local := leaderboard.NewFileStore(filepath.Join(t.TempDir(), "scores.txt"), 10)

	top, err := leaderboard.NewTiered(remote, local, observability.Discard()).Submit(context.Background(), 33)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !reflect.DeepEqual(top, []int{33}) {
		t.Fatalf("top = %v", top)
	}
}
