package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roei-asher/Lottery/internal/domain"
)

func testWindow() (time.Time, time.Time) {
	return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
}

func TestDrawResults_BareList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("draw_date_min"); got != "2024-05-01" {
			t.Errorf("draw_date_min = %q", got)
		}
		w.Write([]byte(`[
			{"drawDate": "2024-05-28", "winningNumbers": [3, 17, 29, 44, 61], "extras": {"megaBall": 12}},
			{"drawDate": "2024-05-31", "winningNumbers": [1, 9, 23, 40, 70], "megaBall": 5}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, domain.MegaMillions)
	from, to := testWindow()
	draws, err := c.DrawResults(context.Background(), from, to)
	if err != nil {
		t.Fatalf("DrawResults: %v", err)
	}
	if len(draws) != 2 {
		t.Fatalf("got %d draws, want 2", len(draws))
	}

	// Most recent first.
	if draws[0].Date.Format("2006-01-02") != "2024-05-31" {
		t.Errorf("first draw date = %v", draws[0].Date)
	}
	if draws[0].Special != 5 || draws[1].Special != 12 {
		t.Errorf("specials = %d, %d", draws[0].Special, draws[1].Special)
	}
}

func TestDrawResults_WrappedList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"draws": [
			{"draw_date": "2024-05-28", "winningNumbers": [3, 17, 29, 44, 61], "extras": {"megaBall": 12}}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, domain.MegaMillions)
	from, to := testWindow()
	draws, err := c.DrawResults(context.Background(), from, to)
	if err != nil {
		t.Fatalf("DrawResults: %v", err)
	}
	if len(draws) != 1 {
		t.Fatalf("got %d draws, want 1", len(draws))
	}
}

func TestDrawResults_SkipsMalformedDraws(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"drawDate": "2024-05-28", "winningNumbers": [3, 17, 29, 44, 61], "megaBall": 12},
			{"drawDate": "2024-05-24", "winningNumbers": [3, 17], "megaBall": 9},
			{"winningNumbers": [4, 18, 30, 45, 62], "megaBall": 9},
			{"drawDate": "2024-05-21", "winningNumbers": [3, 17, 29, 44, 99], "megaBall": 9}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, domain.MegaMillions)
	from, to := testWindow()
	draws, err := c.DrawResults(context.Background(), from, to)
	if err != nil {
		t.Fatalf("DrawResults: %v", err)
	}
	if len(draws) != 1 {
		t.Fatalf("got %d draws, want only the well-formed one", len(draws))
	}
}

func TestDrawResults_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"drawDate": "2024-05-28", "winningNumbers": [3, 17, 29, 44, 61], "megaBall": 12}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, domain.MegaMillions, WithRetryDelay(time.Millisecond))
	from, to := testWindow()
	draws, err := c.DrawResults(context.Background(), from, to)
	if err != nil {
		t.Fatalf("DrawResults after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("server hit %d times, want 3", attempts)
	}
	if len(draws) != 1 {
		t.Errorf("got %d draws", len(draws))
	}
}

func TestDrawResults_ExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, domain.MegaMillions,
		WithRetryDelay(time.Millisecond), WithMaxRetries(2))
	from, to := testWindow()
	if _, err := c.DrawResults(context.Background(), from, to); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
}

func TestDrawResults_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, domain.MegaMillions, WithRetryDelay(time.Hour))
	from, to := testWindow()
	if _, err := c.DrawResults(ctx, from, to); err == nil {
		t.Fatal("expected context error")
	}
}
