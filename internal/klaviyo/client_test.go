package klaviyo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brunoprp1/maio-convertfy/internal/config"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Config{UpstreamTimeout: 5 * time.Second}
	cfg.Klaviyo.BaseURL = srv.URL
	return NewClient(Params{Cfg: cfg, Log: zap.NewNop()})
}

func TestRevenueSumsEntries(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/klaviyo-revenue" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[{"value":100.50},{"value":"24.5"},{"value":null}]}`))
	}))

	total, err := client.Revenue(context.Background(), "kl-key", time.Now(), time.Now())
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if total != 12500 {
		t.Fatalf("expected 12500 minor units, got %d", total)
	}
	if gotAuth != "Klaviyo-API-Key kl-key" {
		t.Fatalf("unexpected authorization header %q", gotAuth)
	}
}

func TestRevenueEmptyData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	total, err := client.Revenue(context.Background(), "kl-key", time.Now(), time.Now())
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0, got %d", total)
	}
}

func TestRevenueUpstreamError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))

	if _, err := client.Revenue(context.Background(), "kl-key", time.Now(), time.Now()); err == nil {
		t.Fatalf("expected error on 502")
	}
}
