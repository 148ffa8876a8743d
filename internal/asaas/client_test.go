package asaas

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
	cfg.Asaas.BaseURL = srv.URL
	return NewClient(Params{Cfg: cfg, Log: zap.NewNop()})
}

func TestListPaymentsSendsWindowAndToken(t *testing.T) {
	var gotToken, gotStart, gotEnd string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payments" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		gotToken = r.Header.Get("access_token")
		gotStart = r.URL.Query().Get("startDueDate")
		gotEnd = r.URL.Query().Get("endDueDate")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"pay_1","value":100.00,"status":"RECEIVED"},
			{"id":"pay_2","value":"50.5","status":"PENDING"}
		]}`))
	}))

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	records, err := client.ListPayments(context.Background(), "key-123", start, end)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}

	if gotToken != "key-123" {
		t.Fatalf("expected access_token header, got %q", gotToken)
	}
	if gotStart != "2026-03-01" || gotEnd != "2026-03-31" {
		t.Fatalf("unexpected window %q..%q", gotStart, gotEnd)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Value != 10000 || records[0].Status != "RECEIVED" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Value != 5050 {
		t.Fatalf("expected string amount parsed to 5050, got %d", records[1].Value)
	}
}

func TestListPaymentsSkipsUnparsableValues(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":"pay_1","value":"not-a-number","status":"RECEIVED"},
			{"id":"pay_2","value":null,"status":"RECEIVED"},
			{"id":"pay_3","value":25,"status":"OVERDUE"}
		]}`))
	}))

	records, err := client.ListPayments(context.Background(), "key", time.Now(), time.Now())
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected only the parsable record, got %d", len(records))
	}
	if records[0].ID != "pay_3" || records[0].Value != 2500 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestListPaymentsEmptyData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	records, err := client.ListPayments(context.Background(), "key", time.Now(), time.Now())
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestListPaymentsUpstreamError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"code":"invalid_token"}]}`, http.StatusUnauthorized)
	}))

	if _, err := client.ListPayments(context.Background(), "bad-key", time.Now(), time.Now()); err == nil {
		t.Fatalf("expected error on 401")
	}
}

func TestCustomerCount(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "1" {
			t.Fatalf("expected limit=1, got %q", r.URL.Query().Get("limit"))
		}
		w.Write([]byte(`{"totalCount":42,"data":[{"id":"cus_1"}]}`))
	}))

	count, err := client.CustomerCount(context.Background(), "key")
	if err != nil {
		t.Fatalf("customer count: %v", err)
	}
	if count != 42 {
		t.Fatalf("expected 42, got %d", count)
	}
}

func TestCustomerCountMissingTotal(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	count, err := client.CustomerCount(context.Background(), "key")
	if err != nil {
		t.Fatalf("customer count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 when totalCount absent, got %d", count)
	}
}
