// Package asaas is a minimal client for the Asaas billing API, covering the
// two read endpoints the dashboard aggregates from.
package asaas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brunoprp1/maio-convertfy/internal/config"
	financialdomain "github.com/brunoprp1/maio-convertfy/internal/financial/domain"
	"github.com/brunoprp1/maio-convertfy/internal/money"
	"github.com/brunoprp1/maio-convertfy/internal/observability/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	providerName = "asaas"
	dateLayout   = "2006-01-02"
)

type Params struct {
	fx.In

	Cfg     config.Config
	Log     *zap.Logger
	Metrics *metrics.UpstreamMetrics `optional:"true"`
}

// Client talks to the Asaas REST API. The API key is passed per call because
// every request may run under a different client's credential.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	metrics *metrics.UpstreamMetrics
	tracer  trace.Tracer
}

func NewClient(p Params) *Client {
	return &Client{
		baseURL: strings.TrimRight(p.Cfg.Asaas.BaseURL, "/"),
		http:    &http.Client{Timeout: p.Cfg.UpstreamTimeout},
		log:     p.Log.Named("asaas.client"),
		metrics: p.Metrics,
		tracer:  otel.Tracer("asaas.client"),
	}
}

type paymentItem struct {
	ID     string          `json:"id"`
	Value  json.RawMessage `json:"value"`
	Status string          `json:"status"`
}

type paymentListResponse struct {
	Data []paymentItem `json:"data"`
}

type customerListResponse struct {
	TotalCount int64 `json:"totalCount"`
}

// ListPayments returns every charge with a due date inside [start, end].
// Records whose amount cannot be parsed are skipped rather than failing the
// whole listing.
func (c *Client) ListPayments(ctx context.Context, apiKey string, start, end time.Time) ([]financialdomain.PaymentRecord, error) {
	ctx, span := c.tracer.Start(ctx, "asaas.ListPayments",
		trace.WithAttributes(
			attribute.String("asaas.start_due_date", start.Format(dateLayout)),
			attribute.String("asaas.end_due_date", end.Format(dateLayout)),
		),
	)
	defer span.End()

	query := url.Values{}
	query.Set("startDueDate", start.Format(dateLayout))
	query.Set("endDueDate", end.Format(dateLayout))

	var resp paymentListResponse
	err := c.get(ctx, apiKey, "/payments", query, "list_payments", &resp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	records := make([]financialdomain.PaymentRecord, 0, len(resp.Data))
	for _, item := range resp.Data {
		value, err := parseAmount(item.Value)
		if err != nil {
			c.log.Warn("skipping payment with unparsable value",
				zap.String("payment_id", item.ID),
				zap.Error(err),
			)
			continue
		}
		records = append(records, financialdomain.PaymentRecord{
			ID:     item.ID,
			Value:  value,
			Status: item.Status,
		})
	}

	span.SetAttributes(attribute.Int("asaas.payment_count", len(records)))
	return records, nil
}

// CustomerCount returns the account's total customer count. A response
// without totalCount counts as zero.
func (c *Client) CustomerCount(ctx context.Context, apiKey string) (int64, error) {
	ctx, span := c.tracer.Start(ctx, "asaas.CustomerCount")
	defer span.End()

	query := url.Values{}
	query.Set("limit", "1")

	var resp customerListResponse
	if err := c.get(ctx, apiKey, "/customers", query, "customer_count", &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("asaas.total_count", resp.TotalCount))
	return resp.TotalCount, nil
}

func (c *Client) get(ctx context.Context, apiKey, path string, query url.Values, operation string, out any) error {
	start := time.Now()
	err := c.doGet(ctx, apiKey, path, query, out)
	c.metrics.ObserveFetch(providerName, operation, time.Since(start), err)
	return err
}

func (c *Client) doGet(ctx context.Context, apiKey, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("access_token", apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("asaas request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("asaas %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode asaas response: %w", err)
	}
	return nil
}

// parseAmount accepts the value field as either a JSON number or a quoted
// decimal string and converts it to minor units.
func parseAmount(raw json.RawMessage) (int64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0, money.ErrInvalidAmount
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, money.ErrInvalidAmount
		}
		trimmed = s
	}
	return money.ParseMinorUnits(trimmed)
}
