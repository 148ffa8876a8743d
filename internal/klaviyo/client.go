// Package klaviyo fetches campaign revenue from the Klaviyo reporting
// endpoint the dashboard proxies for.
package klaviyo

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
	providerName = "klaviyo"
	dateLayout   = "2006-01-02"
)

type Params struct {
	fx.In

	Cfg     config.Config
	Log     *zap.Logger
	Metrics *metrics.UpstreamMetrics `optional:"true"`
}

// Client calls the Klaviyo revenue report. Like the billing client, the API
// key travels per call.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	metrics *metrics.UpstreamMetrics
	tracer  trace.Tracer
}

func NewClient(p Params) *Client {
	return &Client{
		baseURL: strings.TrimRight(p.Cfg.Klaviyo.BaseURL, "/"),
		http:    &http.Client{Timeout: p.Cfg.UpstreamTimeout},
		log:     p.Log.Named("klaviyo.client"),
		metrics: p.Metrics,
		tracer:  otel.Tracer("klaviyo.client"),
	}
}

type revenueItem struct {
	Value json.RawMessage `json:"value"`
}

type revenueResponse struct {
	Data []revenueItem `json:"data"`
}

// Revenue sums attributed campaign revenue inside [start, end], in minor
// units. Entries without a numeric value are skipped.
func (c *Client) Revenue(ctx context.Context, apiKey string, start, end time.Time) (int64, error) {
	ctx, span := c.tracer.Start(ctx, "klaviyo.Revenue",
		trace.WithAttributes(
			attribute.String("klaviyo.start", start.Format(dateLayout)),
			attribute.String("klaviyo.end", end.Format(dateLayout)),
		),
	)
	defer span.End()

	begin := time.Now()
	total, err := c.fetchRevenue(ctx, apiKey, start, end)
	c.metrics.ObserveFetch(providerName, "revenue", time.Since(begin), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("klaviyo.revenue_minor_units", total))
	return total, nil
}

func (c *Client) fetchRevenue(ctx context.Context, apiKey string, start, end time.Time) (int64, error) {
	query := url.Values{}
	query.Set("start", start.Format(dateLayout))
	query.Set("end", end.Format(dateLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/klaviyo-revenue?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Klaviyo-API-Key "+apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("klaviyo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return 0, fmt.Errorf("klaviyo revenue: unexpected status %d", resp.StatusCode)
	}

	var payload revenueResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode klaviyo response: %w", err)
	}

	var total int64
	for _, item := range payload.Data {
		value, err := parseAmount(item.Value)
		if err != nil {
			c.log.Warn("skipping revenue entry with unparsable value", zap.Error(err))
			continue
		}
		total += value
	}
	return total, nil
}

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
