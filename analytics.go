package dub

import (
	"context"
	"net/http"
	"time"

	"github.com/dubinc/dub-go/routes"
)

// AnalyticsRequest is the filter shared by every analytics endpoint. Leave
// Domain and Key unset to aggregate the whole workspace.
type AnalyticsRequest struct {
	Domain      Optional[string]   `json:"domain" dub:"query"`
	Key         Optional[string]   `json:"key" dub:"query"`
	Interval    Optional[Interval] `json:"interval" dub:"query"`
	Country     Optional[Country]  `json:"country" dub:"query"`
	City        Optional[string]   `json:"city" dub:"query"`
	Device      Optional[string]   `json:"device" dub:"query"`
	Browser     Optional[string]   `json:"browser" dub:"query"`
	OS          Optional[string]   `json:"os" dub:"query"`
	Referer     Optional[string]   `json:"referer" dub:"query"`
	URL         Optional[string]   `json:"url" dub:"query"`
	ExcludeRoot Optional[bool]     `json:"excludeRoot" dub:"query"`
	TagID       Optional[string]   `json:"tagId" dub:"query"`
}

// Validate requires Domain whenever Key is given.
func (r AnalyticsRequest) Validate() error {
	if r.Key.IsSet() && !r.Domain.IsSet() {
		return &ValidationError{Field: "/domain", Message: "domain required when key is set"}
	}
	return nil
}

type analyticsParams struct {
	Kind AnalyticsKind `json:"kind" dub:"path"`
	AnalyticsRequest
}

// TimeseriesPoint is one bucket of a click timeseries.
type TimeseriesPoint struct {
	Start  time.Time `json:"start" dub:"required"`
	Clicks int64     `json:"clicks" dub:"required"`
}

// CountryClicks is one row of the country breakdown.
type CountryClicks struct {
	Country Country `json:"country" dub:"required"`
	Clicks  int64   `json:"clicks" dub:"required"`
}

// CityClicks is one row of the city breakdown.
type CityClicks struct {
	City    string  `json:"city" dub:"required"`
	Country Country `json:"country" dub:"required"`
	Clicks  int64   `json:"clicks" dub:"required"`
}

// DeviceClicks is one row of the device breakdown.
type DeviceClicks struct {
	Device string `json:"device" dub:"required"`
	Clicks int64  `json:"clicks" dub:"required"`
}

// BrowserClicks is one row of the browser breakdown.
type BrowserClicks struct {
	Browser string `json:"browser" dub:"required"`
	Clicks  int64  `json:"clicks" dub:"required"`
}

// OSClicks is one row of the operating-system breakdown.
type OSClicks struct {
	OS     string `json:"os" dub:"required"`
	Clicks int64  `json:"clicks" dub:"required"`
}

// RefererClicks is one row of the referer breakdown.
type RefererClicks struct {
	Referer string `json:"referer" dub:"required"`
	Clicks  int64  `json:"clicks" dub:"required"`
}

// LinkClicks is one row of the top-links ranking.
type LinkClicks struct {
	Link   string `json:"link" dub:"required"`
	Clicks int64  `json:"clicks" dub:"required"`
}

// URLClicks is one row of the top-URLs ranking.
type URLClicks struct {
	URL    string `json:"url" dub:"required"`
	Clicks int64  `json:"clicks" dub:"required"`
}

// AnalyticsClient wraps GET /analytics/{kind}.
type AnalyticsClient struct {
	client *Client
}

func analytics[T any](ctx context.Context, c *AnalyticsClient, kind AnalyticsKind, req AnalyticsRequest, opts []CallOption) (T, error) {
	if c == nil || c.client == nil {
		var zero T
		return zero, ConfigError{Reason: "analytics client not initialized"}
	}
	return call[T](ctx, c.client, http.MethodGet, routes.Analytics, analyticsParams{Kind: kind, AnalyticsRequest: req}, opts)
}

// Clicks returns the total click count.
func (c *AnalyticsClient) Clicks(ctx context.Context, req AnalyticsRequest, opts ...CallOption) (int64, error) {
	return analytics[int64](ctx, c, AnalyticsClicks, req, opts)
}

// Timeseries returns clicks bucketed over the interval.
func (c *AnalyticsClient) Timeseries(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]TimeseriesPoint, error) {
	return analytics[[]TimeseriesPoint](ctx, c, AnalyticsTimeseries, req, opts)
}

// Country returns clicks per country.
func (c *AnalyticsClient) Country(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]CountryClicks, error) {
	return analytics[[]CountryClicks](ctx, c, AnalyticsCountry, req, opts)
}

// City returns clicks per city.
func (c *AnalyticsClient) City(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]CityClicks, error) {
	return analytics[[]CityClicks](ctx, c, AnalyticsCity, req, opts)
}

// Device returns clicks per device class.
func (c *AnalyticsClient) Device(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]DeviceClicks, error) {
	return analytics[[]DeviceClicks](ctx, c, AnalyticsDevice, req, opts)
}

// Browser returns clicks per browser.
func (c *AnalyticsClient) Browser(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]BrowserClicks, error) {
	return analytics[[]BrowserClicks](ctx, c, AnalyticsBrowser, req, opts)
}

// OS returns clicks per operating system.
func (c *AnalyticsClient) OS(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]OSClicks, error) {
	return analytics[[]OSClicks](ctx, c, AnalyticsOS, req, opts)
}

// Referer returns clicks per referring site.
func (c *AnalyticsClient) Referer(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]RefererClicks, error) {
	return analytics[[]RefererClicks](ctx, c, AnalyticsReferer, req, opts)
}

// TopLinks ranks the workspace's links by clicks.
func (c *AnalyticsClient) TopLinks(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]LinkClicks, error) {
	return analytics[[]LinkClicks](ctx, c, AnalyticsTopLinks, req, opts)
}

// TopURLs ranks destination URLs by clicks.
func (c *AnalyticsClient) TopURLs(ctx context.Context, req AnalyticsRequest, opts ...CallOption) ([]URLClicks, error) {
	return analytics[[]URLClicks](ctx, c, AnalyticsTopURLs, req, opts)
}
