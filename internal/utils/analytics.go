// analytics.go wraps the PostHog client so callers never need to know
// whether event tracking is configured.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient wraps posthog.Client. A nil or zero-value client is
// valid and drops every event, so tracking stays optional without nil
// checks at the call sites.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient builds the tracking client. An empty API key yields
// a disabled client.
func NewAnalyticsClient(apiKey string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("PostHog API key is empty, event tracking disabled.")
		return &AnalyticsClient{}
	}
	client, _ := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	return &AnalyticsClient{client: client, logger: logger}
}

// IsEnabled reports whether events will actually be sent.
func (a *AnalyticsClient) IsEnabled() bool {
	return a != nil && a.client != nil
}

// Enqueue sends one event keyed by the acting user. Disabled clients
// drop the event silently.
func (a *AnalyticsClient) Enqueue(distinctID string, event string, properties map[string]any) {
	if !a.IsEnabled() {
		return
	}
	_ = a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes any buffered events.
func (a *AnalyticsClient) Close() {
	if a.IsEnabled() {
		a.client.Close()
	}
}
