package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

type contextKey string

// RestyClientKey is the context key of an injected resty client.
const RestyClientKey contextKey = "restyClient"

const requestTimeout = 30 * time.Second

// CreateRestClient creates a new resty client with the parsed URL.
// A client stored in the context under RestyClientKey is reused.
func CreateRestClient(ctx context.Context, url string) *resty.Client {
	slog.Debug("Creating REST client...")
	var client *resty.Client
	if ctx != nil {
		if c, ok := ctx.Value(RestyClientKey).(*resty.Client); ok && c != nil {
			client = c
		}
	}
	if client == nil {
		client = resty.New()
	}

	// No retries: a failed login is reported and the process exits.
	return client.
		SetBaseURL(url).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
}
