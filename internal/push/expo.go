// Package push delivers notifications through the Expo push gateway.
// Delivery is strictly best effort: failures are logged and swallowed so
// that no user-facing operation ever depends on the gateway being up.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultEndpoint = "https://exp.host/--/api/v2/push/send"

type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

type message struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Sound string         `json:"sound"`
	Data  map[string]any `json:"data,omitempty"`
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Notify sends one push message. A missing token is a no-op, and any
// transport or gateway error is logged at warn level and not returned.
func (client *Client) Notify(ctx context.Context, pushToken string, title string, body string, data map[string]any) {
	if pushToken == "" {
		return
	}

	payload, err := json.Marshal(message{
		To:    pushToken,
		Title: title,
		Body:  body,
		Sound: "default",
		Data:  data,
	})
	if err != nil {
		client.logger.Warn("push payload encode failed", "error", err)
		return
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint, bytes.NewReader(payload))
	if err != nil {
		client.logger.Warn("push request build failed", "error", err)
		return
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Warn("push delivery failed", "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		client.logger.Warn("push gateway rejected message", "status", fmt.Sprint(response.StatusCode))
	}
}
