package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"chorus/models"
)

// PushGateway abstracts the remote push delivery service. One call submits a
// whole batch and returns one ticket per submitted message, in order.
type PushGateway interface {
	SendBatch(ctx context.Context, messages []models.PushMessage) ([]models.PushTicket, error)
}

// ExpoPushClient submits batches to Expo's push HTTP API. There is no official
// Go SDK; the API is a single JSON POST.
type ExpoPushClient struct {
	url    string
	client *http.Client
}

// NewExpoPushClient creates a client for the given Expo push endpoint.
func NewExpoPushClient(url string) *ExpoPushClient {
	return &ExpoPushClient{
		url:    url,
		client: http.DefaultClient,
	}
}

// expoPushResponse is the envelope Expo wraps ticket lists in.
type expoPushResponse struct {
	Data []models.PushTicket `json:"data"`
}

// SendBatch posts the message batch and decodes the per-message tickets.
func (c *ExpoPushClient) SendBatch(ctx context.Context, messages []models.PushMessage) ([]models.PushTicket, error) {
	body, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode push batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("push gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	var parsed expoPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode push gateway response: %w", err)
	}
	return parsed.Data, nil
}
