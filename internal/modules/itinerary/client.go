package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnreachable is returned when the remote generator cannot be reached at
// all, as opposed to it answering with an application error.
var ErrUnreachable = errors.New("Network error or server unreachable. Please try again.")

// Client talks to a remote itinerary generator exposing the same
// POST /itinerary/generate contract this service does.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Generate asks the remote service for a plan. Application errors carry the
// remote error string verbatim; transport failures collapse into
// ErrUnreachable so callers can tell the two apart.
func (c *Client) Generate(ctx context.Context, days int) ([]DayPlan, error) {
	payload, err := json.Marshal(map[string]int{"days": days})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/itinerary/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrUnreachable
	}

	if resp.StatusCode != http.StatusOK {
		var remote struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &remote) == nil && remote.Error != "" {
			return nil, errors.New(remote.Error)
		}
		return nil, fmt.Errorf("itinerary generation failed (%d)", resp.StatusCode)
	}

	var plans []DayPlan
	if err := json.Unmarshal(body, &plans); err != nil {
		return nil, fmt.Errorf("decode itinerary response: %w", err)
	}
	return plans, nil
}
