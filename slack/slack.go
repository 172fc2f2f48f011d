// Package slack posts catalog notifications to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	webhookURL string
	channel    string
	httpClient doer
}

// NewClient returns a client that posts to webhookURL. Notify sends to channel.
func NewClient(webhookURL, channel string, httpClient doer) *Client {
	return &Client{
		webhookURL: webhookURL,
		channel:    channel,
		httpClient: httpClient,
	}
}

// Notify posts message to the client's default channel.
func (c *Client) Notify(ctx context.Context, message string) error {
	return c.PostMessage(ctx, c.channel, message)
}

func (c *Client) PostMessage(ctx context.Context, channel string, message string) error {
	payload, err := json.Marshal(map[string]any{
		"channel": channel,
		"text":    message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to post message: %s", resp.Status)
	}

	return nil
}
