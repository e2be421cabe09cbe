package getresponse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/greatowlmarketing/site/internal/config"
	"github.com/greatowlmarketing/site/internal/infra/http/middleware"
)

// Client talks to the GetResponse contacts API. Subscription is a
// best-effort side channel: every failure mode is downgraded to an
// Outcome so a provider hiccup can never block lead capture.
type Client struct {
	apiKey  string
	listID  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(cfg config.GetResponseConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		listID:  cfg.ListID,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Subscribe creates a contact on the configured list. It never returns an
// error: unconfigured clients skip without touching the network, and
// transport errors, timeouts and non-2xx replies come back as Failed.
func (c *Client) Subscribe(ctx context.Context, name, email string) Outcome {
	if c.apiKey == "" || c.listID == "" {
		c.logger.Warn("getresponse not configured; skipping subscription")
		return Outcome{Status: Skipped, Reason: ReasonNotConfigured}
	}

	payload := createContactRequest{
		Email:      email,
		Name:       name,
		Campaign:   campaign{CampaignID: c.listID},
		DayOfCycle: 0,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return c.fail(email, fmt.Sprintf("marshal contact: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/contacts", bytes.NewBuffer(jsonBody))
	if err != nil {
		return c.fail(email, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", "api-key "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(email, fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("getresponse rejected contact",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		middleware.RecordIntegrationError("getresponse")
		return Outcome{Status: Failed, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	return Outcome{Status: Sent}
}

func (c *Client) fail(email, reason string) Outcome {
	c.logger.Error("getresponse subscription failed",
		zap.String("email", email),
		zap.String("reason", reason),
	)
	middleware.RecordIntegrationError("getresponse")
	return Outcome{Status: Failed, Reason: reason}
}
