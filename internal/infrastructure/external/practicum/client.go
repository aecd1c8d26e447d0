// Package practicum implements the Practicum homework-statuses API client.
// This package handles the single outbound request of the bot: fetching homework
// review statuses changed since a given timestamp.
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/homework-hub/homework-status-bot/internal/domain/homework"
	"github.com/homework-hub/homework-status-bot/pkg/logger"
)

// DefaultEndpoint is the production homework-statuses endpoint.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// ClientConfig contains configuration for the Practicum API client.
type ClientConfig struct {
	// Endpoint is the homework-statuses URL
	Endpoint string

	// Token is the OAuth token sent in the Authorization header
	Token string

	// Timeout is the HTTP request timeout
	Timeout time.Duration

	// Logger for structured logging
	Logger *logger.Logger
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(token string) ClientConfig {
	return ClientConfig{
		Endpoint: DefaultEndpoint,
		Token:    token,
		Timeout:  30 * time.Second,
	}
}

// Client is the Practicum API client.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new Practicum API client.
func NewClient(config ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = logger.Default()
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: config.Logger.With(logger.Component("practicum")),
	}
}

// Fetch requests homework statuses changed since the given unix timestamp.
// Exactly one attempt per call; the poll loop owns the retry cadence.
//
// The decoded body is returned as a generic value: schema enforcement is
// CheckResponse's job, not the transport layer's.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (any, error) {
	reqURL := c.config.Endpoint + "?" + url.Values{
		"from_date": []string{strconv.FormatInt(fromDate, 10)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, homework.WrapError("Fetch", homework.ErrTransport, "create request", err)
	}

	req.Header.Set("Authorization", "OAuth "+c.config.Token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("requesting homework statuses", logger.FromDate(fromDate))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.WrapError("Fetch", homework.ErrTransport,
			fmt.Sprintf("request to %s failed", c.config.Endpoint), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, homework.WrapError("Fetch", homework.ErrTransport, "read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, homework.NewError("Fetch", homework.ErrStatusCode,
			fmt.Sprintf("http code = %d; reason = %s; content = %s",
				resp.StatusCode, resp.Status, string(respBody)))
	}

	var decoded any
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, homework.WrapError("Fetch", homework.ErrDecode, "response is not valid JSON", err)
	}

	c.logger.Debug("homework statuses received")

	return decoded, nil
}
