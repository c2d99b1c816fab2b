// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrEndpointUnreachable means the request never got an HTTP response.
// The text is fixed so repeated outages produce identical notifications.
var ErrEndpointUnreachable = errors.New("request failed: practicum api endpoint is unreachable")

// ErrInvalidBody means the endpoint answered 200 with a body that is not JSON.
var ErrInvalidBody = errors.New("practicum api returned a body that is not valid JSON")

// StatusError is returned for any non-200 answer.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("endpoint error, status code %d", e.Code)
}

// Client queries the homework statuses endpoint. It never retries.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
	now        func() time.Time
}

// NewClient builds a client. A nil httpClient means http.DefaultClient.
func NewClient(endpoint, token string, httpClient *http.Client, logger *logrus.Entry) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
		logger:     logger,
		now:        time.Now,
	}
}

// FetchStatuses requests statuses changed since the unix timestamp from.
// A zero from means "now".
func (c *Client) FetchStatuses(ctx context.Context, from int64) (json.RawMessage, error) {
	if from == 0 {
		from = c.now().Unix()
	}

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	q := reqURL.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	log := c.logger.WithField("from_date", from)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Practicum API endpoint is unreachable")
		return nil, ErrEndpointUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status_code", resp.StatusCode).Error("Practicum API returned unexpected status code")
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Failed to read Practicum API response")
		return nil, ErrEndpointUnreachable
	}
	if !json.Valid(body) {
		log.Error("Practicum API response is not valid JSON")
		return nil, ErrInvalidBody
	}

	return json.RawMessage(body), nil
}
