// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"homework_notification_bot/internal/domain/homework"
)

const defaultRequestTimeout = 30 * time.Second

// APIClient implements the homework.Client interface over the Practicum
// homework-statuses HTTP API.
type APIClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewAPIClient(endpoint, token string) *APIClient {
	return &APIClient{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Statuses fetches the raw statuses payload for submissions updated at or
// after fromDate. The error classes match the poll cycle's taxonomy: 404 and
// transport failures mean the endpoint is unreachable, any other non-200 is
// an unexpected status code, and a body that is not valid JSON is malformed.
func (c *APIClient) Statuses(ctx context.Context, fromDate int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build statuses request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := req.URL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", homework.ErrEndpointUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read statuses response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to payload check
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: endpoint %s responded with code %d", homework.ErrEndpointUnavailable, c.endpoint, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: %d", homework.ErrUnexpectedStatusCode, resp.StatusCode)
	}

	if !json.Valid(body) {
		return nil, homework.ErrMalformedPayload
	}
	return body, nil
}
