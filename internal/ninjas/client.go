// Client for the api-ninjas exercises catalog. The catalog is an
// external collaborator: a fixed endpoint plus an API key credential
// that returns a list of exercise-shaped records or fails.
package ninjas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/B7A9F/exercices-api/internal/models"
)

// Client calls the remote exercise catalog.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a catalog client. The timeout on the underlying
// http.Client is the only deadline the fetch carries.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchExercices retrieves the catalog's exercise list.
func (c *Client) FetchExercices(ctx context.Context) ([]models.RemoteExercice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog error %d: %s", resp.StatusCode, string(body))
	}

	var exercices []models.RemoteExercice
	if err := json.NewDecoder(resp.Body).Decode(&exercices); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return exercices, nil
}
