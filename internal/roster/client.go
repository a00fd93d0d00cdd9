// Package roster is the HTTP client for the upstream OW user roster.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

// Client fetches user records from the upstream roster API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a roster client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type rosterUser struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
}

// FetchUsers retrieves the full roster and maps it to candidate records
func (c *Client) FetchUsers(ctx context.Context) ([]domain.UserCreate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/users", nil)
	if err != nil {
		return nil, fmt.Errorf("build roster request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch roster: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Results []rosterUser `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode roster response: %w", err)
	}

	users := make([]domain.UserCreate, 0, len(payload.Results))
	for _, u := range payload.Results {
		users = append(users, domain.UserCreate{
			OWUserID:  domain.OWUserID(u.ID),
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
		})
	}
	return users, nil
}
