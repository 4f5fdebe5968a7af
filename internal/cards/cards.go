// Package cards loads the flat card lists a draft is built from. The draft
// core only ever sees identifier strings; name resolution and images belong
// to other services.
package cards

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client fetches cube lists from a cubecobra-compatible HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CubeList fetches the newline-separated card list for a cube id.
func (c *Client) CubeList(ctx context.Context, cubeID string) ([]string, error) {
	url := fmt.Sprintf("%s/cube/api/cubelist/%s", c.baseURL, cubeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to load cube list from %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("unable to load cube list from %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return splitLines(string(body)), nil
}

// FromFile reads a local card list, one name per line.
func FromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

func splitLines(s string) []string {
	var cards []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cards = append(cards, line)
	}
	return cards
}
