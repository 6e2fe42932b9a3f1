// Package galaxy holds the one-shot utility that refreshes the table of
// Galaxy platforms from the public API. It runs rarely and outside the
// documentation pipeline.
package galaxy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
)

// DefaultAPIURL is the public Galaxy instance.
const DefaultAPIURL = "https://galaxy.ansible.com"

const platformsPath = "/api/v1/platforms/"

// page is one response of the paginated platforms endpoint. Results is
// left untyped because the API has been seen returning junk entries that
// must be skipped, not choked on.
type page struct {
	NextLink string `json:"next_link"`
	Results  []any  `json:"results"`
}

// FetchPlatforms follows the paginated platforms endpoint until there is no
// next_link and returns platform name to known releases. Malformed entries
// are skipped; the placeholder releases "any" and "None" are dropped.
func FetchPlatforms(ctx context.Context, client *http.Client, baseURL string) (map[string][]string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	platforms := map[string][]string{}
	next := platformsPath
	for next != "" {
		p, err := fetchPage(ctx, client, baseURL+next)
		if err != nil {
			return nil, err
		}
		for _, raw := range p.Results {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			name, _ := entry["name"].(string)
			if name == "" {
				continue
			}
			if _, ok := platforms[name]; !ok {
				platforms[name] = []string{}
			}
			release, _ := entry["release"].(string)
			if release == "" || release == "any" || release == "None" {
				continue
			}
			if !slices.Contains(platforms[name], release) {
				platforms[name] = append(platforms[name], release)
			}
		}
		next = p.NextLink
	}
	return platforms, nil
}

func fetchPage(ctx context.Context, client *http.Client, url string) (*page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch galaxy platforms: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch galaxy platforms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch galaxy platforms: unexpected status %s from %s", resp.Status, url)
	}
	var p page
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("fetch galaxy platforms: decode %s: %w", url, err)
	}
	return &p, nil
}
