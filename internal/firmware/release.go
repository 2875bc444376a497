package firmware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ReleaseURL is the GitHub API endpoint for the latest programmer firmware.
const ReleaseURL = "https://api.github.com/repos/henols/firestarter/releases/latest"

// Release describes the newest published firmware.
type Release struct {
	Version     string
	DownloadURL string
}

// ReleaseClient fetches firmware release metadata from GitHub.
type ReleaseClient struct {
	url        string
	httpClient *http.Client
}

// NewReleaseClient creates a release feed client.
func NewReleaseClient() *ReleaseClient {
	return &ReleaseClient{
		url: ReleaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Latest returns the newest release's version tag and the download URL of
// its firmware.hex asset.
func (c *ReleaseClient) Latest() (*Release, error) {
	resp, err := c.httpClient.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("release feed returned %d: %s", resp.StatusCode, string(body))
	}

	var release struct {
		TagName string `json:"tag_name"`
		Assets  []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to parse release feed: %w", err)
	}

	for _, asset := range release.Assets {
		if strings.Contains(asset.Name, "firmware.hex") {
			return &Release{
				Version:     release.TagName,
				DownloadURL: asset.BrowserDownloadURL,
			}, nil
		}
	}
	return nil, fmt.Errorf("release %s has no firmware.hex asset", release.TagName)
}

// CompareVersions orders two major.minor.patch strings numerically per
// component. Returns -1 when a is older than b, 0 when equal, 1 when newer.
// A leading "v" on either side is ignored.
func CompareVersions(a, b string) (int, error) {
	av, err := parseVersion(a)
	if err != nil {
		return 0, err
	}
	bv, err := parseVersion(b)
	if err != nil {
		return 0, err
	}
	for i := range av {
		if av[i] < bv[i] {
			return -1, nil
		}
		if av[i] > bv[i] {
			return 1, nil
		}
	}
	return 0, nil
}

func parseVersion(s string) ([3]int, error) {
	var v [3]int
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) != 3 {
		return v, fmt.Errorf("malformed version %q", s)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return v, fmt.Errorf("malformed version %q: %w", s, err)
		}
		v[i] = n
	}
	return v, nil
}
