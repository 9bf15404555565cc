package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tacogips/hublist/internal/debug"
)

const (
	// DefaultEndpoint is the public Hugging Face Hub host.
	DefaultEndpoint = "https://huggingface.co"
	// DefaultRevision is the revision used when none is specified.
	DefaultRevision = "main"
)

// Client is a client for the Hugging Face Hub metadata API.
type Client struct {
	// BaseURL is the Hub endpoint. Empty means DefaultEndpoint.
	BaseURL string
	// HTTPClient is the HTTP client for API requests.
	HTTPClient *http.Client
	// Token is the optional bearer token for private or gated repos.
	Token string
	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string
}

// NewClient creates a new Hub client with a default request timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithToken creates a new Hub client with authentication.
func NewClientWithToken(token string) *Client {
	c := NewClient()
	c.Token = token
	return c
}

// endpoint returns the effective base URL.
func (c *Client) endpoint() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultEndpoint
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// RepoInfo fetches repository metadata including the per-file manifest.
// The returned siblings keep the order in which the Hub reported them.
func (c *Client) RepoInfo(ctx context.Context, ref RepoRef) (*RepoInfo, error) {
	apiURL := c.repoInfoURL(ref)
	debug.Debug("[hub] Fetching repository metadata: %s", apiURL)

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, NewFetchError(ref.ID, apiURL, err)
	}

	// Add authentication if token is provided
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, NewTimeoutError(ref.ID, apiURL, err)
		}
		return nil, NewFetchError(ref.ID, apiURL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue to decode
	case http.StatusNotFound:
		return nil, NewNotFoundError(ref.ID, apiURL)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, NewAuthError(ref.ID, apiURL)
	default:
		return nil, NewFetchError(ref.ID, apiURL,
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	// Decode at the boundary so callers only see typed values.
	var info RepoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, NewFetchError(ref.ID, apiURL,
			fmt.Errorf("failed to decode repository metadata: %w", err))
	}

	debug.Debug("[hub] Repository metadata fetched: %s (%d files)", info.ID, len(info.Siblings))
	return &info, nil
}

// repoInfoURL constructs the metadata API URL for a repository.
// blobs=true asks the Hub to include per-file size and blob metadata.
func (c *Client) repoInfoURL(ref RepoRef) string {
	u := fmt.Sprintf("%s/api/%s/%s", c.endpoint(), ref.repoType(), ref.ID)
	if ref.Revision != "" {
		u = fmt.Sprintf("%s/revision/%s", u, ref.Revision)
	}
	return u + "?blobs=true"
}

// ResolveURL constructs the download URL for a file within the
// repository at the ref's revision. The relative path is substituted
// verbatim; reserved URL characters in paths are not escaped.
func (c *Client) ResolveURL(ref RepoRef, relPath string) string {
	return fmt.Sprintf("%s/%s%s/resolve/%s/%s?download=true",
		c.endpoint(), ref.repoType().resolvePrefix(), ref.ID, ref.revisionOrDefault(), relPath)
}

// isTimeout reports whether the request error is a timeout, either at
// the transport level or via context deadline expiry.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Timeout()
	}
	return false
}
