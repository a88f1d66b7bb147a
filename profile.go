package termcard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultAPIBaseURL is the GitHub REST API root.
	DefaultAPIBaseURL = "https://api.github.com"
	// DefaultFetchTimeout bounds the single profile request.
	DefaultFetchTimeout = 5 * time.Second
)

// Profile describes the simulated user. Counts are kept as display text.
type Profile struct {
	Login     string
	Name      string
	Bio       string
	Blog      string
	Followers string
	Following string
	Repos     string
	Gists     string
	Location  string
}

// FallbackProfile is the record used whenever the profile cannot be fetched.
func FallbackProfile(username string) Profile {
	return Profile{
		Login:     username,
		Name:      "Harrison Surma",
		Bio:       "Mizzou Senior Computer Science Student",
		Blog:      "harrison.surma.family",
		Followers: "2",
		Following: "4",
		Repos:     "32",
		Gists:     "5",
		Location:  "None",
	}
}

// FetchResult is the outcome of a profile lookup. It always carries a usable profile.
type FetchResult struct {
	Profile Profile
	// Fallback is true when Profile is FallbackProfile.
	Fallback bool
	// Cause records why the fallback was used. It is informational only.
	Cause error
}

// HTTPClient performs HTTP requests (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches profiles from the GitHub users API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	timeout    time.Duration
	logger     *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithClientLogger sets the logger. Defaults to a no-op logger.
func WithClientLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a GitHub profile client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultAPIBaseURL,
		httpClient: http.DefaultClient,
		timeout:    DefaultFetchTimeout,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchProfile implements ProfileSource. It never fails: any error yields the fallback profile.
func (c *Client) FetchProfile(ctx context.Context, username string) FetchResult {
	var user githubUser
	if err := c.getUser(ctx, username, &user); err != nil {
		c.logger.Debug("profile fetch failed, using fallback",
			zap.String("username", username),
			zap.Error(err),
		)
		return FetchResult{
			Profile:  FallbackProfile(username),
			Fallback: true,
			Cause:    err,
		}
	}

	return FetchResult{Profile: user.toProfile(username)}
}

func (c *Client) getUser(ctx context.Context, username string, result *githubUser) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	dec := json.NewDecoder(resp.Body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return fmt.Errorf("failed to decode response: expected a JSON object, got %.32s", raw)
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return fmt.Errorf("failed to decode response: trailing data after JSON object")
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// githubUser mirrors the subset of GET /users/{username} we display.
// Pointers distinguish absent (or null) fields from zero values.
type githubUser struct {
	Login       *string `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	Blog        *string `json:"blog"`
	Followers   *int    `json:"followers"`
	Following   *int    `json:"following"`
	PublicRepos *int    `json:"public_repos"`
	PublicGists *int    `json:"public_gists"`
	Location    *string `json:"location"`
}

func (u githubUser) toProfile(username string) Profile {
	return Profile{
		Login:     stringOr(u.Login, username),
		Name:      stringOr(u.Name, "Harrison Surma"),
		Bio:       stringOr(u.Bio, "Developer"),
		Blog:      stringOr(u.Blog, "Unknown"),
		Followers: countOr(u.Followers),
		Following: countOr(u.Following),
		Repos:     countOr(u.PublicRepos),
		Gists:     countOr(u.PublicGists),
		Location:  stringOr(u.Location, "Unknown"),
	}
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func countOr(v *int) string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(*v)
}
