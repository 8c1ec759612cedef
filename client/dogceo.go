package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public dog.ceo API
	DefaultBaseURL = "https://dog.ceo"

	// MaxImages is the most images kept per breed
	MaxImages = 10

	statusSuccess = "success"
	statusError   = "error"
)

// ImagesResponse represents the API response from the breed images endpoint.
// Message is a list of URLs on success and an error string otherwise.
type ImagesResponse struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
}

// BreedsResponse represents the API response from the breed list endpoint
type BreedsResponse struct {
	Status  string              `json:"status"`
	Message map[string][]string `json:"message"`
}

// HTTPError is returned when the API answers with a non-JSON failure
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client is an HTTP client for dog.ceo
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API host
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a new dog.ceo API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchImages fetches at most MaxImages image URLs for a breed.
// An unknown breed is not an error: the API reports status "error" and an
// empty list is returned.
func (c *Client) FetchImages(ctx context.Context, breed string) ([]string, error) {
	imagesURL := fmt.Sprintf("%s/api/breed/%s/images", c.baseURL, url.PathEscape(breed))

	body, statusCode, err := c.get(ctx, imagesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch images for %q: %w", breed, err)
	}

	var resp ImagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		if statusCode != http.StatusOK {
			return nil, &HTTPError{StatusCode: statusCode, Body: string(body)}
		}
		return nil, fmt.Errorf("failed to parse images response: %w", err)
	}

	if resp.Status == statusError {
		return []string{}, nil
	}
	if resp.Status != statusSuccess {
		return nil, fmt.Errorf("unexpected status %q for %q", resp.Status, breed)
	}

	var images []string
	if err := json.Unmarshal(resp.Message, &images); err != nil {
		return nil, fmt.Errorf("failed to parse image list: %w", err)
	}

	if len(images) > MaxImages {
		images = images[:MaxImages]
	}
	return images, nil
}

// ListBreeds returns every breed the API knows about, sorted. Sub-breeds are
// flattened as "breed-sub", the form FetchImages accepts.
func (c *Client) ListBreeds(ctx context.Context) ([]string, error) {
	body, statusCode, err := c.get(ctx, c.baseURL+"/api/breeds/list/all")
	if err != nil {
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: statusCode, Body: string(body)}
	}

	var resp BreedsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse breeds response: %w", err)
	}
	if resp.Status != statusSuccess {
		return nil, fmt.Errorf("unexpected status %q listing breeds", resp.Status)
	}

	breeds := make([]string, 0, len(resp.Message))
	for breed, subs := range resp.Message {
		if len(subs) == 0 {
			breeds = append(breeds, breed)
			continue
		}
		for _, sub := range subs {
			breeds = append(breeds, breed+"-"+sub)
		}
	}
	sort.Strings(breeds)

	return breeds, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
