package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
)

const figmaAPIBase = "https://api.figma.com/v1"

// The Figma REST API allows roughly two requests per second per token;
// the limiter keeps bulk node/image fetches under that ceiling.
const requestsPerSecond = 2

// Client represents a Figma API client with configured HTTP settings for reliable
// communication with the Figma API. It includes retry logic, client-side rate
// limiting, and transport settings tuned for large files.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	backoffUnit time.Duration
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with connection pooling, disabled HTTP/2 (for large file
// stability), and a 10-minute timeout for very large files.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
		limiter:     rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		backoffUnit: 2 * time.Second,
	}
}

// SetBaseURL overrides the API base URL. Used by tests to point the client at a
// local server.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimSuffix(base, "/")
}

// GetFile retrieves complete file data from the Figma API including document
// structure, styles, and metadata.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	var fileResp FileResponse
	url := fmt.Sprintf("%s/files/%s", c.baseURL, fileKey)
	if err := c.getJSON(ctx, url, &fileResp); err != nil {
		return nil, errors.Wrapf(err, "fetch file %s", fileKey)
	}
	return &fileResp, nil
}

// GetFileNodes retrieves specific nodes from a Figma file by ID. This is more
// efficient than fetching the entire file when only a few frames are needed.
func (c *Client) GetFileNodes(ctx context.Context, fileKey string, nodeIDs []string) (*NodesResponse, error) {
	var nodesResp NodesResponse
	url := fmt.Sprintf("%s/files/%s/nodes?ids=%s", c.baseURL, fileKey, strings.Join(nodeIDs, ","))
	if err := c.getJSON(ctx, url, &nodesResp); err != nil {
		return nil, errors.Wrapf(err, "fetch nodes from file %s", fileKey)
	}
	return &nodesResp, nil
}

// GetImages asks the Figma render API for image URLs of the given nodes in the
// requested format and scale. Nodes that cannot be rendered map to an empty URL.
func (c *Client) GetImages(ctx context.Context, fileKey string, nodeIDs []string, format string, scale float64) (*ImagesResponse, error) {
	var imgResp ImagesResponse
	url := fmt.Sprintf("%s/images/%s?ids=%s&format=%s&scale=%s",
		c.baseURL, fileKey, strings.Join(nodeIDs, ","), format,
		strconv.FormatFloat(scale, 'f', -1, 64))
	if err := c.getJSON(ctx, url, &imgResp); err != nil {
		return nil, errors.Wrapf(err, "render images from file %s", fileKey)
	}
	if imgResp.Err != "" {
		return nil, errors.Newf("render API error: %s", imgResp.Err)
	}
	return &imgResp, nil
}

// GetFileImages retrieves download URLs for every image fill in a file, keyed
// by image reference. Fills whose source has expired map to an empty URL.
func (c *Client) GetFileImages(ctx context.Context, fileKey string) (*FileImagesResponse, error) {
	var imagesResp FileImagesResponse
	url := fmt.Sprintf("%s/files/%s/images", c.baseURL, fileKey)
	if err := c.getJSON(ctx, url, &imagesResp); err != nil {
		return nil, errors.Wrapf(err, "fetch image fills from file %s", fileKey)
	}
	if imagesResp.Err {
		return nil, errors.Newf("file images API error: status %d", imagesResp.Status)
	}
	return &imagesResp, nil
}

// Download fetches the content behind a temporary image URL returned by the
// render API. These URLs are unauthenticated storage links, so no token is attached.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create download request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute download request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("download failed with status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

const maxRetries = 3

// getJSON performs an authenticated GET with automatic retry (up to 3 attempts,
// linear backoff) on rate limits (429) and server errors (5xx), decoding the
// response body into v.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return errors.Wrap(err, "create request")
		}
		req.Header.Set("X-Figma-Token", c.accessToken)
		// Disable HTTP/2 to avoid stream errors with large files
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = errors.Wrapf(err, "attempt %d failed to execute request", attempt)
			if attempt < maxRetries && ctx.Err() == nil {
				c.backoff(ctx, attempt)
				continue
			}
			return lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = errors.Newf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) {
				c.backoff(ctx, attempt)
				continue
			}
			return lastErr
		}

		if readErr != nil {
			lastErr = errors.Wrapf(readErr, "attempt %d failed to read response body", attempt)
			if attempt < maxRetries {
				c.backoff(ctx, attempt)
				continue
			}
			return lastErr
		}

		if err := json.Unmarshal(body, v); err != nil {
			return errors.Wrap(err, "parse response")
		}
		return nil
	}

	return lastErr
}

func (c *Client) backoff(ctx context.Context, attempt int) {
	select {
	case <-time.After(time.Duration(attempt) * c.backoffUnit):
	case <-ctx.Done():
	}
}
