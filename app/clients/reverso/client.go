package reverso

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the Reverso Context host
const DefaultBaseURL = "https://context.reverso.net"

const (
	requestTimeout = 5 * time.Second
	userAgent      = "Mozilla/5.0"
)

var (
	// ErrNotFound is returned for any non-200 response
	ErrNotFound = errors.New("page not found")
	// ErrConnection is returned when request could not be completed
	ErrConnection = errors.New("connection failed")
)

// BuildURL creates translation page URL. Word is not escaped
func BuildURL(baseURL, source, target, word string) string {
	return fmt.Sprintf(
		"%s/translation/%s-%s/%s",
		strings.TrimSuffix(baseURL, "/"), strings.ToLower(source), strings.ToLower(target), word,
	)
}

// Page holds successfully fetched translation page
type Page struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Client fetches Reverso Context pages.
// A single Client is meant to be shared across all requests of one run
type Client struct {
	baseURL string
	client  *http.Client
	context context.Context
}

// URL returns translation page URL for client host
func (c *Client) URL(source, target, word string) string {
	return BuildURL(c.baseURL, source, target, word)
}

// Fetch loads the page at url
func (c *Client) Fetch(url string) (Page, error) {
	var page Page
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return page, errors.Wrap(err, "create request")
	}
	if c.context != nil {
		req = req.WithContext(c.context)
	}
	req.Header.Set("User-Agent", userAgent)

	log.Debug().Str("url", url).Msg("fetching translation page")
	resp, err := c.client.Do(req)
	if err != nil {
		return page, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Str("url", url).
			Str("status", resp.Status).
			Msg("unsuccessfull response from reverso")
		return page, errors.Wrapf(ErrNotFound, "status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return page, fmt.Errorf("%w: read response body: %v", ErrConnection, err)
	}
	page.StatusCode = resp.StatusCode
	page.Status = http.StatusText(resp.StatusCode)
	page.Body = body
	return page, nil
}

// Close releases idle connections held by the client
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

// NewClient creates Client with its own transport and request timeout
func NewClient(ctx context.Context, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   requestTimeout,
		},
		context: ctx,
	}
}
