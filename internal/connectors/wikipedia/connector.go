// Package wikipedia fetches the Wikipedia airport-code list pages.
package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
	"github.com/custodia-labs/xdxfgen/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// maxPageSize bounds a single page download.
const maxPageSize = 32 << 20

// ErrUserAgentBlocked is returned when Wikimedia rejects the User-Agent.
var ErrUserAgentBlocked = errors.New("user-agent rejected by wikimedia policy")

// Connector downloads pages over HTTP with a shared rate limit.
type Connector struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a connector from the Wikipedia settings.
func New(settings domain.WikipediaSettings) *Connector {
	client := &http.Client{Timeout: time.Duration(settings.TimeoutSeconds) * time.Second}
	return NewWithClient(settings, client)
}

// NewWithClient creates a connector that sends its requests through client.
// The settings timeout is not applied to client.
func NewWithClient(settings domain.WikipediaSettings, client *http.Client) *Connector {
	userAgent := settings.UserAgent
	if userAgent == "" {
		userAgent = domain.BuildUserAgent("")
	}
	rps := settings.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Connector{
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		userAgent: userAgent,
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "wikipedia"
}

// Fetch downloads the page at uri. The response Content-Type becomes the
// document MIME type.
func (c *Connector) Fetch(ctx context.Context, uri string) (*domain.RawDocument, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	logger.Debug("GET %s", uri)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", domain.ErrFetchFailed, uri, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrFetchFailed, uri, err)
	}

	if resp.StatusCode != http.StatusOK {
		if policyErr := checkUserAgentPolicy(resp.StatusCode, body, c.userAgent); policyErr != nil {
			return nil, policyErr
		}
		return nil, fmt.Errorf("%w: GET %s: unexpected status %s", domain.ErrFetchFailed, uri, resp.Status)
	}
	logger.Debug("fetched %s (%d bytes)", uri, len(body))

	return &domain.RawDocument{
		URI:      uri,
		MIMEType: resp.Header.Get("Content-Type"),
		Content:  body,
	}, nil
}

// checkUserAgentPolicy recognises the 403 Wikimedia sends for a
// non-compliant User-Agent. Retrying such a request never helps.
func checkUserAgentPolicy(statusCode int, body []byte, userAgent string) error {
	if statusCode != http.StatusForbidden {
		return nil
	}
	text := string(body)
	if !strings.Contains(text, "User-Agent") && !strings.Contains(text, "robot policy") {
		return nil
	}
	logger.Warn("request blocked, user agent %q does not satisfy the Wikimedia policy", userAgent)
	return fmt.Errorf("%w: %w", domain.ErrFetchFailed, ErrUserAgentBlocked)
}
