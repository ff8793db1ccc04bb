// Package transfer downloads and uploads cache archives over HTTP.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"os"
	"strings"
	"time"

	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// maxAttempts bounds GETs per URL: the first try plus three retries.
	maxAttempts       = 4
	defaultRetryDelay = time.Second
	bodyMetadataSize  = 500
)

var _ ports.Transfer = (*Client)(nil)

// Client implements ports.Transfer. Requests carry no timeout of their own; the
// operation's context bounds them.
type Client struct {
	state      ports.CacheState
	logger     ports.Logger
	httpClient *http.Client
	retryDelay time.Duration
}

// NewClient creates a Client that stores downloads in state.
func NewClient(state ports.CacheState, logger ports.Logger) *Client {
	return newClientWithHTTP(state, logger, &http.Client{})
}

func newClientWithHTTP(state ports.CacheState, logger ports.Logger, client *http.Client) *Client {
	return &Client{
		state:      state,
		logger:     logger,
		httpClient: client,
		retryDelay: defaultRetryDelay,
	}
}

// FetchFirstAvailable tries urls in order and returns the local path of the first
// archive that downloads successfully. Archives left over from earlier runs are
// removed first so that only this run's download is ever extracted.
func (c *Client) FetchFirstAvailable(ctx context.Context, urls []string) (string, error) {
	for _, comp := range domain.Compressions() {
		_ = os.Remove(c.state.FetchArchivePath(comp))
	}

	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		target := c.state.FetchArchivePath(domain.CompressionFor(u))
		c.logger.Info("fetching " + domain.SafeURL(u))

		err := c.download(ctx, u, target)
		if err == nil {
			return target, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		c.logger.Warn("could not fetch " + domain.SafeURL(u) + ": " + failureReason(err))
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", zerr.With(domain.ErrNotFound, "candidates", len(urls))
}

func (c *Client) download(ctx context.Context, url, target string) error {
	for attempt := 1; ; attempt++ {
		retry, err := c.get(ctx, url, target)
		if err == nil {
			return nil
		}
		_ = os.Remove(target)

		if !retry || attempt >= maxAttempts || ctx.Err() != nil {
			return err
		}

		timer := time.NewTimer(c.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// get performs one GET into target and reports whether a failure is worth retrying.
func (c *Client) get(ctx context.Context, url, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrNotFound.Error()), "url", domain.SafeURL(url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, zerr.With(zerr.Wrap(withoutURL(err), domain.ErrNotFound.Error()), "url", domain.SafeURL(url))
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := zerr.With(zerr.Wrap(domain.ErrNotFound, "unexpected response status"), "status_code", resp.StatusCode)
		return transientStatus(resp.StatusCode), zerr.With(statusErr, "url", domain.SafeURL(url))
	}

	f, err := os.Create(target) //nolint:gosec // Target lives in the state directory
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", target)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return true, zerr.With(zerr.Wrap(err, domain.ErrNotFound.Error()), "url", domain.SafeURL(url))
	}
	if err := f.Close(); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", target)
	}
	return false, nil
}

// failureReason renders why one candidate could not be downloaded.
func failureReason(err error) string {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if code, ok := zErr.Metadata()["status_code"]; ok {
			return fmt.Sprintf("server responded with status %v", code)
		}
		if cause := zErr.Unwrap(); cause != nil {
			return cause.Error()
		}
	}
	return err.Error()
}

// withoutURL drops the request URL, which may carry credentials, from a client error.
func withoutURL(err error) error {
	var urlErr *neturl.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func transientStatus(code int) bool {
	return code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500
}

// Upload PUTs the archive at local to url.
func (c *Client) Upload(ctx context.Context, local, url string) error {
	f, err := os.Open(local) //nolint:gosec // Archive lives in the state directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTransferFailed.Error()), "path", local)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	info, err := f.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTransferFailed.Error()), "path", local)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, f)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTransferFailed.Error()), "url", domain.SafeURL(url))
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(withoutURL(err), domain.ErrTransferFailed.Error()), "url", domain.SafeURL(url))
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*bodyMetadataSize))
		uploadErr := zerr.With(zerr.Wrap(domain.ErrTransferFailed, "unexpected response status"), "status_code", resp.StatusCode)
		uploadErr = zerr.With(uploadErr, "url", domain.SafeURL(url))
		return zerr.With(uploadErr, "body", domain.Truncate(strings.TrimSpace(string(body)), bodyMetadataSize))
	}
	return nil
}
