package transfer

import (
	"net/http"
	"time"

	"go.trai.ch/carry/internal/core/ports"
)

// NewClientWithHTTP creates a Client with a custom http client and no retry delay.
func NewClientWithHTTP(state ports.CacheState, logger ports.Logger, client *http.Client) *Client {
	c := newClientWithHTTP(state, logger, client)
	c.retryDelay = time.Millisecond
	return c
}
