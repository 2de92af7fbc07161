package acl

import (
	"context"
	"fmt"
	"net/http"
)

const readyPath = "/health/ready"

// Name returns the identifier used when this client is registered with a
// [ports.HealthRegistry]. It is the service name given to the underlying
// [httpclient.Client].
func (c *StoreClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports whether the remote store can serve requests. An open
// circuit breaker fails fast without a network call; otherwise the service's
// readiness endpoint must answer 200.
func (c *StoreClient) HealthCheck(ctx context.Context) error {
	if err := c.client.HealthCheck(ctx); err != nil {
		return err
	}
	if err := c.req.Do(ctx, http.MethodGet, readyPath, http.StatusOK, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", c.client.Name(), err)
	}
	return nil
}
