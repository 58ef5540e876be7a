package chatkitsdk

import (
	"context"
	"net/http"
)

// GetLiveness checks the /livez endpoint.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReadiness checks the /readyz endpoint, including dependency checks.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
