package sdk

import "context"

// TeamSummary is the backend's team record. Role is the caller's role in that
// team and may be absent on some listings.
type TeamSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// TeamsClient wraps the /teams endpoints.
type TeamsClient struct {
	gw *Gateway
}

// NewTeamsClient creates a teams client on top of gw.
func NewTeamsClient(gw *Gateway) *TeamsClient {
	return &TeamsClient{gw: gw}
}

// List returns every team the authenticated identity belongs to.
func (c *TeamsClient) List(ctx context.Context) ([]TeamSummary, error) {
	var out []TeamSummary
	if err := c.gw.Get(ctx, "/teams", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a new team owned by the authenticated identity.
func (c *TeamsClient) Create(ctx context.Context, name string) (*TeamSummary, error) {
	var out TeamSummary
	if err := c.gw.Post(ctx, "/teams", map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
