package sdk

import (
	"context"
	"net/url"
)

// ResourceClient provides the uniform list/get/create/update/delete surface
// shared by every backend resource. It carries no policy of its own; credential
// injection, retries, and error classification all come from the Gateway.
type ResourceClient[T any] struct {
	gw   *Gateway
	path string
}

// NewResourceClient creates a wrapper for the collection at path
// (for example "/projects").
func NewResourceClient[T any](gw *Gateway, path string) *ResourceClient[T] {
	return &ResourceClient[T]{gw: gw, path: path}
}

// List fetches the collection, optionally filtered by query parameters.
func (c *ResourceClient[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	var out []T
	if err := c.gw.Get(ctx, c.path, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single record by id.
func (c *ResourceClient[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := c.gw.Get(ctx, c.path+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a new record and returns the stored result.
func (c *ResourceClient[T]) Create(ctx context.Context, in any) (*T, error) {
	var out T
	if err := c.gw.Post(ctx, c.path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the record with id and returns the stored result.
func (c *ResourceClient[T]) Update(ctx context.Context, id string, in any) (*T, error) {
	var out T
	if err := c.gw.Put(ctx, c.path+"/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the record with id.
func (c *ResourceClient[T]) Delete(ctx context.Context, id string) error {
	return c.gw.Delete(ctx, c.path+"/"+id)
}

// Client bundles the resource wrappers behind one constructor.
type Client struct {
	Teams          *TeamsClient
	Projects       *ResourceClient[Project]
	Tasks          *ResourceClient[Task]
	Clients        *ResourceClient[ClientRecord]
	Campaigns      *ResourceClient[Campaign]
	Notes          *ResourceClient[Note]
	Invoices       *ResourceClient[Invoice]
	Scopes         *ResourceClient[Scope]
	Resources      *ResourceClient[ResourceEntry]
	Onboarding     *ResourceClient[OnboardingStep]
	CalendarEvents *ResourceClient[CalendarEvent]
	Notifications  *ResourceClient[Notification]
	Webhooks       *ResourceClient[Webhook]
	AuditLogs      *ResourceClient[AuditLogEntry]
}

// NewClient creates the full set of resource wrappers on top of gw.
func NewClient(gw *Gateway) *Client {
	return &Client{
		Teams:          NewTeamsClient(gw),
		Projects:       NewResourceClient[Project](gw, "/projects"),
		Tasks:          NewResourceClient[Task](gw, "/tasks"),
		Clients:        NewResourceClient[ClientRecord](gw, "/clients"),
		Campaigns:      NewResourceClient[Campaign](gw, "/campaigns"),
		Notes:          NewResourceClient[Note](gw, "/notes"),
		Invoices:       NewResourceClient[Invoice](gw, "/invoices"),
		Scopes:         NewResourceClient[Scope](gw, "/scopes"),
		Resources:      NewResourceClient[ResourceEntry](gw, "/resources"),
		Onboarding:     NewResourceClient[OnboardingStep](gw, "/onboarding"),
		CalendarEvents: NewResourceClient[CalendarEvent](gw, "/calendar"),
		Notifications:  NewResourceClient[Notification](gw, "/notifications"),
		Webhooks:       NewResourceClient[Webhook](gw, "/webhooks"),
		AuditLogs:      NewResourceClient[AuditLogEntry](gw, "/audit-logs"),
	}
}
