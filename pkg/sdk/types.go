package sdk

import "time"

// Project is a unit of client work containing tasks.
type Project struct {
	ID          string     `json:"id"`
	TeamID      string     `json:"team_id"`
	ClientID    string     `json:"client_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Task is a single actionable item, optionally scoped to a project.
type Task struct {
	ID         string     `json:"id"`
	TeamID     string     `json:"team_id"`
	ProjectID  string     `json:"project_id,omitempty"`
	Title      string     `json:"title"`
	Status     string     `json:"status,omitempty"`
	AssigneeID string     `json:"assignee_id,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ClientRecord is an external client the team does work for. Named to avoid
// clashing with the SDK's own Client aggregate.
type ClientRecord struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Campaign groups projects under a marketing initiative.
type Campaign struct {
	ID        string     `json:"id"`
	TeamID    string     `json:"team_id"`
	ClientID  string     `json:"client_id,omitempty"`
	Name      string     `json:"name"`
	Status    string     `json:"status,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Note is free-form text attached to another record.
type Note struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"team_id"`
	AuthorID   string    `json:"author_id"`
	EntityType string    `json:"entity_type,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// Invoice bills a client for completed work.
type Invoice struct {
	ID        string     `json:"id"`
	TeamID    string     `json:"team_id"`
	ClientID  string     `json:"client_id"`
	Number    string     `json:"number"`
	Status    string     `json:"status,omitempty"`
	Total     float64    `json:"total"`
	Currency  string     `json:"currency,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Scope is an agreed block of work within a project.
type Scope struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	Hours     float64   `json:"hours,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ResourceEntry is a shared asset (file, link, document) owned by the team.
type ResourceEntry struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind,omitempty"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OnboardingStep tracks a step in a client or member onboarding checklist.
type OnboardingStep struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Position  int       `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CalendarEvent is a scheduled entry on the team calendar.
type CalendarEvent struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is a message delivered to a team member.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind,omitempty"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Webhook is an outbound event subscription configured for the team.
type Webhook struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLogEntry records a mutation performed within the team.
type AuditLogEntry struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"team_id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
