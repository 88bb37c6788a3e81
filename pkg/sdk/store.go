package sdk

// SessionState is the durable snapshot of an authenticated session. The four
// records are saved and cleared as one unit so a restore never observes a
// partial session.
type SessionState struct {
	Identity    *Identity        `json:"identity"`
	Token       string           `json:"token"`
	Roster      []TeamMembership `json:"roster"`
	CurrentTeam string           `json:"current_team,omitempty"`
}

// Store persists session state across process restarts. Load returns
// (nil, nil) when nothing is stored.
type Store interface {
	Save(state *SessionState) error
	Load() (*SessionState, error)
	Clear() error
}
