package sdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Session owns the authenticated identity, the roster of teams the identity
// belongs to, and which team the session currently acts as. All mutations go
// through its methods; the active credential and current team are never
// touched directly by resource wrappers or UI code.
type Session struct {
	gw     *Gateway
	store  Store
	logger *slog.Logger

	mu          sync.Mutex
	identity    *Identity
	credential  *Credentials
	roster      []TeamMembership
	currentTeam string
	refreshers  []refresher
	onChange    func()
}

type refresher struct {
	name string
	fn   func(context.Context) error
}

// SessionOption mutates session construction.
type SessionOption func(*Session)

// WithSessionLogger overrides the session's logger.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session manager on top of gw, persisting state through
// store. The session registers itself as the gateway's unauthenticated
// handler: a definitive rejection anywhere tears the session down once.
func NewSession(gw *Gateway, store Store, opts ...SessionOption) *Session {
	s := &Session{
		gw:     gw,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	gw.OnUnauthenticated(s.handleUnauthenticated)
	return s
}

// OnChange registers a listener invoked after any session-state mutation.
// Registering a new listener replaces the previous one.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// RegisterRefresher adds a dependent cache reload that runs after every
// committed team switch. Refresh failures are logged and swallowed.
func (s *Session) RegisterRefresher(name string, fn func(context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshers = append(s.refreshers, refresher{name: name, fn: fn})
}

// Restore reconstructs the session from durable storage. A stored credential
// that is already expired, or a record missing required fields, discards all
// stored state. Returns whether a usable identity is present afterwards.
func (s *Session) Restore() bool {
	if s.store == nil {
		return false
	}
	state, err := s.store.Load()
	if err != nil {
		s.logger.Warn("failed to load stored session", "error", err)
		return false
	}
	if state == nil {
		return false
	}
	if state.Identity == nil || state.Token == "" {
		s.clearStore()
		return false
	}

	creds, err := DecodeCredential(state.Token)
	if err != nil || creds.IsExpired() {
		s.clearStore()
		return false
	}

	s.mu.Lock()
	s.identity = state.Identity
	s.credential = creds
	s.roster = state.Roster
	s.currentTeam = state.CurrentTeam
	s.selectTeamLocked("")
	s.gw.SetCredential(creds)
	s.mu.Unlock()
	s.notifyChange()
	return true
}

type authResponse struct {
	Token         string    `json:"token"`
	User          *Identity `json:"user"`
	CurrentTeamID string    `json:"currentTeamId"`
	Message       string    `json:"message"`
}

// Login authenticates with email and password, installs the returned
// credential and identity, loads the team roster, and selects a current team.
func (s *Session) Login(ctx context.Context, email, password string) (*Identity, error) {
	return s.authenticate(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register creates an account and establishes a session, following the same
// install path as Login.
func (s *Session) Register(ctx context.Context, email, password, name string) (*Identity, error) {
	return s.authenticate(ctx, "/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
}

func (s *Session) authenticate(ctx context.Context, path string, body any) (*Identity, error) {
	var resp authResponse
	if err := s.gw.Post(ctx, path, body, &resp); err != nil {
		return nil, authFailure(err)
	}
	if resp.Token == "" || resp.User == nil {
		return nil, &Error{Kind: KindAuthenticationFailed, Message: "server response is missing token or user"}
	}
	creds, err := DecodeCredential(resp.Token)
	if err != nil {
		return nil, &Error{Kind: KindAuthenticationFailed, Message: "server returned an unusable token", cause: err}
	}

	s.mu.Lock()
	s.identity = resp.User
	s.roster = nil
	s.currentTeam = ""
	s.installLocked(creds)
	s.mu.Unlock()
	s.notifyChange()

	if err := s.LoadTeamRoster(ctx); err != nil {
		if IsUnauthenticated(err) {
			// The roster load's 401 already tore the session down through the
			// gateway handler; the login as a whole has failed.
			return nil, &Error{Kind: KindAuthenticationFailed, Message: "credential rejected while loading teams", cause: err}
		}
		s.logger.Warn("failed to load team roster after authentication", "error", err)
	}

	s.mu.Lock()
	if s.identity == nil {
		// A concurrent rejection ended the session while the roster loaded.
		s.mu.Unlock()
		return nil, &Error{Kind: KindAuthenticationFailed, Message: "session ended during login"}
	}
	// The backend may designate a default team; it wins when it is in the
	// roster, otherwise the selection from the roster load stands.
	s.selectTeamLocked(resp.CurrentTeamID)
	s.persistLocked()
	identity := s.identity.clone()
	s.mu.Unlock()
	s.notifyChange()
	return identity, nil
}

// authFailure converts a backend rejection of login or registration into an
// authentication failure; infrastructure errors propagate unchanged.
func authFailure(err error) error {
	var classified *Error
	if errors.As(err, &classified) {
		switch classified.Kind {
		case KindServerRejected, KindUnauthenticated:
			return &Error{
				Kind:    KindAuthenticationFailed,
				Status:  classified.Status,
				Message: classified.Message,
				cause:   err,
			}
		}
	}
	return err
}

// Logout notifies the backend best-effort, then unconditionally clears the
// session and durable storage. It never fails; calling it without an active
// session is a no-op beyond re-clearing storage.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	active := s.credential != nil
	s.mu.Unlock()

	if active {
		if err := s.gw.Post(ctx, "/auth/logout", nil, nil); err != nil {
			s.logger.Debug("logout notification failed", "error", err)
		}
	}
	s.teardown()
}

type switchTeamResponse struct {
	Token       string       `json:"token"`
	CurrentTeam *TeamSummary `json:"currentTeam"`
	Message     string       `json:"message"`
}

// SwitchTeam changes which team the session acts as. The target is applied
// optimistically, committed against the backend, and rolled back in full if
// the commit fails: after return the identity's role, the current team, and
// the gateway's credential always agree.
func (s *Session) SwitchTeam(ctx context.Context, teamID string) (*TeamMembership, error) {
	s.mu.Lock()
	if s.identity == nil || s.credential == nil {
		s.mu.Unlock()
		return nil, &Error{Kind: KindNotAuthenticated, Message: "no active session"}
	}
	target := s.membershipLocked(teamID)
	if target == nil {
		s.mu.Unlock()
		return nil, &Error{Kind: KindInvalidTeamTarget, Message: fmt.Sprintf("team %s is not in the current roster", teamID)}
	}

	prevTeam := s.currentTeam
	prevRole := s.identity.Role
	prevCreds := s.credential

	// Optimistic apply: dependent reads see the target team while the commit
	// call is in flight.
	s.currentTeam = target.TeamID
	s.identity.Role = target.Role
	s.mu.Unlock()
	s.notifyChange()

	var resp switchTeamResponse
	err := s.gw.Post(ctx, "/auth/switch-team", map[string]string{"teamId": teamID}, &resp)
	var creds *Credentials
	if err == nil {
		if resp.Token == "" || resp.CurrentTeam == nil {
			err = &Error{Kind: KindServerRejected, Message: "switch response is missing token or team"}
		} else if creds, err = DecodeCredential(resp.Token); err != nil {
			err = &Error{Kind: KindServerRejected, Message: "switch response carries an unusable token", cause: err}
		}
	}

	if err != nil {
		// Roll back through the same install path used on success. When the
		// commit's own 401 tore the session down, teardown wins: rolling back
		// would reinstall the rejected credential into the gateway.
		s.mu.Lock()
		if s.identity == nil {
			s.mu.Unlock()
			return nil, err
		}
		s.currentTeam = prevTeam
		s.identity.Role = prevRole
		s.installLocked(prevCreds)
		s.mu.Unlock()
		s.notifyChange()
		return nil, err
	}

	committed := TeamMembership{
		TeamID:   resp.CurrentTeam.ID,
		TeamName: resp.CurrentTeam.Name,
		Role:     Role(resp.CurrentTeam.Role),
	}

	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return nil, &Error{Kind: KindNotAuthenticated, Message: "session ended during team switch"}
	}
	s.currentTeam = committed.TeamID
	s.replaceMembershipLocked(committed)
	s.identity.Role = committed.Role
	s.installLocked(creds)
	s.mu.Unlock()
	s.notifyChange()

	s.refreshDependents()
	return &committed, nil
}

// LoadTeamRoster refetches the team roster and revalidates the current team:
// an empty roster clears it, a roster that no longer contains it selects the
// first available team.
func (s *Session) LoadTeamRoster(ctx context.Context) error {
	var summaries []TeamSummary
	if err := s.gw.Get(ctx, "/teams", nil, &summaries); err != nil {
		return err
	}

	roster := make([]TeamMembership, 0, len(summaries))
	for _, t := range summaries {
		roster = append(roster, TeamMembership{TeamID: t.ID, TeamName: t.Name, Role: Role(t.Role)})
	}

	s.mu.Lock()
	s.roster = roster
	s.selectTeamLocked("")
	s.persistLocked()
	s.mu.Unlock()
	s.notifyChange()
	return nil
}

// IsAuthenticated reports whether a usable identity and credential are held.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil && s.credential != nil
}

// Identity returns a copy of the authenticated identity, or nil.
func (s *Session) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.clone()
}

// Credentials returns a copy of the active credential, or nil.
func (s *Session) Credentials() *Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.credential == nil {
		return nil
	}
	copied := *s.credential
	return &copied
}

// CurrentRole returns the role held in the current team, or the empty role.
func (s *Session) CurrentRole() Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m := s.membershipLocked(s.currentTeam); m != nil {
		return m.Role
	}
	return ""
}

// CurrentTeam returns the membership record for the current team, or nil.
func (s *Session) CurrentTeam() *TeamMembership {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m := s.membershipLocked(s.currentTeam); m != nil {
		copied := *m
		return &copied
	}
	return nil
}

// Teams returns a copy of the team roster.
func (s *Session) Teams() []TeamMembership {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TeamMembership(nil), s.roster...)
}

// CanManageTeam reports whether the current role may manage the team.
func (s *Session) CanManageTeam() bool { return s.CurrentRole().CanManageTeam() }

// CanEdit reports whether the current role may create and modify resources.
func (s *Session) CanEdit() bool { return s.CurrentRole().CanEdit() }

// IsViewOnly reports whether the current role is restricted to reads.
func (s *Session) IsViewOnly() bool { return s.CurrentRole().IsViewOnly() }

// handleUnauthenticated is the gateway's one-shot rejection handler: local
// teardown without a backend call.
func (s *Session) handleUnauthenticated() {
	s.logger.Info("credential rejected by server; clearing session")
	s.teardown()
}

func (s *Session) teardown() {
	s.mu.Lock()
	s.identity = nil
	s.credential = nil
	s.roster = nil
	s.currentTeam = ""
	s.gw.SetCredential(nil)
	s.mu.Unlock()
	s.clearStore()
	s.notifyChange()
}

// installLocked pushes a credential into the gateway and mirrors the full
// session snapshot into durable storage in the same step. Every path that
// changes the credential or the current team goes through here (or teardown),
// so the durable copy tracks the in-memory value. Callers hold s.mu.
func (s *Session) installLocked(creds *Credentials) {
	s.credential = creds
	s.gw.SetCredential(creds)
	s.persistLocked()
}

func (s *Session) persistLocked() {
	if s.store == nil {
		return
	}
	if s.identity == nil || s.credential == nil {
		if err := s.store.Clear(); err != nil {
			s.logger.Warn("failed to clear session storage", "error", err)
		}
		return
	}
	state := &SessionState{
		Identity:    s.identity.clone(),
		Token:       s.credential.Token,
		Roster:      append([]TeamMembership(nil), s.roster...),
		CurrentTeam: s.currentTeam,
	}
	if err := s.store.Save(state); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}
}

func (s *Session) clearStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Clear(); err != nil {
		s.logger.Warn("failed to clear session storage", "error", err)
	}
}

// selectTeamLocked picks the current team: an explicitly preferred id wins
// when present in the roster, then a still-valid existing selection, then the
// first roster entry. An empty roster clears the selection. The identity's
// role is synced to the outcome.
func (s *Session) selectTeamLocked(preferred string) {
	switch {
	case preferred != "" && s.membershipLocked(preferred) != nil:
		s.currentTeam = preferred
	case s.currentTeam != "" && s.membershipLocked(s.currentTeam) != nil:
		// keep
	case len(s.roster) > 0:
		s.currentTeam = s.roster[0].TeamID
	default:
		s.currentTeam = ""
	}
	s.syncRoleLocked()
}

func (s *Session) syncRoleLocked() {
	if s.identity == nil {
		return
	}
	if m := s.membershipLocked(s.currentTeam); m != nil {
		s.identity.Role = m.Role
	} else {
		s.identity.Role = ""
	}
}

func (s *Session) membershipLocked(teamID string) *TeamMembership {
	if teamID == "" {
		return nil
	}
	for i := range s.roster {
		if s.roster[i].TeamID == teamID {
			return &s.roster[i]
		}
	}
	return nil
}

func (s *Session) replaceMembershipLocked(m TeamMembership) {
	for i := range s.roster {
		if s.roster[i].TeamID == m.TeamID {
			s.roster[i] = m
			return
		}
	}
	s.roster = append(s.roster, m)
}

// refreshDependents reloads registered caches concurrently after a committed
// switch. The switch itself has already committed, so failures do not roll it
// back.
func (s *Session) refreshDependents() {
	s.mu.Lock()
	refreshers := append([]refresher(nil), s.refreshers...)
	s.mu.Unlock()

	for _, r := range refreshers {
		go func(r refresher) {
			ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
			defer cancel()
			if err := r.fn(ctx); err != nil {
				s.logger.Warn("cache refresh failed after team switch", "cache", r.name, "error", err)
			}
		}(r)
	}
}

func (s *Session) notifyChange() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (i *Identity) clone() *Identity {
	if i == nil {
		return nil
	}
	copied := *i
	return &copied
}
