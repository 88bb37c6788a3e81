package sdk

// Role is the contextual role an identity holds within a team. It changes when
// the current team changes.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// CanManageTeam reports whether the role may manage team membership and settings.
func (r Role) CanManageTeam() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanEdit reports whether the role may create and modify resources.
func (r Role) CanEdit() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleMember
}

// IsViewOnly reports whether the role is restricted to reads.
func (r Role) IsViewOnly() bool {
	return r == RoleViewer
}

// Identity is the authenticated user. Role is contextual to the current team,
// not a global attribute.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

// TeamMembership records one team the identity belongs to and the role held there.
type TeamMembership struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Role     Role   `json:"role"`
}
