package auth

import (
	"context"
	"time"
)

// Role is the closed set of roles an account can hold. Authorization is
// evaluated against this enum, never against raw strings from storage.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// roleRanks orders roles for the rank-based gate: employee sits below
// hr and manager, which sit below admin.
var roleRanks = map[Role]int{
	RoleEmployee: 1,
	RoleHR:       2,
	RoleManager:  2,
	RoleAdmin:    3,
}

// ParseRole maps a stored role string onto the enum. Unknown values come
// back as RoleEmployee so a bad row can never grant elevated access.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := roleRanks[r]; ok {
		return r
	}
	return RoleEmployee
}

func (r Role) Rank() int {
	return roleRanks[r]
}

func (r Role) String() string {
	return string(r)
}

// Identity is the authenticated principal carried by a session. EmployeeID
// is nil when no non-deleted employee row matches the account email; such
// sessions are valid but cannot touch survey or profile operations.
type Identity struct {
	UserID     int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID *int64 `json:"employee_id,omitempty"`
	Role       Role   `json:"role"`
}

// HasEmployee reports whether the session is linked to an employee profile.
func (i Identity) HasEmployee() bool {
	return i.EmployeeID != nil && i.Email != ""
}

// Session is a server-held identity record addressed by an opaque token.
// The token in the client's cookie is the sole proof of identity; nothing
// else in a request is re-verified after login.
type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type ctxKey string

const contextIdentityKey ctxKey = "identity"

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextIdentityKey).(*Identity)
	return id, ok
}

func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextIdentityKey, id)
}
