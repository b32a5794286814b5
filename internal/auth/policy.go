package auth

import (
	"net/http"
	"strings"
)

// Policy decides whether a role may reach a resource. The two observed
// shapes are a minimum-rank gate and an explicit allow-list; routes pick
// whichever fits them.
type Policy interface {
	Allows(role Role) bool
	Describe() string
}

// RankPolicy grants access to every role whose rank is at least the rank
// of Min.
type RankPolicy struct {
	Min Role
}

func MinRole(min Role) RankPolicy {
	return RankPolicy{Min: min}
}

func (p RankPolicy) Allows(role Role) bool {
	return role.Rank() >= p.Min.Rank()
}

func (p RankPolicy) Describe() string {
	return "min_role=" + string(p.Min)
}

// AllowListPolicy grants access only to the named roles.
type AllowListPolicy struct {
	roles map[Role]struct{}
}

func AnyOf(roles ...Role) AllowListPolicy {
	set := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return AllowListPolicy{roles: set}
}

func (p AllowListPolicy) Allows(role Role) bool {
	_, ok := p.roles[role]
	return ok
}

func (p AllowListPolicy) Describe() string {
	names := make([]string, 0, len(p.roles))
	for r := range p.roles {
		names = append(names, string(r))
	}
	return "allowed_roles=" + strings.Join(names, ",")
}

// RequirePolicy builds a route middleware enforcing the given policy
// against the session identity. It assumes SessionMiddleware already ran;
// a missing identity is a 401, a disallowed role a 403.
func (h *Handler) RequirePolicy(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity == nil {
				h.WriteError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			if !policy.Allows(identity.Role) {
				h.Logger.Warn("access denied by policy",
					"user_id", identity.UserID,
					"role", identity.Role,
					"policy", policy.Describe())
				h.WriteError(w, http.StatusForbidden, "insufficient role for this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
