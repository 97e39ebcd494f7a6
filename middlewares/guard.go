package middlewares

import (
	"github.com/zninennea/nani-plate-perfect/entity"
)

// Default landing pages per role. Unknown roles fall back to the customer
// dashboard so a mismatch always lands somewhere useful.
const (
	AuthPath     = "/auth"
	OwnerHome    = "/owner"
	CustomerHome = "/customer"
	DriverHome   = "/driver"
)

func RoleHome(role string) string {
	switch role {
	case entity.RoleOwner:
		return OwnerHome
	case entity.RoleDriver:
		return DriverHome
	default:
		return CustomerHome
	}
}

func HasRole(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// Decision is the outcome of the route guard: render, hold while the
// session resolves, or redirect.
type Decision struct {
	Allow   bool
	Loading bool
	Target  string
}

// Decide is the whole guard as a pure function over session state. While
// the session is still resolving the answer is "unknown", never
// "unauthorized". A role mismatch redirects to the caller's own dashboard,
// never a generic error page.
func Decide(profile *entity.User, required []string, loading bool) Decision {
	if loading {
		return Decision{Loading: true}
	}
	if profile == nil {
		return Decision{Target: AuthPath}
	}
	if len(required) > 0 && !HasRole(profile.Role, required) {
		return Decision{Target: RoleHome(profile.Role)}
	}
	return Decision{Allow: true}
}

// DecidePublicOnly guards auth-only pages: a signed-in profile never sees
// the sign-in form again.
func DecidePublicOnly(profile *entity.User) Decision {
	if profile != nil {
		return Decision{Target: RoleHome(profile.Role)}
	}
	return Decision{Allow: true}
}
