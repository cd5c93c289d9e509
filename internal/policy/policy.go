// Package policy holds the authorization decisions shared by the route guards and the gig workflows.
package policy

import (
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/samber/lo"
)

// Decision is the outcome of an authorization check.
type Decision bool

const (
	Deny  Decision = false
	Allow Decision = true
)

// Allowed reports whether the decision grants access.
func (d Decision) Allowed() bool {
	return d == Allow
}

func (d Decision) String() string {
	if d {
		return "allow"
	}
	return "deny"
}

// AuthorizeRole allows the actor if their role is one of roles.
// A nil actor is always denied.
func AuthorizeRole(actor *models.User, roles ...database.Role) Decision {
	if actor == nil {
		return Deny
	}
	return Decision(lo.Contains(roles, actor.Role))
}

// AuthorizeOwner allows the actor only if they created the resource.
// Admins get no exemption here; they moderate through the admin routes.
func AuthorizeOwner(actor *models.User, ownerID uint) Decision {
	if actor == nil {
		return Deny
	}
	return Decision(actor.ID == ownerID)
}

// All combines decisions, allowing only if every one of them allows.
func All(decisions ...Decision) Decision {
	return Decision(lo.EveryBy(decisions, Decision.Allowed))
}
