package directory

import (
	"fmt"
	"strings"

	"github.com/QueryGate/pdp-go/internal/glob"
	"github.com/QueryGate/pdp-go/internal/types"
)

// Snapshot is an immutable view of the users/roles/grants directory. All ids
// are folded to lower case at build time so lookups are case-insensitive.
// Evaluation never mutates a snapshot; callers swap whole snapshots to
// refresh.
type Snapshot struct {
	users map[string][]string      // user id -> role ids
	roles map[string][]types.Grant // role id -> grants
}

// Stats summarizes a snapshot for operator tooling.
type Stats struct {
	Users  int `json:"users"`
	Roles  int `json:"roles"`
	Grants int `json:"grants"`
}

// NewSnapshot builds and validates a snapshot. Duplicate user or role ids
// and grant patterns that fail to compile are configuration errors; a user
// referencing an unknown role is tolerated and simply contributes no grants.
func NewSnapshot(users []types.User, roles []types.Role) (*Snapshot, error) {
	s := &Snapshot{
		users: make(map[string][]string, len(users)),
		roles: make(map[string][]types.Grant, len(roles)),
	}

	for _, r := range roles {
		id := strings.ToLower(r.ID)
		if id == "" {
			return nil, fmt.Errorf("role with empty id")
		}
		if _, ok := s.roles[id]; ok {
			return nil, fmt.Errorf("duplicate role %q", id)
		}
		for gi, g := range r.Grants {
			if err := validateGrant(g); err != nil {
				return nil, fmt.Errorf("role %q grant %d: %w", id, gi, err)
			}
		}
		s.roles[id] = r.Grants
	}

	for _, u := range users {
		id := strings.ToLower(u.ID)
		if id == "" {
			return nil, fmt.Errorf("user with empty id")
		}
		if _, ok := s.users[id]; ok {
			return nil, fmt.Errorf("duplicate user %q", id)
		}
		roleIDs := make([]string, 0, len(u.Roles))
		for _, rid := range u.Roles {
			roleIDs = append(roleIDs, strings.ToLower(rid))
		}
		s.users[id] = roleIDs
	}

	return s, nil
}

// validateGrant compiles every glob pattern up front so bad patterns surface
// at load time instead of silently matching nothing per request.
func validateGrant(g types.Grant) error {
	for _, p := range g.Resources.Instances {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("instance pattern %q: %w", p, err)
		}
	}
	for _, p := range g.Resources.Tables {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("table pattern %q: %w", p, err)
		}
	}
	return nil
}

// GrantsFor resolves a user (case-insensitively) to the union of grants
// across all of its roles. ok is false when the user is unknown.
func (s *Snapshot) GrantsFor(userID string) (grants []types.Grant, ok bool) {
	roleIDs, ok := s.users[strings.ToLower(userID)]
	if !ok {
		return nil, false
	}
	for _, rid := range roleIDs {
		grants = append(grants, s.roles[rid]...)
	}
	return grants, true
}

// Stats returns user/role/grant counts.
func (s *Snapshot) Stats() Stats {
	st := Stats{Users: len(s.users), Roles: len(s.roles)}
	for _, grants := range s.roles {
		st.Grants += len(grants)
	}
	return st
}
