package authz

import (
	"context"

	"github.com/QueryGate/pdp-go/internal/types"
)

// Authorizer decides data-access requests. Implementations must be safe for
// concurrent use. The error return is reserved for backend failures; policy
// refusals come back as Denied/Indeterminate decisions, never errors.
type Authorizer interface {
	Check(ctx context.Context, req types.AccessRequest) (types.Decision, error)
}
