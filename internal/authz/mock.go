package authz

import (
	"context"

	"github.com/QueryGate/pdp-go/internal/types"
)

type Mock struct {
	AlwaysAllow bool
}

func (m *Mock) Check(ctx context.Context, req types.AccessRequest) (types.Decision, error) {
	if m.AlwaysAllow {
		return types.Decision{Effect: types.EffectAllowed, Message: "access granted"}, nil
	}
	return types.Decision{Effect: types.EffectDenied, Message: "mock_deny"}, nil
}
