package authz

import (
	"context"

	"github.com/QueryGate/pdp-go/internal/directory"
	"github.com/QueryGate/pdp-go/internal/engine"
	"github.com/QueryGate/pdp-go/internal/types"
)

// Engine is the default authorizer: the local role-grant decision engine
// evaluated against an immutable directory snapshot.
type Engine struct {
	snap *directory.Snapshot
}

func NewEngine(snap *directory.Snapshot) *Engine {
	return &Engine{snap: snap}
}

func (e *Engine) Check(ctx context.Context, req types.AccessRequest) (types.Decision, error) {
	return engine.Evaluate(e.snap, req), nil
}
