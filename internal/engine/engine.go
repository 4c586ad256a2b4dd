// Package engine implements the stateless authorization decision procedure
// for data-access requests: an ordered guard chain over the request shape
// and the caller's role grants, producing exactly one of Allowed, Denied or
// Indeterminate. Evaluation is pure: no I/O, no mutation, safe to run
// concurrently against the same directory snapshot.
package engine

import (
	"strings"

	"github.com/QueryGate/pdp-go/internal/directory"
	"github.com/QueryGate/pdp-go/internal/types"
)

// Decision messages are stable per reachable state so audit logs stay
// consistent across versions.
const (
	MsgMissingFields  = "missing required fields"
	MsgUnknownUser    = "user does not exist"
	MsgBadMethod      = "unsupported request method"
	MsgNoDataSource   = "missing data source"
	MsgTypeMismatch   = "query type does not match request method"
	MsgBadQueryFields = "insufficient query fields for data source"
	MsgDenied         = "insufficient privileges"
	MsgAllowed        = "access granted"
)

// Evaluate runs the decision procedure. The guard order is load-bearing:
// malformed or under-specified requests come back Indeterminate (fix and
// retry), while well-formed requests that fail policy come back Denied.
// Returning at the first failing guard makes the three outcomes mutually
// exclusive by construction.
func Evaluate(snap *directory.Snapshot, req types.AccessRequest) types.Decision {
	if !hasRequiredFields(req) {
		return indeterminate(MsgMissingFields)
	}

	grants, known := snap.GrantsFor(req.UserID)
	if !known {
		return indeterminate(MsgUnknownUser)
	}

	action, supported := actionForMethod(req.Request.Method)
	if !supported {
		return indeterminate(MsgBadMethod)
	}

	if req.Query.DataSource == "" {
		return indeterminate(MsgNoDataSource)
	}

	if !typeMatches(action, req.Query) {
		return denied(MsgTypeMismatch)
	}

	if !sourceFieldsOK(req.Query) {
		return indeterminate(MsgBadQueryFields)
	}

	for _, g := range grants {
		if authorizes(g, action, req) {
			return types.Decision{Effect: types.EffectAllowed, Message: MsgAllowed}
		}
	}
	return denied(MsgDenied)
}

// authorizes reports whether a single grant fully covers the request:
// action, resource scope and column constraints.
func authorizes(g types.Grant, action string, req types.AccessRequest) bool {
	return allowsAction(g, action) && resourcesMatch(g, req.Query) && columnsOK(req, g)
}

func allowsAction(g types.Grant, action string) bool {
	for _, a := range g.Actions {
		if a == "*" || strings.EqualFold(a, action) {
			return true
		}
	}
	return false
}

func indeterminate(msg string) types.Decision {
	return types.Decision{Effect: types.EffectIndeterminate, Message: msg}
}

func denied(msg string) types.Decision {
	return types.Decision{Effect: types.EffectDenied, Message: msg}
}
