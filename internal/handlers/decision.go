package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/QueryGate/pdp-go/internal/authz"
	"github.com/QueryGate/pdp-go/internal/httpx"
	"github.com/QueryGate/pdp-go/internal/identity"
	"github.com/QueryGate/pdp-go/internal/trace"
	"github.com/QueryGate/pdp-go/internal/types"
)

type DecisionHandler struct {
	Authz    authz.Authorizer
	Identity *identity.Resolver
}

func NewDecisionHandler(a authz.Authorizer, id *identity.Resolver) *DecisionHandler {
	return &DecisionHandler{Authz: a, Identity: id}
}

// DecisionResponse carries the outcome plus a unique id for audit log
// correlation.
type DecisionResponse struct {
	ID       string       `json:"id"`
	Decision types.Effect `json:"decision"`
	Message  string       `json:"message"`
}

// ServeHTTP evaluates one access request. Every evaluable request answers
// 200 with a decision; only an unreadable body or a backend failure is an
// HTTP error.
func (h *DecisionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req types.AccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if h.Identity != nil {
		sub, err := h.Identity.Subject(r)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		if req.UserID == "" {
			req.UserID = sub
		}
	}

	dec, err := h.Authz.Check(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadGateway, "authorization backend unavailable")
		return
	}

	id := uuid.NewString()
	slog.Info("decision",
		"trace", trace.From(r.Context()),
		"id", id,
		"user", strings.ToLower(req.UserID),
		"method", req.Request.Method,
		"source", strings.ToLower(req.Query.DataSource),
		"table", req.Query.QualifiedTable(),
		"decision", dec.Effect,
		"msg", dec.Message,
	)

	httpx.WriteJSON(w, http.StatusOK, DecisionResponse{ID: id, Decision: dec.Effect, Message: dec.Message})
}
