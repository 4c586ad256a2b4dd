package engine

import (
	"net/http"
	"strings"

	"github.com/QueryGate/pdp-go/internal/types"
)

// methodActions maps HTTP verbs to canonical data actions. Supporting a new
// verb means adding an entry here and nothing else.
var methodActions = map[string]string{
	http.MethodGet:    "SELECT",
	http.MethodPost:   "INSERT",
	http.MethodPut:    "UPDATE",
	http.MethodDelete: "DELETE",
}

// hasRequiredFields checks structural completeness of the envelope.
func hasRequiredFields(req types.AccessRequest) bool {
	return req.UserID != "" && req.Request.Method != "" && req.Query.QueryType != ""
}

// actionForMethod maps an HTTP verb (case-insensitively) to its canonical
// action. ok is false for unsupported verbs.
func actionForMethod(method string) (string, bool) {
	a, ok := methodActions[strings.ToUpper(method)]
	return a, ok
}

// typeMatches reports whether the caller-declared query type agrees with the
// action mapped from the HTTP method.
func typeMatches(action string, q types.Query) bool {
	return strings.EqualFold(action, q.QueryType)
}
