package types

import "strings"

// Effect is the outcome of evaluating an access request. Indeterminate means
// the request could not be evaluated as given (caller/environment problem),
// as opposed to Denied, which is a policy refusal.
type Effect string

const (
	EffectAllowed       Effect = "Allowed"
	EffectDenied        Effect = "Denied"
	EffectIndeterminate Effect = "Indeterminate"
)

// Decision pairs an effect with a stable human-readable message keyed to the
// first precondition that settled the outcome.
type Decision struct {
	Effect  Effect `json:"decision"`
	Message string `json:"message"`
}

// RequestInfo carries the HTTP shape of the incoming data-access call.
type RequestInfo struct {
	Method string `json:"method"`
}

// Query describes the data the caller wants to touch. Instance and Table are
// optional; the source-specific payload lives in QuerySQL (sql/s3 sources)
// or KeyConditionExpression (dynamodb).
type Query struct {
	QueryType              string   `json:"query_type"`
	DataSource             string   `json:"data_source,omitempty"`
	Instance               string   `json:"instance,omitempty"`
	Table                  string   `json:"table,omitempty"`
	QuerySQL               string   `json:"query_sql,omitempty"`
	KeyConditionExpression string   `json:"KeyConditionExpression,omitempty"`
	Columns                []string `json:"columns,omitempty"`
}

// QualifiedTable composes the lowercased instance-qualified table name, or
// just the lowercased table when no instance is set.
func (q Query) QualifiedTable() string {
	if q.Instance != "" {
		return strings.ToLower(q.Instance) + "." + strings.ToLower(q.Table)
	}
	return strings.ToLower(q.Table)
}

// AccessRequest is the evaluation input. Columns is the set of columns the
// caller intends to read or write; leaving it out opts out of column checks.
type AccessRequest struct {
	UserID  string      `json:"user_id"`
	Request RequestInfo `json:"request"`
	Query   Query       `json:"query"`
	Columns []string    `json:"columns,omitempty"`
}

// RequestedColumns returns the envelope column list, falling back to the
// query-nested form some callers send.
func (r AccessRequest) RequestedColumns() []string {
	if len(r.Columns) > 0 {
		return r.Columns
	}
	return r.Query.Columns
}

// TableColumns is a per-table column allow-list entry. Table is an exact
// (qualified) name, not a glob.
type TableColumns struct {
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
}

// GrantResources scopes a grant. Every field is optional and absence always
// widens: a nil DataSource matches any source, an empty Instances list any
// instance, and so on.
type GrantResources struct {
	DataSource     *string        `json:"data_source,omitempty"`
	Instances      []string       `json:"instances,omitempty"`
	Tables         []string       `json:"tables,omitempty"`
	ColumnsAllow   []string       `json:"columns_allow,omitempty"`
	ColumnsByTable []TableColumns `json:"columns_by_table,omitempty"`
}

// Grant is a unit of permission: allowed actions plus an optional resource
// scope. Actions hold canonical action names or the wildcard "*".
type Grant struct {
	Actions   []string       `json:"actions"`
	Resources GrantResources `json:"resources"`
}

// Role is a named bundle of grants.
type Role struct {
	ID     string  `json:"id"`
	Grants []Grant `json:"grants"`
}

// User links an identifier to the roles it holds.
type User struct {
	ID    string   `json:"id"`
	Roles []string `json:"roles"`
}
