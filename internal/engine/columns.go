package engine

import (
	"strings"

	"github.com/QueryGate/pdp-go/internal/types"
)

// columnsOK evaluates the optional column allow-lists. Column checks are
// opt-in on the caller's side: a request without a column list passes
// vacuously. When columns are declared, both the grant's global allow-list
// and the per-table allow-list for the request's (qualified) table must
// admit every requested column.
func columnsOK(req types.AccessRequest, g types.Grant) bool {
	cols := req.RequestedColumns()
	if len(cols) == 0 {
		return true
	}

	res := g.Resources
	if len(res.ColumnsAllow) > 0 && !allAllowed(cols, res.ColumnsAllow) {
		return false
	}

	if len(res.ColumnsByTable) > 0 {
		qualified := req.Query.QualifiedTable()
		for _, tc := range res.ColumnsByTable {
			// Table keys match by exact qualified name, not glob. Tables
			// without an entry stay unrestricted.
			if strings.ToLower(tc.Table) != qualified {
				continue
			}
			if !allAllowed(cols, tc.Columns) {
				return false
			}
		}
	}

	return true
}

func allAllowed(requested, allowed []string) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		set[strings.ToLower(c)] = struct{}{}
	}
	for _, c := range requested {
		if _, ok := set[strings.ToLower(c)]; !ok {
			return false
		}
	}
	return true
}
