package engine

import (
	"strings"

	"github.com/QueryGate/pdp-go/internal/glob"
	"github.com/QueryGate/pdp-go/internal/types"
)

// resourcesMatch reports whether a grant's resource scope covers the query.
// The three dimensions are independent: omitting any of them widens the
// grant to "any" for that dimension.
func resourcesMatch(g types.Grant, q types.Query) bool {
	return dataSourceOK(g.Resources, q) && instanceOK(g.Resources, q) && tableOK(g.Resources, q)
}

func dataSourceOK(res types.GrantResources, q types.Query) bool {
	if res.DataSource == nil {
		return true
	}
	return *res.DataSource == "*" || strings.EqualFold(*res.DataSource, q.DataSource)
}

func instanceOK(res types.GrantResources, q types.Query) bool {
	if len(res.Instances) == 0 {
		return true
	}
	if q.Instance == "" {
		return false
	}
	for _, p := range res.Instances {
		if glob.Match(p, q.Instance) {
			return true
		}
	}
	return false
}

// tableOK accepts a pattern hit on either the bare table name or the
// instance-qualified form, so grants can be written both ways.
func tableOK(res types.GrantResources, q types.Query) bool {
	if len(res.Tables) == 0 {
		return true
	}
	if q.Table == "" {
		return false
	}
	qualified := q.QualifiedTable()
	for _, p := range res.Tables {
		if glob.Match(p, q.Table) || glob.Match(p, qualified) {
			return true
		}
	}
	return false
}
