package engine

import (
	"strings"

	"github.com/QueryGate/pdp-go/internal/types"
)

// Data-source families share required-field rules. Membership is tested on
// the lowercased source name; anything unlisted belongs to no family.
const (
	familySQL      = "sql"
	familyS3       = "s3"
	familyDynamoDB = "dynamodb"
)

var sourceFamilies = map[string]string{
	"aurora":    familySQL,
	"snowflake": familySQL,
	"s3":        familyS3,
	"dynamodb":  familyDynamoDB,
}

// sourceFieldsOK checks that the query carries the payload its data source
// family requires. Unrecognized sources fail.
func sourceFieldsOK(q types.Query) bool {
	switch sourceFamilies[strings.ToLower(q.DataSource)] {
	case familySQL, familyS3:
		return q.QuerySQL != ""
	case familyDynamoDB:
		return q.KeyConditionExpression != ""
	default:
		return false
	}
}
