package postgres

import "strings"

// sortableColumns maps the API-facing sort keys to real column names. Keys
// outside this map are ignored so callers can never inject arbitrary SQL
// into an ORDER BY clause.
var sortableColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"address":   "address",
	"role":      "role",
	"createdAt": "created_at",
}

// orderClause builds a safe ORDER BY expression from the whitelisted sort
// key and direction. Unknown keys fall back to name; anything other than
// "desc" sorts ascending.
func orderClause(sortBy, sortOrder string) string {
	column, ok := sortableColumns[sortBy]
	if !ok {
		column = "name"
	}

	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}
