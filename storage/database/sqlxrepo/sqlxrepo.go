// Package sqlxrepo implements the domain repositories on PostgreSQL via sqlx.
package sqlxrepo

import (
	"strings"

	"github.com/Konou0luc/ucao-academy-sub000/core"
)

// orderBy renders an ORDER BY clause from orderings, dropping any field not
// in allowed. Fields are whitelisted since they end up in raw SQL.
func orderBy(orderings []core.DBOrdering, allowed map[string]bool) string {
	var parts []string
	for _, ord := range orderings {
		if !allowed[ord.Field] {
			continue
		}
		parts = append(parts, ord.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}
