package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// searchResultLimit caps how many rows a single source contributes to a
// universal search. The underlying tables are portfolio-scale; the cap
// is a safety margin, not a pagination mechanism.
const searchResultLimit = 50

// likePattern wraps a raw query in a substring ILIKE pattern, escaping
// LIKE metacharacters so user input is matched literally.
func likePattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	return "%" + escaped + "%"
}

// matchAnyField builds "(f1 ILIKE $n OR f2 ILIKE $n OR ...)" over the
// designated searchable fields of a table. Every entity repository
// specializes its Search on top of this single condition builder.
func matchAnyField(fields []string, argPos int) string {
	conds := make([]string, len(fields))
	for i, f := range fields {
		conds[i] = fmt.Sprintf("%s ILIKE $%d", f, argPos)
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
