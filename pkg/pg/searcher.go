package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/clinickit/pkg/search"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SearchQuery describes a substring search over one table.
type SearchQuery struct {
	Table string
	// Columns selected into T. Empty selects every column.
	Columns []string
	// SearchColumns are matched with ILIKE and joined with OR.
	SearchColumns []string
	// OrderBy column; a leading "-" sorts descending.
	OrderBy string
	Limit   int
	// Unaccent compares f_unaccent() of both sides so "tran" finds "Trần".
	// It requires the functions installed by Migrate.
	Unaccent bool
}

// Build renders the SQL and arguments for term. A blank term matches every
// row, mirroring search.Filter.
func (q SearchQuery) Build(term string) (string, []any, error) {
	if q.Table == "" {
		return "", nil, fmt.Errorf("%w: table is required", ErrInvalidSearchQuery)
	}
	if len(q.SearchColumns) == 0 {
		return "", nil, fmt.Errorf("%w: at least one search column is required", ErrInvalidSearchQuery)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	if len(q.Columns) == 0 {
		sb.WriteString("*")
	} else {
		for i, col := range q.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(quoteIdent(col))
		}
	}
	sb.WriteString(" FROM ")
	sb.WriteString(quoteIdent(q.Table))

	var args []any
	if term = strings.TrimSpace(term); term != "" {
		args = append(args, "%"+EscapeLike(term)+"%")
		sb.WriteString(" WHERE (")
		for i, col := range q.SearchColumns {
			if i > 0 {
				sb.WriteString(" OR ")
			}
			if q.Unaccent {
				fmt.Fprintf(&sb, `f_unaccent(%s::text) ILIKE f_unaccent($1) ESCAPE '\'`, quoteIdent(col))
			} else {
				fmt.Fprintf(&sb, `%s::text ILIKE $1 ESCAPE '\'`, quoteIdent(col))
			}
		}
		sb.WriteString(")")
	}

	if q.OrderBy != "" {
		col, desc := strings.CutPrefix(q.OrderBy, "-")
		sb.WriteString(" ORDER BY ")
		sb.WriteString(quoteIdent(col))
		if desc {
			sb.WriteString(" DESC")
		}
	}
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
	}
	return sb.String(), args, nil
}

// EscapeLike escapes LIKE wildcards so the term is matched literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// quoteIdent quotes a possibly schema-qualified identifier.
func quoteIdent(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}

// NewSearcher returns a search.Searcher that runs q against db and scans each
// row into T by column name. Struct fields without a matching column are left
// at their zero value.
func NewSearcher[T any](db Querier, q SearchQuery) (search.Searcher[T], error) {
	if db == nil {
		return nil, fmt.Errorf("%w: nil querier", ErrInvalidSearchQuery)
	}
	if _, _, err := q.Build(""); err != nil {
		return nil, err
	}

	return func(ctx context.Context, term string) ([]T, error) {
		sql, args, err := q.Build(term)
		if err != nil {
			return nil, err
		}
		rows, err := db.Query(ctx, sql, args...)
		if err != nil {
			return nil, errors.Join(ErrSearchFailed, err)
		}
		out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
		if err != nil {
			return nil, errors.Join(ErrSearchFailed, err)
		}
		return out, nil
	}, nil
}
