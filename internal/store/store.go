// Package store implements the per-collection data access functions.
// Every list defaults to created_at descending; writes are full
// overwrites with last-write-wins semantics, no optimistic token.
package store

import sq "github.com/Masterminds/squirrel"

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
