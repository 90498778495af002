package filterset

import (
	"fmt"
	"reflect"

	"gorm.io/gorm/clause"
)

// Lookup turns a column reference and a realized value into a predicate.
// Lookups are pure and stateless; the built-in ones below may be shared
// freely and custom ones can be passed to LookupFilter.
type Lookup func(column clause.Column, value any) clause.Expression

// Eq is the default lookup: column = value.
func Eq(column clause.Column, value any) clause.Expression {
	return clause.Eq{Column: column, Value: value}
}

// Is is the null-safe identity lookup. A nil value renders as
// "column IS NULL" instead of "column = NULL".
func Is(column clause.Column, value any) clause.Expression {
	return clause.Eq{Column: column, Value: value}
}

// In matches the column against a set of values, preserving input order and
// duplicates. A non-slice value is treated as a single-element set.
func In(column clause.Column, value any) clause.Expression {
	return clause.IN{Column: column, Values: expandValues(value)}
}

// Like is a case-sensitive pattern match. The value is used as the pattern
// verbatim.
func Like(column clause.Column, value any) clause.Expression {
	return clause.Like{Column: column, Value: value}
}

// ILike is a case-insensitive pattern match (Postgres ILIKE).
func ILike(column clause.Column, value any) clause.Expression {
	return clause.Expr{SQL: "? ILIKE ?", Vars: []any{column, value}}
}

// Lte matches column <= value.
func Lte(column clause.Column, value any) clause.Expression {
	return clause.Lte{Column: column, Value: value}
}

// Substring wraps the value in wildcards once and matches
// case-insensitively: column ILIKE '%value%'.
func Substring(column clause.Column, value any) clause.Expression {
	return ILike(column, fmt.Sprintf("%%%v%%", value))
}

// expandValues flattens a slice or array value of any element type into the
// []any that clause.IN expects. Descriptors carry no element type, so this
// has to go through reflection.
func expandValues(value any) []any {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return []any{value}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
