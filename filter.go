package filterset

import (
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter binds one column reference and a lookup to a strategy. It turns a
// single realized value into a predicate and delegates applying it to the
// strategy. Filters are pure with respect to the query: the same query and
// value always produce an equivalent transformed query, but reapplying adds
// another predicate.
type Filter struct {
	column   clause.Column
	lookup   Lookup
	strategy Strategy
}

// NewFilter builds a filter. A nil lookup defaults to Eq, a nil strategy to
// BaseStrategy.
func NewFilter(column clause.Column, lookup Lookup, strategy Strategy) *Filter {
	if lookup == nil {
		lookup = Eq
	}
	if strategy == nil {
		strategy = BaseStrategy{}
	}
	return &Filter{column: column, lookup: lookup, strategy: strategy}
}

func (f *Filter) Filter(db *gorm.DB, value any) *gorm.DB {
	return f.strategy.Filter(db, f.lookup(f.column, value))
}

// MultiFieldFilter is the multi-column variant of Filter: it applies the
// same lookup to every column and ORs the resulting predicates, in
// declaration order.
type MultiFieldFilter struct {
	columns  []clause.Column
	lookup   Lookup
	strategy Strategy
}

// NewMultiFieldFilter builds a multi-field filter. A nil lookup defaults to
// Eq, a nil strategy to BaseStrategy.
func NewMultiFieldFilter(columns []clause.Column, lookup Lookup, strategy Strategy) *MultiFieldFilter {
	if lookup == nil {
		lookup = Eq
	}
	if strategy == nil {
		strategy = BaseStrategy{}
	}
	return &MultiFieldFilter{columns: columns, lookup: lookup, strategy: strategy}
}

func (f *MultiFieldFilter) Filter(db *gorm.DB, value any) *gorm.DB {
	exprs := lo.Map(f.columns, func(column clause.Column, _ int) clause.Expression {
		return f.lookup(column, value)
	})
	return f.strategy.Filter(db, clause.Or(exprs...))
}
