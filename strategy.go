package filterset

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Strategy decides how a filter's predicates are folded into a query:
// directly, or after one or more joins. Strategies never de-duplicate
// joins — resolving two fields that share a join strategy applies the join
// twice, and callers that need a single join must arrange it themselves.
type Strategy interface {
	// ApplyJoin adds this strategy's joins to the query. No-op for
	// BaseStrategy.
	ApplyJoin(db *gorm.DB) *gorm.DB

	// Filter applies the joins and then the predicates.
	Filter(db *gorm.DB, conds ...clause.Expression) *gorm.DB
}

// BaseStrategy applies predicates directly to the query with no joins.
// It is the default strategy of every filter.
type BaseStrategy struct{}

func (BaseStrategy) ApplyJoin(db *gorm.DB) *gorm.DB {
	return db
}

func (BaseStrategy) Filter(db *gorm.DB, conds ...clause.Expression) *gorm.DB {
	return applyWhere(db, conds...)
}

// JoinStrategy applies a single inner or outer join before the predicates.
// Construct with InnerJoin or OuterJoin.
//
// Without an on-clause, target must name an association declared on the
// query's model; gorm infers the on-clause from the relationship and aliases
// the joined table by the association name, so column references for such
// filters use the association name as the table. With an on-clause, target
// is a table name and the join is appended to the FROM clause verbatim.
// Explicit joins always render before inferred ones.
type JoinStrategy struct {
	joinType clause.JoinType
	target   string
	on       []clause.Expression
}

// InnerJoin returns a strategy that inner-joins target before filtering.
func InnerJoin(target string, on ...clause.Expression) *JoinStrategy {
	return &JoinStrategy{joinType: clause.InnerJoin, target: target, on: on}
}

// OuterJoin returns a strategy that left-outer-joins target before
// filtering.
func OuterJoin(target string, on ...clause.Expression) *JoinStrategy {
	return &JoinStrategy{joinType: clause.LeftJoin, target: target, on: on}
}

func (s *JoinStrategy) ApplyJoin(db *gorm.DB) *gorm.DB {
	if len(s.on) == 0 {
		if s.joinType == clause.InnerJoin {
			return db.InnerJoins(s.target)
		}
		return db.Joins(s.target)
	}
	return appendJoin(db, clause.Join{
		Type:  s.joinType,
		Table: clause.Table{Name: s.target},
		ON:    clause.Where{Exprs: s.on},
	})
}

func (s *JoinStrategy) Filter(db *gorm.DB, conds ...clause.Expression) *gorm.DB {
	return applyWhere(s.ApplyJoin(db), conds...)
}

// MultiJoinStrategy applies an ordered sequence of joins left to right
// before the predicates.
type MultiJoinStrategy struct {
	joins []*JoinStrategy
}

// MultiJoin builds a strategy chaining the given joins in order. At least
// one join is required; an empty list is a ConfigurationError.
func MultiJoin(joins ...*JoinStrategy) (*MultiJoinStrategy, error) {
	if len(joins) == 0 {
		return nil, configErrorf("multi join strategy requires at least one join")
	}
	return &MultiJoinStrategy{joins: joins}, nil
}

// MustMultiJoin is MultiJoin that panics on error, for use in package-level
// declarations.
func MustMultiJoin(joins ...*JoinStrategy) *MultiJoinStrategy {
	s, err := MultiJoin(joins...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *MultiJoinStrategy) ApplyJoin(db *gorm.DB) *gorm.DB {
	for _, join := range s.joins {
		db = join.ApplyJoin(db)
	}
	return db
}

func (s *MultiJoinStrategy) Filter(db *gorm.DB, conds ...clause.Expression) *gorm.DB {
	return applyWhere(s.ApplyJoin(db), conds...)
}

// appendJoin adds an explicit join to the query's FROM clause. Existing
// joins are copied and kept, so repeated applications accumulate rather
// than merge.
func appendJoin(db *gorm.DB, join clause.Join) *gorm.DB {
	from := clause.From{}
	if c, ok := db.Statement.Clauses["FROM"]; ok {
		if f, ok := c.Expression.(clause.From); ok {
			from.Tables = f.Tables
			from.Joins = append(make([]clause.Join, 0, len(f.Joins)+1), f.Joins...)
		}
	}
	from.Joins = append(from.Joins, join)
	return db.Clauses(from)
}

func applyWhere(db *gorm.DB, conds ...clause.Expression) *gorm.DB {
	for _, cond := range conds {
		db = db.Where(cond)
	}
	return db
}
