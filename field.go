package filterset

import (
	"gorm.io/gorm/clause"
)

// ValueMapper transforms a realized field value before the predicate is
// built, e.g. to embed it in a subquery. Errors are returned to the resolve
// caller unwrapped.
type ValueMapper func(value any) (any, error)

type fieldKind uint8

const (
	kindNone fieldKind = iota
	kindSingle
	kindMulti
)

// Field is the declaration-time descriptor of one input field: which filter
// variant to instantiate, against which column(s), with which strategy, and
// an optional value mapper. Fields are immutable once declared — the With*
// methods return copies — and a schema built from them may be shared by any
// number of concurrent resolves.
type Field struct {
	name     string
	kind     fieldKind
	lookup   Lookup
	columns  []clause.Column
	strategy Strategy
	mapper   ValueMapper
	def      any
	hasDef   bool
}

// Name reports the declared input field name.
func (f Field) Name() string {
	return f.name
}

// WithMapper attaches a value mapper to an already built descriptor.
func (f Field) WithMapper(mapper ValueMapper) Field {
	f.mapper = mapper
	return f
}

// WithDefault records a default value for the field. The resolution engine
// never interprets it; it is passthrough configuration for the input-binding
// layer (see the record package), which applies it when the field is absent.
func (f Field) WithDefault(value any) Field {
	f.def = value
	f.hasDef = true
	return f
}

func singleField(name string, lookup Lookup, column clause.Column, strategy []Strategy) Field {
	return Field{
		name:     name,
		kind:     kindSingle,
		lookup:   lookup,
		columns:  []clause.Column{column},
		strategy: pickStrategy(strategy),
	}
}

func multiField(name string, lookup Lookup, columns []clause.Column, strategy []Strategy) Field {
	return Field{
		name:     name,
		kind:     kindMulti,
		lookup:   lookup,
		columns:  columns,
		strategy: pickStrategy(strategy),
	}
}

func pickStrategy(strategy []Strategy) Strategy {
	if len(strategy) == 0 {
		return nil
	}
	return strategy[0]
}

// WhereFilter declares an equality filter: column = value.
func WhereFilter(name string, column clause.Column, strategy ...Strategy) Field {
	return singleField(name, Eq, column, strategy)
}

// IsFilter declares a null-safe identity filter. Combined with resolving
// under IncludeNulls, it is the way to express "column IS NULL" filters.
func IsFilter(name string, column clause.Column, strategy ...Strategy) Field {
	return singleField(name, Is, column, strategy)
}

// InFilter declares a set-membership filter: column IN (...).
func InFilter(name string, column clause.Column, strategy ...Strategy) Field {
	return singleField(name, In, column, strategy)
}

// LikeFilter declares a case-sensitive pattern filter; the value is the
// pattern.
func LikeFilter(name string, column clause.Column, strategy ...Strategy) Field {
	return singleField(name, Like, column, strategy)
}

// ILikeFilter declares a case-insensitive pattern filter; the value is the
// pattern.
func ILikeFilter(name string, column clause.Column, strategy ...Strategy) Field {
	return singleField(name, ILike, column, strategy)
}

// LteFilter declares a column <= value filter.
func LteFilter(name string, column clause.Column, strategy ...Strategy) Field {
	return singleField(name, Lte, column, strategy)
}

// SubstringFilter declares a case-insensitive containment filter: the value
// is wrapped in wildcards once, column ILIKE '%value%'.
func SubstringFilter(name string, column clause.Column, strategy ...Strategy) Field {
	return singleField(name, Substring, column, strategy)
}

// LookupFilter declares a single-column filter with a custom lookup.
func LookupFilter(name string, lookup Lookup, column clause.Column, strategy ...Strategy) Field {
	return singleField(name, lookup, column, strategy)
}

// MultiFieldSubstringFilter declares a containment filter ORed across
// several columns: one value, column_i ILIKE '%value%' for each column.
func MultiFieldSubstringFilter(name string, columns []clause.Column, strategy ...Strategy) Field {
	return multiField(name, Substring, columns, strategy)
}

// MultiFieldLookupFilter declares a filter that applies a custom lookup to
// several columns and ORs the predicates.
func MultiFieldLookupFilter(name string, lookup Lookup, columns []clause.Column, strategy ...Strategy) Field {
	return multiField(name, lookup, columns, strategy)
}
