package filterset

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Schema is the ordered set of field descriptors of one declared filter
// shape. It is built once at startup, is read-only afterwards, and may be
// shared by unboundedly many concurrent Resolve calls.
type Schema struct {
	fields []Field
}

// NewSchema declares a schema. Fields resolve in the given order.
// Declaration mistakes (a field without a variant or without columns)
// surface as ConfigurationError from the resolve call that hits them.
func NewSchema(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	return lo.Map(s.fields, func(f Field, _ int) string {
		return f.name
	})
}

// Defaults returns the declared default values by field name. The engine
// never reads them; input binders do.
func (s *Schema) Defaults() map[string]any {
	defaults := make(map[string]any)
	for _, f := range s.fields {
		if f.hasDef {
			defaults[f.name] = f.def
		}
	}
	return defaults
}

type resolveOptions struct {
	includeNulls bool
}

type ResolveOption func(*resolveOptions)

// IncludeNulls makes explicitly-null fields resolve instead of being
// skipped. Their filters receive a nil value, which the Is lookup renders
// as "column IS NULL".
func IncludeNulls() ResolveOption {
	return func(o *resolveOptions) {
		o.includeNulls = true
	}
}

// Resolve walks the declared fields in order and folds each actionable
// field's predicate (and joins) into db, returning the accumulated query.
// Absent fields contribute nothing; explicitly-null fields contribute
// nothing unless IncludeNulls is given. The source is only borrowed for the
// duration of the call and is never mutated.
func (s *Schema) Resolve(db *gorm.DB, src Source, opts ...ResolveOption) (*gorm.DB, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}
	if src == nil {
		return nil, errors.New("source is nil")
	}

	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	for _, f := range s.fields {
		v := src.Field(f.name)
		if v.IsAbsent() {
			continue
		}
		if v.IsNull() && !o.includeNulls {
			continue
		}
		fdb, err := resolveField(db, f, v)
		if err != nil {
			return nil, err
		}
		db = fdb
	}
	return db, nil
}

// Scope adapts Resolve for use with db.Scopes. Resolution errors surface
// through db.AddError.
func (s *Schema) Scope(src Source, opts ...ResolveOption) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if db == nil {
			return nil
		}
		fdb, err := s.Resolve(db, src, opts...)
		if err != nil {
			db.AddError(err)
			return db
		}
		return fdb
	}
}

// resolveField validates the descriptor, applies the mapper, and folds one
// field into the query. All checks run before the query is touched, so a
// ConfigurationError leaves the query from prior fields as it was.
func resolveField(db *gorm.DB, f Field, v Value) (*gorm.DB, error) {
	if f.kind == kindNone {
		return nil, configErrorf("field %q has no filter variant", f.name)
	}
	if len(f.columns) == 0 {
		return nil, configErrorf("field %q has no target columns", f.name)
	}

	value := v.Interface()
	if f.mapper != nil {
		mapped, err := f.mapper(value)
		if err != nil {
			// Caller-supplied failure, propagated unchanged.
			return nil, err
		}
		value = mapped
	}

	switch f.kind {
	case kindSingle:
		return NewFilter(f.columns[0], f.lookup, f.strategy).Filter(db, value), nil
	case kindMulti:
		return NewMultiFieldFilter(f.columns, f.lookup, f.strategy).Filter(db, value), nil
	default:
		return nil, configErrorf("field %q has an unknown filter variant", f.name)
	}
}
