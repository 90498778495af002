// Package filterset resolves declarative per-field filter descriptors into
// GORM queries.
//
// A service declares, once at startup, how each input field of a list or
// search endpoint translates into a predicate — and optionally joins —
// against a query:
//
//	var productFilters = filterset.NewSchema(
//		filterset.WhereFilter("ProductID", clause.Column{Table: "products", Name: "id"}),
//		filterset.SubstringFilter("Name", clause.Column{Table: "products", Name: "name"}),
//		filterset.WhereFilter("CategoryName", clause.Column{Table: "categories", Name: "name"},
//			filterset.InnerJoin("categories", clause.Eq{
//				Column: clause.Column{Table: "categories", Name: "id"},
//				Value:  clause.Column{Table: "products", Name: "category_id"},
//			}),
//		),
//	)
//
// Per request, a Source carries each field's realized value with explicit
// tri-state presence (absent, null, present), and Resolve folds every
// actionable field into the query in declaration order:
//
//	db, err := productFilters.Resolve(db.Model(&Product{}), src)
//
// The record subpackage binds JSON documents, protobuf structs, or plain
// structs of record.Opt fields into a Source.
package filterset
