// Package record binds inbound filter input — JSON documents, protobuf
// structs, or populated Go structs of Opt fields — into the realized
// per-field values the filterset engine resolves. It owns default
// application and presence tracking; the engine only ever sees the Source
// contract.
package record

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sunfmin/reflectutils"
	"github.com/tidwall/sjson"

	"github.com/theplant/filterset"
)

// TagKey is the struct tag controlling document key names. Without a tag,
// keys are the struct field names, matching the schema's declared names.
const TagKey = "filterset"

// use struct field name as key unless tagged
var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	TagKey:                 TagKey,
}.Froze()

// FromJSON decodes a JSON document into a filter input struct of Opt
// fields. Defaults declared on the schema (Field.WithDefault) are injected
// for keys absent from the document before decoding; pass a nil schema to
// skip that. Empty input decodes as an empty document.
func FromJSON(schema *filterset.Schema, data []byte, target any) error {
	if len(data) == 0 {
		data = []byte("{}")
	}
	data, err := applyDefaults(schema, data)
	if err != nil {
		return err
	}
	if err := jsonAPI.Unmarshal(data, target); err != nil {
		return errors.Wrap(err, "unmarshal filter input")
	}
	return nil
}

func applyDefaults(schema *filterset.Schema, data []byte) ([]byte, error) {
	if schema == nil {
		return data, nil
	}
	defaults := schema.Defaults()
	if len(defaults) == 0 {
		return data, nil
	}

	var keys map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(data, &keys); err != nil {
		return nil, errors.Wrap(err, "unmarshal filter input")
	}

	for name, def := range defaults {
		if _, supplied := keys[name]; supplied {
			continue
		}
		var err error
		data, err = sjson.SetBytes(data, name, def)
		if err != nil {
			return nil, errors.Wrapf(err, "apply default for field %q", name)
		}
	}
	return data, nil
}

// Fields realizes a Source from a populated input struct: one entry per
// schema field whose struct field implements filterset.Valuer. Schema
// fields the struct does not declare stay absent, and struct fields outside
// the schema are never read.
func Fields(schema *filterset.Schema, input any) (filterset.Values, error) {
	if input == nil {
		return nil, errors.New("input is nil")
	}
	values := make(filterset.Values)
	for _, name := range schema.FieldNames() {
		fv, err := reflectutils.Get(input, name)
		if err != nil {
			// Not declared on the struct; plain absent field.
			continue
		}
		if v, ok := fv.(filterset.Valuer); ok {
			values[name] = v.FilterValue()
		}
	}
	return values, nil
}
