package record

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/theplant/filterset"
)

// FromProto realizes a Source from a protobuf Struct: missing keys are
// absent, NullValue is explicit null, everything else is present with its
// AsInterface form (numbers arrive as float64, per proto JSON semantics).
func FromProto(s *structpb.Struct) filterset.Values {
	if s == nil {
		return nil
	}
	fields := s.GetFields()
	values := make(filterset.Values, len(fields))
	for name, v := range fields {
		if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
			values[name] = filterset.Null()
			continue
		}
		values[name] = filterset.Present(v.AsInterface())
	}
	return values
}
