package filterset

type valueState uint8

const (
	stateAbsent valueState = iota
	stateNull
	statePresent
)

// Value is the realized state of one declared field: never supplied,
// explicitly null, or present with a concrete value. The zero Value is
// absent.
type Value struct {
	value any
	state valueState
}

// Present returns a Value carrying v.
func Present(v any) Value {
	return Value{value: v, state: statePresent}
}

// Null returns a Value that was explicitly set to null.
func Null() Value {
	return Value{state: stateNull}
}

// Absent returns a Value for a field that was never supplied.
func Absent() Value {
	return Value{}
}

func (v Value) IsAbsent() bool {
	return v.state == stateAbsent
}

func (v Value) IsNull() bool {
	return v.state == stateNull
}

func (v Value) IsPresent() bool {
	return v.state == statePresent
}

// Interface returns the carried value, or nil when the Value is null or
// absent.
func (v Value) Interface() any {
	return v.value
}

// Source supplies the realized value of each declared field for one resolve
// call. Implementations are typically produced by the record package after
// validation and coercion; the engine trusts the values as type-correct.
type Source interface {
	Field(name string) Value
}

// Values is a plain map Source. Missing keys read as absent.
type Values map[string]Value

func (vs Values) Field(name string) Value {
	return vs[name]
}

// Valuer yields the tri-state realized value of a single input field.
// Field types of record structs implement it so binders can realize a
// Source from a populated struct.
type Valuer interface {
	FilterValue() Value
}
