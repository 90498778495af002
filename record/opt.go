package record

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/theplant/filterset"
)

type state uint8

const (
	stateAbsent state = iota
	stateNull
	statePresent
)

// Opt is a tri-state field for filter input structs: absent (the zero
// value), explicitly null, or present. JSON binding keeps the three states
// apart — an omitted key leaves the field absent, a null token makes it
// null — which is what lets the resolution engine distinguish "not
// supplied" from "filter by null".
type Opt[T any] struct {
	value T
	state state
}

// Of returns a present Opt carrying v.
func Of[T any](v T) Opt[T] {
	return Opt[T]{value: v, state: statePresent}
}

// Null returns an explicitly-null Opt.
func Null[T any]() Opt[T] {
	return Opt[T]{state: stateNull}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.state == statePresent
}

// MustGet returns the value and panics when it is not present.
func (o Opt[T]) MustGet() T {
	if o.state != statePresent {
		panic("record: value is not present")
	}
	return o.value
}

// Or returns the value when present, fallback otherwise.
func (o Opt[T]) Or(fallback T) T {
	if o.state == statePresent {
		return o.value
	}
	return fallback
}

func (o Opt[T]) IsAbsent() bool {
	return o.state == stateAbsent
}

func (o Opt[T]) IsNull() bool {
	return o.state == stateNull
}

func (o Opt[T]) IsPresent() bool {
	return o.state == statePresent
}

// FilterValue implements filterset.Valuer.
func (o Opt[T]) FilterValue() filterset.Value {
	switch o.state {
	case statePresent:
		return filterset.Present(o.value)
	case stateNull:
		return filterset.Null()
	default:
		return filterset.Absent()
	}
}

var jsonNull = []byte("null")

// UnmarshalJSON is called for supplied keys only, so absent stays the zero
// state.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Null[T]()
		return nil
	}
	var v T
	if err := jsonAPI.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "unmarshal optional value")
	}
	*o = Of(v)
	return nil
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.state != statePresent {
		return jsonNull, nil
	}
	data, err := jsonAPI.Marshal(o.value)
	return data, errors.Wrap(err, "marshal optional value")
}
