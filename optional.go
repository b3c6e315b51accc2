package dub

import "reflect"

type presence uint8

const (
	presenceUnset presence = iota
	presenceNull
	presenceSet
)

// Optional tracks whether a field was left out, explicitly cleared, or set.
//
// The zero value is unset and is never written to the wire. Null produces an
// explicit JSON null, which the API treats as "clear this value".
type Optional[T any] struct {
	value T
	state presence
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, state: presenceSet}
}

// Null returns an Optional that encodes as an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{state: presenceNull}
}

// IsSet reports whether a non-null value is present.
func (o Optional[T]) IsSet() bool { return o.state == presenceSet }

// IsNull reports whether the value was explicitly cleared.
func (o Optional[T]) IsNull() bool { return o.state == presenceNull }

// IsPresent reports whether the field appears on the wire at all.
func (o Optional[T]) IsPresent() bool { return o.state != presenceUnset }

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == presenceSet
}

// Or returns the value when set, otherwise def.
func (o Optional[T]) Or(def T) T {
	if o.state == presenceSet {
		return o.value
	}
	return def
}

func (o Optional[T]) presence() presence { return o.state }

func (o Optional[T]) reflectValue() reflect.Value { return reflect.ValueOf(&o.value).Elem() }

func (Optional[T]) elemType() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (o *Optional[T]) assign(v reflect.Value) {
	o.value = v.Interface().(T)
	o.state = presenceSet
}

func (o *Optional[T]) assignNull() {
	var zero T
	o.value = zero
	o.state = presenceNull
}

// optionalField is satisfied by every Optional instantiation.
type optionalField interface {
	presence() presence
	reflectValue() reflect.Value
	elemType() reflect.Type
}

type optionalSetter interface {
	assign(v reflect.Value)
	assignNull()
}

var optionalFieldType = reflect.TypeOf((*optionalField)(nil)).Elem()

func isOptionalType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.Implements(optionalFieldType)
}

// String is shorthand for Some on string values.
func String(v string) Optional[string] { return Some(v) }

// Bool is shorthand for Some on bool values.
func Bool(v bool) Optional[bool] { return Some(v) }

// Int is shorthand for Some on int values.
func Int(v int) Optional[int] { return Some(v) }
