package registry

// Optional is an explicit Present/Absent sum for version-gated record
// fields. Absent is distinct from a zero value, and an Absent sequence is
// distinct from a present-but-empty one; the difference decides whether any
// bytes exist on the wire.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None is the absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsSome reports presence.
func (o Optional[T]) IsSome() bool {
	return o.present
}

// OrZero returns the value, or the zero value when absent.
func (o Optional[T]) OrZero() T {
	return o.value
}
