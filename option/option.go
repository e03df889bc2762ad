package option

// Option holds either a value or nothing. The zero Option is None.
type Option[T any] struct {
	some *T
}

func (o Option[T]) Get() T {
	if o.some == nil {
		panic("Option was None")
	}

	return *o.some
}

// Value is the comma-ok form of Get.
func (o Option[T]) Value() (T, bool) {
	if o.some == nil {
		var zero T
		return zero, false
	}

	return *o.some, true
}

func (o Option[T]) IsSome() bool {
	return o.some != nil
}

func (o Option[T]) IsNone() bool {
	return o.some == nil
}

func (o Option[T]) OrElse(fallback T) T {
	if o.some == nil {
		return fallback
	}

	return *o.some
}

func Some[T any](value T) Option[T] {
	return Option[T]{some: &value}
}

func None[T any]() Option[T] {
	return Option[T]{}
}
