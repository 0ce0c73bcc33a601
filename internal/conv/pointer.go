package conv

// Pointer returns a pointer to a copy of value.
func Pointer[T any](value T) *T {
	return &value
}

// Dereference returns *ptr or the zero value for a nil pointer.
func Dereference[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
