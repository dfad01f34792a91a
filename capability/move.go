package capability

// Move returns the value at src and resets src to the zero value.
// This is the move operation that declarators refer to.
func Move[T any](src *T) T {
	val := *src
	var zero T
	*src = zero
	return val
}

// MoveInto moves the value at src into dst, and resets src to the zero value.
// Moving a value into itself leaves it unchanged.
func MoveInto[T any](dst, src *T) {
	if dst == src {
		return
	}
	*dst = *src
	var zero T
	*src = zero
}
