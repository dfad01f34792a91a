package debug

// Likely marks a condition that is expected to be true.
// Go has no branch prediction intrinsic, so the value is returned unchanged in both build modes.
func Likely(cond bool) bool {
	return cond
}

// Unlikely marks a condition that is expected to be false.
// Like [Likely], it has no effect on the value.
func Unlikely(cond bool) bool {
	return cond
}
