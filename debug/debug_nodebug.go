//go:build nodebug

package debug

// Enabled is true when assertions are compiled in, which is the case unless the 'nodebug' build tag is set.
const Enabled = false

func Assert(cond bool) {
	// No op
}

func AssertFunc(cond func() bool) {
	// No op
}

func AssertPrint(cond bool, msg any) {
	// No op
}

func AssertPrintFunc(cond func() bool, msg func() any) {
	// No op
}

// Unreachable has no equivalent to an optimizer hint, so reaching it in a stripped build just continues.
func Unreachable() {
	// No op
}

func Log(v any) {
	// No op
}

func LogFunc(v func() any) {
	// No op
}
