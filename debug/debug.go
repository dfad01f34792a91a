//go:build !nodebug

package debug

import (
	"fmt"
	"runtime"
	"strings"
)

// Enabled is true when assertions are compiled in, which is the case unless the 'nodebug' build tag is set.
const Enabled = true

const unreachableMessage = "This line should be unreachable"

// Assert reports a [Failure] if cond is false.
func Assert(cond bool) {
	if Unlikely(!cond) {
		fail("Assert", "", "")
	}
}

// AssertFunc reports a [Failure] if cond returns false.
// The function is called exactly once, and not at all in stripped builds.
func AssertFunc(cond func() bool) {
	if Unlikely(!cond()) {
		fail("AssertFunc", "", "")
	}
}

// AssertPrint writes msg to the diagnostic stream and reports a [Failure] if cond is false.
func AssertPrint(cond bool, msg any) {
	if Unlikely(!cond) {
		fail("AssertPrint", "", printMessage(msg))
	}
}

// AssertPrintFunc is like [AssertPrint], but msg is only called if cond returns false.
// Neither function is called in stripped builds.
func AssertPrintFunc(cond func() bool, msg func() any) {
	if Unlikely(!cond()) {
		var val any
		if msg != nil {
			val = msg()
		}
		fail("AssertPrintFunc", "", printMessage(val))
	}
}

// Unreachable always fails, and never returns.
// If the current [Reporter] returns, then Unreachable panics with [ErrUnreachable].
func Unreachable() {
	fail("Unreachable", "false", printMessage(unreachableMessage))
	panic(ErrUnreachable)
}

// Log writes v and a line break to the output stream.
func Log(v any) {
	out, _ := Output()
	_, _ = fmt.Fprintln(out, v)
}

// LogFunc is like [Log], but v is only called in instrumented builds.
func LogFunc(v func() any) {
	Log(v())
}

func printMessage(msg any) string {
	text := fmt.Sprint(msg)
	_, errOut := Output()
	_, _ = fmt.Fprintln(errOut, text)
	return text
}

// fail must be called directly from the exported check so that the check's caller is three frames up.
//
//go:noinline
func fail(api, expr, msg string) {
	failure := Failure{
		Expr:    expr,
		Message: msg,
		Func:    "unknown",
	}
	var pcs [1]uintptr
	found := runtime.Callers(3, pcs[:]) > 0
	if found {
		frame, _ := runtime.CallersFrames(pcs[:]).Next()
		failure.File = frame.File
		failure.Line = frame.Line
		if len(frame.Function) > 0 {
			failure.Func = trimImportPath(frame.Function)
		}
	}
	if len(failure.Expr) == 0 {
		failure.Expr = "<condition>"
		if found {
			if text, ok := conditionText(failure.File, failure.Line, api); ok {
				failure.Expr = text
			}
		}
	}
	GetReporter().Report(failure)
}

func trimImportPath(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
