/*
Package debug provides development-time assertions that are removed from release builds.

There are a few patterns that are supported:
  - Condition checks that report the failing expression, file, line, and function, then terminate the process.
  - Condition checks that also print a diagnostic value to STDERR before failing.
  - An unreachable marker for code paths that must never execute.
  - Line logging to STDOUT for quick, temporary tracing.

To strip all of these from a build, build with the 'nodebug' tag.
Every helper then compiles to an empty, inlinable function, and [Enabled] becomes false.

# Evaluation

Go evaluates call arguments before the call happens, so the condition passed to [Assert] or [AssertPrint] is evaluated in both build modes.
Conditions that are expensive or have side effects should use the Func variants ([AssertFunc], [AssertPrintFunc], [LogFunc]), or be guarded by [Enabled]:

	if debug.Enabled {
		debug.Assert(tree.Balanced())
	}

Since [Enabled] is a constant, the guarded block is eliminated by the compiler in stripped builds.

# Reporting

Failures are passed to the current [Reporter].
The default reporter writes a single line to STDERR and exits with code 2, which can be changed with the DIAG_EXIT_CODE environment variable.
Setting DIAG_TRACEBACK=1 also prints the failing goroutine's stack.
Tests can swap in a non-terminating reporter with [SetReporter], or use the debugtest package.
*/
package debug
