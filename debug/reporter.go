package debug

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/diag/internal/env"
	"io"
	"log/slog"
	"os"
	rdebug "runtime/debug"
	"sync"
)

// ErrUnreachable is the panic value used by [Unreachable] if the current [Reporter] returns.
var ErrUnreachable = errors.New("reached code that should be unreachable")

// Failure describes a condition check that evaluated to false.
type Failure struct {
	Expr    string // Expr is the source text of the condition.
	File    string // File is the path of the source file that contains the check.
	Line    int    // Line is the line of the check within File.
	Func    string // Func is the package qualified name of the function that contains the check.
	Message string // Message is the diagnostic value given to AssertPrint, if any.
}

func (f Failure) String() string {
	return fmt.Sprintf("assertion '%s' failed at '%s#%d' in %s", f.Expr, f.File, f.Line, f.Func)
}

// Reporter handles a failed condition check.
// The default reporter terminates the process, and callers of the check assume that it does.
type Reporter interface {
	Report(failure Failure)
}

// ReporterFunc adapts a function to the [Reporter] interface.
type ReporterFunc func(failure Failure)

func (fn ReporterFunc) Report(failure Failure) {
	fn(failure)
}

var (
	mux      sync.RWMutex
	reporter Reporter
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
)

// SetReporter replaces the [Reporter] that receives failures.
// Passing nil restores the default reporter.
func SetReporter(r Reporter) {
	mux.Lock()
	defer mux.Unlock()
	reporter = r
}

// GetReporter returns the current [Reporter].
func GetReporter() Reporter {
	mux.RLock()
	defer mux.RUnlock()
	if reporter == nil {
		return DefaultReporter()
	}
	return reporter
}

// SetOutput replaces the streams used for logging (out) and diagnostic messages (errOut).
// A nil writer restores [os.Stdout] or [os.Stderr] respectively.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	mux.Lock()
	defer mux.Unlock()
	stdout, stderr = out, errOut
}

// Output returns the current streams set with [SetOutput].
func Output() (out, errOut io.Writer) {
	mux.RLock()
	defer mux.RUnlock()
	return stdout, stderr
}

// Config is the configuration of the [DefaultReporter], read from the environment.
type Config struct {
	ExitCode  int  // ExitCode is read from DIAG_EXIT_CODE, and defaults to 2.
	Traceback bool // Traceback is read from DIAG_TRACEBACK, and defaults to false.
}

func readConfig() Config {
	return Config{
		ExitCode:  env.Int(env.Key("exit_code"), 2),
		Traceback: env.Bool(env.Key("traceback"), false),
	}
}

var loadConfig = sync.OnceValue(readConfig)

// ReporterConfig returns the [Config] used by the [DefaultReporter].
// The environment is only read the first time this is called, or a failure is reported.
func ReporterConfig() Config {
	return loadConfig()
}

// exit is swapped in tests.
var exit = os.Exit

type exitReporter struct{}

func (exitReporter) Report(failure Failure) {
	cfg := loadConfig()
	_, errOut := Output()
	_, _ = fmt.Fprintln(errOut, failure.String())
	if cfg.Traceback {
		_, _ = errOut.Write(rdebug.Stack())
	}
	exit(cfg.ExitCode)
}

// DefaultReporter returns the reporter that is used when none has been set.
// It writes the failure to the diagnostic stream and exits the process.
//
// See [Config] for the environment variables that change its behavior.
func DefaultReporter() Reporter {
	return exitReporter{}
}

// Tee creates a [Reporter] that passes each failure to all reporters, in order.
// Since a terminating reporter never returns, it should be given last.
func Tee(reporters ...Reporter) Reporter {
	rs := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			rs = append(rs, r)
		}
	}
	return ReporterFunc(func(failure Failure) {
		for _, r := range rs {
			r.Report(failure)
		}
	})
}

// LogReporter creates a [Reporter] that logs each failure as an error record with the given logger, or [slog.Default] if logger is nil.
// It does not terminate the process, so it's usually combined with [DefaultReporter] using [Tee].
func LogReporter(logger *slog.Logger) Reporter {
	return ReporterFunc(func(failure Failure) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		attrs := []any{
			slog.String("expr", failure.Expr),
			slog.String("file", failure.File),
			slog.Int("line", failure.Line),
			slog.String("func", failure.Func),
		}
		if len(failure.Message) > 0 {
			attrs = append(attrs, slog.String("message", failure.Message))
		}
		l.Error("assertion failed", attrs...)
	})
}
