// Package debugtest captures failures and output from the debug package in tests.
package debugtest

import (
	"bytes"
	"github.com/saylorsolutions/diag/debug"
	"io"
	"sync"
	"testing"
)

var _ debug.Reporter = (*Recorder)(nil)

// Recorder is a non-terminating [debug.Reporter] that keeps every reported [debug.Failure], along with anything written to the debug output streams.
type Recorder struct {
	mux      sync.Mutex
	failures []debug.Failure
	stdout   lockedBuffer
	stderr   lockedBuffer
}

// Capture installs a new [Recorder] as the debug reporter and output streams.
// The previous reporter and streams are restored when the test finishes.
//
// Since the reporter is process-wide, tests using Capture should not run in parallel with other tests that trigger failures.
func Capture(t testing.TB) *Recorder {
	t.Helper()
	rec := new(Recorder)
	prev := debug.GetReporter()
	prevOut, prevErr := debug.Output()
	debug.SetReporter(rec)
	debug.SetOutput(&rec.stdout, &rec.stderr)
	t.Cleanup(func() {
		debug.SetReporter(prev)
		debug.SetOutput(prevOut, prevErr)
	})
	return rec
}

// Report satisfies [debug.Reporter].
func (r *Recorder) Report(failure debug.Failure) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.failures = append(r.failures, failure)
}

// Failures returns a copy of all failures reported so far.
func (r *Recorder) Failures() []debug.Failure {
	r.mux.Lock()
	defer r.mux.Unlock()
	return append([]debug.Failure(nil), r.failures...)
}

// Last returns the most recent failure, and false if nothing was reported.
func (r *Recorder) Last() (debug.Failure, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if len(r.failures) == 0 {
		return debug.Failure{}, false
	}
	return r.failures[len(r.failures)-1], true
}

// Stdout returns everything logged so far.
func (r *Recorder) Stdout() string {
	return r.stdout.String()
}

// Stderr returns every diagnostic message written so far.
func (r *Recorder) Stderr() string {
	return r.stderr.String()
}

// Reset discards recorded failures and output.
func (r *Recorder) Reset() {
	r.mux.Lock()
	r.failures = nil
	r.mux.Unlock()
	r.stdout.Reset()
	r.stderr.Reset()
}

var _ io.Writer = (*lockedBuffer)(nil)

type lockedBuffer struct {
	mux sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.buf.String()
}

func (b *lockedBuffer) Reset() {
	b.mux.Lock()
	defer b.mux.Unlock()
	b.buf.Reset()
}
