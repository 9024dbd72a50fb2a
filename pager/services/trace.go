package services

import (
	"fmt"
	"io"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/random"
)

const (
	TraceReferences = 1
	TraceRandom     = 11
)

// Trace writes the per-reference debugging output. Processes are printed 1-based.
// The first write error is kept and later writes are skipped.
type Trace struct {
	out   io.Writer
	level int
	err   error
}

func NewTrace(out io.Writer, level int) *Trace {
	return &Trace{out: out, level: level}
}

func (t *Trace) enabled(level int) bool {
	return t != nil && t.out != nil && t.level >= level && t.err == nil
}

func (t *Trace) printf(format string, args ...any) {
	_, t.err = fmt.Fprintf(t.out, format, args...)
}

// Hit logs a reference resolved without a fault.
func (t *Trace) Hit(process, word, page, time, frame int) {
	if !t.enabled(TraceReferences) {
		return
	}
	t.printf("%d references word %d (page %d) at time %d: Hit in frame %d.\n", process+1, word, page, time, frame)
}

// Fault logs a reference that needed a frame.
func (t *Trace) Fault(process, word, page, time int, fault Fault) {
	if !t.enabled(TraceReferences) {
		return
	}
	if fault.Evicted == nil {
		t.printf("%d references word %d (page %d) at time %d: Fault, using free frame %d.\n",
			process+1, word, page, time, fault.Frame)
		return
	}
	t.printf("%d references word %d (page %d) at time %d: Fault, evicting page %d of %d from frame %d.\n",
		process+1, word, page, time, fault.Evicted.Page, fault.Evicted.Owner+1, fault.Frame)
}

// RandomNumber logs each value drawn while serving process.
func (t *Trace) RandomNumber(process, value int) {
	if !t.enabled(TraceRandom) {
		return
	}
	t.printf("%d uses random number: %d\n", process+1, value)
}

func (t *Trace) Err() error {
	if t == nil {
		return nil
	}
	return t.err
}

// tracedSource reports its draws to the trace on behalf of the process being served.
type tracedSource struct {
	source  random.Source
	trace   *Trace
	process int
}

func (s *tracedSource) Next() (int, error) {
	value, err := s.source.Next()
	if err != nil {
		return 0, err
	}
	s.trace.RandomNumber(s.process, value)
	return value, nil
}
