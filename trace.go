package segy

// Trace pairs one trace header with its decoded sample values. Samples
// are always float32 in memory: integer formats are promoted on read
// and rounded back on write, IBM floats are converted to IEEE.
type Trace struct {
	header  *TraceHeader
	samples []float32
}

// NewTrace builds a trace from a header and sample buffer. The trace
// takes ownership of both; a nil header gets a zeroed one.
func NewTrace(header *TraceHeader, samples []float32) *Trace {
	if header == nil {
		header = NewTraceHeader()
	}
	return &Trace{header: header, samples: samples}
}

// Header returns the trace header. The caller may mutate it before
// handing the trace to a Writer.
func (t *Trace) Header() *TraceHeader {
	return t.header
}

// Samples returns the decoded sample values. The slice is owned by the
// trace; callers should copy it if they need it past the trace's
// lifetime.
func (t *Trace) Samples() []float32 {
	return t.samples
}
