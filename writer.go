package segy

import (
	"fmt"
	"os"

	"github.com/seisio/segy/internal/encoding"
)

// Writer appends traces sequentially to a new SEG-Y file.
//
// Create writes the 3600-byte header prologue immediately; WriteTrace
// appends one fixed-size record per call. Geometry is strict: every
// trace must carry exactly the sample count the binary header declares,
// so the resulting file always has a fixed record stride and any Reader
// can index it in O(1).
//
// Trace order in the file is the call order of WriteTrace. A Writer
// must not be shared between goroutines.
//
// Always call Close when done; it flushes to stable storage before
// releasing the handle:
//
//	w, err := segy.Create("out.sgy", text, bin)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
type Writer struct {
	path string
	f    *os.File
	text *TextualHeader
	bin  *BinaryHeader

	order           ByteOrder
	format          SampleFormat
	samplesPerTrace int
	off             int64 // end of the last fully written record
	numTraces       int
	record          []byte // reusable encode buffer
	closed          bool
}

// Create creates a SEG-Y file and writes its header prologue.
//
// The binary header is validated first; Create fails without touching
// the filesystem if it is inconsistent. A nil textual header gets a
// blank (all spaces) one. On any error after file creation the partial
// file is removed, so a failed Create leaves no state behind.
//
// The on-disk byte order of the whole file is the binary header's
// declared order.
func Create(path string, text *TextualHeader, bin *BinaryHeader, opts ...WriterOption) (*Writer, error) {
	options := defaultWriterOptions()
	for _, opt := range opts {
		opt(options)
	}

	if bin == nil {
		return nil, &ValidationError{Field: "binary header", Reason: "must not be nil"}
	}
	if err := bin.Validate(); err != nil {
		return nil, err
	}
	if text == nil {
		text = NewTextualHeader()
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	prologue := make([]byte, HeaderPrologueSize)
	copy(prologue, text.raw())
	if options.ebcdicText {
		encoding.EncodeEBCDIC(prologue[:TextualHeaderSize])
	}
	copy(prologue[TextualHeaderSize:], bin.raw())

	if _, err := f.WriteAt(prologue, 0); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write file headers: %w", err)
	}

	format := bin.mustSampleFormat()
	spt := bin.SamplesPerTrace()

	return &Writer{
		path:            path,
		f:               f,
		text:            text,
		bin:             bin,
		order:           bin.Order(),
		format:          format,
		samplesPerTrace: spt,
		off:             HeaderPrologueSize,
		record:          make([]byte, TraceHeaderSize+spt*format.Size()),
	}, nil
}

// WriteTrace appends one trace.
//
// The trace's sample count must equal the binary header's
// samples-per-trace; a mismatch fails with GeometryError before any
// byte is written. The record is encoded in full and written with a
// single positioned write, and on a write failure the file is truncated
// back to the end of the last good record, so previously written traces
// stay intact either way.
//
// The trace header's sample-count field is forced to the declared
// count in the output; per-trace overrides are not representable in a
// fixed-stride file.
func (w *Writer) WriteTrace(t *Trace) error {
	if w.closed {
		return fmt.Errorf("write trace: %w", os.ErrClosed)
	}
	if len(t.Samples()) != w.samplesPerTrace {
		return &GeometryError{Declared: w.samplesPerTrace, Got: len(t.Samples())}
	}

	w.encodeTraceHeader(t.Header())
	if err := encoding.EncodeSamples(w.record[TraceHeaderSize:], t.Samples(), w.format, w.order); err != nil {
		return fmt.Errorf("encode trace samples: %w", err)
	}

	if _, err := w.f.WriteAt(w.record, w.off); err != nil {
		// Drop any partially written bytes so the file stays a whole
		// number of records.
		w.f.Truncate(w.off)
		return fmt.Errorf("write trace %d: %w", w.numTraces, err)
	}

	w.off += int64(len(w.record))
	w.numTraces++
	return nil
}

// encodeTraceHeader places the trace header bytes into the record
// buffer in the file's byte order. When the header was built with the
// same order its raw block is copied verbatim; otherwise the typed
// fields are re-encoded and unrecognized byte ranges are dropped.
func (w *Writer) encodeTraceHeader(h *TraceHeader) {
	if h.order == w.order {
		copy(w.record[:TraceHeaderSize], h.raw())
	} else {
		out := &TraceHeader{order: w.order}
		out.SetSequenceNumber(h.SequenceNumber())
		out.SetCoordinateScalar(h.CoordinateScalar())
		out.SetSourceX(h.SourceX())
		out.SetSourceY(h.SourceY())
		out.SetSampleInterval(h.SampleInterval())
		out.SetCDPX(h.CDPX())
		out.SetCDPY(h.CDPY())
		out.SetInline(h.Inline())
		out.SetCrossline(h.Crossline())
		copy(w.record[:TraceHeaderSize], out.raw())
	}
	// Strict geometry: the on-disk header always states the declared
	// sample count.
	w.order.PutUint16(w.record[trcSampleCount:], uint16(w.samplesPerTrace))
}

// NumTraces returns the number of traces written so far.
func (w *Writer) NumTraces() int {
	return w.numTraces
}

// Flush forces written data to stable storage.
func (w *Writer) Flush() error {
	if w.closed {
		return fmt.Errorf("flush: %w", os.ErrClosed)
	}
	if err := w.f.Sync(); err != nil {
		return fmt.Errorf("sync file: %w", err)
	}
	return nil
}

// Close flushes and releases the file handle. Close is idempotent;
// after the first call the Writer should not be used.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	syncErr := w.f.Sync()
	closeErr := w.f.Close()
	if syncErr != nil {
		return fmt.Errorf("sync file: %w", syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close file: %w", closeErr)
	}
	return nil
}
