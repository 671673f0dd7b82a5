package segy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/seisio/segy/internal/encoding"
)

// Reader provides indexed random access to the traces of a SEG-Y file.
//
// Opening a file parses the textual and binary headers once and derives
// the fixed trace record stride; after that every trace is one
// positioned read away. Trace data is never loaded wholesale, so files
// with millions of traces read in constant memory.
//
// All reads go through io.ReaderAt, which has pread semantics: there is
// no shared cursor, and ReadTrace is safe for concurrent use from
// multiple goroutines.
//
// Always call Close when done to release the file handle:
//
//	r, err := segy.Open("line42.sgy")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
type Reader struct {
	path string
	r    io.ReaderAt
	size int64

	text *TextualHeader
	bin  *BinaryHeader

	order           ByteOrder
	format          SampleFormat
	samplesPerTrace int
	recordSize      int64
	numTraces       int
}

// Open opens a SEG-Y file for reading.
//
// The first 3600 bytes are parsed and validated immediately: the
// 3200-byte textual header, then the 400-byte binary header. A file
// shorter than that, or whose trace region is not a whole number of
// trace records, fails with TruncatedFileError. An unrecognized sample
// format code fails with UnsupportedFormatError. A failed Open leaves
// no open handle behind.
//
// Options customize parsing:
//
//	r, err := segy.Open("line42.sgy",
//	    segy.WithEBCDICConversion(),
//	    segy.WithGeometryScan(),
//	)
func Open(path string, opts ...Option) (*Reader, error) {
	options := defaultOpenOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	r, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// openReader builds a Reader from an io.ReaderAt (internal, for testing).
func openReader(ra io.ReaderAt, size int64, path string, options *openOptions) (*Reader, error) {
	if size < HeaderPrologueSize {
		return nil, &TruncatedFileError{Path: path, Size: size}
	}

	prologue := make([]byte, HeaderPrologueSize)
	if err := readFull(ra, prologue, 0); err != nil {
		return nil, fmt.Errorf("%s: read file headers: %w", path, err)
	}

	rawBin := prologue[TextualHeaderSize:]
	order := options.order
	if !options.orderSet {
		order = sniffOrder(rawBin)
	}

	bin, err := BinaryHeaderFromBytes(rawBin, order)
	if err != nil {
		return nil, err
	}
	if err := bin.Validate(); err != nil {
		var ufe *UnsupportedFormatError
		if errors.As(err, &ufe) {
			ufe.Path = path
		}
		return nil, err
	}

	text, err := TextualHeaderFromBytes(prologue[:TextualHeaderSize])
	if err != nil {
		return nil, err
	}
	if options.convertText && text.IsEBCDIC() {
		text.ToASCII()
	}

	format := bin.mustSampleFormat()
	spt := bin.SamplesPerTrace()
	recordSize := int64(TraceHeaderSize + spt*format.Size())

	traceBytes := size - HeaderPrologueSize
	if rem := traceBytes % recordSize; rem != 0 {
		return nil, &TruncatedFileError{Path: path, Size: size, Remainder: rem}
	}

	r := &Reader{
		path:            path,
		r:               ra,
		size:            size,
		text:            text,
		bin:             bin,
		order:           order,
		format:          format,
		samplesPerTrace: spt,
		recordSize:      recordSize,
		numTraces:       int(traceBytes / recordSize),
	}

	if options.geometryScan {
		if err := r.scanGeometry(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// sniffOrder guesses the on-disk byte order from a raw binary header.
// Big-endian is assumed first per the standard; when that reading gives
// an unknown format code or a zero sample count but the little-endian
// reading is plausible, the file is treated as little-endian.
func sniffOrder(rawBin []byte) ByteOrder {
	plausible := func(o ByteOrder) bool {
		f := SampleFormat(o.Uint16(rawBin[binSampleFormat:]))
		return f.Valid() && o.Uint16(rawBin[binSamplesPerTrace:]) > 0
	}
	if !plausible(BigEndian) && plausible(LittleEndian) {
		return LittleEndian
	}
	return BigEndian
}

// scanGeometry reads the sample-count field of every trace header and
// rejects the file if any trace disagrees with the file default.
func (r *Reader) scanGeometry() error {
	field := make([]byte, 2)
	for i := 0; i < r.numTraces; i++ {
		off := HeaderPrologueSize + int64(i)*r.recordSize + trcSampleCount
		if err := readFull(r.r, field, off); err != nil {
			return fmt.Errorf("%s: scan trace %d header: %w", r.path, i, err)
		}
		if n := int(r.order.Uint16(field)); n != 0 && n != r.samplesPerTrace {
			return &VariableGeometryError{
				Path:     r.path,
				Trace:    i,
				Declared: r.samplesPerTrace,
				Got:      n,
			}
		}
	}
	return nil
}

// NumTraces returns the number of trace records in the file.
func (r *Reader) NumTraces() int {
	return r.numTraces
}

// TextualHeader returns the parsed textual header. The caller must not
// modify it.
func (r *Reader) TextualHeader() *TextualHeader {
	return r.text
}

// BinaryHeader returns the parsed binary header. The caller must not
// modify it.
func (r *Reader) BinaryHeader() *BinaryHeader {
	return r.bin
}

// Path returns the path the Reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// ReadTrace reads trace index (0-based) and decodes its samples.
//
// An index outside 0..NumTraces()-1 fails with RangeError. A trace
// header that overrides the file-level sample count fails with
// VariableGeometryError; the fixed stride cannot address the traces
// behind it. Each call performs a fresh positioned read; there is no
// caching layer, so callers re-reading the same trace should hold on to
// the returned Trace instead.
func (r *Reader) ReadTrace(index int) (*Trace, error) {
	if index < 0 || index >= r.numTraces {
		return nil, &RangeError{What: "trace", Index: index, Min: 0, Max: r.numTraces - 1}
	}

	record := make([]byte, r.recordSize)
	off := HeaderPrologueSize + int64(index)*r.recordSize
	if err := readFull(r.r, record, off); err != nil {
		return nil, fmt.Errorf("%s: read trace %d: %w", r.path, index, err)
	}

	header, err := TraceHeaderFromBytes(record[:TraceHeaderSize], r.order)
	if err != nil {
		return nil, err
	}
	if n := header.SampleCount(); n != 0 && n != r.samplesPerTrace {
		return nil, &VariableGeometryError{
			Path:     r.path,
			Trace:    index,
			Declared: r.samplesPerTrace,
			Got:      n,
		}
	}

	samples := make([]float32, r.samplesPerTrace)
	if err := encoding.DecodeSamples(samples, record[TraceHeaderSize:], r.format, r.order); err != nil {
		return nil, fmt.Errorf("%s: decode trace %d samples: %w", r.path, index, err)
	}
	return NewTrace(header, samples), nil
}

// ReadTraces reads multiple traces concurrently.
//
// Traces are read in parallel using up to runtime.NumCPU() goroutines;
// results are returned in the same order as the requested indices. If
// any read fails, the first error is returned and the partial results
// are discarded.
//
//	traces, err := r.ReadTraces(ctx, 0, 10, 20)
func (r *Reader) ReadTraces(ctx context.Context, indices ...int) ([]*Trace, error) {
	if len(indices) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Trace, len(indices))

	for i, index := range indices {
		i, index := i, index
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			trace, err := r.ReadTrace(index)
			if err != nil {
				return err
			}
			results[i] = trace
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readFull reads exactly len(b) bytes at off. ReadAt may legitimately
// return io.EOF alongside a complete read at the end of the file.
func readFull(ra io.ReaderAt, b []byte, off int64) error {
	n, err := ra.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return err
	}
	if n < len(b) {
		return fmt.Errorf("short read: got %d bytes, expected %d", n, len(b))
	}
	return nil
}

// Close releases the underlying file handle.
//
// After Close is called, the Reader should not be used.
func (r *Reader) Close() error {
	if closer, ok := r.r.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
