package segy

// Field offsets within the 400-byte binary header block. These match
// the rev-1 standard numbering minus the 3200-byte textual header.
const (
	binJobID             = 8   // 4 bytes
	binLineNumber        = 12  // 4 bytes
	binSampleInterval    = 16  // 2 bytes, microseconds
	binSamplesPerTrace   = 20  // 2 bytes
	binSampleFormat      = 24  // 2 bytes
	binEnsembleFold      = 26  // 2 bytes
	binMeasurementSystem = 54  // 2 bytes: 1 = meters, 2 = feet
	binRevision          = 300 // 2 bytes: 0x0100 for rev 1
	binFixedLengthFlag   = 302 // 2 bytes: 1 = all traces same length
)

// BinaryHeader is the 400-byte binary file header that follows the
// textual header. Fields are computed views over the owned buffer; every
// multi-byte access goes through the declared byte order, so the same
// header value can be read from or written to either endianness.
type BinaryHeader struct {
	buf   [BinaryHeaderSize]byte
	order ByteOrder
}

// NewBinaryHeader returns a binary header with the given on-disk byte
// order, declaring the sample format, samples per trace, and sample
// interval in microseconds. The revision field is set to rev 1 and the
// fixed-length-trace flag is set, matching what Writer enforces.
func NewBinaryHeader(order ByteOrder, format SampleFormat, samplesPerTrace, sampleIntervalMicros int) *BinaryHeader {
	h := &BinaryHeader{order: order}
	h.SetSampleFormat(format)
	h.SetSamplesPerTrace(samplesPerTrace)
	h.SetSampleInterval(sampleIntervalMicros)
	h.order.PutUint16(h.buf[binRevision:], 0x0100)
	h.order.PutUint16(h.buf[binFixedLengthFlag:], 1)
	return h
}

// BinaryHeaderFromBytes builds a binary header from a raw 400-byte
// block, copying it. Field access uses the given byte order.
func BinaryHeaderFromBytes(b []byte, order ByteOrder) (*BinaryHeader, error) {
	if len(b) != BinaryHeaderSize {
		return nil, &RangeError{What: "binary header length", Index: len(b), Min: BinaryHeaderSize, Max: BinaryHeaderSize}
	}
	h := &BinaryHeader{order: order}
	copy(h.buf[:], b)
	return h, nil
}

// Order returns the byte order used for field access.
func (h *BinaryHeader) Order() ByteOrder {
	return h.order
}

// JobID returns the job identification number.
func (h *BinaryHeader) JobID() int32 {
	return h.order.Int32(h.buf[binJobID:])
}

// SetJobID sets the job identification number.
func (h *BinaryHeader) SetJobID(v int32) {
	h.order.PutInt32(h.buf[binJobID:], v)
}

// LineNumber returns the survey line number.
func (h *BinaryHeader) LineNumber() int32 {
	return h.order.Int32(h.buf[binLineNumber:])
}

// SetLineNumber sets the survey line number.
func (h *BinaryHeader) SetLineNumber(v int32) {
	h.order.PutInt32(h.buf[binLineNumber:], v)
}

// SampleInterval returns the sample interval in microseconds.
func (h *BinaryHeader) SampleInterval() int {
	return int(h.order.Uint16(h.buf[binSampleInterval:]))
}

// SetSampleInterval sets the sample interval in microseconds.
func (h *BinaryHeader) SetSampleInterval(micros int) {
	h.order.PutUint16(h.buf[binSampleInterval:], uint16(micros))
}

// SamplesPerTrace returns the number of samples per data trace.
func (h *BinaryHeader) SamplesPerTrace() int {
	return int(h.order.Uint16(h.buf[binSamplesPerTrace:]))
}

// SetSamplesPerTrace sets the number of samples per data trace.
func (h *BinaryHeader) SetSamplesPerTrace(n int) {
	h.order.PutUint16(h.buf[binSamplesPerTrace:], uint16(n))
}

// SampleFormat returns the declared sample format. An unrecognized code
// returns UnsupportedFormatError.
func (h *BinaryHeader) SampleFormat() (SampleFormat, error) {
	code := h.order.Uint16(h.buf[binSampleFormat:])
	f := SampleFormat(code)
	if !f.Valid() {
		return 0, &UnsupportedFormatError{Code: code}
	}
	return f, nil
}

// SetSampleFormat sets the sample format code.
func (h *BinaryHeader) SetSampleFormat(f SampleFormat) {
	h.order.PutUint16(h.buf[binSampleFormat:], uint16(f))
}

// EnsembleFold returns the expected number of traces per ensemble.
func (h *BinaryHeader) EnsembleFold() int {
	return int(h.order.Uint16(h.buf[binEnsembleFold:]))
}

// SetEnsembleFold sets the expected number of traces per ensemble.
func (h *BinaryHeader) SetEnsembleFold(n int) {
	h.order.PutUint16(h.buf[binEnsembleFold:], uint16(n))
}

// MeasurementSystem returns the distance unit code: 1 for meters, 2 for
// feet, 0 if unset.
func (h *BinaryHeader) MeasurementSystem() int {
	return int(h.order.Uint16(h.buf[binMeasurementSystem:]))
}

// SetMeasurementSystem sets the distance unit code.
func (h *BinaryHeader) SetMeasurementSystem(v int) {
	h.order.PutUint16(h.buf[binMeasurementSystem:], uint16(v))
}

// Revision returns the raw format revision field (0x0100 for rev 1).
func (h *BinaryHeader) Revision() uint16 {
	return h.order.Uint16(h.buf[binRevision:])
}

// FixedLengthTraces reports whether the header flags every trace as
// having the declared length.
func (h *BinaryHeader) FixedLengthTraces() bool {
	return h.order.Uint16(h.buf[binFixedLengthFlag:]) == 1
}

// Validate checks internal consistency: a recognized sample format, a
// positive samples-per-trace, and a positive sample interval.
func (h *BinaryHeader) Validate() error {
	if _, err := h.SampleFormat(); err != nil {
		return err
	}
	if h.SamplesPerTrace() <= 0 {
		return &ValidationError{Field: "samples per trace", Reason: "must be positive"}
	}
	if h.SampleInterval() <= 0 {
		return &ValidationError{Field: "sample interval", Reason: "must be positive"}
	}
	return nil
}

// Bytes returns a copy of the raw 400-byte block.
func (h *BinaryHeader) Bytes() []byte {
	b := make([]byte, BinaryHeaderSize)
	copy(b, h.buf[:])
	return b
}

// raw returns the backing buffer for Reader/Writer use.
func (h *BinaryHeader) raw() []byte {
	return h.buf[:]
}

// mustSampleFormat returns the format after a successful Validate.
func (h *BinaryHeader) mustSampleFormat() SampleFormat {
	return SampleFormat(h.order.Uint16(h.buf[binSampleFormat:]))
}
