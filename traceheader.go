package segy

// Field offsets within the 240-byte trace header block, rev-1 layout.
const (
	trcSequenceNumber   = 0   // 4 bytes
	trcCoordinateScalar = 70  // 2 bytes
	trcSourceX          = 72  // 4 bytes
	trcSourceY          = 76  // 4 bytes
	trcSampleCount      = 114 // 2 bytes, overrides the file default when nonzero
	trcSampleInterval   = 116 // 2 bytes, microseconds
	trcCDPX             = 180 // 4 bytes
	trcCDPY             = 184 // 4 bytes
	trcInline           = 188 // 4 bytes
	trcCrossline        = 192 // 4 bytes
)

// TraceHeader is the fixed 240-byte header preceding each trace's
// sample data. Like BinaryHeader, fields are views over the owned
// buffer decoded with the declared byte order.
type TraceHeader struct {
	buf   [TraceHeaderSize]byte
	order ByteOrder
}

// NewTraceHeader returns a zeroed big-endian trace header.
func NewTraceHeader() *TraceHeader {
	return &TraceHeader{order: BigEndian}
}

// TraceHeaderFromBytes builds a trace header from a raw 240-byte block,
// copying it. Field access uses the given byte order.
func TraceHeaderFromBytes(b []byte, order ByteOrder) (*TraceHeader, error) {
	if len(b) != TraceHeaderSize {
		return nil, &RangeError{What: "trace header length", Index: len(b), Min: TraceHeaderSize, Max: TraceHeaderSize}
	}
	h := &TraceHeader{order: order}
	copy(h.buf[:], b)
	return h, nil
}

// SequenceNumber returns the trace sequence number within the line.
func (h *TraceHeader) SequenceNumber() int32 {
	return h.order.Int32(h.buf[trcSequenceNumber:])
}

// SetSequenceNumber sets the trace sequence number within the line.
func (h *TraceHeader) SetSequenceNumber(v int32) {
	h.order.PutInt32(h.buf[trcSequenceNumber:], v)
}

// CoordinateScalar returns the scalar applied to coordinate fields.
// Positive values multiply, negative values divide, zero means one.
func (h *TraceHeader) CoordinateScalar() int16 {
	return h.order.Int16(h.buf[trcCoordinateScalar:])
}

// SetCoordinateScalar sets the coordinate scalar.
func (h *TraceHeader) SetCoordinateScalar(v int16) {
	h.order.PutInt16(h.buf[trcCoordinateScalar:], v)
}

// SourceX returns the source X coordinate, unscaled.
func (h *TraceHeader) SourceX() int32 {
	return h.order.Int32(h.buf[trcSourceX:])
}

// SetSourceX sets the source X coordinate.
func (h *TraceHeader) SetSourceX(v int32) {
	h.order.PutInt32(h.buf[trcSourceX:], v)
}

// SourceY returns the source Y coordinate, unscaled.
func (h *TraceHeader) SourceY() int32 {
	return h.order.Int32(h.buf[trcSourceY:])
}

// SetSourceY sets the source Y coordinate.
func (h *TraceHeader) SetSourceY(v int32) {
	h.order.PutInt32(h.buf[trcSourceY:], v)
}

// SampleCount returns the per-trace sample count field. Zero means the
// trace uses the file-level samples-per-trace.
func (h *TraceHeader) SampleCount() int {
	return int(h.order.Uint16(h.buf[trcSampleCount:]))
}

// SetSampleCount sets the per-trace sample count field.
func (h *TraceHeader) SetSampleCount(n int) {
	h.order.PutUint16(h.buf[trcSampleCount:], uint16(n))
}

// SampleInterval returns the per-trace sample interval in microseconds.
func (h *TraceHeader) SampleInterval() int {
	return int(h.order.Uint16(h.buf[trcSampleInterval:]))
}

// SetSampleInterval sets the per-trace sample interval in microseconds.
func (h *TraceHeader) SetSampleInterval(micros int) {
	h.order.PutUint16(h.buf[trcSampleInterval:], uint16(micros))
}

// CDPX returns the ensemble (CDP) X coordinate, unscaled.
func (h *TraceHeader) CDPX() int32 {
	return h.order.Int32(h.buf[trcCDPX:])
}

// SetCDPX sets the ensemble X coordinate.
func (h *TraceHeader) SetCDPX(v int32) {
	h.order.PutInt32(h.buf[trcCDPX:], v)
}

// CDPY returns the ensemble (CDP) Y coordinate, unscaled.
func (h *TraceHeader) CDPY() int32 {
	return h.order.Int32(h.buf[trcCDPY:])
}

// SetCDPY sets the ensemble Y coordinate.
func (h *TraceHeader) SetCDPY(v int32) {
	h.order.PutInt32(h.buf[trcCDPY:], v)
}

// Inline returns the inline number of the trace's grid position.
func (h *TraceHeader) Inline() int32 {
	return h.order.Int32(h.buf[trcInline:])
}

// SetInline sets the inline number.
func (h *TraceHeader) SetInline(v int32) {
	h.order.PutInt32(h.buf[trcInline:], v)
}

// Crossline returns the crossline number of the trace's grid position.
func (h *TraceHeader) Crossline() int32 {
	return h.order.Int32(h.buf[trcCrossline:])
}

// SetCrossline sets the crossline number.
func (h *TraceHeader) SetCrossline(v int32) {
	h.order.PutInt32(h.buf[trcCrossline:], v)
}

// EffectiveSampleCount returns the per-trace override when nonzero,
// else the file-level default.
func (h *TraceHeader) EffectiveSampleCount(fileDefault int) int {
	if n := h.SampleCount(); n != 0 {
		return n
	}
	return fileDefault
}

// Bytes returns a copy of the raw 240-byte block.
func (h *TraceHeader) Bytes() []byte {
	b := make([]byte, TraceHeaderSize)
	copy(b, h.buf[:])
	return b
}

// raw returns the backing buffer for Reader/Writer use.
func (h *TraceHeader) raw() []byte {
	return h.buf[:]
}
