package segy

import "fmt"

// RangeError is returned for an out-of-bounds index: a textual header
// line outside 1..40 or a trace index outside 0..NumTraces()-1.
type RangeError struct {
	What  string
	Index int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [%d, %d]", e.What, e.Index, e.Min, e.Max)
}

// TruncatedFileError is returned when a file is shorter than the 3600
// byte header prologue, or when the trace region is not an integer
// number of trace records.
type TruncatedFileError struct {
	Path      string
	Size      int64
	Remainder int64
}

func (e *TruncatedFileError) Error() string {
	if e.Size < HeaderPrologueSize {
		return fmt.Sprintf("%s: truncated file: %d bytes is shorter than the %d byte header prologue",
			e.Path, e.Size, HeaderPrologueSize)
	}
	return fmt.Sprintf("%s: truncated file: %d trailing bytes after the last whole trace record",
		e.Path, e.Remainder)
}

// UnsupportedFormatError is returned when the binary header declares a
// sample format code outside the five recognized values.
type UnsupportedFormatError struct {
	Path string
	Code uint16
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported sample format code %d", e.Code)
	}
	return fmt.Sprintf("%s: unsupported sample format code %d", e.Path, e.Code)
}

// VariableGeometryError is returned when a trace header carries a
// nonzero sample-count override that disagrees with the file-level
// samples-per-trace. Fixed-stride indexing cannot address such a file.
type VariableGeometryError struct {
	Path     string
	Trace    int
	Declared int
	Got      int
}

func (e *VariableGeometryError) Error() string {
	return fmt.Sprintf("%s: trace %d overrides sample count to %d (file declares %d); variable trace geometry is not supported",
		e.Path, e.Trace, e.Got, e.Declared)
}

// GeometryError is returned by Writer.WriteTrace when a trace's sample
// count does not match the binary header's samples-per-trace.
type GeometryError struct {
	Declared int
	Got      int
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("trace has %d samples, binary header declares %d", e.Got, e.Declared)
}

// ValidationError is returned when a binary header fails its internal
// consistency checks at Reader open or Writer creation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid binary header: %s: %s", e.Field, e.Reason)
}
