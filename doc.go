// Package segy reads and writes SEG-Y seismic data files.
//
// SEG-Y is a fixed-layout binary container: a 3200-byte textual header,
// a 400-byte binary header, then trace records at a fixed stride. The
// package parses and validates both file headers, normalizes byte
// order, decodes every rev-1 sample format (including legacy IBM
// floats), and gives indexed random access to traces without loading
// the file into memory.
//
// # Quick Start
//
// Reading traces:
//
//	r, err := segy.Open("line42.sgy")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	fmt.Printf("%d traces\n", r.NumTraces())
//	trace, err := r.ReadTrace(0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(trace.Header().Inline(), trace.Samples()[:10])
//
// Writing a file:
//
//	bin := segy.NewBinaryHeader(segy.BigEndian, segy.SampleFormatIEEEFloat, 500, 2000)
//	w, err := segy.Create("out.sgy", nil, bin)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer w.Close()
//	err = w.WriteTrace(segy.NewTrace(nil, samples))
//
// # Sample Formats
//
// The five rev-1 format codes are supported: IBM float (1), int32 (2),
// int16 (3), IEEE float (5), and int8 (8). Samples are always float32
// in memory; integer formats are promoted on read and rounded with
// clamping on write. IBM float conversion clamps out-of-range
// magnitudes to the IEEE extremes instead of raising, matching legacy
// tooling.
//
// # Byte Order
//
// The standard mandates big-endian, but little-endian files exist in
// the wild. Open sniffs the order from the binary header and
// WithByteOrder overrides the guess; Create takes the order from the
// binary header it is given.
//
// # Trace Geometry
//
// The reader derives one fixed record stride from the binary header and
// indexes traces in O(1). Files whose traces override the sample count
// per trace are rejected - lazily in ReadTrace, or up front with
// WithGeometryScan - never silently misread. The writer enforces the
// declared sample count on every trace it writes.
//
// # Concurrency
//
// Reader performs stateless positioned reads, so ReadTrace may be
// called from multiple goroutines, and ReadTraces does so itself.
// Writer is single-goroutine: trace order in the file is WriteTrace
// call order.
//
// # Error Handling
//
// Failures surface as typed, recoverable errors: TruncatedFileError,
// UnsupportedFormatError, VariableGeometryError, RangeError,
// GeometryError, ValidationError. Underlying I/O errors are wrapped and
// reachable with errors.As.
package segy
