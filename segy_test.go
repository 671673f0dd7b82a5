package segy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile writes a small SEG-Y file and returns its path.
func writeTestFile(t *testing.T, order ByteOrder, format SampleFormat, traces [][]float32) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sgy")

	text := NewTextualHeader()
	text.SetLine(1, "C 1 CLIENT: TEST SUITE")

	bin := NewBinaryHeader(order, format, len(traces[0]), 2000)
	bin.SetJobID(1)

	w, err := Create(path, text, bin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i, samples := range traces {
		hdr := NewTraceHeader()
		hdr.SetSequenceNumber(int32(i + 1))
		hdr.SetInline(100 + int32(i))
		hdr.SetCrossline(200 + int32(i))
		if err := w.WriteTrace(NewTrace(hdr, samples)); err != nil {
			t.Fatalf("WriteTrace(%d): %v", i, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func TestRoundTrip_IEEEFloat(t *testing.T) {
	traces := [][]float32{
		{1.5, -2.25, 3.125, 0},
		{10.5, -20.25, 30.0, -0.0625},
		{100, 200, -300, 400},
	}
	path := writeTestFile(t, BigEndian, SampleFormatIEEEFloat, traces)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if got := r.NumTraces(); got != 3 {
		t.Fatalf("NumTraces = %d, want 3", got)
	}

	trace, err := r.ReadTrace(1)
	if err != nil {
		t.Fatalf("ReadTrace(1): %v", err)
	}
	for i, want := range traces[1] {
		if got := trace.Samples()[i]; got != want {
			t.Errorf("trace 1 sample %d = %g, want %g exactly", i, got, want)
		}
	}
	if got := trace.Header().SequenceNumber(); got != 2 {
		t.Errorf("SequenceNumber = %d, want 2", got)
	}
	if got := trace.Header().Inline(); got != 101 {
		t.Errorf("Inline = %d, want 101", got)
	}
}

func TestRoundTrip_AllFormats(t *testing.T) {
	// Integer-valued samples fit every format exactly, including int8
	// and the base-16 IBM fraction.
	traces := [][]float32{
		{0, 1, -1, 100},
		{127, -128, 64, -32},
	}

	formats := []SampleFormat{
		SampleFormatIBMFloat,
		SampleFormatInt32,
		SampleFormatInt16,
		SampleFormatIEEEFloat,
		SampleFormatInt8,
	}
	orders := []ByteOrder{BigEndian, LittleEndian}

	for _, format := range formats {
		for _, order := range orders {
			t.Run(format.String()+"/"+order.String(), func(t *testing.T) {
				path := writeTestFile(t, order, format, traces)

				r, err := Open(path, WithByteOrder(order))
				if err != nil {
					t.Fatalf("Open: %v", err)
				}
				defer r.Close()

				for ti, want := range traces {
					trace, err := r.ReadTrace(ti)
					if err != nil {
						t.Fatalf("ReadTrace(%d): %v", ti, err)
					}
					for si := range want {
						if got := trace.Samples()[si]; got != want[si] {
							t.Errorf("trace %d sample %d = %g, want %g", ti, si, got, want[si])
						}
					}
				}
			})
		}
	}
}

func TestRoundTrip_IBMFractions(t *testing.T) {
	// Values exactly representable in both IBM and IEEE survive the
	// file round-trip bit for bit.
	traces := [][]float32{{-118.625, 0.5, 100.0, 0.15625}}
	path := writeTestFile(t, BigEndian, SampleFormatIBMFloat, traces)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	trace, err := r.ReadTrace(0)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	for i, want := range traces[0] {
		if got := trace.Samples()[i]; got != want {
			t.Errorf("sample %d = %g, want %g", i, got, want)
		}
	}
}

func TestOpen_SniffsLittleEndian(t *testing.T) {
	traces := [][]float32{{1, 2, 3, 4}}
	path := writeTestFile(t, LittleEndian, SampleFormatIEEEFloat, traces)

	// No explicit order: the big-endian reading of the binary header is
	// implausible, so Open should fall back to little-endian.
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if r.BinaryHeader().Order() != LittleEndian {
		t.Errorf("sniffed order = %v, want little-endian", r.BinaryHeader().Order())
	}
	trace, err := r.ReadTrace(0)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	if trace.Samples()[2] != 3 {
		t.Errorf("sample 2 = %g, want 3", trace.Samples()[2])
	}
}

func TestReader_HeaderAccess(t *testing.T) {
	path := writeTestFile(t, BigEndian, SampleFormatIEEEFloat, [][]float32{{1, 2, 3, 4}})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	line, err := r.TextualHeader().Line(1)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if line[:22] != "C 1 CLIENT: TEST SUITE" {
		t.Errorf("Line(1) = %q", line)
	}

	bin := r.BinaryHeader()
	if got := bin.SamplesPerTrace(); got != 4 {
		t.Errorf("SamplesPerTrace = %d, want 4", got)
	}
	if got := bin.JobID(); got != 1 {
		t.Errorf("JobID = %d, want 1", got)
	}
}

func TestReadTrace_OutOfRange(t *testing.T) {
	path := writeTestFile(t, BigEndian, SampleFormatIEEEFloat, [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	for _, index := range []int{-1, 2, 1000} {
		_, err := r.ReadTrace(index)
		if err == nil {
			t.Errorf("ReadTrace(%d): expected error, got nil", index)
			continue
		}
		var re *RangeError
		if !errors.As(err, &re) {
			t.Errorf("ReadTrace(%d): expected *RangeError, got %T: %v", index, err, err)
		}
	}
}

func TestOpen_TruncatedFile(t *testing.T) {
	path := writeTestFile(t, BigEndian, SampleFormatIEEEFloat, [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}})

	// Chop the file mid-trace.
	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Truncate(path, stat.Size()-10); err != nil {
		t.Fatal(err)
	}

	_, err = Open(path)
	if err == nil {
		t.Fatal("expected error for truncated file, got nil")
	}
	var tfe *TruncatedFileError
	if !errors.As(err, &tfe) {
		t.Fatalf("expected *TruncatedFileError, got %T: %v", err, err)
	}
	if tfe.Remainder == 0 {
		t.Error("error does not report trailing bytes")
	}
}

func TestOpen_ShorterThanHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.sgy")
	if err := os.WriteFile(path, make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	var tfe *TruncatedFileError
	if !errors.As(err, &tfe) {
		t.Fatalf("expected *TruncatedFileError, got %T: %v", err, err)
	}
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badformat.sgy")

	bin := NewBinaryHeader(BigEndian, SampleFormat(4), 4, 2000)
	raw := append(NewTextualHeader().Bytes(), bin.Bytes()...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected *UnsupportedFormatError, got %T: %v", err, err)
	}
	if ufe.Code != 4 {
		t.Errorf("error carries code %d, want 4", ufe.Code)
	}
	if ufe.Path != path {
		t.Errorf("error carries path %q, want %q", ufe.Path, path)
	}
}

func TestOpen_NonexistentFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.sgy"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

// patchTraceSampleCount rewrites the sample-count field of one on-disk
// trace header.
func patchTraceSampleCount(t *testing.T, path string, trace, recordSize, count int) {
	t.Helper()

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	field := []byte{byte(count >> 8), byte(count)}
	off := int64(HeaderPrologueSize + trace*recordSize + trcSampleCount)
	if _, err := f.WriteAt(field, off); err != nil {
		t.Fatal(err)
	}
}

func TestVariableGeometry(t *testing.T) {
	traces := [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
	recordSize := TraceHeaderSize + 4*4

	t.Run("lazy detection in ReadTrace", func(t *testing.T) {
		path := writeTestFile(t, BigEndian, SampleFormatIEEEFloat, traces)
		patchTraceSampleCount(t, path, 1, recordSize, 9)

		r, err := Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		defer r.Close()

		// Traces with the declared geometry still read fine.
		if _, err := r.ReadTrace(0); err != nil {
			t.Errorf("ReadTrace(0): %v", err)
		}

		_, err = r.ReadTrace(1)
		var vge *VariableGeometryError
		if !errors.As(err, &vge) {
			t.Fatalf("ReadTrace(1): expected *VariableGeometryError, got %T: %v", err, err)
		}
		if vge.Trace != 1 || vge.Got != 9 || vge.Declared != 4 {
			t.Errorf("error = %+v", vge)
		}
	})

	t.Run("eager detection with WithGeometryScan", func(t *testing.T) {
		path := writeTestFile(t, BigEndian, SampleFormatIEEEFloat, traces)
		patchTraceSampleCount(t, path, 2, recordSize, 9)

		_, err := Open(path, WithGeometryScan())
		var vge *VariableGeometryError
		if !errors.As(err, &vge) {
			t.Fatalf("expected *VariableGeometryError, got %T: %v", err, err)
		}
		if vge.Trace != 2 {
			t.Errorf("error reports trace %d, want 2", vge.Trace)
		}
	})

	t.Run("scan passes a uniform file", func(t *testing.T) {
		path := writeTestFile(t, BigEndian, SampleFormatIEEEFloat, traces)
		r, err := Open(path, WithGeometryScan())
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		r.Close()
	})
}

func TestWriteTrace_GeometryMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sgy")
	bin := NewBinaryHeader(BigEndian, SampleFormatIEEEFloat, 4, 2000)

	w, err := Create(path, nil, bin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer w.Close()

	if err := w.WriteTrace(NewTrace(nil, []float32{1, 2, 3, 4})); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}

	err = w.WriteTrace(NewTrace(nil, []float32{1, 2, 3}))
	var ge *GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("expected *GeometryError, got %T: %v", err, err)
	}
	if ge.Declared != 4 || ge.Got != 3 {
		t.Errorf("error = %+v", ge)
	}

	// The failed write must not touch the file: still exactly one
	// whole record after the headers.
	if got := w.NumTraces(); got != 1 {
		t.Errorf("NumTraces = %d, want 1", got)
	}
	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	want := int64(HeaderPrologueSize + TraceHeaderSize + 4*4)
	if stat.Size() != want {
		t.Errorf("file size = %d, want %d", stat.Size(), want)
	}
}

func TestCreate_InvalidBinaryHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.sgy")

	bin := NewBinaryHeader(BigEndian, SampleFormatIEEEFloat, 0, 2000)
	if _, err := Create(path, nil, bin); err == nil {
		t.Fatal("expected error for zero samples per trace, got nil")
	}

	// A failed Create leaves nothing behind.
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no file, stat err = %v", err)
	}

	if _, err := Create(path, nil, nil); err == nil {
		t.Fatal("expected error for nil binary header, got nil")
	}
}

func TestWriter_ClosedUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.sgy")
	bin := NewBinaryHeader(BigEndian, SampleFormatIEEEFloat, 2, 2000)

	w, err := Create(path, nil, bin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := w.WriteTrace(NewTrace(nil, []float32{1, 2})); err == nil {
		t.Error("WriteTrace after Close: expected error, got nil")
	}
	if err := w.Flush(); err == nil {
		t.Error("Flush after Close: expected error, got nil")
	}
}

func TestEBCDICTextualHeader_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ebcdic.sgy")

	text := NewTextualHeader()
	text.SetLine(1, "C 1 CLIENT: EBCDIC ROUND TRIP")
	bin := NewBinaryHeader(BigEndian, SampleFormatIEEEFloat, 2, 2000)

	w, err := Create(path, text, bin, WithEBCDICTextualHeader())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.WriteTrace(NewTrace(nil, []float32{1, 2})); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Without conversion the raw EBCDIC bytes come through.
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !r.TextualHeader().IsEBCDIC() {
		t.Error("on-disk header not detected as EBCDIC")
	}
	r.Close()

	// With conversion the text reads back as ASCII.
	r, err = Open(path, WithEBCDICConversion())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	line, err := r.TextualHeader().Line(1)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if line[:29] != "C 1 CLIENT: EBCDIC ROUND TRIP" {
		t.Errorf("Line(1) = %q", line)
	}
}

func TestReadTraces_Concurrent(t *testing.T) {
	traces := make([][]float32, 50)
	for i := range traces {
		traces[i] = []float32{float32(i), float32(i) + 0.5, float32(-i), 0}
	}
	path := writeTestFile(t, BigEndian, SampleFormatIEEEFloat, traces)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	indices := []int{49, 0, 25, 10, 10, 3}
	got, err := r.ReadTraces(context.Background(), indices...)
	if err != nil {
		t.Fatalf("ReadTraces: %v", err)
	}
	if len(got) != len(indices) {
		t.Fatalf("got %d traces, want %d", len(got), len(indices))
	}
	for i, index := range indices {
		if got[i].Samples()[0] != float32(index) {
			t.Errorf("result %d: sample 0 = %g, want %g", i, got[i].Samples()[0], float32(index))
		}
	}

	// A bad index fails the batch.
	if _, err := r.ReadTraces(context.Background(), 0, 999); err == nil {
		t.Error("expected error for out-of-range index in batch")
	}

	// Empty input is a no-op.
	if got, err := r.ReadTraces(context.Background()); err != nil || got != nil {
		t.Errorf("empty batch: got %v, %v", got, err)
	}
}

func TestWriter_ForcesDeclaredSampleCount(t *testing.T) {
	// A caller-supplied header with a stray override must not leak into
	// the file; the writer pins the field to the declared geometry.
	path := filepath.Join(t.TempDir(), "pinned.sgy")
	bin := NewBinaryHeader(BigEndian, SampleFormatIEEEFloat, 4, 2000)

	w, err := Create(path, nil, bin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hdr := NewTraceHeader()
	hdr.SetSampleCount(999)
	if err := w.WriteTrace(NewTrace(hdr, []float32{1, 2, 3, 4})); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	trace, err := r.ReadTrace(0)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	if got := trace.Header().SampleCount(); got != 4 {
		t.Errorf("on-disk sample count = %d, want 4", got)
	}
}

func BenchmarkReadTrace(b *testing.B) {
	dir := b.TempDir()
	path := filepath.Join(dir, "bench.sgy")

	samples := make([]float32, 1000)
	for i := range samples {
		samples[i] = float32(i) * 0.25
	}
	bin := NewBinaryHeader(BigEndian, SampleFormatIBMFloat, len(samples), 2000)
	w, err := Create(path, nil, bin)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if err := w.WriteTrace(NewTrace(nil, samples)); err != nil {
			b.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		b.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.ReadTrace(i % 100); err != nil {
			b.Fatal(err)
		}
	}
}
