package segy

// Option configures behavior when opening a file for reading.
//
// Options use the functional options pattern:
//
//	r, err := segy.Open("line42.sgy",
//	    segy.WithByteOrder(segy.LittleEndian),
//	    segy.WithGeometryScan(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for Open.
type openOptions struct {
	order        ByteOrder // on-disk byte order
	orderSet     bool      // explicit order given, skip sniffing
	geometryScan bool      // pre-scan all trace headers for overrides
	convertText  bool      // auto-detect EBCDIC text and convert to ASCII
}

// defaultOpenOptions returns the default configuration.
func defaultOpenOptions() *openOptions {
	return &openOptions{
		order: BigEndian,
	}
}

// WithByteOrder forces the on-disk byte order instead of letting Open
// sniff it from the binary header.
//
// By default Open reads the binary header big-endian per the rev-1
// standard and falls back to little-endian when the big-endian reading
// is implausible (unknown format code or zero sample count).
func WithByteOrder(o ByteOrder) Option {
	return func(opts *openOptions) {
		opts.order = o
		opts.orderSet = true
	}
}

// WithGeometryScan validates trace geometry up front.
//
// Open reads every trace header and fails with VariableGeometryError if
// any trace overrides the file-level sample count. Without the scan,
// Open is O(1) and the same check happens lazily per trace in ReadTrace.
func WithGeometryScan() Option {
	return func(opts *openOptions) {
		opts.geometryScan = true
	}
}

// WithEBCDICConversion converts an EBCDIC textual header to ASCII.
//
// Classic SEG-Y files carry the 3200-byte textual header in EBCDIC
// (cp037). With this option, Open detects EBCDIC content and converts
// it so TextualHeader.Line returns readable ASCII. The bytes on disk
// are not modified.
func WithEBCDICConversion() Option {
	return func(opts *openOptions) {
		opts.convertText = true
	}
}

// WriterOption configures behavior when creating a file for writing.
type WriterOption func(*writerOptions)

// writerOptions holds configuration for Create.
type writerOptions struct {
	ebcdicText bool // encode the textual header as cp037 on disk
}

// defaultWriterOptions returns the default configuration.
func defaultWriterOptions() *writerOptions {
	return &writerOptions{}
}

// WithEBCDICTextualHeader writes the textual header EBCDIC encoded.
//
// The TextualHeader supplied to Create stays ASCII in memory; only the
// on-disk bytes are converted. Use this for interchange with tools that
// expect classic EBCDIC card images.
func WithEBCDICTextualHeader() WriterOption {
	return func(opts *writerOptions) {
		opts.ebcdicText = true
	}
}
