// Command segy-dump prints the headers and trace summary of a SEG-Y file.
//
// Useful for a quick look at what a survey file actually contains before
// feeding it to anything heavier.
//
// Usage:
//
//	segy-dump [flags] <file.sgy>
//
// Flags:
//
//	-text         print the 40-line textual header
//	-traces N     print the headers of the first N traces
//	-samples N    print the first N samples of each printed trace
//	-scan         verify every trace matches the declared geometry
//	-le           force little-endian interpretation
//	-debug        verbose diagnostics
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/seisio/segy"
)

func main() {
	var (
		showText   = flag.Bool("text", false, "print the textual header")
		numTraces  = flag.Int("traces", 0, "print the headers of the first N traces")
		numSamples = flag.Int("samples", 0, "print the first N samples of each printed trace")
		scan       = flag.Bool("scan", false, "verify every trace matches the declared geometry")
		forceLE    = flag.Bool("le", false, "force little-endian interpretation")
		debug      = flag.Bool("debug", false, "verbose diagnostics")
	)
	flag.Parse()

	log := newLogger(*debug)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: segy-dump [flags] <file.sgy>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	var opts []segy.Option
	if *forceLE {
		opts = append(opts, segy.WithByteOrder(segy.LittleEndian))
	}
	if *scan {
		opts = append(opts, segy.WithGeometryScan())
	}
	opts = append(opts, segy.WithEBCDICConversion())

	start := time.Now()
	r, err := segy.Open(path, opts...)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("open failed")
	}
	defer r.Close()
	log.Debug().Dur("elapsed", time.Since(start)).Msg("file opened")

	dumpBinaryHeader(r)

	if *showText {
		fmt.Println()
		dumpTextualHeader(r.TextualHeader(), log)
	}

	if *numTraces > 0 {
		n := *numTraces
		if n > r.NumTraces() {
			n = r.NumTraces()
		}
		for i := 0; i < n; i++ {
			trace, err := r.ReadTrace(i)
			if err != nil {
				log.Fatal().Err(err).Int("trace", i).Msg("read failed")
			}
			fmt.Println()
			dumpTrace(i, trace, *numSamples)
		}
	}
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

func dumpBinaryHeader(r *segy.Reader) {
	bin := r.BinaryHeader()

	fmt.Printf("File:              %s\n", r.Path())
	fmt.Printf("Byte order:        %s\n", bin.Order())
	fmt.Printf("Traces:            %d\n", r.NumTraces())
	fmt.Printf("Job ID:            %d\n", bin.JobID())
	fmt.Printf("Line number:       %d\n", bin.LineNumber())
	fmt.Printf("Samples per trace: %d\n", bin.SamplesPerTrace())
	fmt.Printf("Sample interval:   %d us\n", bin.SampleInterval())
	if format, err := bin.SampleFormat(); err == nil {
		fmt.Printf("Sample format:     %s\n", format)
	}
	fmt.Printf("Revision:          %d.%d\n", bin.Revision()>>8, bin.Revision()&0xFF)
	fmt.Printf("Fixed-length:      %v\n", bin.FixedLengthTraces())
}

func dumpTextualHeader(text *segy.TextualHeader, log zerolog.Logger) {
	for i := 1; i <= segy.TextualHeaderLines; i++ {
		line, err := text.Line(i)
		if err != nil {
			log.Fatal().Err(err).Msg("textual header read failed")
		}
		fmt.Println(line)
	}
}

func dumpTrace(index int, trace *segy.Trace, numSamples int) {
	h := trace.Header()
	fmt.Printf("Trace %d: seq=%d inline=%d crossline=%d", index,
		h.SequenceNumber(), h.Inline(), h.Crossline())
	if x, y := h.CDPX(), h.CDPY(); x != 0 || y != 0 {
		fmt.Printf(" cdp=(%d,%d)", x, y)
	}
	fmt.Println()

	samples := trace.Samples()
	if numSamples > len(samples) {
		numSamples = len(samples)
	}
	if numSamples > 0 {
		fmt.Printf("  samples: %v\n", samples[:numSamples])
	}

	min, max := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	fmt.Printf("  range: [%g, %g] over %d samples\n", min, max, len(samples))
}
