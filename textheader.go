package segy

import (
	"github.com/seisio/segy/internal/encoding"
)

// Textual header geometry: 40 card-image lines of 80 characters.
const (
	// TextualHeaderLines is the number of lines in the textual header.
	TextualHeaderLines = 40
	// TextualLineLength is the character length of one line.
	TextualLineLength = 80
)

// TextualHeader is the 3200-byte textual file header at the start of a
// SEG-Y file: 40 lines of 80 characters, conventionally card images
// beginning with "C 1" through "C40".
//
// Lines are 1-indexed, matching the card numbering in the standard.
type TextualHeader struct {
	buf [TextualHeaderSize]byte
}

// NewTextualHeader returns a textual header filled with ASCII spaces.
func NewTextualHeader() *TextualHeader {
	h := &TextualHeader{}
	for i := range h.buf {
		h.buf[i] = ' '
	}
	return h
}

// TextualHeaderFromBytes builds a textual header from a raw 3200-byte
// block, copying it. The block must be exactly TextualHeaderSize bytes.
func TextualHeaderFromBytes(b []byte) (*TextualHeader, error) {
	if len(b) != TextualHeaderSize {
		return nil, &RangeError{What: "textual header length", Index: len(b), Min: TextualHeaderSize, Max: TextualHeaderSize}
	}
	h := &TextualHeader{}
	copy(h.buf[:], b)
	return h, nil
}

// Line returns line i (1..40) as an 80-character string.
func (h *TextualHeader) Line(i int) (string, error) {
	if i < 1 || i > TextualHeaderLines {
		return "", &RangeError{What: "textual header line", Index: i, Min: 1, Max: TextualHeaderLines}
	}
	off := (i - 1) * TextualLineLength
	return string(h.buf[off : off+TextualLineLength]), nil
}

// SetLine replaces line i (1..40). Text shorter than 80 characters is
// space-padded on the right; longer text is truncated.
func (h *TextualHeader) SetLine(i int, text string) error {
	if i < 1 || i > TextualHeaderLines {
		return &RangeError{What: "textual header line", Index: i, Min: 1, Max: TextualHeaderLines}
	}
	off := (i - 1) * TextualLineLength
	line := h.buf[off : off+TextualLineLength]
	n := copy(line, text)
	for ; n < TextualLineLength; n++ {
		line[n] = ' '
	}
	return nil
}

// Bytes returns a copy of the raw 3200-byte block.
func (h *TextualHeader) Bytes() []byte {
	b := make([]byte, TextualHeaderSize)
	copy(b, h.buf[:])
	return b
}

// IsEBCDIC reports whether the header content is likely EBCDIC encoded,
// judged from the first line.
func (h *TextualHeader) IsEBCDIC() bool {
	return encoding.LooksEBCDIC(h.buf[:TextualLineLength])
}

// ToASCII converts the header content from EBCDIC (cp037) to ASCII in
// place. Characters without an ASCII mapping become spaces.
func (h *TextualHeader) ToASCII() {
	encoding.DecodeEBCDIC(h.buf[:])
}

// raw returns the backing buffer for Reader/Writer use.
func (h *TextualHeader) raw() []byte {
	return h.buf[:]
}
