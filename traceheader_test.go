package segy

import "testing"

func TestTraceHeader_Accessors(t *testing.T) {
	for _, order := range []ByteOrder{BigEndian, LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			h := &TraceHeader{order: order}
			h.SetSequenceNumber(7)
			h.SetCoordinateScalar(-100)
			h.SetSourceX(431000)
			h.SetSourceY(-6752000)
			h.SetSampleCount(512)
			h.SetSampleInterval(2000)
			h.SetCDPX(431500)
			h.SetCDPY(-6752500)
			h.SetInline(210)
			h.SetCrossline(1055)

			if got := h.SequenceNumber(); got != 7 {
				t.Errorf("SequenceNumber = %d", got)
			}
			if got := h.CoordinateScalar(); got != -100 {
				t.Errorf("CoordinateScalar = %d", got)
			}
			if got := h.SourceX(); got != 431000 {
				t.Errorf("SourceX = %d", got)
			}
			if got := h.SourceY(); got != -6752000 {
				t.Errorf("SourceY = %d", got)
			}
			if got := h.SampleCount(); got != 512 {
				t.Errorf("SampleCount = %d", got)
			}
			if got := h.SampleInterval(); got != 2000 {
				t.Errorf("SampleInterval = %d", got)
			}
			if got := h.CDPX(); got != 431500 {
				t.Errorf("CDPX = %d", got)
			}
			if got := h.CDPY(); got != -6752500 {
				t.Errorf("CDPY = %d", got)
			}
			if got := h.Inline(); got != 210 {
				t.Errorf("Inline = %d", got)
			}
			if got := h.Crossline(); got != 1055 {
				t.Errorf("Crossline = %d", got)
			}
		})
	}
}

func TestTraceHeader_Layout(t *testing.T) {
	h := NewTraceHeader()
	h.SetInline(0x01020304)
	h.SetCrossline(0x0A0B0C0D)

	raw := h.Bytes()
	if got := [4]byte{raw[188], raw[189], raw[190], raw[191]}; got != [4]byte{1, 2, 3, 4} {
		t.Errorf("inline bytes at offset 188 = %v", got)
	}
	if got := [4]byte{raw[192], raw[193], raw[194], raw[195]}; got != [4]byte{0x0A, 0x0B, 0x0C, 0x0D} {
		t.Errorf("crossline bytes at offset 192 = %v", got)
	}
}

func TestTraceHeader_EffectiveSampleCount(t *testing.T) {
	h := NewTraceHeader()

	if got := h.EffectiveSampleCount(500); got != 500 {
		t.Errorf("zero override: got %d, want file default 500", got)
	}

	h.SetSampleCount(128)
	if got := h.EffectiveSampleCount(500); got != 128 {
		t.Errorf("nonzero override: got %d, want 128", got)
	}
}

func TestTraceHeaderFromBytes(t *testing.T) {
	src := NewTraceHeader()
	src.SetSequenceNumber(99)

	h, err := TraceHeaderFromBytes(src.Bytes(), BigEndian)
	if err != nil {
		t.Fatalf("TraceHeaderFromBytes: %v", err)
	}
	if got := h.SequenceNumber(); got != 99 {
		t.Errorf("SequenceNumber = %d, want 99", got)
	}

	if _, err := TraceHeaderFromBytes(make([]byte, 10), BigEndian); err == nil {
		t.Error("expected error for short input")
	}
}
