package phonenumber

import "testing"

func TestDecodeSymbol_FirstSymbolIsFieldLetter(t *testing.T) {
	if got := decodeSymbol(true, 0); got != 'A' {
		t.Fatalf("decodeSymbol(true, 0) = %q, want 'A'", got)
	}
	if got := decodeSymbol(true, 2); got != 'C' {
		t.Fatalf("decodeSymbol(true, 2) = %q, want 'C'", got)
	}
}

func TestDecodeSymbol_DigitsAndPunctuation(t *testing.T) {
	cases := []struct {
		v    byte
		want byte
	}{
		{1, '0'},
		{10, '9'},
		{symD, 'd'},
		{symDash, '-'},
		{symSeparator, ';'},
		{symTerminator, '\n'},
	}
	for _, c := range cases {
		if got := decodeSymbol(false, c.v); got != c.want {
			t.Errorf("decodeSymbol(false, %d) = %q, want %q", c.v, got, c.want)
		}
	}
}

// encodeSymbols is the test-only inverse of decodeSymbol, packing the
// requested 5-bit symbol stream MSB-first exactly as symbolReader expects.
func encodeSymbols(symbols []byte) []byte {
	bitLen := len(symbols) * 5
	buf := make([]byte, (bitLen+7)/8)
	bitPos := 0
	for _, v := range symbols {
		for i := 4; i >= 0; i-- {
			if v&(1<<uint(i)) != 0 {
				buf[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}
	return buf
}

func TestSymbolReader_RoundTripsAcrossByteBoundary(t *testing.T) {
	symbols := []byte{5, 17, 30, 1, 0}
	buf := encodeSymbols(symbols)

	reader := newSymbolReader(buf, 0)
	for i, want := range symbols {
		got, ok := reader.next()
		if !ok {
			t.Fatalf("symbol %d: reader exhausted early", i)
		}
		if got != want {
			t.Fatalf("symbol %d = %d, want %d", i, got, want)
		}
	}
}

func TestSymbolReader_OffsetSkipsLeadingSymbols(t *testing.T) {
	symbols := []byte{9, 9, 9, 7, 3}
	buf := encodeSymbols(symbols)

	reader := newSymbolReader(buf, 3)
	got, ok := reader.next()
	if !ok || got != 7 {
		t.Fatalf("reader at offset 3 = (%d, %v), want (7, true)", got, ok)
	}
}

func TestExpandRegex_DigitRepeatCount(t *testing.T) {
	got := expandRegex("d3")
	if got != `\d{3}` {
		t.Fatalf("expandRegex(%q) = %q, want %q", "d3", got, `\d{3}`)
	}
}

func TestExpandRegex_DigitRepeatRange(t *testing.T) {
	got := expandRegex("d3,5")
	if got != `\d{3,5}` {
		t.Fatalf("expandRegex(%q) = %q, want %q", "d3,5", got, `\d{3,5}`)
	}
}

func TestExpandRegex_NonCapturingGroup(t *testing.T) {
	got := expandRegex("(d3)|d4")
	want := `(?:\d{3})|\d{4}`
	if got != want {
		t.Fatalf("expandRegex(%q) = %q, want %q", "(d3)|d4", got, want)
	}
}

func TestExpandRegex_EscapedParenIsLiteral(t *testing.T) {
	got := expandRegex(`\(abc)`)
	want := `(abc)`
	if got != want {
		t.Fatalf("expandRegex(%q) = %q, want %q", `\(abc)`, got, want)
	}
}

func TestDecodeMetadataRecord_SplitsFieldsOnSeparator(t *testing.T) {
	record := "Bd9;Cd10\n"
	m, err := decodeMetadataRecord(record)
	if err != nil {
		t.Fatalf("decodeMetadataRecord() error = %v", err)
	}
	if m.GeneralDesc != `\d{9}` {
		t.Fatalf("GeneralDesc = %q, want %q", m.GeneralDesc, `\d{9}`)
	}
	if m.FixedLine != `\d{10}` {
		t.Fatalf("FixedLine = %q, want %q", m.FixedLine, `\d{10}`)
	}
}

func TestDecodeMetadataRecord_EscapedSemicolonIsNotABoundary(t *testing.T) {
	record := "B" + `a\;b` + "\n"
	m, err := decodeMetadataRecord(record)
	if err != nil {
		t.Fatalf("decodeMetadataRecord() error = %v", err)
	}
	if m.GeneralDesc != "a;b" {
		t.Fatalf("GeneralDesc = %q, want %q", m.GeneralDesc, "a;b")
	}
}

func TestDecodeMetadataRecord_MissingTerminatorIsAnError(t *testing.T) {
	if _, err := decodeMetadataRecord("Bd9;"); err == nil {
		t.Fatal("expected error for record missing terminator")
	}
}
