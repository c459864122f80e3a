package phonenumber

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// The tests in this file exercise the full engine — parsing through
// classification — against a small metadata blob assembled by hand with
// the same 5-bit symbol codec production code decodes. It stands in for
// the externally generated metadata resource the running service loads
// from disk, scaled down to the handful of regions these tests need.

type testMetadataField struct {
	code int    // field code per fieldCodeToSlot
	raw  string // pre-expansion field text, using only symbol-alphabet characters
}

type testMetadataEntry struct {
	region      string // 2-letter region code, empty for non-geographical
	callingCode int
	fields      []testMetadataField
	flags       uint16 // SameMobileAndFixedLinePattern etc, calling code bits set automatically
}

func charToSymbol(c byte) (byte, bool) {
	if c >= '0' && c <= '9' {
		return c - '0' + 1, true
	}
	switch c {
	case 'd':
		return symD, true
	case '[':
		return symOpenSquare, true
	case ']':
		return symCloseSquare, true
	case '(':
		return symOpenBracket, true
	case ')':
		return symCloseBracket, true
	case '|':
		return symChoice, true
	case ',':
		return symComma, true
	case '-':
		return symDash, true
	}
	return 0, false
}

func encodeEntrySymbols(t *testing.T, fields []testMetadataField) []byte {
	t.Helper()
	var symbols []byte
	for i, f := range fields {
		symbols = append(symbols, byte(f.code))
		for j := 0; j < len(f.raw); j++ {
			sym, ok := charToSymbol(f.raw[j])
			if !ok {
				t.Fatalf("character %q has no test symbol encoding", f.raw[j])
			}
			symbols = append(symbols, sym)
		}
		if i < len(fields)-1 {
			symbols = append(symbols, symSeparator)
		} else {
			symbols = append(symbols, symTerminator)
		}
	}
	return symbols
}

// buildMetadataBlob assembles a metadata store byte stream: header, index,
// and 5-bit packed body, in exactly the layout MetadataStore.load expects.
func buildMetadataBlob(t *testing.T, entries []testMetadataEntry) []byte {
	t.Helper()

	type indexRow struct {
		id    uint16
		flags uint16
	}

	var allSymbols []byte
	var rows []indexRow
	var bufLens []uint16

	for _, e := range entries {
		symbols := encodeEntrySymbols(t, e.fields)
		bufLens = append(bufLens, uint16(len(symbols)))
		allSymbols = append(allSymbols, symbols...)

		flags := e.flags | (uint16(e.callingCode) & callingCodeMask)
		var id uint16
		if e.region != "" {
			if len(e.region) != 2 {
				t.Fatalf("region code %q must be exactly 2 characters", e.region)
			}
			id = uint16(e.region[0])<<8 | uint16(e.region[1])
		} else {
			id = uint16(e.callingCode)
		}
		rows = append(rows, indexRow{id: id, flags: flags})
	}

	var buf bytes.Buffer
	header := make([]byte, 2)
	binary.BigEndian.PutUint16(header, uint16(len(entries)))
	buf.Write(header)

	for i, row := range rows {
		entryBuf := make([]byte, 6)
		binary.BigEndian.PutUint16(entryBuf[0:2], row.id)
		binary.BigEndian.PutUint16(entryBuf[2:4], bufLens[i])
		binary.BigEndian.PutUint16(entryBuf[4:6], row.flags)
		buf.Write(entryBuf)
	}

	buf.Write(encodeSymbols(allSymbols))
	return buf.Bytes()
}

func newTestEngine(t *testing.T, entries []testMetadataEntry, callingCodeToRegions map[int][]string) *Util {
	t.Helper()
	blob := buildMetadataBlob(t, entries)
	return New(bytes.NewReader(blob), callingCodeToRegions)
}

func nlMetadataEntry() testMetadataEntry {
	return testMetadataEntry{
		region:      "NL",
		callingCode: 31,
		fields: []testMetadataField{
			{code: 0, raw: "d9"},      // GeneralDescPossible: \d{9}
			{code: 1, raw: "d9"},      // GeneralDesc: \d{9}
			{code: 2, raw: "[1-5]d8"}, // FixedLine: [1-5]\d{8}
			{code: 3, raw: "6d8"},     // Mobile: 6\d{8}
			{code: 11, raw: "00"},     // InternationalPrefix: 00
		},
	}
}

func TestEngine_ParsesAndClassifiesInternationalMobileNumber(t *testing.T) {
	u := newTestEngine(t, []testMetadataEntry{nlMetadataEntry()}, map[int][]string{31: {"NL"}})

	pn, err := u.Parse("+31 6 12345678", UnknownRegion)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pn.CountryCode != 31 {
		t.Fatalf("CountryCode = %d, want 31", pn.CountryCode)
	}
	if GetNationalSignificantNumber(pn) != "612345678" {
		t.Fatalf("national significant number = %q, want %q", GetNationalSignificantNumber(pn), "612345678")
	}
	if !u.IsValidNumber(pn) {
		t.Fatal("expected number to be valid")
	}
	if got := u.GetNumberType(pn); got != Mobile {
		t.Fatalf("GetNumberType() = %v, want MOBILE", got)
	}
	if got := u.GetRegionCodeForNumber(pn); got != "NL" {
		t.Fatalf("GetRegionCodeForNumber() = %q, want %q", got, "NL")
	}
}

func TestEngine_ParsesIDDPrefixedNumberAgainstDefaultRegion(t *testing.T) {
	u := newTestEngine(t, []testMetadataEntry{nlMetadataEntry()}, map[int][]string{31: {"NL"}})

	pn, err := u.Parse("0031212345678", "NL")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := u.GetNumberType(pn); got != FixedLine {
		t.Fatalf("GetNumberType() = %v, want FIXED_LINE", got)
	}
}

func TestEngine_InvalidCountryCodeIsRejected(t *testing.T) {
	u := newTestEngine(t, []testMetadataEntry{nlMetadataEntry()}, map[int][]string{31: {"NL"}})

	_, err := u.Parse("+99912345678", UnknownRegion)
	pnErr, ok := err.(*Error)
	if !ok || pnErr.Kind != InvalidCountryCode {
		t.Fatalf("expected InvalidCountryCode error, got %v", err)
	}
}

func TestEngine_IsPossibleNumberChecksLengthOnly(t *testing.T) {
	u := newTestEngine(t, []testMetadataEntry{nlMetadataEntry()}, map[int][]string{31: {"NL"}})

	pn, err := u.Parse("+3161234567", UnknownRegion) // one digit short of NL's 9-digit NSN
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := u.IsPossibleNumberWithReason(pn); got != TooShort {
		t.Fatalf("IsPossibleNumberWithReason() = %v, want TOO_SHORT", got)
	}
	if u.IsPossibleNumber(pn) {
		t.Fatal("expected number to be reported as not possible")
	}
}

func TestEngine_NANPASharedCallingCodePicksMatchingRegion(t *testing.T) {
	us := testMetadataEntry{
		region:      "US",
		callingCode: 1,
		fields: []testMetadataField{
			{code: 0, raw: "d10"},
			{code: 1, raw: "d10"},
			{code: 2, raw: "212d7"},
			{code: 3, raw: "212d7"},
			{code: 11, raw: "011"},
		},
	}
	bs := testMetadataEntry{
		region:      "BS",
		callingCode: 1,
		fields: []testMetadataField{
			{code: 0, raw: "d10"},
			{code: 1, raw: "d10"},
			{code: 2, raw: "242d7"},
			{code: 3, raw: "242d7"},
			{code: 11, raw: "011"},
		},
	}

	u := newTestEngine(t, []testMetadataEntry{us, bs}, map[int][]string{1: {"US", "BS"}})

	pn, err := u.Parse("+12425551234", UnknownRegion)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := u.GetRegionCodeForNumber(pn); got != "BS" {
		t.Fatalf("GetRegionCodeForNumber() = %q, want %q (leading digits 242 identify the Bahamas)", got, "BS")
	}

	pn2, err := u.Parse("+12125551234", UnknownRegion)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := u.GetRegionCodeForNumber(pn2); got != "US" {
		t.Fatalf("GetRegionCodeForNumber() = %q, want %q", got, "US")
	}
}

func usMetadataEntry() testMetadataEntry {
	return testMetadataEntry{
		region:      "US",
		callingCode: 1,
		fields: []testMetadataField{
			{code: 0, raw: "d10"},        // GeneralDescPossible: \d{10}
			{code: 1, raw: "d10"},        // GeneralDesc: \d{10}
			{code: 4, raw: "8003569377"}, // TollFree: 8003569377
			{code: 11, raw: "011"},       // InternationalPrefix: 011
		},
	}
}

// TestEngine_ParsesVanityNumberInNationalFormat exercises the ≥3-letter
// keypad mapping inside the parse pipeline itself, not just Normalize in
// isolation: a vanity number with no plus-sign or IDD prefix must still
// have its letters mapped to digits before the leading national-format
// calling code can be recognized and stripped.
func TestEngine_ParsesVanityNumberInNationalFormat(t *testing.T) {
	u := newTestEngine(t, []testMetadataEntry{usMetadataEntry()}, map[int][]string{1: {"US"}})

	pn, err := u.Parse("1-800-FLOWERS", "US")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pn.CountryCode != 1 {
		t.Fatalf("CountryCode = %d, want 1", pn.CountryCode)
	}
	if got := GetNationalSignificantNumber(pn); got != "8003569377" {
		t.Fatalf("national significant number = %q, want %q", got, "8003569377")
	}
	if got := u.GetNumberType(pn); got != TollFree {
		t.Fatalf("GetNumberType() = %v, want TOLL_FREE", got)
	}
}

func deMetadataEntry() testMetadataEntry {
	return testMetadataEntry{
		region:      "DE",
		callingCode: 49,
		fields: []testMetadataField{
			{code: 0, raw: "d10"},  // GeneralDescPossible: \d{10}
			{code: 1, raw: "d10"},  // GeneralDesc: \d{10}
			{code: 2, raw: "30d8"}, // FixedLine: 30\d{8}
			{code: 11, raw: "00"},  // InternationalPrefix: 00
		},
	}
}

// TestEngine_IsValidNumberForRegionRejectsMismatchedCallingCode confirms
// that a number is checked against a region's own calling code before its
// pattern is even consulted: a Dutch number handed to IsValidNumberForRegion
// under the German region code must fail on the calling-code mismatch
// rather than being run against Germany's numbering patterns.
func TestEngine_IsValidNumberForRegionRejectsMismatchedCallingCode(t *testing.T) {
	u := newTestEngine(t,
		[]testMetadataEntry{nlMetadataEntry(), deMetadataEntry()},
		map[int][]string{31: {"NL"}, 49: {"DE"}},
	)

	pn, err := u.Parse("+31612345678", UnknownRegion)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !u.IsValidNumberForRegion(pn, "NL") {
		t.Fatal("expected number to be valid for its own region NL")
	}
	if u.IsValidNumberForRegion(pn, "DE") {
		t.Fatal("expected number to be rejected for region DE due to calling-code mismatch")
	}
}
