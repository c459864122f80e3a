package phonenumber

import "testing"

func newTestUtil() *Util {
	return &Util{regexCache: NewRegexCache(16)}
}

func TestGetNationalSignificantNumber_RestoresItalianLeadingZeros(t *testing.T) {
	pn := &PhoneNumber{NationalNumber: 612345678, ItalianLeadingZero: true, NumberOfLeadingZeros: 2}
	got := GetNationalSignificantNumber(pn)
	want := "00612345678"
	if got != want {
		t.Fatalf("GetNationalSignificantNumber() = %q, want %q", got, want)
	}
}

func TestGetNationalSignificantNumber_WithoutLeadingZero(t *testing.T) {
	pn := &PhoneNumber{NationalNumber: 612345678}
	if got := GetNationalSignificantNumber(pn); got != "612345678" {
		t.Fatalf("GetNationalSignificantNumber() = %q, want %q", got, "612345678")
	}
}

func TestGetNumberTypeHelper_DistinguishesMobileFromFixedLine(t *testing.T) {
	u := newTestUtil()
	meta := &PhoneMetadata{
		GeneralDesc: `\d{9}`,
		FixedLine:   `[1-5]\d{8}`,
		Mobile:      `6\d{8}`,
	}
	if got := u.getNumberTypeHelper("612345678", meta); got != Mobile {
		t.Fatalf("getNumberTypeHelper(mobile) = %v, want MOBILE", got)
	}
	if got := u.getNumberTypeHelper("212345678", meta); got != FixedLine {
		t.Fatalf("getNumberTypeHelper(fixed) = %v, want FIXED_LINE", got)
	}
}

func TestGetNumberTypeHelper_SameMobileAndFixedLineIsAmbiguous(t *testing.T) {
	u := newTestUtil()
	meta := &PhoneMetadata{
		GeneralDesc:                   `\d{10}`,
		FixedLine:                     `[2-9]\d{9}`,
		Mobile:                        `[2-9]\d{9}`,
		SameMobileAndFixedLinePattern: true,
	}
	if got := u.getNumberTypeHelper("2125550100", meta); got != FixedLineOrMobile {
		t.Fatalf("getNumberTypeHelper() = %v, want FIXED_LINE_OR_MOBILE", got)
	}
}

func TestGetNumberTypeHelper_ChecksSpecificTypesBeforeFixedLine(t *testing.T) {
	u := newTestUtil()
	meta := &PhoneMetadata{
		GeneralDesc: `\d{9}`,
		FixedLine:   `8\d{8}`,
		TollFree:    `800\d{6}`,
	}
	if got := u.getNumberTypeHelper("800123456", meta); got != TollFree {
		t.Fatalf("getNumberTypeHelper() = %v, want TOLL_FREE", got)
	}
}

func TestGetNumberTypeHelper_NoMatchAgainstGeneralDescIsUnknown(t *testing.T) {
	u := newTestUtil()
	meta := &PhoneMetadata{GeneralDesc: `\d{9}`, FixedLine: `2\d{8}`}
	if got := u.getNumberTypeHelper("12", meta); got != UnknownType {
		t.Fatalf("getNumberTypeHelper() = %v, want UNKNOWN", got)
	}
}

func TestTestNumberLengthAgainstPattern(t *testing.T) {
	u := newTestUtil()
	pattern := `\d{9}`

	if got := u.testNumberLengthAgainstPattern(pattern, "123456789"); got != IsPossible {
		t.Fatalf("exact length = %v, want IS_POSSIBLE", got)
	}
	if got := u.testNumberLengthAgainstPattern(pattern, "1234567890"); got != TooLongResult {
		t.Fatalf("longer than pattern = %v, want TOO_LONG", got)
	}
	if got := u.testNumberLengthAgainstPattern(pattern, "12345"); got != TooShort {
		t.Fatalf("shorter than pattern = %v, want TOO_SHORT", got)
	}
}

func TestGetRegionCodeForNumber_ResolvesSingleRegionAndNonGeoCallingCodes(t *testing.T) {
	u := &Util{
		regexCache: NewRegexCache(16),
		callingCodeToRegions: map[int][]string{
			31:  {"NL"},
			800: {RegionCodeForNonGeoEntity},
		},
	}

	fixedLinePN := &PhoneNumber{CountryCode: 31}
	// A calling code with a single region resolves without consulting the
	// store, so no metadata is needed for either number here.
	if u.GetRegionCodeForNumber(fixedLinePN) != "NL" {
		t.Fatalf("expected single-region calling code to resolve directly")
	}

	nonGeoPN := &PhoneNumber{CountryCode: 800}
	if got := u.GetRegionCodeForNumber(nonGeoPN); got != RegionCodeForNonGeoEntity {
		t.Fatalf("GetRegionCodeForNumber(800) = %q, want %q", got, RegionCodeForNonGeoEntity)
	}
}
