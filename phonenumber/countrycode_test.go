package phonenumber

import "testing"

func TestExtractCountryCode_MatchesTwoDigitCallingCode(t *testing.T) {
	u := &Util{callingCodeToRegions: map[int][]string{
		1:  {"US"},
		44: {"GB"},
	}}
	cc, national := u.extractCountryCode("447911123456")
	if cc != 44 || national != "7911123456" {
		t.Fatalf("extractCountryCode() = (%d, %q), want (44, %q)", cc, national, "7911123456")
	}
}

func TestExtractCountryCode_LeadingZeroNeverMatches(t *testing.T) {
	u := &Util{callingCodeToRegions: map[int][]string{1: {"US"}}}
	cc, _ := u.extractCountryCode("0123456789")
	if cc != 0 {
		t.Fatalf("extractCountryCode() = %d, want 0", cc)
	}
}

func TestExtractCountryCode_UnknownPrefixReturnsZero(t *testing.T) {
	u := &Util{callingCodeToRegions: map[int][]string{44: {"GB"}}}
	cc, _ := u.extractCountryCode("999123456")
	if cc != 0 {
		t.Fatalf("extractCountryCode() = %d, want 0", cc)
	}
}

func TestMaybeStripInternationalPrefixAndNormalize_PlusSignWins(t *testing.T) {
	u := &Util{regexCache: NewRegexCache(4)}
	got, source := u.maybeStripInternationalPrefixAndNormalize("+31 6 12345678", "00")
	if source != FromNumberWithPlusSign {
		t.Fatalf("source = %v, want FROM_NUMBER_WITH_PLUS_SIGN", source)
	}
	if got != "31612345678" {
		t.Fatalf("stripped number = %q, want %q", got, "31612345678")
	}
}

func TestMaybeStripInternationalPrefixAndNormalize_IDDPrefixStripped(t *testing.T) {
	u := &Util{regexCache: NewRegexCache(4)}
	got, source := u.maybeStripInternationalPrefixAndNormalize("0031612345678", `00`)
	if source != FromNumberWithIDD {
		t.Fatalf("source = %v, want FROM_NUMBER_WITH_IDD", source)
	}
	if got != "31612345678" {
		t.Fatalf("stripped number = %q, want %q", got, "31612345678")
	}
}

func TestMaybeStripInternationalPrefixAndNormalize_IDDFollowedByZeroIsRejected(t *testing.T) {
	u := &Util{regexCache: NewRegexCache(4)}
	got, source := u.maybeStripInternationalPrefixAndNormalize("00031612345678", `00`)
	if source != FromDefaultCountry {
		t.Fatalf("source = %v, want FROM_DEFAULT_COUNTRY (leading zero after prefix rejects the IDD read)", source)
	}
	if got != "00031612345678" {
		t.Fatalf("number should be left untouched, got %q", got)
	}
}

func TestMaybeExtractCountryCode_TooShortAfterIDD(t *testing.T) {
	u := &Util{regexCache: NewRegexCache(4)}
	pn := newPhoneNumber()
	_, _, err := u.maybeExtractCountryCode("+3", nil, false, pn)
	pnErr, ok := err.(*Error)
	if !ok || pnErr.Kind != TooShortAfterIDD {
		t.Fatalf("expected TooShortAfterIDD error, got %v", err)
	}
}

func TestMaybeExtractCountryCode_InvalidCountryCode(t *testing.T) {
	u := &Util{
		regexCache:           NewRegexCache(4),
		callingCodeToRegions: map[int][]string{31: {"NL"}},
	}
	pn := newPhoneNumber()
	_, _, err := u.maybeExtractCountryCode("+999123456", nil, false, pn)
	pnErr, ok := err.(*Error)
	if !ok || pnErr.Kind != InvalidCountryCode {
		t.Fatalf("expected InvalidCountryCode error, got %v", err)
	}
}
