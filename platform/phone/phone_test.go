package phone

import "testing"

// These tests exercise the guard paths that fire before Init has wired a
// real classifier engine in; the parsed-and-classified paths are covered
// end-to-end at the phonenumber package level.

func TestNormalizeE164_ReturnsTrimmedInputWithoutEngine(t *testing.T) {
	if got := NormalizeE164("  +31612345678  "); got != "+31612345678" {
		t.Fatalf("NormalizeE164() = %q, want %q", got, "+31612345678")
	}
}

func TestIsValid_FalseWithoutEngine(t *testing.T) {
	if IsValid("+31612345678") {
		t.Fatal("expected IsValid to be false without an engine")
	}
}

func TestNumberType_EmptyWithoutEngine(t *testing.T) {
	if got := NumberType("+31612345678"); got != "" {
		t.Fatalf("NumberType() = %q, want empty string", got)
	}
}

func TestRegionOf_EmptyWithoutEngine(t *testing.T) {
	if got := RegionOf("+31612345678"); got != "" {
		t.Fatalf("RegionOf() = %q, want empty string", got)
	}
}
