package phonenumber

import "testing"

func TestNormalizeDigitsOnly_StripsPunctuationAndFoldsUnicodeDigits(t *testing.T) {
	got := NormalizeDigitsOnly("+31 (0)6-١٢٣٤٥٦٧٨")
	want := "31061234" + "5678"
	if got != want {
		t.Fatalf("NormalizeDigitsOnly() = %q, want %q", got, want)
	}
}

func TestNormalize_MapsAlphaKeypadWhenThreeOrMoreLetters(t *testing.T) {
	got := Normalize("1-800-FLOWERS")
	want := "18003569377"
	if got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalize_FallsBackToDigitsOnlyBelowThreeLetters(t *testing.T) {
	got := Normalize("0x123")
	if got != "0123" {
		t.Fatalf("Normalize() = %q, want %q", got, "0123")
	}
}

func TestIsViablePhoneNumber(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"+31 6 12 34 56 78", true},
		{"0612345678", true},
		{"12", true},
		{"1", false},
		{"abcdefg", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsViablePhoneNumber(c.input); got != c.want {
			t.Errorf("IsViablePhoneNumber(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestNormalizeDiallableCharsOnly_KeepsPlusStarAndDigitsOnly(t *testing.T) {
	got := NormalizeDiallableCharsOnly("+31 (6) 12-34*56")
	want := "+3161234*56"
	if got != want {
		t.Fatalf("NormalizeDiallableCharsOnly() = %q, want %q", got, want)
	}
}
