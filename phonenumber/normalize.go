package phonenumber

import (
	"regexp"
	"strings"
	"unicode"
)

// PlusSign is the ASCII plus sign that marks international format.
const PlusSign = '+'

// PlusChars is the set of characters that signify an international prefix:
// ASCII plus and its full-width variant (U+FF0B).
const PlusChars = "+＋"

// validPunctuation is the set of punctuation accepted inside a phone
// number once past the leading characters: dash variants (U+2010-U+2015,
// U+2212, U+30FC, U+FF0D-U+FF0F), whitespace variants (NBSP, SHY, ZWSP,
// WJ, IDSP), parentheses incl. full-width, brackets incl. full-width,
// dot, slash and tilde variants, plus 'x' (used as a placeholder for
// carrier info in some regions, e.g. Brazil). Note 'x' is punctuation for
// viability; Normalize maps it to keypad digit '9' when the input has
// three or more letters and drops it otherwise.
const validPunctuation = "-x‐-―−ー－-／ " +
	" ­​⁠　()（）［］.\\[\\]/~⁓∼～"

const starSign = "*"

var alphaMappings = map[rune]byte{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

var diallableCharMappings = func() map[rune]byte {
	m := map[rune]byte{PlusSign: byte(PlusSign), '*': '*'}
	for c := byte('0'); c <= '9'; c++ {
		m[rune(c)] = c
	}
	return m
}()

var alphaPhoneMappings = func() map[rune]byte {
	m := make(map[rune]byte, len(alphaMappings)+10)
	for k, v := range alphaMappings {
		m[k] = v
	}
	for c := byte('0'); c <= '9'; c++ {
		m[rune(c)] = c
	}
	return m
}()

// validAlphaPhonePattern detects numbers with three or more embedded ASCII
// letters, which triggers alpha-to-keypad normalization.
var validAlphaPhonePattern = regexp.MustCompile(`(?:.*?[A-Za-z]){3}.*`)

// viablePhoneNumberPattern implements isViablePhoneNumber: either exactly
// two digits, or plus-chars followed by punctuation-interspersed digits
// occurring three or more times, followed by any mix of punctuation, star,
// digits and letters.
var viablePhoneNumberPattern = regexp.MustCompile(
	`^(?:` +
		`\p{Nd}{2}|` +
		`[` + PlusChars + `]*(?:[` + validPunctuation + starSign + `]*\p{Nd}){3,}` +
		`[` + validPunctuation + starSign + `A-Za-z\p{Nd}]*` +
		`)$`)

// plusCharsPattern matches one or more leading plus-chars.
var plusCharsPattern = regexp.MustCompile(`^[` + PlusChars + `]+`)

// capturingDigitPattern finds a Unicode decimal digit, used to inspect the
// character right after a stripped IDD prefix.
var capturingDigitPattern = regexp.MustCompile(`\p{Nd}`)

// digitValue returns the ASCII decimal value of a Unicode decimal digit
// code point (category Nd), covering ASCII, full-width, Arabic-Indic and
// every other Nd block, since Unicode defines each such block as a
// contiguous run of exactly ten code points 0..9.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	for _, rng := range unicode.Nd.R16 {
		if rune(rng.Lo) > r {
			break
		}
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) && rng.Stride == 1 {
			offset := int(r) - int(rng.Lo)
			if offset < 10 {
				return offset, true
			}
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if rune(rng.Lo) > r {
			break
		}
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) && rng.Stride == 1 {
			offset := int(r) - int(rng.Lo)
			if offset < 10 {
				return offset, true
			}
		}
	}
	return 0, false
}

// IsViablePhoneNumber checks to see that the string of characters could
// possibly be a phone number at all. It assumes leading non-number symbols
// have already been removed and does not require prior normalization.
func IsViablePhoneNumber(number string) bool {
	if len([]rune(number)) < minLengthForNSN {
		return false
	}
	return viablePhoneNumberPattern.MatchString(number)
}

// Normalize converts a free-form phone number string into digits only,
// mapping alpha characters to their telephone keypad digit when the input
// contains three or more ASCII letters, and folding Unicode digits to
// ASCII otherwise.
func Normalize(number string) string {
	if validAlphaPhonePattern.MatchString(number) {
		return normalizeHelper(number, alphaPhoneMappings, true)
	}
	return NormalizeDigitsOnly(number)
}

// NormalizeDigitsOnly strips everything except decimal digits, folding any
// Unicode decimal digit to its ASCII form.
func NormalizeDigitsOnly(number string) string {
	var sb strings.Builder
	sb.Grow(len(number))
	for _, r := range number {
		if v, ok := digitValue(r); ok {
			sb.WriteByte(byte('0' + v))
		}
	}
	return sb.String()
}

// NormalizeDiallableCharsOnly strips everything that is not diallable on a
// telephone keypad: ASCII digits, '+' and '*'.
func NormalizeDiallableCharsOnly(number string) string {
	return normalizeHelper(number, diallableCharMappings, true)
}

func normalizeHelper(number string, mapping map[rune]byte, removeNonMatches bool) string {
	var sb strings.Builder
	sb.Grow(len(number))
	for _, r := range number {
		upper := unicode.ToUpper(r)
		if v, ok := mapping[upper]; ok {
			sb.WriteByte(v)
		} else if !removeNonMatches {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
