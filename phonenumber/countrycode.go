package phonenumber

import (
	"strconv"
	"strings"
)

// nonMatchIddPrefix is the sentinel pattern used in place of a default
// region's international prefix when no default region was supplied; it
// is chosen so it can never match anything, exactly the source library's
// own "NonMatch" placeholder.
const nonMatchIddPrefix = "NonMatch"

// maybeStripInternationalPrefixAndNormalize tries to identify a leading
// plus-sign or an international dialing prefix (IDD) in number, stripping
// it and reporting where the country calling code will need to come from.
// The remainder is always run through the alpha-aware Normalize, even when
// neither a plus-sign nor an IDD prefix was found, so a vanity number in
// national format (e.g. "1-800-FLOWERS") still has its letters mapped to
// keypad digits before the caller inspects it for a leading calling code.
func (u *Util) maybeStripInternationalPrefixAndNormalize(number, possibleIddPrefix string) (string, CountryCodeSource) {
	if number == "" {
		return number, FromDefaultCountry
	}
	if loc := plusCharsPattern.FindStringIndex(number); loc != nil {
		rest := number[loc[1]:]
		return Normalize(rest), FromNumberWithPlusSign
	}
	normalized := Normalize(number)
	stripped, ok := u.parsePrefixAsIdd(possibleIddPrefix, normalized)
	if ok {
		return stripped, FromNumberWithIDD
	}
	return normalized, FromDefaultCountry
}

// parsePrefixAsIdd checks whether number begins with the given IDD
// pattern and, if so, strips it. It refuses to strip when the first
// digit found after the prefix is '0': a real country calling code never
// starts with 0, so a match there is far more likely to be a coincidental
// prefix of the national number than a genuine IDD.
func (u *Util) parsePrefixAsIdd(iddPattern, number string) (string, bool) {
	if iddPattern == nonMatchIddPrefix || iddPattern == "" {
		return number, false
	}
	re := u.regexCache.get(iddPattern, true)
	loc := re.FindStringIndex(number)
	if loc == nil {
		return number, false
	}
	matchEnd := loc[1]
	if idx := capturingDigitPattern.FindStringIndex(number[matchEnd:]); idx != nil {
		digit := number[matchEnd:][idx[0]:idx[1]]
		if NormalizeDigitsOnly(digit) == "0" {
			return number, false
		}
	}
	return number[matchEnd:], true
}

// extractCountryCode consumes the shortest 1..3 digit prefix of fullNumber
// that is a recognized calling code, returning it along with the
// remainder as the national number. It returns 0 (and leaves national
// number unset) when fullNumber starts with '0' (calling codes never do)
// or no prefix of any length matches the calling-code table.
func (u *Util) extractCountryCode(fullNumber string) (cc int, national string) {
	if fullNumber == "" || fullNumber[0] == '0' {
		return 0, ""
	}
	max := maxLengthCountryCode
	if len(fullNumber) < max {
		max = len(fullNumber)
	}
	for i := 1; i <= max; i++ {
		candidate := 0
		for _, c := range fullNumber[:i] {
			candidate = candidate*10 + int(c-'0')
		}
		if u.hasValidCountryCallingCode(candidate) {
			return candidate, fullNumber[i:]
		}
	}
	return 0, ""
}

// maybeExtractCountryCode determines the calling code for number, trying
// in order: an explicit plus sign, a stripped IDD prefix, and (if a
// default region was supplied) that region's own calling code as an
// implicit prefix. On success it sets pn.CountryCode (and, if keepRaw,
// pn.CountryCodeSource) and returns the calling code and the remaining
// national significant number. It returns an *Error for TooShortAfterIDD
// and InvalidCountryCode per §7.
func (u *Util) maybeExtractCountryCode(number string, defaultRegionMeta *PhoneMetadata, keepRaw bool, pn *PhoneNumber) (int, string, error) {
	if number == "" {
		return 0, "", nil
	}
	possibleIddPrefix := nonMatchIddPrefix
	if defaultRegionMeta != nil {
		possibleIddPrefix = defaultRegionMeta.InternationalPrefix
	}

	fullNumber, source := u.maybeStripInternationalPrefixAndNormalize(number, possibleIddPrefix)
	if keepRaw {
		pn.setCountryCodeSource(source)
	}

	if source != FromDefaultCountry {
		if len(fullNumber) <= minLengthForNSN {
			return 0, "", newError(TooShortAfterIDD, "number had an IDD prefix but was too short afterward")
		}
		cc, national := u.extractCountryCode(fullNumber)
		if cc != 0 {
			pn.CountryCode = cc
			return cc, national, nil
		}
		pn.CountryCode = 0
		return 0, "", newError(InvalidCountryCode, "country calling code supplied was not recognized")
	}

	if defaultRegionMeta != nil {
		defaultCC := defaultRegionMeta.CountryCode
		defaultCCString := strconv.Itoa(defaultCC)
		if strings.HasPrefix(fullNumber, defaultCCString) {
			potentialNational := fullNumber[len(defaultCCString):]
			generalDesc := defaultRegionMeta.GeneralDesc
			possibleDesc := defaultRegionMeta.GeneralDescPossible

			fullMatches := generalDesc != "" && u.regexCache.MatchesFull(generalDesc, fullNumber)
			potentialMatches := generalDesc != "" && u.regexCache.MatchesFull(generalDesc, potentialNational)

			tooLong := u.testNumberLengthAgainstPattern(possibleDesc, fullNumber) == TooLongResult
			if (!fullMatches && potentialMatches) || tooLong {
				if keepRaw {
					pn.setCountryCodeSource(FromNumberWithoutPlusSign)
				}
				pn.CountryCode = defaultCC
				return defaultCC, potentialNational, nil
			}
		}
	}

	pn.CountryCode = 0
	return 0, fullNumber, nil
}
