package phonenumber

import "strconv"

// Parse turns a free-form phone number string into a PhoneNumber, using
// defaultRegion to resolve numbers written in national (non-international)
// format. defaultRegion may be UnknownRegion (or empty) only when number
// starts with a plus sign; otherwise parsing fails with InvalidCountryCode.
// An IDD prefix alone is only recognized through a valid defaultRegion.
func (u *Util) Parse(number, defaultRegion string) (*PhoneNumber, error) {
	return u.parseHelper(number, defaultRegion, false)
}

// ParseAndKeepRawInput is like Parse but additionally records the
// original input string and how its country calling code was determined,
// for callers that need to reproduce the caller's original formatting
// intent (e.g. deciding whether to re-render with a leading plus).
func (u *Util) ParseAndKeepRawInput(number, defaultRegion string) (*PhoneNumber, error) {
	return u.parseHelper(number, defaultRegion, true)
}

func (u *Util) checkRegionForParsing(numberToParse, defaultRegion string) bool {
	if u.isValidRegionCode(defaultRegion) {
		return true
	}
	return plusCharsPattern.MatchString(numberToParse)
}

func (u *Util) parseHelper(numberToParse, defaultRegion string, keepRaw bool) (*PhoneNumber, error) {
	if numberToParse == "" {
		return nil, newError(NotANumber, "the phone number supplied was empty")
	}
	if len([]rune(numberToParse)) > maxInputStringLength {
		return nil, newError(TooLong, "the string supplied was too long to parse")
	}
	if !IsViablePhoneNumber(numberToParse) {
		return nil, newError(NotANumber, "the string supplied did not seem to be a phone number")
	}
	if !u.checkRegionForParsing(numberToParse, defaultRegion) {
		return nil, newError(InvalidCountryCode, "missing or invalid default region")
	}

	pn := newPhoneNumber()
	if keepRaw {
		pn.RawInput = numberToParse
	}

	var regionMeta *PhoneMetadata
	if u.isValidRegionCode(defaultRegion) {
		regionMeta = u.getMetadataForRegion(defaultRegion)
	}

	nationalNumber := numberToParse
	countryCode, normalizedNational, err := u.maybeExtractCountryCode(nationalNumber, regionMeta, keepRaw, pn)
	if err != nil {
		perr, ok := err.(*Error)
		loc := plusCharsPattern.FindStringIndex(numberToParse)
		if !ok || perr.Kind != InvalidCountryCode || loc == nil {
			return nil, err
		}
		// The number carried a leading plus but the digits after it did not
		// resolve to a calling code directly (e.g. a plus followed by a
		// redundant IDD prefix, "+0031..."). Retry with the plus stripped so
		// the IDD-prefix path gets a chance to run instead of the
		// plus-sign fast path.
		countryCode, normalizedNational, err = u.maybeExtractCountryCode(numberToParse[loc[1]:], regionMeta, keepRaw, pn)
		if err != nil {
			return nil, err
		}
		if countryCode == 0 {
			return nil, newError(InvalidCountryCode, "could not interpret numbers after plus-sign")
		}
	}

	if countryCode != 0 {
		numberRegion := u.GetRegionCodeForCountryCode(countryCode)
		if numberRegion != defaultRegion {
			regionMeta = u.getMetadataForRegionOrCallingCode(countryCode, numberRegion)
		}
	} else {
		normalizedNational = Normalize(nationalNumber)
		if regionMeta != nil {
			countryCode = regionMeta.CountryCode
		} else if keepRaw {
			pn.clearCountryCodeSource()
		}
	}

	if len(normalizedNational) < minLengthForNSN {
		return nil, newError(TooShortNSN, "the string supplied is too short to be a phone number")
	}
	if len(normalizedNational) > maxLengthForNSN {
		return nil, newError(TooLong, "the string supplied is too long to be a phone number")
	}

	setItalianLeadingZerosForPhoneNumber(normalizedNational, pn)
	nn, err := strconv.ParseUint(normalizedNational, 10, 64)
	if err != nil {
		return nil, newError(NotANumber, "the national number contained non-digit characters")
	}
	pn.NationalNumber = nn
	pn.CountryCode = countryCode
	return pn, nil
}

func setItalianLeadingZerosForPhoneNumber(nationalNumber string, pn *PhoneNumber) {
	if len(nationalNumber) <= 1 || nationalNumber[0] != '0' {
		return
	}
	pn.ItalianLeadingZero = true
	zeros := 1
	for zeros < len(nationalNumber)-1 && nationalNumber[zeros] == '0' {
		zeros++
	}
	pn.NumberOfLeadingZeros = zeros
}
