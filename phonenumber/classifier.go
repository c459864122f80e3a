package phonenumber

import "strconv"

// nationalSignificantNumber renders a PhoneNumber's NationalNumber back
// into its digit-string form, restoring any leading zeros the numeric
// field can't carry on its own (Italian-style leading zeros, §4.6).
func nationalSignificantNumber(pn *PhoneNumber) string {
	nn := strconv.FormatUint(pn.NationalNumber, 10)
	if pn.ItalianLeadingZero {
		zeros := pn.NumberOfLeadingZeros
		if zeros < 1 {
			zeros = 1
		}
		var zb []byte
		for i := 0; i < zeros; i++ {
			zb = append(zb, '0')
		}
		return string(zb) + nn
	}
	return nn
}

// GetNationalSignificantNumber is the public accessor for
// nationalSignificantNumber.
func GetNationalSignificantNumber(pn *PhoneNumber) string {
	return nationalSignificantNumber(pn)
}

// testNumberLengthAgainstPattern classifies s against a possible-number
// pattern's length characteristics: IsPossible if it matches outright,
// TooLongResult if the pattern matches a proper prefix of s (so s carries
// digits beyond what the pattern allows), TooShort otherwise.
func (u *Util) testNumberLengthAgainstPattern(possiblePattern, s string) ValidationResult {
	if possiblePattern == "" {
		return IsPossible
	}
	if u.regexCache.MatchesFull(possiblePattern, s) {
		return IsPossible
	}
	if u.regexCache.LooksAt(possiblePattern, s) {
		return TooLongResult
	}
	return TooShort
}

// GetNumberType classifies a valid PhoneNumber into one of the closed
// PhoneNumberType categories, testing each type's pattern in the fixed
// order the source library uses (general validity first, then premium
// rate, toll free, and so on through UAN and voicemail, with fixed line
// and mobile tested last), short-circuiting the shared fixed-line/mobile
// case that regions like the USA can't distinguish.
func (u *Util) GetNumberType(pn *PhoneNumber) PhoneNumberType {
	region := u.GetRegionCodeForNumber(pn)
	meta := u.getMetadataForRegionOrCallingCode(pn.CountryCode, region)
	if meta == nil {
		return UnknownType
	}
	return u.getNumberTypeHelper(nationalSignificantNumber(pn), meta)
}

func (u *Util) getNumberTypeHelper(nsn string, meta *PhoneMetadata) PhoneNumberType {
	if !u.isNumberMatchingDesc(nsn, meta.GeneralDesc) {
		return UnknownType
	}
	if u.isNumberMatchingDesc(nsn, meta.PremiumRate) {
		return PremiumRate
	}
	if u.isNumberMatchingDesc(nsn, meta.TollFree) {
		return TollFree
	}
	if u.isNumberMatchingDesc(nsn, meta.SharedCost) {
		return SharedCost
	}
	if u.isNumberMatchingDesc(nsn, meta.VOIP) {
		return VOIP
	}
	if u.isNumberMatchingDesc(nsn, meta.PersonalNumber) {
		return PersonalNumber
	}
	if u.isNumberMatchingDesc(nsn, meta.Pager) {
		return Pager
	}
	if u.isNumberMatchingDesc(nsn, meta.UAN) {
		return UAN
	}
	if u.isNumberMatchingDesc(nsn, meta.Voicemail) {
		return Voicemail
	}
	if u.isNumberMatchingDesc(nsn, meta.FixedLine) {
		if meta.SameMobileAndFixedLinePattern {
			return FixedLineOrMobile
		}
		if u.isNumberMatchingDesc(nsn, meta.Mobile) {
			return FixedLineOrMobile
		}
		return FixedLine
	}
	// Only test for mobile once certain the fixed-line and mobile patterns
	// aren't the same; otherwise a fixed-line-only number would wrongly
	// come back as mobile.
	if !meta.SameMobileAndFixedLinePattern && u.isNumberMatchingDesc(nsn, meta.Mobile) {
		return Mobile
	}
	return UnknownType
}

func (u *Util) isNumberMatchingDesc(nsn, desc string) bool {
	if desc == "" {
		return false
	}
	return u.regexCache.MatchesFull(desc, nsn)
}

// IsValidNumber reports whether pn is a valid number for the region
// GetRegionCodeForNumber infers for it (the one region among those sharing
// its calling code whose patterns match, or the shared non-geographical
// metadata for a global network calling code).
func (u *Util) IsValidNumber(pn *PhoneNumber) bool {
	region := u.GetRegionCodeForNumber(pn)
	return u.IsValidNumberForRegion(pn, region)
}

// IsValidNumberForType reports whether pn matches the pattern for a
// specific number type in its own region, rather than any type at all
// (as IsValidNumber does). Useful for callers that require, say, a
// number to be specifically Mobile rather than merely valid.
func (u *Util) IsValidNumberForType(pn *PhoneNumber, t PhoneNumberType) bool {
	region := u.GetRegionCodeForNumber(pn)
	meta := u.getMetadataForRegionOrCallingCode(pn.CountryCode, region)
	if meta == nil {
		return false
	}
	nsn := nationalSignificantNumber(pn)
	if !u.isNumberMatchingDesc(nsn, meta.GeneralDesc) {
		return false
	}
	return u.isNumberMatchingDesc(nsn, meta.descForType(t))
}

// IsValidNumberForRegion reports whether pn is valid specifically for
// region, which need not be the number's own inferred region (used to
// check, for instance, whether a number some caller claims is regional
// really matches that region's numbering plan).
func (u *Util) IsValidNumberForRegion(pn *PhoneNumber, region string) bool {
	meta := u.getMetadataForRegionOrCallingCode(pn.CountryCode, region)
	if meta == nil {
		return false
	}
	if region != RegionCodeForNonGeoEntity && pn.CountryCode != u.countryCodeForValidRegion(region) {
		return false
	}
	return u.getNumberTypeHelper(nationalSignificantNumber(pn), meta) != UnknownType
}

// GetRegionCodeForNumber infers the region a valid number belongs to: the
// sentinel non-geo region if its calling code has no per-region
// metadata, its calling code's sole region if there is only one, or
// whichever of several candidate regions actually matches the number's
// national significant number pattern.
func (u *Util) GetRegionCodeForNumber(pn *PhoneNumber) string {
	if pn == nil {
		return UnknownRegion
	}
	regions, ok := u.callingCodeToRegions[pn.CountryCode]
	if !ok || len(regions) == 0 {
		if u.log != nil {
			u.log.Info("missing or invalid country calling code", "country_code", pn.CountryCode)
		}
		return UnknownRegion
	}
	if len(regions) == 1 {
		return regions[0]
	}
	return u.getRegionCodeForNumberFromRegionList(pn, regions)
}

func (u *Util) getRegionCodeForNumberFromRegionList(pn *PhoneNumber, regions []string) string {
	nsn := nationalSignificantNumber(pn)
	for _, region := range regions {
		meta := u.getMetadataForRegion(region)
		if meta == nil {
			continue
		}
		if meta.LeadingDigits != "" {
			if u.regexCache.LooksAt(meta.LeadingDigits, nsn) {
				return region
			}
			continue
		}
		if u.getNumberTypeHelper(nsn, meta) != UnknownType {
			return region
		}
	}
	return UnknownRegion
}

// IsLeadingZeroPossible reports whether the region a calling code's main
// metadata identifies allows a leading zero in its national numbers.
// Parsing does not consult it: Italian-style leading zeros are recorded
// for any number whose national significant number starts with '0'.
func (u *Util) IsLeadingZeroPossible(callingCode int) bool {
	meta := u.getMetadataForRegionOrCallingCode(callingCode, u.GetRegionCodeForCountryCode(callingCode))
	if meta == nil {
		return false
	}
	return meta.LeadingZeroPossible
}

// IsGeographical reports whether pn's assigned type is one tied to a
// physical location rather than a service pattern (fixed line or the
// ambiguous fixed-line-or-mobile case), and the region inferred for it by
// GetRegionCodeForNumber is not the non-geographical entity.
func (u *Util) IsGeographical(pn *PhoneNumber) bool {
	t := u.GetNumberType(pn)
	if t != FixedLine && t != FixedLineOrMobile {
		return false
	}
	return u.GetRegionCodeForNumber(pn) != RegionCodeForNonGeoEntity
}

// IsPossibleNumberWithReason reports why a number is or isn't possible,
// checking only its length against its region's or calling code's
// general possible-number pattern; unlike IsValidNumber this does not
// require the number to match any specific type's exact pattern.
func (u *Util) IsPossibleNumberWithReason(pn *PhoneNumber) ValidationResult {
	nsn := nationalSignificantNumber(pn)
	cc := pn.CountryCode
	if !u.hasValidCountryCallingCode(cc) {
		return InvalidCountryCodeResult
	}
	region := u.GetRegionCodeForCountryCode(cc)
	meta := u.getMetadataForRegionOrCallingCode(cc, region)
	if meta == nil {
		return InvalidCountryCodeResult
	}
	return u.testNumberLengthAgainstPattern(meta.GeneralDescPossible, nsn)
}

// IsPossibleNumber is a convenience wrapper reporting only whether the
// number's length is plausible.
func (u *Util) IsPossibleNumber(pn *PhoneNumber) bool {
	return u.IsPossibleNumberWithReason(pn) == IsPossible
}
