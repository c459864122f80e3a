// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"fmt"
	"strings"

	"github.com/headuck/gophonelite/phonenumber"
)

const defaultRegion = "NL"

var engine *phonenumber.Util

// Init wires the shared engine instance used by the package-level helpers
// below. It must be called once during application startup, before any
// other function in this package is used.
func Init(u *phonenumber.Util) {
	engine = u
}

// NormalizeE164 formats a phone number to E.164. If parsing fails, it
// returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || engine == nil {
		return trimmed
	}

	number, err := engine.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}
	if !engine.IsValidNumber(number) {
		return trimmed
	}
	return formatE164(number)
}

// IsValid reports whether input parses (reading national-format input as
// defaultRegion) to a number that is valid for its own inferred region.
func IsValid(input string) bool {
	if engine == nil {
		return false
	}
	number, err := engine.Parse(strings.TrimSpace(input), defaultRegion)
	if err != nil {
		return false
	}
	return engine.IsValidNumber(number)
}

// NumberType returns the classifier's type string ("MOBILE", "FIXED_LINE",
// ...) for input, or "" if it does not parse.
func NumberType(input string) string {
	if engine == nil {
		return ""
	}
	number, err := engine.Parse(strings.TrimSpace(input), defaultRegion)
	if err != nil {
		return ""
	}
	return engine.GetNumberType(number).String()
}

// RegionOf returns the inferred region code for input, or "" if it does
// not parse.
func RegionOf(input string) string {
	if engine == nil {
		return ""
	}
	number, err := engine.Parse(strings.TrimSpace(input), defaultRegion)
	if err != nil {
		return ""
	}
	return engine.GetRegionCodeForNumber(number)
}

func formatE164(pn *phonenumber.PhoneNumber) string {
	return fmt.Sprintf("+%d%s", pn.CountryCode, phonenumber.GetNationalSignificantNumber(pn))
}
