// Package service implements the phone number bounded context's business
// logic, a thin translation layer over the phonenumber engine.
package service

import (
	"sort"
	"strconv"

	"github.com/headuck/gophonelite/phonenumber"
	"github.com/headuck/gophonelite/platform/apperr"
)

// Service exposes the phonenumber engine to the HTTP handler layer,
// mapping the engine's closed error kinds onto apperr kinds.
type Service struct {
	engine *phonenumber.Util
}

// New builds a Service around an already-initialized engine.
func New(engine *phonenumber.Util) *Service {
	return &Service{engine: engine}
}

// Parsed is the fully-resolved view of a phone number this service hands
// back to the handler layer.
type Parsed struct {
	Number       *phonenumber.PhoneNumber
	E164         string
	Region       string
	Valid        bool
	Type         phonenumber.PhoneNumberType
	Geographical bool
}

// Parse parses number against defaultRegion and classifies the result.
func (s *Service) Parse(number, defaultRegion string, keepRaw bool) (Parsed, error) {
	var (
		pn  *phonenumber.PhoneNumber
		err error
	)
	if keepRaw {
		pn, err = s.engine.ParseAndKeepRawInput(number, defaultRegion)
	} else {
		pn, err = s.engine.Parse(number, defaultRegion)
	}
	if err != nil {
		return Parsed{}, mapParseError(err)
	}
	return s.classify(pn), nil
}

func (s *Service) classify(pn *phonenumber.PhoneNumber) Parsed {
	region := s.engine.GetRegionCodeForNumber(pn)
	return Parsed{
		Number:       pn,
		E164:         formatE164(pn),
		Region:       region,
		Valid:        s.engine.IsValidNumber(pn),
		Type:         s.engine.GetNumberType(pn),
		Geographical: s.engine.IsGeographical(pn),
	}
}

// ValidateResult is the outcome of a validate-only check.
type ValidateResult struct {
	Valid    bool
	Possible bool
	Reason   phonenumber.ValidationResult
}

// Validate parses number against region and reports validity and
// possible-length reasoning without erroring on an implausible number.
func (s *Service) Validate(number, region string) (ValidateResult, error) {
	pn, err := s.engine.Parse(number, region)
	if err != nil {
		return ValidateResult{}, mapParseError(err)
	}
	return ValidateResult{
		Valid:    s.engine.IsValidNumber(pn),
		Possible: s.engine.IsPossibleNumber(pn),
		Reason:   s.engine.IsPossibleNumberWithReason(pn),
	}, nil
}

// TypeOf parses an E.164 number and reports its type, geographical flag
// and region.
func (s *Service) TypeOf(e164 string) (Parsed, error) {
	pn, err := s.engine.Parse(e164, phonenumber.UnknownRegion)
	if err != nil {
		return Parsed{}, mapParseError(err)
	}
	return s.classify(pn), nil
}

// SupportedRegions returns every region code the engine has metadata for.
func (s *Service) SupportedRegions() []string {
	return sortedKeys(s.engine.GetSupportedRegions())
}

// NANPARegions returns the region codes sharing NANPA calling code 1.
func (s *Service) NANPARegions() []string {
	return sortedKeys(s.engine.NANPARegions())
}

// RegionsForCallingCode returns every region sharing a calling code, main
// region first.
func (s *Service) RegionsForCallingCode(cc int) []string {
	return s.engine.GetRegionCodesForCountryCode(cc)
}

func formatE164(pn *phonenumber.PhoneNumber) string {
	return "+" + strconv.Itoa(pn.CountryCode) + phonenumber.GetNationalSignificantNumber(pn)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func mapParseError(err error) *apperr.Error {
	pnErr, ok := err.(*phonenumber.Error)
	if !ok {
		return apperr.Internal(err.Error())
	}
	switch pnErr.Kind {
	case phonenumber.NotANumber, phonenumber.InvalidCountryCode:
		return apperr.BadRequest(pnErr.Message).WithDetails(pnErr.Kind.String())
	default:
		return apperr.Validation(pnErr.Message).WithDetails(pnErr.Kind.String())
	}
}
