package phonenumber

import (
	"io"
	"log/slog"
)

// Util carries out phone number parsing, validation and classification.
// It is loaded once with metadata for a set of regions plus the static
// calling-code table and is safe for concurrent use afterward; nothing
// about it is a hidden process-wide singleton — construct one with New
// and pass it around like any other collaborator.
type Util struct {
	store *MetadataStore

	callingCodeToRegions map[int][]string
	nanpaRegions         map[string]struct{}
	supportedRegions     map[string]struct{}
	nonGeoCallingCodes   map[int]struct{}

	regexCache *RegexCache
	log        *slog.Logger
}

// New builds a Util from a metadata byte stream and the externally
// supplied calling-code-to-region-codes table. The metadata stream is not
// read until the first parse/classify call touches a region backed by it.
// callingCodeToRegions must list, for every calling code that has more
// than one region, the "main" region first; a calling code whose sole
// region is RegionCodeForNonGeoEntity is treated as non-geographical.
func New(metadata io.Reader, callingCodeToRegions map[int][]string) *Util {
	return NewWithLogger(metadata, callingCodeToRegions, nil)
}

// NewWithLogger is like New but lets callers supply a structured logger
// for informational and warning conditions (a number whose calling code
// is not in the table, a region code unknown to GetCountryCodeForRegion,
// a calling code mapped to both "001" and real regions). A nil logger
// discards these.
func NewWithLogger(metadata io.Reader, callingCodeToRegions map[int][]string, log *slog.Logger) *Util {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	u := &Util{
		store:                NewMetadataStore(metadata),
		callingCodeToRegions: callingCodeToRegions,
		nanpaRegions:         make(map[string]struct{}),
		supportedRegions:     make(map[string]struct{}),
		nonGeoCallingCodes:   make(map[int]struct{}),
		regexCache:           NewRegexCache(defaultRegexCacheSize),
		log:                  log,
	}
	for cc, regions := range callingCodeToRegions {
		if len(regions) == 1 && regions[0] == RegionCodeForNonGeoEntity {
			u.nonGeoCallingCodes[cc] = struct{}{}
			continue
		}
		for _, r := range regions {
			u.supportedRegions[r] = struct{}{}
		}
	}
	if _, ok := u.supportedRegions[RegionCodeForNonGeoEntity]; ok {
		delete(u.supportedRegions, RegionCodeForNonGeoEntity)
		u.log.Warn("invalid metadata: country calling code mapped to non-geo entity and specific regions")
	}
	for _, r := range callingCodeToRegions[nanpaCountryCode] {
		u.nanpaRegions[r] = struct{}{}
	}
	return u
}

// GetSupportedRegions returns the set of region codes the store has
// calling-code table entries for (excluding the "001" non-geo sentinel).
func (u *Util) GetSupportedRegions() map[string]struct{} {
	out := make(map[string]struct{}, len(u.supportedRegions))
	for r := range u.supportedRegions {
		out[r] = struct{}{}
	}
	return out
}

// GetSupportedGlobalNetworkCallingCodes returns the set of non-geographical
// calling codes (e.g. 800, 808) the table has entries for.
func (u *Util) GetSupportedGlobalNetworkCallingCodes() map[int]struct{} {
	out := make(map[int]struct{}, len(u.nonGeoCallingCodes))
	for c := range u.nonGeoCallingCodes {
		out[c] = struct{}{}
	}
	return out
}

// NANPARegions returns the set of regions sharing NANPA calling code 1,
// e.g. "US", "CA", "BS". Not part of the original public surface; added
// per the source's retained nanpaRegions field.
func (u *Util) NANPARegions() map[string]struct{} {
	out := make(map[string]struct{}, len(u.nanpaRegions))
	for r := range u.nanpaRegions {
		out[r] = struct{}{}
	}
	return out
}

func (u *Util) isValidRegionCode(region string) bool {
	if region == "" {
		return false
	}
	_, ok := u.supportedRegions[region]
	return ok
}

func (u *Util) hasValidCountryCallingCode(cc int) bool {
	_, ok := u.callingCodeToRegions[cc]
	return ok
}

func (u *Util) getMetadataForRegion(region string) *PhoneMetadata {
	if !u.isValidRegionCode(region) {
		return nil
	}
	m, err := u.store.GetMetadataForRegion(region)
	if err != nil {
		panic(err) // fatal per §7: metadata decode errors are not parse errors
	}
	return m
}

func (u *Util) getMetadataForNonGeographicalRegion(cc int) *PhoneMetadata {
	if _, ok := u.callingCodeToRegions[cc]; !ok {
		return nil
	}
	m, err := u.store.GetMetadataForNonGeographicalRegion(cc)
	if err != nil {
		panic(err)
	}
	return m
}

func (u *Util) getMetadataForRegionOrCallingCode(cc int, region string) *PhoneMetadata {
	if region == RegionCodeForNonGeoEntity {
		return u.getMetadataForNonGeographicalRegion(cc)
	}
	return u.getMetadataForRegion(region)
}

// GetRegionCodeForCountryCode returns the "main" region for a calling
// code, or UnknownRegion if the calling code has no metadata.
func (u *Util) GetRegionCodeForCountryCode(cc int) string {
	regions, ok := u.callingCodeToRegions[cc]
	if !ok || len(regions) == 0 {
		return UnknownRegion
	}
	return regions[0]
}

// GetRegionCodesForCountryCode returns every region sharing a calling
// code, main region first, or an empty slice if the code is unknown.
func (u *Util) GetRegionCodesForCountryCode(cc int) []string {
	regions, ok := u.callingCodeToRegions[cc]
	if !ok {
		return nil
	}
	out := make([]string, len(regions))
	copy(out, regions)
	return out
}

// GetCountryCodeForRegion returns the calling code for a region, or 0 if
// the region is unknown (logged).
func (u *Util) GetCountryCodeForRegion(region string) int {
	if !u.isValidRegionCode(region) {
		u.log.Warn("invalid or missing region code", "region", region)
		return 0
	}
	return u.countryCodeForValidRegion(region)
}

func (u *Util) countryCodeForValidRegion(region string) int {
	m := u.getMetadataForRegion(region)
	if m == nil {
		return 0
	}
	return m.CountryCode
}
