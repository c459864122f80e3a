package phonenumber

// PhoneNumberType is the closed set of number categories a Classifier can
// assign to a parsed number.
type PhoneNumberType int

const (
	FixedLine PhoneNumberType = iota
	Mobile
	// FixedLineOrMobile covers regions (e.g. the USA) where fixed-line and
	// mobile numbers cannot be told apart by pattern alone.
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	VOIP
	PersonalNumber
	Pager
	UAN
	Voicemail
	// UnknownType marks a number that does not fit any pattern known for
	// its region.
	UnknownType
)

func (t PhoneNumberType) String() string {
	switch t {
	case FixedLine:
		return "FIXED_LINE"
	case Mobile:
		return "MOBILE"
	case FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TollFree:
		return "TOLL_FREE"
	case PremiumRate:
		return "PREMIUM_RATE"
	case SharedCost:
		return "SHARED_COST"
	case VOIP:
		return "VOIP"
	case PersonalNumber:
		return "PERSONAL_NUMBER"
	case Pager:
		return "PAGER"
	case UAN:
		return "UAN"
	case Voicemail:
		return "VOICEMAIL"
	default:
		return "UNKNOWN"
	}
}

// ValidationResult is the outcome of a possible-number length check.
type ValidationResult int

const (
	IsPossible ValidationResult = iota
	InvalidCountryCodeResult
	TooShort
	TooLongResult
)

func (r ValidationResult) String() string {
	switch r {
	case IsPossible:
		return "IS_POSSIBLE"
	case InvalidCountryCodeResult:
		return "INVALID_COUNTRY_CODE"
	case TooShort:
		return "TOO_SHORT"
	case TooLongResult:
		return "TOO_LONG"
	default:
		return "UNKNOWN"
	}
}

// CountryCodeSource records how the country calling code was determined
// while parsing.
type CountryCodeSource int

const (
	FromNumberWithPlusSign CountryCodeSource = iota
	FromNumberWithIDD
	FromNumberWithoutPlusSign
	FromDefaultCountry
)

func (s CountryCodeSource) String() string {
	switch s {
	case FromNumberWithPlusSign:
		return "FROM_NUMBER_WITH_PLUS_SIGN"
	case FromNumberWithIDD:
		return "FROM_NUMBER_WITH_IDD"
	case FromNumberWithoutPlusSign:
		return "FROM_NUMBER_WITHOUT_PLUS_SIGN"
	case FromDefaultCountry:
		return "FROM_DEFAULT_COUNTRY"
	default:
		return "UNKNOWN"
	}
}

// RegionCodeForNonGeoEntity is the sentinel region for calling codes not
// tied to a single country, e.g. 800 (international toll free) or 808
// (international shared cost).
const RegionCodeForNonGeoEntity = "001"

// UnknownRegion is returned when no region can be resolved for a number.
const UnknownRegion = "ZZ"

const (
	minLengthForNSN = 2
	// MaxLengthForNSN is 17, not the ITU-recommended 15: longer numbers
	// have been observed in the wild (e.g. Germany).
	maxLengthForNSN       = 17
	maxLengthCountryCode  = 3
	maxInputStringLength  = 250
	nanpaCountryCode      = 1
	defaultRegexCacheSize = 100
)

// PhoneNumber is the canonical parsed representation of a phone number.
// Leading zeros in the national significant number are not represented in
// NationalNumber (which is numeric); they are carried out of band via
// ItalianLeadingZero / NumberOfLeadingZeros.
type PhoneNumber struct {
	CountryCode           int
	NationalNumber        uint64
	ItalianLeadingZero    bool
	NumberOfLeadingZeros  int
	RawInput              string
	CountryCodeSource     CountryCodeSource
	hasCountryCodeSource  bool
}

func newPhoneNumber() *PhoneNumber {
	return &PhoneNumber{NumberOfLeadingZeros: 1}
}

func (pn *PhoneNumber) clearCountryCodeSource() {
	pn.CountryCodeSource = FromNumberWithPlusSign
	pn.hasCountryCodeSource = false
}

func (pn *PhoneNumber) setCountryCodeSource(src CountryCodeSource) {
	pn.CountryCodeSource = src
	pn.hasCountryCodeSource = true
}

// PhoneMetadata holds the decoded numbering-plan rules for one region or
// non-geographical calling code. All regex fields have already been
// expanded from the mini-language stored in the metadata blob.
type PhoneMetadata struct {
	ID string

	GeneralDesc         string
	GeneralDescPossible string
	FixedLine           string
	Mobile              string
	TollFree            string
	PremiumRate         string
	SharedCost          string
	PersonalNumber      string
	VOIP                string
	Pager               string
	UAN                 string
	Voicemail           string

	InternationalPrefix string
	LeadingDigits       string

	CountryCode                    int
	SameMobileAndFixedLinePattern  bool
	MainCountryForCode             bool
	LeadingZeroPossible            bool
	MobileNumberPortableRegion     bool
}

func (m *PhoneMetadata) descForType(t PhoneNumberType) string {
	switch t {
	case PremiumRate:
		return m.PremiumRate
	case TollFree:
		return m.TollFree
	case Mobile:
		return m.Mobile
	case FixedLine, FixedLineOrMobile:
		return m.FixedLine
	case SharedCost:
		return m.SharedCost
	case VOIP:
		return m.VOIP
	case PersonalNumber:
		return m.PersonalNumber
	case Pager:
		return m.Pager
	case UAN:
		return m.UAN
	case Voicemail:
		return m.Voicemail
	default:
		return m.GeneralDesc
	}
}
