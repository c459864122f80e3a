// Package transport holds the request/response DTOs for the phone number
// bounded context's HTTP surface.
package transport

// ParseRequest is the body of POST /numbers/parse.
type ParseRequest struct {
	Number        string `json:"number" binding:"required"`
	DefaultRegion string `json:"default_region"`
	KeepRaw       bool   `json:"keep_raw"`
}

// PhoneNumberResponse mirrors phonenumber.PhoneNumber for the wire.
type PhoneNumberResponse struct {
	CountryCode           int    `json:"country_code"`
	NationalSignificant   string `json:"national_significant_number"`
	ItalianLeadingZero    bool   `json:"italian_leading_zero,omitempty"`
	CountryCodeSource     string `json:"country_code_source"`
	RawInput              string `json:"raw_input,omitempty"`
	E164                  string `json:"e164"`
	Region                string `json:"region"`
	Valid                 bool   `json:"valid"`
	Type                  string `json:"type"`
	Geographical          bool   `json:"geographical"`
}

// ParseErrorResponse reports a phonenumber.Error's closed Kind alongside
// its message.
type ParseErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ValidateResponse is the body of GET /numbers/validate.
type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Possible bool   `json:"possible"`
	Reason   string `json:"reason"`
}

// NumberTypeResponse is the body of GET /numbers/:e164/type.
type NumberTypeResponse struct {
	Type         string `json:"type"`
	Geographical bool   `json:"geographical"`
	Region       string `json:"region"`
}

// RegionsResponse lists region codes, e.g. the supported set or a
// calling code's region list.
type RegionsResponse struct {
	Regions []string `json:"regions"`
}
