package phonenumber

import "strings"

// Symbol codes for the 5-bit alphabet, values as normal (non-first)
// symbols. See §4.3 of the metadata format.
const (
	symTerminator   byte = 0
	symD            byte = 11
	symOpenSquare   byte = 12
	symCloseSquare  byte = 13
	symOpenBracket  byte = 14
	symCloseBracket byte = 15
	symChoice       byte = 16
	symComma        byte = 17
	symDash         byte = 18
	symBackslash    byte = 19
	symOption       byte = 20
	symSemicolon    byte = 21
	symSeparator    byte = 31
)

// decodeTable maps normal-symbol values 11..21 to their character.
var decodeTable = [...]byte{
	'd', '[', ']', '(', ')', '|', ',', '-', '\\', '?', ';',
}

// decodeSymbol renders one 5-bit symbol as a character, or 0 if the
// symbol carries no printable character (the "unused" range 22..30).
// When first is true, the symbol encodes a field-code letter instead of
// a literal character.
func decodeSymbol(first bool, v byte) byte {
	if first {
		return 'A' + v
	}
	if v >= 1 && v <= 10 {
		return '0' + v - 1
	}
	if v == symSeparator {
		return ';'
	}
	if v == symTerminator {
		return '\n'
	}
	pos := int(v) - int(symD)
	if pos >= 0 && pos < len(decodeTable) {
		return decodeTable[pos]
	}
	return 0
}

// symbolReader extracts successive 5-bit symbols from a byte buffer,
// starting at a given symbol offset, MSB-first within each byte, mirroring
// the original bit-packing exactly: symbol i occupies bits [5i, 5i+5) from
// the MSB of byte 0.
type symbolReader struct {
	buf     []byte
	bytePos int
	bitPos  int // 0..7, offset from the MSB of buf[bytePos]
}

func newSymbolReader(buf []byte, symbolOffset int) *symbolReader {
	bitOffset := symbolOffset * 5
	return &symbolReader{
		buf:     buf,
		bytePos: bitOffset / 8,
		bitPos:  bitOffset % 8,
	}
}

// next returns the next 5-bit symbol, or ok=false if the buffer is
// exhausted before a full symbol could be read.
func (r *symbolReader) next() (byte, bool) {
	if r.bytePos >= len(r.buf) {
		return 0, false
	}
	var data byte
	if r.bitPos <= 3 {
		data = (r.buf[r.bytePos] >> uint(3-r.bitPos)) & 31
		r.bitPos += 5
	} else {
		if r.bitPos < 8 {
			data = (r.buf[r.bytePos] << uint(r.bitPos-3)) & 31
		}
		r.bytePos++
		if r.bytePos >= len(r.buf) {
			return 0, false
		}
		data |= (r.buf[r.bytePos] >> uint(8-r.bitPos+3)) & 31
		r.bitPos -= 3
	}
	return data, true
}

// decodeRecordChars decodes the full character record for one metadata
// entry starting at the given symbol offset: a sequence of
// "<field-letter><field-value>" groups separated by the record-separator
// symbol (31, itself decoding to ';'), terminated by symbol 0 (decoding to
// '\n'). It mirrors Utils.getCountryRecord + decodeProcess exactly,
// including the fact that both the record separator (31) and the escaped
// literal semicolon (21) decode to the same ';' character; the two are
// told apart later while scanning for field boundaries by checking for a
// preceding backslash.
func decodeRecordChars(buf []byte, symbolOffset int) (string, error) {
	reader := newSymbolReader(buf, symbolOffset)
	var sb strings.Builder
	first := true
	for {
		v, ok := reader.next()
		if !ok {
			return "", newMetadataError("unexpected end of buffer while decoding record at symbol %d", symbolOffset)
		}
		chr := decodeSymbol(first, v)
		if chr != 0 {
			sb.WriteByte(chr)
		}
		if first {
			first = false
			continue
		}
		if v == symTerminator {
			break
		}
		if v == symSeparator {
			first = true
		}
	}
	return sb.String(), nil
}

// fieldSlot identifies which PhoneMetadata field a decoded field code maps
// to, per §4.3's field-code table.
type fieldSlot int

const (
	slotGeneralDescPossible fieldSlot = iota
	slotGeneralDesc
	slotFixedLine
	slotMobile
	slotTollFree
	slotPremiumRate
	slotSharedCost
	slotPersonalNumber
	slotVOIP
	slotInternationalPrefix
	slotPager
	slotLeadingDigits
	slotUAN
	slotVoicemail
)

var fieldCodeToSlot = map[int]fieldSlot{
	0:  slotGeneralDescPossible,
	1:  slotGeneralDesc,
	2:  slotFixedLine,
	3:  slotMobile,
	4:  slotTollFree,
	5:  slotPremiumRate,
	6:  slotSharedCost,
	7:  slotPersonalNumber,
	8:  slotVOIP,
	11: slotInternationalPrefix,
	21: slotPager,
	23: slotLeadingDigits,
	25: slotUAN,
	28: slotVoicemail,
}

func setMetadataField(m *PhoneMetadata, code int, regex string) {
	slot, ok := fieldCodeToSlot[code]
	if !ok {
		// Unknown field codes are ignored without logging; they are not fatal.
		return
	}
	switch slot {
	case slotGeneralDescPossible:
		m.GeneralDescPossible = regex
	case slotGeneralDesc:
		m.GeneralDesc = regex
	case slotFixedLine:
		m.FixedLine = regex
	case slotMobile:
		m.Mobile = regex
	case slotTollFree:
		m.TollFree = regex
	case slotPremiumRate:
		m.PremiumRate = regex
	case slotSharedCost:
		m.SharedCost = regex
	case slotPersonalNumber:
		m.PersonalNumber = regex
	case slotVOIP:
		m.VOIP = regex
	case slotInternationalPrefix:
		m.InternationalPrefix = regex
	case slotPager:
		m.Pager = regex
	case slotLeadingDigits:
		m.LeadingDigits = regex
	case slotUAN:
		m.UAN = regex
	case slotVoicemail:
		m.Voicemail = regex
	}
}

// decodeMetadataRecord turns the raw decoded record string ("<letter><val>;
// <letter><val>;...\n") into a populated PhoneMetadata, expanding each
// field's regex mini-language along the way.
func decodeMetadataRecord(record string) (*PhoneMetadata, error) {
	m := &PhoneMetadata{}
	recLen := len(record)
	fieldCode := -1
	lastStart := -1
	start := true
	completed := false

	for i := 0; i < recLen; i++ {
		if start {
			fieldCode = int(record[i]) - 'A'
			start = false
			lastStart = i + 1
			continue
		}
		c := record[i]
		if c == ';' || c == '\n' {
			if c == ';' && i-1 >= lastStart && record[i-1] == '\\' {
				// Escaped ';' inside the field value, not a boundary.
				continue
			}
			setMetadataField(m, fieldCode, expandRegex(record[lastStart:i]))
			if c == '\n' {
				completed = true
				break
			}
			start = true
		}
	}
	if !completed {
		return nil, newMetadataError("incomplete metadata record")
	}
	return m, nil
}

// expandRegex applies the metadata mini-language to a decoded field value,
// producing a standard regex string:
//   - '(' becomes '(?:' (non-capturing) unless escaped, in which case it
//     becomes a literal '('.
//   - 'd' becomes '\d'; an unescaped run of decimal digits (with an
//     optional comma) immediately following 'd' is wrapped in '{...}',
//     e.g. "d3" -> "\d{3}", "d3,5" -> "\d{3,5}".
//   - '\;' becomes ';' (the field terminator is an unescaped ';').
//   - '\\' becomes '\'; any other escaped character keeps its
//     backslash.
func expandRegex(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 4)

	inCurly := false
	afterComma := false
	afterD := false
	escape := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' {
			escape = true
			continue
		}
		if c >= '0' && c <= '9' {
			if afterD {
				if escape {
					sb.WriteByte('\\')
					escape = false
				}
				sb.WriteByte('{')
				afterD = false
				inCurly = true
			}
		} else {
			if afterD {
				afterD = false
			}
			if inCurly {
				if !afterComma && c == ',' {
					afterComma = true
				} else {
					if c != '}' {
						if escape {
							sb.WriteByte('\\')
							escape = false
						}
						sb.WriteByte('}')
					}
					inCurly = false
					afterComma = false
				}
			}
		}

		switch {
		case c == '(':
			if escape {
				sb.WriteByte('(')
				escape = false
			} else {
				sb.WriteString("(?:")
			}
		case c == 'd':
			sb.WriteString(`\d`)
			if !escape {
				afterD = true
			} else {
				escape = false
			}
		default:
			if escape {
				if c != '\\' && c != ';' {
					sb.WriteByte('\\')
				}
				escape = false
			}
			sb.WriteByte(c)
		}
	}
	if escape {
		sb.WriteByte('\\')
	}
	if inCurly {
		sb.WriteByte('}')
	}
	return sb.String()
}
