// Package pix builds static-format BR Code (EMV QR) payloads for PIX payments.
//
// The payload is a sequence of TLV fields, `<id:2><len:2><value>`, terminated by
// a CRC16 field. Generation is pure and offline.
package pix

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	idPayloadFormat       = "00"
	idMerchantAccount     = "26"
	idMerchantCategory    = "52"
	idCurrency            = "53"
	idAmount              = "54"
	idCountry             = "58"
	idMerchantName        = "59"
	idMerchantCity        = "60"
	idAdditionalData      = "62"
	idCRC                 = "63"
	idAccountGUI          = "00"
	idAccountKey          = "01"
	idAdditionalReference = "05"

	payloadFormat  = "01"
	pixDomain      = "br.gov.bcb.pix"
	categoryCode   = "0000"
	currencyBRL    = "986"
	countryBR      = "BR"
	DefaultCity    = "SAO PAULO"
	emptyReference = "***"
	maxNameLength  = 25
	maxCityLength  = 15
	maxRefLength   = 25
	crcFieldPrefix = idCRC + "04"
	maxFieldLength = 99
)

// MaxKeyLength is the longest pay-to key whose merchant account field still
// fits a two-digit length.
const MaxKeyLength = maxFieldLength - (len(idAccountGUI) + 2 + len(pixDomain)) - (len(idAccountKey) + 2)

// Generator renders payment codes. The zero value uses DefaultCity.
type Generator struct {
	city string
}

func NewGenerator(city string) *Generator {
	return &Generator{city: city}
}

// GenerateCode builds the BR Code payload for a charge.
//
// payTo must be non-empty and at most MaxKeyLength bytes, and amount positive;
// these are caller preconditions.
func (g *Generator) GenerateCode(payTo, payeeName string, amount decimal.Decimal, referenceID string) string {
	city := DefaultCity
	if g != nil && strings.TrimSpace(g.city) != "" {
		city = g.city
	}

	var b strings.Builder
	b.WriteString(field(idPayloadFormat, payloadFormat))
	b.WriteString(field(idMerchantAccount, field(idAccountGUI, pixDomain)+field(idAccountKey, payTo)))
	b.WriteString(field(idMerchantCategory, categoryCode))
	b.WriteString(field(idCurrency, currencyBRL))
	b.WriteString(field(idAmount, FormatAmount(amount)))
	b.WriteString(field(idCountry, countryBR))
	b.WriteString(field(idMerchantName, NormalizeName(payeeName, maxNameLength)))
	b.WriteString(field(idMerchantCity, NormalizeName(city, maxCityLength)))
	b.WriteString(field(idAdditionalData, field(idAdditionalReference, NormalizeReference(referenceID))))
	b.WriteString(crcFieldPrefix)

	payload := b.String()
	return payload + crcHex(payload)
}

// FormatAmount renders the amount with exactly two decimals, rounding half away from zero.
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}

// NormalizeName strips diacritics, drops anything outside printable ASCII,
// upper-cases and truncates to maxLen bytes.
func NormalizeName(s string, maxLen int) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	for _, r := range stripped {
		if r >= 0x20 && r < 0x7F {
			b.WriteRune(r)
		}
	}
	out := strings.ToUpper(strings.TrimSpace(b.String()))
	if len(out) > maxLen {
		out = strings.TrimSpace(out[:maxLen])
	}
	return out
}

// NormalizeReference keeps only [A-Za-z0-9] and truncates to 25 characters.
func NormalizeReference(ref string) string {
	var b strings.Builder
	for _, r := range ref {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == maxRefLength {
				break
			}
		}
	}
	if b.Len() == 0 {
		return emptyReference
	}
	return b.String()
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}
