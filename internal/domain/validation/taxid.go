// Package validation holds the pure checks a party record must pass before it
// is stored: tax identifier checksums, field formats and the rule table that
// runs them all and collects every failure.
package validation

import (
	"strings"

	"agenda/internal/domain/entity"
)

// Digits strips everything but ASCII digits. It is idempotent, so formatted and
// bare representations of the same identifier normalize to the same string.
func Digits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, raw)
}

// ValidTaxID checks raw against the checksum rule of the given kind.
func ValidTaxID(kind entity.PartyKind, raw string) bool {
	switch kind {
	case entity.PartyKindIndividual:
		return ValidIndividualTaxID(raw)
	case entity.PartyKindOrganization:
		return ValidOrganizationTaxID(raw)
	default:
		return false
	}
}

// ValidIndividualTaxID validates a CPF. Both check digits use descending
// weights (10..2, then 11..2) over the digits that precede them.
func ValidIndividualTaxID(raw string) bool {
	d := Digits(raw)
	if len(d) != 11 || repeatedDigit(d) {
		return false
	}

	return individualCheckDigit(d[:9]) == d[9] && individualCheckDigit(d[:10]) == d[10]
}

// ValidOrganizationTaxID validates a CNPJ. Weights cycle from the start weight
// down to 2 and wrap to 9: 5 for the first check digit, 6 for the second.
func ValidOrganizationTaxID(raw string) bool {
	d := Digits(raw)
	if len(d) != 14 || repeatedDigit(d) {
		return false
	}

	return organizationCheckDigit(d[:12], 5) == d[12] && organizationCheckDigit(d[:13], 6) == d[13]
}

func individualCheckDigit(digits string) byte {
	sum := 0
	weight := len(digits) + 1
	for i := range len(digits) {
		sum += int(digits[i]-'0') * weight
		weight--
	}

	return mod11(sum)
}

func organizationCheckDigit(digits string, weight int) byte {
	sum := 0
	for i := range len(digits) {
		sum += int(digits[i]-'0') * weight
		if weight == 2 {
			weight = 9
		} else {
			weight--
		}
	}

	return mod11(sum)
}

// mod11 returns the check digit as an ASCII byte.
func mod11(sum int) byte {
	r := sum % 11
	if r < 2 {
		return '0'
	}

	return byte('0' + 11 - r)
}

func repeatedDigit(d string) bool {
	return strings.Count(d, d[:1]) == len(d)
}
