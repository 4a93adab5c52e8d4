package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// BirthDateLayout is the only accepted birth date format.
const BirthDateLayout = time.DateOnly

var (
	emailPattern   = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
	addressPattern = regexp.MustCompile(`^.+,\s*\d+\s*-\s*.+$`)
)

// DefaultRegionCodes lists the valid two-digit telephone area prefixes.
var DefaultRegionCodes = []string{
	"11", "12", "13", "14", "15", "16", "17", "18", "19", "21", "22", "24", "27", "28",
	"31", "32", "33", "34", "35", "37", "38", "41", "42", "43", "44", "45", "46", "47",
	"48", "49", "51", "53", "54", "55", "61", "62", "63", "64", "65", "66", "67", "68",
	"69", "71", "73", "74", "75", "77", "79", "81", "82", "83", "84", "85", "86", "87",
	"88", "89", "91", "92", "93", "94", "95", "96", "97", "98", "99",
}

// DefaultDisposableDomains lists e-mail domains refused at registration.
var DefaultDisposableDomains = []string{
	"yopmail.com", "mailinator.com", "tempmail.com", "10minutemail.com",
}

// Validator runs the field checks that depend on configuration: the region
// code whitelist, the disposable domain blocklist and the clock.
type Validator struct {
	regionCodes       map[string]struct{}
	disposableDomains map[string]struct{}
	now               func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegionCodes replaces the region code whitelist. An empty list keeps the default.
func WithRegionCodes(codes []string) Option {
	return func(v *Validator) {
		if len(codes) > 0 {
			v.regionCodes = toSet(codes, false)
		}
	}
}

// WithDisposableDomains replaces the disposable domain blocklist. An empty list keeps the default.
func WithDisposableDomains(domains []string) Option {
	return func(v *Validator) {
		if len(domains) > 0 {
			v.disposableDomains = toSet(domains, true)
		}
	}
}

// WithClock sets the source of "today" for birth date checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New creates a Validator with the default lists and the wall clock.
func New(opts ...Option) *Validator {
	v := &Validator{
		regionCodes:       toSet(DefaultRegionCodes, false),
		disposableDomains: toSet(DefaultDisposableDomains, true),
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// ValidEmail requires a single "@", no whitespace, and a domain outside the blocklist.
func (v *Validator) ValidEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}

	_, domain, _ := strings.Cut(email, "@")
	_, blocked := v.disposableDomains[strings.ToLower(domain)]

	return !blocked
}

// ValidPhone requires 11 digits whose first two are a known region code.
func (v *Validator) ValidPhone(phone string) bool {
	d := Digits(phone)
	if len(d) != 11 {
		return false
	}
	_, ok := v.regionCodes[d[:2]]

	return ok
}

// ValidBirthDate requires a yyyy-mm-dd date that is not after today.
func (v *Validator) ValidBirthDate(date string) bool {
	born, err := ParseBirthDate(date)
	if err != nil {
		return false
	}

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return !born.After(today)
}

// ParseBirthDate parses a birth date in BirthDateLayout as a UTC civil date.
func ParseBirthDate(date string) (time.Time, error) {
	return time.Parse(BirthDateLayout, date)
}

// ValidPostalCode checks the CEP format only: 8 digits, not a single repeated
// digit. Whether the code exists is up to the geocoder.
func ValidPostalCode(postalCode string) bool {
	d := Digits(postalCode)

	return len(d) == 8 && !repeatedDigit(d)
}

// ValidAddress requires "<street>, <number> - <complement>".
func ValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// ValidName requires at least three characters once trimmed, all of them
// letters or whitespace.
func ValidName(name string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 3 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

func toSet(values []string, lower bool) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if lower {
			value = strings.ToLower(value)
		}
		set[value] = struct{}{}
	}

	return set
}
