package validation

import (
	"testing"

	"agenda/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidIndividualTaxID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "valid bare", raw: "52998224725", want: true},
		{name: "valid formatted", raw: "529.982.247-25", want: true},
		{name: "valid second sample", raw: "111.444.777-35", want: true},
		{name: "wrong second check digit", raw: "52998224726", want: false},
		{name: "wrong first check digit", raw: "52998224735", want: false},
		{name: "repeated digits", raw: "11111111111", want: false},
		{name: "repeated zeros", raw: "000.000.000-00", want: false},
		{name: "too short", raw: "5299822472", want: false},
		{name: "too long", raw: "529982247250", want: false},
		{name: "empty", raw: "", want: false},
		{name: "letters only", raw: "abcdefghijk", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidIndividualTaxID(tt.raw))
		})
	}
}

func TestValidOrganizationTaxID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "valid bare", raw: "11222333000181", want: true},
		{name: "valid formatted", raw: "11.222.333/0001-81", want: true},
		{name: "valid with leading zero", raw: "04.252.011/0001-10", want: true},
		{name: "wrong second check digit", raw: "11222333000182", want: false},
		{name: "wrong first check digit", raw: "11222333000191", want: false},
		{name: "repeated digits", raw: "11111111111111", want: false},
		{name: "too short", raw: "1122233300018", want: false},
		{name: "individual length", raw: "52998224725", want: false},
		{name: "empty", raw: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidOrganizationTaxID(tt.raw))
		})
	}
}

func TestTaxID_RepeatedDigitsAlwaysRejected(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		assert.False(t, ValidIndividualTaxID(string(repeat(d, 11))), "individual %c", d)
		assert.False(t, ValidOrganizationTaxID(string(repeat(d, 14))), "organization %c", d)
	}
}

// Changing either check digit of a valid identifier to any other value must invalidate it.
func TestTaxID_CheckDigitsAreExact(t *testing.T) {
	for _, tc := range []struct {
		valid string
		check func(string) bool
	}{
		{valid: "52998224725", check: ValidIndividualTaxID},
		{valid: "11144477735", check: ValidIndividualTaxID},
		{valid: "11222333000181", check: ValidOrganizationTaxID},
		{valid: "04252011000110", check: ValidOrganizationTaxID},
	} {
		n := len(tc.valid)
		for _, pos := range []int{n - 2, n - 1} {
			for d := byte('0'); d <= '9'; d++ {
				if d == tc.valid[pos] {
					continue
				}
				mutated := []byte(tc.valid)
				mutated[pos] = d
				assert.False(t, tc.check(string(mutated)), "%s with digit %d set to %c", tc.valid, pos, d)
			}
		}
	}
}

func TestValidTaxID_DispatchesByKind(t *testing.T) {
	assert.True(t, ValidTaxID(entity.PartyKindIndividual, "529.982.247-25"))
	assert.False(t, ValidTaxID(entity.PartyKindOrganization, "529.982.247-25"))
	assert.True(t, ValidTaxID(entity.PartyKindOrganization, "11.222.333/0001-81"))
	assert.False(t, ValidTaxID(entity.PartyKind("other"), "52998224725"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "52998224725", Digits("529.982.247-25"))
	assert.Equal(t, "11222333000181", Digits(" 11.222.333/0001-81 "))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "", Digits(""))

	for _, raw := range []string{"529.982.247-25", "01310-100", "(11) 98765-4321"} {
		once := Digits(raw)
		assert.Equal(t, once, Digits(once), "normalization must be idempotent for %q", raw)
	}
}

func repeat(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}

	return out
}
