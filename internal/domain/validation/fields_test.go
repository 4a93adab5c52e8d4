package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 15, 30, 0, 0, time.UTC)
	}
}

func TestValidator_ValidEmail(t *testing.T) {
	v := New()

	tests := []struct {
		email string
		want  bool
	}{
		{email: "maria.silva@example.com", want: true},
		{email: "joao+news@empresa.com.br", want: true},
		{email: "no-at-sign.example.com", want: false},
		{email: "two@@example.com", want: false},
		{email: "with space@example.com", want: false},
		{email: "user@", want: false},
		{email: "@example.com", want: false},
		{email: "someone@yopmail.com", want: false},
		{email: "someone@MAILINATOR.com", want: false},
		{email: "someone@10minutemail.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidEmail(tt.email))
		})
	}
}

func TestValidator_ValidEmail_CustomBlocklist(t *testing.T) {
	v := New(WithDisposableDomains([]string{"Throwaway.io"}))

	assert.False(t, v.ValidEmail("a@throwaway.io"))
	assert.True(t, v.ValidEmail("a@yopmail.com"))
}

func TestValidator_ValidPhone(t *testing.T) {
	v := New()

	tests := []struct {
		phone string
		want  bool
	}{
		{phone: "11987654321", want: true},
		{phone: "(21) 98765-4321", want: true},
		{phone: "10987654321", want: false},
		{phone: "23987654321", want: false},
		{phone: "1198765432", want: false},
		{phone: "119876543210", want: false},
		{phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidPhone(tt.phone))
		})
	}
}

func TestValidator_ValidPhone_CustomRegionCodes(t *testing.T) {
	v := New(WithRegionCodes([]string{"10"}))

	assert.True(t, v.ValidPhone("10987654321"))
	assert.False(t, v.ValidPhone("11987654321"))
}

func TestValidator_ValidBirthDate(t *testing.T) {
	v := New(WithClock(fixedClock(2024, time.March, 15)))

	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "past", date: "1990-05-20", want: true},
		{name: "today", date: "2024-03-15", want: true},
		{name: "tomorrow", date: "2024-03-16", want: false},
		{name: "next year", date: "2025-01-01", want: false},
		{name: "wrong layout", date: "15/03/1990", want: false},
		{name: "impossible date", date: "1990-02-30", want: false},
		{name: "empty", date: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidBirthDate(tt.date))
		})
	}
}

func TestValidPostalCode(t *testing.T) {
	assert.True(t, ValidPostalCode("01310-100"))
	assert.True(t, ValidPostalCode("01310100"))
	assert.False(t, ValidPostalCode("00000-000"))
	assert.False(t, ValidPostalCode("0131010"))
	assert.False(t, ValidPostalCode("013101000"))
	assert.False(t, ValidPostalCode(""))
}

func TestValidAddress(t *testing.T) {
	assert.True(t, ValidAddress("Avenida Paulista, 1000 - Bela Vista"))
	assert.True(t, ValidAddress("Rua A,12-apto 3"))
	assert.False(t, ValidAddress("Avenida Paulista 1000"))
	assert.False(t, ValidAddress("Avenida Paulista, mil - Bela Vista"))
	assert.False(t, ValidAddress("Avenida Paulista, 1000 -"))
	assert.False(t, ValidAddress(""))
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "Ana", want: true},
		{name: "Al", want: false},
		{name: "  Al  ", want: false},
		{name: "José da Silva", want: true},
		{name: "Acme Ltda", want: true},
		{name: "R2D2", want: false},
		{name: "Acme S.A.", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.name))
		})
	}
}
