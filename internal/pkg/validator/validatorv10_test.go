package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV10ValidatorAZPhone(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	type payload struct {
		PhoneNumber string `validate:"required,azphone"`
	}

	assert.NoError(t, v.Validate(payload{PhoneNumber: "994501234567"}))

	for _, phone := range []string{"", "50123456", "+994501234567", "99450123456"} {
		err := v.Validate(payload{PhoneNumber: phone})
		require.Error(t, err, "phone=%q", phone)
	}

	err = v.Validate(payload{PhoneNumber: "12345"})
	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t,
		"PhoneNumber must be a valid phone number in 994XXXXXXXXX format",
		verr.Values()["phone_number"])
}

func TestV10ValidatorAlphaSpace(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	type payload struct {
		FullName string `validate:"required,alphaspace"`
	}

	assert.NoError(t, v.Validate(payload{FullName: "Aysel Mammadova"}))
	assert.NoError(t, v.Validate(payload{FullName: "Günel Əliyeva"}))
	assert.Error(t, v.Validate(payload{FullName: "user123"}))
}

func TestV10ValidatorFieldNamesAreSnakeCase(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	type payload struct {
		RefreshToken string `validate:"required"`
	}

	err = v.Validate(payload{})
	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Values(), "refresh_token")
}
