package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"994501234567", "994501234567"},
		{"+994501234567", "994501234567"},
		{"+994 50-123-45-67", "994501234567"},
		{"  994501234567  ", "994501234567"},
		{"994 50 123 45 67", "994501234567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.raw), "raw=%q", tt.raw)
	}
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("994501234567"))

	tests := []string{
		"",
		"50123456",
		"79991234567",
		"99450123456",    // one digit short
		"9945012345678",  // one digit long
		"+994501234567",  // not normalized
		"994 501234567",  // not normalized
		"994abc1234567",
	}

	for _, phone := range tests {
		err := ValidatePhone(phone)
		assert.Error(t, err, "phone=%q", phone)
		if err != nil {
			assert.Equal(t,
				"Invalid phone number: "+phone+". It must be in the format 994XXXXXXXXX.",
				err.Error())
		}
	}
}
