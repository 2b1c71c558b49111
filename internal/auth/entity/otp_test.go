package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPKeys(t *testing.T) {
	assert.Equal(t, "otp_994501234567", OTPKey("994501234567"))
	assert.Equal(t, "otp_cooldown_994501234567", OTPCooldownKey("994501234567"))
	assert.Equal(t, "otp_attempts_994501234567", OTPAttemptsKey("994501234567"))
}

func TestGenerateOTPCode(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := GenerateOTPCode(length)
		require.NoError(t, err)
		require.Len(t, code, length)

		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code=%q", code)
		}
	}
}

func TestGenerateOTPCodeDefaultsLength(t *testing.T) {
	code, err := GenerateOTPCode(0)
	require.NoError(t, err)
	require.Len(t, code, 6)
}
