package entity

import (
	"crypto/rand"
	"math/big"
)

// Cache key prefixes for the OTP flow. All keys are scoped per phone number.
const (
	otpKeyPrefix      = "otp_"
	cooldownKeyPrefix = "otp_cooldown_"
	attemptsKeyPrefix = "otp_attempts_"
)

// OTPKey returns the cache key holding the active code for phone.
func OTPKey(phone string) string {
	return otpKeyPrefix + phone
}

// OTPCooldownKey returns the cache key guarding the resend cooldown for phone.
func OTPCooldownKey(phone string) string {
	return cooldownKeyPrefix + phone
}

// OTPAttemptsKey returns the cache key counting sends for phone inside the
// rolling quota window.
func OTPAttemptsKey(phone string) string {
	return attemptsKeyPrefix + phone
}

// GenerateOTPCode returns a random numeric code of the given length.
// Leading zeros are allowed, so the code is always exactly length digits.
func GenerateOTPCode(length int) (string, error) {
	if length < 1 {
		length = 6
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
