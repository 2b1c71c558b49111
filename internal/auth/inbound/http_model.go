package inbound

type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type SendOTPResponse struct {
	Message string `json:"message"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTPCode     string `json:"otp_code"`
}

type VerifyOTPResponse struct {
	Detail  string `json:"detail"`
	UserID  int64  `json:"user_id"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshTokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
