package event

const OTPRequestedDestination string = "auth_otp_requested"
const OTPRequestedConsumerNotification string = "auth_otp_requested_notification"

type OTPRequestedMessage struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}
