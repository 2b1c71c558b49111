package inbound

type UserResponse struct {
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
}

type ProfileUpdateRequest struct {
	PhoneNumber *string `json:"phone_number"`
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
}
