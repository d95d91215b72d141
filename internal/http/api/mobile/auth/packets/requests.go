package packets

// body for registering
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
	City     string  `json:"city" binding:"required"`
}

// body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
	City  string  `json:"city" binding:"required"`
}

// body for binding the device that receives alarms and publishes headings
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}
