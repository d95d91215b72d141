package packets

type ProfileResponse struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	City      string  `json:"city"`
	DeviceID  *string `json:"device_id"`
	IsPremium bool    `json:"is_premium"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
