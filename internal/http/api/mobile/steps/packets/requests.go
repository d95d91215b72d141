package packets

// body for completing the Google Fit OAuth flow
type ConnectRequest struct {
	Code string `json:"code" binding:"required"`
}
