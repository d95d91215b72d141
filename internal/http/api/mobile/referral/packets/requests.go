package packets

// body for redeeming another user's code
type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}
