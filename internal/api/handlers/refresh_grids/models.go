package refresh_grids

// RefreshRequest HTTP request model
type RefreshRequest struct {
	Reason string `json:"reason" validate:"required,oneof=visibility navigation payment_completed pricing_changed"`
}

// RefreshResponse HTTP response model
type RefreshResponse struct {
	Reason   string `json:"reason"`
	Accepted bool   `json:"accepted"`
}
