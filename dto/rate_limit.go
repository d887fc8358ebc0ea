package dto

import "time"

type RateLimitCheckRequest struct {
	IPAddress string  `json:"ip_address" validate:"required,ip" example:"203.0.113.7"`
	UserID    *string `json:"user_id,omitempty" validate:"omitempty,min=1,max=255"`
}

func (r RateLimitCheckRequest) Validate() error {
	return GetValidator().Struct(r)
}

type RateLimitInfo struct {
	Allowed   bool      `json:"allowed"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetTime time.Time `json:"reset_time"`
}
