package dto

import "time"

type AddFavoriteRequest struct {
	UserID    string `json:"user_id" validate:"required,notblank,max=255"`
	RequestID string `json:"request_id" validate:"required,notblank"`
	VariantID string `json:"variant_id" validate:"required,notblank"`
}

func (a AddFavoriteRequest) Validate() error {
	return GetValidator().Struct(a)
}

type RemoveFavoriteRequest struct {
	UserID     string `json:"user_id" validate:"required,notblank,max=255"`
	FavoriteID string `json:"favorite_id" validate:"required,notblank"`
}

func (r RemoveFavoriteRequest) Validate() error {
	return GetValidator().Struct(r)
}

type FavoriteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RequestID string    `json:"request_id"`
	VariantID string    `json:"variant_id"`
	CreatedAt time.Time `json:"created_at"`
}

type RemoveFavoriteResponse struct {
	Removed bool `json:"removed"`
}
