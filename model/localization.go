package model

import "time"

// LocalizationRequest is immutable once created and owns its variants.
type LocalizationRequest struct {
	ID               string        `json:"id" gorm:"primaryKey;type:text;not null"`
	OriginalName     string        `json:"original_name" gorm:"not null;size:100"`
	TargetLanguage   string        `json:"target_language" gorm:"not null;size:20"`
	GenderPreference string        `json:"gender_preference" gorm:"not null;size:20"`
	OutputFormat     string        `json:"output_format" gorm:"not null;size:20"`
	Tone             string        `json:"tone" gorm:"not null;size:20"`
	UserID           *string       `json:"user_id" gorm:"index;size:255"`
	CreatedAt        time.Time     `json:"created_at" gorm:"not null;index"`
	Variants         []NameVariant `json:"variants,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

type NameVariant struct {
	ID              string    `json:"id" gorm:"primaryKey;type:text;not null"`
	RequestID       string    `json:"request_id" gorm:"type:text;not null;index"`
	VariantType     string    `json:"variant_type" gorm:"not null;size:10"`
	NativeScript    string    `json:"native_script" gorm:"type:text;not null"`
	Romanization    string    `json:"romanization" gorm:"type:text;not null"`
	Meaning         string    `json:"meaning" gorm:"type:text;not null"`
	Pronunciation   string    `json:"pronunciation" gorm:"type:text;not null"`
	CulturalNotes   string    `json:"cultural_notes" gorm:"type:text;not null"`
	ConfidenceScore float64   `json:"confidence_score" gorm:"type:decimal(3,2);not null"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null"`
}

// UserFavorite references, never owns, a request and one of its variants.
type UserFavorite struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	UserID    string    `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_user_favorite_unique,priority:1;index"`
	RequestID string    `json:"request_id" gorm:"type:text;not null;uniqueIndex:idx_user_favorite_unique,priority:2"`
	VariantID string    `json:"variant_id" gorm:"type:text;not null;uniqueIndex:idx_user_favorite_unique,priority:3"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`

	Request LocalizationRequest `json:"-" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	Variant NameVariant         `json:"-" gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
}
