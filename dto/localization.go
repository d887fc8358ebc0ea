package dto

import (
	"time"

	"github.com/lac-hong-legacy/name_api/model"
)

type CreateLocalizationRequest struct {
	OriginalName     string  `json:"original_name" validate:"required,notblank,min=1,max=100" example:"Emma"`
	TargetLanguage   string  `json:"target_language" validate:"required,oneof=chinese japanese" example:"chinese"`
	GenderPreference string  `json:"gender_preference" validate:"required,oneof=male female neutral any" example:"female"`
	OutputFormat     string  `json:"output_format" validate:"required,oneof=native romanization both" example:"both"`
	Tone             string  `json:"tone" validate:"required,oneof=formal casual traditional modern" example:"modern"`
	UserID           *string `json:"user_id,omitempty" validate:"omitempty,min=1,max=255"`
}

func (c CreateLocalizationRequest) Validate() error {
	return GetValidator().Struct(c)
}

// GenerationInput is what a variant generator sees of a request.
type GenerationInput struct {
	OriginalName     string
	TargetLanguage   string
	GenderPreference string
	Tone             string
}

type VariantDraft struct {
	VariantType     string  `json:"variant_type" validate:"required,oneof=short medium long"`
	NativeScript    string  `json:"native_script" validate:"required,notblank"`
	Romanization    string  `json:"romanization" validate:"required,notblank"`
	Meaning         string  `json:"meaning" validate:"required,notblank"`
	Pronunciation   string  `json:"pronunciation" validate:"required,notblank"`
	CulturalNotes   string  `json:"cultural_notes" validate:"required,notblank"`
	ConfidenceScore float64 `json:"confidence_score" validate:"gte=0,lte=1"`
}

func (d VariantDraft) Validate() error {
	return GetValidator().Struct(d)
}

type VariantResponse struct {
	ID              string    `json:"id"`
	RequestID       string    `json:"request_id"`
	VariantType     string    `json:"variant_type" example:"short"`
	NativeScript    string    `json:"native_script" example:"艾美"`
	Romanization    string    `json:"romanization" example:"Ài Měi"`
	Meaning         string    `json:"meaning"`
	Pronunciation   string    `json:"pronunciation"`
	CulturalNotes   string    `json:"cultural_notes"`
	ConfidenceScore float64   `json:"confidence_score" example:"0.95"`
	CreatedAt       time.Time `json:"created_at"`
}

type LocalizationResponse struct {
	ID               string            `json:"id"`
	OriginalName     string            `json:"original_name"`
	TargetLanguage   string            `json:"target_language"`
	GenderPreference string            `json:"gender_preference"`
	OutputFormat     string            `json:"output_format"`
	Tone             string            `json:"tone"`
	UserID           *string           `json:"user_id"`
	CreatedAt        time.Time         `json:"created_at"`
	Variants         []VariantResponse `json:"variants"`
}

func NewLocalizationResponse(request *model.LocalizationRequest) LocalizationResponse {
	variants := make([]VariantResponse, 0, len(request.Variants))
	for _, v := range request.Variants {
		variants = append(variants, VariantResponse{
			ID:              v.ID,
			RequestID:       v.RequestID,
			VariantType:     v.VariantType,
			NativeScript:    v.NativeScript,
			Romanization:    v.Romanization,
			Meaning:         v.Meaning,
			Pronunciation:   v.Pronunciation,
			CulturalNotes:   v.CulturalNotes,
			ConfidenceScore: v.ConfidenceScore,
			CreatedAt:       v.CreatedAt,
		})
	}

	return LocalizationResponse{
		ID:               request.ID,
		OriginalName:     request.OriginalName,
		TargetLanguage:   request.TargetLanguage,
		GenderPreference: request.GenderPreference,
		OutputFormat:     request.OutputFormat,
		Tone:             request.Tone,
		UserID:           request.UserID,
		CreatedAt:        request.CreatedAt,
		Variants:         variants,
	}
}

// Redacted returns a copy without the requesting user's identity.
func (r LocalizationResponse) Redacted() LocalizationResponse {
	r.UserID = nil
	return r
}
