package dto

import (
	"time"

	"lessoncms_backend/internals/features/cms/lessons/model"

	"gorm.io/datatypes"
)

// AssetVariants: pasangan URL thumbnail per bahasa.
type AssetVariants struct {
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
}

// ============================
// Response DTO
// ============================

type LessonDTO struct {
	LessonID                        string                 `json:"lesson_id"`
	LessonProgramID                 string                 `json:"lesson_program_id"`
	LessonTermID                    *string                `json:"lesson_term_id,omitempty"`
	LessonTitle                     string                 `json:"lesson_title"`
	LessonNumber                    int                    `json:"lesson_number"`
	LessonContentType               string                 `json:"lesson_content_type"`
	LessonDurationMS                int                    `json:"lesson_duration_ms"`
	LessonIsPaid                    bool                   `json:"lesson_is_paid"`
	LessonContentLanguagePrimary    string                 `json:"lesson_content_language_primary"`
	LessonContentLanguagesAvailable []string               `json:"lesson_content_languages_available"`
	LessonContentURLsByLanguage     map[string]interface{} `json:"lesson_content_urls_by_language,omitempty"`
	LessonSubtitleURLsByLanguage    map[string]interface{} `json:"lesson_subtitle_urls_by_language,omitempty"`
	LessonThumbnailAssetsByLanguage map[string]interface{} `json:"lesson_thumbnail_assets_by_language,omitempty"`
	LessonStatus                    string                 `json:"lesson_status"`
	LessonPublishAt                 *time.Time             `json:"lesson_publish_at,omitempty"`
	LessonPublishedAt               *time.Time             `json:"lesson_published_at,omitempty"`
	LessonCreatedAt                 time.Time              `json:"lesson_created_at"`
	LessonUpdatedAt                 time.Time              `json:"lesson_updated_at"`
}

// ============================
// Request DTO
// ============================

type CreateLessonRequest struct {
	LessonTitle                     string                   `json:"lesson_title" validate:"required,min=1"`
	LessonContentType               string                   `json:"lesson_content_type" validate:"omitempty,oneof=video article"`
	LessonDurationMS                int                      `json:"lesson_duration_ms" validate:"omitempty,min=0"`
	LessonIsPaid                    bool                     `json:"lesson_is_paid"`
	LessonContentLanguagePrimary    string                   `json:"lesson_content_language_primary"`
	LessonContentLanguagesAvailable []string                 `json:"lesson_content_languages_available"`
	LessonContentURLsByLanguage     map[string]string        `json:"lesson_content_urls_by_language"`
	LessonSubtitleURLsByLanguage    map[string]string        `json:"lesson_subtitle_urls_by_language"`
	LessonThumbnailAssets           map[string]AssetVariants `json:"lesson_thumbnail_assets_by_language"`
	LessonTermID                    *string                  `json:"lesson_term_id" validate:"omitempty,uuid"`
}

type UpdateLessonRequest struct {
	LessonTitle                     string                   `json:"lesson_title" validate:"required,min=1"`
	LessonContentType               string                   `json:"lesson_content_type" validate:"omitempty,oneof=video article"`
	LessonDurationMS                int                      `json:"lesson_duration_ms" validate:"omitempty,min=0"`
	LessonIsPaid                    *bool                    `json:"lesson_is_paid"`
	LessonContentLanguagePrimary    string                   `json:"lesson_content_language_primary"`
	LessonContentLanguagesAvailable []string                 `json:"lesson_content_languages_available"`
	LessonContentURLsByLanguage     map[string]string        `json:"lesson_content_urls_by_language"`
	LessonSubtitleURLsByLanguage    map[string]string        `json:"lesson_subtitle_urls_by_language"`
	LessonThumbnailAssets           map[string]AssetVariants `json:"lesson_thumbnail_assets_by_language"`
}

type ScheduleLessonRequest struct {
	// Salah satu wajib diisi; publish_at menang kalau dua-duanya ada.
	PublishAt        *time.Time `json:"publish_at"`
	PublishInMinutes int        `json:"publish_in_minutes" validate:"omitempty,min=1"`
}

// ============================
// Converter
// ============================

func ToLessonDTO(m model.LessonModel) LessonDTO {
	var termID *string
	if m.LessonTermID != nil {
		s := m.LessonTermID.String()
		termID = &s
	}
	return LessonDTO{
		LessonID:                        m.LessonID.String(),
		LessonProgramID:                 m.LessonProgramID.String(),
		LessonTermID:                    termID,
		LessonTitle:                     m.LessonTitle,
		LessonNumber:                    m.LessonNumber,
		LessonContentType:               m.LessonContentType,
		LessonDurationMS:                m.LessonDurationMS,
		LessonIsPaid:                    m.LessonIsPaid,
		LessonContentLanguagePrimary:    m.LessonContentLanguagePrimary,
		LessonContentLanguagesAvailable: m.LessonContentLanguagesAvailable,
		LessonContentURLsByLanguage:     m.LessonContentURLsByLanguage,
		LessonSubtitleURLsByLanguage:    m.LessonSubtitleURLsByLanguage,
		LessonThumbnailAssetsByLanguage: m.LessonThumbnailAssetsByLanguage,
		LessonStatus:                    m.LessonStatus,
		LessonPublishAt:                 m.LessonPublishAt,
		LessonPublishedAt:               m.LessonPublishedAt,
		LessonCreatedAt:                 m.LessonCreatedAt,
		LessonUpdatedAt:                 m.LessonUpdatedAt,
	}
}

func ToURLJSONMap(in map[string]string) datatypes.JSONMap {
	if len(in) == 0 {
		return nil
	}
	out := datatypes.JSONMap{}
	for lang, u := range in {
		out[lang] = u
	}
	return out
}

func ToAssetJSONMap(in map[string]AssetVariants) datatypes.JSONMap {
	if len(in) == 0 {
		return nil
	}
	out := datatypes.JSONMap{}
	for lang, v := range in {
		out[lang] = map[string]interface{}{
			"portrait":  v.Portrait,
			"landscape": v.Landscape,
		}
	}
	return out
}
