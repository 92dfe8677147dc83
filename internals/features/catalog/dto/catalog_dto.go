package dto

import (
	"time"

	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"
)

// Catalog DTO sengaja lebih ramping dari DTO CMS: konsumen tidak perlu
// version counter, publish_at, dsb.

type CatalogProgramDTO struct {
	ProgramID                 string                 `json:"program_id"`
	ProgramTitle              string                 `json:"program_title"`
	ProgramDescription        string                 `json:"program_description"`
	ProgramLanguagePrimary    string                 `json:"program_language_primary"`
	ProgramLanguagesAvailable []string               `json:"program_languages_available"`
	ProgramPosterAssets       map[string]interface{} `json:"program_poster_assets_by_language,omitempty"`
	ProgramPublishedAt        *time.Time             `json:"program_published_at,omitempty"`
}

type CatalogLessonDTO struct {
	LessonID                     string                 `json:"lesson_id"`
	LessonNumber                 int                    `json:"lesson_number"`
	LessonTitle                  string                 `json:"lesson_title"`
	LessonContentType            string                 `json:"lesson_content_type"`
	LessonDurationMS             int                    `json:"lesson_duration_ms"`
	LessonIsPaid                 bool                   `json:"lesson_is_paid"`
	LessonContentLanguagePrimary string                 `json:"lesson_content_language_primary"`
	LessonContentURLs            map[string]interface{} `json:"lesson_content_urls_by_language,omitempty"`
	LessonSubtitleURLs           map[string]interface{} `json:"lesson_subtitle_urls_by_language,omitempty"`
	LessonThumbnailAssets        map[string]interface{} `json:"lesson_thumbnail_assets_by_language,omitempty"`
	LessonPublishedAt            *time.Time             `json:"lesson_published_at,omitempty"`
}

func ToCatalogProgramDTO(m programModel.ProgramModel) CatalogProgramDTO {
	return CatalogProgramDTO{
		ProgramID:                 m.ProgramID.String(),
		ProgramTitle:              m.ProgramTitle,
		ProgramDescription:        m.ProgramDescription,
		ProgramLanguagePrimary:    m.ProgramLanguagePrimary,
		ProgramLanguagesAvailable: m.ProgramLanguagesAvailable,
		ProgramPosterAssets:       m.ProgramPosterAssetsByLanguage,
		ProgramPublishedAt:        m.ProgramPublishedAt,
	}
}

func ToCatalogLessonDTO(m lessonModel.LessonModel) CatalogLessonDTO {
	return CatalogLessonDTO{
		LessonID:                     m.LessonID.String(),
		LessonNumber:                 m.LessonNumber,
		LessonTitle:                  m.LessonTitle,
		LessonContentType:            m.LessonContentType,
		LessonDurationMS:             m.LessonDurationMS,
		LessonIsPaid:                 m.LessonIsPaid,
		LessonContentLanguagePrimary: m.LessonContentLanguagePrimary,
		LessonContentURLs:            m.LessonContentURLsByLanguage,
		LessonSubtitleURLs:           m.LessonSubtitleURLsByLanguage,
		LessonThumbnailAssets:        m.LessonThumbnailAssetsByLanguage,
		LessonPublishedAt:            m.LessonPublishedAt,
	}
}
