package dto

import (
	"time"

	"lessoncms_backend/internals/features/cms/programs/model"

	"gorm.io/datatypes"
)

// AssetVariants: pasangan URL poster/thumbnail per bahasa.
type AssetVariants struct {
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
}

// ============================
// Response DTO
// ============================

type ProgramDTO struct {
	ProgramID                     string                 `json:"program_id"`
	ProgramTitle                  string                 `json:"program_title"`
	ProgramDescription            string                 `json:"program_description"`
	ProgramLanguagePrimary        string                 `json:"program_language_primary"`
	ProgramLanguagesAvailable     []string               `json:"program_languages_available"`
	ProgramPosterAssetsByLanguage map[string]interface{} `json:"program_poster_assets_by_language,omitempty"`
	ProgramStatus                 string                 `json:"program_status"`
	ProgramPublishedAt            *time.Time             `json:"program_published_at,omitempty"`
	ProgramCreatedAt              time.Time              `json:"program_created_at"`
	ProgramUpdatedAt              time.Time              `json:"program_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateProgramRequest struct {
	ProgramTitle              string                   `json:"program_title" validate:"required,min=3"`
	ProgramDescription        string                   `json:"program_description"`
	ProgramLanguagePrimary    string                   `json:"program_language_primary" validate:"omitempty,bcp47_language_tag"`
	ProgramLanguagesAvailable []string                 `json:"program_languages_available"`
	ProgramPosterAssets       map[string]AssetVariants `json:"program_poster_assets_by_language"`
}

type UpdateProgramRequest struct {
	ProgramTitle              string                   `json:"program_title" validate:"required,min=3"`
	ProgramDescription        string                   `json:"program_description"`
	ProgramLanguagePrimary    string                   `json:"program_language_primary" validate:"omitempty,bcp47_language_tag"`
	ProgramLanguagesAvailable []string                 `json:"program_languages_available"`
	ProgramPosterAssets       map[string]AssetVariants `json:"program_poster_assets_by_language"`
}

// ============================
// Converter
// ============================

func ToProgramDTO(m model.ProgramModel) ProgramDTO {
	return ProgramDTO{
		ProgramID:                     m.ProgramID.String(),
		ProgramTitle:                  m.ProgramTitle,
		ProgramDescription:            m.ProgramDescription,
		ProgramLanguagePrimary:        m.ProgramLanguagePrimary,
		ProgramLanguagesAvailable:     m.ProgramLanguagesAvailable,
		ProgramPosterAssetsByLanguage: m.ProgramPosterAssetsByLanguage,
		ProgramStatus:                 m.ProgramStatus,
		ProgramPublishedAt:            m.ProgramPublishedAt,
		ProgramCreatedAt:              m.ProgramCreatedAt,
		ProgramUpdatedAt:              m.ProgramUpdatedAt,
	}
}

// ToAssetJSONMap mengubah map request jadi bentuk JSONB (lang → {portrait, landscape}).
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
