package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ProgramModel merepresentasikan tabel programs
type ProgramModel struct {
	ProgramID          uuid.UUID `json:"program_id" gorm:"column:program_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProgramTitle       string    `json:"program_title" gorm:"column:program_title;type:varchar(255);not null"`
	ProgramDescription string    `json:"program_description" gorm:"column:program_description;type:text"`

	ProgramLanguagePrimary    string         `json:"program_language_primary" gorm:"column:program_language_primary;type:varchar(10);not null;default:'en'"`
	ProgramLanguagesAvailable pq.StringArray `json:"program_languages_available" gorm:"column:program_languages_available;type:text[]"`

	// lang → {portrait, landscape} URL
	ProgramPosterAssetsByLanguage datatypes.JSONMap `json:"program_poster_assets_by_language" gorm:"column:program_poster_assets_by_language;type:jsonb"`

	ProgramStatus      string     `json:"program_status" gorm:"column:program_status;type:varchar(20);not null;default:'draft';index"`
	ProgramPublishedAt *time.Time `json:"program_published_at,omitempty" gorm:"column:program_published_at"`

	// counter optimistic-lock; commit status harus pakai guard versi
	ProgramVersion int `json:"program_version" gorm:"column:program_version;not null;default:1"`

	ProgramCreatedAt time.Time `json:"program_created_at" gorm:"column:program_created_at;autoCreateTime"`
	ProgramUpdatedAt time.Time `json:"program_updated_at" gorm:"column:program_updated_at;autoUpdateTime"`
}

func (ProgramModel) TableName() string { return "programs" }

/* ==========================
   Publishable
========================== */

func (m *ProgramModel) CurrentStatus() string { return m.ProgramStatus }

func (m *ProgramModel) ApplyStatus(status string) { m.ProgramStatus = status }

func (m *ProgramModel) MarkPublished(now time.Time) {
	m.ProgramStatus = "published"
	m.ProgramPublishedAt = &now
}

func (m *ProgramModel) MarkScheduled(publishAt time.Time) {
	// Program tidak punya kolom publish_at sendiri; penjadwalan terjadi
	// di level lesson dan program naik lewat cascade.
	m.ProgramStatus = "scheduled"
}

// PublishChecklist mengembalikan SEMUA alasan kenapa program belum boleh publish.
// Kosong = siap publish.
func (m *ProgramModel) PublishChecklist() []string {
	var missing []string
	lang := m.ProgramLanguagePrimary
	assets := variantMap(m.ProgramPosterAssetsByLanguage, lang)
	for _, variant := range []string{"portrait", "landscape"} {
		if assets[variant] == "" {
			missing = append(missing, fmt.Sprintf("Missing required program poster '%s' for %s.", variant, lang))
		}
	}
	return missing
}

// variantMap membaca entri lang dari JSONMap (lang → {variant → url}) jadi map string.
func variantMap(assets map[string]interface{}, lang string) map[string]string {
	out := map[string]string{}
	if assets == nil {
		return out
	}
	raw, ok := assets[lang].(map[string]interface{})
	if !ok {
		return out
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
