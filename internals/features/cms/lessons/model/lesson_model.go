package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// LessonModel merepresentasikan tabel lessons
type LessonModel struct {
	LessonID        uuid.UUID  `json:"lesson_id" gorm:"column:lesson_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LessonProgramID uuid.UUID  `json:"lesson_program_id" gorm:"column:lesson_program_id;type:uuid;not null;index"`
	LessonTermID    *uuid.UUID `json:"lesson_term_id,omitempty" gorm:"column:lesson_term_id;type:uuid;index"`

	LessonTitle  string `json:"lesson_title" gorm:"column:lesson_title;type:varchar(255);not null"`
	LessonNumber int    `json:"lesson_number" gorm:"column:lesson_number;not null"`

	LessonContentType string `json:"lesson_content_type" gorm:"column:lesson_content_type;type:varchar(20);not null;default:'video'"`
	LessonDurationMS  int    `json:"lesson_duration_ms" gorm:"column:lesson_duration_ms;not null;default:0"`
	LessonIsPaid      bool   `json:"lesson_is_paid" gorm:"column:lesson_is_paid;not null;default:false"`

	LessonContentLanguagePrimary    string         `json:"lesson_content_language_primary" gorm:"column:lesson_content_language_primary;type:varchar(10);not null;default:'en'"`
	LessonContentLanguagesAvailable pq.StringArray `json:"lesson_content_languages_available" gorm:"column:lesson_content_languages_available;type:text[]"`

	// lang → URL
	LessonContentURLsByLanguage  datatypes.JSONMap `json:"lesson_content_urls_by_language" gorm:"column:lesson_content_urls_by_language;type:jsonb"`
	LessonSubtitleURLsByLanguage datatypes.JSONMap `json:"lesson_subtitle_urls_by_language" gorm:"column:lesson_subtitle_urls_by_language;type:jsonb"`

	// lang → {portrait, landscape} URL
	LessonThumbnailAssetsByLanguage datatypes.JSONMap `json:"lesson_thumbnail_assets_by_language" gorm:"column:lesson_thumbnail_assets_by_language;type:jsonb"`

	LessonStatus      string     `json:"lesson_status" gorm:"column:lesson_status;type:varchar(20);not null;default:'draft';index"`
	LessonPublishAt   *time.Time `json:"lesson_publish_at,omitempty" gorm:"column:lesson_publish_at;index"`
	LessonPublishedAt *time.Time `json:"lesson_published_at,omitempty" gorm:"column:lesson_published_at"`

	// counter optimistic-lock; commit status harus pakai guard versi
	LessonVersion int `json:"lesson_version" gorm:"column:lesson_version;not null;default:1"`

	LessonCreatedAt time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;autoCreateTime"`
	LessonUpdatedAt time.Time `json:"lesson_updated_at" gorm:"column:lesson_updated_at;autoUpdateTime"`
}

func (LessonModel) TableName() string { return "lessons" }

const (
	ContentTypeVideo   = "video"
	ContentTypeArticle = "article"
)

/* ==========================
   Publishable
========================== */

func (m *LessonModel) CurrentStatus() string { return m.LessonStatus }

func (m *LessonModel) ApplyStatus(status string) { m.LessonStatus = status }

func (m *LessonModel) MarkPublished(now time.Time) {
	m.LessonStatus = "published"
	m.LessonPublishedAt = &now
}

func (m *LessonModel) MarkScheduled(publishAt time.Time) {
	m.LessonStatus = "scheduled"
	m.LessonPublishAt = &publishAt
}

// PublishChecklist mengembalikan SEMUA alasan kenapa lesson belum boleh publish.
// Content URL dan thumbnail dicek independen, dua-duanya bisa muncul sekaligus.
func (m *LessonModel) PublishChecklist() []string {
	var missing []string
	lang := m.LessonContentLanguagePrimary

	if urlFor(m.LessonContentURLsByLanguage, lang) == "" {
		missing = append(missing, "Missing content URL for primary language.")
	}

	thumbs := variantMap(m.LessonThumbnailAssetsByLanguage, lang)
	for _, variant := range []string{"portrait", "landscape"} {
		if thumbs[variant] == "" {
			missing = append(missing, fmt.Sprintf("Missing required lesson thumbnail '%s' for %s.", variant, lang))
		}
	}
	return missing
}

func urlFor(urls map[string]interface{}, lang string) string {
	if urls == nil {
		return ""
	}
	if s, ok := urls[lang].(string); ok {
		return s
	}
	return ""
}

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
