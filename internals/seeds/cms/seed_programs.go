package cms

import (
	"encoding/json"
	"log"
	"os"

	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"
	termModel "lessoncms_backend/internals/features/cms/terms/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LessonSeed struct {
	Title       string            `json:"title"`
	ContentType string            `json:"content_type"`
	DurationMS  int               `json:"duration_ms"`
	IsPaid      bool              `json:"is_paid"`
	ContentURLs map[string]string `json:"content_urls_by_language"`
	Thumbnails  map[string]map[string]string `json:"thumbnail_assets_by_language"`
}

type ProgramSeed struct {
	Title           string                       `json:"title"`
	Description     string                       `json:"description"`
	LanguagePrimary string                       `json:"language_primary"`
	Posters         map[string]map[string]string `json:"poster_assets_by_language"`
	Lessons         []LessonSeed                 `json:"lessons"`
}

// SeedProgramsFromJSON membuat program demo + Default Term 1 + lessons (semua draft).
func SeedProgramsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []ProgramSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, s := range seeds {
		var existing programModel.ProgramModel
		if err := db.First(&existing, "program_title = ?", s.Title).Error; err == nil {
			log.Printf("ℹ️ Program '%s' sudah ada, dilewati.", s.Title)
			continue
		}

		langPrimary := s.LanguagePrimary
		if langPrimary == "" {
			langPrimary = "en"
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			program := programModel.ProgramModel{
				ProgramTitle:                  s.Title,
				ProgramDescription:            s.Description,
				ProgramLanguagePrimary:        langPrimary,
				ProgramLanguagesAvailable:     []string{langPrimary},
				ProgramPosterAssetsByLanguage: toJSONMap(s.Posters),
				ProgramStatus:                 "draft",
				ProgramVersion:                1,
			}
			if err := tx.Create(&program).Error; err != nil {
				return err
			}

			term := termModel.TermModel{
				TermProgramID: program.ProgramID,
				TermNumber:    1,
				TermTitle:     "Default Term",
			}
			if err := tx.Create(&term).Error; err != nil {
				return err
			}

			for i, ls := range s.Lessons {
				contentType := ls.ContentType
				if contentType == "" {
					contentType = lessonModel.ContentTypeVideo
				}
				lesson := lessonModel.LessonModel{
					LessonProgramID:                 program.ProgramID,
					LessonTermID:                    &term.TermID,
					LessonTitle:                     ls.Title,
					LessonNumber:                    i + 1,
					LessonContentType:               contentType,
					LessonDurationMS:                ls.DurationMS,
					LessonIsPaid:                    ls.IsPaid,
					LessonContentLanguagePrimary:    langPrimary,
					LessonContentLanguagesAvailable: []string{langPrimary},
					LessonContentURLsByLanguage:     toURLJSONMap(ls.ContentURLs),
					LessonThumbnailAssetsByLanguage: toJSONMap(ls.Thumbnails),
					LessonStatus:                    "draft",
					LessonVersion:                   1,
				}
				if err := tx.Create(&lesson).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("❌ Gagal seed program '%s': %v", s.Title, err)
			continue
		}
		log.Printf("✅ Program '%s' + %d lessons dibuat.", s.Title, len(s.Lessons))
	}
}

func toJSONMap(in map[string]map[string]string) datatypes.JSONMap {
	if len(in) == 0 {
		return nil
	}
	out := datatypes.JSONMap{}
	for lang, variants := range in {
		m := map[string]interface{}{}
		for k, v := range variants {
			m[k] = v
		}
		out[lang] = m
	}
	return out
}

func toURLJSONMap(in map[string]string) datatypes.JSONMap {
	if len(in) == 0 {
		return nil
	}
	out := datatypes.JSONMap{}
	for lang, u := range in {
		out[lang] = u
	}
	return out
}
