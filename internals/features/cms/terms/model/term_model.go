package model

import (
	"time"

	"github.com/google/uuid"
)

// TermModel merepresentasikan tabel terms.
// term_number dimaksudkan unik per program (belum di-enforce constraint DB).
type TermModel struct {
	TermID        uuid.UUID `json:"term_id" gorm:"column:term_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TermProgramID uuid.UUID `json:"term_program_id" gorm:"column:term_program_id;type:uuid;not null;index"`
	TermNumber    int       `json:"term_number" gorm:"column:term_number;not null"`
	TermTitle     string    `json:"term_title" gorm:"column:term_title;type:varchar(255);not null"`

	TermCreatedAt time.Time `json:"term_created_at" gorm:"column:term_created_at;autoCreateTime"`
	TermUpdatedAt time.Time `json:"term_updated_at" gorm:"column:term_updated_at;autoUpdateTime"`
}

func (TermModel) TableName() string { return "terms" }
