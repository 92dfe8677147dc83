package dto

import (
	"time"

	"lessoncms_backend/internals/features/cms/terms/model"
)

type TermDTO struct {
	TermID        string    `json:"term_id"`
	TermProgramID string    `json:"term_program_id"`
	TermNumber    int       `json:"term_number"`
	TermTitle     string    `json:"term_title"`
	TermCreatedAt time.Time `json:"term_created_at"`
	TermUpdatedAt time.Time `json:"term_updated_at"`
}

type CreateTermRequest struct {
	TermNumber int    `json:"term_number" validate:"required,min=1"`
	TermTitle  string `json:"term_title" validate:"required,min=1"`
}

func ToTermDTO(m model.TermModel) TermDTO {
	return TermDTO{
		TermID:        m.TermID.String(),
		TermProgramID: m.TermProgramID.String(),
		TermNumber:    m.TermNumber,
		TermTitle:     m.TermTitle,
		TermCreatedAt: m.TermCreatedAt,
		TermUpdatedAt: m.TermUpdatedAt,
	}
}
