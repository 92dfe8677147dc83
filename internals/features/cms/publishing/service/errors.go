package service

import (
	"errors"
	"fmt"
	"strings"
)

// PermissionError: role pemanggil tidak boleh melakukan operasi ini (403).
type PermissionError struct {
	Role      string
	Operation string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("role '%s' is not allowed to %s", e.Role, e.Operation)
}

// ValidationError: prasyarat transisi tidak terpenuhi (400).
// Details membawa SEMUA check yang gagal, bukan cuma yang pertama.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Details, " ")
}

func newValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

// ErrVersionConflict: commit status kalah balapan dengan writer lain
// (versi baris sudah berubah sejak dibaca).
var ErrVersionConflict = errors.New("version conflict: entity was modified concurrently")

// AsValidationError helper untuk branching di controller/scheduler.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func AsPermissionError(err error) (*PermissionError, bool) {
	var pe *PermissionError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
