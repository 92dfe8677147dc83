package constants

import "fmt"

// ==========================
// ✅ Role & Operation
// ==========================
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"

	// RoleSystem dipakai oleh promoter/scheduler internal, bukan user login.
	RoleSystem = "system"
)

const (
	OpCreate      = "create"
	OpUpdate      = "update"
	OpPublish     = "publish"
	OpSchedule    = "schedule"
	OpArchive     = "archive"
	OpDelete      = "delete"
	OpReadCatalog = "read_catalog"
)

// Template pesan error role
const (
	ErrOnlyEditorsCanAccess = "Hanya admin atau editor yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess  = "Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorEditor(feature string) string {
	return fmt.Sprintf(ErrOnlyEditorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleEditor,
		RoleViewer,
	}

	EditorAndAbove = []string{
		RoleAdmin,
		RoleEditor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// mutatingRoles: RBAC flat — semua operasi tulis butuh admin/editor.
// RoleSystem ikut lolos supaya promoter bisa memakai jalur transisi yang sama.
var mutatingRoles = map[string]bool{
	RoleAdmin:  true,
	RoleEditor: true,
	RoleSystem: true,
}

// CanPerform memetakan (role, operation) → allow/deny. Pure function,
// role-nya sudah di-resolve oleh layer auth di luar.
func CanPerform(role, operation string) bool {
	switch operation {
	case OpReadCatalog:
		return true
	case OpCreate, OpUpdate, OpPublish, OpSchedule, OpArchive, OpDelete:
		return mutatingRoles[role]
	default:
		return false
	}
}
