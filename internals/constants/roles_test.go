package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerformMutatingOps(t *testing.T) {
	mutating := []string{OpCreate, OpUpdate, OpPublish, OpSchedule, OpArchive, OpDelete}

	for _, op := range mutating {
		assert.True(t, CanPerform(RoleAdmin, op), "admin: %s", op)
		assert.True(t, CanPerform(RoleEditor, op), "editor: %s", op)
		assert.True(t, CanPerform(RoleSystem, op), "system: %s", op)
		assert.False(t, CanPerform(RoleViewer, op), "viewer tidak boleh %s", op)
		assert.False(t, CanPerform("", op), "role kosong tidak boleh %s", op)
	}
}

func TestCanPerformReadCatalogOpenForAll(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleEditor, RoleViewer, RoleSystem, ""} {
		assert.True(t, CanPerform(role, OpReadCatalog), "read_catalog terbuka untuk %q", role)
	}
}

func TestCanPerformUnknownOperationDenied(t *testing.T) {
	assert.False(t, CanPerform(RoleAdmin, "reboot"))
	assert.False(t, CanPerform(RoleSystem, ""))
}
