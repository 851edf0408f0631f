package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chronominerals/minerals-insight/models"
)

func TestPermissionsFor(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{PermissionViewAll, PermissionEditAll, PermissionDeleteAll, PermissionManageUsers, PermissionExportData},
		PermissionsFor(models.RoleAdministrator))
	assert.ElementsMatch(t,
		[]string{PermissionViewAll, PermissionViewAnalytics, PermissionExportData},
		PermissionsFor(models.RoleInvestor))
	assert.ElementsMatch(t,
		[]string{PermissionViewAll, PermissionViewAnalytics, PermissionDownloadReports},
		PermissionsFor(models.RoleResearcher))
	assert.Empty(t, PermissionsFor(models.Role("Overlord")))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(models.RoleAdministrator, PermissionManageUsers))
	assert.True(t, HasPermission(models.RoleResearcher, PermissionDownloadReports))
	assert.False(t, HasPermission(models.RoleInvestor, PermissionManageUsers))
	assert.False(t, HasPermission(models.RoleResearcher, PermissionExportData))
}

func TestHasPermissionUnknownRoleFailsClosed(t *testing.T) {
	for _, perm := range []string{
		PermissionViewAll, PermissionEditAll, PermissionDeleteAll,
		PermissionManageUsers, PermissionExportData,
		PermissionViewAnalytics, PermissionDownloadReports,
	} {
		assert.False(t, HasPermission(models.Role("Overlord"), perm))
		assert.False(t, HasPermission(models.Role(""), perm))
	}
}
