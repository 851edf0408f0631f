package services

import (
	"github.com/chronominerals/minerals-insight/models"
)

// Permission tokens gating the protected views.
const (
	PermissionViewAll         = "view_all"
	PermissionEditAll         = "edit_all"
	PermissionDeleteAll       = "delete_all"
	PermissionManageUsers     = "manage_users"
	PermissionExportData      = "export_data"
	PermissionViewAnalytics   = "view_analytics"
	PermissionDownloadReports = "download_reports"
)

// rolePermissions maps each known role to its fixed permission set.
var rolePermissions = map[models.Role][]string{
	models.RoleAdministrator: {PermissionViewAll, PermissionEditAll, PermissionDeleteAll, PermissionManageUsers, PermissionExportData},
	models.RoleInvestor:      {PermissionViewAll, PermissionViewAnalytics, PermissionExportData},
	models.RoleResearcher:    {PermissionViewAll, PermissionViewAnalytics, PermissionDownloadReports},
}

// PermissionsFor returns the permission set for a role; unknown roles
// get an empty set.
func PermissionsFor(role models.Role) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether a role carries a permission. Unknown
// roles have no permissions at all.
func HasPermission(role models.Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
