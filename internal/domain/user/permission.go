package user

type Permission string

const (
	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Sessions
	PermissionSessionCloseOwn Permission = "session.close_own"
	PermissionSessionCloseAny Permission = "session.close_any"
	PermissionTraceViewAll    Permission = "trace.view_all"
	PermissionTraceExport     Permission = "trace.export"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Departments
	PermissionDepartmentView   Permission = "department.view"
	PermissionDepartmentManage Permission = "department.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionDashboardView,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionSessionCloseOwn,
		PermissionSessionCloseAny,
		PermissionTraceViewAll,
		PermissionTraceExport,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionDepartmentView,
		PermissionDepartmentManage,
	},
	RoleEmployee: {
		PermissionDashboardView,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionSessionCloseOwn,
		PermissionDepartmentView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
