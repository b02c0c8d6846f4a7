package entity

type Action string

const (
	ActionCreateRequest   Action = "create_request"
	ActionListRequests    Action = "list_all_requests"
	ActionUpdateStatus    Action = "update_request_status"
	ActionDeleteRequest   Action = "delete_request"
	ActionManageEmployees Action = "manage_employees"
	ActionManageStock     Action = "manage_stock"
	ActionManageUsers     Action = "manage_users"
)

var rolePermissions = map[Role][]Action{
	RoleAdmin: {
		ActionCreateRequest,
		ActionListRequests,
		ActionUpdateStatus,
		ActionDeleteRequest,
		ActionManageEmployees,
		ActionManageStock,
		ActionManageUsers,
	},
	RoleValidator: {
		ActionCreateRequest,
		ActionListRequests,
		ActionUpdateStatus,
	},
	RoleEmployee: {
		ActionCreateRequest,
	},
}

func PermissionsByRole(role Role) []Action {
	return rolePermissions[role]
}

func HasPermission(role Role, action Action) bool {
	for _, a := range rolePermissions[role] {
		if a == action {
			return true
		}
	}

	return false
}
