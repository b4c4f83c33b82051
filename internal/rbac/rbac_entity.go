package rbac

import (
	"time"

	"github.com/google/uuid"
)

const (
	PermViewEmployees        = "view_employees"
	PermCreateEmployees      = "create_employees"
	PermEditEmployees        = "edit_employees"
	PermDeleteEmployees      = "delete_employees"
	PermViewLeaveRequests    = "view_leave_requests"
	PermApproveLeaveRequests = "approve_leave_requests"
	PermViewDepartments      = "view_departments"
	PermCreateDepartments    = "create_departments"
	PermEditDepartments      = "edit_departments"
	PermViewReports          = "view_reports"
	PermManageRoles          = "manage_roles"
	PermViewArticles         = "view_articles"
	PermCreateArticles       = "create_articles"
	PermEditArticles         = "edit_articles"
)

var AllowedPermissions = []string{
	PermViewEmployees,
	PermCreateEmployees,
	PermEditEmployees,
	PermDeleteEmployees,
	PermViewLeaveRequests,
	PermApproveLeaveRequests,
	PermViewDepartments,
	PermCreateDepartments,
	PermEditDepartments,
	PermViewReports,
	PermManageRoles,
	PermViewArticles,
	PermCreateArticles,
	PermEditArticles,
}

func IsAllowedPermission(p string) bool {
	for _, allowed := range AllowedPermissions {
		if p == allowed {
			return true
		}
	}
	return false
}

type CustomRole struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:uq_custom_role_name"`
	Description string    `gorm:"type:text"`
	Permissions []string  `gorm:"type:jsonb;serializer:json;not null"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CustomRoleSummary is a role row plus the number of employees holding it.
type CustomRoleSummary struct {
	CustomRole
	EmployeeCount int64
}
