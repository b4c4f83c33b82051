package rbac

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=1000"`
	Permissions []string `json:"permissions" binding:"required,min=1,dive,oneof=view_employees create_employees edit_employees delete_employees view_leave_requests approve_leave_requests view_departments create_departments edit_departments view_reports manage_roles view_articles create_articles edit_articles"`
}

type UpdateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=1000"`
	Permissions []string `json:"permissions" binding:"required,min=1,dive,oneof=view_employees create_employees edit_employees delete_employees view_leave_requests approve_leave_requests view_departments create_departments edit_departments view_reports manage_roles view_articles create_articles edit_articles"`
	IsActive    *bool    `json:"is_active"`
}

type RoleEmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}

type RoleResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Permissions   []string               `json:"permissions"`
	IsActive      bool                   `json:"is_active"`
	EmployeeCount int64                  `json:"employee_count"`
	Employees     []RoleEmployeeResponse `json:"employees,omitempty"`
	CreatedAt     string                 `json:"created_at"`
}
