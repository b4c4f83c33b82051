package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string  `json:"employee_number" binding:"omitempty,max=30"`
	FirstName      string  `json:"first_name" binding:"required,max=100"`
	LastName       string  `json:"last_name" binding:"max=100"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          *string `json:"phone" binding:"omitempty,max=30"`
	Address        *string `json:"address"`
	DateOfJoining  string  `json:"date_of_joining" binding:"required"`
	DepartmentID   string  `json:"department_id" binding:"omitempty,uuid"`
	PostID         string  `json:"post_id" binding:"omitempty,uuid"`
	ManagerID      string  `json:"manager_id" binding:"omitempty,uuid"`
	CustomRoleID   string  `json:"custom_role_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest tidak bisa mengubah date_of_joining; field ini hanya
// diterima supaya request yang mencoba mengubahnya bisa ditolak.
type UpdateEmployeeRequest struct {
	FirstName     string  `json:"first_name" binding:"required,max=100"`
	LastName      string  `json:"last_name" binding:"max=100"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=30"`
	Address       *string `json:"address"`
	DateOfJoining *string `json:"date_of_joining"`
	DepartmentID  string  `json:"department_id" binding:"omitempty,uuid"`
	PostID        string  `json:"post_id" binding:"omitempty,uuid"`
	ManagerID     string  `json:"manager_id" binding:"omitempty,uuid"`
	CustomRoleID  string  `json:"custom_role_id" binding:"omitempty,uuid"`
	IsActive      *bool   `json:"is_active"`
}

type EmployeeRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID             string               `json:"id"`
	EmployeeNumber string               `json:"employee_number"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	FullName       string               `json:"full_name"`
	Email          string               `json:"email"`
	Phone          *string              `json:"phone,omitempty"`
	Address        *string              `json:"address,omitempty"`
	DateOfJoining  string               `json:"date_of_joining"`
	DepartmentID   string               `json:"department_id,omitempty"`
	PostID         string               `json:"post_id,omitempty"`
	ManagerID      string               `json:"manager_id,omitempty"`
	CustomRoleID   string               `json:"custom_role_id,omitempty"`
	IsActive       bool                 `json:"is_active"`
	Department     *EmployeeRefResponse `json:"department,omitempty"`
	Post           *EmployeeRefResponse `json:"post,omitempty"`
	Manager        *EmployeeRefResponse `json:"manager,omitempty"`
	CreatedAt      string               `json:"created_at,omitempty"`
}

type EmployeeOptionResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}
