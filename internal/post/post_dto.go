package post

type CreatePostRequest struct {
	Title            string  `json:"title" binding:"required,max=255"`
	Description      string  `json:"description" binding:"max=2000"`
	DepartmentID     string  `json:"department_id" binding:"required,uuid"`
	Requirements     *string `json:"requirements"`
	Responsibilities *string `json:"responsibilities"`
	SalaryRange      *string `json:"salary_range" binding:"omitempty,max=100"`
	EmploymentType   string  `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
}

type UpdatePostRequest struct {
	Title            string  `json:"title" binding:"required,max=255"`
	Description      string  `json:"description" binding:"max=2000"`
	DepartmentID     string  `json:"department_id" binding:"required,uuid"`
	Requirements     *string `json:"requirements"`
	Responsibilities *string `json:"responsibilities"`
	SalaryRange      *string `json:"salary_range" binding:"omitempty,max=100"`
	EmploymentType   string  `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
	IsActive         *bool   `json:"is_active"`
}

type PostResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	DepartmentID     string  `json:"department_id"`
	DepartmentName   string  `json:"department_name"`
	Requirements     *string `json:"requirements,omitempty"`
	Responsibilities *string `json:"responsibilities,omitempty"`
	SalaryRange      *string `json:"salary_range,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	IsActive         bool    `json:"is_active"`
	EmployeeCount    int64   `json:"employee_count"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
