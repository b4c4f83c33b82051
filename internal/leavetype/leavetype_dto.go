package leavetype

type CreateLeaveTypeRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description"`
	MaxDaysPerYear  int    `json:"max_days_per_year" binding:"required,min=1"`
	CarryForward    bool   `json:"carry_forward"`
	MaxCarryForward *int   `json:"max_carry_forward" binding:"omitempty,min=0"`
}

type UpdateLeaveTypeRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description"`
	MaxDaysPerYear  int    `json:"max_days_per_year" binding:"required,min=1"`
	CarryForward    bool   `json:"carry_forward"`
	MaxCarryForward *int   `json:"max_carry_forward" binding:"omitempty,min=0"`
	IsActive        *bool  `json:"is_active"`
}

type LeaveTypeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	MaxDaysPerYear  int    `json:"max_days_per_year"`
	CarryForward    bool   `json:"carry_forward"`
	MaxCarryForward *int   `json:"max_carry_forward,omitempty"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
