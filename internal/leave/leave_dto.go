package leave

type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason" binding:"max=1000"`
}

type DecisionRequest struct {
	Comments *string `json:"comments" binding:"omitempty,max=1000"`
}

type ListFilter struct {
	EmployeeID string
	Status     string
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	BalanceYear   int     `json:"balance_year"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
	Comments      *string `json:"comments,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
