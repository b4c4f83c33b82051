package leavebalance

type InitializeBalancesRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"omitempty,min=2000,max=2100"`
}

type LeaveBalanceResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name,omitempty"`
	Year          int    `json:"year"`
	Allocated     int    `json:"allocated"`
	Used          int    `json:"used"`
	CarriedOver   int    `json:"carried_over"`
	Remaining     int    `json:"remaining"`
	Policy        string `json:"policy"`
}

type RolloverResult struct {
	Year        int `json:"year"`
	Employees   int `json:"employees"`
	Initialized int `json:"initialized"`
	Failed      int `json:"failed"`
}
