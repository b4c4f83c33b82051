package leave

import (
	"time"

	"go-leave/internal/leavetype"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// LeaveRequest moves PENDING -> APPROVED or PENDING -> REJECTED exactly once.
// Dates and TotalDays are frozen at submission.
type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`

	StartDate   time.Time  `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate     time.Time  `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays   int        `gorm:"type:int;not null"`
	BalanceYear int        `gorm:"type:int;not null"`
	BalanceID   *uuid.UUID `gorm:"type:uuid"`
	Reason      string     `gorm:"type:text"`

	Status     string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_status"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	Comments   *string `gorm:"type:text"`

	LeaveType *leavetype.LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`

	CreatedAt time.Time `gorm:"index:idx_leave_requests_created_at"`
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (l LeaveRequest) IsTerminal() bool {
	return l.Status == StatusApproved || l.Status == StatusRejected
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
