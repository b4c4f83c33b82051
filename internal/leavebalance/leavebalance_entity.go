package leavebalance

import (
	"time"

	leavebalanceerrors "go-leave/internal/leavebalance/errors"
	"go-leave/internal/leavepolicy"
	"go-leave/internal/leavetype"

	"github.com/google/uuid"
)

// LeaveBalance is unique per (employee, leave type, year).
// Remaining always equals Allocated + CarriedOver - Used and never drops below zero.
type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	Year        int       `gorm:"not null;uniqueIndex:uq_leave_balance_employee_type_year"`

	Allocated   int    `gorm:"not null;default:0"`
	Used        int    `gorm:"not null;default:0"`
	CarriedOver int    `gorm:"not null;default:0"`
	Remaining   int    `gorm:"not null;default:0;check:chk_leave_balance_remaining,remaining >= 0"`
	Policy      string `gorm:"type:varchar(20);not null"`

	LeaveType *leavetype.LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Debit consumes days and re-validates sufficiency.
func (b *LeaveBalance) Debit(days int) error {
	if days <= 0 {
		return leavebalanceerrors.ErrInvalidDays
	}

	used := b.Used + days
	remaining := leavepolicy.Remaining(b.Allocated, b.CarriedOver, used)
	if remaining < 0 {
		return InsufficientBalance(b.Remaining)
	}

	b.Used = used
	b.Remaining = remaining
	return nil
}

// Credit returns previously debited days.
func (b *LeaveBalance) Credit(days int) error {
	if days <= 0 {
		return leavebalanceerrors.ErrInvalidDays
	}
	if days > b.Used {
		return leavebalanceerrors.ErrCreditExceedsUsed
	}

	b.Used -= days
	b.Remaining = leavepolicy.Remaining(b.Allocated, b.CarriedOver, b.Used)
	return nil
}

func (b *LeaveBalance) Covers(days int) bool {
	return b.Remaining >= days
}

func InsufficientBalance(remaining int) error {
	return leavebalanceerrors.ErrInsufficientBalance.Withf(
		"Insufficient leave balance. You have %d days remaining", remaining)
}
