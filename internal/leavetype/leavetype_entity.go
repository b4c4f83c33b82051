package leavetype

import (
	"time"

	"go-leave/internal/leavepolicy"

	"github.com/google/uuid"
)

type LeaveType struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_leave_type_name"`
	Description     string    `gorm:"type:text"`
	MaxDaysPerYear  int       `gorm:"not null"`
	CarryForward    bool      `gorm:"not null;default:false"`
	MaxCarryForward *int
	IsActive        bool `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (lt LeaveType) Terms() leavepolicy.LeaveTypeTerms {
	return leavepolicy.LeaveTypeTerms{
		MaxDaysPerYear:  lt.MaxDaysPerYear,
		CarryForward:    lt.CarryForward,
		MaxCarryForward: lt.MaxCarryForward,
	}
}
