package app

import (
	"go-leave/internal/auth"
	"go-leave/internal/department"
	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/leavebalance"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/post"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/counter"

	"gorm.io/gorm"
)

// AutoMigrate urutannya mengikuti foreign key: master data dulu, baru transaksi cuti.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&counter.Counter{},
		&department.Department{},
		&post.Post{},
		&rbac.CustomRole{},
		&employee.Employee{},
		&auth.User{},
		&leavetype.LeaveType{},
		&leavebalance.LeaveBalance{},
		&leave.LeaveRequest{},
		&kafka.OutboxRecord{},
	)
}
