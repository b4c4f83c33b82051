package leavebalance

import (
	"context"
	"database/sql"
	"time"

	"go-leave/internal/leavetype"
	"go-leave/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveBalance, error)
	CreateIfAbsent(ctx context.Context, b *LeaveBalance) error
	Update(ctx context.Context, b *LeaveBalance) error
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	FindEmployeeJoinDate(ctx context.Context, employeeID string) (time.Time, error)
	FindLeaveType(ctx context.Context, id string) (*leavetype.LeaveType, error)
	FindActiveLeaveTypes(ctx context.Context) ([]leavetype.LeaveType, error)
	ListActiveEmployeeIDs(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithSQLTx(ctx, r.db, r.tx)
}

func (r *repository) FindForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		Where("leave_type_id = ?", leaveTypeID).
		Where("year = ?", year).
		Take(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateIfAbsent relies on uq_leave_balance_employee_type_year; a concurrent
// insert for the same key is silently skipped.
func (r *repository) CreateIfAbsent(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type_id"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).
		Model(&LeaveBalance{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"used":       b.Used,
			"remaining":  b.Remaining,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.conn(ctx).
		Preload("LeaveType").
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("created_at ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindEmployeeJoinDate(ctx context.Context, employeeID string) (time.Time, error) {
	var row struct {
		DateOfJoining time.Time
	}
	err := r.conn(ctx).
		Table("employees").
		Select("date_of_joining").
		Where("id = ?", employeeID).
		Take(&row).Error
	return row.DateOfJoining, err
}

func (r *repository) FindLeaveType(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	var lt leavetype.LeaveType
	err := r.conn(ctx).Take(&lt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) FindActiveLeaveTypes(ctx context.Context) ([]leavetype.LeaveType, error) {
	var types []leavetype.LeaveType
	err := r.conn(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) ListActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Table("employees").
		Where("is_active = ? AND deleted_at IS NULL", true).
		Order("date_of_joining ASC").
		Pluck("id", &ids).Error
	return ids, err
}
