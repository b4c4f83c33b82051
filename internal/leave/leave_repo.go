package leave

import (
	"context"
	"database/sql"
	"time"

	"go-leave/internal/leavetype"
	"go-leave/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	TransitionStatus(ctx context.Context, id, from, to string, decidedBy uuid.UUID, decidedAt time.Time, comments *string) (bool, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
	FindEmployeeJoinDate(ctx context.Context, employeeID string) (time.Time, error)
	FindLeaveType(ctx context.Context, id string) (*leavetype.LeaveType, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Preload("LeaveType").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error) {
	db := r.conn(ctx).Preload("LeaveType")
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var leaves []LeaveRequest
	err := db.Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

// TransitionStatus only succeeds while the row is still in `from`; the
// boolean reports whether this call won.
func (r *repository) TransitionStatus(
	ctx context.Context,
	id, from, to string,
	decidedBy uuid.UUID,
	decidedAt time.Time,
	comments *string,
) (bool, error) {
	res := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Where("status = ?", from).
		Updates(map[string]any{
			"status":      to,
			"approved_by": decidedBy,
			"approved_at": decidedAt,
			"comments":    comments,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}

// FindEmployeeJoinDate locks the employee row until the transaction ends, so
// submissions of one employee pass the overlap check one at a time.
func (r *repository) FindEmployeeJoinDate(ctx context.Context, employeeID string) (time.Time, error) {
	var row struct {
		DateOfJoining time.Time
	}
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Table("employees").
		Select("date_of_joining").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Take(&row).Error
	return row.DateOfJoining, err
}

func (r *repository) FindLeaveType(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	var lt leavetype.LeaveType
	if err := r.conn(ctx).Take(&lt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lt, nil
}
