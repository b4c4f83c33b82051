package leavetype

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_repo.go -destination=mock/leavetype_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lt *LeaveType) error
	FindAll(ctx context.Context, includeInactive bool) ([]LeaveType, error)
	FindByID(ctx context.Context, id string) (*LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
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

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	return r.conn(ctx).Create(lt).Error
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]LeaveType, error) {
	var types []LeaveType
	db := r.conn(ctx).Order("name ASC")
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveType, error) {
	var lt LeaveType
	err := r.conn(ctx).First(&lt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	return r.conn(ctx).Save(lt).Error
}
