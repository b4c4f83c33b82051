package department

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAllActive(ctx context.Context) ([]DepartmentSummary, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithSQLTx(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Create(dept).Error
}

func (r *repository) FindAllActive(ctx context.Context) ([]DepartmentSummary, error) {
	var rows []DepartmentSummary
	err := r.conn(ctx).
		Model(&Department{}).
		Select(`departments.*,
			(SELECT COUNT(*) FROM employees e WHERE e.department_id = departments.id AND e.deleted_at IS NULL) AS employee_count,
			(SELECT COUNT(*) FROM posts p WHERE p.department_id = departments.id AND p.deleted_at IS NULL) AS post_count`).
		Where("departments.is_active = ?", true).
		Order("departments.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.conn(ctx).First(&dept, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Save(dept).Error
}
