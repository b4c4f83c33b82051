package employee

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	GetDepartmentIDByPost(ctx context.Context, postID string) (string, error)
	CustomRoleExists(ctx context.Context, customRoleID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Omit("Department", "Post", "Manager").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.conn(ctx).
		Preload("Department").
		Preload("Post").
		Preload("Manager").
		Order("created_at DESC").
		Find(&empls).Error
	return empls, err
}

// FindOptions hanya ambil kolom ringan untuk dropdown.
func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.conn(ctx).
		Select("id", "employee_number", "first_name", "last_name").
		Where("is_active = ?", true).
		Order("first_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Preload("Department").
		Preload("Post").
		Preload("Manager").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Omit("Department", "Post", "Manager", "DateOfJoining").Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	db := r.conn(ctx)
	if err := db.Model(&Employee{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
		return err
	}
	res := db.Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("departments").
		Where("id = ?", departmentID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) GetDepartmentIDByPost(ctx context.Context, postID string) (string, error) {
	var departmentID string
	err := r.conn(ctx).
		Table("posts").
		Select("department_id").
		Where("id = ?", postID).
		Where("deleted_at IS NULL").
		Scan(&departmentID).Error
	return departmentID, err
}

func (r *repository) CustomRoleExists(ctx context.Context, customRoleID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("custom_roles").
		Where("id = ?", customRoleID).
		Count(&count).Error
	return count > 0, err
}
