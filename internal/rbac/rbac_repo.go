package rbac

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListActive(ctx context.Context) ([]CustomRoleSummary, error)
	FindByID(ctx context.Context, id string) (*CustomRole, error)
	FindAssignedEmployees(ctx context.Context, roleID string) ([]RoleEmployeeRow, error)
	Create(ctx context.Context, role *CustomRole) error
	Update(ctx context.Context, role *CustomRole) error
	Delete(ctx context.Context, id string) error
	CountAssigned(ctx context.Context, roleID string) (int64, error)
}

type RoleEmployeeRow struct {
	ID             string
	EmployeeNumber string
	FirstName      string
	LastName       string
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

func (r *repository) ListActive(ctx context.Context) ([]CustomRoleSummary, error) {
	var roles []CustomRole
	if err := r.conn(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&roles).Error; err != nil {
		return nil, err
	}

	if len(roles) == 0 {
		return []CustomRoleSummary{}, nil
	}

	ids := make([]string, len(roles))
	for i, role := range roles {
		ids[i] = role.ID.String()
	}

	var counts []struct {
		CustomRoleID string
		Total        int64
	}
	if err := r.conn(ctx).
		Table("employees").
		Select("custom_role_id, COUNT(*) AS total").
		Where("custom_role_id IN ? AND deleted_at IS NULL", ids).
		Group("custom_role_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	byRole := make(map[string]int64, len(counts))
	for _, c := range counts {
		byRole[c.CustomRoleID] = c.Total
	}

	out := make([]CustomRoleSummary, len(roles))
	for i, role := range roles {
		out[i] = CustomRoleSummary{CustomRole: role, EmployeeCount: byRole[role.ID.String()]}
	}
	return out, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*CustomRole, error) {
	var role CustomRole
	if err := r.conn(ctx).First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) FindAssignedEmployees(ctx context.Context, roleID string) ([]RoleEmployeeRow, error) {
	var rows []RoleEmployeeRow
	err := r.conn(ctx).
		Table("employees").
		Select("id, employee_number, first_name, last_name").
		Where("custom_role_id = ? AND deleted_at IS NULL", roleID).
		Order("first_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, role *CustomRole) error {
	return r.conn(ctx).Create(role).Error
}

func (r *repository) Update(ctx context.Context, role *CustomRole) error {
	return r.conn(ctx).Save(role).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&CustomRole{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountAssigned(ctx context.Context, roleID string) (int64, error) {
	var total int64
	err := r.conn(ctx).
		Table("employees").
		Where("custom_role_id = ? AND deleted_at IS NULL", roleID).
		Count(&total).Error
	return total, err
}
