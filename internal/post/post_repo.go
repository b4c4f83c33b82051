package post

import (
	"context"
	"database/sql"

	"go-leave/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=post_repo.go -destination=mock/post_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Post) error
	FindAllActive(ctx context.Context, departmentID string) ([]PostSummary, error)
	FindByID(ctx context.Context, id string) (*Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id string) error
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	CountEmployees(ctx context.Context, postID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, p *Post) error {
	return r.conn(ctx).Omit("Department").Create(p).Error
}

func (r *repository) FindAllActive(ctx context.Context, departmentID string) ([]PostSummary, error) {
	db := r.conn(ctx).
		Preload("Department").
		Where("is_active = ?", true)
	if departmentID != "" {
		db = db.Where("department_id = ?", departmentID)
	}

	var posts []Post
	if err := db.Order("title ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []PostSummary{}, nil
	}

	ids := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	var counts []struct {
		PostID uuid.UUID
		Total  int64
	}
	err := r.conn(ctx).
		Table("employees").
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", ids).
		Where("deleted_at IS NULL").
		Group("post_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byPost := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byPost[c.PostID] = c.Total
	}

	rows := make([]PostSummary, len(posts))
	for i, p := range posts {
		rows[i] = PostSummary{Post: p, EmployeeCount: byPost[p.ID]}
	}
	return rows, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := r.conn(ctx).
		Preload("Department").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Post) error {
	// preload Department jangan ikut tersimpan
	return r.conn(ctx).Omit("Department").Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Post{}, "id = ?", id).Error
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

func (r *repository) CountEmployees(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("post_id = ?", postID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}
