package post

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	posterrors "go-leave/internal/post/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	PostActiveKeyPrefix = "posts:active:"
	cacheTTL            = 30 * time.Minute
)

// GetPostActiveKey returns the cache key of the active list, per department
// filter. An empty filter maps to "all".
func GetPostActiveKey(departmentID string) string {
	if departmentID == "" {
		return PostActiveKeyPrefix + "all"
	}
	return PostActiveKeyPrefix + departmentID
}

//go:generate mockgen -source=post_service.go -destination=mock/post_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePostRequest) (PostResponse, error)
	GetAll(ctx context.Context, departmentID string) ([]PostResponse, error)
	GetByID(ctx context.Context, id string) (PostResponse, error)
	Update(ctx context.Context, id string, req UpdatePostRequest) (PostResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("post.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("post.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreatePostRequest,
) (PostResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	title := strings.TrimSpace(req.Title)
	if title == "" || req.DepartmentID == "" {
		return PostResponse{}, posterrors.ErrTitleRequired
	}
	deptID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return PostResponse{}, posterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create post begin tx failed", zap.Error(err))
		return PostResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.DepartmentExists(ctx, deptID.String())
	if err != nil {
		return PostResponse{}, err
	}
	if !exists {
		log.Warn("create post department not found", zap.String("department_id", req.DepartmentID))
		return PostResponse{}, posterrors.ErrDepartmentNotFound
	}

	p := &Post{
		ID:               uuid.New(),
		Title:            title,
		Description:      req.Description,
		DepartmentID:     deptID,
		Requirements:     nonEmpty(req.Requirements),
		Responsibilities: nonEmpty(req.Responsibilities),
		SalaryRange:      nonEmpty(req.SalaryRange),
		EmploymentType:   employmentTypeOrDefault(req.EmploymentType),
		IsActive:         true,
	}

	if err := qtx.Create(ctx, p); err != nil {
		log.Error("create post persist failed", zap.Error(err))
		return PostResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PostResponse{}, err
	}

	s.invalidateCache(ctx, p.DepartmentID.String())
	log.Info("create post success", zap.String("post_id", p.ID.String()))

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, departmentID string) ([]PostResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if departmentID != "" {
		if _, err := uuid.Parse(departmentID); err != nil {
			return nil, posterrors.ErrInvalidDepartmentID
		}
	}

	cacheKey := GetPostActiveKey(departmentID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []PostResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllActive(ctx, departmentID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]PostResponse, len(rows))
		for i, row := range rows {
			resp[i] = mapToResponse(row.Post)
			resp[i].EmployeeCount = row.EmployeeCount
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, cacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		log.Error("get all posts failed", zap.Error(err))
		return nil, err
	}

	return v.([]PostResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PostResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PostResponse{}, posterrors.ErrInvalidPostID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PostResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*p), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdatePostRequest,
) (PostResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return PostResponse{}, posterrors.ErrInvalidPostID
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return PostResponse{}, posterrors.ErrTitleRequired
	}
	deptID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return PostResponse{}, posterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update post begin tx failed", zap.Error(err))
		return PostResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PostResponse{}, mapRepositoryError(err)
	}
	oldDepartment := p.DepartmentID.String()

	if p.DepartmentID != deptID {
		exists, err := qtx.DepartmentExists(ctx, deptID.String())
		if err != nil {
			return PostResponse{}, err
		}
		if !exists {
			return PostResponse{}, posterrors.ErrDepartmentNotFound
		}
		p.Department = nil
	}

	p.Title = title
	p.Description = req.Description
	p.DepartmentID = deptID
	p.Requirements = nonEmpty(req.Requirements)
	p.Responsibilities = nonEmpty(req.Responsibilities)
	p.SalaryRange = nonEmpty(req.SalaryRange)
	if req.EmploymentType != "" {
		p.EmploymentType = req.EmploymentType
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, p); err != nil {
		log.Error("update post persist failed", zap.Error(err))
		return PostResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PostResponse{}, err
	}

	s.invalidateCache(ctx, oldDepartment, deptID.String())

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return posterrors.ErrInvalidPostID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete post begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	assigned, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		log.Warn("delete post refused, still assigned",
			zap.String("post_id", id),
			zap.Int64("employees", assigned),
		)
		return posterrors.ErrPostInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx, p.DepartmentID.String())
	log.Info("delete post success", zap.String("post_id", id))
	return nil
}

func (s *service) invalidateCache(ctx context.Context, departmentIDs ...string) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb == nil {
		return
	}
	keys := []string{GetPostActiveKey("")}
	for _, id := range departmentIDs {
		keys = append(keys, GetPostActiveKey(id))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Error("failed to invalidate post cache",
			zap.Error(err),
			zap.Strings("keys", keys),
		)
	}
}

func employmentTypeOrDefault(v string) string {
	if v == "" {
		return EmploymentFullTime
	}
	return v
}

func nonEmpty(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

func mapToResponse(p Post) PostResponse {
	resp := PostResponse{
		ID:               p.ID.String(),
		Title:            p.Title,
		Description:      p.Description,
		DepartmentID:     p.DepartmentID.String(),
		Requirements:     p.Requirements,
		Responsibilities: p.Responsibilities,
		SalaryRange:      p.SalaryRange,
		EmploymentType:   p.EmploymentType,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Department != nil {
		resp.DepartmentName = p.Department.Name
	}
	return resp
}
