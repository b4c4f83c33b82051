package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	departmenterrors "go-leave/internal/department/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DepartmentActiveKey = "departments:active"
	cacheTTL            = 30 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:          uuid.New(),
		Name:        name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		log.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateCache(ctx)
	log.Info("create department success", zap.String("department_id", dept.ID.String()))

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DepartmentActiveKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DepartmentActiveKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]DepartmentResponse, len(rows))
		for i, row := range rows {
			resp[i] = mapToResponse(row.Department)
			resp[i].EmployeeCount = row.EmployeeCount
			resp[i].PostCount = row.PostCount
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, DepartmentActiveKey, jsonData, cacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		log.Error("get all departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateDepartmentRequest,
) (DepartmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Name = name
	dept.Description = req.Description
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, dept); err != nil {
		log.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*dept), nil
}

func (s *service) invalidateCache(ctx context.Context) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DepartmentActiveKey).Err(); err != nil {
		log.Error("failed to invalidate department cache",
			zap.Error(err),
			zap.String("key", DepartmentActiveKey),
		)
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Description: dept.Description,
		IsActive:    dept.IsActive,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.Format(time.RFC3339),
	}
}
