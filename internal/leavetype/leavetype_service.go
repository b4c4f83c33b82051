package leavetype

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	LeaveTypeActiveKey = "leave_types:active"
	cacheTTL           = 30 * time.Minute
)

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Deactivate(ctx context.Context, id string) (LeaveTypeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	log.Debug("create leave type requested", zap.String("name", req.Name))

	if req.MaxDaysPerYear <= 0 {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidMaxDays
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt := &LeaveType{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		MaxDaysPerYear: req.MaxDaysPerYear,
		CarryForward:   req.CarryForward,
		IsActive:       true,
	}
	lt.MaxCarryForward = carryCap(req.CarryForward, req.MaxCarryForward)

	if err := qtx.Create(ctx, lt); err != nil {
		log.Error("create leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidateCache(ctx)
	log.Info("create leave type success", zap.String("leave_type_id", lt.ID.String()))

	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]LeaveTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if includeInactive {
		types, err := s.repo.FindAll(ctx, true)
		if err != nil {
			log.Error("get all leave types failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		return mapToListResponse(types), nil
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, LeaveTypeActiveKey).Result(); err == nil {
			var resp []LeaveTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(LeaveTypeActiveKey, func() (interface{}, error) {
		types, err := s.repo.FindAll(ctx, false)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(types)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, LeaveTypeActiveKey, jsonData, cacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		log.Error("get active leave types failed", zap.Error(err))
		return nil, err
	}

	return v.([]LeaveTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*lt), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	log.Debug("update leave type requested", zap.String("leave_type_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}
	if req.MaxDaysPerYear <= 0 {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidMaxDays
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	lt.Name = strings.TrimSpace(req.Name)
	lt.Description = req.Description
	lt.MaxDaysPerYear = req.MaxDaysPerYear
	lt.CarryForward = req.CarryForward
	lt.MaxCarryForward = carryCap(req.CarryForward, req.MaxCarryForward)
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, lt); err != nil {
		log.Error("update leave type persist failed", zap.String("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidateCache(ctx)
	log.Info("update leave type success", zap.String("leave_type_id", id))

	return mapToResponse(*lt), nil
}

// Deactivate hides a leave type from new requests. Existing balances and
// requests keep referencing it.
func (s *service) Deactivate(ctx context.Context, id string) (LeaveTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("deactivate leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	lt.IsActive = false
	if err := qtx.Update(ctx, lt); err != nil {
		log.Error("deactivate leave type persist failed", zap.String("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("deactivate leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidateCache(ctx)
	log.Info("deactivate leave type success", zap.String("leave_type_id", id))

	return mapToResponse(*lt), nil
}

func (s *service) invalidateCache(ctx context.Context) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, LeaveTypeActiveKey).Err(); err != nil {
		log.Error("failed to invalidate leave type cache",
			zap.Error(err),
			zap.String("key", LeaveTypeActiveKey),
		)
	}
}

// carryCap drops the cap when carry forward is off.
func carryCap(carryForward bool, maxCarry *int) *int {
	if !carryForward || maxCarry == nil {
		return nil
	}
	v := *maxCarry
	return &v
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:              lt.ID.String(),
		Name:            lt.Name,
		Description:     lt.Description,
		MaxDaysPerYear:  lt.MaxDaysPerYear,
		CarryForward:    lt.CarryForward,
		MaxCarryForward: lt.MaxCarryForward,
		IsActive:        lt.IsActive,
		CreatedAt:       lt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       lt.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		res[i] = mapToResponse(lt)
	}
	return res
}
