package leavebalance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-leave/internal/domain"
	leavebalanceerrors "go-leave/internal/leavebalance/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock
type Service interface {
	GetBalances(ctx context.Context, actor domain.Actor, employeeID string, year int) ([]LeaveBalanceResponse, error)
	InitializeForYear(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)
	RolloverYear(ctx context.Context, year int) (RolloverResult, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger Ledger
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, ledger Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{db: db, repo: repo, ledger: ledger, now: time.Now, logger: l}
}

// GetBalances: EMPLOYEE selalu melihat saldo miliknya sendiri,
// ADMIN/HR boleh memilih employee_id.
func (s *service) GetBalances(ctx context.Context, actor domain.Actor, employeeID string, year int) ([]LeaveBalanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	target := actor.EmployeeID
	if actor.IsPrivileged() && employeeID != "" {
		target = employeeID
	}
	if target == "" {
		return nil, leavebalanceerrors.ErrEmployeeRequired
	}
	if _, err := uuid.Parse(target); err != nil {
		return nil, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if year == 0 {
		year = s.now().Year()
	}

	balances, err := s.repo.ListByEmployee(ctx, target, year)
	if err != nil {
		log.Error("get balances failed", zap.String("employee_id", target), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(balances), nil
}

func (s *service) InitializeForYear(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if year == 0 {
		year = s.now().Year()
	}

	log.Debug("initialize balances requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("initialize balances begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	balances, err := s.ledger.WithTx(tx).InitializeAllForYear(ctx, employeeID, year)
	if err != nil {
		log.Warn("initialize balances failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("initialize balances commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("initialize balances success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int("count", len(balances)),
	)
	return mapToListResponse(balances), nil
}

// RolloverYear opens the given year for every active employee. Each
// employee runs in its own transaction so one failure does not block the rest.
func (s *service) RolloverYear(ctx context.Context, year int) (RolloverResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if year < 2000 {
		return RolloverResult{}, leavebalanceerrors.ErrInvalidYear
	}

	ids, err := s.repo.ListActiveEmployeeIDs(ctx)
	if err != nil {
		log.Error("rollover list employees failed", zap.Error(err))
		return RolloverResult{}, err
	}

	result := RolloverResult{Year: year, Employees: len(ids)}
	for _, id := range ids {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if _, err := s.InitializeForYear(ctx, id, year); err != nil {
			result.Failed++
			if !errors.Is(err, leavebalanceerrors.ErrEmployeeNotFound) {
				log.Error("rollover employee failed", zap.String("employee_id", id), zap.Error(err))
			}
			continue
		}
		result.Initialized++
	}

	log.Info("rollover finished",
		zap.Int("year", year),
		zap.Int("employees", result.Employees),
		zap.Int("initialized", result.Initialized),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func mapToResponse(b LeaveBalance) LeaveBalanceResponse {
	resp := LeaveBalanceResponse{
		ID:          b.ID.String(),
		EmployeeID:  b.EmployeeID.String(),
		LeaveTypeID: b.LeaveTypeID.String(),
		Year:        b.Year,
		Allocated:   b.Allocated,
		Used:        b.Used,
		CarriedOver: b.CarriedOver,
		Remaining:   b.Remaining,
		Policy:      b.Policy,
	}
	if b.LeaveType != nil {
		resp.LeaveTypeName = b.LeaveType.Name
	}
	return resp
}

func mapToListResponse(balances []LeaveBalance) []LeaveBalanceResponse {
	res := make([]LeaveBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = mapToResponse(b)
	}
	return res
}
