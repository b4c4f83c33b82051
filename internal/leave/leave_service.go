package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/leavebalance"
	"go-leave/internal/leavepolicy"
	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actor domain.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	Reject(ctx context.Context, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	List(ctx context.Context, actor domain.Actor, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	ledger    leavebalance.Ledger
	outbox    kafka.OutboxRepository
	debitMode DebitMode
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger leavebalance.Ledger,
	outboxRepo kafka.OutboxRepository,
	debitMode DebitMode,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, ledger, outboxRepo, debitMode, time.Now, logger...)
}

func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	ledger leavebalance.Ledger,
	outboxRepo kafka.OutboxRepository,
	debitMode DebitMode,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if debitMode == "" {
		debitMode = DebitOnApprove
	}
	return &service{
		db:        db,
		repo:      repo,
		ledger:    ledger,
		outbox:    outboxRepo,
		debitMode: debitMode,
		now:       now,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, actor domain.Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rid := contextutil.GetRequestID(ctx)
	log.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("user_id", actor.UserID),
		zap.String("employee_id", actor.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if !actor.HasEmployee() {
		return LeaveResponse{}, leaveerrors.ErrEmployeeProfileRequired
	}
	employeeUUID, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	leaveTypeUUID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}

	startDate, endDate, days, err := validatePeriod(req.StartDate, req.EndDate)
	if err != nil {
		log.Warn("submit leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	ledger := s.ledger.WithTx(tx)

	lt, err := qtx.FindLeaveType(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return LeaveResponse{}, err
	}
	if !lt.IsActive {
		return LeaveResponse{}, leavetypeerrors.ErrLeaveTypeInactive
	}

	joinDate, err := qtx.FindEmployeeJoinDate(ctx, actor.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, err
	}

	now := s.now()
	eligibility := leavepolicy.EvaluateEligibility(joinDate, now)
	if !eligibility.IsEligible {
		log.Info("submit leave employee not eligible",
			zap.String("employee_id", actor.EmployeeID),
			zap.Int("months_of_service", eligibility.MonthsOfService),
		)
		return LeaveResponse{}, leavebalance.NotEligible(eligibility)
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, actor.EmployeeID, startDate, endDate)
	if err != nil {
		log.Error("submit leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	year := now.Year()
	balance, err := ledger.GetOrInitialize(ctx, actor.EmployeeID, req.LeaveTypeID, year, leavepolicy.NewAccrualPolicy())
	if err != nil {
		log.Warn("submit leave balance lookup failed",
			zap.String("employee_id", actor.EmployeeID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if !balance.Covers(days.WorkingDays) {
		return LeaveResponse{}, leavebalance.InsufficientBalance(balance.Remaining)
	}

	balanceID := balance.ID
	l := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		LeaveTypeID: leaveTypeUUID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   days.WorkingDays,
		BalanceYear: year,
		BalanceID:   &balanceID,
		Reason:      req.Reason,
		Status:      StatusPending,
		LeaveType:   lt,
	}

	if err := qtx.Create(ctx, l); err != nil {
		log.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.debitMode == DebitOnSubmit {
		if _, err := ledger.Debit(ctx, balanceID.String(), l.TotalDays); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.Int("total_days", l.TotalDays),
		zap.String("debit_mode", string(s.debitMode)),
	)

	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.decide(ctx, actor, id, StatusApproved, req)
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.decide(ctx, actor, id, StatusRejected, req)
}

func (s *service) decide(ctx context.Context, actor domain.Actor, id, to string, req DecisionRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rid := contextutil.GetRequestID(ctx)
	log.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", to),
		zap.String("user_id", actor.UserID),
	)

	if !actor.IsPrivileged() {
		return LeaveResponse{}, leaveerrors.ErrForbidden
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveRequestID
	}
	deciderUUID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	ledger := s.ledger.WithTx(tx)

	decidedAt := s.now().UTC()
	won, err := qtx.TransitionStatus(ctx, id, StatusPending, to, deciderUUID, decidedAt, req.Comments)
	if err != nil {
		log.Error("decide leave transition failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !won {
		return LeaveResponse{}, s.explainLostTransition(ctx, qtx, id)
	}

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapFindError(err)
	}

	debited := false
	switch {
	case to == StatusApproved && s.debitMode == DebitOnApprove:
		if l.BalanceID == nil {
			return LeaveResponse{}, leaveerrors.ErrBalanceMissing
		}
		if _, err := ledger.Debit(ctx, l.BalanceID.String(), l.TotalDays); err != nil {
			log.Warn("approve leave debit failed",
				zap.String("leave_id", id),
				zap.Int("total_days", l.TotalDays),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
		debited = true
	case to == StatusRejected && s.debitMode == DebitOnSubmit:
		if l.BalanceID == nil {
			return LeaveResponse{}, leaveerrors.ErrBalanceMissing
		}
		if _, err := ledger.Credit(ctx, l.BalanceID.String(), l.TotalDays); err != nil {
			return LeaveResponse{}, err
		}
	case to == StatusApproved:
		debited = true
	}

	if err := s.writeDecisionEvent(ctx, tx, rid, *l, debited); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("decide leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", to),
		zap.String("decided_by", actor.UserID),
	)

	return mapToResponse(*l), nil
}

// explainLostTransition tells apart an unknown id from a request that is no longer PENDING.
func (s *service) explainLostTransition(ctx context.Context, qtx Repository, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	existing, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapFindError(err)
	}
	if !existing.IsTerminal() {
		log.Error("decide leave transition lost but request still pending", zap.String("leave_id", id))
		return fmt.Errorf("leave request %s was not updated while still %s", id, existing.Status)
	}

	log.Info("decide leave already processed",
		zap.String("leave_id", id),
		zap.String("status", existing.Status),
	)
	return leaveerrors.ErrAlreadyProcessed
}

func (s *service) writeDecisionEvent(ctx context.Context, tx *sql.Tx, rid string, l LeaveRequest, debited bool) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.outbox == nil {
		return nil
	}

	eventType := events.EventLeaveRequestApproved
	if l.Status == StatusRejected {
		eventType = events.EventLeaveRequestRejected
	}

	decidedBy := ""
	if l.ApprovedBy != nil {
		decidedBy = l.ApprovedBy.String()
	}

	payload, err := json.Marshal(events.LeaveRequestDecidedEvent{
		EventType:      eventType,
		RequestID:      rid,
		LeaveRequestID: l.ID.String(),
		EmployeeID:     l.EmployeeID.String(),
		LeaveTypeID:    l.LeaveTypeID.String(),
		Status:         l.Status,
		TotalDays:      l.TotalDays,
		DecidedBy:      decidedBy,
		BalanceDebited: debited,
		OccurredAt:     s.now().UTC(),
	})
	if err != nil {
		log.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   l.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveRequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		log.Error("decide leave outbox persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, actor domain.Actor, filter ListFilter) ([]LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !actor.IsPrivileged() {
		if !actor.HasEmployee() {
			return nil, leaveerrors.ErrEmployeeProfileRequired
		}
		filter.EmployeeID = actor.EmployeeID
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, leaveerrors.ErrInvalidEmployeeID
		}
	}
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, leaveerrors.ErrInvalidStatus
	}

	leaves, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("list leave failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveRequestID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapFindError(err)
	}

	// EMPLOYEE tidak boleh melihat cuti milik orang lain
	if !actor.IsPrivileged() && l.EmployeeID.String() != actor.EmployeeID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	return mapToResponse(*l), nil
}

func validatePeriod(start, end string) (time.Time, time.Time, leavepolicy.DayCount, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, leavepolicy.DayCount{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, leavepolicy.DayCount{}, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, leavepolicy.DayCount{}, leaveerrors.ErrInvalidDateRange
	}

	days := leavepolicy.CountDays(startDate, endDate)
	if days.WorkingDays == 0 {
		return time.Time{}, time.Time{}, leavepolicy.DayCount{}, leaveerrors.ErrNoWorkingDays
	}
	return startDate, endDate, days, nil
}

func mapFindError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return err
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveTypeID: l.LeaveTypeID.String(),
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		TotalDays:   l.TotalDays,
		BalanceYear: l.BalanceYear,
		Reason:      l.Reason,
		Status:      l.Status,
		Comments:    l.Comments,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
	if l.LeaveType != nil {
		resp.LeaveTypeName = l.LeaveType.Name
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}
