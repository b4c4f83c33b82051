package leavebalance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	leavebalanceerrors "go-leave/internal/leavebalance/errors"
	"go-leave/internal/leavepolicy"
	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Ledger owns every mutation of leave balances. It never opens a
// transaction itself; callers bind one with WithTx so the balance lock is
// held for the whole business operation.
//
//go:generate mockgen -source=leavebalance_ledger.go -destination=mock/leavebalance_ledger_mock.go -package=mock
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	GetOrInitialize(ctx context.Context, employeeID, leaveTypeID string, year int, policy leavepolicy.AllocationPolicy) (*LeaveBalance, error)
	InitializeAllForYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	Debit(ctx context.Context, balanceID string, days int) (*LeaveBalance, error)
	Credit(ctx context.Context, balanceID string, days int) (*LeaveBalance, error)
}

type ledger struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewLedger(repo Repository, logger ...*zap.Logger) Ledger {
	return NewLedgerWithClock(repo, time.Now, logger...)
}

func NewLedgerWithClock(repo Repository, now func() time.Time, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("leavebalance.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.ledger")
	}
	return &ledger{repo: repo, now: now, logger: l}
}

func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{repo: l.repo.WithTx(tx), now: l.now, logger: l.logger}
}

func (l *ledger) GetOrInitialize(
	ctx context.Context,
	employeeID, leaveTypeID string,
	year int,
	policy leavepolicy.AllocationPolicy,
) (*LeaveBalance, error) {
	log := contextutil.GetLogger(ctx, l.logger)

	b, err := l.repo.FindForUpdate(ctx, employeeID, leaveTypeID, year)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("get balance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	lt, err := l.repo.FindLeaveType(ctx, leaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}

	doj, err := l.repo.FindEmployeeJoinDate(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavebalanceerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	var prevRemaining *int
	prev, err := l.repo.FindForUpdate(ctx, employeeID, leaveTypeID, year-1)
	switch {
	case err == nil:
		prevRemaining = &prev.Remaining
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	alloc, err := policy.Allocate(leavepolicy.AllocationInput{
		DateOfJoining:     doj,
		AsOf:              l.now(),
		Year:              year,
		Terms:             lt.Terms(),
		PreviousRemaining: prevRemaining,
	})
	if err != nil {
		var notEligible *leavepolicy.NotEligibleError
		if errors.As(err, &notEligible) {
			return nil, NotEligible(notEligible.Eligibility)
		}
		return nil, err
	}

	b = &LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(employeeID),
		LeaveTypeID: lt.ID,
		Year:        year,
		Allocated:   alloc.Allocated,
		CarriedOver: alloc.CarriedOver,
		Remaining:   alloc.Remaining(),
		Policy:      policy.Name(),
	}
	if err := l.repo.CreateIfAbsent(ctx, b); err != nil {
		log.Error("create balance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	// Re-read: a concurrent initializer may have won the insert.
	stored, err := l.repo.FindForUpdate(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		return nil, err
	}

	log.Info("balance initialized",
		zap.String("employee_id", employeeID),
		zap.String("leave_type_id", leaveTypeID),
		zap.Int("year", year),
		zap.String("policy", stored.Policy),
		zap.Int("allocated", stored.Allocated),
		zap.Int("carried_over", stored.CarriedOver),
	)
	return stored, nil
}

func (l *ledger) InitializeAllForYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error) {
	types, err := l.repo.FindActiveLeaveTypes(ctx)
	if err != nil {
		return nil, err
	}

	policy := leavepolicy.NewFlatAnnualPolicy()
	balances := make([]LeaveBalance, 0, len(types))
	for _, lt := range types {
		b, err := l.GetOrInitialize(ctx, employeeID, lt.ID.String(), year, policy)
		if err != nil {
			return nil, err
		}
		if b.LeaveType == nil {
			ltCopy := lt
			b.LeaveType = &ltCopy
		}
		balances = append(balances, *b)
	}
	return balances, nil
}

func (l *ledger) Debit(ctx context.Context, balanceID string, days int) (*LeaveBalance, error) {
	log := contextutil.GetLogger(ctx, l.logger)

	b, err := l.repo.FindByIDForUpdate(ctx, balanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavebalanceerrors.ErrBalanceNotFound
		}
		return nil, err
	}

	if err := b.Debit(days); err != nil {
		log.Warn("debit rejected",
			zap.String("balance_id", balanceID),
			zap.Int("days", days),
			zap.Int("remaining", b.Remaining),
		)
		return nil, err
	}

	if err := l.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (l *ledger) Credit(ctx context.Context, balanceID string, days int) (*LeaveBalance, error) {
	b, err := l.repo.FindByIDForUpdate(ctx, balanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavebalanceerrors.ErrBalanceNotFound
		}
		return nil, err
	}

	if err := b.Credit(days); err != nil {
		return nil, err
	}

	if err := l.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// NotEligible builds the client-facing error for an ineligible employee.
func NotEligible(e leavepolicy.Eligibility) error {
	return leavebalanceerrors.ErrNotEligible.Withf(
		"You are not eligible for leave yet. You need %d more months of service (minimum %d months)",
		e.MonthsUntilEligible(), leavepolicy.MinServiceMonths)
}
