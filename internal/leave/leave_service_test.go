package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/events"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	leaveMock "go-leave/internal/leave/mock"
	"go-leave/internal/leavebalance"
	leavebalanceerrors "go-leave/internal/leavebalance/errors"
	lbMock "go-leave/internal/leavebalance/mock"
	"go-leave/internal/leavetype"
	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/messaging/kafka"
	kafkaMock "go-leave/internal/messaging/kafka/mock"
	"go-leave/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *leaveMock.MockRepository
	ledger  *lbMock.MockLedger
	outbox  *kafkaMock.MockOutboxRepository
	service leave.Service
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func setupLeaveServiceTest(t *testing.T, mode leave.DebitMode, now time.Time) *leaveServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := leaveMock.NewMockRepository(ctrl)
	ledger := lbMock.NewMockLedger(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	ledger.EXPECT().WithTx(gomock.Any()).Return(ledger).AnyTimes()
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()

	svc := leave.NewServiceWithClock(db, repo, ledger, outbox, mode, func() time.Time { return now })

	return &leaveServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		ledger:  ledger,
		outbox:  outbox,
		service: svc,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()
	now := date(2024, time.July, 15)
	employeeID := uuid.New()
	leaveTypeID := uuid.New()
	balanceID := uuid.New()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleEmployee, EmployeeID: employeeID.String()}
	annual := &leavetype.LeaveType{ID: leaveTypeID, Name: "Annual Leave", MaxDaysPerYear: 21, IsActive: true}
	joined := date(2024, time.January, 10)

	expectAdmission := func(deps *leaveServiceDeps, remaining int) {
		deps.repo.EXPECT().FindLeaveType(ctx, leaveTypeID.String()).Return(annual, nil)
		deps.repo.EXPECT().FindEmployeeJoinDate(ctx, employeeID.String()).Return(joined, nil)
		deps.repo.EXPECT().HasOverlappingPeriod(ctx, employeeID.String(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.ledger.EXPECT().
			GetOrInitialize(ctx, employeeID.String(), leaveTypeID.String(), 2024, gomock.Any()).
			Return(&leavebalance.LeaveBalance{ID: balanceID, Allocated: 21, Used: 21 - remaining, Remaining: remaining}, nil)
	}

	t.Run("success five working days stays pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, true)
		expectAdmission(deps, 21)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, l *leave.LeaveRequest) error {
				assert.Equal(t, leave.StatusPending, l.Status)
				assert.Equal(t, 5, l.TotalDays)
				assert.Equal(t, 2024, l.BalanceYear)
				assert.Equal(t, balanceID, *l.BalanceID)
				return nil
			})

		resp, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2024-07-22",
			EndDate:     "2024-07-26",
			Reason:      "Family trip",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, "Annual Leave", resp.LeaveTypeName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success second request checks undebited balance", func(t *testing.T) {
		// Submission only checks: a 20-day request still fits remaining=21
		// while the earlier 5-day request is pending.
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, true)
		expectAdmission(deps, 21)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2024-08-01",
			EndDate:     "2024-08-28",
		})

		assert.NoError(t, err)
		assert.Equal(t, 20, resp.TotalDays)
	})

	t.Run("success debit on submit reserves days", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnSubmit, now)
		expectTx(t, deps.sqlMock, true)
		expectAdmission(deps, 21)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.ledger.EXPECT().Debit(ctx, balanceID.String(), 5).
			Return(&leavebalance.LeaveBalance{ID: balanceID, Used: 5, Remaining: 16}, nil)

		_, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2024-07-22",
			EndDate:     "2024-07-26",
		})

		assert.NoError(t, err)
	})

	t.Run("negative insufficient balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)
		expectAdmission(deps, 3)

		_, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2024-07-22",
			EndDate:     "2024-07-26",
		})

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInsufficientBalance)
		assert.Equal(t, "Insufficient leave balance. You have 3 days remaining", err.Error())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not eligible", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindLeaveType(ctx, leaveTypeID.String()).Return(annual, nil)
		deps.repo.EXPECT().FindEmployeeJoinDate(ctx, employeeID.String()).Return(date(2024, time.April, 15), nil)

		_, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2024-07-22",
			EndDate:     "2024-07-26",
		})

		assert.ErrorIs(t, err, leavebalanceerrors.ErrNotEligible)
		assert.Contains(t, err.Error(), "You need 3 more months of service")
	})

	t.Run("negative overlapping request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindLeaveType(ctx, leaveTypeID.String()).Return(annual, nil)
		deps.repo.EXPECT().FindEmployeeJoinDate(ctx, employeeID.String()).Return(joined, nil)
		deps.repo.EXPECT().
			HasOverlappingPeriod(ctx, employeeID.String(), date(2024, time.July, 22), date(2024, time.July, 26)).
			Return(true, nil)

		_, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2024-07-22",
			EndDate:     "2024-07-26",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("negative inactive leave type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)
		inactive := *annual
		inactive.IsActive = false
		deps.repo.EXPECT().FindLeaveType(ctx, leaveTypeID.String()).Return(&inactive, nil)

		_, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2024-07-22",
			EndDate:     "2024-07-26",
		})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeInactive)
	})

	t.Run("negative leave type not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindLeaveType(ctx, leaveTypeID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Submit(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: leaveTypeID.String(),
			StartDate:   "2024-07-22",
			EndDate:     "2024-07-26",
		})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})

	t.Run("negative validation", func(t *testing.T) {
		cases := []struct {
			name      string
			actor     domain.Actor
			start     string
			end       string
			expectErr error
		}{
			{"bad start format", actor, "22-07-2024", "2024-07-26", leaveerrors.ErrInvalidDateFormat},
			{"bad end format", actor, "2024-07-22", "2024/07/26", leaveerrors.ErrInvalidDateFormat},
			{"end before start", actor, "2024-07-26", "2024-07-22", leaveerrors.ErrInvalidDateRange},
			{"weekend only", actor, "2024-07-20", "2024-07-21", leaveerrors.ErrNoWorkingDays},
			{"no employee profile", domain.Actor{UserID: uuid.NewString(), Role: domain.RoleHR}, "2024-07-22", "2024-07-26", leaveerrors.ErrEmployeeProfileRequired},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)

				_, err := deps.service.Submit(ctx, tc.actor, leave.CreateLeaveRequest{
					LeaveTypeID: leaveTypeID.String(),
					StartDate:   tc.start,
					EndDate:     tc.end,
				})

				assert.ErrorIs(t, err, tc.expectErr)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})
}

func TestLeaveService_Submit_LogsThroughRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := contextutil.WithLogger(context.Background(), zap.New(core).With(zap.String("request_id", "rid-9")))
	deps := setupLeaveServiceTest(t, leave.DebitOnApprove, date(2024, time.July, 16))

	_, err := deps.service.Submit(ctx, domain.Actor{
		UserID:     uuid.NewString(),
		Role:       domain.RoleEmployee,
		EmployeeID: uuid.NewString(),
	}, leave.CreateLeaveRequest{
		LeaveTypeID: uuid.NewString(),
		StartDate:   "2024-07-26",
		EndDate:     "2024-07-22",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	entries := logs.FilterMessage("submit leave validation failed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "rid-9", entries[0].ContextMap()["request_id"])
	}
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	now := date(2024, time.July, 16)
	leaveID := uuid.New()
	balanceID := uuid.New()
	hr := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleHR}

	pending := func(status string) *leave.LeaveRequest {
		approver := uuid.MustParse(hr.UserID)
		return &leave.LeaveRequest{
			ID:          leaveID,
			EmployeeID:  uuid.New(),
			LeaveTypeID: uuid.New(),
			StartDate:   date(2024, time.July, 22),
			EndDate:     date(2024, time.July, 26),
			TotalDays:   5,
			BalanceYear: 2024,
			BalanceID:   &balanceID,
			Status:      status,
			ApprovedBy:  &approver,
			ApprovedAt:  &now,
		}
	}

	t.Run("success debits balance and queues event", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, true)

		comments := "enjoy"
		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), leave.StatusPending, leave.StatusApproved, uuid.MustParse(hr.UserID), now, &comments).
			Return(true, nil)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pending(leave.StatusApproved), nil)
		deps.ledger.EXPECT().Debit(ctx, balanceID.String(), 5).
			Return(&leavebalance.LeaveBalance{ID: balanceID, Used: 5, Remaining: 16}, nil)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.EventLeaveRequestApproved, e.EventType)
				assert.Equal(t, events.LeaveRequestDecidedTopic, e.Topic)
				assert.Equal(t, leaveID.String(), e.AggregateID)
				return nil
			})

		resp, err := deps.service.Approve(ctx, hr, leaveID.String(), leave.DecisionRequest{Comments: &comments})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, hr.UserID, *resp.ApprovedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative insufficient balance rolls back approval", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), leave.StatusPending, leave.StatusApproved, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pending(leave.StatusApproved), nil)
		deps.ledger.EXPECT().Debit(ctx, balanceID.String(), 5).Return(nil, leavebalance.InsufficientBalance(1))

		_, err := deps.service.Approve(ctx, hr, leaveID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInsufficientBalance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already rejected", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), leave.StatusPending, leave.StatusApproved, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pending(leave.StatusRejected), nil)

		_, err := deps.service.Approve(ctx, hr, leaveID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyProcessed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative transition lost while pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), leave.StatusPending, leave.StatusApproved, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pending(leave.StatusPending), nil)

		_, err := deps.service.Approve(ctx, hr, leaveID.String(), leave.DecisionRequest{})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, leaveerrors.ErrAlreadyProcessed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), leave.StatusPending, leave.StatusApproved, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Approve(ctx, hr, leaveID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("negative employee cannot approve", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		employee := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleEmployee, EmployeeID: uuid.NewString()}

		_, err := deps.service.Approve(ctx, employee, leaveID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrForbidden)
	})

	t.Run("negative transition error", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errors.New("db down"))

		_, err := deps.service.Approve(ctx, hr, leaveID.String(), leave.DecisionRequest{})

		assert.EqualError(t, err, "db down")
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()
	now := date(2024, time.July, 16)
	leaveID := uuid.New()
	balanceID := uuid.New()
	admin := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}

	rejected := &leave.LeaveRequest{
		ID:        leaveID,
		TotalDays: 5,
		BalanceID: &balanceID,
		Status:    leave.StatusRejected,
	}

	t.Run("success without balance mutation", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), leave.StatusPending, leave.StatusRejected, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(rejected, nil)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.EventLeaveRequestRejected, e.EventType)
				return nil
			})

		resp, err := deps.service.Reject(ctx, admin, leaveID.String(), leave.DecisionRequest{})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
	})

	t.Run("success debit on submit credits days back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnSubmit, now)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), leave.StatusPending, leave.StatusRejected, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(rejected, nil)
		deps.ledger.EXPECT().Credit(ctx, balanceID.String(), 5).
			Return(&leavebalance.LeaveBalance{ID: balanceID, Remaining: 21}, nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Reject(ctx, admin, leaveID.String(), leave.DecisionRequest{})

		assert.NoError(t, err)
	})

	t.Run("negative already approved", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, now)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			TransitionStatus(ctx, leaveID.String(), leave.StatusPending, leave.StatusRejected, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).
			Return(&leave.LeaveRequest{ID: leaveID, Status: leave.StatusApproved}, nil)

		_, err := deps.service.Reject(ctx, admin, leaveID.String(), leave.DecisionRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyProcessed)
	})
}

func TestLeaveService_List(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()

	t.Run("success employee scoped to own requests", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, time.Now())
		actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleEmployee, EmployeeID: employeeID}

		deps.repo.EXPECT().
			List(ctx, leave.ListFilter{EmployeeID: employeeID, Status: leave.StatusPending}).
			Return([]leave.LeaveRequest{{ID: uuid.New(), Status: leave.StatusPending}}, nil)

		resp, err := deps.service.List(ctx, actor, leave.ListFilter{EmployeeID: uuid.NewString(), Status: leave.StatusPending})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("success admin sees all", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, time.Now())
		actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}

		deps.repo.EXPECT().List(ctx, leave.ListFilter{}).Return([]leave.LeaveRequest{{}, {}}, nil)

		resp, err := deps.service.List(ctx, actor, leave.ListFilter{})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("negative invalid status", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, time.Now())
		actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleHR}

		_, err := deps.service.List(ctx, actor, leave.ListFilter{Status: "CANCELLED"})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New()
	owner := uuid.New()

	t.Run("success owner", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, time.Now())
		actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleEmployee, EmployeeID: owner.String()}

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).
			Return(&leave.LeaveRequest{ID: leaveID, EmployeeID: owner, Status: leave.StatusPending}, nil)

		resp, err := deps.service.GetByID(ctx, actor, leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, leaveID.String(), resp.ID)
	})

	t.Run("negative other employee sees not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t, leave.DebitOnApprove, time.Now())
		actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleEmployee, EmployeeID: uuid.NewString()}

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).
			Return(&leave.LeaveRequest{ID: leaveID, EmployeeID: owner}, nil)

		_, err := deps.service.GetByID(ctx, actor, leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestParseDebitMode(t *testing.T) {
	assert.Equal(t, leave.DebitOnApprove, leave.ParseDebitMode(""))
	assert.Equal(t, leave.DebitOnApprove, leave.ParseDebitMode("whatever"))
	assert.Equal(t, leave.DebitOnSubmit, leave.ParseDebitMode(" ON_SUBMIT "))
}
