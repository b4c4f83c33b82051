package leavetype_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/leavetype"
	leavetypeerrors "go-leave/internal/leavetype/errors"
	leavetypeMock "go-leave/internal/leavetype/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   leavetype.Service
	repo      *leavetypeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := leavetypeMock.NewMockRepository(ctrl)

	svc := leavetype.NewService(db, repo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
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

func intPtr(v int) *int { return &v }

func TestLeaveTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, lt *leavetype.LeaveType) error {
				assert.Equal(t, "Annual Leave", lt.Name)
				assert.True(t, lt.IsActive)
				assert.Equal(t, 5, *lt.MaxCarryForward)
				return nil
			})
		deps.redismock.ExpectDel(leavetype.LeaveTypeActiveKey).SetVal(1)

		resp, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{
			Name:            "  Annual Leave ",
			MaxDaysPerYear:  21,
			CarryForward:    true,
			MaxCarryForward: intPtr(5),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Annual Leave", resp.Name)
		assert.Equal(t, 21, resp.MaxDaysPerYear)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("success drops cap without carry forward", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, lt *leavetype.LeaveType) error {
				assert.Nil(t, lt.MaxCarryForward)
				return nil
			})
		deps.redismock.ExpectDel(leavetype.LeaveTypeActiveKey).SetVal(1)

		resp, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{
			Name:            "Sick Leave",
			MaxDaysPerYear:  10,
			MaxCarryForward: intPtr(3),
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.MaxCarryForward)
	})

	t.Run("negative duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_leave_type_name"})

		_, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Annual Leave", MaxDaysPerYear: 21})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid max days", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Unpaid", MaxDaysPerYear: 0})

		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidMaxDays)
	})
}

func TestLeaveTypeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit Cache - ambil data dari Redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []leavetype.LeaveTypeResponse{{ID: uuid.NewString(), Name: "Annual Leave", IsActive: true}}
		jsonResp, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(leavetype.LeaveTypeActiveKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetAll(ctx, false)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Annual Leave", resp[0].Name)
	})

	t.Run("Miss Cache - ambil dari DB dan simpan ke Redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(leavetype.LeaveTypeActiveKey).RedisNil()
		deps.repo.EXPECT().
			FindAll(ctx, false).
			Return([]leavetype.LeaveType{{ID: uuid.New(), Name: "Sick Leave", MaxDaysPerYear: 10, IsActive: true}}, nil)
		deps.redismock.Regexp().ExpectSet(leavetype.LeaveTypeActiveKey, `.*`, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, false)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Sick Leave", resp[0].Name)
	})

	t.Run("success include inactive skips cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindAll(ctx, true).
			Return([]leavetype.LeaveType{{ID: uuid.New(), Name: "Old Leave", IsActive: false}}, nil)

		resp, err := deps.service.GetAll(ctx, true)

		assert.NoError(t, err)
		assert.False(t, resp[0].IsActive)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("negative database error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(leavetype.LeaveTypeActiveKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx, false).Return(nil, errors.New("db connection error"))

		resp, err := deps.service.GetAll(ctx, false)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestLeaveTypeService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&leavetype.LeaveType{ID: id, Name: "Annual Leave"}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "123")

		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidLeaveTypeID)
	})
}

func TestLeaveTypeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		inactive := false
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).
			Return(&leavetype.LeaveType{ID: id, Name: "Annual Leave", MaxDaysPerYear: 21, IsActive: true}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(leavetype.LeaveTypeActiveKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), leavetype.UpdateLeaveTypeRequest{
			Name:           "Annual Leave",
			MaxDaysPerYear: 24,
			IsActive:       &inactive,
		})

		assert.NoError(t, err)
		assert.Equal(t, 24, resp.MaxDaysPerYear)
		assert.False(t, resp.IsActive)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), leavetype.UpdateLeaveTypeRequest{Name: "X", MaxDaysPerYear: 1})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})
}

func TestLeaveTypeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).
			Return(&leavetype.LeaveType{ID: id, Name: "Annual Leave", IsActive: true}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, lt *leavetype.LeaveType) error {
				assert.False(t, lt.IsActive)
				return nil
			})
		deps.redismock.ExpectDel(leavetype.LeaveTypeActiveKey).SetVal(1)

		resp, err := deps.service.Deactivate(ctx, id.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
