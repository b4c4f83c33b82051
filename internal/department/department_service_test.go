package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/department"
	departmenterrors "go-leave/internal/department/errors"
	departmentMock "go-leave/internal/department/mock"

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
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo, dbRedis)

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

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit Cache - Harus ambil data dari Redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectedResp := []department.DepartmentResponse{
			{ID: uuid.NewString(), Name: "Engineering", EmployeeCount: 4},
			{ID: uuid.NewString(), Name: "People", PostCount: 2},
		}
		jsonResp, _ := json.Marshal(expectedResp)
		deps.redismock.ExpectGet(department.DepartmentActiveKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, int64(4), resp[0].EmployeeCount)
	})

	t.Run("Miss Cache - Harus ambil dari DB dan simpan ke Redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(department.DepartmentActiveKey).RedisNil()
		deps.repo.EXPECT().
			FindAllActive(ctx).
			Return([]department.DepartmentSummary{
				{
					Department:    department.Department{ID: uuid.New(), Name: "Finance", IsActive: true},
					EmployeeCount: 7,
					PostCount:     3,
				},
			}, nil).
			Times(1)
		deps.redismock.Regexp().ExpectSet(department.DepartmentActiveKey, `.*`, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Finance", resp[0].Name)
		assert.Equal(t, int64(7), resp[0].EmployeeCount)
		assert.Equal(t, int64(3), resp[0].PostCount)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Database Error - Harus mengembalikan error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(department.DepartmentActiveKey).RedisNil()
		deps.repo.EXPECT().FindAllActive(ctx).Return(nil, errors.New("db down"))

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *department.Department) error {
				assert.Equal(t, "Engineering", d.Name)
				assert.True(t, d.IsActive)
				return nil
			})
		deps.redismock.ExpectDel(department.DepartmentActiveKey).SetVal(1)

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: " Engineering ", Description: "Builds things"})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.Equal(t, "Builds things", resp.Description)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative blank name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "   "})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameRequired)
	})

	t.Run("negative duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_department_name"})

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyExists)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "abc")

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success deactivate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		inactive := false

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&department.Department{ID: id, Name: "Ops", IsActive: true}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *department.Department) error {
				assert.Equal(t, "Operations", d.Name)
				assert.False(t, d.IsActive)
				return nil
			})
		deps.redismock.ExpectDel(department.DepartmentActiveKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{Name: "Operations", IsActive: &inactive})

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id, department.UpdateDepartmentRequest{Name: "Operations"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}
