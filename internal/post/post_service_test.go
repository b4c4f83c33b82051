package post_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-leave/internal/post"
	posterrors "go-leave/internal/post/errors"
	postMock "go-leave/internal/post/mock"

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
	service   post.Service
	repo      *postMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := postMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   post.NewService(db, repo, dbRedis),
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

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	deptID := uuid.NewString()

	t.Run("success defaults employment type", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, deptID).Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *post.Post) error {
				assert.Equal(t, "Backend Engineer", p.Title)
				assert.Equal(t, post.EmploymentFullTime, p.EmploymentType)
				assert.Nil(t, p.SalaryRange)
				return nil
			})
		deps.redismock.ExpectDel(post.GetPostActiveKey(""), post.GetPostActiveKey(deptID)).SetVal(1)

		empty := ""
		resp, err := deps.service.Create(ctx, post.CreatePostRequest{
			Title:        "Backend Engineer",
			DepartmentID: deptID,
			SalaryRange:  &empty,
		})

		assert.NoError(t, err)
		assert.Equal(t, deptID, resp.DepartmentID)
		assert.Equal(t, "FULL_TIME", resp.EmploymentType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("negative department not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, deptID).Return(false, nil)

		_, err := deps.service.Create(ctx, post.CreatePostRequest{Title: "Designer", DepartmentID: deptID})

		assert.ErrorIs(t, err, posterrors.ErrDepartmentNotFound)
	})

	t.Run("negative duplicate title in department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, deptID).Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_post_department_title"})

		_, err := deps.service.Create(ctx, post.CreatePostRequest{Title: "Designer", DepartmentID: deptID})

		assert.ErrorIs(t, err, posterrors.ErrPostAlreadyExists)
	})

	t.Run("negative missing title", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, post.CreatePostRequest{Title: " ", DepartmentID: deptID})

		assert.ErrorIs(t, err, posterrors.ErrTitleRequired)
	})
}

func TestPostService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success filtered by department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.New()
		key := post.GetPostActiveKey(deptID.String())

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().
			FindAllActive(ctx, deptID.String()).
			Return([]post.PostSummary{{
				Post: post.Post{
					ID:           uuid.New(),
					Title:        "Recruiter",
					DepartmentID: deptID,
					Department:   &post.PostDepartment{ID: deptID, Name: "People"},
				},
				EmployeeCount: 2,
			}}, nil)
		deps.redismock.Regexp().ExpectSet(key, `.*`, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, deptID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "People", resp[0].DepartmentName)
		assert.Equal(t, int64(2), resp[0].EmployeeCount)
	})

	t.Run("negative invalid department filter", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, "nope")

		assert.ErrorIs(t, err, posterrors.ErrInvalidDepartmentID)
	})

	t.Run("negative db error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(post.GetPostActiveKey("")).RedisNil()
		deps.repo.EXPECT().FindAllActive(ctx, "").Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx, "")

		assert.Error(t, err)
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success move department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		oldDept := uuid.New()
		newDept := uuid.New()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&post.Post{ID: id, Title: "Analyst", DepartmentID: oldDept, EmploymentType: post.EmploymentContract, IsActive: true}, nil)
		deps.repo.EXPECT().DepartmentExists(ctx, newDept.String()).Return(true, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *post.Post) error {
				assert.Equal(t, newDept, p.DepartmentID)
				assert.Equal(t, post.EmploymentContract, p.EmploymentType)
				return nil
			})
		deps.redismock.ExpectDel(
			post.GetPostActiveKey(""),
			post.GetPostActiveKey(oldDept.String()),
			post.GetPostActiveKey(newDept.String()),
		).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), post.UpdatePostRequest{Title: "Data Analyst", DepartmentID: newDept.String()})

		assert.NoError(t, err)
		assert.Equal(t, "Data Analyst", resp.Title)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id, post.UpdatePostRequest{Title: "X", DepartmentID: uuid.NewString()})

		assert.ErrorIs(t, err, posterrors.ErrPostNotFound)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deptID := uuid.New()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&post.Post{ID: id, DepartmentID: deptID}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id.String()).Return(nil)
		deps.redismock.ExpectDel(post.GetPostActiveKey(""), post.GetPostActiveKey(deptID.String())).SetVal(1)

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative still assigned", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&post.Post{ID: id}, nil)
		deps.repo.EXPECT().CountEmployees(ctx, id.String()).Return(int64(3), nil)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, posterrors.ErrPostInUse)
	})
}
