package department_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/department"
	departmenterrors "go-leave/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

// --- Test Create ---
func TestDepartmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name, IsActive: true}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"HR"`)
	})

	t.Run("validation error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentAlreadyExists
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"HR"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeDepartmentService{
		GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
			return []department.DepartmentResponse{{Name: "HR", EmployeeCount: 2}}, nil
		},
	}

	h := department.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/departments", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_count":2`)
}

func TestDepartmentHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeDepartmentService{
			UpdateFn: func(ctx context.Context, gotID string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
				assert.Equal(t, id, gotID)
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodPut, "/departments/"+id, strings.NewReader(`{"name":"Ops"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}
