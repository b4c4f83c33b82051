package leavetype_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/leavetype"
	leavetypeerrors "go-leave/internal/leavetype/errors"
	leavetypeMock "go-leave/internal/leavetype/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestLeaveTypeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavetypeMock.NewMockService(ctrl)
		h := leavetype.NewHandler(svc)

		svc.EXPECT().
			Create(gomock.Any(), leavetype.CreateLeaveTypeRequest{Name: "Annual Leave", MaxDaysPerYear: 21}).
			Return(leavetype.LeaveTypeResponse{ID: uuid.NewString(), Name: "Annual Leave", MaxDaysPerYear: 21, IsActive: true}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-types", strings.NewReader(`{"name":"Annual Leave","max_days_per_year":21}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := leavetype.NewHandler(leavetypeMock.NewMockService(ctrl))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-types", strings.NewReader(`{"name":""}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Contains(t, env.Error.Message, "is required")
	})

	t.Run("negative duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavetypeMock.NewMockService(ctrl)
		h := leavetype.NewHandler(svc)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(leavetype.LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeAlreadyExists)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave-types", strings.NewReader(`{"name":"Annual Leave","max_days_per_year":21}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestLeaveTypeHandler_GetAll(t *testing.T) {
	t.Run("success employee cannot include inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavetypeMock.NewMockService(ctrl)
		h := leavetype.NewHandler(svc)

		svc.EXPECT().GetAll(gomock.Any(), false).Return([]leavetype.LeaveTypeResponse{}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-types?include_inactive=true", nil)
		c.Set("role", "EMPLOYEE")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("success hr includes inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavetypeMock.NewMockService(ctrl)
		h := leavetype.NewHandler(svc)

		svc.EXPECT().GetAll(gomock.Any(), true).Return([]leavetype.LeaveTypeResponse{{Name: "Old", IsActive: false}}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-types?include_inactive=true", nil)
		c.Set("role", "HR")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveTypeHandler_Deactivate(t *testing.T) {
	t.Run("negative not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leavetypeMock.NewMockService(ctrl)
		h := leavetype.NewHandler(svc)
		id := uuid.NewString()

		svc.EXPECT().Deactivate(gomock.Any(), id).Return(leavetype.LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeNotFound)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch, "/leave-types/"+id+"/deactivate", nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Deactivate(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

