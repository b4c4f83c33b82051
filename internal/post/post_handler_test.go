package post_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/post"
	posterrors "go-leave/internal/post/errors"
	postMock "go-leave/internal/post/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPostHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deptID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := postMock.NewMockService(ctrl)
		h := post.NewHandler(svc)

		svc.EXPECT().
			Create(gomock.Any(), post.CreatePostRequest{Title: "QA", DepartmentID: deptID, EmploymentType: "INTERN"}).
			Return(post.PostResponse{ID: uuid.NewString(), Title: "QA", EmploymentType: "INTERN"}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/posts",
			strings.NewReader(`{"title":"QA","department_id":"`+deptID+`","employment_type":"INTERN"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative unknown employment type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := post.NewHandler(postMock.NewMockService(ctrl))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/posts",
			strings.NewReader(`{"title":"QA","department_id":"`+deptID+`","employment_type":"FREELANCE"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("negative department not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := postMock.NewMockService(ctrl)
		h := post.NewHandler(svc)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(post.PostResponse{}, posterrors.ErrDepartmentNotFound)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/posts",
			strings.NewReader(`{"title":"QA","department_id":"`+deptID+`"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := postMock.NewMockService(ctrl)
	h := post.NewHandler(svc)

	deptID := uuid.NewString()
	svc.EXPECT().GetAll(gomock.Any(), deptID).Return([]post.PostResponse{{Title: "QA"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/posts?department_id="+deptID, nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative assigned to employees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := postMock.NewMockService(ctrl)
		h := post.NewHandler(svc)

		id := uuid.NewString()
		svc.EXPECT().Delete(gomock.Any(), id).Return(posterrors.ErrPostInUse)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/posts/"+id, nil)

		h.Delete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}
