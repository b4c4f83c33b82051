package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var errInsufficient = apperror.New(apperror.CodeInsufficientBalance, "Insufficient leave balance", http.StatusBadRequest)

func TestWithf_KeepsSentinelIdentity(t *testing.T) {
	err := errInsufficient.Withf("Insufficient leave balance: requested %d, remaining %d", 5, 2)

	assert.ErrorIs(t, err, errInsufficient)
	assert.False(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "Insufficient leave balance: requested 5, remaining 2", err.Error())

	wrapped := fmt.Errorf("submit: %w", err)
	assert.ErrorIs(t, wrapped, errInsufficient)
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errInsufficient)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, apperror.CodeInsufficientBalance, httpErr.Code)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		LeaveTypeID string `json:"leave_type_id" validate:"required"`
		Status      string `json:"status" validate:"oneof=APPROVED REJECTED"`
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(payload{Status: "APPROVED"}))

		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.Equal(t, "Leave Type Id is required", err.Error())
	})

	t.Run("oneof", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(payload{LeaveTypeID: "x", Status: "PENDING"}))

		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.Equal(t, "Status must be one of: APPROVED REJECTED", err.Error())
	})

	t.Run("non validator error", func(t *testing.T) {
		assert.Equal(t, apperror.ErrInvalidInput, apperror.MapValidationError(errors.New("EOF")))
	})
}
