package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidLeaveRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrNoWorkingDays = apperror.New(
		apperror.CodeValidation,
		"leave period must contain at least one working day",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"status must be one of: PENDING APPROVED REJECTED",
		http.StatusBadRequest,
	)
	ErrEmployeeProfileRequired = apperror.New(
		apperror.CodeForbidden,
		"an employee profile is required to request leave",
		http.StatusForbidden,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeAlreadyProcessed,
		"leave request has already been processed",
		http.StatusConflict,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"only ADMIN or HR can approve or reject leave requests",
		http.StatusForbidden,
	)
	ErrBalanceMissing = apperror.New(
		apperror.CodeInvalidState,
		"leave request has no balance reference",
		http.StatusConflict,
	)
)
