package leavebalanceerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave balance not found",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"Insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrNotEligible = apperror.New(
		apperror.CodeNotEligible,
		"Employee is not yet eligible for leave",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeValidation,
		"employee_id is required",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeValidation,
		"days must be greater than zero",
		http.StatusBadRequest,
	)
	ErrCreditExceedsUsed = apperror.New(
		apperror.CodeInvalidState,
		"cannot credit more days than were used",
		http.StatusConflict,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeValidation,
		"year is invalid",
		http.StatusBadRequest,
	)
)
