package leavetypeerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Leave type with the same name already exists",
		http.StatusConflict,
	)
	ErrLeaveTypeInactive = apperror.New(
		apperror.CodeValidation,
		"Leave type is not active",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type ID",
		http.StatusBadRequest,
	)
	ErrInvalidMaxDays = apperror.New(
		apperror.CodeValidation,
		"max_days_per_year must be greater than zero",
		http.StatusBadRequest,
	)
)
