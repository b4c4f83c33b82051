package departmenterrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
	ErrDepartmentNameRequired = apperror.New(
		apperror.CodeValidation,
		"Department name is required",
		http.StatusBadRequest,
	)
)
