package posterrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		"Post not found",
		http.StatusNotFound,
	)
	ErrPostAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Post title already exists in this department",
		http.StatusConflict,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrPostInUse = apperror.New(
		apperror.CodeInvalidState,
		"Cannot delete post that is assigned to employees",
		http.StatusConflict,
	)
	ErrInvalidPostID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid post ID",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
	ErrTitleRequired = apperror.New(
		apperror.CodeValidation,
		"Title and department are required",
		http.StatusBadRequest,
	)
)
