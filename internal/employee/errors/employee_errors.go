package employeeerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfJoining = apperror.New(
		apperror.CodeValidation,
		"Invalid date_of_joining format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDateOfJoiningImmutable = apperror.New(
		apperror.CodeValidation,
		"date_of_joining cannot be changed after creation",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		"Post not found",
		http.StatusNotFound,
	)
	ErrPostDepartmentMismatch = apperror.New(
		apperror.CodeValidation,
		"Post does not belong to the given department",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Manager not found",
		http.StatusNotFound,
	)
	ErrSelfManager = apperror.New(
		apperror.CodeValidation,
		"Employee cannot be their own manager",
		http.StatusBadRequest,
	)
	ErrCustomRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Custom role not found",
		http.StatusNotFound,
	)
)
