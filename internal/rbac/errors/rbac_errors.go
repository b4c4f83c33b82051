package rbacerrors

import (
	"go-leave/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Role with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role ID",
		http.StatusBadRequest,
	)
	ErrRoleNameRequired = apperror.New(
		apperror.CodeValidation,
		"Role name is required",
		http.StatusBadRequest,
	)
	ErrPermissionsRequired = apperror.New(
		apperror.CodeValidation,
		"At least one permission is required",
		http.StatusBadRequest,
	)
	ErrUnknownPermission = apperror.New(
		apperror.CodeValidation,
		"Unknown permission",
		http.StatusBadRequest,
	)
	ErrRoleInUse = apperror.New(
		apperror.CodeInvalidState,
		"Role is still assigned to employees",
		http.StatusConflict,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"Only ADMIN can delete roles",
		http.StatusForbidden,
	)
)
