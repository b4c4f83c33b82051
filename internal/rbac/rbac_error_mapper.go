package rbac

import (
	"errors"
	"strings"

	rbacerrors "go-leave/internal/rbac/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rbacerrors.ErrRoleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_custom_role_name" {
			return rbacerrors.ErrRoleAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_custom_role_name") {
		return rbacerrors.ErrRoleAlreadyExists
	}

	return err
}
