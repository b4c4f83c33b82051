package rbac

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-leave/internal/domain"
	rbacerrors "go-leave/internal/rbac/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type RoleService interface {
	List(ctx context.Context) ([]RoleResponse, error)
	GetByID(ctx context.Context, id string) (RoleResponse, error)
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type roleService struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewRoleService(db *sql.DB, repo Repository, logger ...*zap.Logger) RoleService {
	l := zap.L().Named("rbac.role_service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.role_service")
	}
	return &roleService{db: db, repo: repo, logger: l}
}

func (s *roleService) List(ctx context.Context) ([]RoleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		log.Error("list roles failed", zap.Error(err))
		return nil, err
	}

	resp := make([]RoleResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapRoleToResponse(row.CustomRole)
		resp[i].EmployeeCount = row.EmployeeCount
	}
	return resp, nil
}

func (s *roleService) GetByID(ctx context.Context, id string) (RoleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RoleResponse{}, rbacerrors.ErrInvalidRoleID
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	employees, err := s.repo.FindAssignedEmployees(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}

	resp := mapRoleToResponse(*role)
	resp.EmployeeCount = int64(len(employees))
	resp.Employees = make([]RoleEmployeeResponse, len(employees))
	for i, e := range employees {
		resp.Employees[i] = RoleEmployeeResponse{
			ID:             e.ID,
			EmployeeNumber: e.EmployeeNumber,
			FullName:       strings.TrimSpace(e.FirstName + " " + e.LastName),
		}
	}
	return resp, nil
}

func (s *roleService) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	name, perms, err := validateRoleInput(req.Name, req.Permissions)
	if err != nil {
		return RoleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create role begin tx failed", zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	role := &CustomRole{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Permissions: perms,
		IsActive:    true,
	}

	if err := s.repo.WithTx(tx).Create(ctx, role); err != nil {
		log.Error("create role persist failed", zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	log.Info("create role success",
		zap.String("role_id", role.ID.String()),
		zap.Strings("permissions", perms),
	)
	return mapRoleToResponse(*role), nil
}

func (s *roleService) Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return RoleResponse{}, rbacerrors.ErrInvalidRoleID
	}
	name, perms, err := validateRoleInput(req.Name, req.Permissions)
	if err != nil {
		return RoleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update role begin tx failed", zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role, err := qtx.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	role.Name = name
	role.Description = strings.TrimSpace(req.Description)
	role.Permissions = perms
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, role); err != nil {
		log.Error("update role persist failed", zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	return mapRoleToResponse(*role), nil
}

func (s *roleService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if !actor.IsAdmin() {
		return rbacerrors.ErrAdminOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return rbacerrors.ErrInvalidRoleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete role begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	assigned, err := qtx.CountAssigned(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return rbacerrors.ErrRoleInUse.Withf("Role is still assigned to %d employees", assigned)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("delete role success",
		zap.String("role_id", id),
		zap.String("actor_user_id", actor.UserID),
	)
	return nil
}

// validateRoleInput trims the name and dedupes permissions, keeping request order.
func validateRoleInput(name string, perms []string) (string, []string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, rbacerrors.ErrRoleNameRequired
	}
	if len(perms) == 0 {
		return "", nil, rbacerrors.ErrPermissionsRequired
	}

	seen := make(map[string]struct{}, len(perms))
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		p = strings.TrimSpace(p)
		if !IsAllowedPermission(p) {
			return "", nil, rbacerrors.ErrUnknownPermission.Withf("Unknown permission: %s", p)
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return name, out, nil
}

func mapRoleToResponse(role CustomRole) RoleResponse {
	perms := role.Permissions
	if perms == nil {
		perms = []string{}
	}
	return RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Description: role.Description,
		Permissions: perms,
		IsActive:    role.IsActive,
		CreatedAt:   role.CreatedAt.Format(time.RFC3339),
	}
}
