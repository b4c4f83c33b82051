package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/domain"
	"go-leave/internal/employee"
	"go-leave/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	TokenTTL   = 7 * 24 * time.Hour
	bcryptCost = 12
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (accessToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	role := domain.RoleEmployee
	if strings.TrimSpace(req.Role) != "" {
		role = domain.NormalizeRole(req.Role)
	}
	switch role {
	case domain.RoleAdmin, domain.RoleHR, domain.RoleEmployee:
	default:
		return AuthResponse{}, autherrors.ErrInvalidRole
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != "" {
		eID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrEmployeeNotFound
		}
		if _, err := s.employeeRepo.FindByID(ctx, eID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return AuthResponse{}, autherrors.ErrEmployeeNotFound
			}
			return AuthResponse{}, err
		}
		employeeID = &eID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   string(hashed),
		Role:       role,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		log.Warn("register failed", zap.String("email", user.Email), zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}

	log.Info("register success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return mapToResponse(*user), nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", AuthResponse{}, autherrors.ErrUserInactive
	}

	token, err := s.generateToken(*user, TokenTTL)
	if err != nil {
		log.Error("generate token failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, mapToResponse(*user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AuthResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

// generateToken: claim role & employee_id dibaca lagi oleh AuthMiddleware.
func (s *service) generateToken(user User, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"email":       user.Email,
		"role":        domain.NormalizeRole(user.Role),
		"employee_id": user.EmployeeIDString(),
		"iat":         now.Unix(),
		"exp":         now.Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(u User) AuthResponse {
	return AuthResponse{
		ID:         u.ID.String(),
		EmployeeID: u.EmployeeIDString(),
		Email:      u.Email,
		Role:       domain.NormalizeRole(u.Role),
	}
}
