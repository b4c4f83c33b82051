package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-leave/internal/domain"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options"
	dateLayout         = "2006-01-02"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		now:     time.Now,
		logger:  l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rid := contextutil.GetRequestID(ctx)
	log.Debug("create employee requested",
		zap.String("request_id", rid), // Propagasi ke logs
		zap.String("post_id", req.PostID),
		zap.String("email", req.Email),
	)

	joinedAt, err := time.Parse(dateLayout, strings.TrimSpace(req.DateOfJoining))
	if err != nil {
		log.Warn("create employee invalid date_of_joining",
			zap.String("date_of_joining", req.DateOfJoining),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoining
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	refs, err := s.resolveReferences(ctx, qtx, "", req.DepartmentID, req.PostID, req.ManagerID, req.CustomRoleID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.EmployeeNumber)
		if err != nil {
			log.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		Address:        req.Address,
		DateOfJoining:  joinedAt,
		DepartmentID:   refs.department,
		PostID:         refs.post,
		ManagerID:      refs.manager,
		CustomRoleID:   refs.customRole,
		IsActive:       true,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.writeCreatedEvent(ctx, tx, rid, *empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

// writeCreatedEvent menulis event ke outbox dalam tx yang sama; consumer
// lifecycle yang akan membuka saldo cuti tahun berjalan.
func (s *service) writeCreatedEvent(ctx context.Context, tx *sql.Tx, rid string, empl Employee) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:     events.EventEmployeeCreated,
		RequestID:     rid,
		EmployeeID:    empl.ID.String(),
		DateOfJoining: empl.DateOfJoining.Format(dateLayout),
		OccurredAt:    s.now().UTC(),
	})
	if err != nil {
		log.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   empl.ID.String(),
		EventType:     events.EventEmployeeCreated,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		log.Error("create employee outbox persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

type references struct {
	department *uuid.UUID
	post       *uuid.UUID
	manager    *uuid.UUID
	customRole *uuid.UUID
}

// resolveReferences memastikan semua referensi ada. Department diturunkan dari
// post kalau tidak dikirim.
func (s *service) resolveReferences(
	ctx context.Context,
	qtx Repository,
	selfID, departmentID, postID, managerID, customRoleID string,
) (references, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var refs references

	if postID != "" {
		postDepartment, err := qtx.GetDepartmentIDByPost(ctx, postID)
		if err != nil {
			return refs, err
		}
		if postDepartment == "" {
			return refs, employeeerrors.ErrPostNotFound
		}
		if departmentID != "" && !strings.EqualFold(departmentID, postDepartment) {
			log.Warn("employee post department mismatch",
				zap.String("post_id", postID),
				zap.String("department_id", departmentID),
			)
			return refs, employeeerrors.ErrPostDepartmentMismatch
		}
		departmentID = postDepartment
		refs.post = uuidPtr(postID)
	}

	if departmentID != "" {
		if postID == "" {
			exists, err := qtx.DepartmentExists(ctx, departmentID)
			if err != nil {
				return refs, err
			}
			if !exists {
				return refs, employeeerrors.ErrDepartmentNotFound
			}
		}
		refs.department = uuidPtr(departmentID)
	}

	if managerID != "" {
		if selfID != "" && strings.EqualFold(selfID, managerID) {
			return refs, employeeerrors.ErrSelfManager
		}
		if _, err := qtx.FindByID(ctx, managerID); err != nil {
			if errors.Is(mapRepositoryError(err), employeeerrors.ErrEmployeeNotFound) {
				return refs, employeeerrors.ErrManagerNotFound
			}
			return refs, err
		}
		refs.manager = uuidPtr(managerID)
	}

	if customRoleID != "" {
		exists, err := qtx.CustomRoleExists(ctx, customRoleID)
		if err != nil {
			return refs, err
		}
		if !exists {
			return refs, employeeerrors.ErrCustomRoleNotFound
		}
		refs.customRole = uuidPtr(customRoleID)
	}

	return refs, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	log.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight untuk handle traffic tinggi saat Admin buka form
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeOptionResponse{
				ID:             e.ID.String(),
				EmployeeNumber: e.EmployeeNumber,
				FullName:       e.FullName(),
			}
		}

		// 3. Simpan ke Redis (TTL 1 jam cukup karena data master)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	actor domain.Actor,
	id string,
) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	log.Debug("get employee by id requested",
		zap.String("employee_id", id),
		zap.String("role", actor.Role),
	)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	// EMPLOYEE hanya boleh lihat profil sendiri
	if !actor.IsPrivileged() && !strings.EqualFold(actor.EmployeeID, id) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	log.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("post_id", req.PostID),
	)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.DateOfJoining != nil && strings.TrimSpace(*req.DateOfJoining) != empl.DateOfJoining.Format(dateLayout) {
		log.Warn("update employee tried to change date_of_joining",
			zap.String("employee_id", id),
			zap.String("date_of_joining", *req.DateOfJoining),
		)
		return EmployeeResponse{}, employeeerrors.ErrDateOfJoiningImmutable
	}

	refs, err := s.resolveReferences(ctx, qtx, id, req.DepartmentID, req.PostID, req.ManagerID, req.CustomRoleID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl.FirstName = strings.TrimSpace(req.FirstName)
	empl.LastName = strings.TrimSpace(req.LastName)
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	empl.Phone = req.Phone
	empl.Address = req.Address
	empl.DepartmentID = refs.department
	empl.PostID = refs.post
	empl.ManagerID = refs.manager
	empl.CustomRoleID = refs.customRole
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
	}
	// relasi lama bisa basi setelah referensi berubah
	empl.Department, empl.Post, empl.Manager = nil, nil, nil

	if err := qtx.Update(ctx, empl); err != nil {
		log.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	log.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	log.Debug("delete employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		log.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)

	log.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		log.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		FullName:       empl.FullName(),
		Email:          empl.Email,
		Phone:          empl.Phone,
		Address:        empl.Address,
		DateOfJoining:  empl.DateOfJoining.Format(dateLayout),
		DepartmentID:   uuidToString(empl.DepartmentID),
		PostID:         uuidToString(empl.PostID),
		ManagerID:      uuidToString(empl.ManagerID),
		CustomRoleID:   uuidToString(empl.CustomRoleID),
		IsActive:       empl.IsActive,
	}
	if !empl.CreatedAt.IsZero() {
		resp.CreatedAt = empl.CreatedAt.Format(time.RFC3339)
	}
	if empl.Department != nil {
		resp.Department = &EmployeeRefResponse{ID: empl.Department.ID.String(), Name: empl.Department.Name}
	}
	if empl.Post != nil {
		resp.Post = &EmployeeRefResponse{ID: empl.Post.ID.String(), Name: empl.Post.Title}
	}
	if empl.Manager != nil {
		resp.Manager = &EmployeeRefResponse{
			ID:   empl.Manager.ID.String(),
			Name: strings.TrimSpace(empl.Manager.FirstName + " " + empl.Manager.LastName),
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
