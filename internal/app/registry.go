package app

import (
	"database/sql"
	"os"

	"go-leave/internal/auth"
	"go-leave/internal/department"
	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/leavebalance"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/post"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	leaveBalanceRepo := leavebalance.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	postRepo := post.NewRepository(gormDB)
	roleRepo := rbac.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	debitMode := leave.ParseDebitMode(os.Getenv("LEAVE_DEBIT_MODE"))
	logger.Info("leave debit mode", zap.String("mode", string(debitMode)))

	ledger := leavebalance.NewLedger(leaveBalanceRepo, logger)

	authService := auth.NewService(authRepo, employeeRepo, logger)
	departmentService := department.NewService(db, departmentRepo, rdb, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	leaveService := leave.NewService(db, leaveRepo, ledger, outboxRepo, debitMode, logger)
	leaveBalanceService := leavebalance.NewService(db, leaveBalanceRepo, ledger, logger)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, rdb, logger)
	postService := post.NewService(db, postRepo, rdb, logger)
	roleService := rbac.NewRoleService(db, roleRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, rdb, logger)
	leaveBalanceHandler := leavebalance.NewHandler(leaveBalanceService, logger)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService, logger)
	postHandler := post.NewHandler(postService, logger)
	rbacHandler := rbac.NewHandler(rbacService, roleService, logger)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb, logger)
		leavebalance.RegisterRoutes(api, leaveBalanceHandler, rbacService, logger)
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService, logger)
		post.RegisterRoutes(api, postHandler, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, logger)
	}

	return nil
}
