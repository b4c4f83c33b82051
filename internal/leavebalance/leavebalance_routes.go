package leavebalance

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	balances := r.Group("/leave-balances")
	balances.Use(middleware.AuthMiddleware())
	balances.Use(middleware.ContextLogger(logger))
	{
		balances.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave_balance", "read"),
			handler.GetAll,
		)
		balances.POST("/initialize",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave_balance", "initialize"),
			handler.Initialize,
		)
	}
}
