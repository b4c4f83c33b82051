package leave

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetAll)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetById)
		leaves.POST("",
			middleware.ExtractUserID(),
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "leave_request", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		approve := middleware.RBACAuthorize(rbacService, "leave_request", "approve")
		leaves.PATCH("/:id/approve", approve, handler.Approve)
		leaves.POST("/:id/approve", approve, handler.Approve)
		leaves.PATCH("/:id/reject", approve, handler.Reject)
		leaves.POST("/:id/reject", approve, handler.Reject)
	}
}
