package leavetype

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
	types := r.Group("/leave-types")
	types.Use(middleware.AuthMiddleware())
	types.Use(middleware.ContextLogger(logger))
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "leave_type", "read"), handler.GetAll)
		types.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "read"), handler.GetById)
		types.POST("", middleware.RBACAuthorize(rbacService, "leave_type", "create"), handler.Create)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "update"), handler.Update)
		types.PATCH("/:id/deactivate", middleware.RBACAuthorize(rbacService, "leave_type", "update"), handler.Deactivate)
	}
}
