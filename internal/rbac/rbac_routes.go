package rbac

import (
	"go-leave/internal/domain"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, logger *zap.Logger) {
	r.POST("/rbac/enforce",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleHR),
		handler.Enforce,
	)

	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	roles.Use(middleware.ContextLogger(logger))
	{
		roles.GET("", middleware.RBACAuthorize(rbacService, "role", "read"), handler.ListRoles)
		roles.POST("", middleware.RBACAuthorize(rbacService, "role", "manage"), handler.CreateRole)
		roles.GET("/:id", middleware.RBACAuthorize(rbacService, "role", "read"), handler.GetRole)
		roles.PUT("/:id", middleware.RBACAuthorize(rbacService, "role", "manage"), handler.UpdateRole)
		roles.DELETE("/:id", middleware.RBACAuthorize(rbacService, "role", "delete"), handler.DeleteRole)
	}
}
