package post

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	posts := r.Group("/posts")
	posts.Use(middleware.AuthMiddleware())
	posts.Use(middleware.ContextLogger(logger))
	{
		posts.GET("", middleware.RBACAuthorize(rbacService, "post", "read"), h.GetAll)
		posts.GET("/:id", middleware.RBACAuthorize(rbacService, "post", "read"), h.GetById)
		posts.POST("", middleware.RBACAuthorize(rbacService, "post", "create"), h.Create)
		posts.PUT("/:id", middleware.RBACAuthorize(rbacService, "post", "update"), h.Update)
		// hanya ADMIN yang punya policy post:delete
		posts.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "post", "delete"),
			h.Delete,
		)
	}
}
